package state

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-metadata-console/models"
	"github.com/stretchr/testify/assert"
)

func TestMetadataModel_EmptyByDefault(t *testing.T) {
	m := NewMetadataModel()

	record, ok := m.Get()
	assert.False(t, ok)
	assert.Equal(t, models.Metadata{}, record)
	assert.Zero(t, m.Version())
}

func TestMetadataModel_SetReplacesRecord(t *testing.T) {
	m := NewMetadataModel()

	m.Set(models.Metadata{ID: "m1", Name: "Sales Data", Description: "monthly"})
	m.Set(models.Metadata{ID: "m1", Name: "Sales Data v2"})

	record, ok := m.Get()
	assert.True(t, ok)
	assert.Equal(t, models.Metadata{ID: "m1", Name: "Sales Data v2"}, record)
	assert.Equal(t, uint64(2), m.Version())
}

func TestMetadataModel_Clear(t *testing.T) {
	m := NewMetadataModel()
	m.Set(models.Metadata{ID: "m1", Name: "Sales Data"})

	m.Clear()

	_, ok := m.Get()
	assert.False(t, ok)
	assert.Equal(t, uint64(2), m.Version())
}

func TestMetadataModel_ConcurrentAccess(t *testing.T) {
	m := NewMetadataModel()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.Set(models.Metadata{ID: "m1", Name: "Sales Data"})
		}()
		go func() {
			defer wg.Done()
			_, _ = m.Get()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), m.Version())
}
