// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds view-scoped values shared between sibling panels of the
// console. The detail page writes the record it shows; the header bar reads it.
package state

import (
	"sync"

	"github.com/MKhiriev/go-metadata-console/models"
)

// MetadataModel holds the metadata record currently on screen.
//
// Writes replace the record wholesale. Reads may happen from command
// goroutines as well as from the render loop, so access is guarded by a
// read-write mutex.
type MetadataModel struct {
	mu      sync.RWMutex
	record  models.Metadata
	set     bool
	version uint64
}

// NewMetadataModel returns an empty model.
func NewMetadataModel() *MetadataModel {
	return &MetadataModel{}
}

// Set replaces the current record.
func (m *MetadataModel) Set(record models.Metadata) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record = record
	m.set = true
	m.version++
}

// Get returns the current record. ok is false when nothing has been set since
// the last Clear.
func (m *MetadataModel) Get() (record models.Metadata, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.record, m.set
}

// Clear drops the current record.
func (m *MetadataModel) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.record = models.Metadata{}
	m.set = false
	m.version++
}

// Version is incremented on every Set and Clear. The header bar compares it
// with the version it last rendered.
func (m *MetadataModel) Version() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.version
}
