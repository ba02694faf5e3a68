package tui

import (
	"github.com/MKhiriev/go-metadata-console/models"
)

// Page names understood by RootModel.
const (
	PageList   = "list"
	PageDetail = "detail"
)

// NavigateTo asks RootModel to switch the active page. MetadataID is the
// route parameter of the detail page.
type NavigateTo struct {
	Page       string
	MetadataID string
}

type detailLoadedMsg struct {
	id     string
	record models.Metadata
	err    error
}

type metadataUpdatedMsg struct {
	id     string
	record models.Metadata
	err    error
}

type metadataDeletedMsg struct {
	id   string
	name string
	err  error
}

type listLoadedMsg struct {
	req  models.ListRequest
	page models.MetadataPage
	err  error
}

type clearAlertMsg struct {
	seq int
}
