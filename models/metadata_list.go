package models

// ListRequest holds the listing page query sent to the catalog.
type ListRequest struct {
	// NameContains filters records whose name contains the value.
	NameContains string

	// Page is the zero-based page number.
	Page int

	// Size is the page size. Zero means the catalog default.
	Size int
}

// MetadataPage is one page of catalog records.
type MetadataPage struct {
	Items         []Metadata `json:"content"`
	TotalElements int64      `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	Number        int        `json:"number"`

	// Cached marks a page served from the local cache because the catalog
	// was unreachable.
	Cached bool `json:"-"`
}

// HasNext reports whether another page follows this one.
func (p MetadataPage) HasNext() bool {
	return p.Number+1 < p.TotalPages
}
