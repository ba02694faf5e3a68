package models

// MetadataUpdate is a partial update of a metadata record.
// Only non-nil fields are sent to the catalog.
type MetadataUpdate struct {
	// Name replaces the display name when set.
	Name *string `json:"name,omitempty"`

	// Description replaces the description when set. An empty string clears it.
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether the update carries no field at all.
func (u MetadataUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil
}

// NameUpdate builds an update that only touches the name.
func NameUpdate(name string) MetadataUpdate {
	return MetadataUpdate{Name: &name}
}

// DescriptionUpdate builds an update that only touches the description.
func DescriptionUpdate(description string) MetadataUpdate {
	return MetadataUpdate{Description: &description}
}
