// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Metadata is a named, described entity managed by the catalog service.
//
// Only ID, Name and Description are interpreted by the console. Every other
// attribute the catalog returns (source type, owner, timestamps, …) is kept
// verbatim in Fields so that it survives a decode/encode round trip and can be
// shown on the "fields" tab without the console knowing its schema.
type Metadata struct {
	// ID is the catalog-assigned identifier of the record.
	ID string

	// Name is the human-readable display name.
	Name string

	// Description is an optional free-form description.
	Description string

	// Fields holds opaque additional attributes keyed by their JSON name.
	Fields map[string]json.RawMessage
}

const (
	fieldID          = "id"
	fieldName        = "name"
	fieldDescription = "description"
)

// DisplayName returns the name shown in modals and alerts. Records without a
// name fall back to their identifier.
func (m Metadata) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// FieldKeys returns the opaque field names in a stable order.
func (m Metadata) FieldKeys() []string {
	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// UnmarshalJSON decodes the known attributes and keeps the rest in Fields.
func (m *Metadata) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var decoded Metadata
	if err := takeString(raw, fieldID, &decoded.ID); err != nil {
		return err
	}
	if err := takeString(raw, fieldName, &decoded.Name); err != nil {
		return err
	}
	if err := takeString(raw, fieldDescription, &decoded.Description); err != nil {
		return err
	}
	if len(raw) > 0 {
		decoded.Fields = raw
	}

	*m = decoded
	return nil
}

// MarshalJSON writes the known attributes together with the opaque ones.
func (m Metadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Fields)+3)
	for k, v := range m.Fields {
		out[k] = v
	}
	out[fieldID] = m.ID
	out[fieldName] = m.Name
	out[fieldDescription] = m.Description

	return json.Marshal(out)
}

func takeString(raw map[string]json.RawMessage, key string, dst *string) error {
	v, ok := raw[key]
	if !ok {
		return nil
	}
	delete(raw, key)

	if string(v) == "null" {
		return nil
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return fmt.Errorf("decode metadata %q: %w", key, err)
	}
	return nil
}
