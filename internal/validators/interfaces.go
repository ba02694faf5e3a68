// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks metadata records and partial updates before they
// leave the console.
//
// The detail page validates a name or description draft before it issues an
// update, and the client service validates again before calling the catalog,
// so a blank name never reaches the network.
package validators

import "context"

// Validator validates obj. fields optionally narrows the check to the named
// fields (see FieldID, FieldName, FieldDescription).
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
