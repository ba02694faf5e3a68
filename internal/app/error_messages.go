// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// metadata console.
//
// Msg* constants are the message strings the catalog writes into error
// response bodies; the service layer matches on them to pick a more precise
// domain error.
package app

const (
	// MsgMetadataNotFound is returned when the requested record does not
	// exist in the catalog.
	MsgMetadataNotFound = "metadata not found"

	// MsgDuplicatedName is returned when a rename collides with the name of
	// another record.
	MsgDuplicatedName = "duplicated name"

	// MsgInvalidName is returned when the catalog rejects the supplied name.
	MsgInvalidName = "invalid name"

	// MsgAccessDenied is returned when the current catalog user may not
	// modify the record.
	MsgAccessDenied = "access denied"
)
