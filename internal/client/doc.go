// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive console application runtime.
//
// It wires the terminal UI, the catalog adapter, the local cache and the
// background workers into a single process lifecycle.
package client
