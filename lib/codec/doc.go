// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding used for machine-readable
// snapshot export.
//
// Snapshots are printed by "tasklist list --cbor" either as raw bytes
// or as RFC 8949 diagnostic notation. The encoder uses Core
// Deterministic Encoding (RFC 8949 §4.2): sorted map keys, smallest
// integer encoding, no indefinite-length items. The same collection
// always produces identical bytes, so exports can be diffed and hashed.
//
//	data, err := codec.Marshal(store.Snapshot(task.FilterAll))
//	text, err := codec.Diagnose(data)
//
// Types carry `json` struct tags only. fxamacker/cbor reads them as a
// fallback when no `cbor` tag is present, so one tag controls field
// naming for both the --json and --cbor outputs. Timestamps encode as
// RFC 3339 text and calendar dates through their MarshalText form.
package codec
