// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

import "errors"

// Sentinel errors for patch operations. Use errors.Is in callers.
var (
	// ErrNilDirectory means the target directory entry is nil.
	ErrNilDirectory = errors.New("directory entry is nil")
	// ErrNilEntry means the entry to insert is nil.
	ErrNilEntry = errors.New("entry is nil")
	// ErrNilHeader means the target header is nil.
	ErrNilHeader = errors.New("header is nil")
	// ErrEmptyPath means an insert was requested with zero path segments.
	ErrEmptyPath = errors.New("empty entry path")
	// ErrUniqueNameExhausted means the random source kept producing names that already exist.
	ErrUniqueNameExhausted = errors.New("unable to generate a unique name")
	// ErrEntropySource means the random source failed to produce data.
	ErrEntropySource = errors.New("random source failure")
	// ErrInvalidHeaderJSON means the header JSON does not match the asar header shape.
	ErrInvalidHeaderJSON = errors.New("invalid asar header JSON")
	// ErrInvalidCompressRules means one or more payload compression rules are invalid.
	ErrInvalidCompressRules = errors.New("invalid compress rules")
	// ErrUnsupportedPayloadEncoding means the payload encoding is not known.
	ErrUnsupportedPayloadEncoding = errors.New("unsupported payload encoding")
)
