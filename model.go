// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

import (
	"github.com/woozymasta/pathrules"
)

// Entry and payload size limits.
const (
	GiB = 1 << 30 // one gibibyte

	// MaxSafeInteger is the largest integer a JSON consumer parses exactly (2^53-1).
	MaxSafeInteger = 1<<53 - 1
	// MaxTrashSize is the upper bound of declared trash entry sizes.
	// Sizes are drawn from [1, MaxTrashSize], both bounds inclusive, so a
	// declared size is never zero and always parses exactly as a JSON number.
	MaxTrashSize = MaxSafeInteger / 2
	// MaxTrashOffset is the upper bound of declared trash entry offsets (2^32-1).
	MaxTrashOffset = 1<<32 - 1
)

// Default builder values.
const (
	DefaultBloatCount     = 10
	DefaultBloatEntrySize = 1 * GiB
	DefaultNameLength     = 30
	DefaultMinFileSize    = 100_000
	DefaultMaxFileSize    = 1_000_000
	DefaultIntegrityBlock = 4 * 1024 * 1024
)

// ArchiveFile describes generated content the writer may place in the data blob.
type ArchiveFile struct {
	// Name is entry name as passed through BeforeWrite.
	Name string `json:"name" yaml:"name"`
	// Data is stored payload, encoded when Compressed is set.
	Data []byte `json:"-" yaml:"-"`
	// Offset is declared offset of entry in header.
	Offset int64 `json:"offset" yaml:"offset"`
	// OriginalSize is payload size before encoding.
	OriginalSize int64 `json:"original_size" yaml:"original_size"`
	// Encoding is payload codec when Compressed is set.
	Encoding PayloadEncoding `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	// Compressed reports whether Data holds encoded payload.
	Compressed bool `json:"compressed,omitempty" yaml:"compressed,omitempty"`
}

// Archive is the part of an asar archive described by this package.
type Archive struct {
	// Header is the files table.
	Header Header `json:"header" yaml:"-"`
	// HeaderSize is serialized header length; zero means unset and left to the writer.
	HeaderSize int64 `json:"header_size,omitempty" yaml:"header_size,omitempty"`
}

// Patch is a header tree produced by a builder plus optional generated content.
type Patch struct {
	// Header is always present, possibly empty.
	Header Header `json:"header" yaml:"-"`
	// Files lists generated payloads; empty unless data generation was requested.
	Files []ArchiveFile `json:"files,omitempty" yaml:"files,omitempty"`
}

// PatchEntryProgress describes one entry added by a builder.
type PatchEntryProgress struct {
	// Path is slash-joined location of the entry in the header tree.
	Path string `json:"path" yaml:"path"`
	// Offset is declared decimal offset.
	Offset string `json:"offset" yaml:"offset"`
	// Size is declared size.
	Size int64 `json:"size" yaml:"size"`
	// PayloadSize is generated content size (zero when not generated).
	PayloadSize int `json:"payload_size,omitempty" yaml:"payload_size,omitempty"`
	// Nested reports whether entry was placed through intermediate directories.
	Nested bool `json:"nested,omitempty" yaml:"nested,omitempty"`
	// Compressed reports whether generated content was stored encoded.
	Compressed bool `json:"compressed,omitempty" yaml:"compressed,omitempty"`
}

// BloatOptions configures BuildBloatPatchWithOptions.
type BloatOptions struct {
	// Source provides randomness; nil means CryptoSource.
	Source Source `json:"-" yaml:"-"`
	// OnEntryDone is called after each entry is added.
	OnEntryDone func(entry PatchEntryProgress) `json:"-" yaml:"-"`
	// Count is number of entries. Zero means DefaultBloatCount, negative means none.
	Count int `json:"count,omitempty" yaml:"count,omitempty"`
	// EntrySize is declared size per entry. Default is 1 GiB.
	EntrySize int64 `json:"entry_size,omitempty" yaml:"entry_size,omitempty"`
	// NameLength is random byte count behind each hex name. Default is 30.
	NameLength int `json:"name_length,omitempty" yaml:"name_length,omitempty"`
}

// TrashOptions configures BuildTrashPatch.
type TrashOptions struct {
	// Source provides randomness; nil means CryptoSource.
	Source Source `json:"-" yaml:"-"`
	// BeforeWrite rewrites each filename before use; nil means identity.
	BeforeWrite func(name string) string `json:"-" yaml:"-"`
	// OnEntryDone is called after each entry is added.
	OnEntryDone func(entry PatchEntryProgress) `json:"-" yaml:"-"`
	// Filenames to add; empty means DefaultTrashFilenames.
	Filenames []string `json:"filenames,omitempty" yaml:"filenames,omitempty"`
	// IncludeData configures generated content.
	IncludeData TrashDataOptions `json:"include_data,omitzero" yaml:"include_data,omitzero"`
}

// TrashDataOptions configures generated trash payloads.
type TrashDataOptions struct {
	// Encoding is codec for entries selected by Compress. Default is lzss.
	Encoding PayloadEncoding `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	// Compress defines ordered path rules selecting entries with encoded payload.
	// Empty rule set means raw payloads only.
	Compress []pathrules.Rule `json:"compress,omitempty" yaml:"compress,omitempty"`
	// CompressMatcherOptions control compression path rule matching.
	CompressMatcherOptions pathrules.MatcherOptions `json:"compress_matcher_options,omitzero" yaml:"compress_matcher_options,omitzero"`
	// MinFileSize is minimal payload size. Default is 100000 bytes.
	MinFileSize int `json:"min_file_size,omitempty" yaml:"min_file_size,omitempty"`
	// MaxFileSize is maximal payload size. Default is 1000000 bytes.
	MaxFileSize int `json:"max_file_size,omitempty" yaml:"max_file_size,omitempty"`
	// Generate enables random payload per entry.
	Generate bool `json:"generate,omitempty" yaml:"generate,omitempty"`
	// Integrity adds asar integrity block computed over generated payload.
	Integrity bool `json:"integrity,omitempty" yaml:"integrity,omitempty"`
}

// applyDefaults fills zero-valued bloat options with defaults.
func (opts *BloatOptions) applyDefaults() {
	if opts.Count == 0 {
		opts.Count = DefaultBloatCount
	}

	if opts.EntrySize <= 0 {
		opts.EntrySize = DefaultBloatEntrySize
	}

	if opts.NameLength <= 0 {
		opts.NameLength = DefaultNameLength
	}

	if opts.Source == nil {
		opts.Source = CryptoSource()
	}
}

// applyDefaults fills zero-valued trash options with defaults.
func (opts *TrashOptions) applyDefaults() {
	if len(opts.Filenames) == 0 {
		opts.Filenames = DefaultTrashFilenames()
	}

	if opts.BeforeWrite == nil {
		opts.BeforeWrite = func(name string) string { return name }
	}

	if opts.Source == nil {
		opts.Source = CryptoSource()
	}

	opts.IncludeData.applyDefaults()
}

// applyDefaults fills zero-valued payload options with defaults.
// Min > Max is kept as is; payload size then clamps to Min.
func (opts *TrashDataOptions) applyDefaults() {
	if opts.MinFileSize <= 0 {
		opts.MinFileSize = DefaultMinFileSize
	}

	if opts.MaxFileSize <= 0 {
		opts.MaxFileSize = DefaultMaxFileSize
	}

	if opts.Encoding == "" {
		opts.Encoding = PayloadEncodingLZSS
	}

	if opts.CompressMatcherOptions == (pathrules.MatcherOptions{}) {
		opts.CompressMatcherOptions = pathrules.MatcherOptions{
			CaseInsensitive: true,
			DefaultAction:   pathrules.ActionExclude,
		}
	}

	if opts.CompressMatcherOptions.DefaultAction == pathrules.ActionUnknown {
		opts.CompressMatcherOptions.DefaultAction = pathrules.ActionExclude
	}
}

// DefaultTrashFilenames returns a fresh copy of the default trash name list.
func DefaultTrashFilenames() []string {
	return []string{
		"license",
		"production",
		"development",
		"staging",
		"secrets",
		"test/test1.js",
		"test/test2.js",
		"test/test3.js",
		"package.json",
	}
}
