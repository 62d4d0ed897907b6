// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

// bloatOffset is the declared offset of every bloat entry.
const bloatOffset = "0"

// BuildBloatPatch returns patch with countInGiB flat entries of 1 GiB each.
//
// Entries are metadata only: every one declares offset "0" and no content is
// generated. Extractors that trust declared sizes try to write countInGiB
// gibibytes. Use DefaultBloatCount for the usual amount; zero or negative
// count yields an empty header.
func BuildBloatPatch(countInGiB int) (Patch, error) {
	opts := BloatOptions{}
	opts.applyDefaults()
	opts.Count = countInGiB

	return buildBloatPatch(opts)
}

// BuildBloatPatchWithOptions is BuildBloatPatch with configurable size, naming, and source.
func BuildBloatPatchWithOptions(opts BloatOptions) (Patch, error) {
	opts.applyDefaults()
	return buildBloatPatch(opts)
}

// buildBloatPatch fills a fresh header with opts.Count entries.
func buildBloatPatch(opts BloatOptions) (Patch, error) {
	header := NewHeader()
	root := header.Root()
	gen := NewGenerator(opts.Source)

	for i := 0; i < opts.Count; i++ {
		name, err := gen.UniqueName(opts.NameLength, root.Has)
		if err != nil {
			return Patch{}, err
		}

		root.Set(name, &FileEntry{Size: opts.EntrySize, Offset: bloatOffset})

		if opts.OnEntryDone != nil {
			opts.OnEntryDone(PatchEntryProgress{
				Path:   name,
				Offset: bloatOffset,
				Size:   opts.EntrySize,
			})
		}
	}

	return Patch{Header: header}, nil
}
