// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

// Merge overlays patch tree onto dst in place.
//
// Directories present on both sides merge recursively. Any other clash is
// resolved in favour of the patch: a patch file replaces a directory and a
// patch directory replaces a file. Patch entries are deep-copied, so later
// edits to patch do not leak into dst.
func Merge(dst *Header, patch Patch) error {
	if dst == nil {
		return ErrNilHeader
	}

	mergeDir(dst.Root(), patch.Header.Files)
	return nil
}

// ApplyPatch returns a copy of base with patch merged into its header.
// HeaderSize is reset since the serialized header length changes.
func ApplyPatch(base Archive, patch Patch) (Archive, error) {
	out := Archive{Header: base.Header.Clone()}
	if err := Merge(&out.Header, patch); err != nil {
		return Archive{}, err
	}

	return out, nil
}

// mergeDir copies src children into dst.
func mergeDir(dst, src *DirEntry) {
	if src == nil {
		return
	}

	for name, entry := range src.Files {
		srcDir, isDir := entry.(*DirEntry)
		if isDir && srcDir != nil {
			if dstDir, ok := dst.Files[name].(*DirEntry); ok && dstDir != nil {
				mergeDir(dstDir, srcDir)
				continue
			}
		}

		dst.Set(name, cloneEntry(entry))
	}
}
