// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

/*
Package asarpatch builds adversarial header patches for asar archives.
An asar archive is a length-prefixed JSON header describing a tree of files
with sizes and offsets into one contiguous data blob. Patches produced here
are structurally valid headers whose metadata lies: oversized entries,
colliding names, fabricated directories. They are meant for stress-testing
extractors and are merged into, or written over, a real archive by an
external writer. This package never reads or writes archive files.

Header tree rules (summary):
  - an entry is either *FileEntry (size, decimal offset) or *DirEntry (children);
  - asar unpacked, executable, and link entries decode into *FileEntry and
    encode back unchanged;
  - names are unique per directory and writing an existing name overwrites it;
  - inserting below a file silently replaces that file with a directory;
  - every builder call starts from a fresh empty root.

# Bloat patches

Declare many 1 GiB entries backed by nothing:

	patch, err := asarpatch.BuildBloatPatch(asarpatch.DefaultBloatCount)
	if err != nil {
	    return err
	}
	data, err := asarpatch.EncodeHeader(patch.Header)

Tune entry size or make names reproducible:

	patch, err := asarpatch.BuildBloatPatchWithOptions(asarpatch.BloatOptions{
	    Count:     64,
	    EntrySize: 4 * asarpatch.GiB,
	    Source:    asarpatch.NewSeededSource(42),
	})

# Trash patches

Add plausible names with random sizes and offsets:

	patch, err := asarpatch.BuildTrashPatch(asarpatch.TrashOptions{})

Spoof extensions and generate fake content for the writer to place in the
blob (examples below use github.com/woozymasta/pathrules to pick entries
whose content is stored LZSS-encoded):

	patch, err := asarpatch.BuildTrashPatch(asarpatch.TrashOptions{
	    Filenames:   []string{"main.js", "lib/preload.js", "package.json"},
	    BeforeWrite: func(name string) string { return name + ".txt" },
	    IncludeData: asarpatch.TrashDataOptions{
	        Generate:    true,
	        MinFileSize: 1024,
	        MaxFileSize: 64 * 1024,
	        Integrity:   true,
	        Compress: []pathrules.Rule{
	            {Action: pathrules.ActionInclude, Pattern: "lib/**"},
	        },
	    },
	})
	for _, f := range patch.Files {
	    // write f.Data at f.Offset, or skip it to keep header and blob inconsistent
	}

# Building trees by hand

	root := asarpatch.NewDirEntry()
	_ = asarpatch.InsertPath(root, "a/b/c.txt", asarpatch.NewFileEntry(10, 0, nil))
	_ = asarpatch.InsertPath(root, "a/b", asarpatch.NewFileEntry(1, 0, nil)) // replaces directory b

# Merging

	archive, err := asarpatch.ApplyPatch(base, patch)
*/
package asarpatch
