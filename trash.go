// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

import "strings"

// trashEntry is randomized metadata drawn for one trash filename.
type trashEntry struct {
	payload    []byte
	stored     []byte
	size       int64
	offset     int64
	compressed bool
}

// BuildTrashPatch returns patch with deceptively named entries whose sizes and
// offsets point at nothing real.
//
// Names containing "/" or "\" are placed under fabricated directories. The
// directory structure comes from the name as given; BeforeWrite output names
// the leaf. Two names that end up under the same key overwrite each other
// silently (last one wins), and a file standing where a directory is needed
// is replaced by that directory.
func BuildTrashPatch(opts TrashOptions) (Patch, error) {
	opts.applyDefaults()

	if err := validatePayloadEncoding(opts.IncludeData.Encoding); err != nil {
		return Patch{}, err
	}

	var selector *payloadSelector
	if opts.IncludeData.Generate {
		var err error
		selector, err = newPayloadSelector(opts.IncludeData.Compress, opts.IncludeData.CompressMatcherOptions)
		if err != nil {
			return Patch{}, err
		}
	}

	gen := NewGenerator(opts.Source)
	header := NewHeader()
	root := header.Root()

	var files []ArchiveFile
	if opts.IncludeData.Generate {
		files = make([]ArchiveFile, 0, len(opts.Filenames))
	}

	for _, filename := range opts.Filenames {
		name := opts.BeforeWrite(filename)

		entry, err := drawTrashEntry(gen, opts.IncludeData, selector, name)
		if err != nil {
			return Patch{}, err
		}

		leaf := NewFileEntry(entry.size, entry.offset, entry.payload)
		if opts.IncludeData.Generate && opts.IncludeData.Integrity {
			leaf.Integrity = computeIntegrity(entry.payload, DefaultIntegrityBlock)
		}

		path, nested := placeTrashEntry(root, filename, name, leaf)

		if opts.IncludeData.Generate {
			archiveFile := ArchiveFile{
				Name:         name,
				Data:         entry.stored,
				Offset:       entry.offset,
				OriginalSize: int64(len(entry.payload)),
				Compressed:   entry.compressed,
			}
			if entry.compressed {
				archiveFile.Encoding = opts.IncludeData.Encoding
			}
			files = append(files, archiveFile)
		}

		if opts.OnEntryDone != nil {
			opts.OnEntryDone(PatchEntryProgress{
				Path:        path,
				Offset:      leaf.Offset,
				Size:        leaf.Size,
				PayloadSize: len(entry.payload),
				Nested:      nested,
				Compressed:  entry.compressed,
			})
		}
	}

	return Patch{Header: header, Files: files}, nil
}

// drawTrashEntry draws size, offset, and optional payload for one name.
func drawTrashEntry(gen *Generator, data TrashDataOptions, selector *payloadSelector, name string) (trashEntry, error) {
	size, err := gen.UniformInt(1, MaxTrashSize)
	if err != nil {
		return trashEntry{}, err
	}

	offset, err := gen.UniformInt(0, MaxTrashOffset)
	if err != nil {
		return trashEntry{}, err
	}

	entry := trashEntry{size: size, offset: offset}
	if !data.Generate {
		return entry, nil
	}

	payloadSize, err := gen.UniformInt(int64(data.MinFileSize), int64(data.MaxFileSize))
	if err != nil {
		return trashEntry{}, err
	}

	entry.payload, err = gen.RandomBytes(int(payloadSize))
	if err != nil {
		return trashEntry{}, err
	}
	entry.stored = entry.payload

	if selector.Match(name) {
		entry.stored, entry.compressed, err = encodePayload(data.Encoding, entry.payload)
		if err != nil {
			return trashEntry{}, err
		}
	}

	return entry, nil
}

// placeTrashEntry inserts leaf and returns its tree path and nesting flag.
// Structure follows original filename; leaf key follows rewritten name.
func placeTrashEntry(root *DirEntry, filename, name string, leaf *FileEntry) (string, bool) {
	segments := SplitPath(filename)
	if len(segments) == 1 {
		root.Set(name, leaf)
		return name, false
	}

	rewritten := SplitPath(name)
	segments[len(segments)-1] = rewritten[len(rewritten)-1]

	// segments is non-empty and leaf is non-nil here.
	_ = Insert(root, segments, leaf)

	return strings.Join(segments, "/"), true
}

