// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

import (
	"math"
	"sort"
	"strconv"
)

// EntryKind discriminates header tree nodes.
type EntryKind uint8

const (
	// EntryKindFile marks a leaf entry with size and offset.
	EntryKindFile EntryKind = iota + 1
	// EntryKindDir marks an entry with named children.
	EntryKindDir
)

// String returns a short kind name.
func (k EntryKind) String() string {
	switch k {
	case EntryKindFile:
		return "file"
	case EntryKindDir:
		return "dir"
	default:
		return "unknown"
	}
}

// Entry is one node of the header tree: *FileEntry or *DirEntry.
type Entry interface {
	// Kind reports the entry discriminant.
	Kind() EntryKind

	entry()
}

// IsDirectory reports whether entry is a directory entry.
func IsDirectory(entry Entry) bool {
	return entry != nil && entry.Kind() == EntryKindDir
}

// FileEntry is a leaf pointing into the archive data blob.
type FileEntry struct {
	// Integrity is optional asar integrity metadata.
	Integrity *Integrity
	// Offset is decimal byte offset into the data blob; empty when unset.
	Offset string
	// Link is symlink target; a link entry carries no size or offset.
	Link string
	// Payload is generated content; never serialized into the header.
	Payload []byte
	// Size is declared size in bytes.
	Size int64
	// Unpacked marks content stored next to the archive in app.asar.unpacked.
	Unpacked bool
	// Executable marks content with the executable bit.
	Executable bool
}

// NewFileEntry creates a file entry with decimal offset.
// Payload may be nil for metadata-only entries.
func NewFileEntry(size int64, offset int64, payload []byte) *FileEntry {
	return &FileEntry{
		Size:    size,
		Offset:  strconv.FormatInt(offset, 10),
		Payload: payload,
	}
}

// Kind returns EntryKindFile.
func (*FileEntry) Kind() EntryKind { return EntryKindFile }

// IsLink reports whether file entry is a symlink.
func (f *FileEntry) IsLink() bool { return f != nil && f.Link != "" }

func (*FileEntry) entry() {}

// Clone returns a deep copy of file entry.
func (f *FileEntry) Clone() *FileEntry {
	if f == nil {
		return nil
	}

	out := *f
	if f.Payload != nil {
		out.Payload = append([]byte(nil), f.Payload...)
	}
	if f.Integrity != nil {
		integrity := *f.Integrity
		integrity.Blocks = append([]string(nil), f.Integrity.Blocks...)
		out.Integrity = &integrity
	}

	return &out
}

// Integrity is asar per-file integrity block.
type Integrity struct {
	// Algorithm is hash algorithm name, "SHA256" for asar.
	Algorithm string `json:"algorithm"`
	// Hash is hex digest of the whole content.
	Hash string `json:"hash"`
	// Blocks are hex digests of BlockSize chunks.
	Blocks []string `json:"blocks"`
	// BlockSize is chunk size used for Blocks.
	BlockSize int `json:"blockSize"`
}

// DirEntry is a directory node. Names are unique; Set overwrites.
type DirEntry struct {
	Files map[string]Entry
}

// NewDirEntry creates an empty directory entry.
func NewDirEntry() *DirEntry {
	return &DirEntry{Files: make(map[string]Entry)}
}

// Kind returns EntryKindDir.
func (*DirEntry) Kind() EntryKind { return EntryKindDir }

func (*DirEntry) entry() {}

// Set stores entry under name, silently replacing an existing child.
// Nil entries are ignored.
func (d *DirEntry) Set(name string, entry Entry) {
	if d == nil || entry == nil {
		return
	}

	if d.Files == nil {
		d.Files = make(map[string]Entry)
	}

	d.Files[name] = entry
}

// Get returns child by name.
func (d *DirEntry) Get(name string) (Entry, bool) {
	if d == nil {
		return nil, false
	}

	entry, ok := d.Files[name]
	return entry, ok
}

// Has reports whether name is taken in this directory.
func (d *DirEntry) Has(name string) bool {
	_, ok := d.Get(name)
	return ok
}

// Len returns number of direct children.
func (d *DirEntry) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Files)
}

// Names returns sorted child names.
func (d *DirEntry) Names() []string {
	if d == nil {
		return nil
	}

	names := make([]string, 0, len(d.Files))
	for name := range d.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Clone returns a deep copy of directory subtree.
func (d *DirEntry) Clone() *DirEntry {
	if d == nil {
		return nil
	}

	out := &DirEntry{Files: make(map[string]Entry, len(d.Files))}
	for name, child := range d.Files {
		if cloned := cloneEntry(child); cloned != nil {
			out.Files[name] = cloned
		}
	}

	return out
}

// cloneEntry deep-copies any entry kind.
func cloneEntry(entry Entry) Entry {
	switch e := entry.(type) {
	case *FileEntry:
		if e == nil {
			return nil
		}
		return e.Clone()
	case *DirEntry:
		if e == nil {
			return nil
		}
		return e.Clone()
	default:
		return nil
	}
}

// Header is the asar header root, serialized as {"files": {...}}.
type Header struct {
	Files *DirEntry
}

// NewHeader creates header with empty root directory.
func NewHeader() Header {
	return Header{Files: NewDirEntry()}
}

// Root returns root directory, allocating it on first use.
func (h *Header) Root() *DirEntry {
	if h.Files == nil {
		h.Files = NewDirEntry()
	}

	return h.Files
}

// Clone returns a deep copy of header tree.
func (h Header) Clone() Header {
	if h.Files == nil {
		return NewHeader()
	}

	return Header{Files: h.Files.Clone()}
}

// FileCount returns number of file entries in the whole tree.
func (h Header) FileCount() int {
	count := 0
	_ = Walk(h.Files, func(_ string, entry Entry) error {
		if entry.Kind() == EntryKindFile {
			count++
		}
		return nil
	})

	return count
}

// TotalSize returns sum of declared file sizes, saturating at math.MaxInt64.
func (h Header) TotalSize() int64 {
	var total int64
	_ = Walk(h.Files, func(_ string, entry Entry) error {
		file, ok := entry.(*FileEntry)
		if !ok || file.Size <= 0 {
			return nil
		}

		if total > math.MaxInt64-file.Size {
			total = math.MaxInt64
			return nil
		}

		total += file.Size
		return nil
	})

	return total
}
