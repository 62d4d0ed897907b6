// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

// Insert places leaf under root at the nested path given by segments.
//
// Missing intermediate directories are created. A file found where a
// directory is needed is replaced by a new empty directory, and the leaf
// replaces whatever is stored under the last segment. Both overwrites are
// silent.
func Insert(root *DirEntry, segments []string, leaf *FileEntry) error {
	if root == nil {
		return ErrNilDirectory
	}
	if len(segments) == 0 {
		return ErrEmptyPath
	}
	if leaf == nil {
		return ErrNilEntry
	}

	dir := root
	for _, segment := range segments[:len(segments)-1] {
		dir = dir.ensureDir(segment)
	}

	dir.Set(segments[len(segments)-1], leaf)
	return nil
}

// InsertPath splits name with SplitPath and inserts leaf.
func InsertPath(root *DirEntry, name string, leaf *FileEntry) error {
	return Insert(root, SplitPath(name), leaf)
}

// ensureDir returns child directory by name, replacing non-directory children.
func (d *DirEntry) ensureDir(name string) *DirEntry {
	if child, ok := d.Files[name].(*DirEntry); ok && child != nil {
		return child
	}

	child := NewDirEntry()
	d.Set(name, child)
	return child
}

// Lookup walks segments from root and returns the entry found at the end.
func Lookup(root *DirEntry, segments []string) (Entry, bool) {
	if root == nil || len(segments) == 0 {
		return nil, false
	}

	dir := root
	for i, segment := range segments {
		entry, ok := dir.Get(segment)
		if !ok || entry == nil {
			return nil, false
		}

		if i == len(segments)-1 {
			return entry, true
		}

		next, isDir := entry.(*DirEntry)
		if !isDir || next == nil {
			return nil, false
		}
		dir = next
	}

	return nil, false
}

// WalkFunc is called for every entry visited by Walk with slash-joined path.
type WalkFunc func(path string, entry Entry) error

// Walk visits entries under root depth first in sorted name order.
// Directories are reported before their children. Walk stops on first error.
func Walk(root *DirEntry, fn WalkFunc) error {
	if root == nil || fn == nil {
		return nil
	}

	return walkDir(root, "", fn)
}

// walkDir visits one directory level.
func walkDir(dir *DirEntry, parent string, fn WalkFunc) error {
	for _, name := range dir.Names() {
		entry := dir.Files[name]
		if entry == nil {
			continue
		}

		path := JoinPath(parent, name)
		if err := fn(path, entry); err != nil {
			return err
		}

		if child, ok := entry.(*DirEntry); ok && child != nil {
			if err := walkDir(child, path, fn); err != nil {
				return err
			}
		}
	}

	return nil
}
