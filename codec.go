// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// fileEntryJSON is the asar wire shape of one file or link entry.
type fileEntryJSON struct {
	Size       *int64     `json:"size,omitempty"`
	Offset     *string    `json:"offset,omitempty"`
	Unpacked   bool       `json:"unpacked,omitempty"`
	Executable bool       `json:"executable,omitempty"`
	Integrity  *Integrity `json:"integrity,omitempty"`
	Link       *string    `json:"link,omitempty"`
}

// dirEntryJSON is the asar wire shape of one directory entry.
type dirEntryJSON struct {
	Files map[string]Entry `json:"files"`
}

// MarshalJSON encodes file entry as {"size": N, "offset": "O"} and link
// entry as {"link": "target"}. Unset offset and flags are omitted.
func (f *FileEntry) MarshalJSON() ([]byte, error) {
	raw := fileEntryJSON{
		Unpacked:   f.Unpacked,
		Executable: f.Executable,
		Integrity:  f.Integrity,
	}

	if f.Link != "" {
		link := f.Link
		raw.Link = &link
	} else {
		size := f.Size
		raw.Size = &size
	}
	if f.Offset != "" {
		offset := f.Offset
		raw.Offset = &offset
	}

	return json.Marshal(raw)
}

// MarshalJSON encodes directory as {"files": {...}}.
func (d *DirEntry) MarshalJSON() ([]byte, error) {
	files := map[string]Entry{}
	if d != nil {
		for name, child := range d.Files {
			if child != nil {
				files[name] = child
			}
		}
	}

	return json.Marshal(dirEntryJSON{Files: files})
}

// MarshalJSON encodes header root table.
func (h Header) MarshalJSON() ([]byte, error) {
	return h.Files.MarshalJSON()
}

// UnmarshalJSON decodes header root table.
func (h *Header) UnmarshalJSON(data []byte) error {
	entry, err := decodeEntry(data, "")
	if err != nil {
		return err
	}

	dir, ok := entry.(*DirEntry)
	if !ok {
		return fmt.Errorf("%w: root is not a files table", ErrInvalidHeaderJSON)
	}

	h.Files = dir
	return nil
}

// EncodeHeader returns compact JSON of header as written in asar archives.
func EncodeHeader(h Header) ([]byte, error) {
	data, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}

	return data, nil
}

// DecodeHeader parses asar header JSON.
func DecodeHeader(data []byte) (Header, error) {
	var h Header
	if err := json.Unmarshal(data, &h); err != nil {
		if errors.Is(err, ErrInvalidHeaderJSON) {
			return Header{}, err
		}
		return Header{}, fmt.Errorf("%w: %w", ErrInvalidHeaderJSON, err)
	}

	return h, nil
}

// decodeEntry decodes one node; wire format has no tag, so "files" marks a directory.
func decodeEntry(data []byte, path string) (Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, fmt.Errorf("%w: %q: entry is not an object", ErrInvalidHeaderJSON, path)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidHeaderJSON, path, err)
	}

	if filesRaw, ok := fields["files"]; ok {
		return decodeDir(filesRaw, path)
	}

	_, hasSize := fields["size"]
	_, hasLink := fields["link"]
	if !hasSize && !hasLink {
		return nil, fmt.Errorf("%w: %q: entry is neither file, link nor directory", ErrInvalidHeaderJSON, path)
	}

	var raw fileEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidHeaderJSON, path, err)
	}

	file := &FileEntry{
		Integrity:  raw.Integrity,
		Unpacked:   raw.Unpacked,
		Executable: raw.Executable,
	}
	if raw.Size != nil {
		file.Size = *raw.Size
	}
	if raw.Link != nil {
		if *raw.Link == "" {
			return nil, fmt.Errorf("%w: %q: empty link target", ErrInvalidHeaderJSON, path)
		}
		file.Link = *raw.Link
	}
	if raw.Offset != nil {
		if _, err := strconv.ParseUint(*raw.Offset, 10, 64); err != nil {
			return nil, fmt.Errorf("%w: %q: offset %q is not decimal", ErrInvalidHeaderJSON, path, *raw.Offset)
		}
		file.Offset = *raw.Offset
	}

	return file, nil
}

// decodeDir decodes "files" table of one directory.
func decodeDir(data []byte, path string) (*DirEntry, error) {
	var children map[string]json.RawMessage
	if err := json.Unmarshal(data, &children); err != nil {
		return nil, fmt.Errorf("%w: %q: files is not an object: %w", ErrInvalidHeaderJSON, path, err)
	}

	dir := &DirEntry{Files: make(map[string]Entry, len(children))}
	for name, raw := range children {
		child, err := decodeEntry(raw, JoinPath(path, name))
		if err != nil {
			return nil, err
		}
		dir.Files[name] = child
	}

	return dir, nil
}
