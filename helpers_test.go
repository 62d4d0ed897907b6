// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

import (
	"strings"
	"testing"

	"github.com/woozymasta/pathrules"
)

// includeRules builds include rules from raw patterns for concise test setup.
func includeRules(patterns ...string) []pathrules.Rule {
	rules := make([]pathrules.Rule, 0, len(patterns))
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		rules = append(rules, pathrules.Rule{
			Action:  pathrules.ActionInclude,
			Pattern: pattern,
		})
	}

	return rules
}

// constantSource returns the same bytes forever to force name collisions.
type constantSource struct {
	value byte
}

func (s constantSource) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = s.value
	}

	return buf, nil
}

func (s constantSource) UniformInt(min, _ int64) (int64, error) {
	return min, nil
}

// mustFile asserts entry at path is a file entry.
func mustFile(t *testing.T, root *DirEntry, path string) *FileEntry {
	t.Helper()

	entry, ok := Lookup(root, SplitPath(path))
	if !ok {
		t.Fatalf("Lookup(%q): not found", path)
	}

	file, ok := entry.(*FileEntry)
	if !ok {
		t.Fatalf("Lookup(%q): kind %s, want file", path, entry.Kind())
	}

	return file
}

// mustDir asserts entry at path is a directory entry.
func mustDir(t *testing.T, root *DirEntry, path string) *DirEntry {
	t.Helper()

	entry, ok := Lookup(root, SplitPath(path))
	if !ok {
		t.Fatalf("Lookup(%q): not found", path)
	}

	dir, ok := entry.(*DirEntry)
	if !ok {
		t.Fatalf("Lookup(%q): kind %s, want dir", path, entry.Kind())
	}

	return dir
}

