// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

import "strings"

// SplitPath splits name on "/" and "\" into raw segments.
// Empty and dot segments are kept as names, so "a//b" yields ["a", "", "b"].
func SplitPath(name string) []string {
	return strings.Split(strings.ReplaceAll(name, `\`, "/"), "/")
}

// HasPathSeparator reports whether name contains "/" or "\".
func HasPathSeparator(name string) bool {
	return strings.ContainsAny(name, `/\`)
}

// JoinPath joins parent and name with "/".
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}

	return parent + "/" + name
}

// normalizePathForMatching normalizes rule patterns and names for matcher use.
// Leading "/" is kept: pathrules anchors such patterns at the root.
func normalizePathForMatching(path string) string {
	path = strings.TrimSpace(path)
	path = strings.ReplaceAll(path, `\`, `/`)
	path = strings.TrimPrefix(path, "./")
	return path
}

// normalizeMatchCandidate converts an entry name to a root-relative candidate.
func normalizeMatchCandidate(name string) string {
	return strings.TrimLeft(normalizePathForMatching(name), "/")
}
