// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestGeneratorUniqueName(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(NewSeededSource(1))
	seen := map[string]struct{}{}
	taken := func(name string) bool {
		_, ok := seen[name]
		return ok
	}

	for i := 0; i < 256; i++ {
		name, err := gen.UniqueName(30, taken)
		if err != nil {
			t.Fatalf("UniqueName: %v", err)
		}
		if len(name) != 60 {
			t.Fatalf("len(name)=%d, want 60", len(name))
		}
		if _, err := hex.DecodeString(name); err != nil {
			t.Fatalf("name %q is not hex: %v", name, err)
		}
		if taken(name) {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = struct{}{}
	}
}

func TestGeneratorUniqueNameRetries(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(NewSeededSource(3))
	first, err := gen.UniqueName(4, nil)
	if err != nil {
		t.Fatalf("UniqueName: %v", err)
	}

	// same seed replays first name, which is taken, so a retry must happen
	replay := NewGenerator(NewSeededSource(3))
	calls := 0
	second, err := replay.UniqueName(4, func(name string) bool {
		calls++
		return name == first
	})
	if err != nil {
		t.Fatalf("UniqueName: %v", err)
	}
	if second == first {
		t.Fatal("UniqueName returned taken name")
	}
	if calls != 2 {
		t.Fatalf("taken calls=%d, want 2", calls)
	}
}

func TestGeneratorUniqueNameExhausted(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(constantSource{value: 0xab})
	taken := strings.Repeat("ab", 30)

	_, err := gen.UniqueName(30, func(name string) bool { return name == taken })
	if !errors.Is(err, ErrUniqueNameExhausted) {
		t.Fatalf("expected ErrUniqueNameExhausted, got %v", err)
	}
}

func TestGeneratorUniqueNameDefaultLength(t *testing.T) {
	t.Parallel()

	name, err := NewGenerator(NewSeededSource(9)).UniqueName(0, nil)
	if err != nil {
		t.Fatalf("UniqueName: %v", err)
	}
	if len(name) != DefaultNameLength*2 {
		t.Fatalf("len(name)=%d, want %d", len(name), DefaultNameLength*2)
	}
}

func TestGeneratorUniformIntBounds(t *testing.T) {
	t.Parallel()

	sources := map[string]Source{
		"seeded": NewSeededSource(11),
		"crypto": CryptoSource(),
	}

	for name, src := range sources {
		gen := NewGenerator(src)
		for i := 0; i < 500; i++ {
			v, err := gen.UniformInt(-3, 3)
			if err != nil {
				t.Fatalf("%s: UniformInt: %v", name, err)
			}
			if v < -3 || v > 3 {
				t.Fatalf("%s: UniformInt=%d, want in [-3, 3]", name, v)
			}
		}

		v, err := gen.UniformInt(1, MaxTrashSize)
		if err != nil {
			t.Fatalf("%s: UniformInt: %v", name, err)
		}
		if v < 1 || v > MaxTrashSize {
			t.Fatalf("%s: UniformInt=%d out of trash range", name, v)
		}
	}
}

func TestGeneratorUniformIntCoversRange(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(NewSeededSource(5))
	hits := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		v, err := gen.UniformInt(0, 3)
		if err != nil {
			t.Fatalf("UniformInt: %v", err)
		}
		hits[v] = true
	}

	for v := int64(0); v <= 3; v++ {
		if !hits[v] {
			t.Fatalf("value %d never drawn", v)
		}
	}
}

func TestGeneratorUniformIntClamp(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(NewSeededSource(1))

	v, err := gen.UniformInt(10, 5)
	if err != nil {
		t.Fatalf("UniformInt: %v", err)
	}
	if v != 10 {
		t.Fatalf("UniformInt(10, 5)=%d, want 10", v)
	}

	v, err = gen.UniformInt(7, 7)
	if err != nil {
		t.Fatalf("UniformInt: %v", err)
	}
	if v != 7 {
		t.Fatalf("UniformInt(7, 7)=%d, want 7", v)
	}
}

func TestSeededSourceFullRange(t *testing.T) {
	t.Parallel()

	src := NewSeededSource(2)
	if _, err := src.UniformInt(math.MinInt64, math.MaxInt64); err != nil {
		t.Fatalf("UniformInt full range: %v", err)
	}
}

func TestSeededSourceDeterministic(t *testing.T) {
	t.Parallel()

	a, _ := NewSeededSource(42).Bytes(37)
	b, _ := NewSeededSource(42).Bytes(37)
	c, _ := NewSeededSource(43).Bytes(37)

	if len(a) != 37 {
		t.Fatalf("len=%d, want 37", len(a))
	}
	if !bytes.Equal(a, b) {
		t.Fatal("same seed produced different bytes")
	}
	if bytes.Equal(a, c) {
		t.Fatal("different seeds produced same bytes")
	}
}

func TestRandomBytesEmpty(t *testing.T) {
	t.Parallel()

	for _, src := range []Source{NewSeededSource(1), CryptoSource()} {
		got, err := NewGenerator(src).RandomBytes(0)
		if err != nil {
			t.Fatalf("RandomBytes(0): %v", err)
		}
		if got == nil || len(got) != 0 {
			t.Fatalf("RandomBytes(0)=%v, want empty slice", got)
		}
	}
}

func TestReaderSourceExhausted(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(ReaderSource(strings.NewReader("abc")))

	if _, err := gen.RandomBytes(3); err != nil {
		t.Fatalf("RandomBytes(3): %v", err)
	}
	if _, err := gen.RandomBytes(1); !errors.Is(err, ErrEntropySource) {
		t.Fatalf("expected ErrEntropySource, got %v", err)
	}
	if _, err := gen.UniformInt(0, 10); !errors.Is(err, ErrEntropySource) {
		t.Fatalf("expected ErrEntropySource, got %v", err)
	}
	if _, err := gen.UniqueName(30, nil); !errors.Is(err, ErrEntropySource) {
		t.Fatalf("expected ErrEntropySource, got %v", err)
	}
}

func TestNewGeneratorNilSource(t *testing.T) {
	t.Parallel()

	got, err := NewGenerator(nil).RandomBytes(8)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("len=%d, want 8", len(got))
	}
}
