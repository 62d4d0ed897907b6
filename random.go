// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"math/big"
	mrand "math/rand/v2"
)

// MaxUniqueNameAttempts bounds UniqueName retries on a degenerate source.
const MaxUniqueNameAttempts = 1024

// Source provides randomness for patch builders.
type Source interface {
	// Bytes returns n random bytes (empty slice for n <= 0).
	Bytes(n int) ([]byte, error)
	// UniformInt returns uniform integer in [min, max]; min when min >= max.
	UniformInt(min, max int64) (int64, error)
}

// cryptoSource draws from crypto/rand or any caller-provided reader.
type cryptoSource struct {
	r io.Reader
}

// CryptoSource returns Source backed by crypto/rand.
func CryptoSource() Source {
	return cryptoSource{r: crand.Reader}
}

// ReaderSource returns Source reading entropy from r.
// Exhausted or failing readers surface as ErrEntropySource.
func ReaderSource(r io.Reader) Source {
	return cryptoSource{r: r}
}

// Bytes reads n bytes from underlying reader.
func (s cryptoSource) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return nil, fmt.Errorf("%w: read %d bytes: %w", ErrEntropySource, n, err)
	}

	return buf, nil
}

// UniformInt draws uniform value in [min, max] using rejection sampling.
func (s cryptoSource) UniformInt(min, max int64) (int64, error) {
	if min >= max {
		return min, nil
	}

	span := new(big.Int).Sub(big.NewInt(max), big.NewInt(min))
	span.Add(span, big.NewInt(1))

	n, err := crand.Int(s.r, span)
	if err != nil {
		return 0, fmt.Errorf("%w: uniform int: %w", ErrEntropySource, err)
	}

	return n.Add(n, big.NewInt(min)).Int64(), nil
}

// seededSource is deterministic PCG source. Not safe for concurrent use.
type seededSource struct {
	rng *mrand.Rand
}

// NewSeededSource returns deterministic Source for tests and reproducible patches.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // reproducible by intent
}

// Bytes fills n bytes from PCG stream.
func (s *seededSource) Bytes(n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)
	var word [8]byte
	for i := 0; i < n; i += len(word) {
		binary.LittleEndian.PutUint64(word[:], s.rng.Uint64())
		copy(buf[i:], word[:])
	}

	return buf, nil
}

// UniformInt draws uniform value in [min, max].
func (s *seededSource) UniformInt(min, max int64) (int64, error) {
	if min >= max {
		return min, nil
	}

	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int64(s.rng.Uint64()), nil
	}

	return int64(uint64(min) + s.rng.Uint64N(span+1)), nil
}

// Generator produces names, numbers, and payloads for patch entries.
type Generator struct {
	source Source
}

// NewGenerator wraps source; nil source means CryptoSource.
func NewGenerator(source Source) *Generator {
	if source == nil {
		source = CryptoSource()
	}

	return &Generator{source: source}
}

// UniqueName returns hex of lengthBytes random bytes not reported by taken.
//
// Retries on collision up to MaxUniqueNameAttempts times and then fails with
// ErrUniqueNameExhausted. With 30 bytes a retry practically never happens;
// the bound only matters for a broken source.
func (g *Generator) UniqueName(lengthBytes int, taken func(name string) bool) (string, error) {
	if lengthBytes <= 0 {
		lengthBytes = DefaultNameLength
	}

	for attempt := 0; attempt < MaxUniqueNameAttempts; attempt++ {
		raw, err := g.source.Bytes(lengthBytes)
		if err != nil {
			return "", err
		}

		name := hex.EncodeToString(raw)
		if taken == nil || !taken(name) {
			return name, nil
		}
	}

	return "", fmt.Errorf("%w: %d attempts with %d bytes", ErrUniqueNameExhausted, MaxUniqueNameAttempts, lengthBytes)
}

// UniformInt returns uniform integer in [min, max]; min > max is clamped to min.
func (g *Generator) UniformInt(min, max int64) (int64, error) {
	if min > max {
		return min, nil
	}

	return g.source.UniformInt(min, max)
}

// RandomBytes returns n random bytes.
func (g *Generator) RandomBytes(n int) ([]byte, error) {
	return g.source.Bytes(n)
}
