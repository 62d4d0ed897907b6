// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/asarpatch

package asarpatch

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/opencontainers/go-digest"
	"github.com/woozymasta/lzss"
	"github.com/woozymasta/pathrules"
)

// PayloadEncoding names codec used for generated payloads.
type PayloadEncoding string

// Payload codecs.
const (
	// PayloadEncodingLZSS stores payload as LZSS stream.
	PayloadEncodingLZSS PayloadEncoding = "lzss"
	// PayloadEncodingZstd stores payload as zstd frame.
	PayloadEncodingZstd PayloadEncoding = "zstd"
)

// integrityAlgorithm is the algorithm name asar writes in integrity blocks.
const integrityAlgorithm = "SHA256"

// payloadSelector selects trash entries whose generated payload is encoded.
type payloadSelector struct {
	matcher *pathrules.Matcher
}

// newPayloadSelector compiles payload selection rules; no usable rules yields nil,
// which selects nothing.
func newPayloadSelector(rules []pathrules.Rule, opts pathrules.MatcherOptions) (*payloadSelector, error) {
	rules = normalizeSelectorRules(rules)
	if len(rules) == 0 {
		return nil, nil
	}

	matcher, err := pathrules.NewMatcher(rules, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: compile rules: %w", ErrInvalidCompressRules, err)
	}

	return &payloadSelector{matcher: matcher}, nil
}

// normalizeSelectorRules converts rule separators to "/" and drops blank
// patterns. Leading "/" stays so anchored rules match from the header root.
func normalizeSelectorRules(rules []pathrules.Rule) []pathrules.Rule {
	normalized := make([]pathrules.Rule, 0, len(rules))
	for _, rule := range rules {
		pattern := normalizePathForMatching(rule.Pattern)
		if pattern == "" {
			continue
		}

		normalized = append(normalized, pathrules.Rule{
			Action:  rule.Action,
			Pattern: pattern,
		})
	}

	return normalized
}

// Match reports whether payload of entry name should be encoded.
// Name is matched relative to the header root.
func (s *payloadSelector) Match(name string) bool {
	if s == nil || s.matcher == nil {
		return false
	}

	candidate := normalizeMatchCandidate(name)
	if candidate == "" {
		return false
	}

	return s.matcher.Included(candidate, false)
}

// validatePayloadEncoding rejects unknown codecs.
func validatePayloadEncoding(encoding PayloadEncoding) error {
	switch encoding {
	case PayloadEncodingLZSS, PayloadEncodingZstd:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedPayloadEncoding, encoding)
	}
}

// encodePayload encodes data and reports whether the result is kept.
// Encoded data is kept only when smaller than source.
func encodePayload(encoding PayloadEncoding, data []byte) ([]byte, bool, error) {
	var (
		encoded []byte
		err     error
	)

	switch encoding {
	case PayloadEncodingLZSS:
		encoded, err = compressLZSS(data)
	case PayloadEncodingZstd:
		encoded, err = compressZstd(data)
	default:
		return nil, false, fmt.Errorf("%w: %q", ErrUnsupportedPayloadEncoding, encoding)
	}
	if err != nil {
		return nil, false, fmt.Errorf("encode payload (%s): %w", encoding, err)
	}

	if len(encoded) >= len(data) {
		return data, false, nil
	}

	return encoded, true, nil
}

// compressLZSS compresses the data using LZSS.
func compressLZSS(data []byte) ([]byte, error) {
	return lzss.Compress(data, lzss.DefaultCompressOptions())
}

// compressZstd compresses the data into a single zstd frame.
func compressZstd(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1), zstd.WithLowerEncoderMem(true))
	if err != nil {
		return nil, err
	}
	defer func() { _ = enc.Close() }()

	return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}

// computeIntegrity builds asar integrity block for data.
func computeIntegrity(data []byte, blockSize int) *Integrity {
	if blockSize <= 0 {
		blockSize = DefaultIntegrityBlock
	}

	blocks := make([]string, 0, len(data)/blockSize+1)
	for start := 0; start < len(data); start += blockSize {
		end := min(start+blockSize, len(data))
		blocks = append(blocks, digest.SHA256.FromBytes(data[start:end]).Encoded())
	}
	if len(blocks) == 0 {
		blocks = append(blocks, digest.SHA256.FromBytes(nil).Encoded())
	}

	return &Integrity{
		Algorithm: integrityAlgorithm,
		Hash:      digest.SHA256.FromBytes(data).Encoded(),
		BlockSize: blockSize,
		Blocks:    blocks,
	}
}
