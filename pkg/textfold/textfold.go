// Copyright (c) 2026 Chaekdam. All rights reserved.
// Author: dahee.park.dev@gmail.com

// Package textfold normalizes Unicode strings for case-insensitive matching.
//
// # Usage
//
// The shelf search box matches free text against titles, authors, and
// categories that mix Korean and Latin script. Byte-level comparison misses
// composed/decomposed Hangul and accented Latin variants, so both sides of a
// match are folded through the same pipeline first.
package textfold

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Fold canonicalizes a string for comparison.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC (composes decomposed Hangul jamo and accents).
// 2. Lowercases.
// 3. Trims surrounding whitespace.
func Fold(s string) string {
	return strings.TrimSpace(strings.ToLower(norm.NFC.String(s)))
}

// Contains reports whether needle occurs in haystack after folding both sides.
//
// An empty needle matches everything, mirroring the search box semantics.
func Contains(haystack, needle string) bool {
	folded := Fold(needle)
	if folded == "" {
		return true
	}
	return strings.Contains(Fold(haystack), folded)
}
