// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"slices"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult is the outcome of matching a pattern against one text.
// Score is zero when the pattern did not match. Positions are the rune
// offsets of the matched characters in ascending order, for
// highlighting.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// FuzzyMatch runs fzf's V2 matching algorithm (Smith-Waterman style
// scoring with bonuses for word boundaries and camel case) of pattern
// against text. Matching is case-insensitive: the pattern is lowercased
// here and fzf folds the text. An empty pattern yields a zero result.
//
// slab is scratch memory reused across calls; pass nil to let fzf
// allocate, or share one slab across a single filtering pass.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 || text == "" {
		return FuzzyResult{}
	}

	lowered := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Start < 0 || result.Score <= 0 {
		return FuzzyResult{}
	}

	var matched []int
	if positions != nil {
		matched = slices.Clone(*positions)
		slices.Sort(matched)
	}
	return FuzzyResult{Score: result.Score, Positions: matched}
}

// NewSlab allocates scratch memory for a filtering pass over many
// texts.
func NewSlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}
