// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HeatDecayDuration is how long a row glows after a change.
const HeatDecayDuration = 2 * time.Second

// HeatTickInterval is the re-render interval while any rows are hot.
const HeatTickInterval = 100 * time.Millisecond

// HeatKind distinguishes the kinds of change for color selection.
type HeatKind int

const (
	// HeatPut marks a created or updated row.
	HeatPut HeatKind = iota
	// HeatRemove marks a deleted row.
	HeatRemove
)

type heatEntry struct {
	ignition time.Time
	kind     HeatKind
}

// HeatTracker records when rows last changed so the viewer can tint
// them for a moment after a commit, a create, or a delete. Each change
// "ignites" a row, which then decays from full intensity to zero over
// [HeatDecayDuration].
type HeatTracker struct {
	entries map[string]heatEntry
}

// NewHeatTracker creates an empty heat tracker.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{
		entries: make(map[string]heatEntry),
	}
}

// Ignite records a change for a row, restarting its decay.
func (tracker *HeatTracker) Ignite(itemID string, kind HeatKind, now time.Time) {
	tracker.entries[itemID] = heatEntry{ignition: now, kind: kind}
}

// Heat returns the current intensity for a row: 1.0 at ignition,
// decaying linearly to 0.0.
func (tracker *HeatTracker) Heat(itemID string, now time.Time) float64 {
	entry, exists := tracker.entries[itemID]
	if !exists {
		return 0.0
	}
	elapsed := now.Sub(entry.ignition)
	if elapsed >= HeatDecayDuration || elapsed < 0 {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(HeatDecayDuration)
}

// Background returns the tint for a row, or false if the row is not
// hot. Rows above half intensity use the accent color for their kind.
func (tracker *HeatTracker) Background(theme Theme, itemID string, now time.Time) (lipgloss.Color, bool) {
	if tracker.Heat(itemID, now) < 0.5 {
		return "", false
	}
	if tracker.entries[itemID].kind == HeatRemove {
		return theme.HotAccentRemove, true
	}
	return theme.HotAccentPut, true
}

// HasHot reports whether any row still has heat, meaning the tick
// timer should keep running. Fully decayed entries are dropped.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	hot := false
	for itemID, entry := range tracker.entries {
		if now.Sub(entry.ignition) < HeatDecayDuration {
			hot = true
			continue
		}
		delete(tracker.entries, itemID)
	}
	return hot
}
