// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
	"time"
)

func TestHeatDecay(t *testing.T) {
	tracker := NewHeatTracker()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tracker.Ignite("t-1", HeatPut, start)

	if heat := tracker.Heat("t-1", start); heat != 1.0 {
		t.Errorf("Heat at ignition = %v, want 1.0", heat)
	}
	if heat := tracker.Heat("t-1", start.Add(HeatDecayDuration/2)); heat < 0.49 || heat > 0.51 {
		t.Errorf("Heat at half decay = %v, want ~0.5", heat)
	}
	if heat := tracker.Heat("t-1", start.Add(HeatDecayDuration)); heat != 0 {
		t.Errorf("Heat after decay = %v, want 0", heat)
	}
	if heat := tracker.Heat("t-2", start); heat != 0 {
		t.Errorf("Heat of unknown row = %v, want 0", heat)
	}
}

func TestHeatBackground(t *testing.T) {
	tracker := NewHeatTracker()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tracker.Ignite("put", HeatPut, now)
	tracker.Ignite("gone", HeatRemove, now)

	if color, ok := tracker.Background(DefaultTheme, "put", now); !ok || color != DefaultTheme.HotAccentPut {
		t.Errorf("put background = %v %v", color, ok)
	}
	if color, ok := tracker.Background(DefaultTheme, "gone", now); !ok || color != DefaultTheme.HotAccentRemove {
		t.Errorf("remove background = %v %v", color, ok)
	}
	if _, ok := tracker.Background(DefaultTheme, "put", now.Add(HeatDecayDuration*3/4)); ok {
		t.Error("row below half heat should not be tinted")
	}
}

func TestHasHotCollectsDecayed(t *testing.T) {
	tracker := NewHeatTracker()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tracker.Ignite("t-1", HeatPut, now)

	if !tracker.HasHot(now.Add(time.Millisecond)) {
		t.Error("expected hot row")
	}
	if tracker.HasHot(now.Add(HeatDecayDuration)) {
		t.Error("expected no hot rows after decay")
	}
	if len(tracker.entries) != 0 {
		t.Errorf("decayed entries not collected: %d left", len(tracker.entries))
	}
}
