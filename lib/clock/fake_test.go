// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	clock := Fake(epoch)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("second Now() = %v, want unchanged %v", got, epoch)
	}
	clock.Advance(5 * time.Second)
	want := epoch.Add(5 * time.Second)
	if got := clock.Now(); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeClockAdvanceNegativeIgnored(t *testing.T) {
	clock := Fake(epoch)
	clock.Advance(-time.Hour)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() after negative Advance = %v, want %v", got, epoch)
	}
}

func TestFakeClockSet(t *testing.T) {
	clock := Fake(epoch)
	target := epoch.AddDate(0, 3, 0)
	clock.Set(target)
	if got := clock.Now(); !got.Equal(target) {
		t.Fatalf("Now() after Set = %v, want %v", got, target)
	}
}

func TestFakeClockStep(t *testing.T) {
	clock := Fake(epoch)
	clock.SetStep(time.Second)

	first := clock.Now()
	second := clock.Now()
	if !first.Equal(epoch) {
		t.Errorf("first Now() = %v, want %v", first, epoch)
	}
	if !second.Equal(epoch.Add(time.Second)) {
		t.Errorf("second Now() = %v, want %v", second, epoch.Add(time.Second))
	}

	clock.SetStep(0)
	third := clock.Now()
	fourth := clock.Now()
	if !third.Equal(fourth) {
		t.Errorf("Now() moved with step disabled: %v then %v", third, fourth)
	}
}

func TestFakeClockConcurrentNow(t *testing.T) {
	clock := Fake(epoch)
	clock.SetStep(time.Millisecond)

	const goroutines = 8
	const calls = 100
	var waitGroup sync.WaitGroup
	for range goroutines {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for range calls {
				clock.Now()
			}
		}()
	}
	waitGroup.Wait()

	want := epoch.Add(goroutines * calls * time.Millisecond)
	if got := clock.Now(); !got.Equal(want) {
		t.Fatalf("Now() after concurrent calls = %v, want %v", got, want)
	}
}

func TestRealClockMonotone(t *testing.T) {
	source := Real()
	first := source.Now()
	second := source.Now()
	if second.Before(first) {
		t.Fatalf("real clock went backwards: %v then %v", first, second)
	}
}
