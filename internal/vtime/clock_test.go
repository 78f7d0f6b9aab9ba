package vtime

import (
	"testing"
	"time"
)

func TestVirtualDaysElapsed(t *testing.T) {
	epoch := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	current := epoch
	clock := NewClockAt(epoch, 5*time.Minute, func() time.Time { return current })

	tests := []struct {
		name   string
		offset time.Duration
		want   int
	}{
		{"at epoch", 0, 0},
		{"just under one window", 5*time.Minute - time.Second, 0},
		{"exactly one window", 5 * time.Minute, 1},
		{"partway through second window", 7 * time.Minute, 1},
		{"many windows", 61 * time.Minute, 12},
		{"before epoch clamps to zero", -time.Minute, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			current = epoch.Add(tc.offset)
			if got := clock.VirtualDaysElapsed(); got != tc.want {
				t.Fatalf("VirtualDaysElapsed() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestVirtualNowJumpsInWholeDays(t *testing.T) {
	epoch := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	current := epoch
	clock := NewClockAt(epoch, 5*time.Minute, func() time.Time { return current })

	// Inside the first window virtual now is just real now.
	current = epoch.Add(4*time.Minute + 59*time.Second)
	if got := clock.VirtualNow(); !got.Equal(current) {
		t.Fatalf("VirtualNow() inside first window = %v, want %v", got, current)
	}

	// Crossing the window boundary jumps the day component by one whole
	// day while the time of day keeps flowing from real time.
	current = epoch.Add(5 * time.Minute)
	want := current.Add(24 * time.Hour)
	if got := clock.VirtualNow(); !got.Equal(want) {
		t.Fatalf("VirtualNow() after one window = %v, want %v", got, want)
	}
	if got := clock.VirtualNow(); got.Hour() != 12 || got.Minute() != 5 {
		t.Fatalf("VirtualNow() time of day = %02d:%02d, want 12:05", got.Hour(), got.Minute())
	}
}

func TestVirtualDaysMonotonic(t *testing.T) {
	epoch := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	current := epoch
	clock := NewClockAt(epoch, 5*time.Minute, func() time.Time { return current })

	prev := clock.VirtualDaysElapsed()
	for i := 0; i < 50; i++ {
		current = current.Add(73 * time.Second)
		got := clock.VirtualDaysElapsed()
		if got < prev {
			t.Fatalf("VirtualDaysElapsed() decreased: %d -> %d", prev, got)
		}
		prev = got
	}
}

func TestNewClockAtDefaults(t *testing.T) {
	clock := NewClockAt(time.Now(), 0, nil)
	if got := clock.Window(); got != DefaultWindow {
		t.Fatalf("Window() = %v, want %v", got, DefaultWindow)
	}
}
