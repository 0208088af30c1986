package internal

import (
	"testing"
	"time"

	"github.com/micutio/navkit/internal/route"
)

func TestPlayback(t *testing.T) {
	start := time.Date(2024, time.May, 1, 17, 0, 0, 0, time.UTC)
	events := Playback(testRoute(), start)

	expected := []struct {
		kind     EventKind
		index    int
		distance int64
		offset   time.Duration
	}{
		{EventManeuver, 0, 0, 0},
		{EventSpeedLimitRestored, 0, 0, 0},
		{EventManeuver, 1, 340, 0},
		{EventSpeedLimitExceeded, 0, 340, 0},
		{EventManeuver, 2, 1500, 120000 * 340 / 1840 * time.Millisecond},
		{EventDestinationReached, 2, 0, 2 * time.Minute},
	}

	if len(events) != len(expected) {
		t.Fatalf("Expected %d events, got %d", len(expected), len(events))
	}

	for i, want := range expected {
		got := events[i]
		if got.Kind != want.kind || got.ManeuverIndex != want.index || got.DistanceToManeuver.Meters != want.distance {
			t.Errorf("event %d: expected %v #%d %d m, got %v #%d %d m",
				i, want.kind, want.index, want.distance, got.Kind, got.ManeuverIndex, got.DistanceToManeuver.Meters)
		}

		if !got.Time.Equal(start.Add(want.offset)) {
			t.Errorf("event %d: expected time %v, got %v", i, start.Add(want.offset), got.Time)
		}
	}
}

func TestPlaybackDrivesGuidanceToArrival(t *testing.T) {
	guidance := newTestGuidance(t)

	var snapshot Snapshot
	for _, ev := range Playback(guidance.Route(), time.Now()) {
		snapshot = guidance.Apply(ev)
	}

	if !snapshot.Status.Has(StatusArrived) || snapshot.Panel.Icon != "arrive" {
		t.Errorf("Expected to arrive, got status %v icon %q", snapshot.Status, snapshot.Panel.Icon)
	}
}

func TestPlaybackEmptyRoute(t *testing.T) {
	if events := Playback(&route.Route{}, time.Now()); events != nil {
		t.Errorf("Expected no events, got %v", events)
	}
}
