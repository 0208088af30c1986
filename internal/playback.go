package internal

import (
	"time"

	"github.com/micutio/navkit/internal/route"
	"github.com/micutio/navkit/internal/units"
)

// Playback turns a route into the event sequence a navigation engine would have reported while
// driving it: the upcoming maneuver with its distance after each maneuver is passed, the recorded
// speed samples in order, and the arrival. Event times advance with the route duration, starting
// at start.
func Playback(r *route.Route, start time.Time) []Event {
	if r == nil || len(r.Maneuvers) == 0 {
		return nil
	}

	total := r.TotalDistance()
	events := make([]Event, 0, 2*len(r.Maneuvers)+1) //nolint:mnd // maneuver and sample per step

	var travelled int64

	for i := range r.Maneuvers {
		at := start
		if total > 0 {
			at = start.Add(time.Duration(r.DurationMillis*travelled/total) * time.Millisecond)
		}

		toManeuver := r.Maneuvers[i].DistanceFromPrevious

		events = append(events, Event{
			Kind:               EventManeuver,
			Time:               at,
			ManeuverIndex:      i,
			DistanceToManeuver: SomeMeters(toManeuver),
		})

		if i < len(r.Drive) {
			events = append(events, sampleEvent(r.Drive[i], at, toManeuver))
		}

		travelled += toManeuver
	}

	events = append(events, Event{
		Kind:          EventDestinationReached,
		Time:          start.Add(time.Duration(r.DurationMillis) * time.Millisecond),
		ManeuverIndex: len(r.Maneuvers) - 1,
	})

	return events
}

func sampleEvent(sample route.DriveSample, at time.Time, toManeuver int64) Event {
	kind := EventSpeedLimitRestored
	if units.IsSpeeding(sample.Speed, sample.SpeedLimit) {
		kind = EventSpeedLimitExceeded
	}

	return Event{
		Kind:               kind,
		Time:               at,
		DistanceToManeuver: SomeMeters(toManeuver),
		Speed:              sample.Speed,
		SpeedLimit:         sample.SpeedLimit,
	}
}
