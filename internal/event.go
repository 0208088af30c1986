package internal

import "time"

// EventKind names what the navigation engine reported.
type EventKind int

const (
	EventPosition EventKind = iota
	EventManeuver
	EventRerouteBegin
	EventRerouteEnd
	EventDestinationReached
	EventGPSLost
	EventGPSRestored
	EventSpeedLimitExceeded
	EventSpeedLimitRestored
)

var eventNames = [...]string{ //nolint:gochecknoglobals // enum names
	EventPosition:           "position",
	EventManeuver:           "maneuver",
	EventRerouteBegin:       "reroute_begin",
	EventRerouteEnd:         "reroute_end",
	EventDestinationReached: "destination_reached",
	EventGPSLost:            "gps_lost",
	EventGPSRestored:        "gps_restored",
	EventSpeedLimitExceeded: "speed_limit_exceeded",
	EventSpeedLimitRestored: "speed_limit_restored",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}

	return eventNames[k]
}

// Event is a single update from the navigation engine. Only the fields that belong to the kind
// are read: positions carry distance and speeds, maneuver changes carry the new index and
// distance, speed limit events carry speeds. Speeds are in m/s.
type Event struct {
	Kind               EventKind
	Time               time.Time
	ManeuverIndex      int
	DistanceToManeuver OptionalMeters
	Speed              float64
	SpeedLimit         float64
}
