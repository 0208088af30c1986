package route

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kr/pretty"
	"github.com/micutio/navkit/internal/maneuver"
	"golang.org/x/text/language"
	"googlemaps.github.io/maps"
)

func directionsFixture() []maps.Route {
	return []maps.Route{
		{
			Summary: "Main St and Ring",
			Legs: []*maps.Leg{
				{
					StartAddress:  "Start",
					EndAddress:    "Finish",
					StartLocation: maps.LatLng{Lat: 0, Lng: 0},
					EndLocation:   maps.LatLng{Lat: 0.02, Lng: 0.01},
					Duration:      3 * time.Minute,
					Steps: []*maps.Step{
						{
							HTMLInstructions: "Head <b>east</b> on <b>Main St</b>",
							Distance:         maps.Distance{Meters: 1112},
							StartLocation:    maps.LatLng{Lat: 0, Lng: 0},
							EndLocation:      maps.LatLng{Lat: 0, Lng: 0.01},
						},
						{
							HTMLInstructions: "Turn <b>left</b> onto <b>Elm St</b>",
							Distance:         maps.Distance{Meters: 500},
							StartLocation:    maps.LatLng{Lat: 0, Lng: 0.01},
							EndLocation:      maps.LatLng{Lat: 0.0045, Lng: 0.01},
						},
						{
							HTMLInstructions: "At the roundabout, take the <b>2nd</b> exit onto <b>Ring</b>",
							Distance:         maps.Distance{Meters: 600},
							StartLocation:    maps.LatLng{Lat: 0.0045, Lng: 0.01},
							EndLocation:      maps.LatLng{Lat: 0.02, Lng: 0.01},
						},
					},
				},
			},
		},
	}
}

func TestFromGoogle(t *testing.T) {
	route, err := FromGoogle(directionsFixture())
	if err != nil {
		t.Fatalf("FromGoogle failed: %v", err)
	}

	if route.DurationMillis != 180000 {
		t.Errorf("Expected duration 180000, got %d", route.DurationMillis)
	}

	if len(route.Waypoints) != 2 || route.Waypoints[1].Name != "Finish" {
		t.Errorf("Unexpected waypoints %v", route.Waypoints)
	}

	tests := []struct {
		action   maneuver.Action
		turn     maneuver.Turn
		road     string
		nextRoad string
		distance int64
	}{
		{maneuver.ActionUndefined, maneuver.TurnUndefined, "", "Main St", 0},
		{maneuver.ActionJunction, maneuver.TurnQuiteLeft, "Main St", "Elm St", 1112},
		{maneuver.ActionRoundabout, maneuver.TurnRoundabout2, "Elm St", "Ring", 500},
		{maneuver.ActionEnd, maneuver.TurnUndefined, "Ring", "", 600},
	}

	if len(route.Maneuvers) != len(tests) {
		t.Fatalf("Expected %d maneuvers, got %d", len(tests), len(route.Maneuvers))
	}

	for i, expected := range tests {
		got := route.Maneuvers[i]
		if got.Action != expected.action || got.Turn != expected.turn {
			t.Errorf("maneuver %d: expected %v/%v, got %v/%v", i, expected.action, expected.turn, got.Action, got.Turn)
		}

		if got.RoadName != expected.road || got.NextRoadName != expected.nextRoad {
			t.Errorf("maneuver %d: expected roads %q -> %q, got %q -> %q",
				i, expected.road, expected.nextRoad, got.RoadName, got.NextRoadName)
		}

		if got.DistanceFromPrevious != expected.distance {
			t.Errorf("maneuver %d: expected distance %d, got %d", i, expected.distance, got.DistanceFromPrevious)
		}
	}
}

func TestFromGoogleInstructions(t *testing.T) {
	route, err := FromGoogle(directionsFixture())
	if err != nil {
		t.Fatalf("FromGoogle failed: %v", err)
	}

	expected := []string{
		"Head east on Main St",
		"Turn left onto Elm St",
		"At the roundabout, take the 2nd exit onto Ring",
		"You have arrived at your destination on Ring",
	}

	resolver := maneuver.NewResolver(language.English)
	for i := range route.Maneuvers {
		if got := resolver.Resolve(route.Maneuvers, i).Text; got != expected[i] {
			t.Errorf("Expected %q, got %q", expected[i], got)
		}
	}
}

func TestFromGoogleWithoutRoutes(t *testing.T) {
	if _, err := FromGoogle(nil); !errors.Is(err, ErrNoRoute) {
		t.Errorf("Expected ErrNoRoute, got %v", err)
	}

	if _, err := FromGoogle([]maps.Route{{Legs: []*maps.Leg{{}}}}); !errors.Is(err, ErrNoRoute) {
		t.Errorf("Expected ErrNoRoute for a leg without steps, got %v", err)
	}
}

func TestClassifyInstructions(t *testing.T) {
	tests := []struct {
		name       string
		html       string
		action     maneuver.Action
		turn       maneuver.Turn
		street     string
		signpost   *maneuver.Signpost
		attributes maneuver.Attribute
	}{
		{
			name:   "turn left",
			html:   "Turn <b>left</b> onto <b>Elm St</b>",
			action: maneuver.ActionJunction, turn: maneuver.TurnQuiteLeft, street: "Elm St",
		},
		{
			name:   "street named like a direction",
			html:   "Turn <b>right</b> onto <b>Left Bank Rd</b>",
			action: maneuver.ActionJunction, turn: maneuver.TurnQuiteRight, street: "Left Bank Rd",
		},
		{
			name:   "slight left",
			html:   "Slight <b>left</b> onto <b>Elm St</b>",
			action: maneuver.ActionJunction, turn: maneuver.TurnLightLeft, street: "Elm St",
		},
		{
			name:   "sharp right",
			html:   "Turn <b>sharp right</b>",
			action: maneuver.ActionJunction, turn: maneuver.TurnHeavyRight,
		},
		{
			name:   "continue",
			html:   "Continue onto <b>B27</b>",
			action: maneuver.ActionJunction, turn: maneuver.TurnNone, street: "B27",
		},
		{
			name:   "keep right",
			html:   "Keep <b>right</b> to continue on <b>Main St</b>",
			action: maneuver.ActionJunction, turn: maneuver.TurnKeepRight, street: "Main St",
		},
		{
			name:   "fork",
			html:   "Keep <b>left</b> at the fork to continue on <b>A8</b>",
			action: maneuver.ActionChangeHighway, turn: maneuver.TurnKeepLeft, street: "A8",
			attributes: maneuver.AttrHighway,
		},
		{
			name:   "u-turn",
			html:   "Make a <b>U-turn</b>",
			action: maneuver.ActionUTurn, turn: maneuver.TurnReturn,
		},
		{
			name:   "merge",
			html:   "Merge onto <b>A8</b>",
			action: maneuver.ActionEnterHighway, turn: maneuver.TurnNone, street: "A8",
			attributes: maneuver.AttrHighway,
		},
		{
			name:   "ramp onto highway",
			html:   "Take the ramp onto <b>I-5 N</b>",
			action: maneuver.ActionEnterHighway, turn: maneuver.TurnNone, street: "I-5 N",
			attributes: maneuver.AttrHighway,
		},
		{
			name:   "numbered exit",
			html:   "Take exit <b>12</b> toward <b>Airport</b>",
			action: maneuver.ActionLeaveHighway, turn: maneuver.TurnKeepRight,
			signpost:   &maneuver.Signpost{ExitNumber: "12", ExitText: "Airport"},
			attributes: maneuver.AttrHighway,
		},
		{
			name:   "numbered exit on the left",
			html:   "Take exit <b>5</b> on the <b>left</b> toward <b>Messe</b>",
			action: maneuver.ActionLeaveHighway, turn: maneuver.TurnKeepLeft,
			signpost:   &maneuver.Signpost{ExitNumber: "5", ExitText: "Messe"},
			attributes: maneuver.AttrHighway,
		},
		{
			name:   "exit without destination",
			html:   "Take exit <b>23a</b>",
			action: maneuver.ActionLeaveHighway, turn: maneuver.TurnKeepRight,
			signpost:   &maneuver.Signpost{ExitNumber: "23A"},
			attributes: maneuver.AttrHighway,
		},
		{
			name:   "ramp off highway",
			html:   "Take the ramp to <b>Airport</b>",
			action: maneuver.ActionLeaveHighway, turn: maneuver.TurnKeepRight,
			signpost:   &maneuver.Signpost{ExitText: "Airport"},
			attributes: maneuver.AttrHighway,
		},
		{
			name:   "ferry",
			html:   "Take the ferry to <b>Vashon Island</b>",
			action: maneuver.ActionFerry, turn: maneuver.TurnNone, street: "Vashon Island",
			attributes: maneuver.AttrFerry,
		},
		{
			name:   "car shuttle train",
			html:   "Take the <b>Eurotunnel</b> train",
			action: maneuver.ActionFerry, turn: maneuver.TurnNone, street: "Eurotunnel",
			attributes: maneuver.AttrCarShuttleTrain,
		},
		{
			name:   "roundabout exit",
			html:   "At the roundabout, take the <b>3rd</b> exit onto <b>Ring</b>",
			action: maneuver.ActionRoundabout, turn: maneuver.TurnRoundabout3, street: "Ring",
		},
		{
			name:   "roundabout without exit",
			html:   "At the roundabout, continue straight onto <b>Ring</b>",
			action: maneuver.ActionRoundabout, turn: maneuver.TurnRoundabout1, street: "Ring",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := classifyInstructions(test.html)

			if got.Action != test.action || got.Turn != test.turn {
				t.Errorf("Expected %v/%v, got %v/%v", test.action, test.turn, got.Action, got.Turn)
			}

			if got.NextRoadName != test.street {
				t.Errorf("Expected street %q, got %q", test.street, got.NextRoadName)
			}

			if diff := pretty.Diff(test.signpost, got.Signpost); len(diff) > 0 {
				t.Errorf("Unexpected signpost: %v", diff)
			}

			var attributes maneuver.Attribute
			for _, element := range got.RoadElements {
				attributes |= element.Attributes
			}

			if attributes != test.attributes {
				t.Errorf("Expected attributes %v, got %v", test.attributes, attributes)
			}
		})
	}
}

func TestClassifiedInstructionsResolve(t *testing.T) {
	resolver := maneuver.NewResolver(language.English)

	tests := []struct {
		html     string
		expected string
	}{
		{"Take exit <b>12</b> toward <b>Airport</b>", "Take exit 12 toward Airport"},
		{"Merge onto <b>A8</b>", "Enter the highway A8"},
		{"Make a <b>U-turn</b>", "Make a U-turn"},
		{"Take the ferry", "Take the ferry"},
	}

	for _, test := range tests {
		maneuvers := []maneuver.Maneuver{classifyInstructions(test.html)}
		if got := resolver.Resolve(maneuvers, 0).Text; got != test.expected {
			t.Errorf("Expected %q for %q, got %q", test.expected, test.html, got)
		}
	}
}

func TestStreetFromInstructions(t *testing.T) {
	tests := []struct {
		html     string
		expected string
	}{
		{"Turn <b>right</b> onto <b>Hauptstraße</b>", "Hauptstraße"},
		{"Turn <b>right</b>", ""},
		{"Head <b>north</b>", ""},
		{"Take exit <b>12</b> toward <b>Airport</b>", "Airport"},
		{"Continue onto <b><wbr/>B27</b>", "B27"},
		{"no markup at all", ""},
	}

	for _, test := range tests {
		if got := streetFromInstructions(test.html); got != test.expected {
			t.Errorf("Expected %q for %q, got %q", test.expected, test.html, got)
		}
	}
}

func TestLoadAPIKey(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		t.Setenv(apiKeyVariable, "from-env")

		key, err := LoadAPIKey()
		if err != nil || key != "from-env" {
			t.Errorf("Expected key from environment, got %q (%v)", key, err)
		}
	})

	t.Run("dotenv file", func(t *testing.T) {
		t.Setenv(apiKeyVariable, "")

		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(apiKeyVariable+"=from-file\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		t.Chdir(dir)

		key, err := LoadAPIKey()
		if err != nil || key != "from-file" {
			t.Errorf("Expected key from .env, got %q (%v)", key, err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		t.Setenv(apiKeyVariable, "")
		t.Chdir(t.TempDir())

		if _, err := LoadAPIKey(); !errors.Is(err, ErrMissingAPIKey) {
			t.Errorf("Expected ErrMissingAPIKey, got %v", err)
		}
	})
}
