package route

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/micutio/navkit/internal/maneuver"
	"googlemaps.github.io/maps"
)

const apiKeyVariable = "GOOGLE_MAPS_API_KEY"

var (
	ErrMissingAPIKey = errors.New("set " + apiKeyVariable + " in the environment or .env")
	ErrNoRoute       = errors.New("no route found")
)

//nolint:gochecknoglobals // compiled once
var (
	boldSegment = regexp.MustCompile(`<b>(.*?)</b>`)
	htmlTag     = regexp.MustCompile(`<[^>]*>`)
	ordinalExit = regexp.MustCompile(`(?i)(\d+)(?:st|nd|rd|th) exit`)
	exitNumber  = regexp.MustCompile(`(?i)^take exit (\d+[a-z]?)\b`)
	turnPhrase  = regexp.MustCompile(`(?i)\b(?:(slight|sharp)\s+)?(left|right)\b`)
)

// directionWords are bold segments that name a direction rather than a street.
var directionWords = map[string]bool{ //nolint:gochecknoglobals // static lookup
	"left": true, "right": true, "slight left": true, "slight right": true,
	"sharp left": true, "sharp right": true, "straight": true, "u-turn": true,
	"north": true, "northeast": true, "east": true, "southeast": true,
	"south": true, "southwest": true, "west": true, "northwest": true,
}

// instructionRule classifies a step by its plain, lower-cased instruction text. The first
// matching rule wins, steps matching none are junctions.
type instructionRule struct {
	pattern    *regexp.Regexp
	action     maneuver.Action
	attributes maneuver.Attribute
}

//nolint:gochecknoglobals // compiled once
var instructionRules = []instructionRule{
	{regexp.MustCompile(`\b(roundabout|rotary|traffic circle)\b`), maneuver.ActionRoundabout, 0},
	{regexp.MustCompile(`\bu-turn\b`), maneuver.ActionUTurn, 0},
	{regexp.MustCompile(`\bferry\b`), maneuver.ActionFerry, maneuver.AttrFerry},
	{regexp.MustCompile(`^take the .*\btrain\b`), maneuver.ActionFerry, maneuver.AttrCarShuttleTrain},
	{regexp.MustCompile(`^merge\b`), maneuver.ActionEnterHighway, maneuver.AttrHighway},
	{regexp.MustCompile(`^take the .*\bramp onto\b`), maneuver.ActionEnterHighway, maneuver.AttrHighway},
	{regexp.MustCompile(`^take (exit|the exit|the .*\bramp)\b`), maneuver.ActionLeaveHighway, maneuver.AttrHighway},
	{regexp.MustCompile(`^keep .*\bat the fork\b`), maneuver.ActionChangeHighway, maneuver.AttrHighway},
}

// LoadAPIKey reads the Google Maps API key from the environment, falling back to a .env file in
// the working directory.
func LoadAPIKey() (string, error) {
	if apiKey := os.Getenv(apiKeyVariable); apiKey != "" {
		return apiKey, nil
	}

	envFile, err := godotenv.Read(".env")
	if err != nil || envFile[apiKeyVariable] == "" {
		return "", ErrMissingAPIKey
	}

	return envFile[apiKeyVariable], nil
}

// FetchGoogle requests driving directions between origin and destination.
func FetchGoogle(ctx context.Context, apiKey, origin, destination string) (*Route, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("route.FetchGoogle: %w", err)
	}

	request := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
	}

	routes, _, err := client.Directions(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("route.FetchGoogle: %w", err)
	}

	route, err := FromGoogle(routes)
	if err != nil {
		return nil, fmt.Errorf("route.FetchGoogle: %w", err)
	}

	return route, nil
}

// FromGoogle converts the first Directions route into maneuvers. Each step becomes one maneuver
// placed at the step start, and an arrival maneuver is added at the end of the last leg.
func FromGoogle(routes []maps.Route) (*Route, error) {
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, ErrNoRoute
	}

	source := routes[0]
	route := &Route{Name: source.Summary}

	var (
		previousMeters int64
		previousName   string
	)

	for _, leg := range source.Legs {
		if leg == nil {
			continue
		}

		route.DurationMillis += leg.Duration.Milliseconds()

		if len(route.Waypoints) == 0 {
			route.Waypoints = append(route.Waypoints, Waypoint{
				Name:       leg.StartAddress,
				Coordinate: toCoordinate(leg.StartLocation),
			})
		}

		for _, step := range leg.Steps {
			if step == nil {
				continue
			}

			m := stepToManeuver(step, len(route.Maneuvers) == 0)
			m.DistanceFromPrevious = previousMeters
			m.RoadName = previousName

			route.Maneuvers = append(route.Maneuvers, m)
			previousMeters = int64(step.Distance.Meters)
			previousName = m.NextRoadName
		}

		route.Waypoints = append(route.Waypoints, Waypoint{
			Name:       leg.EndAddress,
			Coordinate: toCoordinate(leg.EndLocation),
		})
	}

	if len(route.Maneuvers) == 0 {
		return nil, ErrNoRoute
	}

	destination := route.Waypoints[len(route.Waypoints)-1]
	last := route.Maneuvers[len(route.Maneuvers)-1]

	route.Maneuvers = append(route.Maneuvers, maneuver.Maneuver{
		Action:               maneuver.ActionEnd,
		RoadName:             previousName,
		DistanceFromPrevious: previousMeters,
		MapOrientation:       last.MapOrientation,
		Coordinate:           destination.Coordinate,
	})

	return route, nil
}

func stepToManeuver(step *maps.Step, first bool) maneuver.Maneuver {
	m := classifyInstructions(step.HTMLInstructions)
	m.Coordinate = toCoordinate(step.StartLocation)
	m.MapOrientation = bearing(toCoordinate(step.StartLocation), toCoordinate(step.EndLocation))

	// The first step only tells the heading.
	if first {
		m.Action = maneuver.ActionUndefined
		m.Turn = maneuver.TurnUndefined
	}

	return m
}

// classifyInstructions derives action, turn and road of a step from its HTML instructions, e.g.
// "Turn <b>left</b> onto <b>Elm St</b>" or "Take exit <b>12</b> toward <b>Airport</b>".
func classifyInstructions(instructions string) maneuver.Maneuver {
	text := strings.ToLower(strings.TrimSpace(htmlTag.ReplaceAllString(instructions, "")))

	m := maneuver.Maneuver{
		Action:       maneuver.ActionJunction,
		NextRoadName: streetFromInstructions(instructions),
	}

	for _, rule := range instructionRules {
		if rule.pattern.MatchString(text) {
			m.Action = rule.action
			if rule.attributes != 0 {
				m.RoadElements = []maneuver.RoadElement{{Attributes: rule.attributes}}
			}

			break
		}
	}

	modifier, side := turnDirection(instructions)

	switch m.Action {
	case maneuver.ActionRoundabout:
		m.Turn = maneuver.RoundaboutTurn(max(roundaboutExit(instructions), 1))
	case maneuver.ActionUTurn:
		m.Turn = maneuver.TurnReturn
	case maneuver.ActionLeaveHighway:
		m.Turn = keepTurn(side, maneuver.TurnKeepRight)
		m.Signpost = exitSignpost(text, m.NextRoadName)
		m.NextRoadName = ""
	case maneuver.ActionChangeHighway:
		m.Turn = keepTurn(side, maneuver.TurnKeepMiddle)
	case maneuver.ActionJunction:
		if strings.HasPrefix(text, "keep") {
			m.Turn = keepTurn(side, maneuver.TurnNone)
		} else {
			m.Turn = junctionTurn(modifier, side)
		}
	default:
		m.Turn = maneuver.TurnNone
	}

	return m
}

// turnDirection finds the turn phrase of the instructions with the street names removed, so
// that "Left Bank Rd" is not taken for a direction.
func turnDirection(instructions string) (string, string) {
	withoutStreets := boldSegment.ReplaceAllStringFunc(instructions, func(segment string) string {
		text := strings.TrimSpace(htmlTag.ReplaceAllString(segment, ""))
		if directionWords[strings.ToLower(text)] {
			return text
		}

		return ""
	})

	match := turnPhrase.FindStringSubmatch(htmlTag.ReplaceAllString(withoutStreets, ""))
	if match == nil {
		return "", ""
	}

	return strings.ToLower(match[1]), strings.ToLower(match[2])
}

func keepTurn(side string, otherwise maneuver.Turn) maneuver.Turn {
	switch side {
	case "left":
		return maneuver.TurnKeepLeft
	case "right":
		return maneuver.TurnKeepRight
	default:
		return otherwise
	}
}

func junctionTurn(modifier, side string) maneuver.Turn {
	if side == "" {
		return maneuver.TurnNone
	}

	left := side == "left"

	switch modifier {
	case "slight":
		return pick(left, maneuver.TurnLightLeft, maneuver.TurnLightRight)
	case "sharp":
		return pick(left, maneuver.TurnHeavyLeft, maneuver.TurnHeavyRight)
	default:
		return pick(left, maneuver.TurnQuiteLeft, maneuver.TurnQuiteRight)
	}
}

func pick(left bool, leftTurn, rightTurn maneuver.Turn) maneuver.Turn {
	if left {
		return leftTurn
	}

	return rightTurn
}

// exitSignpost builds the sign of a highway exit. A bold exit number is not a destination.
func exitSignpost(text, destination string) *maneuver.Signpost {
	signpost := &maneuver.Signpost{}

	if match := exitNumber.FindStringSubmatch(text); match != nil {
		signpost.ExitNumber = strings.ToUpper(match[1])
	}

	if !strings.EqualFold(destination, signpost.ExitNumber) {
		signpost.ExitText = destination
	}

	if signpost.ExitNumber == "" && signpost.ExitText == "" {
		return nil
	}

	return signpost
}

// streetFromInstructions returns the last bold segment that is not a direction word, e.g.
// "Main St" for "Turn <b>left</b> onto <b>Main St</b>".
func streetFromInstructions(instructions string) string {
	segments := boldSegment.FindAllStringSubmatch(instructions, -1)
	for i := len(segments) - 1; i >= 0; i-- {
		text := strings.TrimSpace(htmlTag.ReplaceAllString(segments[i][1], ""))
		if text != "" && !directionWords[strings.ToLower(text)] {
			return text
		}
	}

	return ""
}

func roundaboutExit(instructions string) int {
	match := ordinalExit.FindStringSubmatch(htmlTag.ReplaceAllString(instructions, ""))
	if match == nil {
		return 0
	}

	exit, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}

	return exit
}

func toCoordinate(latLng maps.LatLng) maneuver.Coordinate {
	return maneuver.Coordinate{
		Lat: latLng.Lat,
		Lon: latLng.Lng,
	}
}
