// Package route loads pre-computed routes from JSON files or the Google Directions API and turns
// them into maneuver lists.
package route

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/micutio/navkit/internal/maneuver"
	"github.com/micutio/navkit/internal/units"
)

// cruiseSpeed is assumed for routes that carry no travel time. [m/s]
const cruiseSpeed = 50.0 / 3.6

var (
	ErrEmptyRoute   = errors.New("route has no maneuvers")
	ErrInvalidRoute = errors.New("invalid route data")
)

// Waypoint is a named stop of the route.
type Waypoint struct {
	Name       string
	Coordinate maneuver.Coordinate
}

// DriveSample is one recorded speed reading along the route. Both values are in m/s; a limit of
// zero means there is no known limit.
type DriveSample struct {
	Speed      float64
	SpeedLimit float64
}

// Route is a pre-computed route ready for display.
type Route struct {
	Name           string
	Waypoints      []Waypoint
	Maneuvers      []maneuver.Maneuver
	Drive          []DriveSample
	DurationMillis int64
	Departure      time.Time // zero when unknown
}

// Start returns the departure time of the route, or now when the route file had none.
func (r *Route) Start(now time.Time) time.Time {
	if r.Departure.IsZero() {
		return now
	}

	return r.Departure
}

// TotalDistance sums the distances between all maneuvers. [m]
func (r *Route) TotalDistance() int64 {
	var total int64
	for i := range r.Maneuvers {
		total += r.Maneuvers[i].DistanceFromPrevious
	}

	return total
}

// route file layout

type fileRoute struct {
	Name       string         `json:"name"`
	Waypoints  []fileWaypoint `json:"waypoints"`
	Maneuvers  []fileManeuver `json:"maneuvers"`
	Drive      []fileSample   `json:"drive"`
	DurationMS *int64         `json:"duration_ms"`
	Departure  string         `json:"departure"`
}

type fileWaypoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type fileSignpost struct {
	ExitNumber     string      `json:"exit_number"`
	ExitText       string      `json:"exit_text"`
	ExitDirections []fileLabel `json:"exit_directions"`
}

type fileLabel struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type fileManeuver struct {
	Action         string        `json:"action"`
	Turn           string        `json:"turn"`
	RoadName       string        `json:"road_name"`
	RoadNumber     string        `json:"road_number"`
	NextRoadName   string        `json:"next_road_name"`
	NextRoadNumber string        `json:"next_road_number"`
	Signpost       *fileSignpost `json:"signpost"`
	Distance       *int64        `json:"distance"`
	Orientation    *float64      `json:"orientation"`
	Lat            float64       `json:"lat"`
	Lon            float64       `json:"lon"`
	RoadElements   [][]string    `json:"road_elements"`
}

type fileSample struct {
	Speed      float64 `json:"speed"`
	SpeedLimit float64 `json:"speed_limit"`
}

// LoadFile reads a JSON route file.
func LoadFile(path string) (*Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("route.LoadFile: %w", err)
	}

	route, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("route.LoadFile %s: %w", path, err)
	}

	return route, nil
}

// Parse decodes a JSON route. Missing distances are filled in from the coordinates of consecutive
// maneuvers and missing orientations from the bearing towards the next maneuver.
func Parse(data []byte) (*Route, error) {
	var file fileRoute
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("route.Parse: %w: %w", ErrInvalidRoute, err)
	}

	if len(file.Maneuvers) == 0 {
		return nil, fmt.Errorf("route.Parse: %w", ErrEmptyRoute)
	}

	route := &Route{
		Name:      file.Name,
		Waypoints: make([]Waypoint, 0, len(file.Waypoints)),
		Maneuvers: make([]maneuver.Maneuver, len(file.Maneuvers)),
		Drive:     make([]DriveSample, 0, len(file.Drive)),
	}

	for _, waypoint := range file.Waypoints {
		route.Waypoints = append(route.Waypoints, Waypoint{
			Name:       waypoint.Name,
			Coordinate: maneuver.Coordinate{Lat: waypoint.Lat, Lon: waypoint.Lon},
		})
	}

	for i := range file.Maneuvers {
		m, err := file.Maneuvers[i].toManeuver()
		if err != nil {
			return nil, fmt.Errorf("route.Parse: maneuver %d: %w", i, err)
		}

		route.Maneuvers[i] = m
	}

	fillGeometry(route.Maneuvers, file.Maneuvers)

	for _, sample := range file.Drive {
		route.Drive = append(route.Drive, DriveSample(sample))
	}

	// An unparseable departure is treated like a missing one.
	if departure, ok := units.ParseTimestamp(file.Departure); ok {
		route.Departure = departure
	}

	if file.DurationMS != nil {
		route.DurationMillis = *file.DurationMS
	} else {
		route.DurationMillis = estimateDuration(route.TotalDistance())
	}

	return route, nil
}

func (fm *fileManeuver) toManeuver() (maneuver.Maneuver, error) {
	if fm.Lat < -90 || fm.Lat > 90 || fm.Lon < -180 || fm.Lon > 180 {
		return maneuver.Maneuver{}, fmt.Errorf("%w: coordinate %f,%f", ErrInvalidRoute, fm.Lat, fm.Lon)
	}

	if fm.Distance != nil && *fm.Distance < 0 {
		return maneuver.Maneuver{}, fmt.Errorf("%w: negative distance %d", ErrInvalidRoute, *fm.Distance)
	}

	// Unknown names stay undefined and are shown as a plain heading.
	action, _ := maneuver.ParseAction(fm.Action)
	turn, _ := maneuver.ParseTurn(fm.Turn)

	m := maneuver.Maneuver{
		Action:         action,
		Turn:           turn,
		RoadName:       fm.RoadName,
		RoadNumber:     fm.RoadNumber,
		NextRoadName:   fm.NextRoadName,
		NextRoadNumber: fm.NextRoadNumber,
		Coordinate:     maneuver.Coordinate{Lat: fm.Lat, Lon: fm.Lon},
	}

	if fm.Distance != nil {
		m.DistanceFromPrevious = *fm.Distance
	}

	if fm.Orientation != nil {
		m.MapOrientation = *fm.Orientation
	}

	if fm.Signpost != nil {
		signpost := &maneuver.Signpost{
			ExitNumber: fm.Signpost.ExitNumber,
			ExitText:   fm.Signpost.ExitText,
		}
		for _, label := range fm.Signpost.ExitDirections {
			signpost.ExitDirections = append(signpost.ExitDirections, maneuver.Label(label))
		}

		m.Signpost = signpost
	}

	for _, attributes := range fm.RoadElements {
		m.RoadElements = append(m.RoadElements, maneuver.RoadElement{
			Attributes: maneuver.ParseAttributes(attributes),
		})
	}

	return m, nil
}

// fillGeometry completes distances and orientations that the route file left out.
func fillGeometry(maneuvers []maneuver.Maneuver, file []fileManeuver) {
	for i := range maneuvers {
		if file[i].Distance == nil && i > 0 {
			maneuvers[i].DistanceFromPrevious = int64(math.Round(
				distance(maneuvers[i-1].Coordinate, maneuvers[i].Coordinate)))
		}

		if file[i].Orientation == nil {
			switch {
			case i+1 < len(maneuvers):
				maneuvers[i].MapOrientation = bearing(maneuvers[i].Coordinate, maneuvers[i+1].Coordinate)
			case i > 0:
				maneuvers[i].MapOrientation = bearing(maneuvers[i-1].Coordinate, maneuvers[i].Coordinate)
			}
		}
	}
}

func estimateDuration(meters int64) int64 {
	return int64(math.Round(float64(meters) / cruiseSpeed * 1000)) //nolint:mnd // ms per s
}
