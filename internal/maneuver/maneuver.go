// Package maneuver resolves maneuvers into instruction text and icons.
//
// A Maneuver is a single instruction point along a route. The Resolver looks at one maneuver,
// and for street names at the maneuvers that follow it, and never modifies the data it reads.
package maneuver

import (
	"strings"
)

// Action is what the driver has to do at a maneuver.
type Action int

const (
	ActionUndefined Action = iota
	ActionNoAction
	ActionJunction
	ActionRoundabout
	ActionEnterHighway
	ActionEnterHighwayFromLeft
	ActionEnterHighwayFromRight
	ActionLeaveHighway
	ActionChangeHighway
	ActionContinueHighway
	ActionFerry
	ActionUTurn
	ActionEnd
)

var actionNames = [...]string{ //nolint:gochecknoglobals // enum names
	ActionUndefined:             "undefined",
	ActionNoAction:              "no_action",
	ActionJunction:              "junction",
	ActionRoundabout:            "roundabout",
	ActionEnterHighway:          "enter_highway",
	ActionEnterHighwayFromLeft:  "enter_highway_from_left",
	ActionEnterHighwayFromRight: "enter_highway_from_right",
	ActionLeaveHighway:          "leave_highway",
	ActionChangeHighway:         "change_highway",
	ActionContinueHighway:       "continue_highway",
	ActionFerry:                 "ferry",
	ActionUTurn:                 "uturn",
	ActionEnd:                   "end",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return actionNames[ActionUndefined]
	}

	return actionNames[a]
}

// ParseAction maps a route file name to an Action. Unknown names yield ActionUndefined.
func ParseAction(name string) (Action, bool) {
	idx := indexOf(actionNames[:], name)
	if idx < 0 {
		return ActionUndefined, false
	}

	return Action(idx), true
}

// Turn refines an action with a direction.
type Turn int

const (
	TurnUndefined Turn = iota
	TurnNone
	TurnKeepLeft
	TurnKeepMiddle
	TurnKeepRight
	TurnLightLeft
	TurnLightRight
	TurnQuiteLeft
	TurnQuiteRight
	TurnHeavyLeft
	TurnHeavyRight
	TurnReturn
	TurnRoundabout1
	TurnRoundabout2
	TurnRoundabout3
	TurnRoundabout4
	TurnRoundabout5
	TurnRoundabout6
	TurnRoundabout7
	TurnRoundabout8
	TurnRoundabout9
	TurnRoundabout10
	TurnRoundabout11
	TurnRoundabout12
)

var turnNames = [...]string{ //nolint:gochecknoglobals // enum names
	TurnUndefined:    "undefined",
	TurnNone:         "none",
	TurnKeepLeft:     "keep_left",
	TurnKeepMiddle:   "keep_middle",
	TurnKeepRight:    "keep_right",
	TurnLightLeft:    "light_left",
	TurnLightRight:   "light_right",
	TurnQuiteLeft:    "quite_left",
	TurnQuiteRight:   "quite_right",
	TurnHeavyLeft:    "heavy_left",
	TurnHeavyRight:   "heavy_right",
	TurnReturn:       "return",
	TurnRoundabout1:  "roundabout_1",
	TurnRoundabout2:  "roundabout_2",
	TurnRoundabout3:  "roundabout_3",
	TurnRoundabout4:  "roundabout_4",
	TurnRoundabout5:  "roundabout_5",
	TurnRoundabout6:  "roundabout_6",
	TurnRoundabout7:  "roundabout_7",
	TurnRoundabout8:  "roundabout_8",
	TurnRoundabout9:  "roundabout_9",
	TurnRoundabout10: "roundabout_10",
	TurnRoundabout11: "roundabout_11",
	TurnRoundabout12: "roundabout_12",
}

func (t Turn) String() string {
	if t < 0 || int(t) >= len(turnNames) {
		return turnNames[TurnUndefined]
	}

	return turnNames[t]
}

// ParseTurn maps a route file name to a Turn. Unknown names yield TurnUndefined.
func ParseTurn(name string) (Turn, bool) {
	idx := indexOf(turnNames[:], name)
	if idx < 0 {
		return TurnUndefined, false
	}

	return Turn(idx), true
}

// RoundaboutExit returns the 1-based exit of a roundabout turn, or 0 for any other turn.
func (t Turn) RoundaboutExit() int {
	if t < TurnRoundabout1 || t > TurnRoundabout12 {
		return 0
	}

	return int(t-TurnRoundabout1) + 1
}

// RoundaboutTurn is the inverse of RoundaboutExit.
func RoundaboutTurn(exit int) Turn {
	if exit < 1 || exit > TurnRoundabout12.RoundaboutExit() {
		return TurnUndefined
	}

	return TurnRoundabout1 + Turn(exit-1)
}

// Attribute flags describe a road element.
type Attribute uint8

const (
	AttrFerry Attribute = 1 << iota
	AttrCarShuttleTrain
	AttrHighway
	AttrTunnel
)

var attributeNames = map[string]Attribute{ //nolint:gochecknoglobals // enum names
	"ferry":             AttrFerry,
	"car_shuttle_train": AttrCarShuttleTrain,
	"highway":           AttrHighway,
	"tunnel":            AttrTunnel,
}

// ParseAttributes combines named attributes; unknown names are ignored.
func ParseAttributes(names []string) Attribute {
	var attrs Attribute
	for _, name := range names {
		attrs |= attributeNames[strings.ToLower(name)]
	}

	return attrs
}

// Has reports whether every flag in other is set.
func (a Attribute) Has(other Attribute) bool {
	return a&other == other
}

// RoadElement is a stretch of road between two maneuvers.
type RoadElement struct {
	Attributes Attribute
}

// Label is a localized piece of signpost text.
type Label struct {
	Text     string
	Language string
}

// Signpost is the overhead sign shown at a maneuver.
type Signpost struct {
	ExitNumber     string
	ExitText       string
	ExitDirections []Label
}

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Maneuver is one discrete instruction point along a route.
// RoadName and RoadNumber describe the road leading to the maneuver, NextRoadName and
// NextRoadNumber the road taken after it.
type Maneuver struct {
	Action               Action
	Turn                 Turn
	RoadName             string
	RoadNumber           string
	NextRoadName         string
	NextRoadNumber       string
	Signpost             *Signpost
	DistanceFromPrevious int64   // [m]
	MapOrientation       float64 // [degrees], clockwise from north
	Coordinate           Coordinate
	RoadElements         []RoadElement
}

// hasAttribute reports whether any road element of the maneuver carries attr.
func (m *Maneuver) hasAttribute(attr Attribute) bool {
	for _, element := range m.RoadElements {
		if element.Attributes.Has(attr) {
			return true
		}
	}

	return false
}

func indexOf(names []string, name string) int {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range names {
		if candidate == normalized {
			return i
		}
	}

	return -1
}
