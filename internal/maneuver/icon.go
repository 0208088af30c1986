package maneuver

import "fmt"

// IconID identifies the pictogram of a maneuver.
type IconID string

const (
	IconNone              IconID = ""
	IconHead              IconID = "head"
	IconStraight          IconID = "go_straight"
	IconKeepLeft          IconID = "keep_left"
	IconKeepMiddle        IconID = "keep_middle"
	IconKeepRight         IconID = "keep_right"
	IconLightLeft         IconID = "light_left"
	IconLightRight        IconID = "light_right"
	IconQuiteLeft         IconID = "quite_left"
	IconQuiteRight        IconID = "quite_right"
	IconHeavyLeft         IconID = "heavy_left"
	IconHeavyRight        IconID = "heavy_right"
	IconUTurn             IconID = "uturn"
	IconEnterHighway      IconID = "enter_highway"
	IconEnterHighwayLeft  IconID = "enter_highway_left"
	IconEnterHighwayRight IconID = "enter_highway_right"
	IconLeaveHighwayLeft  IconID = "leave_highway_left"
	IconLeaveHighwayRight IconID = "leave_highway_right"
	IconChangeHighway     IconID = "change_highway"
	IconFerry             IconID = "ferry"
	IconCarShuttleTrain   IconID = "car_shuttle_train"
	IconArrive            IconID = "arrive"
)

// RoundaboutIcon returns the icon for taking the given exit, e.g. "roundabout_3".
func RoundaboutIcon(exit int) IconID {
	return IconID(fmt.Sprintf("roundabout_%d", exit))
}

// turnStyle is the template key and icon shared by every action that is described by its turn.
type turnStyle struct {
	key  string
	icon IconID
}

var turnStyles = map[Turn]turnStyle{ //nolint:gochecknoglobals // static lookup
	TurnNone:       {"maneuver.continue", IconStraight},
	TurnKeepLeft:   {"maneuver.keep.left", IconKeepLeft},
	TurnKeepMiddle: {"maneuver.keep.middle", IconKeepMiddle},
	TurnKeepRight:  {"maneuver.keep.right", IconKeepRight},
	TurnLightLeft:  {"maneuver.turn.slight_left", IconLightLeft},
	TurnLightRight: {"maneuver.turn.slight_right", IconLightRight},
	TurnQuiteLeft:  {"maneuver.turn.left", IconQuiteLeft},
	TurnQuiteRight: {"maneuver.turn.right", IconQuiteRight},
	TurnHeavyLeft:  {"maneuver.turn.sharp_left", IconHeavyLeft},
	TurnHeavyRight: {"maneuver.turn.sharp_right", IconHeavyRight},
	TurnReturn:     {"maneuver.uturn", IconUTurn},
}

// isKeep reports whether the turn only asks to keep a lane side.
func (t Turn) isKeep() bool {
	return t == TurnKeepLeft || t == TurnKeepMiddle || t == TurnKeepRight
}
