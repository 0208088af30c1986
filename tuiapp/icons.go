package tuiapp

import (
	"fmt"
	"strings"

	"github.com/micutio/navkit/internal/maneuver"
)

// glyphs stands in for the maneuver pictograms on a terminal.
var glyphs = map[maneuver.IconID]string{ //nolint:gochecknoglobals // static lookup
	maneuver.IconHead:              "⇧",
	maneuver.IconStraight:          "↑",
	maneuver.IconKeepLeft:          "↖",
	maneuver.IconKeepMiddle:        "↑",
	maneuver.IconKeepRight:         "↗",
	maneuver.IconLightLeft:         "↖",
	maneuver.IconLightRight:        "↗",
	maneuver.IconQuiteLeft:         "←",
	maneuver.IconQuiteRight:        "→",
	maneuver.IconHeavyLeft:         "↙",
	maneuver.IconHeavyRight:        "↘",
	maneuver.IconUTurn:             "↶",
	maneuver.IconEnterHighway:      "⤴",
	maneuver.IconEnterHighwayLeft:  "⤴",
	maneuver.IconEnterHighwayRight: "⤴",
	maneuver.IconLeaveHighwayLeft:  "↰",
	maneuver.IconLeaveHighwayRight: "↱",
	maneuver.IconChangeHighway:     "⇄",
	maneuver.IconFerry:             "⛴",
	maneuver.IconCarShuttleTrain:   "🚆",
	maneuver.IconArrive:            "⚑",
}

// glyph returns the terminal symbol of an icon. Roundabout icons show their exit number.
func glyph(icon maneuver.IconID) string {
	if symbol, ok := glyphs[icon]; ok {
		return symbol
	}

	if exit, ok := strings.CutPrefix(string(icon), "roundabout_"); ok {
		return fmt.Sprintf("⟳%s", exit)
	}

	return " "
}
