package l10n

// English is the default catalog. Every key used by navkit is defined here.
var English = Table{ //nolint:gochecknoglobals // static resource table
	// unit labels
	"unit.meter":     "m",
	"unit.kilometer": "km",
	"unit.yard":      "yd",
	"unit.foot":      "ft",
	"unit.mile":      "mi",
	"unit.mps":       "m/s",
	"unit.kmh":       "km/h",
	"unit.mph":       "mph",

	"unit.unavailable": "n/a",

	// durations
	"time.day.one":      "day",
	"time.day.other":    "days",
	"time.hour.one":     "hour",
	"time.hour.other":   "hours",
	"time.minute.one":   "minute",
	"time.minute.other": "minutes",
	"time.second.one":   "second",
	"time.second.other": "seconds",
	"time.clock":        "3:04 PM",

	// compass directions
	"compass.north":     "north",
	"compass.northeast": "northeast",
	"compass.east":      "east",
	"compass.southeast": "southeast",
	"compass.south":     "south",
	"compass.southwest": "southwest",
	"compass.west":      "west",
	"compass.northwest": "northwest",

	// roundabout exits
	"ordinal.1":  "1st",
	"ordinal.2":  "2nd",
	"ordinal.3":  "3rd",
	"ordinal.4":  "4th",
	"ordinal.5":  "5th",
	"ordinal.6":  "6th",
	"ordinal.7":  "7th",
	"ordinal.8":  "8th",
	"ordinal.9":  "9th",
	"ordinal.10": "10th",
	"ordinal.11": "11th",
	"ordinal.12": "12th",

	// maneuver instructions
	"maneuver.head":                       "Head {direction}",
	"maneuver.head.street":                "Head {direction} on {street}",
	"maneuver.continue":                   "Continue straight",
	"maneuver.continue.street":            "Continue on {street}",
	"maneuver.turn.left":                  "Turn left",
	"maneuver.turn.left.street":           "Turn left onto {street}",
	"maneuver.turn.right":                 "Turn right",
	"maneuver.turn.right.street":          "Turn right onto {street}",
	"maneuver.turn.sharp_left":            "Turn sharply left",
	"maneuver.turn.sharp_left.street":     "Turn sharply left onto {street}",
	"maneuver.turn.sharp_right":           "Turn sharply right",
	"maneuver.turn.sharp_right.street":    "Turn sharply right onto {street}",
	"maneuver.turn.slight_left":           "Turn slightly left",
	"maneuver.turn.slight_left.street":    "Turn slightly left onto {street}",
	"maneuver.turn.slight_right":          "Turn slightly right",
	"maneuver.turn.slight_right.street":   "Turn slightly right onto {street}",
	"maneuver.keep.left":                  "Keep left",
	"maneuver.keep.left.street":           "Keep left toward {street}",
	"maneuver.keep.middle":                "Keep to the middle",
	"maneuver.keep.middle.street":         "Keep to the middle toward {street}",
	"maneuver.keep.right":                 "Keep right",
	"maneuver.keep.right.street":          "Keep right toward {street}",
	"maneuver.uturn":                      "Make a U-turn",
	"maneuver.uturn.street":               "Make a U-turn onto {street}",
	"maneuver.roundabout":                 "At the roundabout, take the {exit} exit",
	"maneuver.roundabout.street":          "At the roundabout, take the {exit} exit onto {street}",
	"maneuver.enter_highway":              "Enter the highway",
	"maneuver.enter_highway.street":       "Enter the highway {street}",
	"maneuver.enter_highway_left":         "Enter the highway from the left",
	"maneuver.enter_highway_left.street":  "Enter the highway {street} from the left",
	"maneuver.enter_highway_right":        "Enter the highway from the right",
	"maneuver.enter_highway_right.street": "Enter the highway {street} from the right",
	"maneuver.leave_highway":              "Take the exit",
	"maneuver.leave_highway.street":       "Take the exit toward {street}",
	"maneuver.leave_highway.exit":         "Take exit {exit}",
	"maneuver.leave_highway.exit.street":  "Take exit {exit} toward {street}",
	"maneuver.change_highway":             "Change highway",
	"maneuver.change_highway.street":      "Change highway to {street}",
	"maneuver.continue_highway":           "Continue on the highway",
	"maneuver.continue_highway.street":    "Continue on the highway {street}",
	"maneuver.ferry":                      "Take the ferry",
	"maneuver.ferry.street":               "Take the ferry {street}",
	"maneuver.car_shuttle_train":          "Take the car shuttle train",
	"maneuver.car_shuttle_train.street":   "Take the car shuttle train {street}",
	"maneuver.arrive":                     "You have arrived at your destination",
	"maneuver.arrive.street":              "You have arrived at your destination on {street}",

	// guidance status
	"guidance.rerouting": "Rerouting…",
	"guidance.gps_lost":  "GPS signal lost",
	"guidance.arrived":   "Arrived",
}

// German covers units, durations and the most common instructions.
var German = Table{ //nolint:gochecknoglobals // static resource table
	"time.day.one":      "Tag",
	"time.day.other":    "Tage",
	"time.hour.one":     "Stunde",
	"time.hour.other":   "Stunden",
	"time.minute.one":   "Minute",
	"time.minute.other": "Minuten",
	"time.second.one":   "Sekunde",
	"time.second.other": "Sekunden",
	"time.clock":        "15:04",

	"compass.north":     "Norden",
	"compass.northeast": "Nordosten",
	"compass.east":      "Osten",
	"compass.southeast": "Südosten",
	"compass.south":     "Süden",
	"compass.southwest": "Südwesten",
	"compass.west":      "Westen",
	"compass.northwest": "Nordwesten",

	"maneuver.head":              "Richtung {direction} fahren",
	"maneuver.head.street":       "Auf {street} Richtung {direction} fahren",
	"maneuver.turn.left":         "Links abbiegen",
	"maneuver.turn.left.street":  "Links abbiegen auf {street}",
	"maneuver.turn.right":        "Rechts abbiegen",
	"maneuver.turn.right.street": "Rechts abbiegen auf {street}",
	"maneuver.uturn":             "Wenden",
	"maneuver.arrive":            "Sie haben Ihr Ziel erreicht",
	"maneuver.arrive.street":     "Sie haben Ihr Ziel erreicht: {street}",

	"guidance.rerouting": "Neuberechnung…",
	"guidance.gps_lost":  "Kein GPS-Signal",
	"guidance.arrived":   "Angekommen",
}
