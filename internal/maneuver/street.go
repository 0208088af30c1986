package maneuver

import "strings"

// NextStreet returns the street shown after maneuvers[index]. The maneuver's own next road is
// preferred. Without it the search continues with the roads of the following maneuvers within
// nextStreetLookahead meters, then the maneuver's current road, then the signpost exit text.
func (r *Resolver) NextStreet(maneuvers []Maneuver, index int) string {
	if index < 0 || index >= len(maneuvers) {
		return ""
	}

	current := &maneuvers[index]

	if street := r.Combine(current, current.NextRoadName, current.NextRoadNumber); street != "" {
		return street
	}

	if street := lookaheadStreet(maneuvers, index); street != "" {
		return street
	}

	if street := r.Combine(current, current.RoadName, current.RoadNumber); street != "" {
		return street
	}

	if current.Signpost != nil {
		return strings.TrimSpace(current.Signpost.ExitText)
	}

	return ""
}

func lookaheadStreet(maneuvers []Maneuver, index int) string {
	var travelled int64

	for i := index + 1; i < len(maneuvers); i++ {
		next := &maneuvers[i]

		travelled += next.DistanceFromPrevious
		if travelled > nextStreetLookahead {
			break
		}

		if street := combineNames(next.RoadName, next.RoadNumber); street != "" {
			return street
		}
	}

	return ""
}

// Combine joins a road name and number for display. When leaving a highway the signpost's
// direction text replaces the road name.
func (r *Resolver) Combine(m *Maneuver, roadName, roadNumber string) string {
	if m != nil && m.Action == ActionLeaveHighway {
		roadName = r.leaveHighwayName(m.Signpost, roadName)
	}

	return combineNames(roadName, roadNumber)
}

// leaveHighwayName prefers the exit direction in the resolver's language, then the first exit
// direction, then the exit text and finally the given name.
func (r *Resolver) leaveHighwayName(signpost *Signpost, roadName string) string {
	if signpost == nil {
		return roadName
	}

	var first string

	for _, direction := range signpost.ExitDirections {
		text := strings.TrimSpace(direction.Text)
		if text == "" {
			continue
		}

		if sameLanguage(direction.Language, r.language) {
			return text
		}

		if first == "" {
			first = text
		}
	}

	if first != "" {
		return first
	}

	if exitText := strings.TrimSpace(signpost.ExitText); exitText != "" {
		return exitText
	}

	return roadName
}

// combineNames shows "<number> / <name>" unless the name already contains the number.
func combineNames(roadName, roadNumber string) string {
	name := strings.TrimSpace(roadName)
	number := strings.TrimSpace(roadNumber)

	switch {
	case name != "" && number != "" && strings.Contains(name, number):
		return name
	case name != "" && number != "":
		return number + " / " + name
	case name != "":
		return name
	default:
		return number
	}
}

func sameLanguage(labelLanguage, base string) bool {
	if labelLanguage == "" || base == "" {
		return false
	}

	labelBase, _, _ := strings.Cut(strings.ToLower(labelLanguage), "-")

	return labelBase == strings.ToLower(base)
}
