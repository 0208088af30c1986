// Package internal provides the Guidance presenter and the pieces shared by the ticker and TUI
// front ends: logging parameters, notifications and configuration.
package internal

import (
	"errors"
	"fmt"
	"time"

	"github.com/micutio/navkit/internal/maneuver"
	"github.com/micutio/navkit/internal/route"
	"github.com/micutio/navkit/internal/units"
	"golang.org/x/text/language"
)

var errNoManeuvers = errors.New("route has no maneuvers")

// OptionalText is display text that may be absent. An absent value is distinct from an empty one.
type OptionalText struct {
	Text  string
	Valid bool
}

func someText(text string) OptionalText {
	return OptionalText{Text: text, Valid: true}
}

// OptionalMeters is a distance that may be unknown.
type OptionalMeters struct {
	Meters int64
	Valid  bool
}

// SomeMeters returns a known distance.
func SomeMeters(meters int64) OptionalMeters {
	return OptionalMeters{Meters: meters, Valid: true}
}

// ManeuverPanelData is everything the maneuver panel shows.
type ManeuverPanelData struct {
	Icon        maneuver.IconID
	Instruction string
	Street      string
	Distance    OptionalText
}

// RouteDescriptionItem is one row of the route description list.
type RouteDescriptionItem struct {
	Index       int
	Icon        maneuver.IconID
	Instruction string
	Distance    string
}

// SpeedViewData is the current speed and the speed limit in the display unit.
type SpeedViewData struct {
	Value    int
	Unit     string
	Limit    OptionalText
	Speeding bool
}

// SummaryData describes the whole route.
type SummaryData struct {
	Name      string
	Distance  string
	Duration  string
	Maneuvers int
	Roads     []RoadShare
}

// Snapshot is the display state after an event.
type Snapshot struct {
	ManeuverIndex int
	Panel         ManeuverPanelData
	Speed         SpeedViewData
	Status        StatusFlag
	Message       OptionalText
	Remaining     OptionalText
	Arrival       OptionalText
}

// Guidance presents a pre-computed route. The formatting and resolution it delegates to are
// pure; Guidance itself tracks the progress along the route and must not be shared between
// goroutines.
type Guidance struct {
	route     *route.Route
	system    units.UnitSystem
	formatter *units.Formatter
	resolver  *maneuver.Resolver

	current    int
	toManeuver OptionalMeters
	speed      float64
	limit      float64
	status     StatusFlag
	lastUpdate time.Time
}

// NewGuidance prepares the presenter for a route.
func NewGuidance(r *route.Route, system units.UnitSystem, tag language.Tag) (*Guidance, error) {
	if r == nil || len(r.Maneuvers) == 0 {
		return nil, fmt.Errorf("newGuidance: %w", errNoManeuvers)
	}

	return &Guidance{
		route:     r,
		system:    system,
		formatter: units.NewFormatter(tag),
		resolver:  maneuver.NewResolver(tag),
	}, nil
}

// Route returns the presented route.
func (g *Guidance) Route() *route.Route {
	return g.route
}

// System returns the unit system used for display.
func (g *Guidance) System() units.UnitSystem {
	return g.system
}

// ManeuverPanel returns the panel for maneuver i. The distance is only known for the current
// maneuver after a position update.
func (g *Guidance) ManeuverPanel(i int) ManeuverPanelData {
	instruction := g.resolver.Resolve(g.route.Maneuvers, i)

	panel := ManeuverPanelData{
		Icon:        instruction.Icon,
		Instruction: instruction.Text,
		Street:      instruction.Street,
	}

	if i == g.current && g.toManeuver.Valid {
		panel.Distance = someText(g.formatter.FormatDistance(g.toManeuver.Meters, g.system))
	}

	return panel
}

// RouteDescription lists every maneuver with the distance driven to reach it.
func (g *Guidance) RouteDescription() []RouteDescriptionItem {
	items := make([]RouteDescriptionItem, 0, len(g.route.Maneuvers))

	for i := range g.route.Maneuvers {
		instruction := g.resolver.Resolve(g.route.Maneuvers, i)
		items = append(items, RouteDescriptionItem{
			Index:       i,
			Icon:        instruction.Icon,
			Instruction: instruction.Text,
			Distance:    g.formatter.Format(g.route.Maneuvers[i].DistanceFromPrevious, g.system),
		})
	}

	return items
}

// SpeedView converts speeds in m/s to the display unit. A limit of zero or less is unknown.
func (g *Guidance) SpeedView(metersPerSecond, limitMetersPerSecond float64) SpeedViewData {
	view := SpeedViewData{
		Value:    units.FormatSpeed(metersPerSecond, g.system),
		Unit:     g.formatter.SpeedUnitLabel(g.system),
		Speeding: units.IsSpeeding(metersPerSecond, limitMetersPerSecond),
	}

	if limitMetersPerSecond > 0 {
		view.Limit = someText(fmt.Sprint(units.FormatSpeed(limitMetersPerSecond, g.system)))
	}

	return view
}

// Summary describes the total distance and duration of the route and the roads it uses most.
func (g *Guidance) Summary() SummaryData {
	roadMeters := make(map[string]int64)

	for i := 1; i < len(g.route.Maneuvers); i++ {
		road := g.resolver.NextStreet(g.route.Maneuvers, i-1)
		if road == "" {
			continue
		}

		roadMeters[road] += g.route.Maneuvers[i].DistanceFromPrevious
	}

	return SummaryData{
		Name:      g.route.Name,
		Distance:  g.formatter.Format(g.route.TotalDistance(), g.system),
		Duration:  g.formatter.FormatDuration(g.route.DurationMillis),
		Maneuvers: len(g.route.Maneuvers),
		Roads:     GetSortedRoadShares(roadMeters),
	}
}

// Apply updates the guidance state with an engine event and returns the new snapshot.
func (g *Guidance) Apply(ev Event) Snapshot {
	if !ev.Time.IsZero() {
		g.lastUpdate = ev.Time
	}

	switch ev.Kind {
	case EventPosition:
		g.toManeuver = ev.DistanceToManeuver
		g.updateSpeed(ev.Speed, ev.SpeedLimit)
	case EventManeuver:
		g.current = g.clampIndex(ev.ManeuverIndex)
		g.toManeuver = ev.DistanceToManeuver
	case EventRerouteBegin:
		g.status = g.status.with(StatusRerouting, true)
	case EventRerouteEnd:
		g.status = g.status.with(StatusRerouting, false)
	case EventDestinationReached:
		g.current = len(g.route.Maneuvers) - 1
		g.toManeuver = SomeMeters(0)
		g.status = g.status.with(StatusArrived, true)
	case EventGPSLost:
		g.toManeuver = OptionalMeters{}
		g.status = g.status.with(StatusGPSLost, true)
	case EventGPSRestored:
		g.status = g.status.with(StatusGPSLost, false)
	case EventSpeedLimitExceeded, EventSpeedLimitRestored:
		g.updateSpeed(ev.Speed, ev.SpeedLimit)
		g.status = g.status.with(StatusSpeeding, ev.Kind == EventSpeedLimitExceeded)
	}

	return g.Snapshot()
}

// Snapshot returns the current display state without changing it.
func (g *Guidance) Snapshot() Snapshot {
	snapshot := Snapshot{
		ManeuverIndex: g.current,
		Panel:         g.ManeuverPanel(g.current),
		Speed:         g.SpeedView(g.speed, g.limit),
		Status:        g.status,
		Message:       g.statusMessage(),
	}

	if remaining, ok := g.remainingMeters(); ok {
		snapshot.Remaining = someText(g.formatter.Format(remaining, g.system))

		if !g.lastUpdate.IsZero() && !g.status.Has(StatusArrived) {
			eta := g.lastUpdate.Add(time.Duration(g.remainingMillis(remaining)) * time.Millisecond)
			snapshot.Arrival = someText(g.formatter.FormatArrival(eta))
		}
	}

	return snapshot
}

func (g *Guidance) updateSpeed(speed, limit float64) {
	g.speed = speed
	g.limit = limit
	g.status = g.status.with(StatusSpeeding, units.IsSpeeding(speed, limit))
}

func (g *Guidance) statusMessage() OptionalText {
	catalog := g.formatter.Catalog()

	switch {
	case g.status.Has(StatusArrived):
		return someText(catalog.Lookup("guidance.arrived"))
	case g.status.Has(StatusRerouting):
		return someText(catalog.Lookup("guidance.rerouting"))
	case g.status.Has(StatusGPSLost):
		return someText(catalog.Lookup("guidance.gps_lost"))
	default:
		return OptionalText{}
	}
}

// remainingMeters is the distance to the current maneuver plus all legs after it.
func (g *Guidance) remainingMeters() (int64, bool) {
	if !g.toManeuver.Valid {
		return 0, false
	}

	remaining := g.toManeuver.Meters
	for i := g.current + 1; i < len(g.route.Maneuvers); i++ {
		remaining += g.route.Maneuvers[i].DistanceFromPrevious
	}

	return remaining, true
}

// remainingMillis scales the route duration by the share of distance left.
func (g *Guidance) remainingMillis(remaining int64) int64 {
	total := g.route.TotalDistance()
	if total <= 0 {
		return 0
	}

	return g.route.DurationMillis * remaining / total
}

func (g *Guidance) clampIndex(i int) int {
	switch {
	case i < 0:
		return 0
	case i >= len(g.route.Maneuvers):
		return len(g.route.Maneuvers) - 1
	default:
		return i
	}
}
