package internal

import (
	"fmt"
	"log" //nolint:depguard // Don't feel like using slog

	"github.com/gen2brain/beeep"
)

const (
	// appIconPath is the file path to the icon png for this application.
	appIconPath = "./assets/icon.png"
)

// Notify prints guidance changes to the console and raises desktop notifications for arrival and
// speeding.
type Notify struct {
	Stdout  log.Logger
	Stderr  log.Logger
	desktop bool
	send    func(title, message, icon string) error
}

func NewNotify(appName string, logParams LogParams, desktop bool) *Notify {
	beeep.AppName = appName //nolint:reassign // This is the only way to set app name in beeep.

	return &Notify{
		Stdout:  *log.New(logParams.ConsoleOut, "", 0),
		Stderr:  *log.New(logParams.ErrorOut, "", log.LstdFlags),
		desktop: desktop,
		send:    beeepNotify,
	}
}

// PrintSummary prints the route totals and the roads that make up most of it.
func (notify *Notify) PrintSummary(summary SummaryData) {
	notify.Stdout.Println("=== Summary ===")
	if summary.Name != "" {
		notify.Stdout.Printf("Route:     %s\n", summary.Name)
	}
	notify.Stdout.Printf("Distance:  %s\n", summary.Distance)
	notify.Stdout.Printf("Duration:  %s\n", summary.Duration)
	notify.Stdout.Printf("Maneuvers: %d\n", summary.Maneuvers)
	notify.listRoads(summary.Roads)
	notify.Stdout.Println("=== End Summary ===")
}

func (notify *Notify) listRoads(roads []RoadShare) {
	if len(roads) == 0 {
		return
	}

	notify.Stdout.Println("Roads from longest to shortest stretch:")
	for j := range roads {
		notify.Stdout.Printf("%8d m - %s\n", roads[j].Meters, roads[j].Road)
	}
}

// PrintItem prints one line of the route description.
func (notify *Notify) PrintItem(item RouteDescriptionItem) {
	notify.Stdout.Printf("%3d %-8s %s\n", item.Index+1, item.Distance, item.Instruction)
}

// EmitNotifications reports the conditions that became active between two snapshots.
func (notify *Notify) EmitNotifications(previous, current Snapshot) {
	raised := current.Status &^ previous.Status

	if raised.Has(StatusSpeeding) {
		limit := current.Speed.Limit.Text
		notify.Stdout.Printf("speeding: %d %s, limit %s\n", current.Speed.Value, current.Speed.Unit, limit)
		notify.desktopNotification(
			"Speed Limit Exceeded",
			fmt.Sprintf("%d %s in a %s %s zone", current.Speed.Value, current.Speed.Unit, limit, current.Speed.Unit))
	}

	if raised.Has(StatusRerouting) || raised.Has(StatusGPSLost) {
		notify.Stdout.Println(current.Message.Text)
	}

	if raised.Has(StatusArrived) {
		notify.Stdout.Println(current.Panel.Instruction)
		notify.desktopNotification(current.Message.Text, current.Panel.Instruction)
	}
}

func beeepNotify(title, message, icon string) error {
	return beeep.Notify(title, message, icon) //nolint:wrapcheck // reported as is
}

func (notify *Notify) desktopNotification(title, message string) {
	if !notify.desktop {
		return
	}

	if err := notify.send(title, message, appIconPath); err != nil {
		notify.Stderr.Printf("notify: %v\n", err)
	}
}
