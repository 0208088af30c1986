package internal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type sentNotification struct {
	title   string
	message string
}

func newTestNotify(desktop bool) (*Notify, *bytes.Buffer, *bytes.Buffer, *[]sentNotification) {
	var stdout, stderr bytes.Buffer

	sent := &[]sentNotification{}
	notify := NewNotify("navkit-test", LogParams{ConsoleOut: &stdout, ErrorOut: &stderr}, desktop)
	notify.send = func(title, message, _ string) error {
		*sent = append(*sent, sentNotification{title, message})
		return nil
	}

	return notify, &stdout, &stderr, sent
}

func TestEmitNotifications(t *testing.T) {
	notify, stdout, _, sent := newTestNotify(true)

	speeding := Snapshot{
		Status: StatusSpeeding,
		Speed:  SpeedViewData{Value: 58, Unit: "km/h", Limit: OptionalText{Text: "50", Valid: true}, Speeding: true},
	}

	notify.EmitNotifications(Snapshot{}, speeding)
	// still speeding, nothing new to report
	notify.EmitNotifications(speeding, speeding)

	arrived := Snapshot{
		Status:  StatusArrived,
		Message: OptionalText{Text: "Arrived", Valid: true},
		Panel:   ManeuverPanelData{Instruction: "You have arrived at your destination"},
	}
	notify.EmitNotifications(speeding, arrived)

	expected := []sentNotification{
		{"Speed Limit Exceeded", "58 km/h in a 50 km/h zone"},
		{"Arrived", "You have arrived at your destination"},
	}

	if len(*sent) != len(expected) {
		t.Fatalf("Expected %d notifications, got %v", len(expected), *sent)
	}

	for i := range expected {
		if (*sent)[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected[i], (*sent)[i])
		}
	}

	if !strings.Contains(stdout.String(), "speeding: 58 km/h, limit 50") {
		t.Errorf("Expected speeding line on stdout, got %q", stdout.String())
	}
}

func TestEmitNotificationsConsoleOnly(t *testing.T) {
	notify, stdout, _, sent := newTestNotify(false)

	notify.EmitNotifications(Snapshot{}, Snapshot{
		Status:  StatusGPSLost,
		Message: OptionalText{Text: "GPS signal lost", Valid: true},
	})

	if len(*sent) != 0 {
		t.Errorf("Expected no desktop notifications, got %v", *sent)
	}

	if stdout.String() != "GPS signal lost\n" {
		t.Errorf("Expected GPS line, got %q", stdout.String())
	}
}

func TestDesktopNotificationFailureIsLogged(t *testing.T) {
	notify, _, stderr, _ := newTestNotify(true)
	notify.send = func(_, _, _ string) error {
		return errors.New("no notification daemon")
	}

	notify.EmitNotifications(Snapshot{}, Snapshot{Status: StatusArrived})

	if !strings.Contains(stderr.String(), "no notification daemon") {
		t.Errorf("Expected the error on stderr, got %q", stderr.String())
	}
}

func TestPrintSummary(t *testing.T) {
	notify, stdout, _, _ := newTestNotify(false)

	notify.PrintSummary(SummaryData{
		Name:      "to Elm St",
		Distance:  "1.8 km",
		Duration:  "2 minutes",
		Maneuvers: 3,
		Roads:     []RoadShare{{Road: "Elm St", Meters: 1500}},
	})

	expected := strings.Join([]string{
		"=== Summary ===",
		"Route:     to Elm St",
		"Distance:  1.8 km",
		"Duration:  2 minutes",
		"Maneuvers: 3",
		"Roads from longest to shortest stretch:",
		"    1500 m - Elm St",
		"=== End Summary ===",
		"",
	}, "\n")

	if stdout.String() != expected {
		t.Errorf("Expected summary\n%s\ngot\n%s", expected, stdout.String())
	}
}

func TestPrintItem(t *testing.T) {
	notify, stdout, _, _ := newTestNotify(false)

	notify.PrintItem(RouteDescriptionItem{Index: 1, Instruction: "Turn right onto Elm St", Distance: "340 m"})

	if got := stdout.String(); got != "  2 340 m    Turn right onto Elm St\n" {
		t.Errorf("Unexpected line %q", got)
	}
}
