// Package tuiapp provides the TUI app which shows guidance for a route, advances along it and can
// be interacted with.
// Layout idea:
// +-------------------------------------------------+
// | route name                                      |
// | Remaining: ... Arrival: ... status message      |
// |                                                 |
// |  ____________________________      _________    |
// | | ICON  distance             |    |  speed  |   |
// | | instruction                |    |  unit   |   |
// |  ----------------------------      ---------    |
// |  ____________________________________________   |
// | | route description table                    |  |
// | | entry 0                                    |  |
// | | ...                                        |  |
// |  --------------------------------------------   |
// +-------------------------------------------------+
// .
package tuiapp

import (
	"fmt"
	"io"
	"log" //nolint:depguard // tea.LogToFile redirects the standard logger
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/micutio/navkit/internal"
	"github.com/micutio/navkit/internal/route"
)

func Run(appName string, options internal.Options, r *route.Route) error {
	// The terminal belongs to the TUI, so everything logged goes to a file instead.
	logFile, err := tea.LogToFile(options.LogFile, appName)
	if err != nil {
		return fmt.Errorf("tuiapp.Run: %w", err)
	}
	defer logFile.Close()

	guidance, err := internal.NewGuidance(r, options.System, options.Tag)
	if err != nil {
		return fmt.Errorf("tuiapp.Run: %w", err)
	}

	log.Printf("starting guidance for %q with %d maneuvers", r.Name, len(r.Maneuvers))

	// Console output is discarded, errors go to the log file.
	logParams := internal.LogParams{
		ConsoleOut: io.Discard,
		ErrorOut:   logFile,
	}
	notify := internal.NewNotify(appName, logParams, options.Notifications)

	m := newModel(guidance, internal.Playback(r, r.Start(time.Now())), options.TickInterval, notify)
	m.logger = slog.New(slog.NewTextHandler(logFile, nil))

	// Create a new Bubble Tea program with the model and enable alternate screen
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Run the program and handle any errors
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tuiapp.Run: %w", err)
	}

	return nil
}
