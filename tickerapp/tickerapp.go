// Package tickerapp launches the ticker application which writes out all updates to stdout and
// can be piped into other programs and processed further.
// This is in contrast to the TUI app, which works more like htop.
package tickerapp

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/micutio/navkit/internal"
	"github.com/micutio/navkit/internal/route"
)

func Run(appName string, options internal.Options, r *route.Route) error {
	logger := slog.Default()

	logParams := internal.LogParams{
		ConsoleOut: os.Stdout,
		ErrorOut:   os.Stderr,
	}

	notify := internal.NewNotify(appName, logParams, options.Notifications)

	guidance, err := internal.NewGuidance(r, options.System, options.Tag)
	if err != nil {
		return fmt.Errorf("tickerapp.Run: %w", err)
	}

	notify.Stdout.Printf("%s guiding %q, %d maneuvers\n", appName, r.Name, len(r.Maneuvers))

	// Create a playback ticker that advances the guidance in a given interval
	playbackTicker := time.NewTicker(options.TickInterval)
	defer playbackTicker.Stop()

	// Use a channel to gracefully stop the program if needed.
	done := make(chan bool)
	finished := make(chan bool)

	// Start a goroutine to replay the route
	go func() {
		play(notify, guidance, internal.Playback(r, r.Start(time.Now())), playbackTicker.C, done)
		close(finished)
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigc:
		logger.Info("Shutdown signal received, stopping...")
		close(done)
		<-finished
	case <-finished:
	}

	notify.PrintSummary(guidance.Summary())

	return nil
}

// play prints the route description item of every maneuver as it becomes current and applies one
// event per tick. It returns once all events are applied or done is closed.
func play(
	notify *internal.Notify,
	guidance *internal.Guidance,
	events []internal.Event,
	ticks <-chan time.Time,
	done <-chan bool,
) {
	items := guidance.RouteDescription()
	previous := guidance.Snapshot()
	printed := -1

	for _, ev := range events {
		select {
		case <-ticks:
		case <-done:
			return
		}

		current := guidance.Apply(ev)
		for printed < current.ManeuverIndex {
			printed++
			notify.PrintItem(items[printed])
		}

		notify.EmitNotifications(previous, current)
		previous = current
	}
}
