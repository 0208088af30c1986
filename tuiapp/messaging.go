package tuiapp

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PlaybackTickMsg advances the guidance by one event.
type PlaybackTickMsg time.Time

func playbackTick(interval time.Duration) tea.Cmd {
	return tea.Tick(
		interval,
		func(t time.Time) tea.Msg {
			return PlaybackTickMsg(t)
		},
	)
}

// ClockTickMsg refreshes the "last update" line.
type ClockTickMsg time.Time

func clockTick() tea.Cmd {
	return tea.Every(
		time.Second,
		func(t time.Time) tea.Msg {
			return ClockTickMsg(t)
		},
	)
}
