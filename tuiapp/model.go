package tuiapp

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/micutio/navkit/internal"
)

const (
	// panelWidth is the width of the maneuver panel and the speed view, including borders.
	panelWidth = 44
	// chromeHeight is the space taken by everything but the route description table.
	chromeHeight = 14
)

type Theme struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Border    lipgloss.AdaptiveColor
	Green     lipgloss.AdaptiveColor
	Red       lipgloss.AdaptiveColor
}

func defaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
		Secondary: lipgloss.AdaptiveColor{Light: "#969B86", Dark: "#696969"},
		Highlight: lipgloss.AdaptiveColor{Light: "#8b2def", Dark: "#8b2def"},
		Border:    lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"},
		Green:     lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#00FF00"},
		Red:       lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF0000"},
	}
}

// Model implements the bubbletea.Model interface, which requires three methods:
// - Init() Cmd
// - Update(Msg) (Model, Cmd)
// - View() string
// This forms the base for the TUI app.
type model struct {
	width     int
	height    int
	baseStyle lipgloss.Style
	viewStyle lipgloss.Style
	theme     Theme
	state     uiState

	routeTbl   autoFormatTable
	roadTbl    autoFormatTable
	tableStyle table.Styles

	guidance     *internal.Guidance
	snapshot     internal.Snapshot
	events       []internal.Event
	nextEvent    int
	tickInterval time.Duration
	lastUpdate   time.Time
	now          time.Time
	notify       *internal.Notify
	logger       *slog.Logger
}

func newModel(
	guidance *internal.Guidance,
	events []internal.Event,
	tickInterval time.Duration,
	notify *internal.Notify,
) *model {
	theme := defaultTheme()

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = lipgloss.NewStyle().Background(theme.Highlight)

	routeTbl := newRouteDescriptionTable(tableStyle)
	rows := make([]table.Row, 0, len(guidance.Route().Maneuvers))
	for _, item := range guidance.RouteDescription() {
		rows = append(rows, itemToRow(item))
	}
	routeTbl.table.SetRows(rows)

	roadTbl := newRoadTable(tableStyle)
	roadRows := []table.Row{}
	for _, share := range guidance.Summary().Roads {
		roadRows = append(roadRows, roadShareToRow(share))
	}
	roadTbl.table.SetRows(roadRows)

	return &model{
		baseStyle:    lipgloss.NewStyle(),
		viewStyle:    lipgloss.NewStyle(),
		theme:        theme,
		state:        guidancePage,
		routeTbl:     routeTbl,
		roadTbl:      roadTbl,
		tableStyle:   tableStyle,
		guidance:     guidance,
		snapshot:     guidance.Snapshot(),
		events:       events,
		tickInterval: tickInterval,
		notify:       notify,
		logger:       slog.Default(),
	}
}

// Init schedules the first playback step and the clock.
func (m *model) Init() tea.Cmd {
	return tea.Batch(playbackTick(m.tickInterval), clockTick())
}

// Update takes a tea.Msg as input and uses a type switch to handle different types of messages.
// Each case in the switch statement corresponds to a specific message type.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) { //nolint:ireturn // required by interface
	switch thisMsg := msg.(type) {
	// message is sent when the window size changes
	// save to reflect the new dimensions of the terminal window.
	case tea.WindowSizeMsg:
		m.height = thisMsg.Height
		m.width = thisMsg.Width
		m.resizeTables()

	// message is sent when a key is pressed.
	case tea.KeyMsg:
		switch thisMsg.String() {
		// Toggles the focus state of the route table
		case "esc":
			if m.routeTbl.table.Focused() {
				m.tableStyle.Selected = m.baseStyle
				m.routeTbl.table.SetStyles(m.tableStyle)
				m.routeTbl.table.Blur()
			} else {
				m.tableStyle.Selected = m.tableStyle.Selected.Background(m.theme.Highlight)
				m.routeTbl.table.SetStyles(m.tableStyle)
				m.routeTbl.table.Focus()
			}
		// Moves the focus up in the route table if the table is focused.
		case "up", "k":
			if m.routeTbl.table.Focused() {
				m.routeTbl.table.MoveUp(1)
			}
		// Moves the focus down in the route table if the table is focused.
		case "down", "j":
			if m.routeTbl.table.Focused() {
				m.routeTbl.table.MoveDown(1)
			}
		// Switches between guidance and summary.
		case "tab":
			m.state = m.state.next()
		// Quits the program by returning the tea.Quit command.
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case ClockTickMsg:
		m.now = time.Time(thisMsg)
		return m, clockTick()
	case PlaybackTickMsg:
		m.lastUpdate = time.Time(thisMsg)
		if !m.step() {
			return m, nil // playback finished, stop ticking
		}

		return m, playbackTick(m.tickInterval)
	}

	// If the message type does not match any of the handled cases, the model is returned unchanged,
	// and no new command is issued.
	return m, nil
}

// step applies the next playback event. It reports whether more events are left.
func (m *model) step() bool {
	if m.nextEvent >= len(m.events) {
		return false
	}

	ev := m.events[m.nextEvent]
	m.nextEvent++

	previous := m.snapshot
	m.snapshot = m.guidance.Apply(ev)
	m.logger.Info("guidance event",
		slog.String("kind", ev.Kind.String()),
		slog.Int("maneuver", m.snapshot.ManeuverIndex))

	if m.snapshot.Status&^previous.Status != 0 && m.snapshot.Message.Valid {
		m.logger.Info("guidance status", slog.String("message", m.snapshot.Message.Text))
	}

	m.notify.EmitNotifications(previous, m.snapshot)

	// Follow the current maneuver unless the user is browsing the table.
	if !m.routeTbl.table.Focused() {
		m.routeTbl.table.SetCursor(m.snapshot.ManeuverIndex)
	}

	return m.nextEvent < len(m.events)
}

func (m *model) resizeTables() {
	if err := m.routeTbl.resize(m.width); err != nil {
		m.logger.Error("tuiapp:", slog.Any("resize route table", err))
	}
	m.routeTbl.SetHeight(max(m.height-chromeHeight, 3)) //nolint:mnd // header plus two rows

	if err := m.roadTbl.resize(m.width); err != nil {
		m.logger.Error("tuiapp:", slog.Any("resize road table", err))
	}
	m.roadTbl.SetHeight(max(m.height-chromeHeight, 3)) //nolint:mnd // header plus two rows
}

func (m *model) View() string {
	// Sets the width of the column to the width of the terminal (m.width) and adds padding of 1 unit
	// on the top.
	column := m.baseStyle.Width(m.width).Padding(1, 0, 0, 0).Render

	var page string

	switch m.state {
	case guidancePage:
		page = lipgloss.JoinVertical(lipgloss.Left,
			column(m.viewHeader()),
			column(lipgloss.JoinHorizontal(lipgloss.Top, m.viewManeuverPanel(), m.viewSpeed())),
			column(m.viewStyle.Render(m.routeTbl.table.View())),
		)
	case summaryPage:
		page = lipgloss.JoinVertical(lipgloss.Left,
			column(m.viewHeader()),
			column(m.viewSummary()),
			column(m.viewStyle.Render(m.roadTbl.table.View())),
		)
	}

	// Set the content to match the terminal dimensions (m.width and m.height).
	return m.baseStyle.
		Width(m.width).
		Height(m.height).
		Render(page)
}

// viewHeader shows the route name, the remaining distance, the arrival time and the status line.
func (m *model) viewHeader() string {
	listItem := func(key string, value internal.OptionalText) string {
		text := "--"
		if value.Valid {
			text = value.Text
		}

		return m.baseStyle.Render(key+":") + " " + m.baseStyle.Bold(true).Render(text) + "  "
	}

	name := m.guidance.Route().Name
	if name == "" {
		name = "navkit"
	}

	status := ""
	if m.snapshot.Message.Valid {
		status = m.baseStyle.Foreground(m.theme.Highlight).Bold(true).Render(m.snapshot.Message.Text)
	}

	updated := "waiting for the first update"
	if !m.lastUpdate.IsZero() && !m.now.IsZero() {
		updated = fmt.Sprintf("Last update: %d seconds ago", int(m.now.Sub(m.lastUpdate).Seconds()))
	}

	return m.viewStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.baseStyle.Bold(true).Render(name),
			lipgloss.JoinHorizontal(lipgloss.Left,
				listItem("Remaining", m.snapshot.Remaining),
				listItem("Arrival", m.snapshot.Arrival),
				status,
			),
			m.baseStyle.Foreground(m.theme.Secondary).Render(updated),
		),
	)
}

// viewManeuverPanel renders the icon, the distance and the instruction of the current maneuver.
func (m *model) viewManeuverPanel() string {
	panel := m.snapshot.Panel

	distance := ""
	if panel.Distance.Valid {
		distance = panel.Distance.Text
	}

	box := m.baseStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Width(panelWidth)

	return box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Center,
				m.baseStyle.Bold(true).Padding(0, 1).Render(glyph(panel.Icon)),
				m.baseStyle.Bold(true).Render(distance),
			),
			m.baseStyle.Render(panel.Instruction),
		),
	)
}

// viewSpeed renders the current speed, red while above the limit.
func (m *model) viewSpeed() string {
	speed := m.snapshot.Speed

	valueStyle := m.baseStyle.Bold(true).Foreground(m.theme.Primary)
	if speed.Speeding {
		valueStyle = valueStyle.Foreground(m.theme.Red)
	}

	limit := ""
	if speed.Limit.Valid {
		limit = m.baseStyle.Foreground(m.theme.Secondary).Render("limit " + speed.Limit.Text)
	}

	return m.baseStyle.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1).
		Render(
			lipgloss.JoinVertical(lipgloss.Center,
				valueStyle.Render(fmt.Sprintf("%d", speed.Value)),
				m.baseStyle.Render(speed.Unit),
				limit,
			),
		)
}

func (m *model) viewSummary() string {
	summary := m.guidance.Summary()

	return m.viewStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("Distance:  %s", summary.Distance),
			fmt.Sprintf("Duration:  %s", summary.Duration),
			fmt.Sprintf("Maneuvers: %d", summary.Maneuvers),
		),
	)
}
