// Package tui is a terminal version of the dashboard.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atikulmunna/agribot/internal/control"
	"github.com/atikulmunna/agribot/internal/hub"
	"github.com/atikulmunna/agribot/internal/i18n"
	"github.com/atikulmunna/agribot/internal/logbuf"
	"github.com/atikulmunna/agribot/internal/model"
	"github.com/atikulmunna/agribot/internal/output"
	"github.com/atikulmunna/agribot/internal/session"
)

type eventMsg model.Event

// closedMsg means the hub shut down.
type closedMsg struct{}

type theme struct {
	title    lipgloss.Style
	panel    lipgloss.Style
	label    lipgloss.Style
	dim      lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
	alert    lipgloss.Style
	barFull  lipgloss.Style
	barEmpty lipgloss.Style
}

func newTheme(brand, subtle, border lipgloss.Color) theme {
	return theme{
		title:    lipgloss.NewStyle().Bold(true).Foreground(brand),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		label:    lipgloss.NewStyle().Bold(true).Foreground(brand),
		dim:      lipgloss.NewStyle().Foreground(subtle),
		ok:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		alert:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		barFull:  lipgloss.NewStyle().Foreground(brand),
		barEmpty: lipgloss.NewStyle().Foreground(subtle),
	}
}

var themes = []theme{
	newTheme("42", "244", "238"), // dark
	newTheme("28", "240", "250"), // light
}

// Model is the bubbletea model.
type Model struct {
	sess *session.Session
	sub  *hub.Subscription
	keys keyMap
	help help.Model
	logs viewport.Model

	telemetry model.Telemetry
	themeIdx  int
	status    string
	width     int
	height    int
}

// New subscribes to the session hub. Call Close when the program exits.
func New(sess *session.Session) Model {
	m := Model{
		sess:      sess,
		sub:       sess.Hub.Subscribe(),
		keys:      defaultKeys(),
		help:      help.New(),
		logs:      viewport.New(80, 12),
		telemetry: sess.Station.Snapshot(),
	}
	m.refreshLogs()
	return m
}

// Close releases the hub subscription.
func (m Model) Close() {
	m.sess.Hub.Unsubscribe(m.sub.ID)
}

func waitEventCmd(ch <-chan model.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return closedMsg{}
		}
		return eventMsg(ev)
	}
}

func (m Model) Init() tea.Cmd {
	return waitEventCmd(m.sub.Events)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.logs.Width = max(40, m.width-4)
		m.logs.Height = max(6, m.height-16)
		m.help.Width = m.width
		m.refreshLogs()

	case closedMsg:
		return m, tea.Quit

	case eventMsg:
		switch msg.Kind {
		case model.EventTelemetry:
			if msg.Telemetry != nil {
				m.telemetry = *msg.Telemetry
			}
		case model.EventLogAppended, model.EventLogCleared:
			m.refreshLogs()
		}
		cmds = append(cmds, waitEventCmd(m.sub.Events))

	case tea.KeyMsg:
		if c, ok := m.commandFor(msg); ok {
			if _, err := m.sess.Controller.Send(c); err != nil {
				m.status = err.Error()
			} else {
				m.status = ""
			}
			return m, tea.Batch(cmds...)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Feed):
			state := m.sess.Feed.Toggle(m.sess.Context())
			m.status = m.feedLabel(state)
		case key.Matches(msg, m.keys.Clear):
			m.sess.Buffer.Clear()
		case key.Matches(msg, m.keys.Export):
			if path, err := m.sess.Export(); err != nil {
				m.status = err.Error()
			} else {
				m.status = "exported " + path
			}
		case key.Matches(msg, m.keys.Locale):
			m.status = string(m.sess.NextLocale())
		case key.Matches(msg, m.keys.Theme):
			m.themeIdx = (m.themeIdx + 1) % len(themes)
		}
	}

	m.logs, cmd = m.logs.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) commandFor(msg tea.KeyMsg) (control.Command, bool) {
	switch {
	case key.Matches(msg, m.keys.Forward):
		return control.Forward, true
	case key.Matches(msg, m.keys.Backward):
		return control.Backward, true
	case key.Matches(msg, m.keys.Left):
		return control.Left, true
	case key.Matches(msg, m.keys.Right):
		return control.Right, true
	case key.Matches(msg, m.keys.Stop):
		return control.Stop, true
	case key.Matches(msg, m.keys.Water):
		return control.Water, true
	case key.Matches(msg, m.keys.Weed):
		return control.Weed, true
	}
	return "", false
}

func (m *Model) refreshLogs() {
	entries := m.sess.Buffer.Snapshot()
	if len(entries) == 0 {
		m.logs.SetContent(themes[m.themeIdx].dim.Render(m.sess.Translate(i18n.LogsNoLogs)))
		return
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%s] %s %s", e.Timestamp, output.LevelTag(e.Level), e.Message)
	}
	m.logs.SetContent(b.String())
	m.logs.GotoBottom()
}

func (m Model) feedLabel(s logbuf.State) string {
	if s == logbuf.StateLive {
		return m.sess.Translate(i18n.LogsLive)
	}
	return m.sess.Translate(i18n.LogsPaused)
}

func bar(th theme, percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = min(max(filled, 0), width)
	return th.barFull.Render(strings.Repeat("█", filled)) + th.barEmpty.Render(strings.Repeat("░", width-filled))
}

func (m Model) View() string {
	th := themes[m.themeIdx]
	tr := m.sess.Translate
	tm := m.telemetry

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		th.title.Render("🌱 "+tr(i18n.DashboardTitle)),
		"  ",
		th.dim.Render(string(m.sess.Locale())),
		"  ",
		th.ok.Render(m.feedLabel(m.sess.Feed.State())),
	)

	moisture := fmt.Sprintf("%s\n%s %3.0f%%\n%s",
		th.label.Render(tr(i18n.DashboardSoilMoisture)),
		bar(th, tm.MoisturePercent, 16), tm.MoisturePercent,
		th.dim.Render(tr(i18n.Key("widgets.soilMoisture."+tm.MoistureStatus))))

	tankStyle := th.ok
	tankNote := tr(i18n.WidgetsTankOK)
	if tm.Tank == model.TankEmpty {
		tankStyle = th.alert
		tankNote = tr(i18n.WidgetsRefill)
	}
	tank := fmt.Sprintf("%s\n%s %s\n%s",
		th.label.Render(tr(i18n.DashboardWaterTank)),
		bar(th, float64(tm.TankFill), 16), tankStyle.Render(string(tm.Tank)),
		th.dim.Render(tankNote))

	obstacleNote := th.ok.Render(tr(i18n.WidgetsPathClear))
	if tm.ObstacleDetected {
		obstacleNote = th.alert.Render(tr(i18n.WidgetsObstacleDetected))
	}
	obstacle := fmt.Sprintf("%s\n%s %3.0fcm\n%s",
		th.label.Render(tr(i18n.DashboardObstacle)),
		bar(th, tm.SafetyPercent, 16), tm.Distance.Value, obstacleNote)

	onOff := func(on bool) string {
		if on {
			return th.ok.Render("ON ")
		}
		return th.dim.Render("OFF")
	}
	systems := fmt.Sprintf("%s\nMotor %s Pump %s Weeder %s\n%s",
		th.label.Render(tr(i18n.DashboardSystemStatus)),
		onOff(tm.Systems.Motor), onOff(tm.Systems.Pump), onOff(tm.Systems.Weeder),
		th.dim.Render(fmt.Sprintf("%d/3 · %s", tm.ActiveSystems, tm.LastCommand)))

	widgets := lipgloss.JoinHorizontal(lipgloss.Top,
		th.panel.Render(moisture), th.panel.Render(tank),
		th.panel.Render(obstacle), th.panel.Render(systems))

	logTitle := fmt.Sprintf("%s  %s",
		th.label.Render(tr(i18n.LogsSystemLog)),
		th.dim.Render(fmt.Sprintf("%d %s", m.sess.Buffer.Len(), tr(i18n.LogsEntries))))
	logs := th.panel.Render(logTitle + "\n" + m.logs.View())

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = th.warn.Render(m.status) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, widgets, logs, footer)
}

// Run starts the program in the alternate screen and blocks until quit.
func Run(sess *session.Session) error {
	m := New(sess)
	defer m.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
