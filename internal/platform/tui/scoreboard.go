package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/iceslide/internal/registry"
	"github.com/vovakirdan/iceslide/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxRuns            = 100
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next puzzle"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev puzzle"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// boardEntry is one puzzle with its own leaderboard.
type boardEntry struct {
	registry.GameInfo
	level bool // Fixed level rather than a difficulty preset
}

// scoreboardStyles groups the lipgloss styles used by the scoreboard.
type scoreboardStyles struct {
	title   lipgloss.Style
	panel   lipgloss.Style
	section lipgloss.Style
	active  lipgloss.Style
	dim     lipgloss.Style
	stats   lipgloss.Style
	empty   lipgloss.Style
}

func newScoreboardStyles() scoreboardStyles {
	frame := lipgloss.Color("240")
	return scoreboardStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("153")),
		panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(frame).Padding(0, 1),
		section: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true),
		active:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		stats:   lipgloss.NewStyle().Foreground(lipgloss.Color("153")),
		empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboards: one per
// difficulty preset and one per fixed level.
type ScoreboardModel struct {
	entries   []boardEntry
	cursor    int
	store     *storage.Store
	runs      []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	styles    scoreboardStyles
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel lists every registered preset followed by levels.
func NewScoreboardModel(store *storage.Store, width, height int, levels []registry.GameInfo) ScoreboardModel {
	presets := registry.List()
	entries := make([]boardEntry, 0, len(presets)+len(levels))
	for _, info := range presets {
		entries = append(entries, boardEntry{GameInfo: info})
	}
	for _, info := range levels {
		entries = append(entries, boardEntry{GameInfo: info, level: true})
	}

	m := ScoreboardModel{
		entries: entries,
		store:   store,
		help:    help.New(),
		keys:    DefaultScoreboardKeyMap(),
		styles:  newScoreboardStyles(),
		width:   width,
		height:  height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

// wide reports whether the puzzle list fits beside the table.
func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) newTable() table.Model {
	when := 20
	if avail := m.width - 4 - 20; m.wide() {
		when = min(20, max(10, avail-sidebarWidth-3))
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Solved", Width: 10},
			{Title: "When", Width: when},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the runs and totals of the selected puzzle.
func (m *ScoreboardModel) load() {
	m.runs = nil
	m.stats = nil
	if m.store != nil && len(m.entries) > 0 {
		id := m.entries[m.cursor].ID
		if runs, err := m.store.TopScores(id, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(r.Score)),
			humanize.Time(r.CreatedAt),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// move selects the puzzle delta entries away, wrapping around.
func (m *ScoreboardModel) move(delta int) {
	if len(m.entries) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.entries)) % len(m.entries)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.move(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "BEST RUNS"
	if len(m.entries) > 0 {
		title += " - " + m.entries[m.cursor].Title
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.styles.title.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	body := m.styles.panel.Render(m.renderRuns())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.renderPosition(), m.width))
		b.WriteString("\n\n")
		b.WriteString(body)
	}

	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render(m.help.View(m.keys)))
	return b.String()
}

// renderSidebar lists presets and levels under separate headings.
func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	section := ""
	for i, e := range m.entries {
		heading := "Difficulties"
		if e.level {
			heading = "Levels"
		}
		if heading != section {
			if section != "" {
				sb.WriteString("\n")
			}
			sb.WriteString(m.styles.section.Render(heading))
			sb.WriteString("\n")
			section = heading
		}

		name := truncate(e.Title, sidebarWidth-6)
		if i == m.cursor {
			sb.WriteString(m.styles.active.Render("> " + name))
		} else {
			sb.WriteString("  " + name)
		}
		sb.WriteString("\n")
	}
	return m.styles.panel.Width(sidebarWidth).Render(strings.TrimSuffix(sb.String(), "\n"))
}

// renderPosition is the narrow-layout stand-in for the sidebar.
func (m ScoreboardModel) renderPosition() string {
	if len(m.entries) == 0 {
		return ""
	}
	return m.styles.dim.Render(fmt.Sprintf("< %d/%d >", m.cursor+1, len(m.entries)))
}

// renderRuns renders the totals line and the table, or an empty message.
func (m ScoreboardModel) renderRuns() string {
	if len(m.runs) == 0 {
		return m.styles.empty.Render("No runs recorded yet.\nSolve a puzzle without peeking to score.")
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderStats(), "", m.table.View())
}

// renderStats summarizes every run of the selected puzzle.
func (m ScoreboardModel) renderStats() string {
	st := m.stats
	if st == nil || st.RunsCount == 0 {
		return ""
	}
	return m.styles.stats.Render(fmt.Sprintf("Runs %s  |  Best %d  |  Avg %.1f  |  Solved %s  |  Last %s",
		humanize.Comma(int64(st.RunsCount)),
		st.HighScore,
		st.AvgScore,
		humanize.Comma(st.TotalSolved),
		humanize.Time(st.LastPlayed),
	))
}

// truncate shortens s to n display columns, marking the cut with a dot.
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen. It returns true when the user
// goes back to the menu and false when they quit.
func RunScoreboard(store *storage.Store, width, height int, levels []registry.GameInfo) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height, levels), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
