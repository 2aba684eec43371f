// Package tui provides the interactive Bubble Tea dashboard for ecolog.
package tui

import (
	"fmt"
	"strings"
	"time"

	"ecolog/internal/calc"
	"ecolog/internal/config"
	"ecolog/internal/model"
	"ecolog/internal/pipeline"
	"ecolog/internal/store"
	"ecolog/internal/tui/components"
	"ecolog/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dataLoadedMsg is sent when the history read finishes.
type dataLoadedMsg struct {
	records []model.EmissionRecord
	err     error
}

// entrySavedMsg is sent when a log-form submission has been persisted.
type entrySavedMsg struct {
	rec model.EmissionRecord
	err error
}

const (
	tabOverview = iota
	tabTrend
	tabHistory
	tabLog
)

const minTerminalWidth = 70

// App is the root Bubble Tea model.
type App struct {
	dbPath string
	days   int

	// Data
	records []model.EmissionRecord
	loaded  bool
	loadErr error

	// Config snapshot for computing new entries
	factors  config.Factors
	baseline config.Baseline

	// Pre-computed for the current window
	stats  model.SummaryStats
	points []model.DailyPoint

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	statusMsg string

	// History tab
	historyCursor int

	// Log tab (huh form)
	logForm *huh.Form
	logVals logValues

	spinner spinner.Model
}

// logValues backs the log-entry form fields.
type logValues struct {
	date    string
	car     string
	bus     string
	bike    string
	kwh     string
	meat    string
	veg     string
	plastic string
}

// NewApp creates a new TUI app model.
func NewApp(dbPath string, days int) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	cfg, _ := config.Load()

	return App{
		dbPath:   dbPath,
		days:     days,
		factors:  cfg.EffectiveFactors(),
		baseline: cfg.Baseline,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.dbPath),
		a.spinner.Tick,
	)
}

func loadDataCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(dbPath)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		defer func() { _ = st.Close() }()

		records, err := st.History()
		return dataLoadedMsg{records: records, err: err}
	}
}

func saveEntryCmd(dbPath string, entry model.ActivityEntry, factors config.Factors, baseline config.Baseline) tea.Cmd {
	return func() tea.Msg {
		rec, err := calc.Compute(entry, factors, baseline)
		if err != nil {
			return entrySavedMsg{err: err}
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return entrySavedMsg{err: err}
		}
		defer func() { _ = st.Close() }()

		if err := st.Upsert(rec); err != nil {
			return entrySavedMsg{err: err}
		}
		return entrySavedMsg{rec: rec}
	}
}

func (a *App) recompute() {
	now := time.Now()
	since := now.AddDate(0, 0, -(a.days - 1))

	a.stats = pipeline.Summarize(a.records, since, now)
	a.points = pipeline.FillDays(a.records, since, now)

	if a.historyCursor >= len(a.records) {
		a.historyCursor = len(a.records) - 1
	}
	if a.historyCursor < 0 {
		a.historyCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.logForm != nil {
			a.logForm = a.logForm.WithWidth(msg.Width - 4)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// The log form owns keys while active
		if a.activeTab == tabLog && a.logForm != nil {
			if key == "esc" {
				a.logForm = nil
				a.activeTab = tabOverview
				return a, nil
			}
			return a.updateLogForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		if key == "r" {
			return a, loadDataCmd(a.dbPath)
		}

		// History tab scrolling
		if a.activeTab == tabHistory {
			switch key {
			case "j", "down":
				if a.historyCursor < len(a.records)-1 {
					a.historyCursor++
				}
				return a, nil
			case "k", "up":
				if a.historyCursor > 0 {
					a.historyCursor--
				}
				return a, nil
			case "g":
				a.historyCursor = 0
				return a, nil
			case "G":
				if len(a.records) > 0 {
					a.historyCursor = len(a.records) - 1
				}
				return a, nil
			}
		}

		// Tab navigation
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		default:
			if len(key) == 1 {
				if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
					a.activeTab = idx
				}
			}
		}

		if a.activeTab == tabLog && a.logForm == nil {
			return a.startLogForm()
		}
		return a, nil

	case dataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.err
		if msg.err == nil {
			a.records = msg.records
			a.recompute()
		}
		return a, nil

	case entrySavedMsg:
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("save failed: %s", msg.err)
			return a, nil
		}
		a.statusMsg = fmt.Sprintf("logged %s: %.2f kg CO₂", msg.rec.DateKey(), msg.rec.TotalKg)
		a.logForm = nil
		a.activeTab = tabOverview
		return a, loadDataCmd(a.dbPath)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the log form (cursor blinks, etc.)
	if a.activeTab == tabLog && a.logForm != nil {
		return a.updateLogForm(msg)
	}

	return a, nil
}

func (a App) updateLogForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.logForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.logForm = f
	}

	if a.logForm.State == huh.StateCompleted {
		entry, err := a.logVals.toEntry()
		if err != nil {
			a.statusMsg = err.Error()
			a.logForm = nil
			a.activeTab = tabOverview
			return a, nil
		}
		return a, saveEntryCmd(a.dbPath, entry, a.factors, a.baseline)
	}

	if a.logForm.State == huh.StateAborted {
		a.logForm = nil
		a.activeTab = tabOverview
		return a, nil
	}

	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  ecolog needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if !a.loaded {
		return fmt.Sprintf("\n\n  %s Loading history...\n", a.spinner.View())
	}

	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.Active.Red)
		return "\n  " + errStyle.Render(fmt.Sprintf("Could not open the log database:\n  %s", a.loadErr)) + "\n"
	}

	if a.showHelp {
		return a.viewHelp()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabOverview:
		b.WriteString(a.viewOverview())
	case tabTrend:
		b.WriteString(a.viewTrend())
	case tabHistory:
		b.WriteString(a.viewHistory())
	case tabLog:
		b.WriteString(a.viewLog())
	}

	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(a.width, a.statusMsg))

	return b.String()
}

func (a App) viewHelp() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	lines := []struct{ key, desc string }{
		{"o / t / h / l", "switch tab"},
		{"← / →", "cycle tabs"},
		{"j / k", "move in history"},
		{"g / G", "jump to first / last entry"},
		{"r", "reload from disk"},
		{"esc", "cancel the log form"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("Keys"))
	b.WriteString("\n\n")
	for _, l := range lines {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-14s", l.key)),
			descStyle.Render(l.desc)))
	}
	b.WriteString("\n")
	b.WriteString(descStyle.Render("  Press any key to close."))
	return b.String()
}
