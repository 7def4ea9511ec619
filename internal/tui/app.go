// internal/tui/app.go
//
// The interactive phonafind session. Built on bubbletea's Elm
// architecture: the App model holds all state, Update reacts to
// messages, View renders the current screen to a string.
//
// Screens: main menu -> code entry -> results, plus a phoneme chart
// for looking up which number means which sound.

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/phonafind/internal/config"
	"github.com/yourusername/phonafind/internal/logbook"
	"github.com/yourusername/phonafind/internal/phoneme"
)

// appState represents which screen we're on
type appState int

const (
	stateMenu    appState = iota // Main menu
	stateEntry                   // Typing phoneme codes
	stateResults                 // Showing the common features
	stateChart                   // Phoneme number chart
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).MarginBottom(1)
	screenStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	resolvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	missStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
)

// menuItem implements list.Item for the main menu
type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

const (
	menuConsonants = "Consonant Features"
	menuVowels     = "Vowel Features"
	menuChart      = "Phoneme Chart"
	menuExit       = "Exit"
)

// App is the main application model.
type App struct {
	cfg     *config.Config
	logbook *logbook.Logbook

	state appState
	menu  list.Model
	input textinput.Model

	class   phoneme.Class
	codes   []phoneme.Code
	results []phoneme.DimensionResult
	errMsg  string

	width  int
	height int
}

// NewApp creates the session model. A logbook is attached when
// session logging is enabled in the config; all logbook methods are
// nil-safe so a failed open just disables logging.
func NewApp(cfg *config.Config) *App {
	var lb *logbook.Logbook
	if cfg.Settings.SessionLog {
		if book, err := logbook.New(cfg.LogPath()); err == nil {
			lb = book
			lb.Info("Session opened")
		}
	}

	items := []list.Item{
		menuItem{title: menuConsonants, desc: "Find what a set of consonants has in common"},
		menuItem{title: menuVowels, desc: "Find what a set of vowels has in common"},
		menuItem{title: menuChart, desc: "Which number is which phoneme"},
		menuItem{title: menuExit, desc: "Quit phonafind"},
	}
	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "⬡ COMMON FEATURE FINDER"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "e.g. 1 2 3"
	input.CharLimit = 120

	return &App{
		cfg:     cfg,
		logbook: lb,
		state:   stateMenu,
		menu:    menu,
		input:   input,
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.menu.SetSize(max(0, msg.Width-6), max(0, msg.Height-8))
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.logClose()
			return a, tea.Quit
		case "q":
			if a.state == stateMenu {
				a.logClose()
				return a, tea.Quit
			}
			if a.state == stateChart || a.state == stateResults {
				return a.returnToMenu()
			}
		case "esc":
			if a.state != stateMenu {
				return a.returnToMenu()
			}
		case "enter":
			switch a.state {
			case stateMenu:
				return a.handleMenuSelection()
			case stateEntry:
				return a.submitEntry()
			case stateResults:
				// Straight back to entry for another set of the
				// same class.
				return a.beginEntry(a.class)
			}
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case stateMenu:
		a.menu, cmd = a.menu.Update(msg)
	case stateEntry:
		a.input, cmd = a.input.Update(msg)
	}
	return a, cmd
}

// handleMenuSelection processes menu item selection
func (a *App) handleMenuSelection() (tea.Model, tea.Cmd) {
	item, ok := a.menu.SelectedItem().(menuItem)
	if !ok {
		return a, nil
	}
	switch item.title {
	case menuConsonants:
		a.logInfo("Menu · consonant lookup selected")
		return a.beginEntry(phoneme.Consonant)
	case menuVowels:
		a.logInfo("Menu · vowel lookup selected")
		return a.beginEntry(phoneme.Vowel)
	case menuChart:
		a.state = stateChart
		return a, nil
	case menuExit:
		a.logClose()
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) beginEntry(class phoneme.Class) (tea.Model, tea.Cmd) {
	a.state = stateEntry
	a.class = class
	a.codes = nil
	a.results = nil
	a.errMsg = ""
	a.input.SetValue("")
	a.input.Focus()
	return a, textinput.Blink
}

func (a *App) submitEntry() (tea.Model, tea.Cmd) {
	codes, err := parseCodes(a.input.Value())
	if err != nil {
		a.errMsg = err.Error()
		return a, nil
	}
	if len(codes) == 0 {
		a.errMsg = "enter at least one code"
		return a, nil
	}
	if limit := a.cfg.Settings.MaxEntries; limit > 0 && len(codes) > limit {
		a.errMsg = fmt.Sprintf("at most %d codes per lookup (max_entries)", limit)
		return a, nil
	}

	results, err := phoneme.CommonFeatures(a.class, codes)
	if err != nil {
		a.errMsg = err.Error()
		return a, nil
	}

	a.codes = codes
	a.results = results
	a.errMsg = ""
	a.state = stateResults
	a.logbook.Lookup(a.class, codes, results)
	return a, nil
}

// returnToMenu transitions back to the main menu
func (a *App) returnToMenu() (tea.Model, tea.Cmd) {
	a.state = stateMenu
	a.codes = nil
	a.results = nil
	a.errMsg = ""
	a.input.Blur()
	return a, nil
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logClose() {
	if a.logbook == nil {
		return
	}
	a.logbook.Info("Session closed")
}

// parseCodes splits an entry line on spaces and commas and converts
// each field to a phoneme code. The values are not range-checked here;
// out-of-range codes surface per dimension, as typed errors.
func parseCodes(s string) ([]phoneme.Code, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	codes := make([]phoneme.Code, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a phoneme number", f)
		}
		codes = append(codes, phoneme.Code(n))
	}
	return codes, nil
}

// View renders the current state to a string.
func (a *App) View() string {
	header := headerStyle.Render("⬡ PHONAFIND")
	var content string
	switch a.state {
	case stateMenu:
		content = a.menu.View()
		if panel := a.renderLogPanel(); panel != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, content, "", panel)
		}
	case stateEntry:
		content = a.renderEntry()
	case stateResults:
		content = a.renderResults()
	case stateChart:
		content = lipgloss.JoinVertical(lipgloss.Left,
			screenStyle.Render("Phoneme Chart"),
			"",
			renderChart(),
			"",
			hintStyle.Render("esc: back"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content)
}

func (a *App) renderEntry() string {
	title := screenStyle.Render(fmt.Sprintf("Enter %s codes (1-%d), separated by spaces",
		a.class, a.class.MaxCode()))
	lines := []string{title, "", a.input.View()}
	if a.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(a.errMsg))
	}
	lines = append(lines, "", hintStyle.Render("enter: find common features · esc: back"))
	return strings.Join(lines, "\n")
}

func (a *App) renderResults() string {
	symbols := make([]string, 0, len(a.codes))
	for _, c := range a.codes {
		if s := phoneme.Symbol(a.class, c); s != "" {
			symbols = append(symbols, s)
		} else {
			symbols = append(symbols, fmt.Sprintf("?%d", c))
		}
	}
	title := screenStyle.Render(fmt.Sprintf("Common features of /%s/", strings.Join(symbols, "/, /")))

	rows := make([]string, 0, len(a.results))
	for _, r := range a.results {
		if r.Resolved() {
			rows = append(rows, fmt.Sprintf("%-28s %s", r.Dimension.Title(), resolvedStyle.Render(r.Label)))
			continue
		}
		if a.cfg.Settings.QuietMisses {
			continue
		}
		rows = append(rows, fmt.Sprintf("%-28s %s", r.Dimension.Title(), missStyle.Render(fmt.Sprintf("— %v", r.Err))))
	}
	body := "Nothing in common along any dimension."
	if len(rows) > 0 {
		body = strings.Join(rows, "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		boxStyle.Render(body),
		"",
		hintStyle.Render("enter: another lookup · esc: menu"),
	)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines := a.logbook.Tail(5)
	if len(lines) == 0 {
		return ""
	}
	head := screenStyle.Render("SESSION LOG")
	body := missStyle.Render(strings.Join(lines, "\n"))
	return boxStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}
