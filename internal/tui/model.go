package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/junyuh/titlesift/internal/logging"
	"github.com/junyuh/titlesift/internal/sieve"
)

// Options configures the TUI model.
type Options struct {
	// Debounce is the quiet period after the last edit before a pass runs.
	Debounce time.Duration
	// MaxRows caps rendered rows; 0 fits to the terminal height.
	MaxRows int
	// Updates, if non-nil, delivers replacement listings (file watcher).
	Updates <-chan []sieve.Candidate
	// Logger may be nil.
	Logger *logging.Logger
}

// debounceMsg fires after the quiet period. Its generation is compared to
// the model's: a stale generation means the user kept typing and a newer
// tick is already scheduled.
type debounceMsg struct {
	gen int
}

// titlesMsg carries a reloaded listing from the watcher.
type titlesMsg []sieve.Candidate

// Model is the bubbletea model for the interactive listing.
type Model struct {
	input      textinput.Model
	siv        *sieve.Sieve
	log        *logging.Logger
	candidates []sieve.Candidate
	visible    map[string]bool
	shown      int

	debounce time.Duration
	gen      int
	pending  bool
	lastRule string

	updates <-chan []sieve.Candidate

	scroll  int
	maxRows int
	width   int
	height  int
	err     error
}

// New creates a Model over the given listing. The initial state shows
// every row (empty rule).
func New(siv *sieve.Sieve, candidates []sieve.Candidate, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logging.NopLogger()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}

	ti := textinput.New()
	ti.Placeholder = "rule: term | alt ; /regex/"
	ti.Prompt = "> "
	ti.Focus()

	m := Model{
		input:      ti,
		siv:        siv,
		log:        log,
		candidates: candidates,
		debounce:   debounce,
		maxRows:    opts.MaxRows,
		updates:    opts.Updates,
	}
	m.runPass()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForTitles())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 6
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			if m.scroll > 0 {
				m.scroll--
			}
			return m, nil
		case "down":
			if m.scroll < m.maxScroll() {
				m.scroll++
			}
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != m.lastRule {
			// Coalesce rapid edits: only the newest generation's tick
			// triggers a pass.
			m.gen++
			m.pending = true
			gen := m.gen
			return m, tea.Batch(cmd, tea.Tick(m.debounce, func(time.Time) tea.Msg {
				return debounceMsg{gen: gen}
			}))
		}
		return m, cmd

	case debounceMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.pending = false
		m.runPass()
		return m, nil

	case titlesMsg:
		m.candidates = []sieve.Candidate(msg)
		m.runPass()
		if m.scroll > m.maxScroll() {
			m.scroll = m.maxScroll()
		}
		return m, m.waitForTitles()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runPass applies the current rule to the current listing. The pass is
// synchronous; its output fully replaces the previous pass's decisions.
func (m *Model) runPass() {
	rule := m.input.Value()
	m.lastRule = rule

	decisions, err := m.siv.FilterAll(rule, m.candidates)
	if err != nil {
		// Conversion failure: keep the previous decisions on screen and
		// surface the error in the status bar.
		m.err = err
		return
	}
	m.err = nil

	m.visible = make(map[string]bool, len(decisions))
	m.shown = 0
	for _, d := range decisions {
		m.visible[d.Handle] = d.Visible
		if d.Visible {
			m.shown++
		}
	}
}

// waitForTitles blocks on the watcher channel as a tea.Cmd.
func (m Model) waitForTitles() tea.Cmd {
	if m.updates == nil {
		return nil
	}
	return func() tea.Msg {
		cands, ok := <-m.updates
		if !ok {
			return nil
		}
		return titlesMsg(cands)
	}
}

// visibleRows returns the titles of visible candidates in listing order.
func (m Model) visibleRows() []string {
	rows := make([]string, 0, len(m.candidates))
	for _, c := range m.candidates {
		if m.visible[c.Handle] {
			rows = append(rows, c.Title)
		}
	}
	return rows
}

// rowBudget is how many listing rows fit on screen.
func (m Model) rowBudget() int {
	if m.maxRows > 0 {
		return m.maxRows
	}
	// Header, input box (3 lines with border), status bar.
	budget := m.height - 6
	if budget < 1 {
		budget = 10
	}
	return budget
}

func (m Model) maxScroll() int {
	n := m.shown - m.rowBudget()
	if n < 0 {
		return 0
	}
	return n
}
