// Package tui provides an interactive terminal UI for exploring scansions.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/shiksha/internal/chandas"
	"github.com/f3rmion/shiksha/internal/clipboard"
	"github.com/f3rmion/shiksha/internal/render"
	"github.com/f3rmion/shiksha/internal/scansion"
	"github.com/f3rmion/shiksha/internal/store"
	"github.com/f3rmion/shiksha/internal/varna"
)

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

type savedMsg struct {
	id  string
	err error
}

// Model is the Bubble Tea model for the scansion explorer. It starts in
// editing mode; analysing a line switches to browsing, where single keys
// act on the result instead of being typed.
type Model struct {
	input    textinput.Model
	analyzer *scansion.Analyzer
	scheme   varna.Scheme
	store    *store.Store
	copy     func(string) error

	result   *scansion.Result
	selected int // index into result.Scanned
	browsing bool
	err      error
	status   string
	copied   bool

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithStore enables saving scans with "s".
func WithStore(s *store.Store) Option {
	return func(m *Model) { m.store = s }
}

// WithScheme sets the transliteration scheme for display.
func WithScheme(s varna.Scheme) Option {
	return func(m *Model) {
		if s != "" {
			m.scheme = s
		}
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.copy = fn }
}

// New creates a new TUI model.
func New(analyzer *scansion.Analyzer, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a line in Harvard-Kyoto, e.g. agnimIDe purohitaM"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	m := Model{
		input:    ti,
		analyzer: analyzer,
		scheme:   varna.SchemeHarvardKyoto,
		copy:     clipboard.Write,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.browsing {
				m.edit()
				return m, nil
			}
			return m, tea.Quit
		}
		if m.browsing {
			return m.updateBrowse(msg)
		}
		if msg.String() == "enter" {
			m.analyzeInput()
			return m, nil
		}

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.status = "saved " + msg.id
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.result.Scanned)
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h", "shift+tab":
		if n > 0 {
			m.selected = (m.selected - 1 + n) % n
		}
	case "right", "l", "tab":
		if n > 0 {
			m.selected = (m.selected + 1) % n
		}
	case "y":
		if err := m.copy(m.result.Pattern()); err != nil {
			m.err = fmt.Errorf("copying pattern: %w", err)
			return m, nil
		}
		m.copied = true
		return m, clearCopiedAfter(2 * time.Second)
	case "s":
		if m.store == nil {
			m.err = fmt.Errorf("no history database configured")
			return m, nil
		}
		return m, m.save()
	case "i", "/", "enter":
		m.edit()
	}
	return m, nil
}

func (m *Model) edit() {
	m.browsing = false
	m.status = ""
	m.input.Focus()
}

// analyzeInput scans the current input and switches to browsing.
func (m *Model) analyzeInput() {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return
	}

	m.err = nil
	m.status = ""
	r, err := m.analyzer.Analyze(line)
	if err != nil {
		m.err = err
		return
	}
	m.result = r
	m.selected = 0
	m.browsing = true
	m.input.Blur()
}

func (m Model) save() tea.Cmd {
	st := m.store
	rec := m.result.Record(m.analyzer.Policy())
	return func() tea.Msg {
		scan, err := st.Save(context.Background(), rec)
		if err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{id: scan.ID}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	header := titleStyle.Render("  शिक्षा  ") + "  " +
		subtitleStyle.Render("Metrical Scansion Explorer")
	b.WriteString(header)
	b.WriteString("\n\n  ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("  " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString(m.renderResult())
	} else {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("  Type a line and press Enter"))
		b.WriteString("\n")
	}

	if m.copied {
		b.WriteString(copiedStyle.Render("  pattern copied"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(copiedStyle.Render("  " + m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  " + strings.Join(m.helpParts(), " • ")))
	return b.String()
}

func (m Model) helpParts() []string {
	if !m.browsing {
		return []string{"enter: analyze", "esc: quit"}
	}
	parts := []string{"←/→: syllable", "y: copy pattern"}
	if m.store != nil {
		parts = append(parts, "s: save")
	}
	return append(parts, "i: edit", "q: quit")
}

func (m Model) renderResult() string {
	var b strings.Builder
	b.WriteString("\n")

	top, bottom := m.renderLine()
	b.WriteString("  " + top + "\n")
	b.WriteString("  " + bottom + "\n\n")

	r := m.result
	b.WriteString("  " + labelStyle.Render("Pattern") + valueStyle.Render(r.Pattern()) + "\n")
	b.WriteString("  " + labelStyle.Render("Kaala") + valueStyle.Render(fmt.Sprint(r.Total())) + "\n")
	if feet := r.Feet(); len(feet) > 0 {
		b.WriteString("  " + labelStyle.Render("Gana") + valueStyle.Render(strings.Join(feet, " ")) + "\n")
	}
	if len(r.Unmatched) > 0 {
		b.WriteString("  " + labelStyle.Render("Unmatched") + errorStyle.Render(string(r.Unmatched)) + "\n")
	}

	if m.selected < len(r.Scanned) {
		b.WriteString(boxStyle.Render(m.renderSyllable(r.Scanned[m.selected])))
		b.WriteString("\n")
	}
	return b.String()
}

// renderLine aligns syllables over their marks, colouring each mark by
// weight and highlighting the selected syllable.
func (m Model) renderLine() (string, string) {
	var top, bottom []string
	k := 0
	for _, c := range render.Cells(m.result, m.scheme) {
		if c == nil {
			top = append(top, " ")
			bottom = append(bottom, " ")
			continue
		}
		w := max(runewidth.StringWidth(c.Text), runewidth.StringWidth(c.Mark))
		text := runewidth.FillRight(c.Text, w)
		mark := weightStyle(chandas.Weight(c.Weight)).Render(runewidth.FillRight(c.Mark, w))
		if c.Mark != "" {
			if k == m.selected {
				text = selectedStyle.Render(text)
			}
			k++
		}
		top = append(top, text)
		bottom = append(bottom, mark)
	}
	return strings.Join(top, " "), strings.Join(bottom, " ")
}

func (m Model) renderSyllable(s chandas.Scanned) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Syllable"))
	b.WriteString(weightStyle(s.Weight).Render(s.Syllable.Transliterate(m.scheme)))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Weight"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%s (%s, %d kaala)", s.Weight, s.Weight.Symbol(), s.Kaala())))
	for _, u := range s.Syllable.Units() {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(u.Render(m.scheme)))
		attrs := []string{string(u.Class)}
		for _, a := range []string{string(u.Pitch), string(u.Duration), string(u.Place), string(u.Effort)} {
			if a != "" {
				attrs = append(attrs, a)
			}
		}
		b.WriteString(valueStyle.Render(strings.Join(attrs, " · ")))
	}
	return b.String()
}
