package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/shiksha/internal/config"
	"github.com/f3rmion/shiksha/internal/scansion"
	"github.com/f3rmion/shiksha/internal/store"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func newModel(t *testing.T, opts ...Option) (Model, *[]string) {
	t.Helper()
	var copied []string
	opts = append([]Option{WithClipboard(func(s string) error {
		copied = append(copied, s)
		return nil
	})}, opts...)
	return New(scansion.New(config.DefaultTable()), opts...), &copied
}

func TestAnalyzeAndBrowse(t *testing.T) {
	m, copied := newModel(t)
	m.input.SetValue("agnimIDe")

	m, _ = send(t, m, key("enter"))
	require.NotNil(t, m.result)
	assert.True(t, m.browsing)
	assert.Equal(t, "GLGG", m.result.Pattern())
	assert.Contains(t, m.View(), "GLGG")

	m, _ = send(t, m, key("right"), key("right"))
	assert.Equal(t, 2, m.selected)
	m, _ = send(t, m, key("left"), key("left"), key("left"))
	assert.Equal(t, 3, m.selected, "selection wraps")

	m, cmd := send(t, m, key("y"))
	assert.NotNil(t, cmd)
	assert.True(t, m.copied)
	assert.Equal(t, []string{"GLGG"}, *copied)
	assert.Equal(t, "agnimIDe", m.input.Value(), "browse keys are not typed")

	m, _ = send(t, m, clearCopiedMsg{})
	assert.False(t, m.copied)
}

func TestEditAgain(t *testing.T) {
	m, _ := newModel(t)
	m.input.SetValue("kha")
	m, _ = send(t, m, key("enter"), key("i"))
	assert.False(t, m.browsing)

	m.input.SetValue("kA")
	m, _ = send(t, m, key("enter"))
	assert.Equal(t, "G", m.result.Pattern())

	m, _ = send(t, m, key("esc"))
	assert.False(t, m.browsing)
	_, cmd := send(t, m, key("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestEmptyInputIgnored(t *testing.T) {
	m, _ := newModel(t)
	m, _ = send(t, m, key("enter"))
	assert.Nil(t, m.result)
	assert.False(t, m.browsing)
	assert.Contains(t, m.View(), "Type a line")
}

func TestCopyFailure(t *testing.T) {
	m := New(scansion.New(config.DefaultTable()), WithClipboard(func(string) error {
		return errors.New("no tool")
	}))
	m.input.SetValue("kha")
	m, _ = send(t, m, key("enter"), key("y"))
	assert.False(t, m.copied)
	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "no tool")
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, filepath.Join(t.TempDir(), "scans.db"))
	require.NoError(t, err)
	defer st.Close()

	m, _ := newModel(t, WithStore(st))
	m.input.SetValue("kaM")
	m, cmd := send(t, m, key("enter"), key("s"))
	require.NotNil(t, cmd)

	m, _ = send(t, m, cmd())
	require.NoError(t, m.err)
	assert.Contains(t, m.status, "saved ")

	scans, err := st.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, scans, 1)
	assert.Equal(t, "G", scans[0].Record.Pattern)
}

func TestSaveWithoutStore(t *testing.T) {
	m, _ := newModel(t)
	m.input.SetValue("kha")
	m, cmd := send(t, m, key("enter"), key("s"))
	assert.Nil(t, cmd)
	assert.Error(t, m.err)
}
