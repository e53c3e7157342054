package composer

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/colormix/internal/config"
	apperrors "github.com/alexisbeaulieu97/colormix/pkg/errors"
)

func TestViewRendersSwatchAndRows(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 64, 128, 200)
	view := m.View()

	assert.Contains(t, view, "colormix")
	assert.Contains(t, view, "#4080c8")
	assert.Contains(t, view, "64")
	assert.Contains(t, view, "128")
	assert.Contains(t, view, "200")
	assert.NotContains(t, view, "Save")
	assert.NotContains(t, view, alertTitle)
}

func TestViewShowsSaveOnlyWhileEditing(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 1, 2, 3)
	m = send(t, m, keyPress("enter"))
	require.Contains(t, m.View(), "Save")

	m = send(t, m, keyPress("esc"))
	require.NotContains(t, m.View(), "Save")
}

func TestViewShowsAlert(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 1, 2, 3)
	m = send(t, m, keyPress("enter"))
	m = typeInto(t, m, "999")
	m = send(t, m, keyPress("enter"))

	view := m.View()
	require.Contains(t, view, alertTitle)
	require.Contains(t, view, apperrors.InvalidChannelInputMessage)
	require.Contains(t, view, "#000203")
}

func TestViewFillsWindowOnceSized(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 1, 2, 3)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 40)
	require.Equal(t, 120, lipgloss.Width(view))
}

func TestViewUsesConfiguredSwatchSize(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Swatch.Width = 10
	cfg.Swatch.Height = 2
	m := NewModel(Options{Config: cfg})

	swatch := m.renderSwatch()
	require.Equal(t, 12, lipgloss.Width(swatch))
	require.Len(t, strings.Split(swatch, "\n"), 4)
}

func TestBackgroundDefaultsToBackdrop(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 1, 2, 3)
	require.Equal(t, "#0052cc", m.background())

	m.cfg.Background = "#101010"
	require.Equal(t, "#101010", m.background())
}
