package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
)

func newTestModel(t *testing.T) (Model, *widgets.AdminPage, *widgets.ManualScheduler) {
	t.Helper()
	clock := widgets.NewManualScheduler()
	page := widgets.NewAdminPage(widgets.PageOptions{Scheduler: clock})
	return NewModel(page).WithStyles(NoColorStyles()), page, clock
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func press(m Model, key tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: key})
	return next.(Model), cmd
}

func TestTypingSchedulesDebouncedSearch(t *testing.T) {
	m, page, clock := newTestModel(t)

	m = typeText(m, "mac")
	assert.False(t, page.Search.Visible())
	assert.Equal(t, "mac", page.Search.State().Input)

	clock.Advance(300 * time.Millisecond)
	require.True(t, page.Search.Visible())
	assert.Contains(t, m.View(), "MacBook Pro")
}

func TestArrowKeysAndEnterSelect(t *testing.T) {
	m, page, clock := newTestModel(t)
	m = typeText(m, "order")
	clock.Advance(300 * time.Millisecond)

	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	assert.Equal(t, 1, page.Search.Cursor())
	assert.Contains(t, m.View(), "▸ Order #1234")

	m, _ = press(m, tea.KeyEnter)
	assert.False(t, page.Search.Visible())
	assert.Equal(t, "Order #1234", m.input.Value())
	assert.Contains(t, m.View(), "Selected: Order #1234")
}

func TestEscapeClosesThenQuits(t *testing.T) {
	m, page, clock := newTestModel(t)
	m = typeText(m, "user")
	clock.Advance(300 * time.Millisecond)
	require.True(t, page.Search.Visible())

	m, cmd := press(m, tea.KeyEsc)
	assert.Nil(t, cmd)
	assert.False(t, page.Search.Visible())

	_, cmd = press(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPagingAndFilterKeys(t *testing.T) {
	m, page, _ := newTestModel(t)
	page.Records.SetPageSize(3)

	m, _ = press(m, tea.KeyRight)
	assert.Equal(t, 2, page.Records.CurrentPage())
	m, _ = press(m, tea.KeyLeft)
	assert.Equal(t, 1, page.Records.CurrentPage())
	assert.Contains(t, m.View(), "Showing 1 to 3 of 10 entries")

	m, _ = press(m, tea.KeyTab)
	assert.Equal(t, widgets.FilterAll, page.Search.ActiveFilter())
}

func TestLanguageToggle(t *testing.T) {
	m, page, _ := newTestModel(t)
	m, _ = press(m, tea.KeyCtrlL)
	assert.Equal(t, widgets.LanguageEnglish, page.Shell.Language())
	assert.True(t, strings.Contains(m.View(), "[English]"))
}

func TestFireMsgRunsCallback(t *testing.T) {
	m, _, _ := newTestModel(t)
	ran := false
	next, _ := m.Update(fireMsg{fn: func() { ran = true }})
	_ = next
	assert.True(t, ran)
}

func TestNextFilterCycles(t *testing.T) {
	filters := []string{"all", "pages", "users"}
	assert.Equal(t, "pages", nextFilter(filters, "all"))
	assert.Equal(t, "all", nextFilter(filters, "users"))
	assert.Equal(t, "all", nextFilter(filters, "unknown"))
}
