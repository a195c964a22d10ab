package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
)

const helpText = "↑/↓ move • enter select • esc close • ←/→ page • tab filter • ctrl+l language • ctrl+c quit"

// Model browses an AdminPage in the terminal: the text input feeds the
// debounced search, arrow keys drive the result cursor and the paginator.
type Model struct {
	page    *widgets.AdminPage
	input   textinput.Model
	styles  Styles
	filters []string
	err     error
	width   int
}

// NewModel builds a browser over page.
func NewModel(page *widgets.AdminPage) Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = page.Search.Placeholder()
	ti.Focus()
	page.Search.Focus()
	filters := append([]string{widgets.FilterAll}, page.Search.Options().Filters...)
	return Model{
		page:    page,
		input:   ti,
		styles:  DefaultStyles(),
		filters: filters,
		width:   80,
	}
}

// WithStyles replaces the view styles.
func (m Model) WithStyles(styles Styles) Model {
	m.styles = styles
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fireMsg:
		msg.fn()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	search := m.page.Search
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "up", "down", "enter", "esc":
		key, _ := widgets.ParseKey(msg.String())
		if !search.HandleKey(key) && key == widgets.KeyEscape {
			return m, tea.Quit
		}
		if key == widgets.KeyEnter {
			m.input.SetValue(search.State().Input)
			m.input.CursorEnd()
		}
		return m, nil
	case "left":
		m.page.Records.GoToPage(widgets.PrevPage)
		return m, nil
	case "right":
		m.page.Records.GoToPage(widgets.NextPage)
		return m, nil
	case "tab":
		search.SetActiveFilter(nextFilter(m.filters, search.ActiveFilter()))
		return m, nil
	case "ctrl+l":
		m.err = m.page.Shell.ToggleLanguage(context.Background())
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		search.HandleInput(value)
	}
	return m, cmd
}

func nextFilter(filters []string, current string) string {
	for i, filter := range filters {
		if filter == current {
			return filters[(i+1)%len(filters)]
		}
	}
	return widgets.FilterAll
}

// View implements tea.Model.
func (m Model) View() string {
	state := m.page.Search.State()
	shell := m.page.Shell.State()
	m.input.Placeholder = state.Placeholder

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Admin widgets [%s]", shell.LanguageLabel)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("  ")
	b.WriteString(m.styles.Dim.Render("filter: " + state.ActiveFilter))
	b.WriteString("\n\n")

	if state.Visible {
		m.writeResults(&b, state)
	}

	view := m.page.Records.View()
	for _, record := range m.page.Records.CurrentPageData() {
		b.WriteString(m.styles.Item.Render(fmt.Sprintf("%-18s %s", record.Title, m.styles.Dim.Render(record.Description))))
		b.WriteString("\n")
	}
	if view.Info != "" {
		b.WriteString(m.styles.Info.Render(fmt.Sprintf("%s  (page %d/%d)", view.Info, view.CurrentPage, view.TotalPages)))
		b.WriteString("\n")
	}

	for _, toast := range m.page.Toasts.Toasts() {
		style, ok := m.styles.Toast[string(toast.Type)]
		if !ok {
			style = m.styles.Info
		}
		b.WriteString(style.Render(fmt.Sprintf("● %s: %s", toast.Title, toast.Message)))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Toast["error"].Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(helpText))
	return b.String()
}

func (m Model) writeResults(b *strings.Builder, state widgets.SearchState) {
	if len(state.Groups) == 0 {
		b.WriteString(m.styles.Dim.Render(fmt.Sprintf("No results found for %q", state.Query)))
		b.WriteString("\n\n")
		return
	}
	for _, group := range state.Groups {
		b.WriteString(m.styles.Group.Render(group.Category))
		b.WriteString("\n")
		for _, entry := range group.Entries {
			line := fmt.Sprintf("%s  %s", entry.Record.Title, m.styles.Dim.Render(entry.Record.Description))
			if entry.Index == state.Cursor {
				b.WriteString(m.styles.Selected.Render("▸ " + line))
			} else {
				b.WriteString(m.styles.Item.Render(line))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}
