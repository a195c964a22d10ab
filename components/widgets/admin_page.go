package widgets

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
)

// PageOptions configures an AdminPage. Every collaborator is optional; nil
// values fall back to in-memory defaults.
type PageOptions struct {
	Config     *Config
	Document   Document
	Renderer   Renderer
	Store      PreferenceStore
	Scheduler  Scheduler
	Telemetry  Telemetry
	Notifier   ToastNotifier
	Translator TranslationService
}

// AdminPage holds the explicitly constructed widgets of one admin page. Hosts
// keep a page per session and hand it to whatever transport drives it.
type AdminPage struct {
	Document *MemoryDocument
	Search   *SearchIndex
	Records  *Paginator[SearchRecord]
	Toasts   *ToastManager
	Table    *Table
	Tabs     *TabSet
	Dropdown *Dropdown
	Shell    *Shell

	config Config
	store  PreferenceStore
}

// NewAdminPage wires the page widgets together: search selections raise an
// info toast, language switches update the search placeholder and the
// records paginator pages over the search data.
func NewAdminPage(opts PageOptions) *AdminPage {
	cfg := Config{Version: ConfigVersion, Language: LanguageArabic}
	if opts.Config != nil {
		cfg = *opts.Config
	}
	if len(cfg.Records) == 0 {
		cfg.Records = DefaultSearchRecords()
	}
	if opts.Store == nil {
		opts.Store = NewInMemoryPreferenceStore()
	}
	telemetry := normalizeTelemetry(opts.Telemetry)

	memDoc, _ := opts.Document.(*MemoryDocument)
	if opts.Document == nil {
		memDoc = NewMemoryDocument(ContainerSearch, ContainerPagination, ContainerToasts, ContainerTable)
		opts.Document = memDoc
	}

	page := &AdminPage{Document: memDoc, config: cfg, store: opts.Store}
	page.Toasts = NewToastManager(ToastManagerConfig{
		Container: lookupContainer(opts.Document, ContainerToasts),
		Renderer:  opts.Renderer,
		Scheduler: opts.Scheduler,
		Telemetry: telemetry,
		Notifier:  opts.Notifier,
	})
	page.Search = MountSearchIndex(opts.Document, ContainerSearch, SearchIndexConfig{
		Options:   cfg.SearchOptions(),
		Renderer:  opts.Renderer,
		Scheduler: opts.Scheduler,
		Telemetry: telemetry,
		OnSelect:  page.announceSelection,
	})
	page.Search.SetSearchData(cfg.Records)
	page.Records = MountPaginator(opts.Document, ContainerPagination, PaginatorConfig[SearchRecord]{
		Options:   cfg.Pagination,
		Renderer:  opts.Renderer,
		Telemetry: telemetry,
	})
	page.Records.SetData(page.Search.Records())
	page.Table = NewTable(TableConfig{
		Columns:   DefaultOrderColumns(),
		Rows:      DefaultOrderRows(),
		Language:  language.Make(cfg.Language),
		Container: lookupContainer(opts.Document, ContainerTable),
		Renderer:  opts.Renderer,
		Telemetry: telemetry,
	})
	page.Tabs = NewTabSet(DefaultTabs(), nil)
	page.Dropdown = NewDropdown("Select period", DefaultDropdownItems())
	page.Shell = NewShell(ShellConfig{
		Store:        opts.Store,
		Translator:   opts.Translator,
		Palette:      cfg.Palette,
		Theme:        cfg.Theme,
		Placeholders: []PlaceholderTarget{page.Search},
		Telemetry:    telemetry,
	})
	return page
}

// Restore re-applies saved preferences. Without a saved language the
// configured one is applied.
func (p *AdminPage) Restore(ctx context.Context) error {
	_, saved, err := p.store.Get(ctx, PreferenceLanguage)
	if err != nil {
		return fmt.Errorf("widgets: read language preference: %w", err)
	}
	if !saved && p.config.Language != "" && p.config.Language != p.Shell.Language() {
		if err := p.Shell.SetLanguage(ctx, p.config.Language); err != nil {
			return fmt.Errorf("widgets: apply configured language: %w", err)
		}
	}
	return p.Shell.Restore(ctx)
}

// Store returns the preference store backing the shell.
func (p *AdminPage) Store() PreferenceStore {
	return p.store
}

// Content returns the last markup rendered into a container of the page
// document. Pages mounted on a foreign Document return "".
func (p *AdminPage) Content(containerID string) string {
	if p.Document == nil {
		return ""
	}
	return p.Document.Content(containerID)
}

// TableState is a snapshot of the orders table.
type TableState struct {
	Columns   []Column      `json:"columns"`
	Rows      [][]string    `json:"rows"`
	Sorted    int           `json:"sorted"`
	Direction SortDirection `json:"direction,omitempty"`
}

// PageSnapshot is the serializable state of every widget on the page.
type PageSnapshot struct {
	Search     SearchState    `json:"search"`
	Pagination PaginationView `json:"pagination"`
	Records    []SearchRecord `json:"records"`
	Toasts     []Toast        `json:"toasts"`
	Table      TableState     `json:"table"`
	ActiveTab  string         `json:"active_tab,omitempty"`
	Dropdown   DropdownState  `json:"dropdown"`
	Shell      ShellState     `json:"shell"`
}

// Snapshot captures the page state. Each widget is read under its own lock,
// so the snapshot is not atomic across widgets.
func (p *AdminPage) Snapshot() PageSnapshot {
	sorted, direction := p.Table.SortState()
	snapshot := PageSnapshot{
		Search:     p.Search.State(),
		Pagination: p.Records.View(),
		Records:    p.Records.CurrentPageData(),
		Toasts:     p.Toasts.Toasts(),
		Table: TableState{
			Columns:   p.Table.Columns(),
			Rows:      p.Table.Rows(),
			Sorted:    sorted,
			Direction: direction,
		},
		Dropdown: p.Dropdown.State(),
		Shell:    p.Shell.State(),
	}
	if tab, ok := p.Tabs.Active(); ok {
		snapshot.ActiveTab = tab.ID
	}
	return snapshot
}

func (p *AdminPage) announceSelection(record SearchRecord) {
	p.Toasts.Info("Selected: "+record.Title, ToastOptions{Title: "Search Result"})
}
