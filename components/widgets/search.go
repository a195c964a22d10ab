package widgets

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
)

const searchTemplate = "search"

// SearchIndexConfig wires a SearchIndex to its collaborators. A nil Container
// leaves the index inert: lookups still work but nothing is rendered and
// OnSelect is never invoked.
type SearchIndexConfig struct {
	Options   SearchOptions
	Container Container
	Renderer  Renderer
	Scheduler Scheduler
	Telemetry Telemetry
	// Cache overrides the LRU lookup cache sized by Options.CacheSize.
	Cache    LookupCache
	OnSelect SelectFunc
}

// SearchIndex is an incremental search box over an in-memory record set. Input
// is debounced; results are filtered, capped, grouped and highlighted, and a
// single cursor is shared by keyboard and pointer selection.
type SearchIndex struct {
	opts      SearchOptions
	container Container
	renderer  Renderer
	telemetry Telemetry
	cache     LookupCache
	onSelect  SelectFunc
	debounce  *Debouncer

	mu          sync.Mutex
	records     []SearchRecord
	placeholder string
	input       string
	query       string
	filter      string
	matches     []SearchRecord
	groups      []SearchGroup
	entries     []SearchEntry
	cursor      int
	visible     bool
	focused     bool
	evaluations int
	// generation is bumped by every input, filter change and selection; an
	// evaluation started under an older generation is not committed.
	generation uint64
	// version is bumped by SetSearchData and keys cached lookups.
	version uint64
}

// SearchState is a snapshot of the search session.
type SearchState struct {
	Input        string         `json:"input"`
	Query        string         `json:"query"`
	ActiveFilter string         `json:"active_filter"`
	Placeholder  string         `json:"placeholder"`
	Matches      []SearchRecord `json:"matches"`
	Groups       []SearchGroup  `json:"groups"`
	Cursor       int            `json:"cursor"`
	Visible      bool           `json:"visible"`
	Focused      bool           `json:"focused"`
	Pending      bool           `json:"pending"`
	Evaluations  int            `json:"evaluations"`
}

// NewSearchIndex builds an empty index with the panel hidden.
func NewSearchIndex(cfg SearchIndexConfig) *SearchIndex {
	opts := cfg.Options.normalized()
	cache := cfg.Cache
	if cache == nil {
		if lru := NewLRULookupCache(opts.CacheSize); lru != nil {
			cache = lru
		}
	}
	idx := &SearchIndex{
		opts:        opts,
		container:   cfg.Container,
		renderer:    cfg.Renderer,
		telemetry:   normalizeTelemetry(cfg.Telemetry),
		cache:       cache,
		onSelect:    cfg.OnSelect,
		debounce:    NewDebouncer(opts.Delay, cfg.Scheduler),
		placeholder: opts.Placeholder,
		filter:      FilterAll,
		cursor:      -1,
	}
	idx.render()
	return idx
}

// MountSearchIndex looks the container up in doc before building the index.
func MountSearchIndex(doc Document, containerID string, cfg SearchIndexConfig) *SearchIndex {
	cfg.Container = lookupContainer(doc, containerID)
	return NewSearchIndex(cfg)
}

// Options returns the normalized options.
func (s *SearchIndex) Options() SearchOptions {
	return s.opts
}

// Inert reports whether the index has no container to render into.
func (s *SearchIndex) Inert() bool {
	return s.container == nil
}

// SetSearchData replaces the record set. Records without an ID get one. The
// current session is left as is.
func (s *SearchIndex) SetSearchData(records []SearchRecord) {
	next := make([]SearchRecord, len(records))
	for i, record := range records {
		if record.ID == "" {
			record.ID = uuid.NewString()
		}
		next[i] = record
	}
	s.mu.Lock()
	s.records = next
	s.version++
	s.mu.Unlock()
	if s.cache != nil {
		s.cache.Purge()
	}
	s.telemetry.Record(context.Background(), "widgets.search.set_data", map[string]any{
		"records": len(next),
	})
}

// Records returns the current record set.
func (s *SearchIndex) Records() []SearchRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SearchRecord(nil), s.records...)
}

// HandleInput is the debounced entry point for typed text. Queries shorter
// than MinCharacters hide the panel immediately and schedule nothing.
func (s *SearchIndex) HandleInput(query string) {
	s.debounce.Cancel()
	s.mu.Lock()
	s.input = query
	s.generation++
	generation := s.generation
	short := utf8.RuneCountInString(query) < s.opts.MinCharacters
	if short {
		s.hideLocked()
	}
	s.mu.Unlock()
	if short {
		s.render()
		return
	}
	s.debounce.Schedule(func() {
		s.evaluate(query, generation)
	})
}

// PerformSearch evaluates query against the active filter, resets the cursor
// and reveals the panel. It supersedes any evaluation already running.
func (s *SearchIndex) PerformSearch(query string) {
	s.debounce.Cancel()
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.mu.Unlock()
	s.evaluate(query, generation)
}

// evaluate runs the lookup outside the lock and commits the result only if no
// input, filter change or selection happened meanwhile.
func (s *SearchIndex) evaluate(query string, generation uint64) {
	s.mu.Lock()
	if s.generation != generation {
		s.mu.Unlock()
		return
	}
	filter := s.filter
	s.mu.Unlock()

	matches := s.Lookup(query, filter)
	groups := groupRecords(matches, query)

	s.mu.Lock()
	if s.generation != generation {
		s.mu.Unlock()
		s.telemetry.Record(context.Background(), "widgets.search.superseded", map[string]any{
			"query":  query,
			"filter": filter,
		})
		return
	}
	s.query = query
	s.matches = matches
	s.groups = groups
	s.entries = flattenGroups(groups)
	s.cursor = -1
	s.visible = true
	s.evaluations++
	s.mu.Unlock()

	s.telemetry.Record(context.Background(), "widgets.search.perform", map[string]any{
		"query":   query,
		"filter":  filter,
		"matches": len(matches),
	})
	s.render()
}

// Lookup runs the match, filter and truncate steps without touching the
// session.
func (s *SearchIndex) Lookup(query, filter string) []SearchRecord {
	if filter == "" {
		filter = FilterAll
	}
	s.mu.Lock()
	records, version := s.records, s.version
	s.mu.Unlock()
	lookup := func() []SearchRecord {
		return filterRecords(records, query, filter, s.opts.MaxResults)
	}
	if s.cache == nil {
		return lookup()
	}
	return s.cache.GetOrLookup(version, query, filter, lookup)
}

// HandleKey applies a navigation key. Keys are ignored while the panel is
// hidden; the return value reports whether the key was consumed.
func (s *SearchIndex) HandleKey(key Key) bool {
	s.mu.Lock()
	if !s.visible {
		s.mu.Unlock()
		return false
	}
	switch key {
	case KeyDown:
		if s.cursor < len(s.entries)-1 {
			s.cursor++
		}
	case KeyUp:
		if s.cursor > -1 {
			s.cursor--
		}
	case KeyEnter:
		cursor := s.cursor
		s.mu.Unlock()
		if cursor < 0 {
			return false
		}
		s.SelectItem(cursor)
		return true
	case KeyEscape:
		s.hideLocked()
		s.focused = false
	default:
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()
	s.render()
	return true
}

// Hover moves the cursor to a rendered result.
func (s *SearchIndex) Hover(index int) {
	s.mu.Lock()
	if index < 0 || index >= len(s.entries) || s.cursor == index {
		s.mu.Unlock()
		return
	}
	s.cursor = index
	s.mu.Unlock()
	s.render()
}

// SelectItem commits the rendered result at index: OnSelect receives the
// record, the panel hides and the input shows the record title. An
// out-of-range index only hides the panel.
func (s *SearchIndex) SelectItem(index int) {
	s.debounce.Cancel()
	s.mu.Lock()
	s.generation++
	entries := s.entries
	s.hideLocked()
	if index < 0 || index >= len(entries) {
		s.mu.Unlock()
		s.telemetry.Record(context.Background(), "widgets.search.select_out_of_range", map[string]any{
			"index": index,
		})
		s.render()
		return
	}
	record := entries[index].Record
	s.input = record.Title
	s.mu.Unlock()

	s.telemetry.Record(context.Background(), "widgets.search.select", map[string]any{
		"id":    record.ID,
		"title": record.Title,
	})
	s.render()
	if s.onSelect != nil && s.container != nil {
		s.onSelect(record)
	}
}

// SelectByID commits the rendered result carrying the record id.
func (s *SearchIndex) SelectByID(id string) bool {
	s.mu.Lock()
	index := -1
	for _, entry := range s.entries {
		if entry.ID == id {
			index = entry.Index
			break
		}
	}
	s.mu.Unlock()
	if index < 0 {
		return false
	}
	s.SelectItem(index)
	return true
}

// Focus marks the input focused and reopens the panel when the last
// evaluation produced matches.
func (s *SearchIndex) Focus() {
	s.mu.Lock()
	s.focused = true
	reopen := len(s.matches) > 0 && !s.visible
	if reopen {
		s.visible = true
	}
	s.mu.Unlock()
	if reopen {
		s.render()
	}
}

// DismissOutside hides the panel after an interaction outside the component.
func (s *SearchIndex) DismissOutside() {
	s.mu.Lock()
	wasVisible := s.visible
	s.hideLocked()
	s.mu.Unlock()
	if wasVisible {
		s.render()
	}
}

// SetActiveFilter switches the category filter and re-evaluates the current
// input through the debounce path.
func (s *SearchIndex) SetActiveFilter(filter string) {
	if filter == "" {
		filter = FilterAll
	}
	s.mu.Lock()
	s.filter = filter
	s.generation++
	input := s.input
	s.mu.Unlock()
	s.HandleInput(input)
}

// ActiveFilter returns the current category filter.
func (s *SearchIndex) ActiveFilter() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetPlaceholder changes the input placeholder, used on language switches.
func (s *SearchIndex) SetPlaceholder(text string) {
	s.mu.Lock()
	s.placeholder = text
	s.mu.Unlock()
	s.render()
}

// Placeholder returns the current placeholder.
func (s *SearchIndex) Placeholder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placeholder
}

// Cursor returns the selection cursor, -1 for none.
func (s *SearchIndex) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Visible reports whether the suggestion panel is shown.
func (s *SearchIndex) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Entries returns the rendered results in cursor order.
func (s *SearchIndex) Entries() []SearchEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SearchEntry(nil), s.entries...)
}

// State returns a snapshot of the session.
func (s *SearchIndex) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// hideLocked closes the panel; hiding always clears the cursor.
func (s *SearchIndex) hideLocked() {
	s.visible = false
	s.cursor = -1
}

func (s *SearchIndex) stateLocked() SearchState {
	groups := make([]SearchGroup, len(s.groups))
	for i, group := range s.groups {
		entries := append([]SearchEntry(nil), group.Entries...)
		for e := range entries {
			entries[e].Selected = entries[e].Index == s.cursor
		}
		groups[i] = SearchGroup{Category: group.Category, Entries: entries}
	}
	return SearchState{
		Input:        s.input,
		Query:        s.query,
		ActiveFilter: s.filter,
		Placeholder:  s.placeholder,
		Matches:      append([]SearchRecord(nil), s.matches...),
		Groups:       groups,
		Cursor:       s.cursor,
		Visible:      s.visible,
		Focused:      s.focused,
		Pending:      s.debounce.Pending(),
		Evaluations:  s.evaluations,
	}
}

func (s *SearchIndex) render() {
	if s.container == nil || s.renderer == nil {
		return
	}
	s.mu.Lock()
	state := s.stateLocked()
	s.mu.Unlock()
	html, err := s.renderer.Render(searchTemplate, searchTemplateData(state, s.opts.Filters))
	if err != nil {
		s.telemetry.Record(context.Background(), "widgets.search.render_error", map[string]any{
			"container": s.container.ID(),
			"error":     err.Error(),
		})
		return
	}
	s.container.SetContent(html)
}

func searchTemplateData(state SearchState, filters []string) map[string]any {
	groups := make([]map[string]any, 0, len(state.Groups))
	for _, group := range state.Groups {
		entries := make([]map[string]any, 0, len(group.Entries))
		for _, entry := range group.Entries {
			entries = append(entries, map[string]any{
				"index":       entry.Index,
				"id":          entry.ID,
				"title":       entry.Title,
				"description": entry.Description,
				"icon":        entry.Icon,
				"selected":    entry.Selected,
			})
		}
		groups = append(groups, map[string]any{
			"category": group.Category,
			"entries":  entries,
		})
	}
	chips := make([]map[string]any, 0, len(filters)+1)
	for _, key := range append([]string{FilterAll}, filters...) {
		chips = append(chips, map[string]any{
			"key":    key,
			"active": key == state.ActiveFilter,
		})
	}
	return map[string]any{
		"input":       state.Input,
		"query":       state.Query,
		"placeholder": state.Placeholder,
		"visible":     state.Visible,
		"empty":       len(state.Matches) == 0,
		"groups":      groups,
		"filters":     chips,
		"cursor":      state.Cursor,
	}
}
