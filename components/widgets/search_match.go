package widgets

import (
	"html"
	"regexp"
	"strings"
)

const highlightClass = "search-highlight"

// SearchEntry is one rendered result. Index is its position in the rendered
// (grouped) order, which is the order the cursor walks.
type SearchEntry struct {
	Index       int          `json:"index"`
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Icon        string       `json:"icon,omitempty"`
	Category    string       `json:"category"`
	Selected    bool         `json:"selected"`
	Record      SearchRecord `json:"-"`
}

// SearchGroup is a category heading with its entries.
type SearchGroup struct {
	Category string        `json:"category"`
	Entries  []SearchEntry `json:"entries"`
}

func matchesQuery(record SearchRecord, lowered string) bool {
	if lowered == "" {
		return false
	}
	if record.Title != "" && strings.Contains(strings.ToLower(record.Title), lowered) {
		return true
	}
	if record.Description != "" && strings.Contains(strings.ToLower(record.Description), lowered) {
		return true
	}
	for _, tag := range record.Tags {
		if tag != "" && strings.Contains(strings.ToLower(tag), lowered) {
			return true
		}
	}
	return false
}

func matchesFilter(record SearchRecord, filter string) bool {
	return filter == "" || filter == FilterAll || record.Category == filter
}

// filterRecords applies the match and filter predicates in original order and
// stops after limit matches.
func filterRecords(records []SearchRecord, query, filter string, limit int) []SearchRecord {
	lowered := strings.ToLower(query)
	out := make([]SearchRecord, 0, limit)
	for _, record := range records {
		if !matchesQuery(record, lowered) || !matchesFilter(record, filter) {
			continue
		}
		out = append(out, record)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// groupRecords groups matches by category in first-seen order and assigns
// rendered indexes.
func groupRecords(matches []SearchRecord, query string) []SearchGroup {
	var groups []SearchGroup
	position := make(map[string]int)
	for _, record := range matches {
		key := record.GroupKey()
		idx, ok := position[key]
		if !ok {
			idx = len(groups)
			position[key] = idx
			groups = append(groups, SearchGroup{Category: key})
		}
		groups[idx].Entries = append(groups[idx].Entries, SearchEntry{
			ID:          record.ID,
			Title:       Highlight(record.Title, query),
			Description: Highlight(record.Description, query),
			Icon:        record.Icon,
			Category:    key,
			Record:      record,
		})
	}
	index := 0
	for g := range groups {
		for e := range groups[g].Entries {
			groups[g].Entries[e].Index = index
			index++
		}
	}
	return groups
}

func flattenGroups(groups []SearchGroup) []SearchEntry {
	var entries []SearchEntry
	for _, group := range groups {
		entries = append(entries, group.Entries...)
	}
	return entries
}

// Highlight HTML-escapes text and wraps every case-insensitive occurrence of
// query in a search-highlight span.
func Highlight(text, query string) string {
	if text == "" {
		return ""
	}
	if query == "" {
		return html.EscapeString(text)
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(query))
	if err != nil {
		return html.EscapeString(text)
	}
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		b.WriteString(html.EscapeString(text[last:loc[0]]))
		b.WriteString(`<span class="` + highlightClass + `">`)
		b.WriteString(html.EscapeString(text[loc[0]:loc[1]]))
		b.WriteString(`</span>`)
		last = loc[1]
	}
	b.WriteString(html.EscapeString(text[last:]))
	return b.String()
}
