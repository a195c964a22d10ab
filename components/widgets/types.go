package widgets

import (
	"context"
	"io"
)

// Container receives rendered markup for a mounted widget.
type Container interface {
	ID() string
	SetContent(html string)
}

// Document resolves widget containers by id. Hosts implement it on top of
// whatever surface they render into (an HTTP response cache, a terminal, a test).
type Document interface {
	Container(id string) (Container, bool)
}

// Renderer describes the template renderer contract used by the widgets.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// PreferenceStore is the key-value store used for language and theme persistence.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// PageChangeFunc is invoked after every pagination mutation.
type PageChangeFunc[T any] func(pageData []T, page int)

// SelectFunc is invoked when a search result is committed.
type SelectFunc func(record SearchRecord)

// SearchRecord is a single searchable entry. Icon and Metadata are passed
// through untouched.
type SearchRecord struct {
	ID          string         `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string         `json:"category,omitempty" yaml:"category,omitempty"`
	Icon        string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	Tags        []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// GroupKey returns the category used for grouped rendering.
func (r SearchRecord) GroupKey() string {
	if r.Category == "" {
		return DefaultCategory
	}
	return r.Category
}
