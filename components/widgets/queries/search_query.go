package queries

import (
	"context"
	"errors"
	"strings"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
	gocommand "github.com/goliatone/go-command"
)

// SearchInput is a one-shot lookup. An empty filter means "all".
type SearchInput struct {
	Query  string `json:"query"`
	Filter string `json:"filter,omitempty"`
}

type recordLookup interface {
	Lookup(query, filter string) []widgets.SearchRecord
}

// SearchQuery runs a lookup without touching the search session.
type SearchQuery struct {
	index recordLookup
}

// NewSearchQuery builds the query.
func NewSearchQuery(index recordLookup) *SearchQuery {
	return &SearchQuery{index: index}
}

var _ gocommand.Querier[SearchInput, []widgets.SearchRecord] = (*SearchQuery)(nil)

// Query returns the matching records, capped at the index's result limit.
func (q *SearchQuery) Query(ctx context.Context, input SearchInput) ([]widgets.SearchRecord, error) {
	if q.index == nil {
		return nil, errors.New("search query requires search index")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	filter := strings.TrimSpace(input.Filter)
	if filter == "" {
		filter = widgets.FilterAll
	}
	return q.index.Lookup(input.Query, filter), nil
}
