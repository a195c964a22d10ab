package queries

import (
	"context"
	"errors"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
	gocommand "github.com/goliatone/go-command"
)

// PageInput requests a page snapshot.
type PageInput struct{}

type pageSource interface {
	Snapshot() widgets.PageSnapshot
}

// PageQuery returns the serializable state of every widget on a page.
type PageQuery struct {
	page pageSource
}

// NewPageQuery builds the query.
func NewPageQuery(page pageSource) *PageQuery {
	return &PageQuery{page: page}
}

var _ gocommand.Querier[PageInput, widgets.PageSnapshot] = (*PageQuery)(nil)

// Query captures the page snapshot.
func (q *PageQuery) Query(ctx context.Context, _ PageInput) (widgets.PageSnapshot, error) {
	if q.page == nil {
		return widgets.PageSnapshot{}, errors.New("page query requires page")
	}
	if err := ctx.Err(); err != nil {
		return widgets.PageSnapshot{}, err
	}
	return q.page.Snapshot(), nil
}
