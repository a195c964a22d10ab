package queries

import (
	"context"
	"testing"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
)

type stubPage struct {
	calls int
}

func (s *stubPage) Snapshot() widgets.PageSnapshot {
	s.calls++
	return widgets.PageSnapshot{ActiveTab: "overview"}
}

type stubLookup struct {
	filter string
}

func (s *stubLookup) Lookup(query, filter string) []widgets.SearchRecord {
	s.filter = filter
	return []widgets.SearchRecord{{Title: query}}
}

func TestPageQuery(t *testing.T) {
	page := &stubPage{}
	snapshot, err := NewPageQuery(page).Query(context.Background(), PageInput{})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if page.calls != 1 || snapshot.ActiveTab != "overview" {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
}

func TestPageQueryHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewPageQuery(&stubPage{}).Query(ctx, PageInput{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestSearchQueryDefaultsFilter(t *testing.T) {
	lookup := &stubLookup{}
	records, err := NewSearchQuery(lookup).Query(context.Background(), SearchInput{Query: "mac"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if lookup.filter != widgets.FilterAll {
		t.Fatalf("expected filter %q, got %q", widgets.FilterAll, lookup.filter)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestSearchQueryAgainstIndex(t *testing.T) {
	index := widgets.NewSearchIndex(widgets.SearchIndexConfig{})
	index.SetSearchData(widgets.DefaultSearchRecords())

	records, err := NewSearchQuery(index).Query(context.Background(), SearchInput{Query: "customer", Filter: "users"})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(records))
	}
	if index.Visible() {
		t.Fatalf("lookup must not open the results panel")
	}
}
