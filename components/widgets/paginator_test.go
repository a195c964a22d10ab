package widgets

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pageCall struct {
	data []int
	page int
}

func newTestPaginator(t *testing.T, opts PaginatorOptions) (*Paginator[int], *stubRenderer, *[]pageCall) {
	t.Helper()
	renderer := newStubRenderer()
	calls := &[]pageCall{}
	doc := NewMemoryDocument("pager")
	p := MountPaginator(doc, "pager", PaginatorConfig[int]{
		Options:  opts,
		Renderer: renderer,
		OnPageChange: func(data []int, page int) {
			*calls = append(*calls, pageCall{data: data, page: page})
		},
	})
	require.False(t, p.Inert())
	return p, renderer, calls
}

func TestPaginatorLastPageScenario(t *testing.T) {
	p, _, calls := newTestPaginator(t, PaginatorOptions{ItemsPerPage: 10})
	p.SetData(intRange(25))

	assert.Equal(t, 3, p.TotalPages())
	p.GoToPage(PageNumber(3))

	assert.Equal(t, 20, p.StartIndex())
	assert.Equal(t, 25, p.EndIndex())
	assert.Len(t, p.CurrentPageData(), 5)
	require.Len(t, *calls, 2)
	last := (*calls)[1]
	assert.Equal(t, 3, last.page)
	assert.Equal(t, []int{20, 21, 22, 23, 24}, last.data)
}

func TestPaginatorPageSizesAcrossDataSets(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 99, 100} {
		for _, size := range []int{1, 3, 10} {
			p, _, _ := newTestPaginator(t, PaginatorOptions{ItemsPerPage: size})
			p.SetData(intRange(n))
			total := (n + size - 1) / size
			require.Equal(t, total, p.TotalPages(), "n=%d size=%d", n, size)
			for page := 1; page <= total; page++ {
				p.GoToPage(PageNumber(page))
				want := size
				if page == total {
					want = n - size*(total-1)
				}
				assert.Len(t, p.CurrentPageData(), want, "n=%d size=%d page=%d", n, size, page)
			}
		}
	}
}

func TestPaginatorSetDataResetsPage(t *testing.T) {
	p, _, calls := newTestPaginator(t, PaginatorOptions{ItemsPerPage: 5})
	p.SetData(intRange(30))
	p.GoToPage(PageNumber(4))
	require.Equal(t, 4, p.CurrentPage())

	p.SetData(intRange(12))

	assert.Equal(t, 1, p.CurrentPage())
	last := (*calls)[len(*calls)-1]
	assert.Equal(t, 1, last.page)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, last.data)
}

func TestPaginatorPrevNextBounds(t *testing.T) {
	p, _, calls := newTestPaginator(t, PaginatorOptions{ItemsPerPage: 10})
	p.SetData(intRange(25))

	p.GoToPage(PrevPage)
	assert.Equal(t, 1, p.CurrentPage())

	p.GoToPage(NextPage)
	p.GoToPage(NextPage)
	p.GoToPage(NextPage)
	assert.Equal(t, 3, p.CurrentPage())

	// every call notifies, even the no-ops at the edges
	assert.Len(t, *calls, 5)
}

func TestPaginatorClampsExplicitPages(t *testing.T) {
	p, _, _ := newTestPaginator(t, PaginatorOptions{ItemsPerPage: 10})
	p.SetData(intRange(25))

	p.GoToPage(PageNumber(99))
	assert.Equal(t, 3, p.CurrentPage())

	p.GoToPage(PageNumber(-2))
	assert.Equal(t, 1, p.CurrentPage())

	p.SetData(nil)
	p.GoToPage(PageNumber(5))
	assert.Equal(t, 1, p.CurrentPage())
	assert.Empty(t, p.CurrentPageData())
}

func TestPaginatorSetPageSize(t *testing.T) {
	p, _, calls := newTestPaginator(t, PaginatorOptions{ItemsPerPage: 10})
	p.SetData(intRange(25))
	p.GoToPage(PageNumber(2))

	p.SetPageSize(5)
	assert.Equal(t, 1, p.CurrentPage())
	assert.Equal(t, 5, p.TotalPages())
	assert.Equal(t, 5, p.PageSize())

	before := len(*calls)
	p.SetPageSize(0)
	p.SetPageSize(-3)
	assert.Equal(t, 5, p.PageSize())
	assert.Len(t, *calls, before)
}

func TestPaginatorRendersView(t *testing.T) {
	p, renderer, _ := newTestPaginator(t, PaginatorOptions{ItemsPerPage: 10})
	p.SetData(intRange(25))
	p.GoToPage(PageNumber(2))

	payload := renderer.last(paginationTemplate)
	require.NotNil(t, payload)
	assert.Equal(t, "Showing 11 to 20 of 25 entries", payload["info"])
	assert.Equal(t, false, payload["prev_disabled"])
	assert.Equal(t, false, payload["next_disabled"])

	view := p.View()
	require.Len(t, view.Pages, 3)
	assert.True(t, view.Pages[1].Active)
	assert.Equal(t, "2", view.Pages[1].Target)
	require.Len(t, view.PageSizes, 4)
	assert.True(t, view.PageSizes[1].Selected)
}

func TestPaginatorViewHonorsFlags(t *testing.T) {
	p, _, _ := newTestPaginator(t, PaginatorOptions{
		ShowInfo:         Bool(false),
		ShowItemsPerPage: Bool(false),
	})
	p.SetData(nil)

	view := p.View()
	assert.Empty(t, view.Info)
	assert.Empty(t, view.PageSizes)
	assert.True(t, view.PrevDisabled)
	assert.True(t, view.NextDisabled)
}

func TestPaginatorEmptyInfo(t *testing.T) {
	assert.Equal(t, "Showing 0 to 0 of 0 entries", infoText(0, 0, 0))
}

func TestPaginatorInertWithoutContainer(t *testing.T) {
	renderer := newStubRenderer()
	notified := 0
	p := MountPaginator(NewMemoryDocument(), "missing", PaginatorConfig[int]{
		Renderer:     renderer,
		OnPageChange: func([]int, int) { notified++ },
	})
	require.True(t, p.Inert())

	p.SetData(intRange(25))
	p.GoToPage(NextPage)

	assert.Equal(t, 2, p.CurrentPage())
	assert.Equal(t, 0, notified)
	assert.Equal(t, 0, renderer.count(paginationTemplate))
}

func TestPaginatorRenderErrorIsRecorded(t *testing.T) {
	renderer := newStubRenderer()
	renderer.err = assert.AnError
	telemetry := &recordingTelemetry{}
	doc := NewMemoryDocument("pager")
	p := MountPaginator(doc, "pager", PaginatorConfig[int]{Renderer: renderer, Telemetry: telemetry})

	p.SetData(intRange(3))

	assert.Contains(t, telemetry.names(), "widgets.pagination.render_error")
	assert.Empty(t, doc.Content("pager"))
}

func TestParsePageTarget(t *testing.T) {
	cases := map[string]PageTarget{
		"prev": PrevPage,
		"NEXT": NextPage,
		" 7 ":  PageNumber(7),
	}
	for input, want := range cases {
		got, ok := ParsePageTarget(input)
		require.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}
	_, ok := ParsePageTarget("last")
	assert.False(t, ok)
}

func TestVisiblePages(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, VisiblePages(3, 2, 5))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, VisiblePages(10, 1, 5))
	assert.Equal(t, []int{3, 4, 5, 6, 7}, VisiblePages(10, 5, 5))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, VisiblePages(10, 10, 5))
	assert.Equal(t, []int{3, 4, 5, 6}, VisiblePages(10, 5, 4))
	assert.Nil(t, VisiblePages(0, 1, 5))
}

func TestVisiblePagesWindowProperties(t *testing.T) {
	for total := 1; total <= 20; total++ {
		for maxVisible := 1; maxVisible <= 7; maxVisible++ {
			for current := 1; current <= total; current++ {
				window := VisiblePages(total, current, maxVisible)
				limit := maxVisible
				if total < limit {
					limit = total
				}
				require.LessOrEqual(t, len(window), limit)
				if total > maxVisible {
					assert.Contains(t, window, current, "total=%d max=%d current=%d", total, maxVisible, current)
					assert.Len(t, window, maxVisible)
				}
				for i := 1; i < len(window); i++ {
					assert.Equal(t, window[i-1]+1, window[i])
				}
			}
		}
	}
}

func TestPaginatorNotificationMatchesRenderedView(t *testing.T) {
	p, renderer, calls := newTestPaginator(t, PaginatorOptions{ItemsPerPage: 10})
	p.SetData(intRange(25))
	p.SetPageSize(5)
	p.GoToPage(PageNumber(4))

	last := (*calls)[len(*calls)-1]
	assert.Equal(t, 4, last.page)
	assert.Equal(t, []int{15, 16, 17, 18, 19}, last.data)
	assert.Equal(t, "Showing 16 to 20 of 25 entries", renderer.last(paginationTemplate)["info"])
}

func TestPaginatorConcurrentResizesReportConsistentPages(t *testing.T) {
	telemetry := &recordingTelemetry{}
	var mu sync.Mutex
	var mismatches []pageCall
	p := MountPaginator(NewMemoryDocument("pager"), "pager", PaginatorConfig[int]{
		Renderer:  newStubRenderer(),
		Telemetry: telemetry,
		OnPageChange: func(data []int, page int) {
			if page != 1 || (len(data) > 0 && data[0] != 0) {
				mu.Lock()
				mismatches = append(mismatches, pageCall{data: data, page: page})
				mu.Unlock()
			}
		},
	})
	p.SetData(intRange(100))

	var wg sync.WaitGroup
	for _, size := range []int{5, 10, 25, 50} {
		wg.Add(1)
		go func(size int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				p.SetPageSize(size)
			}
		}(size)
	}
	wg.Wait()

	assert.Empty(t, mismatches)
	telemetry.mu.Lock()
	defer telemetry.mu.Unlock()
	for _, event := range telemetry.events {
		if event.name != "widgets.pagination.set_page_size" {
			continue
		}
		assert.Equal(t, event.payload["page_size"], event.payload["items"])
	}
}
