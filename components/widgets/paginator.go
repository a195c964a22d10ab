package widgets

import (
	"context"
	"strconv"
	"strings"
	"sync"
)

// PageTarget is the destination of a GoToPage call.
type PageTarget struct {
	kind targetKind
	page int
}

type targetKind int

const (
	targetNumber targetKind = iota
	targetPrev
	targetNext
)

var (
	// PrevPage moves one page back when possible.
	PrevPage = PageTarget{kind: targetPrev}
	// NextPage moves one page forward when possible.
	NextPage = PageTarget{kind: targetNext}
)

// PageNumber targets an explicit 1-based page.
func PageNumber(n int) PageTarget {
	return PageTarget{kind: targetNumber, page: n}
}

// ParsePageTarget decodes the value carried by a rendered page link:
// "prev", "next" or a decimal page number.
func ParsePageTarget(value string) (PageTarget, bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "prev":
		return PrevPage, true
	case "next":
		return NextPage, true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return PageTarget{}, false
	}
	return PageNumber(n), true
}

// String renders the target the way page links carry it.
func (t PageTarget) String() string {
	switch t.kind {
	case targetPrev:
		return "prev"
	case targetNext:
		return "next"
	default:
		return strconv.Itoa(t.page)
	}
}

// PaginatorConfig wires a Paginator to its collaborators. A nil Container
// leaves the paginator inert: state still changes but nothing is rendered or
// notified.
type PaginatorConfig[T any] struct {
	Options      PaginatorOptions
	Container    Container
	Renderer     Renderer
	Telemetry    Telemetry
	OnPageChange PageChangeFunc[T]
}

// Paginator owns a data set, a page size and the current page.
type Paginator[T any] struct {
	mu          sync.RWMutex
	opts        PaginatorOptions
	items       []T
	currentPage int

	container Container
	renderer  Renderer
	telemetry Telemetry
	onChange  PageChangeFunc[T]
}

// NewPaginator builds an empty paginator on page 1 and renders it once.
func NewPaginator[T any](cfg PaginatorConfig[T]) *Paginator[T] {
	p := &Paginator[T]{
		opts:        cfg.Options.normalized(),
		currentPage: 1,
		container:   cfg.Container,
		renderer:    cfg.Renderer,
		telemetry:   normalizeTelemetry(cfg.Telemetry),
		onChange:    cfg.OnPageChange,
	}
	p.render()
	return p
}

// MountPaginator looks the container up in doc before building the paginator.
func MountPaginator[T any](doc Document, containerID string, cfg PaginatorConfig[T]) *Paginator[T] {
	cfg.Container = lookupContainer(doc, containerID)
	return NewPaginator(cfg)
}

// SetData replaces the data set and returns to page 1.
func (p *Paginator[T]) SetData(items []T) {
	p.mu.Lock()
	p.items = append([]T(nil), items...)
	p.currentPage = 1
	p.mu.Unlock()
	p.changed("set_data")
}

// GoToPage moves to prev/next or to an explicit page. Explicit pages are
// clamped to [1, TotalPages]. Render and notification happen even when the
// page does not change.
func (p *Paginator[T]) GoToPage(target PageTarget) {
	p.mu.Lock()
	total := p.totalPagesLocked()
	switch target.kind {
	case targetPrev:
		if p.currentPage > 1 {
			p.currentPage--
		}
	case targetNext:
		if p.currentPage < total {
			p.currentPage++
		}
	default:
		p.currentPage = clampPage(target.page, total)
	}
	p.mu.Unlock()
	p.changed("go_to_page")
}

// SetPageSize changes the page size and returns to page 1. Non-positive sizes
// are ignored.
func (p *Paginator[T]) SetPageSize(n int) {
	if n <= 0 {
		return
	}
	p.mu.Lock()
	p.opts.ItemsPerPage = n
	p.currentPage = 1
	p.mu.Unlock()
	p.changed("set_page_size")
}

// CurrentPageData returns a copy of the visible slice.
func (p *Paginator[T]) CurrentPageData() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pageDataLocked()
}

// CurrentPage returns the 1-based current page.
func (p *Paginator[T]) CurrentPage() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.currentPage
}

// PageSize returns the active page size.
func (p *Paginator[T]) PageSize() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.opts.ItemsPerPage
}

// TotalItems returns the size of the data set.
func (p *Paginator[T]) TotalItems() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.items)
}

// TotalPages is ceil(TotalItems / PageSize).
func (p *Paginator[T]) TotalPages() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.totalPagesLocked()
}

// StartIndex is the index of the first visible item.
func (p *Paginator[T]) StartIndex() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.startLocked()
}

// EndIndex is one past the last visible item.
func (p *Paginator[T]) EndIndex() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.endLocked()
}

// Inert reports whether the paginator has no container to render into.
func (p *Paginator[T]) Inert() bool {
	return p.container == nil
}

// View builds the view model of the pagination affordance.
func (p *Paginator[T]) View() PaginationView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.viewLocked()
}

func (p *Paginator[T]) totalPagesLocked() int {
	size := p.opts.ItemsPerPage
	return (len(p.items) + size - 1) / size
}

func (p *Paginator[T]) startLocked() int {
	return (p.currentPage - 1) * p.opts.ItemsPerPage
}

func (p *Paginator[T]) endLocked() int {
	end := p.startLocked() + p.opts.ItemsPerPage
	if end > len(p.items) {
		end = len(p.items)
	}
	return end
}

func (p *Paginator[T]) pageDataLocked() []T {
	start, end := p.startLocked(), p.endLocked()
	if start >= end {
		return []T{}
	}
	return append([]T(nil), p.items[start:end]...)
}

// pageSnapshot is the state one transition renders and reports.
type pageSnapshot[T any] struct {
	view PaginationView
	data []T
}

func (p *Paginator[T]) snapshot() pageSnapshot[T] {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return pageSnapshot[T]{view: p.viewLocked(), data: p.pageDataLocked()}
}

func (p *Paginator[T]) changed(reason string) {
	if p.container == nil {
		return
	}
	snap := p.snapshot()
	p.renderView(snap.view)
	p.telemetry.Record(context.Background(), "widgets.pagination."+reason, map[string]any{
		"page":      snap.view.CurrentPage,
		"page_size": snap.view.PageSize,
		"items":     len(snap.data),
	})
	if p.onChange != nil {
		p.onChange(snap.data, snap.view.CurrentPage)
	}
}

func (p *Paginator[T]) render() {
	p.renderView(p.View())
}

func (p *Paginator[T]) renderView(view PaginationView) {
	if p.container == nil || p.renderer == nil {
		return
	}
	html, err := p.renderer.Render(paginationTemplate, view.templateData())
	if err != nil {
		p.telemetry.Record(context.Background(), "widgets.pagination.render_error", map[string]any{
			"container": p.container.ID(),
			"error":     err.Error(),
		})
		return
	}
	p.container.SetContent(html)
}

func clampPage(page, total int) int {
	if total < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
