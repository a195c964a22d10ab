package widgets

import "fmt"

const paginationTemplate = "pagination"

// PageLink is one numbered link in the page window.
type PageLink struct {
	Number int    `json:"number"`
	Target string `json:"target"`
	Active bool   `json:"active"`
}

// PageSizeChoice is one option of the items-per-page selector.
type PageSizeChoice struct {
	Size     int  `json:"size"`
	Selected bool `json:"selected"`
}

// PaginationView is the view model of the pagination affordance.
type PaginationView struct {
	CurrentPage      int              `json:"current_page"`
	TotalPages       int              `json:"total_pages"`
	TotalItems       int              `json:"total_items"`
	PageSize         int              `json:"page_size"`
	StartIndex       int              `json:"start_index"`
	EndIndex         int              `json:"end_index"`
	Info             string           `json:"info,omitempty"`
	ShowInfo         bool             `json:"show_info"`
	ShowItemsPerPage bool             `json:"show_items_per_page"`
	PrevDisabled     bool             `json:"prev_disabled"`
	NextDisabled     bool             `json:"next_disabled"`
	Pages            []PageLink       `json:"pages"`
	PageSizes        []PageSizeChoice `json:"page_sizes,omitempty"`
}

func (p *Paginator[T]) viewLocked() PaginationView {
	total := p.totalPagesLocked()
	start, end := p.startLocked(), p.endLocked()
	view := PaginationView{
		CurrentPage:      p.currentPage,
		TotalPages:       total,
		TotalItems:       len(p.items),
		PageSize:         p.opts.ItemsPerPage,
		StartIndex:       start,
		EndIndex:         end,
		ShowInfo:         p.opts.showInfo(),
		ShowItemsPerPage: p.opts.showItemsPerPage(),
		PrevDisabled:     p.currentPage <= 1,
		NextDisabled:     p.currentPage >= total,
	}
	if view.ShowInfo {
		view.Info = infoText(start, end, len(p.items))
	}
	for _, n := range VisiblePages(total, p.currentPage, p.opts.MaxVisiblePages) {
		view.Pages = append(view.Pages, PageLink{
			Number: n,
			Target: PageNumber(n).String(),
			Active: n == p.currentPage,
		})
	}
	if view.ShowItemsPerPage {
		for _, size := range p.opts.PageSizeChoices {
			view.PageSizes = append(view.PageSizes, PageSizeChoice{
				Size:     size,
				Selected: size == p.opts.ItemsPerPage,
			})
		}
	}
	return view
}

func infoText(start, end, total int) string {
	first := start + 1
	if total == 0 {
		first = 0
	}
	return fmt.Sprintf("Showing %d to %d of %d entries", first, end, total)
}

func (v PaginationView) templateData() map[string]any {
	pages := make([]map[string]any, 0, len(v.Pages))
	for _, link := range v.Pages {
		pages = append(pages, map[string]any{
			"number": link.Number,
			"target": link.Target,
			"active": link.Active,
		})
	}
	sizes := make([]map[string]any, 0, len(v.PageSizes))
	for _, choice := range v.PageSizes {
		sizes = append(sizes, map[string]any{
			"size":     choice.Size,
			"selected": choice.Selected,
		})
	}
	return map[string]any{
		"current_page":        v.CurrentPage,
		"total_pages":         v.TotalPages,
		"total_items":         v.TotalItems,
		"info":                v.Info,
		"show_info":           v.ShowInfo,
		"show_items_per_page": v.ShowItemsPerPage,
		"prev_disabled":       v.PrevDisabled,
		"next_disabled":       v.NextDisabled,
		"pages":               pages,
		"page_sizes":          sizes,
	}
}

// VisiblePages returns the centered window of page numbers around current.
// The window is never wider than min(total, maxVisible) and always contains
// current when total exceeds maxVisible.
func VisiblePages(total, current, maxVisible int) []int {
	if total <= 0 {
		return nil
	}
	if maxVisible <= 0 {
		maxVisible = defaultMaxVisiblePages
	}
	if total <= maxVisible {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}
	current = clampPage(current, total)
	half := maxVisible / 2
	start := current - half
	if start < 1 {
		start = 1
	}
	end := start + maxVisible - 1
	if end > total {
		end = total
		start = end - maxVisible + 1
	}
	if start < 1 {
		start = 1
	}
	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
