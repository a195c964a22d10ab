package widgets

import "time"

const (
	// DefaultCategory groups search records without a category.
	DefaultCategory = "Other"
	// FilterAll disables category filtering.
	FilterAll = "all"

	defaultItemsPerPage    = 10
	defaultMaxVisiblePages = 5
	defaultPlaceholder     = "Search..."
	defaultMinCharacters   = 2
	defaultSearchDelay     = 300 * time.Millisecond
	defaultMaxResults      = 10
	defaultSearchCacheSize = 64
)

var defaultPageSizeChoices = []int{5, 10, 25, 50}

// PaginatorOptions configures a Paginator. Nil booleans default to true.
type PaginatorOptions struct {
	ItemsPerPage     int   `json:"items_per_page,omitempty" yaml:"items_per_page,omitempty"`
	MaxVisiblePages  int   `json:"max_visible_pages,omitempty" yaml:"max_visible_pages,omitempty"`
	ShowInfo         *bool `json:"show_info,omitempty" yaml:"show_info,omitempty"`
	ShowItemsPerPage *bool `json:"show_items_per_page,omitempty" yaml:"show_items_per_page,omitempty"`
	PageSizeChoices  []int `json:"page_size_choices,omitempty" yaml:"page_size_choices,omitempty"`
}

func (o PaginatorOptions) normalized() PaginatorOptions {
	if o.ItemsPerPage <= 0 {
		o.ItemsPerPage = defaultItemsPerPage
	}
	if o.MaxVisiblePages <= 0 {
		o.MaxVisiblePages = defaultMaxVisiblePages
	}
	if len(o.PageSizeChoices) == 0 {
		o.PageSizeChoices = append([]int(nil), defaultPageSizeChoices...)
	}
	return o
}

func (o PaginatorOptions) showInfo() bool {
	return o.ShowInfo == nil || *o.ShowInfo
}

func (o PaginatorOptions) showItemsPerPage() bool {
	return o.ShowItemsPerPage == nil || *o.ShowItemsPerPage
}

// SearchOptions configures a SearchIndex.
type SearchOptions struct {
	Placeholder   string        `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	MinCharacters int           `json:"min_characters,omitempty" yaml:"min_characters,omitempty"`
	Delay         time.Duration `json:"delay,omitempty" yaml:"delay,omitempty"`
	MaxResults    int           `json:"max_results,omitempty" yaml:"max_results,omitempty"`
	// Filters lists the category keys offered as filter chips; FilterAll is implied.
	Filters []string `json:"filters,omitempty" yaml:"filters,omitempty"`
	// CacheSize bounds the memoized lookups; negative disables the cache.
	CacheSize int `json:"cache_size,omitempty" yaml:"cache_size,omitempty"`
}

func (o SearchOptions) normalized() SearchOptions {
	if o.Placeholder == "" {
		o.Placeholder = defaultPlaceholder
	}
	if o.MinCharacters <= 0 {
		o.MinCharacters = defaultMinCharacters
	}
	if o.Delay <= 0 {
		o.Delay = defaultSearchDelay
	}
	if o.MaxResults <= 0 {
		o.MaxResults = defaultMaxResults
	}
	if o.CacheSize == 0 {
		o.CacheSize = defaultSearchCacheSize
	}
	return o
}

// Bool returns a pointer to v, for optional option fields.
func Bool(v bool) *bool {
	return &v
}
