package widgets

import "sync"

// DropdownItem is one selectable entry.
type DropdownItem struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// DropdownState is a snapshot of a Dropdown.
type DropdownState struct {
	Open       bool   `json:"open"`
	Selected   int    `json:"selected"`
	ToggleText string `json:"toggle_text"`
}

// Dropdown is a toggle menu whose toggle shows the selected label.
type Dropdown struct {
	mu       sync.Mutex
	items    []DropdownItem
	text     string
	open     bool
	selected int
}

// NewDropdown builds a closed dropdown showing text until an item is picked.
func NewDropdown(text string, items []DropdownItem) *Dropdown {
	return &Dropdown{
		items:    append([]DropdownItem(nil), items...),
		text:     text,
		selected: -1,
	}
}

// Toggle opens a closed menu and closes an open one.
func (d *Dropdown) Toggle() {
	d.mu.Lock()
	d.open = !d.open
	d.mu.Unlock()
}

// Close closes the menu.
func (d *Dropdown) Close() {
	d.mu.Lock()
	d.open = false
	d.mu.Unlock()
}

// DismissOutside closes the menu after an interaction outside the dropdown.
func (d *Dropdown) DismissOutside() {
	d.Close()
}

// Select marks the item selected, copies its label onto the toggle and closes
// the menu.
func (d *Dropdown) Select(index int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.items) {
		return false
	}
	d.selected = index
	d.text = d.items[index].Label
	d.open = false
	return true
}

// SelectByID selects the item with the given id.
func (d *Dropdown) SelectByID(id string) bool {
	d.mu.Lock()
	index := -1
	for i, item := range d.items {
		if item.ID == id {
			index = i
			break
		}
	}
	d.mu.Unlock()
	return d.Select(index)
}

// State returns a snapshot.
func (d *Dropdown) State() DropdownState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return DropdownState{Open: d.open, Selected: d.selected, ToggleText: d.text}
}
