package widgets

import "sync"

// Tab is one tab button and its panel.
type Tab struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// TabSet keeps exactly one active tab.
type TabSet struct {
	mu       sync.RWMutex
	tabs     []Tab
	active   int
	onSwitch func(Tab)
}

// NewTabSet builds a tab set with the first tab active.
func NewTabSet(tabs []Tab, onSwitch func(Tab)) *TabSet {
	return &TabSet{tabs: append([]Tab(nil), tabs...), onSwitch: onSwitch}
}

// SwitchTab activates the tab at index. Out of range indexes report false.
func (s *TabSet) SwitchTab(index int) bool {
	s.mu.Lock()
	if index < 0 || index >= len(s.tabs) {
		s.mu.Unlock()
		return false
	}
	s.active = index
	tab := s.tabs[index]
	s.mu.Unlock()
	if s.onSwitch != nil {
		s.onSwitch(tab)
	}
	return true
}

// SwitchTabByID activates the tab with the given id.
func (s *TabSet) SwitchTabByID(id string) bool {
	s.mu.RLock()
	index := -1
	for i, tab := range s.tabs {
		if tab.ID == id {
			index = i
			break
		}
	}
	s.mu.RUnlock()
	return s.SwitchTab(index)
}

// Active returns the active tab; ok is false for an empty set.
func (s *TabSet) Active() (Tab, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.tabs) == 0 {
		return Tab{}, false
	}
	return s.tabs[s.active], true
}

// Tabs returns the tabs in order.
func (s *TabSet) Tabs() []Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Tab(nil), s.tabs...)
}
