package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTabSetSwitches(t *testing.T) {
	var switched []string
	tabs := NewTabSet(DefaultTabs(), func(tab Tab) { switched = append(switched, tab.ID) })

	active, ok := tabs.Active()
	require.True(t, ok)
	assert.Equal(t, "overview", active.ID)

	assert.True(t, tabs.SwitchTab(2))
	assert.True(t, tabs.SwitchTabByID("analytics"))
	assert.False(t, tabs.SwitchTab(5))
	assert.False(t, tabs.SwitchTabByID("missing"))

	active, _ = tabs.Active()
	assert.Equal(t, "analytics", active.ID)
	assert.Equal(t, []string{"reports", "analytics"}, switched)
}

func TestTabSetEmpty(t *testing.T) {
	tabs := NewTabSet(nil, nil)
	_, ok := tabs.Active()
	assert.False(t, ok)
	assert.False(t, tabs.SwitchTab(0))
}

func TestDropdownSelectClosesAndUpdatesToggle(t *testing.T) {
	d := NewDropdown("Select period", DefaultDropdownItems())
	d.Toggle()
	assert.True(t, d.State().Open)

	assert.True(t, d.Select(1))
	state := d.State()
	assert.False(t, state.Open)
	assert.Equal(t, 1, state.Selected)
	assert.Equal(t, "This Week", state.ToggleText)

	assert.False(t, d.Select(7))
	assert.True(t, d.SelectByID("month"))
	assert.Equal(t, "This Month", d.State().ToggleText)
}

func TestDropdownDismissOutside(t *testing.T) {
	d := NewDropdown("Pick", DefaultDropdownItems())
	d.Toggle()
	d.DismissOutside()
	assert.False(t, d.State().Open)
	d.Toggle()
	d.Toggle()
	assert.False(t, d.State().Open)
	assert.Equal(t, -1, d.State().Selected)
}
