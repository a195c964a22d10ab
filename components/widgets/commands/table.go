package commands

import (
	"context"
	"errors"
	"fmt"

	gocommand "github.com/goliatone/go-command"
)

// SortTableInput is a header click on the given column.
type SortTableInput struct {
	Column int `json:"column"`
}

type tableSorter interface {
	SortBy(column int) bool
}

// SortTableCommand toggles the sort of a table column.
type SortTableCommand struct {
	table     tableSorter
	telemetry Telemetry
}

// NewSortTableCommand creates the command.
func NewSortTableCommand(table tableSorter, telemetry Telemetry) *SortTableCommand {
	return &SortTableCommand{table: table, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SortTableInput] = (*SortTableCommand)(nil)

// Execute sorts; unknown and unsortable columns are rejected.
func (c *SortTableCommand) Execute(ctx context.Context, msg SortTableInput) error {
	if c.table == nil {
		return errors.New("sort command requires table")
	}
	if !c.table.SortBy(msg.Column) {
		return fmt.Errorf("%w: column %d is not sortable", ErrInvalidInput, msg.Column)
	}
	c.telemetry.Record(ctx, "widgets.command.sort", map[string]any{"column": msg.Column})
	return nil
}

// SwitchTabInput names the tab to activate.
type SwitchTabInput struct {
	ID string `json:"id"`
}

type tabSwitcher interface {
	SwitchTabByID(id string) bool
}

// SwitchTabCommand activates a tab.
type SwitchTabCommand struct {
	tabs      tabSwitcher
	telemetry Telemetry
}

// NewSwitchTabCommand creates the command.
func NewSwitchTabCommand(tabs tabSwitcher, telemetry Telemetry) *SwitchTabCommand {
	return &SwitchTabCommand{tabs: tabs, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SwitchTabInput] = (*SwitchTabCommand)(nil)

// Execute switches the tab.
func (c *SwitchTabCommand) Execute(ctx context.Context, msg SwitchTabInput) error {
	if c.tabs == nil {
		return errors.New("tab command requires tab set")
	}
	if !c.tabs.SwitchTabByID(msg.ID) {
		return fmt.Errorf("%w: unknown tab %q", ErrInvalidInput, msg.ID)
	}
	c.telemetry.Record(ctx, "widgets.command.tab", map[string]any{"id": msg.ID})
	return nil
}
