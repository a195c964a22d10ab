package commands

import (
	"context"
	"errors"
	"fmt"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
	gocommand "github.com/goliatone/go-command"
)

// ErrUnknownKey is returned for keys the search panel does not handle.
var ErrUnknownKey = errors.New("commands: unknown key")

// ErrResultNotFound is returned when a selection names no rendered result.
var ErrResultNotFound = errors.New("commands: search result not found")

type searchSession interface {
	HandleInput(query string)
	PerformSearch(query string)
	HandleKey(key widgets.Key) bool
	SelectItem(index int)
	SelectByID(id string) bool
	SetActiveFilter(filter string)
}

// SearchInputInput is a keystroke-level change of the search box. Immediate
// skips the debounce, which request/response transports usually want.
type SearchInputInput struct {
	Query     string `json:"query"`
	Immediate bool   `json:"immediate,omitempty"`
}

// SearchInputCommand feeds the search box.
type SearchInputCommand struct {
	search    searchSession
	telemetry Telemetry
}

// NewSearchInputCommand creates the command.
func NewSearchInputCommand(search searchSession, telemetry Telemetry) *SearchInputCommand {
	return &SearchInputCommand{search: search, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SearchInputInput] = (*SearchInputCommand)(nil)

// Execute schedules (or runs) the search.
func (c *SearchInputCommand) Execute(ctx context.Context, msg SearchInputInput) error {
	if c.search == nil {
		return errors.New("search command requires search index")
	}
	if msg.Immediate {
		c.search.PerformSearch(msg.Query)
	} else {
		c.search.HandleInput(msg.Query)
	}
	c.telemetry.Record(ctx, "widgets.command.search_input", map[string]any{
		"query":     msg.Query,
		"immediate": msg.Immediate,
	})
	return nil
}

// SearchKeyInput is a navigation key name (ArrowDown, ArrowUp, Enter, Escape).
type SearchKeyInput struct {
	Key string `json:"key"`
}

// SearchKeyCommand drives the result cursor.
type SearchKeyCommand struct {
	search    searchSession
	telemetry Telemetry
}

// NewSearchKeyCommand creates the command.
func NewSearchKeyCommand(search searchSession, telemetry Telemetry) *SearchKeyCommand {
	return &SearchKeyCommand{search: search, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SearchKeyInput] = (*SearchKeyCommand)(nil)

// Execute applies the key. Keys ignored by a hidden panel are not errors.
func (c *SearchKeyCommand) Execute(ctx context.Context, msg SearchKeyInput) error {
	if c.search == nil {
		return errors.New("search key command requires search index")
	}
	key, ok := widgets.ParseKey(msg.Key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, msg.Key)
	}
	consumed := c.search.HandleKey(key)
	c.telemetry.Record(ctx, "widgets.command.search_key", map[string]any{
		"key":      string(key),
		"consumed": consumed,
	})
	return nil
}

// SelectResultInput picks a rendered result by record id or by index.
type SelectResultInput struct {
	ID    string `json:"id,omitempty"`
	Index *int   `json:"index,omitempty"`
}

// SelectResultCommand commits a search result.
type SelectResultCommand struct {
	search    searchSession
	telemetry Telemetry
}

// NewSelectResultCommand creates the command.
func NewSelectResultCommand(search searchSession, telemetry Telemetry) *SelectResultCommand {
	return &SelectResultCommand{search: search, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SelectResultInput] = (*SelectResultCommand)(nil)

// Execute selects by id when given, otherwise by index.
func (c *SelectResultCommand) Execute(ctx context.Context, msg SelectResultInput) error {
	if c.search == nil {
		return errors.New("select command requires search index")
	}
	switch {
	case msg.ID != "":
		if !c.search.SelectByID(msg.ID) {
			return fmt.Errorf("%w: %s", ErrResultNotFound, msg.ID)
		}
	case msg.Index != nil:
		c.search.SelectItem(*msg.Index)
	default:
		return fmt.Errorf("%w: select requires id or index", ErrInvalidInput)
	}
	c.telemetry.Record(ctx, "widgets.command.select", map[string]any{"id": msg.ID})
	return nil
}

// SetFilterInput sets the active category filter ("all" disables it).
type SetFilterInput struct {
	Filter string `json:"filter"`
}

// SetFilterCommand changes the search filter.
type SetFilterCommand struct {
	search    searchSession
	telemetry Telemetry
}

// NewSetFilterCommand creates the command.
func NewSetFilterCommand(search searchSession, telemetry Telemetry) *SetFilterCommand {
	return &SetFilterCommand{search: search, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetFilterInput] = (*SetFilterCommand)(nil)

// Execute applies the filter.
func (c *SetFilterCommand) Execute(ctx context.Context, msg SetFilterInput) error {
	if c.search == nil {
		return errors.New("filter command requires search index")
	}
	c.search.SetActiveFilter(msg.Filter)
	c.telemetry.Record(ctx, "widgets.command.filter", map[string]any{"filter": msg.Filter})
	return nil
}
