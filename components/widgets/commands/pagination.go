package commands

import (
	"context"
	"errors"
	"fmt"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
	gocommand "github.com/goliatone/go-command"
)

// ErrInvalidPageTarget is returned for targets other than prev, next or a number.
var ErrInvalidPageTarget = errors.New("commands: invalid page target")

// GoToPageInput names the page to show: "prev", "next" or a page number.
type GoToPageInput struct {
	Target string `json:"target"`
}

type pageNavigator interface {
	GoToPage(target widgets.PageTarget)
	CurrentPage() int
}

// GoToPageCommand moves a paginator.
type GoToPageCommand struct {
	pager     pageNavigator
	telemetry Telemetry
}

// NewGoToPageCommand creates the command.
func NewGoToPageCommand(pager pageNavigator, telemetry Telemetry) *GoToPageCommand {
	return &GoToPageCommand{pager: pager, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[GoToPageInput] = (*GoToPageCommand)(nil)

// Execute parses the target and navigates.
func (c *GoToPageCommand) Execute(ctx context.Context, msg GoToPageInput) error {
	if c.pager == nil {
		return errors.New("page command requires paginator")
	}
	target, ok := widgets.ParsePageTarget(msg.Target)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageTarget, msg.Target)
	}
	c.pager.GoToPage(target)
	c.telemetry.Record(ctx, "widgets.command.page", map[string]any{
		"target": target.String(),
		"page":   c.pager.CurrentPage(),
	})
	return nil
}

// SetPageSizeInput carries the new number of items per page.
type SetPageSizeInput struct {
	Size int `json:"size"`
}

type pageSizer interface {
	SetPageSize(n int)
}

// SetPageSizeCommand changes the page size of a paginator.
type SetPageSizeCommand struct {
	pager     pageSizer
	telemetry Telemetry
}

// NewSetPageSizeCommand creates the command.
func NewSetPageSizeCommand(pager pageSizer, telemetry Telemetry) *SetPageSizeCommand {
	return &SetPageSizeCommand{pager: pager, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetPageSizeInput] = (*SetPageSizeCommand)(nil)

// Execute applies the size; non-positive sizes are rejected.
func (c *SetPageSizeCommand) Execute(ctx context.Context, msg SetPageSizeInput) error {
	if c.pager == nil {
		return errors.New("page size command requires paginator")
	}
	if msg.Size <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidInput, msg.Size)
	}
	c.pager.SetPageSize(msg.Size)
	c.telemetry.Record(ctx, "widgets.command.page_size", map[string]any{"size": msg.Size})
	return nil
}
