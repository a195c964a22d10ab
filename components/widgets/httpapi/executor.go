package httpapi

import (
	"context"
	"errors"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
	"github.com/goliatone/go-admin-widgets/components/widgets/commands"
	gocommand "github.com/goliatone/go-command"
)

// ErrCommandUnavailable is returned when an executor has no commander wired
// for an operation.
var ErrCommandUnavailable = errors.New("httpapi: command not configured")

// Executor is the transport-neutral surface shared by the HTTP handlers and
// the go-router adapter.
type Executor interface {
	GoToPage(ctx context.Context, input commands.GoToPageInput) error
	SetPageSize(ctx context.Context, input commands.SetPageSizeInput) error
	SearchInput(ctx context.Context, input commands.SearchInputInput) error
	SearchKey(ctx context.Context, input commands.SearchKeyInput) error
	SelectResult(ctx context.Context, input commands.SelectResultInput) error
	SetFilter(ctx context.Context, input commands.SetFilterInput) error
	SetLanguage(ctx context.Context, input commands.SetLanguageInput) error
	ChangeColor(ctx context.Context, input commands.ChangeColorInput) error
	ShowToast(ctx context.Context, input commands.ShowToastInput) error
	SortTable(ctx context.Context, input commands.SortTableInput) error
	SwitchTab(ctx context.Context, input commands.SwitchTabInput) error
}

// CommandExecutor adapts go-command commanders to Executor.
type CommandExecutor struct {
	GoToPageCommander     gocommand.Commander[commands.GoToPageInput]
	SetPageSizeCommander  gocommand.Commander[commands.SetPageSizeInput]
	SearchInputCommander  gocommand.Commander[commands.SearchInputInput]
	SearchKeyCommander    gocommand.Commander[commands.SearchKeyInput]
	SelectResultCommander gocommand.Commander[commands.SelectResultInput]
	SetFilterCommander    gocommand.Commander[commands.SetFilterInput]
	SetLanguageCommander  gocommand.Commander[commands.SetLanguageInput]
	ChangeColorCommander  gocommand.Commander[commands.ChangeColorInput]
	ShowToastCommander    gocommand.Commander[commands.ShowToastInput]
	SortTableCommander    gocommand.Commander[commands.SortTableInput]
	SwitchTabCommander    gocommand.Commander[commands.SwitchTabInput]
}

var _ Executor = (*CommandExecutor)(nil)

// NewPageExecutor wires every command against the widgets of page.
func NewPageExecutor(page *widgets.AdminPage, telemetry commands.Telemetry) *CommandExecutor {
	return &CommandExecutor{
		GoToPageCommander:     commands.NewGoToPageCommand(page.Records, telemetry),
		SetPageSizeCommander:  commands.NewSetPageSizeCommand(page.Records, telemetry),
		SearchInputCommander:  commands.NewSearchInputCommand(page.Search, telemetry),
		SearchKeyCommander:    commands.NewSearchKeyCommand(page.Search, telemetry),
		SelectResultCommander: commands.NewSelectResultCommand(page.Search, telemetry),
		SetFilterCommander:    commands.NewSetFilterCommand(page.Search, telemetry),
		SetLanguageCommander:  commands.NewSetLanguageCommand(page.Shell, telemetry),
		ChangeColorCommander:  commands.NewChangeColorCommand(page.Shell, telemetry),
		ShowToastCommander:    commands.NewShowToastCommand(page.Toasts, telemetry),
		SortTableCommander:    commands.NewSortTableCommand(page.Table, telemetry),
		SwitchTabCommander:    commands.NewSwitchTabCommand(page.Tabs, telemetry),
	}
}

func execute[T any](ctx context.Context, cmd gocommand.Commander[T], input T) error {
	if cmd == nil {
		return ErrCommandUnavailable
	}
	return cmd.Execute(ctx, input)
}

func (e *CommandExecutor) GoToPage(ctx context.Context, input commands.GoToPageInput) error {
	return execute(ctx, e.GoToPageCommander, input)
}

func (e *CommandExecutor) SetPageSize(ctx context.Context, input commands.SetPageSizeInput) error {
	return execute(ctx, e.SetPageSizeCommander, input)
}

func (e *CommandExecutor) SearchInput(ctx context.Context, input commands.SearchInputInput) error {
	return execute(ctx, e.SearchInputCommander, input)
}

func (e *CommandExecutor) SearchKey(ctx context.Context, input commands.SearchKeyInput) error {
	return execute(ctx, e.SearchKeyCommander, input)
}

func (e *CommandExecutor) SelectResult(ctx context.Context, input commands.SelectResultInput) error {
	return execute(ctx, e.SelectResultCommander, input)
}

func (e *CommandExecutor) SetFilter(ctx context.Context, input commands.SetFilterInput) error {
	return execute(ctx, e.SetFilterCommander, input)
}

func (e *CommandExecutor) SetLanguage(ctx context.Context, input commands.SetLanguageInput) error {
	return execute(ctx, e.SetLanguageCommander, input)
}

func (e *CommandExecutor) ChangeColor(ctx context.Context, input commands.ChangeColorInput) error {
	return execute(ctx, e.ChangeColorCommander, input)
}

func (e *CommandExecutor) ShowToast(ctx context.Context, input commands.ShowToastInput) error {
	return execute(ctx, e.ShowToastCommander, input)
}

func (e *CommandExecutor) SortTable(ctx context.Context, input commands.SortTableInput) error {
	return execute(ctx, e.SortTableCommander, input)
}

func (e *CommandExecutor) SwitchTab(ctx context.Context, input commands.SwitchTabInput) error {
	return execute(ctx, e.SwitchTabCommander, input)
}
