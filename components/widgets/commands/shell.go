package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gocommand "github.com/goliatone/go-command"
)

// SetLanguageInput selects a page language; empty toggles ar/en.
type SetLanguageInput struct {
	Language string `json:"language,omitempty"`
}

type languageSwitcher interface {
	ToggleLanguage(ctx context.Context) error
	SetLanguage(ctx context.Context, lang string) error
}

// SetLanguageCommand switches and persists the page language.
type SetLanguageCommand struct {
	shell     languageSwitcher
	telemetry Telemetry
}

// NewSetLanguageCommand creates the command.
func NewSetLanguageCommand(shell languageSwitcher, telemetry Telemetry) *SetLanguageCommand {
	return &SetLanguageCommand{shell: shell, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[SetLanguageInput] = (*SetLanguageCommand)(nil)

// Execute toggles or sets the language.
func (c *SetLanguageCommand) Execute(ctx context.Context, msg SetLanguageInput) error {
	if c.shell == nil {
		return errors.New("language command requires shell")
	}
	var err error
	if msg.Language == "" {
		err = c.shell.ToggleLanguage(ctx)
	} else {
		err = c.shell.SetLanguage(ctx, msg.Language)
	}
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, "widgets.command.language", map[string]any{"language": msg.Language})
	return nil
}

// ChangeColorInput carries the new primary color.
type ChangeColorInput struct {
	Color string `json:"color"`
}

type colorChanger interface {
	ChangeColor(ctx context.Context, color string) error
}

// ChangeColorCommand sets and persists the primary color.
type ChangeColorCommand struct {
	shell     colorChanger
	telemetry Telemetry
}

// NewChangeColorCommand creates the command.
func NewChangeColorCommand(shell colorChanger, telemetry Telemetry) *ChangeColorCommand {
	return &ChangeColorCommand{shell: shell, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ChangeColorInput] = (*ChangeColorCommand)(nil)

// Execute applies the color.
func (c *ChangeColorCommand) Execute(ctx context.Context, msg ChangeColorInput) error {
	if c.shell == nil {
		return errors.New("color command requires shell")
	}
	if strings.TrimSpace(msg.Color) == "" {
		return fmt.Errorf("%w: color required", ErrInvalidInput)
	}
	if err := c.shell.ChangeColor(ctx, msg.Color); err != nil {
		return err
	}
	c.telemetry.Record(ctx, "widgets.command.color", map[string]any{"color": msg.Color})
	return nil
}
