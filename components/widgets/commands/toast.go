package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
	gocommand "github.com/goliatone/go-command"
)

// ShowToastInput raises a notification. DurationMS of zero keeps the default.
type ShowToastInput struct {
	Message     string `json:"message"`
	Type        string `json:"type,omitempty"`
	Title       string `json:"title,omitempty"`
	DurationMS  int    `json:"duration_ms,omitempty"`
	AutoDismiss *bool  `json:"auto_dismiss,omitempty"`
}

type toaster interface {
	Show(message string, kind widgets.ToastType, opts widgets.ToastOptions) widgets.Toast
}

// ShowToastCommand raises a toast.
type ShowToastCommand struct {
	toasts    toaster
	telemetry Telemetry
}

// NewShowToastCommand creates the command.
func NewShowToastCommand(toasts toaster, telemetry Telemetry) *ShowToastCommand {
	return &ShowToastCommand{toasts: toasts, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ShowToastInput] = (*ShowToastCommand)(nil)

// Execute shows the toast.
func (c *ShowToastCommand) Execute(ctx context.Context, msg ShowToastInput) error {
	if c.toasts == nil {
		return errors.New("toast command requires toast manager")
	}
	if strings.TrimSpace(msg.Message) == "" {
		return fmt.Errorf("%w: toast requires message", ErrInvalidInput)
	}
	toast := c.toasts.Show(msg.Message, widgets.ParseToastType(msg.Type), widgets.ToastOptions{
		Title:       msg.Title,
		Duration:    time.Duration(msg.DurationMS) * time.Millisecond,
		AutoDismiss: msg.AutoDismiss,
	})
	c.telemetry.Record(ctx, "widgets.command.toast", map[string]any{
		"id":   toast.ID,
		"type": string(toast.Type),
	})
	return nil
}
