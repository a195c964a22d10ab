package widgets

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	toastTemplate = "toasts"

	toastShowDelay       = 100 * time.Millisecond
	toastRemoveDelay     = 400 * time.Millisecond
	defaultToastDuration = 5 * time.Second
)

// ToastType selects the title and icon of a toast.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastWarning ToastType = "warning"
	ToastInfo    ToastType = "info"
)

var toastTitles = map[ToastType]string{
	ToastSuccess: "Success",
	ToastError:   "Error",
	ToastWarning: "Warning",
	ToastInfo:    "Info",
}

var toastIcons = map[ToastType]string{
	ToastSuccess: "bx-check-circle",
	ToastError:   "bx-error-circle",
	ToastWarning: "bx-error",
	ToastInfo:    "bx-info-circle",
}

// ParseToastType maps unknown values to ToastInfo.
func ParseToastType(value string) ToastType {
	t := ToastType(value)
	if _, ok := toastTitles[t]; ok {
		return t
	}
	return ToastInfo
}

// ToastOptions tweaks a single toast. AutoDismiss defaults to true.
type ToastOptions struct {
	Title       string        `json:"title,omitempty"`
	Duration    time.Duration `json:"duration,omitempty"`
	AutoDismiss *bool         `json:"auto_dismiss,omitempty"`
}

// Toast is a snapshot of one notification.
type Toast struct {
	ID       string        `json:"id"`
	Type     ToastType     `json:"type"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Icon     string        `json:"icon"`
	Time     time.Time     `json:"time"`
	Duration time.Duration `json:"duration,omitempty"`
	Shown    bool          `json:"shown"`
	Hiding   bool          `json:"hiding"`
}

// Toast lifecycle actions published to a ToastNotifier.
const (
	ToastActionCreated = "created"
	ToastActionShown   = "shown"
	ToastActionHiding  = "hiding"
	ToastActionRemoved = "removed"
)

// ToastEvent describes a toast lifecycle change.
type ToastEvent struct {
	Action string `json:"action"`
	Toast  Toast  `json:"toast"`
}

// ToastNotifier receives toast lifecycle events.
type ToastNotifier interface {
	ToastChanged(ctx context.Context, event ToastEvent) error
}

// ToastManagerConfig wires a ToastManager.
type ToastManagerConfig struct {
	Container Container
	Renderer  Renderer
	Scheduler Scheduler
	Telemetry Telemetry
	Notifier  ToastNotifier
	Now       func() time.Time
}

// ToastManager keeps the stack of visible toasts and their timers.
type ToastManager struct {
	container Container
	renderer  Renderer
	scheduler Scheduler
	telemetry Telemetry
	notifier  ToastNotifier
	now       func() time.Time

	mu     sync.Mutex
	toasts []*toastEntry
}

type toastEntry struct {
	toast  Toast
	timers []Timer
}

// NewToastManager builds an empty manager.
func NewToastManager(cfg ToastManagerConfig) *ToastManager {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &ToastManager{
		container: cfg.Container,
		renderer:  cfg.Renderer,
		scheduler: normalizeScheduler(cfg.Scheduler),
		telemetry: normalizeTelemetry(cfg.Telemetry),
		notifier:  cfg.Notifier,
		now:       now,
	}
}

// Show appends a toast, reveals it after a short delay and, unless disabled,
// dismisses it once its duration elapses.
func (m *ToastManager) Show(message string, kind ToastType, opts ToastOptions) Toast {
	kind = ParseToastType(string(kind))
	title := opts.Title
	if title == "" {
		title = toastTitles[kind]
	}
	duration := opts.Duration
	if duration <= 0 {
		duration = defaultToastDuration
	}
	auto := opts.AutoDismiss == nil || *opts.AutoDismiss
	toast := Toast{
		ID:      "toast-" + uuid.NewString(),
		Type:    kind,
		Title:   title,
		Message: message,
		Icon:    toastIcons[kind],
		Time:    m.now(),
	}
	if auto {
		toast.Duration = duration
	}

	entry := &toastEntry{toast: toast}
	m.mu.Lock()
	m.toasts = append(m.toasts, entry)
	entry.timers = append(entry.timers, m.scheduler.AfterFunc(toastShowDelay, func() {
		m.markShown(toast.ID)
	}))
	if auto {
		entry.timers = append(entry.timers, m.scheduler.AfterFunc(duration, func() {
			m.Dismiss(toast.ID)
		}))
	}
	m.mu.Unlock()

	m.changed(ToastActionCreated, toast)
	return toast
}

// Success shows a success toast.
func (m *ToastManager) Success(message string, opts ToastOptions) Toast {
	return m.Show(message, ToastSuccess, opts)
}

// Error shows an error toast.
func (m *ToastManager) Error(message string, opts ToastOptions) Toast {
	return m.Show(message, ToastError, opts)
}

// Warning shows a warning toast.
func (m *ToastManager) Warning(message string, opts ToastOptions) Toast {
	return m.Show(message, ToastWarning, opts)
}

// Info shows an info toast.
func (m *ToastManager) Info(message string, opts ToastOptions) Toast {
	return m.Show(message, ToastInfo, opts)
}

// Dismiss starts the hide animation and removes the toast shortly after.
// Unknown or already hiding toasts report false.
func (m *ToastManager) Dismiss(id string) bool {
	m.mu.Lock()
	entry := m.findLocked(id)
	if entry == nil || entry.toast.Hiding {
		m.mu.Unlock()
		return false
	}
	entry.toast.Hiding = true
	toast := entry.toast
	entry.timers = append(entry.timers, m.scheduler.AfterFunc(toastRemoveDelay, func() {
		m.remove(id)
	}))
	m.mu.Unlock()

	m.changed(ToastActionHiding, toast)
	return true
}

// Toasts returns the current stack, oldest first.
func (m *ToastManager) Toasts() []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Toast, 0, len(m.toasts))
	for _, entry := range m.toasts {
		out = append(out, entry.toast)
	}
	return out
}

// Clear stops every pending timer and drops all toasts.
func (m *ToastManager) Clear() {
	m.mu.Lock()
	removed := make([]Toast, 0, len(m.toasts))
	for _, entry := range m.toasts {
		for _, timer := range entry.timers {
			timer.Stop()
		}
		removed = append(removed, entry.toast)
	}
	m.toasts = nil
	m.mu.Unlock()
	for _, toast := range removed {
		m.changed(ToastActionRemoved, toast)
	}
}

func (m *ToastManager) markShown(id string) {
	m.mu.Lock()
	entry := m.findLocked(id)
	if entry == nil || entry.toast.Shown {
		m.mu.Unlock()
		return
	}
	entry.toast.Shown = true
	toast := entry.toast
	m.mu.Unlock()
	m.changed(ToastActionShown, toast)
}

func (m *ToastManager) remove(id string) {
	m.mu.Lock()
	var removed *toastEntry
	kept := m.toasts[:0]
	for _, entry := range m.toasts {
		if entry.toast.ID == id {
			removed = entry
			continue
		}
		kept = append(kept, entry)
	}
	m.toasts = kept
	m.mu.Unlock()
	if removed != nil {
		for _, timer := range removed.timers {
			timer.Stop()
		}
		m.changed(ToastActionRemoved, removed.toast)
	}
}

func (m *ToastManager) findLocked(id string) *toastEntry {
	for _, entry := range m.toasts {
		if entry.toast.ID == id {
			return entry
		}
	}
	return nil
}

func (m *ToastManager) changed(action string, toast Toast) {
	ctx := context.Background()
	m.render()
	m.telemetry.Record(ctx, "widgets.toast."+action, map[string]any{
		"id":   toast.ID,
		"type": string(toast.Type),
	})
	if m.notifier == nil {
		return
	}
	if err := m.notifier.ToastChanged(ctx, ToastEvent{Action: action, Toast: toast}); err != nil {
		m.telemetry.Record(ctx, "widgets.toast.notify_error", map[string]any{
			"id":    toast.ID,
			"error": err.Error(),
		})
	}
}

func (m *ToastManager) render() {
	if m.container == nil || m.renderer == nil {
		return
	}
	toasts := m.Toasts()
	items := make([]map[string]any, 0, len(toasts))
	for _, toast := range toasts {
		items = append(items, map[string]any{
			"id":      toast.ID,
			"type":    string(toast.Type),
			"title":   toast.Title,
			"message": toast.Message,
			"icon":    toast.Icon,
			"time":    toast.Time.Format("15:04:05"),
			"shown":   toast.Shown,
			"hiding":  toast.Hiding,
		})
	}
	html, err := m.renderer.Render(toastTemplate, map[string]any{"toasts": items})
	if err != nil {
		m.telemetry.Record(context.Background(), "widgets.toast.render_error", map[string]any{
			"error": err.Error(),
		})
		return
	}
	m.container.SetContent(html)
}
