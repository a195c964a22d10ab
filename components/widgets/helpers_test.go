package widgets

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type stubRenderer struct {
	mu        sync.Mutex
	templates []string
	payloads  map[string]map[string]any
	err       error
}

func newStubRenderer() *stubRenderer {
	return &stubRenderer{payloads: map[string]map[string]any{}}
}

func (r *stubRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = append(r.templates, name)
	if payload, ok := data.(map[string]any); ok {
		r.payloads[name] = payload
	}
	if r.err != nil {
		return "", r.err
	}
	html := fmt.Sprintf("<%s/>", name)
	if len(out) > 0 && out[0] != nil {
		out[0].Write([]byte(html))
	}
	return html, nil
}

func (r *stubRenderer) last(name string) map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.payloads[name]
}

func (r *stubRenderer) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, tpl := range r.templates {
		if tpl == name {
			n++
		}
	}
	return n
}

type recordedEvent struct {
	name    string
	payload map[string]any
}

type recordingTelemetry struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (t *recordingTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, recordedEvent{name: event, payload: payload})
}

func (t *recordingTelemetry) names() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.events))
	for _, event := range t.events {
		out = append(out, event.name)
	}
	return out
}

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
