package gorouter

import (
	"testing"

	"github.com/goliatone/go-admin-widgets/components/widgets/httpapi"
)

func TestRegisterValidatesConfig(t *testing.T) {
	if err := Register(Config[struct{}]{}); err == nil {
		t.Fatalf("expected error when router missing")
	}
}

func TestRegisterRequiresExecutorOrSnapshot(t *testing.T) {
	var api httpapi.Executor
	cfg := Config[struct{}]{API: api}
	if err := Register(cfg); err == nil {
		t.Fatalf("expected error without router and executor")
	}
}

func TestDefaultRouteConfigKeepsOverrides(t *testing.T) {
	routes := defaultRouteConfig(RouteConfig{State: "/state"})
	if routes.State != "/state" {
		t.Fatalf("expected override to survive, got %q", routes.State)
	}
	if routes.Fragment != "/widgets/fragments/:id" {
		t.Fatalf("unexpected fragment route %q", routes.Fragment)
	}
	if routes.WebSocket != "/widgets/ws" {
		t.Fatalf("unexpected websocket route %q", routes.WebSocket)
	}
}
