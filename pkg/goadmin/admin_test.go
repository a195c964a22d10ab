package goadmin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-admin-widgets/pkg/goadmin"
	widgetspkg "github.com/goliatone/go-admin-widgets/pkg/widgets"
)

type stubMenuBuilder struct {
	items []goadmin.MenuItem
	err   error
}

func (s *stubMenuBuilder) EnsureMenuItem(_ context.Context, _ string, item goadmin.MenuItem) error {
	s.items = append(s.items, item)
	return s.err
}

func TestAdminBootstrapSeedsTranslatedMenu(t *testing.T) {
	builder := &stubMenuBuilder{}
	page := widgetspkg.NewAdminPage(widgetspkg.PageOptions{})
	admin, err := goadmin.New(goadmin.Config{
		EnableWidgets: true,
		Page:          page,
		MenuBuilder:   builder,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := admin.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if len(builder.items) != 15 {
		t.Fatalf("expected 15 menu items, got %d", len(builder.items))
	}
	first := builder.items[0]
	if first.Label != "لوحة التحكم" || first.Route != "admin.dashboard" || first.Icon != "bx-home" {
		t.Fatalf("unexpected first item %+v", first)
	}
	if admin.Page() == nil {
		t.Fatalf("expected admin page")
	}
}

func TestAdminBootstrapStopsOnError(t *testing.T) {
	builder := &stubMenuBuilder{err: errors.New("menu store down")}
	admin, err := goadmin.New(goadmin.Config{
		EnableWidgets: true,
		Page:          widgetspkg.NewAdminPage(widgetspkg.PageOptions{}),
		MenuBuilder:   builder,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := admin.Bootstrap(context.Background()); err == nil {
		t.Fatalf("expected bootstrap error")
	}
	if len(builder.items) != 1 {
		t.Fatalf("expected bootstrap to stop after first failure, got %d calls", len(builder.items))
	}
}

func TestAdminDisabledSkipsBootstrap(t *testing.T) {
	builder := &stubMenuBuilder{}
	admin, err := goadmin.New(goadmin.Config{
		EnableWidgets: false,
		MenuBuilder:   builder,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := admin.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap returned error: %v", err)
	}
	if len(builder.items) != 0 {
		t.Fatalf("expected 0 calls, got %d", len(builder.items))
	}
	if admin.Page() != nil {
		t.Fatalf("expected nil page when disabled")
	}
}

func TestAdminRequiresPageWhenEnabled(t *testing.T) {
	if _, err := goadmin.New(goadmin.Config{EnableWidgets: true}); err == nil {
		t.Fatalf("expected error without page")
	}
}
