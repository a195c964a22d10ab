package goadmin

import (
	"context"
	"errors"
	"fmt"

	widgetspkg "github.com/goliatone/go-admin-widgets/pkg/widgets"
)

// MenuBuilder ensures sidebar entries exist within the admin navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures sidebar link metadata. Parent is the route of the
// enclosing submenu, empty for top-level entries.
type MenuItem struct {
	Label    string
	Route    string
	Icon     string
	Parent   string
	Position int
}

// Config wires an admin page into a go-admin style shell.
type Config struct {
	EnableWidgets bool
	MenuCode      string
	MenuBuilder   MenuBuilder
	Page          *widgetspkg.AdminPage
	RoutePrefix   string
	Icons         map[string]string
}

// Admin exposes helpers for go-admin style applications.
type Admin struct {
	cfg Config
}

// New creates an Admin helper that can seed the translated sidebar.
func New(cfg Config) (*Admin, error) {
	if cfg.EnableWidgets && cfg.Page == nil {
		return nil, errors.New("goadmin: admin page is required when enabled")
	}
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	if cfg.RoutePrefix == "" {
		cfg.RoutePrefix = "admin."
	}
	if cfg.Icons == nil {
		cfg.Icons = defaultIcons
	}
	return &Admin{cfg: cfg}, nil
}

// Page exposes the configured admin page when enabled.
func (a *Admin) Page() *widgetspkg.AdminPage {
	if !a.cfg.EnableWidgets {
		return nil
	}
	return a.cfg.Page
}

// Bootstrap seeds one menu entry per sidebar item, labelled in the page's
// current language. Brand entries are skipped.
func (a *Admin) Bootstrap(ctx context.Context) error {
	if !a.cfg.EnableWidgets || a.cfg.MenuBuilder == nil {
		return nil
	}
	shell := a.cfg.Page.Shell
	position := 0
	var seed func(items []widgetspkg.NavItem, parent string) error
	seed = func(items []widgetspkg.NavItem, parent string) error {
		for _, item := range items {
			if item.Brand {
				continue
			}
			label, _ := shell.Label(item.ID)
			route := a.cfg.RoutePrefix + item.Key
			entry := MenuItem{
				Label:    label,
				Route:    route,
				Icon:     a.cfg.Icons[item.Key],
				Parent:   parent,
				Position: position,
			}
			position++
			if err := a.cfg.MenuBuilder.EnsureMenuItem(ctx, a.cfg.MenuCode, entry); err != nil {
				return fmt.Errorf("goadmin: ensure menu item %s: %w", item.ID, err)
			}
			if err := seed(item.Children, route); err != nil {
				return err
			}
		}
		return nil
	}
	return seed(shell.NavItems(), "")
}

var defaultIcons = map[string]string{
	"dashboard":  "bx-home",
	"products":   "bx-cube",
	"orders":     "bx-package",
	"categories": "bx-category",
	"customers":  "bx-user",
	"reports":    "bx-bar-chart",
	"settings":   "bx-cog",
}
