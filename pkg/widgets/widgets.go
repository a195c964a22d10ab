package widgets

import (
	core "github.com/goliatone/go-admin-widgets/components/widgets"
)

// AdminPage exposes the underlying components/widgets.AdminPage type.
type AdminPage = core.AdminPage

// PageOptions re-export for convenience.
type PageOptions = core.PageOptions

// Config re-export for convenience.
type Config = core.Config

// NavItem re-export for sidebar integrations.
type NavItem = core.NavItem

// NewAdminPage proxies to the internal constructor.
func NewAdminPage(opts PageOptions) *AdminPage {
	return core.NewAdminPage(opts)
}

// LoadConfig proxies to the internal config loader.
func LoadConfig(path string) (*Config, error) {
	return core.LoadConfig(path)
}
