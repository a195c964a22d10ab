package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"

	widgets "github.com/goliatone/go-admin-widgets/components/widgets"
	"github.com/goliatone/go-admin-widgets/components/widgets/queries"
	"github.com/goliatone/go-admin-widgets/components/widgets/tui"
)

type globals struct {
	Config    string `type:"path" short:"c" env:"WIDGETCTL_CONFIG" help:"Widget config file (YAML or JSON)."`
	PrefsFile string `name:"prefs-file" type:"path" default:"~/.config/widgetctl/preferences.toml" env:"WIDGETCTL_PREFS" help:"Preference store file."`
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"warn" env:"WIDGETCTL_LOG_LEVEL" help:"Log level (debug, info, warn, error)."`

	out    io.Writer
	logger *slog.Logger
}

type cli struct {
	globals `embed:""`

	Search searchCmd `cmd:"" help:"Run a one-shot search over the configured records."`
	Page   pageCmd   `cmd:"" help:"Print one page of the configured records."`
	Prefs  prefsCmd  `cmd:"" help:"Read or write saved preferences."`
	Init   initCmd   `cmd:"" help:"Write a sample widget config file."`
	Browse browseCmd `cmd:"" help:"Browse the admin widgets in the terminal."`
}

type searchCmd struct {
	Query  string `arg:"" help:"Search text."`
	Filter string `default:"all" help:"Category filter."`
	JSON   bool   `name:"json" help:"Print results as JSON."`
}

type pageCmd struct {
	Number int  `arg:"" optional:"" default:"1" help:"Page number (clamped to the valid range)."`
	Size   int  `help:"Items per page (defaults to the config value)."`
	JSON   bool `name:"json" help:"Print the page as JSON."`
}

type prefsCmd struct {
	Get  prefsGetCmd  `cmd:"" help:"Print a preference."`
	Set  prefsSetCmd  `cmd:"" help:"Store a preference."`
	List prefsListCmd `cmd:"" default:"1" help:"Print every preference."`
}

type prefsGetCmd struct {
	Key string `arg:"" help:"Preference key (language, primaryColor)."`
}

type prefsSetCmd struct {
	Key   string `arg:"" help:"Preference key (language, primaryColor)."`
	Value string `arg:"" help:"Preference value."`
}

type prefsListCmd struct{}

type initCmd struct {
	Path      string `arg:"" type:"path" help:"Destination config file."`
	Overwrite bool   `help:"Replace an existing file."`
}

type browseCmd struct {
	NoColor bool `name:"no-color" env:"NO_COLOR" help:"Disable colors."`
}

func main() {
	app := &cli{}
	ctx := kong.Parse(app,
		kong.Name("widgetctl"),
		kong.Description("Admin widget toolkit: search, paginate and browse widget data."),
		kong.UsageOnError(),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
	)
	app.out = os.Stdout
	app.logger = newLogger(app.LogLevel)
	ctx.Bind(&app.globals)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func (g *globals) loadConfig() (*widgets.Config, error) {
	if g.Config == "" {
		return &widgets.Config{Version: widgets.ConfigVersion, Language: widgets.LanguageArabic}, nil
	}
	cfg, err := widgets.LoadConfig(g.Config)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("config loaded", "path", cfg.Source, "records", len(cfg.Records))
	return cfg, nil
}

func (g *globals) newPage(opts widgets.PageOptions) (*widgets.AdminPage, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	opts.Config = cfg
	if opts.Telemetry == nil {
		opts.Telemetry = widgets.NewSlogTelemetry(g.logger)
	}
	return widgets.NewAdminPage(opts), nil
}

func (cmd *searchCmd) Run(ctx context.Context, g *globals) error {
	page, err := g.newPage(widgets.PageOptions{})
	if err != nil {
		return err
	}
	records, err := queries.NewSearchQuery(page.Search).Query(ctx, queries.SearchInput{
		Query:  cmd.Query,
		Filter: cmd.Filter,
	})
	if err != nil {
		return err
	}
	if cmd.JSON {
		return writeJSON(g.out, records)
	}
	if len(records) == 0 {
		fmt.Fprintf(g.out, "No results found for %q\n", cmd.Query)
		return nil
	}
	var current string
	for _, record := range records {
		if group := record.GroupKey(); group != current {
			current = group
			fmt.Fprintf(g.out, "%s\n", strcase.ToPascal(group))
		}
		fmt.Fprintf(g.out, "  %-20s %s\n", record.Title, record.Description)
	}
	return nil
}

func (cmd *pageCmd) Run(g *globals) error {
	page, err := g.newPage(widgets.PageOptions{})
	if err != nil {
		return err
	}
	if cmd.Size > 0 {
		page.Records.SetPageSize(cmd.Size)
	}
	page.Records.GoToPage(widgets.PageNumber(cmd.Number))
	view := page.Records.View()
	data := page.Records.CurrentPageData()
	if cmd.JSON {
		return writeJSON(g.out, map[string]any{"pagination": view, "records": data})
	}
	for _, record := range data {
		fmt.Fprintf(g.out, "%-20s %-10s %s\n", record.Title, record.GroupKey(), record.Description)
	}
	fmt.Fprintf(g.out, "%s (page %d of %d)\n", view.Info, view.CurrentPage, view.TotalPages)
	return nil
}

func (g *globals) store() *widgets.FilePreferenceStore {
	return widgets.NewFilePreferenceStore(g.PrefsFile)
}

func (cmd *prefsGetCmd) Run(ctx context.Context, g *globals) error {
	value, ok, err := g.store().Get(ctx, cmd.Key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("widgetctl: preference %s is not set", cmd.Key)
	}
	fmt.Fprintln(g.out, value)
	return nil
}

func (cmd *prefsSetCmd) Run(ctx context.Context, g *globals) error {
	// route known keys through the shell so they are validated like UI changes
	shell := widgets.NewShell(widgets.ShellConfig{Store: g.store(), Telemetry: widgets.NewSlogTelemetry(g.logger)})
	switch cmd.Key {
	case widgets.PreferenceLanguage:
		return shell.SetLanguage(ctx, cmd.Value)
	case widgets.PreferencePrimaryColor:
		return shell.ChangeColor(ctx, cmd.Value)
	}
	return g.store().Set(ctx, cmd.Key, cmd.Value)
}

func (cmd *prefsListCmd) Run(ctx context.Context, g *globals) error {
	prefs, err := g.store().All(ctx)
	if err != nil {
		return err
	}
	return yaml.NewEncoder(g.out).Encode(prefs)
}

func (cmd *initCmd) Run(g *globals) error {
	if _, err := os.Stat(cmd.Path); err == nil && !cmd.Overwrite {
		return fmt.Errorf("widgetctl: %s already exists (use --overwrite to replace)", cmd.Path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("widgetctl: stat config: %w", err)
	}
	doc := widgets.Config{
		Version:  widgets.ConfigVersion,
		Language: widgets.LanguageArabic,
		Pagination: widgets.PaginatorOptions{
			ItemsPerPage: 10,
		},
		Search: widgets.SearchConfig{
			MinCharacters: 2,
			MaxResults:    10,
			Filters:       []string{"pages", "users", "products", "orders"},
		},
		Palette: widgets.DefaultPalette,
		Records: widgets.DefaultSearchRecords(),
	}
	if err := writeConfig(cmd.Path, doc); err != nil {
		return err
	}
	fmt.Fprintf(g.out, "✓ Wrote %s with %d records\n", cmd.Path, len(doc.Records))
	return nil
}

func writeConfig(path string, doc widgets.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("widgetctl: mkdir %s: %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return fmt.Errorf("widgetctl: create config %s: %w", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	defer encoder.Close()
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("widgetctl: write config: %w", err)
	}
	return nil
}

func (cmd *browseCmd) Run(ctx context.Context, g *globals) error {
	scheduler := tui.NewProgramScheduler()
	page, err := g.newPage(widgets.PageOptions{
		Store:     g.store(),
		Scheduler: scheduler,
	})
	if err != nil {
		return err
	}
	if err := page.Restore(ctx); err != nil {
		g.logger.Warn("restore preferences", "error", err)
	}
	model := tui.NewModel(page)
	if cmd.NoColor {
		model = model.WithStyles(tui.NoColorStyles())
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	scheduler.Attach(program)
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("widgetctl: browse: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, payload any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
