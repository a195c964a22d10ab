package widgets

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnsupportedLanguage is returned for languages other than ar and en.
var ErrUnsupportedLanguage = errors.New("widgets: unsupported language")

// Region names the part of the page a click landed in.
type Region string

const (
	RegionElsewhere   Region = ""
	RegionColorPicker Region = "color-picker"
	RegionUserMenu    Region = "user-menu"
)

var languageLabels = map[string]string{
	LanguageArabic:  "العربية",
	LanguageEnglish: "English",
}

// NavItem is a sidebar entry. Brand entries keep their text in every
// language. Children form a nested submenu opened by the parent's ID.
type NavItem struct {
	ID       string    `json:"id" yaml:"id"`
	Key      string    `json:"key" yaml:"key"`
	Brand    bool      `json:"brand,omitempty" yaml:"brand,omitempty"`
	Text     string    `json:"text,omitempty" yaml:"text,omitempty"`
	Href     string    `json:"href,omitempty" yaml:"href,omitempty"`
	Children []NavItem `json:"children,omitempty" yaml:"children,omitempty"`
}

// Card is a summary card whose name is translated.
type Card struct {
	ID  string `json:"id" yaml:"id"`
	Key string `json:"key" yaml:"key"`
}

// PlaceholderTarget receives the translated search placeholder.
type PlaceholderTarget interface {
	SetPlaceholder(text string)
}

// DefaultNavItems mirrors the admin sidebar.
func DefaultNavItems() []NavItem {
	keys := []string{
		"dashboard", "products", "orders", "categories", "packages", "offers",
		"customers", "admins", "warehouse", "returns", "damaged", "reports",
		"components", "forms", "settings",
	}
	items := []NavItem{{ID: "nav-brand", Brand: true, Text: "Brand"}}
	for _, key := range keys {
		items = append(items, NavItem{ID: "nav-" + key, Key: key})
	}
	return items
}

// DefaultCards mirrors the dashboard summary cards.
func DefaultCards() []Card {
	return []Card{
		{ID: "card-products", Key: "products"},
		{ID: "card-categories", Key: "categories"},
		{ID: "card-orders", Key: "orders"},
		{ID: "card-profits", Key: "profits"},
	}
}

// ShellConfig wires a Shell.
type ShellConfig struct {
	Store        PreferenceStore
	Translations Translations
	Translator   TranslationService
	NavItems     []NavItem
	Cards        []Card
	Palette      []string
	Theme        Theme
	// Placeholders receive the search placeholder on every language change.
	Placeholders []PlaceholderTarget
	Telemetry    Telemetry
}

// ShellState is a snapshot of the page chrome.
type ShellState struct {
	SidebarOpen       bool              `json:"sidebar_open"`
	ToggleIcon        string            `json:"toggle_icon"`
	UserMenuOpen      bool              `json:"user_menu_open"`
	OpenSubmenus      []string          `json:"open_submenus"`
	PaletteOpen       bool              `json:"palette_open"`
	Language          string            `json:"lang"`
	Dir               string            `json:"dir"`
	LanguageLabel     string            `json:"language_label"`
	PrimaryColor      string            `json:"primary_color"`
	ActiveSwatch      string            `json:"active_swatch"`
	Palette           []string          `json:"palette"`
	Style             string            `json:"style"`
	Labels            map[string]string `json:"labels"`
	SearchPlaceholder string            `json:"search_placeholder"`
}

// Shell is the page-level glue: sidebar, user menu, nested submenus, color
// palette and the ar/en language switch. Language and color are persisted to
// the preference store.
type Shell struct {
	store        PreferenceStore
	translations Translations
	translator   TranslationService
	navItems     []NavItem
	cards        []Card
	palette      []string
	placeholders []PlaceholderTarget
	telemetry    Telemetry

	mu           sync.Mutex
	sidebarOpen  bool
	userMenuOpen bool
	submenus     map[string]bool
	paletteOpen  bool
	language     string
	theme        Theme
	labels       map[string]string
	placeholder  string
}

// NewShell builds a shell in Arabic with the sidebar collapsed.
func NewShell(cfg ShellConfig) *Shell {
	translations := cfg.Translations
	if len(translations) == 0 {
		translations = DefaultTranslations()
	}
	navItems := cfg.NavItems
	if navItems == nil {
		navItems = DefaultNavItems()
	}
	cards := cfg.Cards
	if cards == nil {
		cards = DefaultCards()
	}
	palette := cfg.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	s := &Shell{
		store:        cfg.Store,
		translations: translations,
		translator:   cfg.Translator,
		navItems:     navItems,
		cards:        cards,
		palette:      append([]string(nil), palette...),
		placeholders: cfg.Placeholders,
		telemetry:    normalizeTelemetry(cfg.Telemetry),
		submenus:     map[string]bool{},
		language:     LanguageArabic,
		theme:        cfg.Theme.clone(),
	}
	s.applyLanguage(context.Background(), LanguageArabic)
	return s
}

// AddPlaceholderTarget registers another input that follows the language.
func (s *Shell) AddPlaceholderTarget(target PlaceholderTarget) {
	if target == nil {
		return
	}
	s.mu.Lock()
	s.placeholders = append(s.placeholders, target)
	placeholder := s.placeholder
	s.mu.Unlock()
	target.SetPlaceholder(placeholder)
}

// ToggleSidebar expands or collapses the sidebar.
func (s *Shell) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
	return s.sidebarOpen
}

// ToggleUserMenu opens or closes the user dropdown.
func (s *Shell) ToggleUserMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userMenuOpen = !s.userMenuOpen
	return s.userMenuOpen
}

// ToggleSubmenu opens or closes the nested menu of the nav item with id.
// Unknown ids and items without children report false.
func (s *Shell) ToggleSubmenu(id string) (open bool, ok bool) {
	if !hasSubmenu(s.navItems, id) {
		return false, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submenus[id] {
		delete(s.submenus, id)
		return false, true
	}
	s.submenus[id] = true
	return true, true
}

// TogglePalette opens or closes the color palette.
func (s *Shell) TogglePalette() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paletteOpen = !s.paletteOpen
	return s.paletteOpen
}

// HandleClick closes the palette and user menu unless the click landed inside
// them.
func (s *Shell) HandleClick(region Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if region != RegionColorPicker {
		s.paletteOpen = false
	}
	if region != RegionUserMenu {
		s.userMenuOpen = false
	}
}

// Language returns the active language.
func (s *Shell) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// ToggleLanguage switches between Arabic and English and persists the choice.
func (s *Shell) ToggleLanguage(ctx context.Context) error {
	next := LanguageEnglish
	if s.Language() == LanguageEnglish {
		next = LanguageArabic
	}
	return s.SetLanguage(ctx, next)
}

// SetLanguage applies lang and persists it. The page switches even when the
// store fails; the store error is returned.
func (s *Shell) SetLanguage(ctx context.Context, lang string) error {
	lang = normalizeLocale(lang)
	if lang != LanguageArabic && lang != LanguageEnglish {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	s.applyLanguage(ctx, lang)
	s.telemetry.Record(ctx, "widgets.shell.language", map[string]any{"lang": lang})
	return s.persist(ctx, PreferenceLanguage, lang)
}

// ChangeColor sets the primary color, marks its swatch active, closes the
// palette and persists the color.
func (s *Shell) ChangeColor(ctx context.Context, color string) error {
	color = strings.TrimSpace(color)
	if color == "" {
		return errors.New("widgets: color required")
	}
	s.mu.Lock()
	s.theme.Set(PrimaryColorToken, color)
	s.paletteOpen = false
	s.mu.Unlock()
	s.telemetry.Record(ctx, "widgets.shell.color", map[string]any{"color": color})
	return s.persist(ctx, PreferencePrimaryColor, color)
}

// Restore re-applies the saved language and color.
func (s *Shell) Restore(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	var errs []error
	lang, ok, err := s.store.Get(ctx, PreferenceLanguage)
	if err != nil {
		errs = append(errs, fmt.Errorf("widgets: restore language: %w", err))
	} else if ok && lang != "" && lang != s.Language() {
		if err := s.SetLanguage(ctx, lang); err != nil {
			errs = append(errs, err)
		}
	}
	color, ok, err := s.store.Get(ctx, PreferencePrimaryColor)
	if err != nil {
		errs = append(errs, fmt.Errorf("widgets: restore color: %w", err))
	} else if ok && color != "" {
		if err := s.ChangeColor(ctx, color); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Label returns the current text of a nav item or card by id.
func (s *Shell) Label(id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	label, ok := s.labels[id]
	return label, ok
}

// NavItems returns the configured sidebar entries.
func (s *Shell) NavItems() []NavItem {
	return append([]NavItem(nil), s.navItems...)
}

// State returns a snapshot of the page chrome.
func (s *Shell) State() ShellState {
	s.mu.Lock()
	defer s.mu.Unlock()
	open := make([]string, 0, len(s.submenus))
	for id := range s.submenus {
		open = append(open, id)
	}
	sort.Strings(open)
	labels := make(map[string]string, len(s.labels))
	for id, label := range s.labels {
		labels[id] = label
	}
	color := s.theme.Tokens[PrimaryColorToken]
	icon := "menu"
	if s.sidebarOpen {
		icon = "close"
	}
	return ShellState{
		SidebarOpen:       s.sidebarOpen,
		ToggleIcon:        icon,
		UserMenuOpen:      s.userMenuOpen,
		OpenSubmenus:      open,
		PaletteOpen:       s.paletteOpen,
		Language:          s.language,
		Dir:               directionFor(s.language),
		LanguageLabel:     languageLabels[s.language],
		PrimaryColor:      color,
		ActiveSwatch:      activeSwatch(s.palette, color),
		Palette:           append([]string(nil), s.palette...),
		Style:             s.theme.CSSVariablesInline(),
		Labels:            labels,
		SearchPlaceholder: s.placeholder,
	}
}

func (s *Shell) applyLanguage(ctx context.Context, lang string) {
	labels := make(map[string]string)
	var walk func(items []NavItem)
	walk = func(items []NavItem) {
		for _, item := range items {
			switch {
			case item.Brand:
				labels[item.ID] = item.Text
			case item.Key != "":
				labels[item.ID] = translateOrFallback(ctx, s.translator, s.translations, item.Key, lang)
			}
			walk(item.Children)
		}
	}
	walk(s.navItems)
	for _, card := range s.cards {
		labels[card.ID] = translateOrFallback(ctx, s.translator, s.translations, card.Key, lang)
	}
	placeholder := translateOrFallback(ctx, s.translator, s.translations, "search", lang)

	s.mu.Lock()
	s.language = lang
	s.labels = labels
	s.placeholder = placeholder
	targets := append([]PlaceholderTarget(nil), s.placeholders...)
	s.mu.Unlock()

	for _, target := range targets {
		if target != nil {
			target.SetPlaceholder(placeholder)
		}
	}
}

func (s *Shell) persist(ctx context.Context, key, value string) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Set(ctx, key, value); err != nil {
		s.telemetry.Record(ctx, "widgets.shell.persist_error", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return fmt.Errorf("widgets: persist %s: %w", key, err)
	}
	return nil
}

func directionFor(lang string) string {
	if lang == LanguageArabic {
		return "rtl"
	}
	return "ltr"
}

func activeSwatch(palette []string, color string) string {
	for _, swatch := range palette {
		if strings.EqualFold(swatch, color) {
			return swatch
		}
	}
	return ""
}

func hasSubmenu(items []NavItem, id string) bool {
	for _, item := range items {
		if item.ID == id {
			return len(item.Children) > 0
		}
		if hasSubmenu(item.Children, id) {
			return true
		}
	}
	return false
}
