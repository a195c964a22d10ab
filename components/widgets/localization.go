package widgets

import (
	"context"
	"strings"

	"github.com/ettle/strcase"
)

// Supported page languages.
const (
	LanguageArabic  = "ar"
	LanguageEnglish = "en"
)

// TranslationService exposes locale-aware translation helpers. Hosts with a
// real i18n engine plug it in; the built-in tables are the fallback.
type TranslationService interface {
	Translate(ctx context.Context, key, locale string, args map[string]any) (string, error)
}

// Translations maps locale to translation key to text.
type Translations map[string]map[string]string

// DefaultTranslations returns the Arabic and English labels of the admin shell.
func DefaultTranslations() Translations {
	return Translations{
		LanguageArabic: {
			"search":     "بحث",
			"dashboard":  "لوحة التحكم",
			"products":   "المنتجات",
			"orders":     "الطلبيات",
			"categories": "الاقسام",
			"packages":   "البكجات",
			"offers":     "العروض",
			"customers":  "الزبائن",
			"admins":     "المسؤولين",
			"warehouse":  "المخزن",
			"returns":    "المرجوع",
			"damaged":    "التلف",
			"reports":    "التقارير",
			"components": "العناصر",
			"forms":      "النماذج",
			"settings":   "الاعدادات",
			"profits":    "الارباح",
		},
		LanguageEnglish: {
			"search":     "Search",
			"dashboard":  "Dashboard",
			"products":   "Products",
			"orders":     "Orders",
			"categories": "Categories",
			"packages":   "Packages",
			"offers":     "Offers",
			"customers":  "Customers",
			"admins":     "Admins",
			"warehouse":  "Warehouse",
			"returns":    "Returns",
			"damaged":    "Damaged",
			"reports":    "Reports",
			"components": "Components",
			"forms":      "Forms",
			"settings":   "Settings",
			"profits":    "Profits",
		},
	}
}

// Lookup resolves key for locale, falling back from a region locale (ar-iq)
// to its base language and then to the "default" table.
func (t Translations) Lookup(locale, key string) (string, bool) {
	key = TranslationKey(key)
	for _, candidate := range localeCandidates(locale) {
		for name, table := range t {
			if !strings.EqualFold(name, candidate) {
				continue
			}
			if value := table[key]; value != "" {
				return value, true
			}
		}
	}
	return "", false
}

// TranslationKey normalizes labels and ids ("Order Items", "orderItems") to
// the snake_case keys of the tables.
func TranslationKey(key string) string {
	return strcase.ToSnake(strings.TrimSpace(key))
}

// ResolveLocalizedValue selects the best value for locale from a per-locale
// map and falls back to the supplied value.
func ResolveLocalizedValue(values map[string]string, locale, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	for _, candidate := range localeCandidates(locale) {
		for key, value := range values {
			if strings.EqualFold(key, candidate) && value != "" {
				return value
			}
		}
	}
	return fallback
}

func localeCandidates(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return []string{"default"}
	}
	candidates := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		candidates = append(candidates, locale[:idx])
	}
	return append(candidates, "default")
}

func normalizeLocale(locale string) string {
	return strings.TrimSpace(strings.ToLower(locale))
}

func translateOrFallback(ctx context.Context, svc TranslationService, tables Translations, key, locale string) string {
	if svc != nil {
		if translated, err := svc.Translate(ctx, key, locale, nil); err == nil && translated != "" {
			return translated
		}
	}
	if value, ok := tables.Lookup(locale, key); ok {
		return value
	}
	return key
}
