package widgets

import (
	"sort"
	"strings"
)

// PrimaryColorToken is the theme token the color palette writes.
const PrimaryColorToken = "color-primary"

// DefaultPalette lists the swatches of the color picker.
var DefaultPalette = []string{"#2a2185", "#0d6efd", "#198754", "#dc3545", "#fd7e14", "#6f42c1"}

// Theme carries design tokens applied to the document root.
type Theme struct {
	Tokens map[string]string `json:"tokens,omitempty" yaml:"tokens,omitempty"`
}

// Set assigns a token value.
func (theme *Theme) Set(token, value string) {
	if theme.Tokens == nil {
		theme.Tokens = map[string]string{}
	}
	theme.Tokens[strings.TrimPrefix(strings.TrimSpace(token), "--")] = value
}

// CSSVariables normalizes token keys into CSS variable names.
func (theme Theme) CSSVariables() map[string]string {
	if len(theme.Tokens) == 0 {
		return nil
	}
	vars := make(map[string]string, len(theme.Tokens))
	for key, value := range theme.Tokens {
		name := normalizeCSSVariable(key)
		if name == "" {
			continue
		}
		vars[name] = value
	}
	return vars
}

// CSSVariablesInline renders the CSS variables as a style attribute value,
// sorted by name.
func (theme Theme) CSSVariablesInline() string {
	vars := theme.CSSVariables()
	if len(vars) == 0 {
		return ""
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	var builder strings.Builder
	for _, name := range names {
		value := vars[name]
		if value == "" {
			continue
		}
		builder.WriteString(name)
		builder.WriteString(": ")
		builder.WriteString(value)
		builder.WriteString("; ")
	}
	return strings.TrimSpace(builder.String())
}

func (theme Theme) clone() Theme {
	out := Theme{}
	if len(theme.Tokens) > 0 {
		out.Tokens = make(map[string]string, len(theme.Tokens))
		for key, value := range theme.Tokens {
			out.Tokens[key] = value
		}
	}
	return out
}

func normalizeCSSVariable(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}
