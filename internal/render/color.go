package render

import (
	"fmt"
	"strings"
)

// Default accent pair for the creative sidebar gradient.
const (
	DefaultSidebarColor = "#243e36"
	DefaultSidebarLight = "#7ca982"
)

// LighterShade derives the secondary accent used for gradients and chip
// backgrounds. It is a pure function of the input color so repeated renders
// produce the same pair. The default color maps to its hand-picked partner;
// any other color gets a half-transparent variant of itself.
func LighterShade(hex string) string {
	h := normalizeHex(hex)
	if h == "" || h == DefaultSidebarColor {
		return DefaultSidebarLight
	}
	return h + "80"
}

// normalizeHex lowercases a color and ensures a leading '#'. Inputs that do
// not look like a 6-digit hex color are returned empty so callers fall back
// to the default pair.
func normalizeHex(hex string) string {
	h := strings.ToLower(strings.TrimSpace(hex))
	h = strings.TrimPrefix(h, "#")
	if len(h) != 6 {
		return ""
	}
	for _, r := range h {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return ""
		}
	}
	return "#" + h
}

// HexRGB converts "#rrggbb" (optionally with a trailing alpha byte, which
// is ignored) to 8-bit channels. Unparseable input comes back black.
func HexRGB(hex string) (r, g, b int) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) >= 6 {
		h = h[:6]
		if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err == nil {
			return r, g, b
		}
	}
	return 0, 0, 0
}

// themeFor resolves the accent pair for a template. Only creative consumes
// the sidebar color option; the other styles carry fixed palettes.
func themeFor(t Template, opts Options) Theme {
	switch t {
	case TemplateCreative:
		accent := normalizeHex(opts.SidebarColor)
		if accent == "" {
			accent = DefaultSidebarColor
		}
		return Theme{Accent: accent, AccentLight: LighterShade(accent)}
	case TemplateClassic:
		return Theme{Accent: "#1a1a1a", AccentLight: "#e5e5e5"}
	case TemplateMinimal:
		return Theme{Accent: "#232323", AccentLight: "#f5f5f5"}
	default: // modern
		return Theme{Accent: "#243e36", AccentLight: "#f1f7ed"}
	}
}
