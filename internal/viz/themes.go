package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI and the surface height ramp.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Marker    lipgloss.Color
	Arrow     lipgloss.Color
	Axes      lipgloss.Color
	// Ramp colors the surface from the lowest band to the highest.
	Ramp [SurfaceBands]lipgloss.Color
}

// Available themes
var (
	ThemeViridis = Theme{
		Name:      "viridis",
		Primary:   lipgloss.Color("#21918c"),
		Secondary: lipgloss.Color("#5ec962"),
		Accent:    lipgloss.Color("#fde725"),
		Text:      lipgloss.Color("#f0f0f0"),
		Muted:     lipgloss.Color("#6b6b80"),
		Success:   lipgloss.Color("#5ec962"),
		Warning:   lipgloss.Color("#fde725"),
		Error:     lipgloss.Color("#ff4444"),
		Marker:    lipgloss.Color("#ff2020"),
		Arrow:     lipgloss.Color("#ff2020"),
		Axes:      lipgloss.Color("#555566"),
		Ramp: [SurfaceBands]lipgloss.Color{
			"#440154", "#46327e", "#365c8d", "#277f8e",
			"#1fa187", "#4ac16d", "#a0da39", "#fde725",
		},
	}

	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"), // Magenta
		Secondary: lipgloss.Color("#00ffff"), // Cyan
		Accent:    lipgloss.Color("#ffff00"), // Yellow
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
		Error:     lipgloss.Color("#ff0000"),
		Marker:    lipgloss.Color("#ffff00"),
		Arrow:     lipgloss.Color("#ff3030"),
		Axes:      lipgloss.Color("#444466"),
		Ramp: [SurfaceBands]lipgloss.Color{
			"#3300aa", "#5500cc", "#8800dd", "#bb00ee",
			"#ff00ff", "#cc44ff", "#6699ff", "#00ffff",
		},
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
		Marker:    lipgloss.Color("#ffff00"),
		Arrow:     lipgloss.Color("#ffff00"),
		Axes:      lipgloss.Color("#004400"),
		Ramp: [SurfaceBands]lipgloss.Color{
			"#003300", "#004d00", "#006600", "#008000",
			"#00a000", "#00c000", "#00e000", "#88ff88",
		},
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
		Marker:    lipgloss.Color("#ff0000"),
		Arrow:     lipgloss.Color("#ff0000"),
		Axes:      lipgloss.Color("#444444"),
		Ramp: [SurfaceBands]lipgloss.Color{
			"#4a4a4a", "#5e5e5e", "#727272", "#878787",
			"#9c9c9c", "#b2b2b2", "#c8c8c8", "#e0e0e0",
		},
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
		Marker:    lipgloss.Color("#ffd700"),
		Arrow:     lipgloss.Color("#ff5555"),
		Axes:      lipgloss.Color("#224466"),
		Ramp: [SurfaceBands]lipgloss.Color{
			"#001f3f", "#003366", "#004c8c", "#0066b2",
			"#0080c8", "#2a9fd6", "#66c2e5", "#b3e5fc",
		},
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
		Error:     lipgloss.Color("#ff4757"),
		Marker:    lipgloss.Color("#ffffff"),
		Arrow:     lipgloss.Color("#00e5ff"),
		Axes:      lipgloss.Color("#5a3b5c"),
		Ramp: [SurfaceBands]lipgloss.Color{
			"#0d0887", "#5302a3", "#8b0aa5", "#b83289",
			"#db5c68", "#f48849", "#febd2a", "#f0f921",
		},
	}

	// All available themes
	Themes = []Theme{
		ThemeViridis,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to viridis.
func GetTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return ThemeViridis, false
}

// NextTheme returns the theme after name in the cycle.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// LayerColor is the foreground color of a canvas layer. LayerNone has no
// color and reports false.
func (t Theme) LayerColor(l Layer) (lipgloss.Color, bool) {
	switch l {
	case LayerNone:
		return "", false
	case LayerAxes:
		return t.Axes, true
	case LayerMarker:
		return t.Marker, true
	case LayerArrow:
		return t.Arrow, true
	}
	b := l.Band()
	if b >= SurfaceBands {
		b = SurfaceBands - 1
	}
	return t.Ramp[b], true
}

// LayerStyle is the lipgloss style for a canvas layer.
func (t Theme) LayerStyle(l Layer) lipgloss.Style {
	c, ok := t.LayerColor(l)
	if !ok {
		return lipgloss.NewStyle()
	}
	style := lipgloss.NewStyle().Foreground(c)
	if l.Overlay() {
		style = style.Bold(true)
	}
	return style
}
