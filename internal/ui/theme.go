package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentAlt  lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Danger     lipgloss.Color
}

var palettes = map[string]palette{
	"modern-blue": {
		Background: lipgloss.Color("#0f172a"),
		Surface:    lipgloss.Color("#1e293b"),
		Text:       lipgloss.Color("#e2e8f0"),
		Muted:      lipgloss.Color("#94a3b8"),
		Accent:     lipgloss.Color("#3b82f6"),
		AccentAlt:  lipgloss.Color("#60a5fa"),
		Border:     lipgloss.Color("#334155"),
		Success:    lipgloss.Color("#34d399"),
		Warning:    lipgloss.Color("#fbbf24"),
		Danger:     lipgloss.Color("#f87171"),
	},
	"warm-terracotta": {
		Background: lipgloss.Color("#292018"),
		Surface:    lipgloss.Color("#3a2d21"),
		Text:       lipgloss.Color("#f5e9dc"),
		Muted:      lipgloss.Color("#b8a28c"),
		Accent:     lipgloss.Color("#e07a5f"),
		AccentAlt:  lipgloss.Color("#f2cc8f"),
		Border:     lipgloss.Color("#564433"),
		Success:    lipgloss.Color("#81b29a"),
		Warning:    lipgloss.Color("#f2cc8f"),
		Danger:     lipgloss.Color("#e07a5f"),
	},
	"forest-green": {
		Background: lipgloss.Color("#14211a"),
		Surface:    lipgloss.Color("#1e3328"),
		Text:       lipgloss.Color("#e3efe7"),
		Muted:      lipgloss.Color("#8faf9c"),
		Accent:     lipgloss.Color("#4ade80"),
		AccentAlt:  lipgloss.Color("#a3e635"),
		Border:     lipgloss.Color("#2e4a3a"),
		Success:    lipgloss.Color("#4ade80"),
		Warning:    lipgloss.Color("#facc15"),
		Danger:     lipgloss.Color("#fb7185"),
	},
	"elegant-dark": {
		Background: lipgloss.Color("#18181b"),
		Surface:    lipgloss.Color("#27272a"),
		Text:       lipgloss.Color("#fafafa"),
		Muted:      lipgloss.Color("#a1a1aa"),
		Accent:     lipgloss.Color("#c084fc"),
		AccentAlt:  lipgloss.Color("#e879f9"),
		Border:     lipgloss.Color("#3f3f46"),
		Success:    lipgloss.Color("#86efac"),
		Warning:    lipgloss.Color("#fde047"),
		Danger:     lipgloss.Color("#fda4af"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["modern-blue"]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}
