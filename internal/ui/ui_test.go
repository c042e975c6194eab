package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ricettario/internal/catalog"
	"ricettario/internal/i18n"
)

func TestNextThemeNameCyclesAllPalettes(t *testing.T) {
	seen := map[string]bool{}
	name := "modern-blue"
	for range palettes {
		seen[name] = true
		name = nextThemeName(name, 1)
	}
	require.Len(t, seen, len(palettes))
	require.Equal(t, "modern-blue", name, "cycle wraps back to the start")
}

func TestPaletteForUnknownFallsBackToDefault(t *testing.T) {
	require.Equal(t, palettes["modern-blue"], paletteFor("nope"))
}

func TestRecipeMarkdown(t *testing.T) {
	rec := catalog.Recipe{
		Title:       "Carbonara",
		Description: "Un classico romano",
		Category:    "primo",
		TimeMinutes: 25,
		Difficulty:  "media",
		Calories:    550,
		Ingredients: []catalog.Ingredient{
			{Item: "spaghetti", Quantity: "320g"},
			{Item: "guanciale", Quantity: "150g"},
		},
		Steps: []catalog.Step{
			{Number: 1, Text: "Rosolare il guanciale"},
			{Number: 2, Text: "Mantecare fuori dal fuoco"},
		},
		Notes: "Niente panna",
	}
	md := recipeMarkdown(rec, i18n.New("it"))
	require.Contains(t, md, "# Carbonara")
	require.Contains(t, md, "- 320g spaghetti")
	require.Contains(t, md, "2. Mantecare fuori dal fuoco")
	require.Contains(t, md, "25 minuti")
	require.Contains(t, md, "550 calorie")
	require.Contains(t, md, "Niente panna")
}

func TestParseIngredientsRoundTrip(t *testing.T) {
	in := "spaghetti:320g; sale; pepe:q.b."
	ings := parseIngredients(in)
	require.Equal(t, []catalog.Ingredient{
		{Item: "spaghetti", Quantity: "320g"},
		{Item: "sale"},
		{Item: "pepe", Quantity: "q.b."},
	}, ings)
	require.Equal(t, in, formatIngredients(ings))
}

func TestParseStepsNumbersInOrder(t *testing.T) {
	steps := parseSteps("prima; ; seconda")
	require.Equal(t, []catalog.Step{
		{Number: 1, Text: "prima"},
		{Number: 2, Text: "seconda"},
	}, steps)
	require.Equal(t, "prima; seconda", formatSteps(steps))
}

func TestCycleValue(t *testing.T) {
	require.Equal(t, "media", cycleValue(catalog.Difficulties, "facile", 1))
	require.Equal(t, "difficile", cycleValue(catalog.Difficulties, "facile", -1))
	require.Equal(t, catalog.Difficulties[1], cycleValue(catalog.Difficulties, "unknown", 1))
}

func TestAtoiOrZero(t *testing.T) {
	require.Equal(t, 25, atoiOrZero(" 25 "))
	require.Zero(t, atoiOrZero("abc"))
	require.Zero(t, atoiOrZero("-3"))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "corto", truncate("corto", 10))
	long := strings.Repeat("a", 40)
	require.Equal(t, 30, len([]rune(truncate(long, 30))))
}
