package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEveryLanguageCoversEveryUIKey(t *testing.T) {
	require.Len(t, texts, len(languageNames))
	for lang, table := range texts {
		require.Contains(t, languageNames, lang)
		for _, key := range UIKeys {
			require.Contains(t, table, key, "language %q missing %q", lang, key)
		}
	}
}

func TestUnknownLanguageFallsBackToItalian(t *testing.T) {
	l := New("de")
	require.Equal(t, "it", l.Language())
	require.Equal(t, texts["it"][KeyRecipes], l.Text(KeyRecipes))
}

func TestUnknownKeyReturnsKey(t *testing.T) {
	l := New("en")
	require.Equal(t, "bogus", l.Text("bogus"))
}

func TestLanguageName(t *testing.T) {
	require.Equal(t, "Italiano", LanguageName("it"))
	require.Equal(t, "xx", LanguageName("xx"))
}
