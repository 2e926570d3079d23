package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocalizations() Localizations {
	return Localizations{
		"en": {"nav_dashboard": "Dashboard"},
		"fr": {"nav_dashboard": "Tableau de bord"},
	}
}

func TestGetLocalization(t *testing.T) {
	loc, err := GetLocalization("en", testLocalizations())
	require.NoError(t, err)
	assert.Equal(t, "Dashboard", loc["nav_dashboard"])

	loc, err = GetLocalization("fr", testLocalizations())
	require.NoError(t, err)
	assert.Equal(t, "Tableau de bord", loc["nav_dashboard"])
}

func TestGetLocalizationUnsupportedLanguage(t *testing.T) {
	_, err := GetLocalization("de", testLocalizations())
	assert.Error(t, err)
}

func TestGetLocalizationMissingLanguage(t *testing.T) {
	_, err := GetLocalization("fr", Localizations{"en": {}})
	assert.Error(t, err)
}
