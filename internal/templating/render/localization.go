package render

import (
	"fmt"
)

// Localizations maps a language code to its UI strings.
type Localizations map[string]map[string]interface{}

var supportedLanguages = []string{"en", "fr"}

// GetLocalization returns the UI strings for the given language.
func GetLocalization(lang string, localizations Localizations) (map[string]interface{}, error) {
	if !contains(supportedLanguages, lang) {
		return nil, fmt.Errorf("language %s is not supported", lang)
	}

	localization, ok := localizations[lang]
	if !ok {
		return nil, fmt.Errorf("language %s is not available", lang)
	}

	return localization, nil
}

func contains(slice []string, str string) bool {
	for _, v := range slice {
		if v == str {
			return true
		}
	}
	return false
}
