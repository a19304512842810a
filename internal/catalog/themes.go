package catalog

import (
	"strings"

	"github.com/terraincognita07/medlifequest/internal/models"
)

var themeTable = []models.Theme{
	{ID: models.DefaultThemeID, Name: "Default", PrimaryColor: "213d62", AccentColor: "4a8fdc"},
	{ID: "nature", Name: "Nature", PrimaryColor: "1a4d2e", AccentColor: "86b028"},
	{ID: "ocean", Name: "Ocean", PrimaryColor: "1e3a5f", AccentColor: "4a8fdc"},
	{ID: "sunset", Name: "Sunset", PrimaryColor: "5c2e7e", AccentColor: "e76f51"},
}

func Themes() []models.Theme {
	return append([]models.Theme(nil), themeTable...)
}

// LookupTheme reports whether id names a known theme.
func LookupTheme(id string) (models.Theme, bool) {
	normalized := strings.ToLower(strings.TrimSpace(id))
	for _, theme := range themeTable {
		if theme.ID == normalized {
			return theme, true
		}
	}
	return models.Theme{}, false
}

// ThemeByID falls back to the default theme for unknown ids.
func ThemeByID(id string) models.Theme {
	if theme, ok := LookupTheme(id); ok {
		return theme
	}
	return themeTable[0]
}
