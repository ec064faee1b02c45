package utils

import (
	"strings"
)

var colorCodes = map[string]string{
	"NV": "navy",
	"BK": "black",
	"CH": "charcoal",
	"GR": "grey",
	"LG": "light grey",
	"BL": "blue",
	"MB": "midnight blue",
	"BR": "brown",
	"TB": "tobacco",
	"OL": "olive",
	"BG": "beige",
	"SD": "sand",
	"CR": "cream",
	"WH": "white",
	"BU": "burgundy",
	"GN": "green",
}

// MapCodeToColor maps a swatch color code to its color name.
// Returns the lowercase code if it is not known.
func MapCodeToColor(code string) string {
	codeUpper := strings.ToUpper(strings.TrimSpace(code))
	if color, exists := colorCodes[codeUpper]; exists {
		return color
	}
	return strings.ToLower(codeUpper)
}

// CapitalizeWords capitalizes the first letter of each word
func CapitalizeWords(s string) string {
	if s == "" {
		return s
	}
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(string(word[0])) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}
