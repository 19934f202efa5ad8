package types

import "strings"

// Normalize lowercases and trims whitespace from an ingredient name. Every
// name is normalized before it is compared or stored.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// UserIngredient is one pantry entry.
type UserIngredient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ingredient is a recipe-side ingredient with its free-text measure.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

type Recipe struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Category           string       `json:"category"`
	Area               string       `json:"area"`
	Instructions       string       `json:"instructions"`
	Thumbnail          string       `json:"thumbnail"`
	YouTube            string       `json:"youtube,omitempty"`
	Ingredients        []Ingredient `json:"ingredients"`
	MatchPercentage    int          `json:"matchPercentage"`
	MissingIngredients []string     `json:"missingIngredients"`
	Tags               []string     `json:"tags"`
}

// AvailableCount is how many of the recipe's ingredients the pantry covers.
func (r Recipe) AvailableCount() int {
	return len(r.Ingredients) - len(r.MissingIngredients)
}

// IsMissing reports whether name is in the recipe's missing set.
func (r Recipe) IsMissing(name string) bool {
	name = Normalize(name)
	for _, m := range r.MissingIngredients {
		if m == name {
			return true
		}
	}
	return false
}

// MeasureFor returns the measure of the first ingredient whose normalized
// name equals name.
func (r Recipe) MeasureFor(name string) (string, bool) {
	name = Normalize(name)
	for _, ing := range r.Ingredients {
		if Normalize(ing.Name) == name {
			return ing.Measure, true
		}
	}
	return "", false
}

type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// Band buckets the match percentage for display.
func (r Recipe) Band() Band {
	switch {
	case r.MatchPercentage >= 80:
		return BandHigh
	case r.MatchPercentage >= 50:
		return BandMedium
	default:
		return BandLow
	}
}
