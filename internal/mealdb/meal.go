package mealdb

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"mealplanner/internal/recipes/types"
)

// MaxSlots is how many indexed ingredient/measure pairs a meal record carries.
const MaxSlots = 20

// MealSummary is one row of a filter.php response.
type MealSummary struct {
	ID        string `json:"idMeal"`
	Name      string `json:"strMeal"`
	Thumbnail string `json:"strMealThumb"`
}

// Slot is one raw strIngredientN/strMeasureN pair, untrimmed.
type Slot struct {
	Ingredient string
	Measure    string
}

// MealDetail is a full lookup.php record. The indexed ingredient fields are
// folded into Slots while decoding.
type MealDetail struct {
	ID           string
	Name         string
	Category     string
	Area         string
	Instructions string
	Thumbnail    string
	Tags         string
	YouTube      string
	Slots        [MaxSlots]Slot
}

func (d *MealDetail) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	str := func(key string) string {
		s, _ := raw[key].(string)
		return s
	}

	*d = MealDetail{
		ID:           str("idMeal"),
		Name:         str("strMeal"),
		Category:     str("strCategory"),
		Area:         str("strArea"),
		Instructions: str("strInstructions"),
		Thumbnail:    str("strMealThumb"),
		Tags:         str("strTags"),
		YouTube:      str("strYoutube"),
	}
	for i := range MaxSlots {
		n := strconv.Itoa(i + 1)
		d.Slots[i] = Slot{
			Ingredient: str("strIngredient" + n),
			Measure:    str("strMeasure" + n),
		}
	}
	return nil
}

// ParseIngredients turns the slots of a meal into an ordered ingredient list.
// Slots with a blank name are skipped.
func ParseIngredients(d *MealDetail) []types.Ingredient {
	if d == nil {
		return nil
	}
	ingredients := make([]types.Ingredient, 0, MaxSlots)
	for _, slot := range d.Slots {
		name := types.Normalize(slot.Ingredient)
		if name == "" {
			continue
		}
		ingredients = append(ingredients, types.Ingredient{
			Name:    name,
			Measure: strings.TrimSpace(slot.Measure),
		})
	}
	return ingredients
}

// SplitTags splits the comma separated strTags value.
func SplitTags(raw string) []string {
	tags := lo.Map(strings.Split(raw, ","), func(t string, _ int) string {
		return strings.TrimSpace(t)
	})
	return lo.Compact(tags)
}
