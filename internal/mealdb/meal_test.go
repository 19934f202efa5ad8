package mealdb

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"mealplanner/internal/recipes/types"
)

func TestParseIngredients(t *testing.T) {
	raw := `{
		"idMeal":"1",
		"strIngredient1":"  Chicken ","strMeasure1":" 500g ",
		"strIngredient2":"   ","strMeasure2":"1 tsp",
		"strIngredient3":"Garlic","strMeasure3":null,
		"strIngredient5":"ONION","strMeasure5":"1"
	}`
	var d MealDetail
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := []types.Ingredient{
		{Name: "chicken", Measure: "500g"},
		{Name: "garlic", Measure: ""},
		{Name: "onion", Measure: "1"},
	}
	if diff := cmp.Diff(want, ParseIngredients(&d)); diff != "" {
		t.Fatalf("ParseIngredients mismatch (-want +got):\n%s", diff)
	}
}

func TestParseIngredients_ReadsAtMostTwentySlots(t *testing.T) {
	fields := []string{`"idMeal":"1"`}
	for i := 1; i <= 25; i++ {
		fields = append(fields, fmt.Sprintf(`"strIngredient%d":"item%d","strMeasure%d":"%d g"`, i, i, i, i))
	}
	var d MealDetail
	if err := json.Unmarshal([]byte("{"+strings.Join(fields, ",")+"}"), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	got := ParseIngredients(&d)
	if len(got) != MaxSlots {
		t.Fatalf("expected %d ingredients, got %d", MaxSlots, len(got))
	}
	if got[19].Name != "item20" || got[19].Measure != "20 g" {
		t.Fatalf("unexpected last ingredient: %+v", got[19])
	}
}

func TestParseIngredients_Nil(t *testing.T) {
	if got := ParseIngredients(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "", want: []string{}},
		{raw: "Meat,Casserole", want: []string{"Meat", "Casserole"}},
		{raw: " Spicy , ,Curry,", want: []string{"Spicy", "Curry"}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, SplitTags(tt.raw)); diff != "" {
			t.Errorf("SplitTags(%q) mismatch (-want +got):\n%s", tt.raw, diff)
		}
	}
}
