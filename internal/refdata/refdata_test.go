package refdata_test

import (
	"testing"

	"github.com/mindmeal/mindmeal-cli/internal/model"
	"github.com/mindmeal/mindmeal-cli/internal/refdata"
)

func TestFoodDatabaseIntegrity(t *testing.T) {
	t.Parallel()

	all := refdata.AllFoods()
	if len(all) != 49 {
		t.Fatalf("expected 49 foods, got %d", len(all))
	}
	seen := map[string]bool{}
	for _, f := range all {
		if seen[f.ID] {
			t.Fatalf("duplicate food id %q", f.ID)
		}
		seen[f.ID] = true
		if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 || f.Fiber < 0 {
			t.Fatalf("negative nutrient on %q", f.ID)
		}
		if f.ServingGrams <= 0 {
			t.Fatalf("non-positive serving grams on %q", f.ID)
		}
	}

	all[0].Name = "mutated"
	if f, _ := refdata.FoodByID("idli"); f.Name != "Idli" {
		t.Fatalf("AllFoods must return a copy, got %q", f.Name)
	}
}

func TestSearchFoods(t *testing.T) {
	t.Parallel()

	hits := refdata.SearchFoods("DOSA")
	if len(hits) < 2 {
		t.Fatalf("expected plain and masala dosa, got %d hits", len(hits))
	}
	hindi := refdata.SearchFoods("इडली")
	if len(hindi) != 1 || hindi[0].ID != "idli" {
		t.Fatalf("expected localized match on idli, got %+v", hindi)
	}
	if got := refdata.SearchFoods("  "); len(got) != 49 {
		t.Fatalf("blank query should return all foods, got %d", len(got))
	}
	if got := refdata.SearchFoods("pizza"); len(got) != 0 {
		t.Fatalf("expected no hits, got %d", len(got))
	}
}

func TestFoodsByCategoryAndLookup(t *testing.T) {
	t.Parallel()

	for _, f := range refdata.FoodsByCategory(model.CategoryFruit) {
		if f.Category != model.CategoryFruit {
			t.Fatalf("unexpected category %q for %q", f.Category, f.ID)
		}
	}
	if _, ok := refdata.FoodByID("green-tea"); !ok {
		t.Fatalf("expected green-tea to exist")
	}
	if _, ok := refdata.FoodByID("missing"); ok {
		t.Fatalf("expected missing id to be absent")
	}
}

func TestOptionTables(t *testing.T) {
	t.Parallel()

	if !refdata.HasOption(refdata.States, "kerala") || !refdata.HasOption(refdata.States, "puducherry") {
		t.Fatalf("expected states and union territories")
	}
	if len(refdata.Goals) != 7 || len(refdata.MedicalConditions) != 8 || len(refdata.ActivityLevels) != 5 {
		t.Fatalf("unexpected option table sizes")
	}
	if len(refdata.ChatResponses("unknown")) != len(refdata.ChatResponses(refdata.TopicDefault)) {
		t.Fatalf("unknown topic should fall back to default replies")
	}
}
