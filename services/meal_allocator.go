package services

import (
	"log"
	"math"
	"slices"
	"strings"

	"nutriplan/models"
)

// mealShares is the fraction of the daily target given to each slot.
var mealShares = map[models.MealType]float64{
	models.MealTypeBreakfast: 0.25,
	models.MealTypeLunch:     0.35,
	models.MealTypeSnack:     0.15,
	models.MealTypeDinner:    0.25,
}

const (
	cuisineMatchScore = 2
	dietVariantScore  = 1
)

// MealAllocator picks one template per slot from a catalog.
type MealAllocator struct {
	catalog []MealTemplate
}

// NewMealAllocator creates an allocator over catalog. A nil catalog means
// DefaultMealCatalog.
func NewMealAllocator(catalog []MealTemplate) *MealAllocator {
	if catalog == nil {
		catalog = DefaultMealCatalog
	}
	return &MealAllocator{catalog: catalog}
}

// AllocateMeals uses the default catalog.
func AllocateMeals(p models.UserProfile, target int) []models.MealDraft {
	return NewMealAllocator(nil).Allocate(p, target)
}

// SlotCalories returns the calories for one slot, rounded on its own.
func SlotCalories(target int, mealType models.MealType) int {
	return int(math.Round(float64(target) * mealShares[mealType]))
}

// Allocate returns one draft per slot in breakfast, lunch, snack, dinner
// order. Slots with no diet-compatible template are left out, which only
// happens with a custom catalog.
func (a *MealAllocator) Allocate(p models.UserProfile, target int) []models.MealDraft {
	drafts := make([]models.MealDraft, 0, len(models.MealTypes))
	for _, mt := range models.MealTypes {
		tpl, ok := a.pick(p, mt)
		if !ok {
			log.Printf("ERROR: [MealAllocator] No %s template available for diet '%s'.", mt, p.DietType)
			continue
		}
		drafts = append(drafts, models.MealDraft{
			MealType:     mt,
			Name:         tpl.Name,
			Description:  tpl.Description,
			Ingredients:  slices.Clone(tpl.Ingredients),
			Instructions: slices.Clone(tpl.Instructions),
			Calories:     SlotCalories(target, mt),
			ImageRef:     tpl.ImageRef,
		})
	}
	return drafts
}

func (a *MealAllocator) pick(p models.UserProfile, mt models.MealType) (MealTemplate, bool) {
	diet := normalizedDiet(p.DietType)

	var compatible []MealTemplate
	for _, t := range a.catalog {
		if t.MealType == mt && slices.Contains(t.Diets, diet) {
			compatible = append(compatible, t)
		}
	}
	if len(compatible) == 0 {
		return MealTemplate{}, false
	}

	allergies := normalizedTags(p.Allergies)
	candidates := compatible
	if len(allergies) > 0 {
		var safe []MealTemplate
		for _, t := range compatible {
			if !containsAllergen(t, allergies) {
				safe = append(safe, t)
			}
		}
		if len(safe) == 0 {
			log.Printf("WARN: [MealAllocator] Every %s template conflicts with allergies %v for userID %s; ignoring allergies for this slot.", mt, allergies, p.UserID)
		} else {
			candidates = safe
		}
	}

	cuisines := normalizedTags(p.CuisinePreferences)
	best, bestScore := candidates[0], -1
	for _, t := range candidates {
		score := 0
		if t.Cuisine != "" && slices.Contains(cuisines, strings.ToLower(t.Cuisine)) {
			score += cuisineMatchScore
		}
		if t.Variant == diet {
			score += dietVariantScore
		}
		if score > bestScore {
			best, bestScore = t, score
		}
	}
	return best, true
}

// normalizedDiet maps anything that is not vegetarian to non-vegetarian.
func normalizedDiet(diet string) string {
	if strings.EqualFold(strings.TrimSpace(diet), models.DietVegetarian) {
		return models.DietVegetarian
	}
	return models.DietNonVegetarian
}

func normalizedTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// containsAllergen matches allergy tags against the template's allergen tags
// and, by substring, its ingredient names.
func containsAllergen(t MealTemplate, allergies []string) bool {
	for _, allergy := range allergies {
		for _, a := range t.Allergens {
			if strings.EqualFold(a, allergy) {
				return true
			}
		}
		for _, ing := range t.Ingredients {
			if strings.Contains(strings.ToLower(ing), allergy) {
				return true
			}
		}
	}
	return false
}
