package services

import "nutriplan/models"

// MealTemplate is a catalog entry the allocator can turn into a meal.
type MealTemplate struct {
	MealType     models.MealType
	Diets        []string // diets the template is compatible with
	Variant      string   // diet this dish is the signature choice for, if any
	Cuisine      string   // empty when the dish has no particular cuisine
	Allergens    []string
	Name         string
	Description  string
	Ingredients  []string
	Instructions []string
	ImageRef     string
}

var bothDiets = []string{models.DietVegetarian, models.DietNonVegetarian}

func unsplash(id string) string {
	return "https://images.unsplash.com/" + id + "?w=400"
}

// DefaultMealCatalog is the built-in template set. Order matters: it breaks
// scoring ties.
var DefaultMealCatalog = []MealTemplate{
	{
		MealType:     models.MealTypeBreakfast,
		Diets:        bothDiets,
		Allergens:    []string{"nuts", "dairy"},
		Name:         "Oatmeal Bowl",
		Description:  "Steel-cut oats with berries, nuts, and honey",
		Ingredients:  []string{"oats", "mixed berries", "almonds", "honey", "milk"},
		Instructions: []string{"Cook oats", "Add toppings", "Serve warm"},
		ImageRef:     unsplash("photo-1490474418585-ba9bad8fd0ea"),
	},
	{
		MealType:     models.MealTypeBreakfast,
		Diets:        bothDiets,
		Cuisine:      "south-indian",
		Allergens:    []string{"gluten"},
		Name:         "Vegetable Upma",
		Description:  "Traditional South Indian breakfast with vegetables",
		Ingredients:  []string{"semolina", "mixed vegetables", "curry leaves", "mustard seeds"},
		Instructions: []string{"Roast semolina", "Sauté vegetables", "Mix and cook"},
		ImageRef:     unsplash("photo-1630383249896-424e482df921"),
	},
	{
		MealType:     models.MealTypeLunch,
		Diets:        bothDiets,
		Allergens:    []string{"sesame"},
		Name:         "Quinoa Power Bowl",
		Description:  "Protein-rich quinoa with vegetables and chickpeas",
		Ingredients:  []string{"quinoa", "chickpeas", "avocado", "vegetables", "tahini"},
		Instructions: []string{"Cook quinoa", "Prepare vegetables", "Assemble bowl"},
		ImageRef:     unsplash("photo-1512621776951-a57141f2eefd"),
	},
	{
		MealType:     models.MealTypeLunch,
		Diets:        bothDiets,
		Variant:      models.DietVegetarian,
		Cuisine:      "indian",
		Name:         "Dal Rice Bowl",
		Description:  "Traditional dal with brown rice",
		Ingredients:  []string{"lentils", "brown rice", "spices", "vegetables"},
		Instructions: []string{"Cook main dish", "Prepare rice", "Serve together"},
		ImageRef:     unsplash("photo-1596797038530-2c107229654b"),
	},
	{
		MealType:     models.MealTypeLunch,
		Diets:        []string{models.DietNonVegetarian},
		Variant:      models.DietNonVegetarian,
		Cuisine:      "indian",
		Name:         "Chicken Curry Rice",
		Description:  "Spiced chicken curry with rice",
		Ingredients:  []string{"chicken", "rice", "curry spices", "onions"},
		Instructions: []string{"Cook main dish", "Prepare rice", "Serve together"},
		ImageRef:     unsplash("photo-1596797038530-2c107229654b"),
	},
	{
		MealType:     models.MealTypeSnack,
		Diets:        bothDiets,
		Allergens:    []string{"nuts"},
		Name:         "Trail Mix",
		Description:  "Mixed nuts and dried fruits",
		Ingredients:  []string{"almonds", "walnuts", "dried cranberries", "dark chocolate chips"},
		Instructions: []string{"Mix all ingredients", "Store in container"},
		ImageRef:     unsplash("photo-1599599810769-bcde5a160d32"),
	},
	{
		MealType:     models.MealTypeSnack,
		Diets:        bothDiets,
		Allergens:    []string{"dairy"},
		Name:         "Berry Yogurt Parfait",
		Description:  "Layered yogurt with fresh berries and oats",
		Ingredients:  []string{"greek yogurt", "mixed berries", "rolled oats", "honey"},
		Instructions: []string{"Layer yogurt and berries", "Top with oats", "Drizzle honey"},
		ImageRef:     unsplash("photo-1490474418585-ba9bad8fd0ea"),
	},
	{
		MealType:     models.MealTypeDinner,
		Diets:        bothDiets,
		Variant:      models.DietVegetarian,
		Name:         "Grilled Vegetables with Quinoa",
		Description:  "Seasonal grilled vegetables with quinoa",
		Ingredients:  []string{"mixed vegetables", "quinoa", "olive oil", "herbs"},
		Instructions: []string{"Prepare protein/grain", "Roast vegetables", "Serve together"},
		ImageRef:     unsplash("photo-1540420773420-3366772f4999"),
	},
	{
		MealType:     models.MealTypeDinner,
		Diets:        []string{models.DietNonVegetarian},
		Variant:      models.DietNonVegetarian,
		Allergens:    []string{"fish"},
		Name:         "Grilled Salmon with Vegetables",
		Description:  "Omega-3 rich salmon with roasted vegetables",
		Ingredients:  []string{"salmon fillet", "broccoli", "sweet potato", "olive oil"},
		Instructions: []string{"Prepare protein/grain", "Roast vegetables", "Serve together"},
		ImageRef:     unsplash("photo-1467003909585-2f8a72700288"),
	},
	{
		MealType:     models.MealTypeDinner,
		Diets:        bothDiets,
		Cuisine:      "italian",
		Allergens:    []string{"gluten"},
		Name:         "Pasta Primavera",
		Description:  "Whole wheat pasta tossed with spring vegetables",
		Ingredients:  []string{"whole wheat pasta", "zucchini", "cherry tomatoes", "olive oil", "basil"},
		Instructions: []string{"Boil pasta", "Sauté vegetables", "Toss together"},
		ImageRef:     unsplash("photo-1540420773420-3366772f4999"),
	},
}
