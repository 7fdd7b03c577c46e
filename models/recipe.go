package models

import "strings"

// Difficulty is derived from cooking time and ingredient count.
// It is never stored; every read recomputes it.
type Difficulty string

const (
	DifficultyEasy         Difficulty = "Easy"
	DifficultyMedium       Difficulty = "Medium"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyHard         Difficulty = "Hard"
)

// Difficulties returns the four labels in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyIntermediate, DifficultyHard}
}

// ValidDifficulty reports whether s is one of the four known labels.
func ValidDifficulty(s string) bool {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyIntermediate, DifficultyHard:
		return true
	}
	return false
}

// Classify maps cooking time (minutes) and ingredient count to a
// difficulty label. Both inputs must be non-negative; callers validate
// at the boundary.
//
//	< 10 min, < 4 ingredients  -> Easy
//	< 10 min, >= 4 ingredients -> Medium
//	>= 10 min, < 4 ingredients -> Intermediate
//	>= 10 min, >= 4 ingredients -> Hard
func Classify(cookingTime, ingredientCount int) Difficulty {
	if cookingTime < 10 && ingredientCount < 4 {
		return DifficultyEasy
	}
	if cookingTime < 10 {
		return DifficultyMedium
	}
	if ingredientCount < 4 {
		return DifficultyIntermediate
	}
	return DifficultyHard
}

// ParseIngredients splits a comma-separated ingredients string into
// trimmed tokens, dropping empty pieces. Case and order are preserved.
func ParseIngredients(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := []string{}
	for _, p := range parts {
		if tok := strings.TrimSpace(p); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategoryDessert   = "dessert"
	CategorySnack     = "snack"
)

// Categories returns the fixed category set.
func Categories() []string {
	return []string{CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDessert, CategorySnack}
}

// ValidCategory reports whether s is one of the fixed categories.
func ValidCategory(s string) bool {
	switch s {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDessert, CategorySnack:
		return true
	}
	return false
}

type Recipe struct {
	RecipeID    string `bson:"recipeid,omitempty" json:"recipeid"`
	UserID      string `bson:"userId" json:"userId"`
	Name        string `bson:"name" json:"name"`
	CookingTime int    `bson:"cookingTime" json:"cookingTime"` // minutes
	Ingredients string `bson:"ingredients" json:"ingredients"` // comma-separated
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"`
	Pic         string `bson:"pic,omitempty" json:"pic,omitempty"`
	CreatedAt   int64  `bson:"createdAt" json:"createdAt"`
}

// IngredientList returns the parsed ingredient tokens.
func (r Recipe) IngredientList() []string {
	return ParseIngredients(r.Ingredients)
}

// IngredientCount returns the number of non-empty ingredient tokens.
func (r Recipe) IngredientCount() int {
	return len(ParseIngredients(r.Ingredients))
}

// Difficulty classifies the recipe from its cooking time and ingredient
// count.
func (r Recipe) Difficulty() Difficulty {
	return Classify(r.CookingTime, r.IngredientCount())
}
