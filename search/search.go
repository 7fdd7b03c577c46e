package search

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/souravdas090300/recipe-app/models"
	"github.com/souravdas090300/recipe-app/utils"
)

// DifficultyAll is the sentinel meaning "no difficulty constraint".
const DifficultyAll = "all"

// Query holds the optional predicates of one search request. An empty
// field means "no constraint on this dimension", never "match empty".
type Query struct {
	Name       string
	Ingredient string
	Difficulty string // "", "all", or one of the four labels
	Category   string // "", or one of the fixed categories
}

// Empty reports whether no predicate is active.
func (q Query) Empty() bool {
	return q.Name == "" && q.Ingredient == "" && q.Category == "" &&
		(q.Difficulty == "" || q.Difficulty == DifficultyAll)
}

// ValidationError marks a query field that failed boundary validation.
// Rejecting typos here keeps a bad filter from silently returning the
// unfiltered collection.
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// ParseQuery reads and validates the search predicates from the request
// query string. Unknown difficulty labels and categories are rejected,
// not ignored.
func ParseQuery(r *http.Request) (Query, error) {
	v := r.URL.Query()
	q := Query{
		Name:       strings.TrimSpace(v.Get("name")),
		Ingredient: strings.TrimSpace(v.Get("ingredient")),
		Difficulty: strings.TrimSpace(v.Get("difficulty")),
		Category:   strings.TrimSpace(v.Get("category")),
	}

	if q.Difficulty != "" && q.Difficulty != DifficultyAll && !models.ValidDifficulty(q.Difficulty) {
		return Query{}, &ValidationError{Field: "difficulty", Value: q.Difficulty}
	}
	if q.Category != "" && !models.ValidCategory(q.Category) {
		return Query{}, &ValidationError{Field: "category", Value: q.Category}
	}
	return q, nil
}

// Filter returns the recipes satisfying every active predicate, in the
// order they came in. The input slice is never mutated. Difficulty and
// ingredient counts are recomputed from the raw fields on every call;
// nothing derived is cached.
func Filter(collection []models.Recipe, q Query) []models.Recipe {
	if q.Empty() {
		return collection
	}

	out := []models.Recipe{}
	for _, rec := range collection {
		if q.Name != "" && !utils.ContainsIgnoreCase(rec.Name, q.Name) {
			continue
		}
		if q.Ingredient != "" && !matchesIngredient(rec, q.Ingredient) {
			continue
		}
		if q.Difficulty != "" && q.Difficulty != DifficultyAll &&
			rec.Difficulty() != models.Difficulty(q.Difficulty) {
			continue
		}
		if q.Category != "" && rec.Category != q.Category {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// matchesIngredient reports whether needle is a case-insensitive
// substring of at least one ingredient token. Substring-within-token,
// matching the name-search semantics.
func matchesIngredient(rec models.Recipe, needle string) bool {
	for _, tok := range rec.IngredientList() {
		if utils.ContainsIgnoreCase(tok, needle) {
			return true
		}
	}
	return false
}
