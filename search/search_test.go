package search

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souravdas090300/recipe-app/models"
)

func sampleCollection() []models.Recipe {
	return []models.Recipe{
		{Name: "Tomato Soup", CookingTime: 5, Ingredients: "tomato,salt,water", Category: models.CategoryLunch},
		{Name: "Beef Stew", CookingTime: 45, Ingredients: "beef,carrot,potato,onion,salt", Category: models.CategoryDinner},
		{Name: "Fruit Salad", CookingTime: 8, Ingredients: "apple, banana, orange, grapes", Category: models.CategoryDessert},
		{Name: "Avocado Toast", CookingTime: 7, Ingredients: "bread, avocado, lemon", Category: models.CategoryBreakfast},
	}
}

func TestFilterEmptyQueryIsIdentity(t *testing.T) {
	coll := sampleCollection()

	got := Filter(coll, Query{})
	assert.Equal(t, coll, got)

	// The "all" sentinel is the same as no difficulty constraint.
	got = Filter(coll, Query{Difficulty: DifficultyAll})
	assert.Equal(t, coll, got)
}

func TestFilterByName(t *testing.T) {
	coll := sampleCollection()

	got := Filter(coll, Query{Name: "soup"})
	require.Len(t, got, 1)
	assert.Equal(t, "Tomato Soup", got[0].Name)

	// Case-folded substring, not exact match.
	got = Filter(coll, Query{Name: "TOAST"})
	require.Len(t, got, 1)
	assert.Equal(t, "Avocado Toast", got[0].Name)

	assert.Empty(t, Filter(coll, Query{Name: "lasagna"}))
}

func TestFilterByIngredient(t *testing.T) {
	coll := sampleCollection()

	// Both salted recipes match, in collection order.
	got := Filter(coll, Query{Ingredient: "salt"})
	require.Len(t, got, 2)
	assert.Equal(t, "Tomato Soup", got[0].Name)
	assert.Equal(t, "Beef Stew", got[1].Name)

	// Substring within a token: "nan" hits "banana".
	got = Filter(coll, Query{Ingredient: "nan"})
	require.Len(t, got, 1)
	assert.Equal(t, "Fruit Salad", got[0].Name)
}

func TestFilterByDifficulty(t *testing.T) {
	coll := sampleCollection()

	got := Filter(coll, Query{Difficulty: string(models.DifficultyEasy)})
	require.Len(t, got, 2)
	assert.Equal(t, "Tomato Soup", got[0].Name)
	assert.Equal(t, "Avocado Toast", got[1].Name)

	got = Filter(coll, Query{Difficulty: string(models.DifficultyHard)})
	require.Len(t, got, 1)
	assert.Equal(t, "Beef Stew", got[0].Name)

	assert.Empty(t, Filter(coll, Query{Difficulty: string(models.DifficultyIntermediate)}))
}

func TestFilterConjunction(t *testing.T) {
	coll := sampleCollection()

	// salt AND Easy -> only the soup; the stew is Hard.
	got := Filter(coll, Query{Ingredient: "salt", Difficulty: string(models.DifficultyEasy)})
	require.Len(t, got, 1)
	assert.Equal(t, "Tomato Soup", got[0].Name)

	got = Filter(coll, Query{Name: "Soup", Category: models.CategoryDinner})
	assert.Empty(t, got)
}

func TestFilterIsIdempotentAndPure(t *testing.T) {
	coll := sampleCollection()
	q := Query{Ingredient: "salt"}

	first := Filter(coll, q)
	second := Filter(coll, q)
	assert.Equal(t, first, second)

	// The input collection is untouched.
	assert.Equal(t, sampleCollection(), coll)
}

func TestParseQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/recipes?name=Soup&ingredient=salt&difficulty=Easy&category=lunch", nil)
	q, err := ParseQuery(r)
	require.NoError(t, err)
	assert.Equal(t, Query{Name: "Soup", Ingredient: "salt", Difficulty: "Easy", Category: "lunch"}, q)

	r = httptest.NewRequest("GET", "/api/recipes", nil)
	q, err = ParseQuery(r)
	require.NoError(t, err)
	assert.True(t, q.Empty())
}

func TestParseQueryRejectsUnknownDifficulty(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/recipes?difficulty=Eassy", nil)
	_, err := ParseQuery(r)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "difficulty", verr.Field)
}

func TestParseQueryRejectsUnknownCategory(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/recipes?category=brunch", nil)
	_, err := ParseQuery(r)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "category", verr.Field)
}

func TestParseQueryAcceptsAllSentinel(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/recipes?difficulty=all", nil)
	q, err := ParseQuery(r)
	require.NoError(t, err)
	assert.True(t, q.Empty())
}
