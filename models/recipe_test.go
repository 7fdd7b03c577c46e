package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name            string
		cookingTime     int
		ingredientCount int
		want            Difficulty
	}{
		{"quick and simple", 5, 3, DifficultyEasy},
		{"quick but busy", 5, 4, DifficultyMedium},
		{"slow and simple", 45, 3, DifficultyIntermediate},
		{"slow and busy", 45, 5, DifficultyHard},
		{"time boundary is inclusive on the slow side", 10, 3, DifficultyIntermediate},
		{"count boundary is inclusive on the busy side", 9, 4, DifficultyMedium},
		{"both boundaries", 10, 4, DifficultyHard},
		{"just under both boundaries", 9, 3, DifficultyEasy},
		{"zero inputs", 0, 0, DifficultyEasy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.cookingTime, tt.ingredientCount))
		})
	}
}

func TestClassifyPartitionsThePlane(t *testing.T) {
	// Every (time, count) pair maps to exactly one of the four labels.
	known := map[Difficulty]bool{
		DifficultyEasy:         true,
		DifficultyMedium:       true,
		DifficultyIntermediate: true,
		DifficultyHard:         true,
	}
	for tme := 0; tme <= 20; tme++ {
		for cnt := 0; cnt <= 8; cnt++ {
			got := Classify(tme, cnt)
			assert.True(t, known[got], "Classify(%d,%d) = %q", tme, cnt, got)
		}
	}
}

func TestParseIngredients(t *testing.T) {
	assert.Equal(t, []string{}, ParseIngredients(""))
	assert.Equal(t, []string{"a", "b", "c"}, ParseIngredients("a, b ,c"))
	assert.Equal(t, []string{"a", "b"}, ParseIngredients("a,,b"))
	assert.Equal(t, []string{}, ParseIngredients(" , ,"))
	// Case and order preserved.
	assert.Equal(t, []string{"Tomato", "salt", "WATER"}, ParseIngredients("Tomato, salt, WATER"))
}

func TestRecipeDerivedFields(t *testing.T) {
	soup := Recipe{Name: "Tomato Soup", CookingTime: 5, Ingredients: "tomato,salt,water"}
	stew := Recipe{Name: "Beef Stew", CookingTime: 45, Ingredients: "beef,carrot,potato,onion,salt"}

	assert.Equal(t, 3, soup.IngredientCount())
	assert.Equal(t, DifficultyEasy, soup.Difficulty())

	assert.Equal(t, 5, stew.IngredientCount())
	assert.Equal(t, DifficultyHard, stew.Difficulty())
}

func TestValidDifficulty(t *testing.T) {
	for _, d := range Difficulties() {
		assert.True(t, ValidDifficulty(string(d)))
	}
	assert.False(t, ValidDifficulty("easy")) // labels are case-sensitive
	assert.False(t, ValidDifficulty("Impossible"))
	assert.False(t, ValidDifficulty(""))
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("brunch"))
}
