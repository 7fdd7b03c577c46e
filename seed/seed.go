package seed

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/souravdas090300/recipe-app/db"
	"github.com/souravdas090300/recipe-app/models"
	"github.com/souravdas090300/recipe-app/utils"
)

// Sample catalog for demos and local development.
var sampleRecipes = []struct {
	Name        string
	CookingTime int
	Ingredients string
	Category    string
}{
	{"Classic Pancakes", 15, "flour, milk, egg, sugar, baking powder, butter", models.CategoryBreakfast},
	{"Veggie Omelette", 10, "egg, bell pepper, onion, tomato, cheese", models.CategoryBreakfast},
	{"Grilled Chicken", 30, "chicken, olive oil, garlic, lemon, pepper, salt", models.CategoryDinner},
	{"Tomato Pasta", 25, "pasta, tomato, garlic, basil, olive oil, parmesan", models.CategoryLunch},
	{"Beef Stir Fry", 20, "beef, soy sauce, broccoli, carrot, garlic, ginger", models.CategoryDinner},
	{"Fruit Salad", 8, "apple, banana, orange, grapes, honey, mint", models.CategoryDessert},
	{"Avocado Toast", 7, "bread, avocado, lemon, chili flakes, salt", models.CategoryBreakfast},
	{"Chocolate Brownies", 40, "flour, cocoa, sugar, egg, butter, chocolate", models.CategoryDessert},
	{"Caesar Salad", 12, "lettuce, croutons, parmesan, chicken, caesar dressing", models.CategoryLunch},
	{"Fish Tacos", 25, "fish, tortilla, cabbage, lime, salsa, avocado", models.CategoryDinner},
	{"Lentil Soup", 35, "lentils, carrot, onion, celery, garlic, cumin", models.CategoryLunch},
	{"Banana Smoothie", 5, "banana, milk, honey, ice", models.CategorySnack},
	{"Margarita Pizza", 18, "pizza dough, tomato, mozzarella, basil, olive oil", models.CategoryDinner},
	{"Chicken Biryani", 60, "rice, chicken, yogurt, onion, spices, saffron", models.CategoryDinner},
	{"Veggie Sandwich", 10, "bread, cucumber, tomato, lettuce, mayo, cheese", models.CategorySnack},
}

// LoadSampleRecipes inserts the demo catalog for recipes that are not
// already present, keyed by name. Existing recipes are left alone.
func LoadSampleRecipes(ctx context.Context, ownerID string) error {
	created := 0
	for _, s := range sampleRecipes {
		err := db.RecipeCollection.FindOne(ctx, bson.M{"name": s.Name}).Err()
		if err == nil {
			continue
		}

		recipe := models.Recipe{
			RecipeID:    "r" + utils.GenerateRandomString(12),
			UserID:      ownerID,
			Name:        s.Name,
			CookingTime: s.CookingTime,
			Ingredients: s.Ingredients,
			Description: "Auto-loaded sample recipe for " + s.Name + ".",
			Category:    s.Category,
			CreatedAt:   time.Now().Unix(),
		}
		if _, err := db.RecipeCollection.InsertOne(ctx, recipe); err != nil {
			return err
		}
		created++
	}

	log.Printf("Sample recipes load complete. Created: %d", created)
	return nil
}
