package recipes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/souravdas090300/recipe-app/charts"
	"github.com/souravdas090300/recipe-app/db"
	"github.com/souravdas090300/recipe-app/models"
	"github.com/souravdas090300/recipe-app/search"
	"github.com/souravdas090300/recipe-app/utils"
)

// recipesPerPage matches the original list page size.
const recipesPerPage = 12

const uploadFolder = "./static/uploads/recipes"

// recipeRow is a recipe plus its derived fields for tabular display.
// Difficulty and ingredient count are recomputed on every request, not
// stored.
type recipeRow struct {
	models.Recipe
	Difficulty      models.Difficulty `json:"difficulty"`
	IngredientList  []string          `json:"ingredientList"`
	IngredientCount int               `json:"ingredientCount"`
}

func toRow(rec models.Recipe) recipeRow {
	list := rec.IngredientList()
	return recipeRow{
		Recipe:          rec,
		Difficulty:      rec.Difficulty(),
		IngredientList:  list,
		IngredientCount: len(list),
	}
}

// GetRecipes lists recipes with optional name/ingredient/difficulty/
// category filters and an optional chart over the full filtered set.
// Pagination is applied after filtering and charting.
func GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query, err := search.ParseQuery(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var chartKind charts.Kind
	if sel := r.URL.Query().Get("chart"); sel != "" {
		chartKind, err = charts.ParseKind(sel)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown chart kind: "+sel)
			return
		}
	}

	// Full collection in insertion order; the filter is applied
	// in-process so difficulty can be derived per recipe. The _id
	// tiebreaker keeps the order stable when two recipes share a
	// createdAt second.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := db.RecipeCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch recipes")
		return
	}
	defer cursor.Close(ctx)

	var collection []models.Recipe
	if err = cursor.All(ctx, &collection); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode recipes")
		return
	}

	filtered := search.Filter(collection, query)

	resp := utils.M{"total": len(filtered)}

	if chartKind != 0 {
		payload, err := charts.Build(filtered, chartKind)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to render chart")
			return
		}
		resp["chart"] = utils.M{
			"kind":    chartKind.String(),
			"dataUri": payload.DataURI(),
			"noData":  payload.NoData,
			"legend":  payload.Legend,
		}
	}

	page := utils.ParsePage(r)
	start, end, hasMore := utils.Paginate(len(filtered), page, recipesPerPage)

	rows := []recipeRow{}
	for _, rec := range filtered[start:end] {
		rows = append(rows, toRow(rec))
	}

	resp["recipes"] = rows
	resp["page"] = page
	resp["hasMore"] = hasMore

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetRecipe returns one recipe with its derived fields.
func GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var recipe models.Recipe
	err := db.RecipeCollection.FindOne(r.Context(), bson.M{"recipeid": ps.ByName("id")}).Decode(&recipe)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, toRow(recipe))
}

// CreateRecipe appends a new recipe owned by the authenticated user.
// Difficulty is never taken from the client; it is always derived.
func CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing user identity")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	ingredients := strings.TrimSpace(r.FormValue("ingredients"))
	if name == "" || ingredients == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and ingredients are required")
		return
	}

	cookingTime, err := parseCookingTime(r.FormValue("cookingTime"))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	category := r.FormValue("category")
	if category != "" && !models.ValidCategory(category) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown category: "+category)
		return
	}

	var pic string
	if file, header, ferr := r.FormFile("pic"); ferr == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		pic, err = utils.SaveFile(file, header, uploadFolder)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error saving file")
			return
		}
		if _, err := utils.CreateThumb(pic, uploadFolder, 300); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Error creating thumbnail")
			return
		}
	}

	recipe := models.Recipe{
		RecipeID:    "r" + utils.GenerateRandomString(12),
		UserID:      userID,
		Name:        name,
		CookingTime: cookingTime,
		Ingredients: ingredients,
		Description: r.FormValue("description"),
		Category:    category,
		Pic:         pic,
		CreatedAt:   time.Now().Unix(),
	}

	if _, err := db.RecipeCollection.InsertOne(r.Context(), recipe); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "DB insert failed")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, toRow(recipe))
}

// GetCategories returns the fixed category set.
func GetCategories(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, models.Categories())
}

func parseCookingTime(val string) (int, error) {
	t, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0, errors.New("cookingTime must be an integer number of minutes")
	}
	if t < 0 {
		return 0, errors.New("cookingTime must not be negative")
	}
	return t, nil
}
