package recipes

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/souravdas090300/recipe-app/db"
	"github.com/souravdas090300/recipe-app/models"
	"github.com/souravdas090300/recipe-app/utils"
)

// RecipeCard renders a printable PDF card for one recipe with a QR code
// linking back to it.
func RecipeCard(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipeID := ps.ByName("id")

	var recipe models.Recipe
	err := db.RecipeCollection.FindOne(r.Context(), bson.M{"recipeid": recipeID}).Decode(&recipe)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Recipe not found")
		return
	}

	baseURL := os.Getenv("PUBLIC_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	qrData := fmt.Sprintf("%s/api/recipes/%s", baseURL, recipeID)
	qrCode, _ := qrcode.Encode(qrData, qrcode.Medium, 128)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, recipe.Name, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Summary
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Category: %s\nCooking time: %d minutes\nDifficulty: %s\nIngredients: %d",
		recipe.Category,
		recipe.CookingTime,
		recipe.Difficulty(),
		recipe.IngredientCount(),
	), "", "L", false)
	pdf.Ln(4)

	// Ingredient list
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Ingredients", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, ing := range recipe.IngredientList() {
		pdf.CellFormat(0, 6, "- "+ing, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	if recipe.Description != "" {
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 8, "Instructions", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, recipe.Description, "", "L", false)
	}

	// QR Code Image
	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrCode))
	pdf.ImageOptions("qr", 150, 25, 40, 40, false, imgOpts, 0, "")

	// Footer
	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Printed "+time.Now().Format("02 Jan 2006 15:04"), "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate recipe card")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=recipe-"+recipeID+".pdf")
	w.Write(buf.Bytes())
}
