package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/souravdas090300/recipe-app/auth"
	"github.com/souravdas090300/recipe-app/middleware"
	"github.com/souravdas090300/recipe-app/ratelim"
	"github.com/souravdas090300/recipe-app/recipes"
)

func RoutesWrapper(router *httprouter.Router, rl *ratelim.RateLimiter) {
	AddAuthRoutes(router, rl)
	AddRecipeRoutes(router, rl)
	AddStaticRoutes(router)
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddRecipeRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/recipes", rl.Limit(middleware.Authenticate(recipes.GetRecipes)))
	router.POST("/api/recipes", rl.Limit(middleware.Authenticate(recipes.CreateRecipe)))
	router.GET("/api/recipes/:id", rl.Limit(middleware.Authenticate(recipes.GetRecipe)))
	router.GET("/api/recipes/:id/card", rl.Limit(middleware.Authenticate(recipes.RecipeCard)))
	// Public, but a presented token still populates the request identity.
	router.GET("/api/categories", rl.Limit(middleware.OptionalAuth(recipes.GetCategories)))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/uploads/*filepath", http.Dir("./static/uploads"))
}
