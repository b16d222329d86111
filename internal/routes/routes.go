package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-recipes/internal/handlers"
	"github.com/sbilibin2017/gw-recipes/internal/middlewares"
)

type AuthService interface {
	handlers.Registerer
	handlers.Loginer
}

type UserService interface {
	handlers.UserGetter
	handlers.UserRenamer
	handlers.PasswordChanger
}

type RecipeService interface {
	handlers.RecipeLister
	handlers.UserRecipesLister
	handlers.RecipeGetter
	handlers.RecipeCreator
	handlers.RecipeUpdater
	handlers.RecipeDeleter
}

type CollectionService interface {
	handlers.CollectionLister
	handlers.CollectionAdder
	handlers.CollectionRemover
}

type RatingService interface {
	handlers.RatingSummarizer
	handlers.UserRatingGetter
	handlers.Rater
	handlers.RatingDeleter
}

type CommentService interface {
	handlers.CommentLister
	handlers.CommentCreator
}

// Config holds everything the router serves.
type Config struct {
	DB         handlers.Pinger
	Auth       AuthService
	Users      UserService
	Recipes    RecipeService
	Favorites  CollectionService
	MyRecipes  CollectionService
	Ratings    RatingService
	Comments   CommentService
	Categories handlers.CategoryLister
	Media      handlers.Uploader

	// Tokener guards mutating routes with a bearer token. Nil leaves them open.
	Tokener middlewares.Tokener

	AllowAnonymousComments bool
	AllowedOrigins         []string

	// RateLimiter admits requests globally. Nil disables limiting.
	RateLimiter *rate.Limiter

	// SwaggerURL is where the UI fetches doc.json from.
	SwaggerURL string
}

// NewRouter mounts the API under /api together with /metrics and /swagger.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)
	if cfg.RateLimiter != nil {
		r.Use(middlewares.RateLimitMiddleware(cfg.RateLimiter))
	}

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(cfg.SwaggerURL)))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/health", handlers.NewHealthHandler(cfg.DB))
		r.Get("/categories", handlers.NewListCategoriesHandler(cfg.Categories))

		r.Post("/auth/register", handlers.NewRegisterHandler(cfg.Auth))
		r.Post("/auth/login", handlers.NewLoginHandler(cfg.Auth))

		r.Get("/recipes", handlers.NewListRecipesHandler(cfg.Recipes))
		r.Get("/recipes/{id}", handlers.NewGetRecipeHandler(cfg.Recipes))
		r.Get("/recipes/{id}/ratings", handlers.NewRatingSummaryHandler(cfg.Ratings))
		r.Get("/recipes/{id}/comments", handlers.NewListCommentsHandler(cfg.Comments))

		r.Get("/users/{userId}", handlers.NewGetUserHandler(cfg.Users))
		r.Get("/users/{userId}/recipes", handlers.NewListUserRecipesHandler(cfg.Recipes))
		r.Get("/users/{userId}/favorites", handlers.NewListCollectionHandler(cfg.Favorites))
		r.Get("/users/{userId}/my-recipes", handlers.NewListCollectionHandler(cfg.MyRecipes))
		r.Get("/users/{userId}/ratings/{recipeId}", handlers.NewUserRatingHandler(cfg.Ratings))

		// Mutating routes
		r.Group(func(r chi.Router) {
			if cfg.Tokener != nil {
				r.Use(middlewares.AuthMiddleware(cfg.Tokener))
			}

			r.Post("/upload", handlers.NewUploadHandler(cfg.Media))

			r.Post("/recipes", handlers.NewCreateRecipeHandler(cfg.Recipes))
			r.Post("/recipes/with-image", handlers.NewCreateRecipeWithImageHandler(cfg.Media, cfg.Recipes))
			r.Post("/recipes/{id}/comments", handlers.NewCreateCommentHandler(cfg.Comments, cfg.AllowAnonymousComments))

			// Only the author edits a recipe
			r.Group(func(r chi.Router) {
				r.Use(middlewares.RecipeOwnerOnly(cfg.Recipes, "id"))
				r.Put("/recipes/{id}", handlers.NewUpdateRecipeHandler(cfg.Recipes))
				r.Delete("/recipes/{id}", handlers.NewDeleteRecipeHandler(cfg.Recipes))
			})

			// A user only changes their own profile, collections and ratings
			r.Group(func(r chi.Router) {
				r.Use(middlewares.SelfOnly("userId"))

				r.Put("/users/{userId}", handlers.NewRenameUserHandler(cfg.Users))
				r.Put("/users/{userId}/password", handlers.NewChangePasswordHandler(cfg.Users))

				r.Post("/users/{userId}/favorites", handlers.NewAddToCollectionHandler(cfg.Favorites))
				r.Delete("/users/{userId}/favorites/{recipeId}", handlers.NewRemoveFromCollectionHandler(cfg.Favorites))
				r.Post("/users/{userId}/my-recipes", handlers.NewAddToCollectionHandler(cfg.MyRecipes))
				r.Delete("/users/{userId}/my-recipes/{recipeId}", handlers.NewRemoveFromCollectionHandler(cfg.MyRecipes))

				r.Put("/users/{userId}/ratings/{recipeId}", handlers.NewRateRecipeHandler(cfg.Ratings))
				r.Delete("/users/{userId}/ratings/{recipeId}", handlers.NewDeleteRatingHandler(cfg.Ratings))
			})
		})
	})

	return r
}
