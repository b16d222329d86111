package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/validation"
)

// NewCreateRecipeWithImageHandler creates a recipe from a multipart form.
// An attached image is uploaded first and its URL replaces imageUrl.
// @Summary Create recipe with image
// @Tags recipes
// @Accept multipart/form-data
// @Produce json
// @Param image formData file false "Recipe image, at most 5 MiB"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param categoryId formData integer false "Category ID"
// @Param imageUrl formData string false "Image URL, ignored when a file is attached"
// @Param ingredients formData string false "JSON array of {name, amount}"
// @Param prepTime formData string false "Preparation time"
// @Param cookTime formData string false "Cooking time"
// @Param servings formData integer false "Servings"
// @Param difficulty formData string false "Fácil, Media or Difícil"
// @Param userId formData string true "Author ID"
// @Success 201 {object} models.RecipeDB
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Unknown user"
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /recipes/with-image [post]
func NewCreateRecipeWithImageHandler(uploader Uploader, svc RecipeCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseMultipart(w, r) {
			return
		}

		req, verr := recipeFromForm(r)
		if verr != nil {
			writeValidationError(w, verr)
			return
		}
		if !actingUser(w, r, &req.UserID) {
			return
		}

		data, contentType, ok := readImage(w, r)
		if !ok {
			return
		}
		if data != nil {
			// The uploaded URL is trusted; check the rest before paying for the upload.
			req.ImageURL = nil
			if !validate(w, req) {
				return
			}
			res, err := uploader.Upload(r.Context(), data, contentType)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			req.ImageURL = &res.URL
		}

		createRecipe(w, r, svc, req)
	}
}

// recipeFromForm maps form fields onto the JSON schema. Empty fields count as absent.
func recipeFromForm(r *http.Request) (*models.CreateRecipeRequest, *validation.Error) {
	var (
		req    models.CreateRecipeRequest
		fields []models.FieldError
	)

	optional := func(key string) *string {
		if v := r.FormValue(key); v != "" {
			return &v
		}
		return nil
	}
	flexInt := func(key string) *models.FlexInt {
		v := r.FormValue(key)
		if v == "" {
			return nil
		}
		n, err := models.ParseFlexInt(v)
		if err != nil {
			fields = append(fields, models.FieldError{Field: key, Message: "must be of type integer"})
			return nil
		}
		return &n
	}

	req.Title = r.FormValue("title")
	req.UserID = r.FormValue("userId")
	req.Description = optional("description")
	req.ImageURL = optional("imageUrl")
	req.PrepTime = optional("prepTime")
	req.CookTime = optional("cookTime")
	req.Difficulty = optional("difficulty")
	req.CategoryID = flexInt("categoryId")
	req.Servings = flexInt("servings")

	if raw := r.FormValue("ingredients"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Ingredients); err != nil {
			fields = append(fields, models.FieldError{Field: "ingredients", Message: "must be of type array"})
		}
	}

	if len(fields) > 0 {
		return nil, &validation.Error{Fields: fields}
	}
	return &req, nil
}
