package handlers

//go:generate mockgen -source=comments.go -destination=comments_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/validation"
)

type CommentLister interface {
	List(ctx context.Context, recipeID uuid.UUID) ([]models.CommentDB, error)
}

type CommentCreator interface {
	Create(ctx context.Context, in models.NewComment) (*models.CommentDB, error)
}

// NewListCommentsHandler returns the 50 most recent comments of a recipe.
// @Summary List comments
// @Tags comments
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {array} models.CommentDB
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /recipes/{id}/comments [get]
func NewListCommentsHandler(svc CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, ok := pathUUID(w, r, recipeIDParam)
		if !ok {
			return
		}

		comments, err := svc.List(r.Context(), recipeID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, comments)
	}
}

// NewCreateCommentHandler posts a comment. Unless allowAnonymous is set,
// userId is required and must name an existing user.
// @Summary Create comment
// @Description The field text is accepted as an alias of content
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param request body models.CreateCommentRequest true "Comment"
// @Success 201 {object} models.CommentDB
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Unknown recipe or user"
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /recipes/{id}/comments [post]
func NewCreateCommentHandler(svc CommentCreator, allowAnonymous bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, ok := pathUUID(w, r, recipeIDParam)
		if !ok {
			return
		}

		var req models.CreateCommentRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		req.Normalize()
		var author string
		if req.UserID != nil {
			author = *req.UserID
		}
		if !actingUser(w, r, &author) {
			return
		}
		if author != "" {
			req.UserID = &author
		}
		if !validate(w, &req) {
			return
		}
		if req.UserID == nil && !allowAnonymous {
			writeValidationError(w, &validation.Error{Fields: []models.FieldError{{Field: "userId", Message: "is required"}}})
			return
		}

		in := models.NewComment{
			RecipeID:   recipeID,
			AuthorName: req.AuthorName,
			Content:    req.Content,
		}
		if req.UserID != nil {
			userID, err := validation.UUID("userId", *req.UserID)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			in.UserID = &userID
		}

		comment, err := svc.Create(r.Context(), in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, comment)
	}
}
