package models

// Domain event types published to the event stream.
const (
	EventRecipeCreated  = "recipe.created"
	EventRecipeUpdated  = "recipe.updated"
	EventRecipeDeleted  = "recipe.deleted"
	EventRatingUpserted = "rating.upserted"
	EventCommentCreated = "comment.created"
)

// Event represents a domain change, keyed by the recipe it concerns.
type Event struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Type      string `json:"type"`      // One of the Event* constants
	Timestamp int64  `json:"timestamp"` // Unix seconds
	RecipeID  string `json:"recipe_id"` // Recipe the event concerns
	UserID    string `json:"user_id,omitempty"`
	Payload   any    `json:"payload,omitempty"`
}
