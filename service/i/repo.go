package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// RecipeRepo defines the interface for maze recipe persistence operations.
type RecipeRepo interface {
	// Save inserts or updates a recipe in the repository.
	Save(ctx context.Context, recipe *dmn.Recipe) error

	// ByID retrieves a recipe by its unique ID.
	// Returns dmn.ErrRecipeNotFound if no recipe has that ID.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.Recipe, error)

	// ByOwner lists the newest recipes created by owner.
	ByOwner(ctx context.Context, owner string, limit int64) ([]*dmn.Recipe, error)
}
