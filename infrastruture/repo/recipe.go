package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	writeTimeout = time.Second
	readTimeout  = 2 * time.Second
)

var ErrRecipeConflict = errors.New("recipe conflict")

// RecipeRepo handles the persistence of maze recipes.
type RecipeRepo struct {
	collection *mongo.Collection
}

var _ i.RecipeRepo = (*RecipeRepo)(nil)

// NewRecipeRepo creates a new RecipeRepo with the given MongoDB client, database name, and collection name.
func NewRecipeRepo(client *mongo.Client, dbName, collectionName string) *RecipeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &RecipeRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the owner/creation index used to list a user's mazes.
func (r *RecipeRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts or updates a recipe in the repository.
func (r *RecipeRepo) Save(ctx context.Context, recipe *dmn.Recipe) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	filter := bson.M{"_id": recipe.ID}
	update := bson.M{
		"$set": bson.M{
			"algorithm":            recipe.Algorithm,
			"size":                 recipe.Size,
			"seed":                 recipe.Seed,
			"extraEdgeProbability": recipe.ExtraEdgeProbability,
			"owner":                recipe.Owner,
			"createdAt":            recipe.CreatedAt,
			"updatedAt":            time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrRecipeConflict, recipe.ID)
		}
		return fmt.Errorf("saving recipe %s: %w", recipe.ID, err)
	}

	return nil
}

// ByID retrieves a recipe by its ID.
// Returns dmn.ErrRecipeNotFound if it is not found.
func (r *RecipeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	var recipe dmn.Recipe
	if err := r.collection.FindOne(ctx, filter).Decode(&recipe); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", dmn.ErrRecipeNotFound, id)
		}
		return nil, fmt.Errorf("loading recipe %s: %w", id, err)
	}
	return &recipe, nil
}

// ByOwner lists the newest recipes created by owner.
func (r *RecipeRepo) ByOwner(ctx context.Context, owner string, limit int64) ([]*dmn.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing recipes of %s: %w", owner, err)
	}
	defer cursor.Close(ctx)

	var recipes []*dmn.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("decoding recipes of %s: %w", owner, err)
	}
	return recipes, nil
}
