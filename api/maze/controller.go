// Package mazeapi handles maze creation and the maze views.
package mazeapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves the maze endpoints.
type MazeController struct {
	mazeService i.MazeService
	logger      i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService, logger i.Logger) (*MazeController, error) {
	if ms == nil || logger == nil {
		return nil, service.ErrMissingDependency
	}
	return &MazeController{
		mazeService: ms,
		logger:      logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/algorithms", mc.algorithms)

	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.recent)
		mazes.GET("/:ID", mc.snapshot)
		mazes.GET("/:ID/lines", mc.lines)
		mazes.GET("/:ID/image.png", mc.image)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	route.POST("/mazes", mc.create)
	route.GET("/me/mazes", mc.owned)
}

func (mc *MazeController) algorithms(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &AlgorithmsResponse{Algorithms: maze.Algorithms()})
}

// create generates a maze for the authenticated caller.
func (mc *MazeController) create(ctx *gin.Context) {
	owner, ok := identity.Owner(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := mc.mazeService.Create(ctx, i.CreateMazeRequest{
		Algorithm:            request.Algorithm,
		Size:                 request.Size,
		Seed:                 request.Seed,
		ExtraEdgeProbability: request.ExtraEdgeProbability,
		Owner:                owner,
	})
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("%s/%s", strings.TrimSuffix(ctx.FullPath(), "/"), snapshot.Recipe.ID))
	ctx.JSON(http.StatusCreated, &MazeResponse{Snapshot: snapshot})
}

// snapshot returns a maze; ?ascii=true adds the text drawing.
func (mc *MazeController) snapshot(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}

	snapshot, err := mc.mazeService.Snapshot(ctx, id)
	if err != nil {
		mc.fail(ctx, err)
		return
	}

	response := &MazeResponse{Snapshot: snapshot}
	if ctx.Query("ascii") == "true" {
		m, err := snapshot.Maze()
		if err != nil {
			mc.fail(ctx, err)
			return
		}
		response.ASCII = m.String()
	}
	ctx.JSON(http.StatusOK, response)
}

func (mc *MazeController) lines(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	canvas, ok := bindCanvas(ctx)
	if !ok {
		return
	}

	lines, err := mc.mazeService.Lines(ctx, id, canvas)
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &LinesResponse{Width: canvas.Width, Height: canvas.Height, Lines: lines})
}

func (mc *MazeController) image(ctx *gin.Context) {
	id, ok := mazeID(ctx)
	if !ok {
		return
	}
	canvas, ok := bindCanvas(ctx)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := mc.mazeService.PNG(ctx, id, canvas, &buf); err != nil {
		mc.fail(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (mc *MazeController) recent(ctx *gin.Context) {
	var query ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes, err := mc.mazeService.Recent(ctx, query.Limit)
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &RecipesResponse{Recipes: recipes})
}

func (mc *MazeController) owned(ctx *gin.Context) {
	owner, ok := identity.Owner(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}
	var query ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipes, err := mc.mazeService.Owned(ctx, owner, query.Limit)
	if err != nil {
		mc.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &RecipesResponse{Recipes: recipes})
}

// fail maps service errors to status codes.
func (mc *MazeController) fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, dmn.ErrInvalidRecipe), errors.Is(err, service.ErrInvalidCanvas):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrRecipeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
	default:
		mc.logger.Error(fmt.Sprintf("%s %s: %s", ctx.Request.Method, ctx.Request.URL.Path, err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func mazeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

func bindCanvas(ctx *gin.Context) (i.Canvas, bool) {
	var query CanvasQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return i.Canvas{}, false
	}
	return i.Canvas{Width: query.Width, Height: query.Height, Thickness: query.Thickness}, true
}
