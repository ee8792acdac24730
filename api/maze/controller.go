package mazeapi

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/game/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Defaults fill in fields a create request leaves out.
type Defaults struct {
	Rows           int
	Cols           int
	VerticalProb   float64
	HorizontalProb float64
	Seed           int64
}

// MazeController serves maze generation and retrieval.
type MazeController struct {
	mazeService i.MazeService
	defaults    Defaults
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService, defaults Defaults) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller: nil maze service")
	}
	return &MazeController{
		mazeService: ms,
		defaults:    defaults,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.get)
		mazes.GET("/:ID/render", mc.render)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/:ID/regenerate", mc.regenerate)
		mazes.DELETE("/:ID", mc.delete)
	}
}

// create generates, solves and caches a new maze.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	spec := i.MazeSpec{
		Rows:           valueOr(request.Rows, mc.defaults.Rows),
		Cols:           valueOr(request.Cols, mc.defaults.Cols),
		VerticalProb:   valueOr(request.VerticalProb, mc.defaults.VerticalProb),
		HorizontalProb: valueOr(request.HorizontalProb, mc.defaults.HorizontalProb),
		Seed:           valueOr(request.Seed, mc.defaults.Seed),
	}

	solved, err := mc.mazeService.Create(ctx.Request.Context(), spec)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(solved))
}

// get returns a cached maze with its search result.
func (mc *MazeController) get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	solved, err := mc.mazeService.Get(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(solved))
}

// render returns the maze drawn as ASCII with the path overlaid.
func (mc *MazeController) render(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	solved, err := mc.mazeService.Get(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, solved.Maze.RenderPath(solved.Result.Entry, solved.Path))
}

// regenerate redraws the walls of a cached maze.
func (mc *MazeController) regenerate(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	solved, err := mc.mazeService.Regenerate(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(solved))
}

// delete drops a cached maze.
func (mc *MazeController) delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := mc.mazeService.Delete(ctx.Request.Context(), id); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, maze.ErrInvalidDimension), errors.Is(err, maze.ErrInvalidProbability):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
	case errors.Is(err, dmn.ErrMazeBusy):
		ctx.JSON(http.StatusConflict, gin.H{"error": "maze is busy"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while handling maze"})
	}
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
