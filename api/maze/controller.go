package mazeapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/api"
	"github.com/katalvlaran/mazepath/compare"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/mazegen"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/search"
)

// Settings are the server-side defaults and limits of the maze endpoints.
type Settings struct {
	DefaultStrategy search.Strategy
	WallChance      float64
	MaxAttempts     int
	MaxCells        int // 0 disables the limit
}

// Controller serves solve, compare and generate.
type Controller struct {
	settings Settings
}

// NewController initializes a Controller.
func NewController(settings Settings) *Controller {
	return &Controller{settings: settings}
}

// RegisterPublic registers public routes.
func (mc *Controller) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/solve", mc.solve)
	route.POST("/compare", mc.compare)
	route.POST("/generate", mc.generate)
}

// solve runs one strategy over the posted layout.
func (mc *Controller) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	strategy := mc.settings.DefaultStrategy
	if request.Strategy != "" {
		s, err := search.ParseStrategy(request.Strategy)
		if err != nil {
			abort(ctx, err)
			return
		}
		strategy = s
	}

	gg, err := mc.graph(&request.Layout)
	if err != nil {
		abort(ctx, err)
		return
	}
	start, end := request.Endpoints(gg)

	res, err := search.Search(strategy, gg, start, end)
	if err != nil {
		abort(ctx, err)
		return
	}
	cost, err := search.PathCost(gg, res.Path)
	if err != nil {
		abort(ctx, err)
		return
	}

	api.Logger(ctx).WithFields(logrus.Fields{
		"strategy": strategy,
		"found":    res.Found(),
		"expanded": res.Expanded(),
	}).Debug("solved")

	response := &SolveResponse{
		Strategy:   strategy,
		Start:      start,
		End:        end,
		Found:      res.Found(),
		Path:       res.Path,
		PathLength: res.PathLength(),
		PathCost:   cost,
		Expanded:   res.Expanded(),
		Discovered: res.Discovered(),
	}
	overlays := []render.Option{render.WithPath(res.Path), render.WithEndpoints(start, end)}
	if request.IncludeVisited {
		response.Visited = res.Visited
		overlays = append([]render.Option{render.WithVisited(res.Visited)}, overlays...)
	}
	response.Rendered = render.ASCII(gg, overlays...)

	ctx.JSON(http.StatusOK, response)
}

// compare runs several strategies over the posted layout.
func (mc *Controller) compare(ctx *gin.Context) {
	var request CompareRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var strategies []search.Strategy
	for _, name := range request.Strategies {
		s, err := search.ParseStrategy(name)
		if err != nil {
			abort(ctx, err)
			return
		}
		strategies = append(strategies, s)
	}

	gg, err := mc.graph(&request.Layout)
	if err != nil {
		abort(ctx, err)
		return
	}
	start, end := request.Endpoints(gg)

	report, err := compare.Run(gg, start, end, strategies...)
	if err != nil {
		abort(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// generate draws a random solvable maze.
func (mc *Controller) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := mc.checkSize(request.Rows, request.Cols); err != nil {
		abort(ctx, err)
		return
	}

	opts := []mazegen.Option{
		mazegen.WithWallChance(mc.settings.WallChance),
		mazegen.WithMaxAttempts(mc.attempts(request.MaxAttempts)),
	}
	if request.WallChance != nil {
		opts = append(opts, mazegen.WithWallChance(*request.WallChance))
	}
	if request.Seed != nil {
		opts = append(opts, mazegen.WithSeed(*request.Seed))
	}
	if request.Repair {
		opts = append(opts, mazegen.WithRepair())
	}

	gg, err := mazegen.Generate(request.Rows, request.Cols, opts...)
	if err != nil {
		abort(ctx, err)
		return
	}

	layout := mazefile.FromGraph("", gg)
	ctx.JSON(http.StatusOK, &GenerateResponse{
		Layout:   layout,
		Rendered: render.ASCII(gg, render.WithEndpoints(*layout.Start, *layout.End)),
	})
}

// graph validates the layout size and builds its grid graph.
func (mc *Controller) graph(l *mazefile.Layout) (*gridgraph.GridGraph, error) {
	values, err := l.Values()
	if err != nil {
		return nil, err
	}
	cols := 0
	if len(values) > 0 {
		cols = len(values[0])
	}
	if err := mc.checkSize(len(values), cols); err != nil {
		return nil, err
	}
	return gridgraph.NewGridGraph(values)
}

// checkSize rejects grids over MaxCells. Each dimension is compared
// against the limit before the product so huge sizes cannot overflow.
func (mc *Controller) checkSize(rows, cols int) error {
	limit := mc.settings.MaxCells
	if limit <= 0 || rows <= 0 || cols <= 0 {
		return nil
	}
	if rows > limit || cols > limit || rows > limit/cols {
		return fmt.Errorf("%w: %dx%d > %d", ErrTooLarge, rows, cols, limit)
	}
	return nil
}

// attempts lets a request lower the server's redraw limit, never raise it.
func (mc *Controller) attempts(requested int) int {
	limit := mc.settings.MaxAttempts
	switch {
	case requested <= 0:
		return limit
	case limit <= 0:
		return requested
	}
	return min(requested, limit)
}
