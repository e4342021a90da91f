package mazeapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazepath/api"
	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/mazefile"
	"github.com/katalvlaran/mazepath/mazegen"
	"github.com/katalvlaran/mazepath/search"
)

// ErrTooLarge is returned when a grid exceeds the configured cell limit.
var ErrTooLarge = errors.New("mazeapi: grid exceeds cell limit")

var (
	badRequest = []error{
		gridgraph.ErrEmptyGrid,
		gridgraph.ErrNonRectangular,
		gridgraph.ErrInvalidValue,
		gridgraph.ErrBadCell,
		mazefile.ErrNoGrid,
		mazefile.ErrAmbiguousGrid,
		mazefile.ErrBadSymbol,
		search.ErrUnknownStrategy,
		mazegen.ErrBadDimensions,
		mazegen.ErrBadWallChance,
		ErrTooLarge,
	}
	unprocessable = []error{
		search.ErrCellNotOpen,
		mazegen.ErrUnsolvable,
	}
)

// statusFor maps a domain error to an HTTP status.
func statusFor(err error) int {
	for _, target := range unprocessable {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

// abort writes err as a JSON error body with the mapped status.
func abort(ctx *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		api.Logger(ctx).WithError(err).Error("unexpected failure")
		msg = "internal error"
	}
	ctx.AbortWithStatusJSON(status, gin.H{"error": msg})
}
