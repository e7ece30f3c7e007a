package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
)

const maxListLimit = 100

func abortInvalid(c *gin.Context, err error) {
	_ = c.Error(fmt.Errorf("%w: %s", errs.ErrInvalidRequest, err.Error()))
}

// queryLimit reads ?limit=; 0 lets the use case apply its default
func queryLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxListLimit {
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", errs.ErrInvalidRequest, maxListLimit)
	}
	return limit, nil
}
