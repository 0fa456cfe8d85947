package http

import (
	"errors"
	"net/http"

	"github.com/bingohq/rng/internal/rng"
	"github.com/gin-gonic/gin"
)

// Random

type randomParams struct {
	X int64 `form:"x,default=1"`
	Y int64 `form:"y,default=90"`
}

func (s *server) random(c *gin.Context) {
	var params randomParams

	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	v, err := s.api.Sample("http", params.X, params.Y)
	if err != nil {
		var rangeErr *rng.InvalidRangeError
		if errors.As(err, &rangeErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": rangeErr.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, v)
}
