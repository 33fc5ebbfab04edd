package api

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// intParam reads an integer query parameter, falling back to def when the
// parameter is absent or malformed
func intParam(c *gin.Context, name string, def int) int {
	raw, ok := c.GetQuery(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return n
}

// floatParam reads a finite float query parameter, falling back to def
func floatParam(c *gin.Context, name string, def float64) float64 {
	raw, ok := c.GetQuery(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}
