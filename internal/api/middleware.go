package api

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leengari/kidb/internal/domain/data"
	"github.com/leengari/kidb/internal/query/filter"
)

const criteriaKey = "kidb.criteria"

// corsMiddleware returns a Gin middleware that sets CORS headers
func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// criteriaMiddleware extracts field filters from the query string
func criteriaMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(criteriaKey, CriteriaFromQuery(c.Request.URL.Query()))
		c.Next()
	}
}

// CriteriaFromQuery keeps only parameters named after record fields.
// Every value of a repeated parameter joins that field's allowed set.
func CriteriaFromQuery(q url.Values) filter.Criteria {
	criteria := filter.Criteria{}
	for name, values := range q {
		field, err := data.ParseField(name)
		if err != nil {
			continue
		}
		criteria[field] = append([]string(nil), values...)
	}
	return criteria
}

func criteriaFrom(c *gin.Context) filter.Criteria {
	if v, ok := c.Get(criteriaKey); ok {
		if criteria, ok := v.(filter.Criteria); ok {
			return criteria
		}
	}
	return nil
}

// observe logs every request and feeds the HTTP metrics
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", status,
			"duration", elapsed,
		)

		if s.metrics != nil {
			s.metrics.ObserveRequest(c.Request.Method, c.FullPath(), status, elapsed)
		}
	}
}
