package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leengari/kidb/internal/domain/data"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"rows":   s.engine.Table().Len(),
	})
}

// handleLigands lists ligand names; max-len <= 0 disables the length bound.
// GET /v1/ligands
func (s *Server) handleLigands(c *gin.Context) {
	maxLen := intParam(c, "max-len", -1)
	c.JSON(http.StatusOK, s.engine.Ligands(criteriaFrom(c), maxLen))
}

// GET /v1/receptors
func (s *Server) handleReceptors(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.ListUniqueValues(data.FieldReceptor, criteriaFrom(c)))
}

// handleKi returns per-receptor statistics for one ligand. An unknown
// ligand is not an error; it yields empty statistics and sources.
// GET /v1/ki/:ligand
func (s *Server) handleKi(c *gin.Context) {
	// gin has already path-decoded the segment exactly once
	ligand := c.Param("ligand")
	deviation := floatParam(c, "deviation", s.opts.DefaultDeviation)

	result := s.engine.Summarize(ligand, criteriaFrom(c), deviation)
	c.JSON(http.StatusOK, NewKiResponse(result))
}
