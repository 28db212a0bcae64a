package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deep-summarizer/usage"
)

// UsageHandler godoc
// @Summary      Usage and cost
// @Description  Totals, per-endpoint cost, the last 30 days and the 50 most recent calls
// @Tags         usage
// @Produce      json
// @Success      200  {object}  usage.Stats
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /usage [get]
func UsageHandler(ledger *usage.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := ledger.Stats(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
