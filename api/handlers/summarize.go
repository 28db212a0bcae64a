package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deep-summarizer/dto"
	"deep-summarizer/services"
)

// SummarizeHandler godoc
// @Summary      Summarize a source
// @Description  Extract text from a paste, file, URL or podcast title and return a layered summary
// @Tags         summaries
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SummarizeRequestDTO  true  "Source"
// @Success      200   {object}  dto.SummarizeResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      422   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /summarize [post]
func SummarizeHandler(svc *services.SummaryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SummarizeRequestDTO
		if !bindJSON(c, &req) {
			return
		}
		in, ok := req.ToInput()
		if !ok {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "fileBase64 is not valid base64"})
			return
		}

		out, err := svc.Summarize(c.Request.Context(), services.SummarizeInput{
			Source:             in,
			CustomInstructions: req.CustomInstructions,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.SummarizeResponseDTO{
			SummaryResult: *out.Summary,
			SourceLabel:   out.SourceLabel,
			Usage:         out.Usage,
			CostUSD:       out.CostUSD,
		})
	}
}
