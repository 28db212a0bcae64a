package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"deep-summarizer/config"
	"deep-summarizer/dto"
	"deep-summarizer/services"
)

const editionCreatedMessage = "Edition created in the editions database. All editions stay there; the front page shows today's."

// DailyBriefingHandler godoc
// @Summary      Run the daily briefing
// @Description  Compose today's edition. With preview it is returned without being written; otherwise it replaces today's stored edition and the front page.
// @Tags         briefing
// @Produce      json
// @Param        secret    query     string  false  "Shared secret (or X-Cron-Secret header)"
// @Param        preview   query     bool    false  "Return the edition without writing it"
// @Param        redirect  query     bool    false  "Redirect to the stored edition on success"
// @Success      200       {object}  dto.EditionResponseDTO
// @Success      302       {string}  string  "Redirect to the stored edition"
// @Failure      400       {object}  dto.ErrorResponseDTO
// @Failure      401       {object}  dto.ErrorResponseDTO
// @Failure      500       {object}  dto.ErrorResponseDTO
// @Router       /daily-briefing [get]
func DailyBriefingHandler(svc *services.EditionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		preview := queryBool(c, "preview")

		res, err := svc.Run(c.Request.Context(), preview)
		if err != nil {
			// configuration the caller can fix before retrying
			if errors.Is(err, config.ErrMissingSetting) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
				return
			}
			respondError(c, err)
			return
		}

		if !preview && queryBool(c, "redirect") && res.EditionURL != "" {
			c.Redirect(http.StatusFound, res.EditionURL)
			return
		}

		body := dto.EditionResponseDTO{
			OK:         true,
			Preview:    preview,
			EditionURL: res.EditionURL,
			Title:      res.Title,
			Date:       res.Date,
			Sections:   res.Edition.Sections,
			Markdown:   res.Markdown,
		}
		if !preview {
			body.Message = editionCreatedMessage
		}
		c.JSON(http.StatusOK, body)
	}
}

func queryBool(c *gin.Context, key string) bool {
	v, ok := c.GetQuery(key)
	if !ok {
		return false
	}
	if v == "" {
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}
