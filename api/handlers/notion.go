package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deep-summarizer/categorizer"
	"deep-summarizer/dto"
	"deep-summarizer/services"
)

// SaveDocumentHandler godoc
// @Summary      Save to the knowledge base
// @Description  Create a categorized document, or append a clarification or research answer to an existing page
// @Tags         notion
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SaveRequestDTO  true  "Document or follow-up"
// @Success      200   {object}  services.SaveResult
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /notion/save [post]
func SaveDocumentHandler(svc *services.SaveService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SaveRequestDTO
		if !bindJSON(c, &req) {
			return
		}
		res, err := svc.Save(c.Request.Context(), req.ToInput())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// CategoriesHandler godoc
// @Summary      List knowledge base categories
// @Tags         notion
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponseDTO
// @Router       /notion/categories [get]
func CategoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.CategoriesResponseDTO{
			Categories:   categorizer.Areas,
			TopicTags:    categorizer.TopicTags,
			ContentTypes: categorizer.ContentTypes,
		})
	}
}

// SettingsHandler godoc
// @Summary      Front page settings
// @Description  Returns the front page URL, or null when it is not configured
// @Tags         briefing
// @Produce      json
// @Success      200  {object}  dto.SettingsResponseDTO
// @Router       /settings [get]
func SettingsHandler(svc *services.EditionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SettingsResponseDTO
		if u := svc.FrontPageURL(); u != "" {
			body.NotionFrontPageURL = &u
		}
		c.JSON(http.StatusOK, body)
	}
}
