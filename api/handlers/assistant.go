package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deep-summarizer/dto"
	"deep-summarizer/services"
)

// ClarifyHandler godoc
// @Summary      Clarify a snippet
// @Description  Explain a highlighted snippet, optionally answering a question about it
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ClarifyRequestDTO  true  "Snippet and question"
// @Success      200   {object}  models.Answer
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /clarify [post]
func ClarifyHandler(svc *services.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ClarifyRequestDTO
		if !bindJSON(c, &req) {
			return
		}
		ans, err := svc.Clarify(c.Request.Context(), req.Snippet, req.Question)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ans)
	}
}

// ResearchHandler godoc
// @Summary      Answer a research question
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ResearchRequestDTO  true  "Question"
// @Success      200   {object}  models.Answer
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /research [post]
func ResearchHandler(svc *services.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ResearchRequestDTO
		if !bindJSON(c, &req) {
			return
		}
		ans, err := svc.Research(c.Request.Context(), req.Question)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, ans)
	}
}

// SpeechHandler godoc
// @Summary      Synthesize speech
// @Description  Returns MP3 audio for the text. Input beyond 4096 characters is dropped.
// @Tags         assistant
// @Accept       json
// @Produce      audio/mpeg
// @Param        body  body      dto.SpeechRequestDTO  true  "Text"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /tts [post]
func SpeechHandler(svc *services.SpeechService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SpeechRequestDTO
		if !bindJSON(c, &req) {
			return
		}
		audio, err := svc.Speak(c.Request.Context(), req.Text)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "audio/mpeg", audio)
	}
}
