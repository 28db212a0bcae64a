package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"deep-summarizer/api/auth"
	"deep-summarizer/api/handlers"
	"deep-summarizer/api/middleware"
	"deep-summarizer/app"
	_ "deep-summarizer/docs"
)

func New(a *app.App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/summarize", handlers.SummarizeHandler(a.Summaries))

		api.GET("/daily-briefing", auth.RequireSecret(a.Config.Secrets.CronSecret), handlers.DailyBriefingHandler(a.Editions))
		api.GET("/settings", handlers.SettingsHandler(a.Editions))

		api.POST("/clarify", handlers.ClarifyHandler(a.Assistant))
		api.POST("/research", handlers.ResearchHandler(a.Assistant))
		api.POST("/tts", handlers.SpeechHandler(a.Speech))

		api.POST("/notion/save", handlers.SaveDocumentHandler(a.Documents))
		api.GET("/notion/categories", handlers.CategoriesHandler())

		api.GET("/usage", handlers.UsageHandler(a.Ledger))
	}

	return r
}
