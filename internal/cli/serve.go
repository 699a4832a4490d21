package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sidimedmar/profeleve/internal/config"
	"github.com/sidimedmar/profeleve/internal/handlers"
	"github.com/sidimedmar/profeleve/internal/services"
	"github.com/sidimedmar/profeleve/internal/store"
	"github.com/sidimedmar/profeleve/internal/ws"
)

// NewServeCmd builds the CLI subcommand to start the server.
func NewServeCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.ServerPort
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	st := store.NewStore()
	st.Seed()

	hub := ws.NewHub()

	scoringService := services.NewScoringService()
	editorService := services.NewEditorService(st, cfg.ClampCorrectOnTypeChange)
	attemptService := services.NewAttemptService(st, scoringService)
	analyticsService := services.NewAnalyticsService(st)
	aiService := services.NewAIGenerateService(cfg.AIAPIKey, cfg.AIAPIURL, cfg.AIModel)

	quizHandler := handlers.NewQuizHandler(st)
	editorHandler := handlers.NewEditorHandler(editorService)
	attemptHandler := handlers.NewAttemptHandler(attemptService, hub)
	dashboardHandler := handlers.NewDashboardHandler(analyticsService)
	aiHandler := handlers.NewAIGenerateHandler(editorService, aiService)
	i18nHandler := handlers.NewI18nHandler()
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/dashboard", wsHandler.HandleDashboard)

	api := r.Group("/api/v1")
	{
		api.GET("/i18n/:lang", i18nHandler.GetTranslations)
		api.GET("/quiz", quizHandler.GetActiveQuiz)

		editor := api.Group("/editor")
		{
			editor.POST("", editorHandler.StartEditing)
			editor.GET("", editorHandler.GetWorkingCopy)
			editor.DELETE("", editorHandler.Discard)
			editor.POST("/questions", editorHandler.AddQuestion)
			editor.PUT("/questions/:id", editorHandler.UpdateQuestion)
			editor.DELETE("/questions/:id", editorHandler.RemoveQuestion)
			editor.POST("/questions/:id/options", editorHandler.AddOption)
			editor.PUT("/questions/:id/options/:oid", editorHandler.UpdateOption)
			editor.POST("/questions/:id/options/:oid/toggle", editorHandler.ToggleCorrect)
			editor.POST("/publish", editorHandler.Publish)
			editor.GET("/ai-status", aiHandler.CheckAI)
			editor.POST("/generate", aiHandler.Generate)
		}

		attempts := api.Group("/attempts")
		{
			attempts.POST("", attemptHandler.StartAttempt)
			attempts.GET("/:id", attemptHandler.GetAttempt)
			attempts.POST("/:id/answers", attemptHandler.SelectOption)
			attempts.POST("/:id/submit", attemptHandler.Submit)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/summary", dashboardHandler.GetSummary)
			dashboard.GET("/distribution", dashboardHandler.GetDistribution)
			dashboard.GET("/timeline", dashboardHandler.GetTimeline)
			dashboard.GET("/students", dashboardHandler.GetStudentSeries)
			dashboard.GET("/submissions", dashboardHandler.ListSubmissions)
			dashboard.GET("/export", dashboardHandler.ExportCSV)
		}
	}

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("server starting on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
