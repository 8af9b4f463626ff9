package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmosets/config"
	"github.com/lshigami/Marmosets/database"
	_ "github.com/lshigami/Marmosets/docs" // Swagger docs - auto-generated
	"github.com/lshigami/Marmosets/internal/controller"
	adminctrl "github.com/lshigami/Marmosets/internal/controller/admin"
	"github.com/lshigami/Marmosets/internal/logger"
	"github.com/lshigami/Marmosets/internal/middleware"
	"github.com/lshigami/Marmosets/internal/model"
	"github.com/lshigami/Marmosets/internal/repository"
	"github.com/lshigami/Marmosets/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title AI Mock Interview API
// @version 1.0
// @description API for AI-driven mock interviews: session plans, answer scoring, feedback, and per-user analytics.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewInterviewRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewFeedbackRepository,
			repository.NewAnalyticsRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewGeminiService,
			service.NewQuestionPlanService,
			service.NewAnalyticsService,
			service.NewQuestionService,
			service.NewAuthService,
			service.NewInterviewService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAuthController,
			controller.NewInterviewController,
			controller.NewQuestionController,
			controller.NewAnalyticsController,
			adminctrl.NewAdminQuestionController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *controller.AuthController,
	interviewCtrl *controller.InterviewController,
	questionCtrl *controller.QuestionController,
	analyticsCtrl *controller.AnalyticsController,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
) {
	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)

		// Public question catalog
		questionsGroup := api.Group("/questions")
		questionsGroup.GET("", questionCtrl.GetAllQuestions)
		questionsGroup.GET("/:question_id", questionCtrl.GetQuestionByID)
		questionsGroup.GET("/domain/:domain/:job_role", questionCtrl.GetQuestionsByDomain)
		questionsGroup.GET("/type/:type/:domain", questionCtrl.GetQuestionsByType)
		questionsGroup.GET("/difficulty/:domain/:difficulty", questionCtrl.GetQuestionsByDifficulty)

		authed := api.Group("", middleware.RequireAuth(authService))
		{
			authed.PUT("/auth/profile", authCtrl.UpdateProfile)

			interviewsGroup := authed.Group("/interviews")
			interviewsGroup.POST("/start", interviewCtrl.StartInterview)
			interviewsGroup.GET("/my-interviews", interviewCtrl.GetMyInterviews)
			interviewsGroup.GET("/:interview_id", interviewCtrl.GetInterview)
			interviewsGroup.GET("/:interview_id/questions", interviewCtrl.GetInterviewQuestions)
			interviewsGroup.GET("/:interview_id/next-question", interviewCtrl.GetNextQuestion)
			interviewsGroup.GET("/:interview_id/feedback", interviewCtrl.GetFeedback)
			interviewsGroup.POST("/:interview_id/submit-answer", interviewCtrl.SubmitAnswer)
			interviewsGroup.POST("/:interview_id/complete", interviewCtrl.CompleteInterview)

			analyticsGroup := authed.Group("/analytics")
			analyticsGroup.GET("/my-analytics", analyticsCtrl.GetMyAnalytics)
			analyticsGroup.GET("/recalculate", analyticsCtrl.RecalculateAnalytics)

			adminGroup := authed.Group("/admin", middleware.RequireAdmin(authService))
			adminGroup.POST("/questions", adminQuestionCtrl.CreateQuestion)
			adminGroup.PUT("/questions/:question_id", adminQuestionCtrl.UpdateQuestion)
			adminGroup.DELETE("/questions/:question_id", adminQuestionCtrl.DeleteQuestion)
		}
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("AI Mock Interview API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Interview{},
		&model.PlanSlot{},
		&model.InterviewQuestion{},
		&model.Answer{},
		&model.Feedback{},
		&model.Analytics{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
