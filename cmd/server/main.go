package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"botshield/internal/config"
	"botshield/internal/detector"
	"botshield/internal/handler"
	"botshield/internal/model"
	"botshield/internal/mq"
	"botshield/internal/repository"
	"botshield/internal/service"
	"botshield/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title BotShield API
// @version 1.0
// @description Bot classification and crawler access control service
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
	defer mysqlRepo.Close()

	// Initialize MQ producer (optional, can be nil)
	var mqProducer mq.ProducerInterface
	if cfg.RocketMQ.NameServer != "" {
		p, err := mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		} else {
			mqProducer = p
			defer p.Close()
		}
	}

	// Initialize services
	catalogue := service.LoadCatalogue(cfg.Shield.CataloguePath)
	snapshotTTL := time.Duration(cfg.Shield.SnapshotTTLSeconds) * time.Second
	statsCacheTTL := time.Duration(cfg.Shield.StatsCacheTTLSeconds) * time.Second

	filterSvc := service.NewAgentFilterService(redisRepo.GetClient(), &cfg.Filter)
	settingsSvc := service.NewSettingsService(mysqlRepo, redisRepo, cfg.Shield.BlockingDefault)
	decisionSvc := service.NewDecisionService(mysqlRepo, redisRepo, settingsSvc, filterSvc, catalogue, snapshotTTL)
	directiveSvc := service.NewDirectiveService(mysqlRepo, redisRepo)
	statsSvc := service.NewStatsService(mysqlRepo, redisRepo, statsCacheTTL)

	scorerCfg := detector.DefaultConfig()
	if cfg.Detector.Threshold > 0 {
		scorerCfg.Threshold = cfg.Detector.Threshold
	}
	detectionSvc := service.NewDetectionService(detector.NewScorer(scorerCfg), mysqlRepo, redisRepo, mqProducer, catalogue)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())
	router.Use(middleware.Shield(decisionSvc))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		directivesHandler := handler.NewDirectivesHandler(directiveSvc)
		v1.POST("/directives", directivesHandler.Save)
		v1.GET("/directives", directivesHandler.Get)

		blockingHandler := handler.NewBlockingHandler(settingsSvc)
		v1.POST("/blocking", blockingHandler.Set)
		v1.GET("/blocking", blockingHandler.Get)

		statsHandler := handler.NewStatsHandler(statsSvc, detectionSvc)
		v1.GET("/stats", statsHandler.GetStats)
		v1.GET("/stats/live", statsHandler.GetLive)
		v1.GET("/events", statsHandler.GetEvents)

		visitHandler := handler.NewVisitHandler(detectionSvc)
		v1.POST("/log-visit", visitHandler.LogVisit)
	}

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start MQ consumer if configured
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		// Create consumer with handler that saves to MySQL
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *mq.DetectionEventMessage) error {
			event := &model.DetectionEvent{
				EventID:     msg.EventID,
				UserAgent:   msg.UserAgent,
				Referrer:    msg.Referrer,
				URL:         msg.URL,
				BotName:     msg.BotName,
				IsBot:       msg.IsBot,
				Score:       msg.Score,
				ClientScore: msg.ClientScore,
				ObservedAt:  msg.ObservedAt,
			}
			return mysqlRepo.SaveDetectionEvent(ctx, event)
		})

		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
