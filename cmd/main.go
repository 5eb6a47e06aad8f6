package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/mhindle4/marty-backend/application/services"
	"github.com/mhindle4/marty-backend/config"
	"github.com/mhindle4/marty-backend/infrastructure/adapters"
	"github.com/mhindle4/marty-backend/infrastructure/gin_interface/controllers"
	"github.com/mhindle4/marty-backend/middleware"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	generationConfig, err := config.GetGenerationConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get generation config")
	}

	elevenLabsConfig, err := config.GetElevenLabsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get eleven labs config")
	}

	personaConfig, err := config.GetPersonaConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get persona config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(serverConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	replyGenerator, err := adapters.NewReplyGenerator(context.Background(), serverConfig.TextBackend,
		generationConfig, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create reply generator")
	}

	contentFetcher := adapters.NewContentFetcher(elevenLabsConfig.Timeout, zeroLogger)
	synthesizer := adapters.NewElevenLabsSynthesizer(contentFetcher, elevenLabsConfig, zeroLogger)

	audioStore, err := adapters.NewDiskAudioStore(serverConfig.AudioDir, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create audio store")
	}

	seasoner := services.NewReplySeasoner(personaConfig, adapters.NewRandSource())

	orchestrator := services.NewChatOrchestrator(zeroLogger, workerPool, replyGenerator, seasoner,
		synthesizer, audioStore, personaConfig)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.CORSMiddleware())

	router.Static("/static/audio", serverConfig.AudioDir)

	pagesController := controllers.NewPagesController(".")
	pagesController.RegisterRoutes(router)

	chatController := controllers.NewChatController(zeroLogger, orchestrator)
	chatController.RegisterRoutes(router)

	if err := router.Run(fmt.Sprintf(":%d", serverConfig.Port)); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
