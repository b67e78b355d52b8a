package main

import (
	"fmt"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/ohduang-droid/fc-morphix/application/services"
	"github.com/ohduang-droid/fc-morphix/config"
	"github.com/ohduang-droid/fc-morphix/infrastructure/adapters"
	"github.com/ohduang-droid/fc-morphix/infrastructure/gin_interface/controllers"
	"github.com/ohduang-droid/fc-morphix/middleware"
	mockgenerator "github.com/ohduang-droid/fc-morphix/mock"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
	"os"
)

func main() {
	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))

	veoConfig, err := config.GetVeoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get veo config")
	}

	geminiConfig, err := config.GetGeminiConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get gemini config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	jwksUrl := os.Getenv("JWKS_URL")
	if jwksUrl == "" {
		log.Fatal().Msg("JWKS_URL is not set!")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	videoGenerator := adapters.NewVeoClient(contentFetcher, veoConfig, zeroLogger)
	imageGenerator := adapters.NewGeminiImageGenerator(contentFetcher, geminiConfig, zeroLogger)

	videoPublisher := adapters.NewS3VideoPublisher(zeroLogger, s3Client, s3Config)
	mediaStore := adapters.NewS3MediaStore(zeroLogger, s3Client, s3Config)
	runRecorder := adapters.NewDynamoRunRecorder(zeroLogger, dynamoClient, dynamoConfig)

	jobPoller := services.NewJobPoller(zeroLogger, videoGenerator)
	segmentChainer := services.NewSegmentChainer()

	videoPipeline := services.NewVideoPipeline(zeroLogger, videoGenerator, imageGenerator,
		jobPoller, segmentChainer, videoPublisher, runRecorder, veoConfig.MaxPollAttempts)

	imagePipeline := services.NewImagePipeline(zeroLogger, imageGenerator, mediaStore, workerPool)

	videosController := controllers.NewVideosController(zeroLogger, workerPool, videoPipeline, veoConfig)
	imagesController := controllers.NewImagesController(zeroLogger, imagePipeline)

	router := gin.Default()

	err = router.SetTrustedProxies(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	authHandler, err := middleware.NewAuthHandler(jwksUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create auth handler!")
	}

	router.Use(authHandler.AuthMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	mockgenerator.Init(router, workerPool, zeroLogger, videoPublisher, runRecorder, veoConfig)

	videosController.RegisterRoutes(router)
	imagesController.RegisterRoutes(router)

	err = router.Run(":8080")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
