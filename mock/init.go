package mock_generator

import (
	"github.com/gin-gonic/gin"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/application/services"
	"github.com/ohduang-droid/fc-morphix/config"
	"github.com/ohduang-droid/fc-morphix/infrastructure/gin_interface/controllers"
)

// Init registers /mock/image-to-video: the real pipeline wired against canned
// generators, so the full run (seeding, chaining, publishing) can be smoke
// tested without spending provider quota.
func Init(
	router *gin.Engine,
	workerPool outbound.TaskDispatcher,
	logger outbound.LoggerPort,
	publisher outbound.VideoPublisherPort,
	runRecorder outbound.RunRecorderPort,
	veoConfig *config.VeoConfig) {
	videoGenerator := NewCannedVideoGenerator()
	imageGenerator := NewCannedImageGenerator()

	poller := services.NewJobPoller(logger, videoGenerator)
	chainer := services.NewSegmentChainer()

	pipeline := services.NewVideoPipeline(logger, videoGenerator, imageGenerator,
		poller, chainer, publisher, runRecorder, veoConfig.MaxPollAttempts)

	controller := controllers.NewVideosController(logger, workerPool, pipeline, veoConfig)

	router.POST("/mock/image-to-video", controller.GenerateVideo)
}
