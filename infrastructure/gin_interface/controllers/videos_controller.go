package controllers

import (
	"context"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ohduang-droid/fc-morphix/application/ports/inbound"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/config"
	"github.com/ohduang-droid/fc-morphix/domain"
	"github.com/ohduang-droid/fc-morphix/infrastructure/gin_interface/dto"
	"net/http"
	"time"
)

type VideosController interface {
	GenerateVideo(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type videosController struct {
	logger        outbound.LoggerPort
	workerPool    outbound.TaskDispatcher
	videoPipeline inbound.VideoPipelinePort
	veoConfig     *config.VeoConfig
}

func NewVideosController(
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher,
	videoPipeline inbound.VideoPipelinePort,
	veoConfig *config.VeoConfig) VideosController {
	return &videosController{
		logger:        logger,
		workerPool:    workerPool,
		videoPipeline: videoPipeline,
		veoConfig:     veoConfig,
	}
}

type runOutcome struct {
	result *inbound.RunResult
	err    error
}

// GenerateVideo runs one multi-segment pipeline on the worker pool so a slow
// run cannot starve unrelated requests, and answers with the single final URL.
func (v *videosController) GenerateVideo(c *gin.Context) {
	var req dto.GenerateVideoRequest
	newCtx, cancel := context.WithCancel(c)
	defer cancel()

	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pollInterval := req.PollInterval
	if pollInterval <= 0 {
		pollInterval = v.veoConfig.PollIntervalSeconds
	}
	maxRetries := v.veoConfig.MaxRetries
	if req.MaxRetries != nil && *req.MaxRetries >= 0 {
		maxRetries = *req.MaxRetries
	}

	params := inbound.StartRunParams{
		RunID:          uuid.NewString(),
		SegmentPrompts: req.SegmentPrompts,
		ImagePrompts:   req.ImagePrompts,
		ImageURLs:      req.ImageURLs,
		Bucket:         req.Bucket,
		KeyPrefix:      req.KeyPrefix,
		PollInterval:   time.Duration(pollInterval) * time.Second,
		MaxRetries:     maxRetries,
	}

	outCh := make(chan runOutcome, 1)
	err := v.workerPool.Submit(func() {
		result, err := v.videoPipeline.StartRun(newCtx, params)
		outCh <- runOutcome{result: result, err: err}
	})
	if err != nil {
		v.logger.Error(err, "Failed to dispatch pipeline run")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	select {
	case <-c.Request.Context().Done():
		return
	case outcome := <-outCh:
		if outcome.err != nil {
			v.logger.ErrorWithFields(outcome.err, "Pipeline run failed", map[string]interface{}{
				"run_id": params.RunID,
			})
			abortWithPipelineError(c, outcome.err)
			return
		}
		c.JSON(http.StatusOK, dto.GenerateVideoResponse{URL: outcome.result.URL})
	}
}

func (v *videosController) RegisterRoutes(g *gin.Engine) {
	g.POST("/image-to-video", v.GenerateVideo)
}

// abortWithPipelineError maps the error taxonomy onto HTTP statuses and
// surfaces the failing segment index when one is known.
func abortWithPipelineError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}

	kind := domain.KindOf(err)
	if kind != "" {
		body["kind"] = string(kind)
	}
	var segErr *domain.SegmentError
	if errors.As(err, &segErr) {
		body["segment_index"] = segErr.Index
	}

	status := http.StatusInternalServerError
	switch kind {
	case domain.ErrInvalidRequest:
		status = http.StatusBadRequest
	case domain.ErrJobTimeout:
		status = http.StatusGatewayTimeout
	case domain.ErrExternalService, domain.ErrJobFailed,
		domain.ErrNoContinuationFrame, domain.ErrSegmentGenerationFailed:
		status = http.StatusBadGateway
	}

	c.AbortWithStatusJSON(status, body)
}
