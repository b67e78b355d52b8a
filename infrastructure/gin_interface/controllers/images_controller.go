package controllers

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/ohduang-droid/fc-morphix/application/ports/inbound"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/infrastructure/gin_interface/dto"
	"net/http"
)

type ImagesController interface {
	GenerateImages(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type imagesController struct {
	logger        outbound.LoggerPort
	imagePipeline inbound.ImagePipelinePort
}

func NewImagesController(logger outbound.LoggerPort, imagePipeline inbound.ImagePipelinePort) ImagesController {
	return &imagesController{
		logger:        logger,
		imagePipeline: imagePipeline,
	}
}

func (i *imagesController) GenerateImages(c *gin.Context) {
	var req dto.GenerateImagesRequest
	newCtx, cancel := context.WithCancel(c)
	defer cancel()

	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := i.imagePipeline.Generate(newCtx, inbound.GenerateImagesParams{
		Prompt:    req.Prompt,
		ImageURL:  req.ImageURL,
		Bucket:    req.Bucket,
		KeyPrefix: req.KeyPrefix,
	})
	if err != nil {
		i.logger.Error(err, "Image generation failed")
		abortWithPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateImagesResponse{
		URLs:  result.URLs,
		Texts: result.Texts,
	})
}

func (i *imagesController) RegisterRoutes(g *gin.Engine) {
	g.POST("/image-to-image", i.GenerateImages)
}
