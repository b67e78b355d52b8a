package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/config"
	"github.com/ohduang-droid/fc-morphix/domain"
	"net/http"
)

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerateRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		ResponseModalities []string `json:"responseModalities"`
	} `json:"generationConfig"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiGenerateResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiImageGenerator struct {
	ContentFetcher
	logger       outbound.LoggerPort
	geminiConfig *config.GeminiConfig
}

func NewGeminiImageGenerator(contentFetcher ContentFetcher, geminiConfig *config.GeminiConfig, logger outbound.LoggerPort) outbound.ImageGeneratorPort {
	return &geminiImageGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		geminiConfig:   geminiConfig,
	}
}

// Generate produces a single seed image from a text prompt.
func (g *geminiImageGenerator) Generate(ctx context.Context, prompt string) (*domain.ImageRef, error) {
	images, err := g.generate(ctx, []geminiPart{{Text: prompt}})
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, domain.Errorf(domain.ErrExternalService, "model did not return an image for the provided prompt")
	}
	return &domain.ImageRef{
		Data:     images[0].Data,
		MimeType: images[0].MimeType,
	}, nil
}

// GenerateFromImage steers generation with a reference image, returning every
// candidate the model emitted together with its accompanying text.
func (g *geminiImageGenerator) GenerateFromImage(ctx context.Context, prompt string, reference *domain.ImageRef) ([]domain.GeneratedImage, error) {
	if reference.IsEmpty() {
		return nil, domain.Errorf(domain.ErrInvalidRequest, "a reference image is required")
	}

	data := reference.Data
	if len(data) == 0 {
		req, err := http.NewRequestWithContext(ctx, "GET", reference.URL, nil)
		if err != nil {
			return nil, domain.NewPipelineError(domain.ErrInvalidRequest, err)
		}
		data, err = g.FetchContent(req)
		if err != nil {
			return nil, mapTransportError(err)
		}
	}

	mimeType := reference.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	return g.generate(ctx, []geminiPart{
		{Text: prompt},
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
		}},
	})
}

func (g *geminiImageGenerator) generate(ctx context.Context, parts []geminiPart) ([]domain.GeneratedImage, error) {
	reqBody := geminiGenerateRequest{
		Contents: []geminiContent{{Parts: parts}},
	}
	reqBody.GenerationConfig.ResponseModalities = []string{"IMAGE"}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		g.logger.Error(err, "Failed to marshal the request body")
		return nil, domain.NewPipelineError(domain.ErrInvalidRequest, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.geminiConfig.ApiUrl, g.geminiConfig.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		g.logger.Error(err, "Failed to create the HTTP request")
		return nil, domain.NewPipelineError(domain.ErrExternalService, err)
	}
	req.Header.Add("x-goog-api-key", g.geminiConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	rawRes, err := g.FetchContent(req)
	if err != nil {
		return nil, mapTransportError(err)
	}

	var geminiRes geminiGenerateResponse
	if err := json.Unmarshal(rawRes, &geminiRes); err != nil {
		g.logger.Error(err, "Failed to unmarshal the response")
		return nil, domain.NewPipelineError(domain.ErrExternalService, err)
	}
	if len(geminiRes.Candidates) == 0 {
		return nil, domain.Errorf(domain.ErrExternalService, "model returned no candidates")
	}

	images := make([]domain.GeneratedImage, 0)
	lastText := ""
	for _, part := range geminiRes.Candidates[0].Content.Parts {
		if part.Text != "" {
			lastText = part.Text
			continue
		}
		if part.InlineData == nil {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
		if err != nil {
			g.logger.Error(err, "Failed to decode the image")
			return nil, domain.NewPipelineError(domain.ErrExternalService, err)
		}
		images = append(images, domain.GeneratedImage{
			Data:     decoded,
			MimeType: part.InlineData.MimeType,
			Text:     lastText,
		})
		lastText = ""
	}

	return images, nil
}
