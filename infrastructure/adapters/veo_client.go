package adapters

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/config"
	"github.com/ohduang-droid/fc-morphix/domain"
	"net/http"
)

type veoMedia struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded,omitempty"`
	Uri                string `json:"uri,omitempty"`
	MimeType           string `json:"mimeType,omitempty"`
}

type veoGenerateRequest struct {
	Prompt string    `json:"prompt"`
	Image  *veoMedia `json:"image,omitempty"`
}

type veoGeneratedVideo struct {
	Video     veoMedia  `json:"video"`
	LastFrame *veoMedia `json:"lastFrame,omitempty"`
}

type veoOperationResponse struct {
	GeneratedVideos []veoGeneratedVideo `json:"generatedVideos"`
}

type veoOperation struct {
	Name  string `json:"name"`
	Done  bool   `json:"done"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Response *veoOperationResponse `json:"response,omitempty"`
}

type veoClient struct {
	ContentFetcher
	logger    outbound.LoggerPort
	veoConfig *config.VeoConfig
}

func NewVeoClient(contentFetcher ContentFetcher, veoConfig *config.VeoConfig, logger outbound.LoggerPort) outbound.VideoGeneratorPort {
	return &veoClient{
		ContentFetcher: contentFetcher,
		logger:         logger,
		veoConfig:      veoConfig,
	}
}

// Submit starts one video generation job. The returned operation name is the
// opaque job handle polled afterwards. Each call consumes provider quota.
func (v *veoClient) Submit(ctx context.Context, params outbound.SubmitSegmentParams) (domain.JobHandle, error) {
	if params.Prompt == "" {
		return "", domain.Errorf(domain.ErrInvalidRequest, "segment prompt is empty")
	}

	image, err := v.resolveImage(ctx, params.SeedImage)
	if err != nil {
		return "", err
	}

	reqBody := veoGenerateRequest{
		Prompt: params.Prompt,
		Image:  image,
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		v.logger.Error(err, "Failed to marshal the generation request body")
		return "", domain.NewPipelineError(domain.ErrInvalidRequest, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateVideos", v.veoConfig.ApiUrl, v.veoConfig.Model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		v.logger.Error(err, "Failed to create the HTTP request")
		return "", domain.NewPipelineError(domain.ErrExternalService, err)
	}
	req.Header.Add("x-goog-api-key", v.veoConfig.ApiKey)
	req.Header.Add("Content-Type", "application/json")

	rawRes, err := v.FetchContent(req)
	if err != nil {
		return "", mapTransportError(err)
	}

	var operation veoOperation
	if err := json.Unmarshal(rawRes, &operation); err != nil {
		v.logger.Error(err, "Failed to unmarshal the operation response")
		return "", domain.NewPipelineError(domain.ErrExternalService, err)
	}
	if operation.Name == "" {
		return "", domain.Errorf(domain.ErrExternalService, "provider returned an operation without a name")
	}

	return domain.JobHandle(operation.Name), nil
}

// Poll reports one status observation for the handle. When the operation is
// done it also materializes the video bytes and the chaining frame.
func (v *veoClient) Poll(ctx context.Context, handle domain.JobHandle) (*domain.JobPoll, error) {
	url := fmt.Sprintf("%s/%s", v.veoConfig.ApiUrl, handle)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		v.logger.Error(err, "Failed to create the HTTP request")
		return nil, domain.NewPipelineError(domain.ErrExternalService, err)
	}
	req.Header.Add("x-goog-api-key", v.veoConfig.ApiKey)

	rawRes, err := v.FetchContent(req)
	if err != nil {
		return nil, mapTransportError(err)
	}

	var operation veoOperation
	if err := json.Unmarshal(rawRes, &operation); err != nil {
		v.logger.Error(err, "Failed to unmarshal the operation response")
		return nil, domain.NewPipelineError(domain.ErrExternalService, err)
	}

	if !operation.Done {
		return &domain.JobPoll{State: domain.JobRunning}, nil
	}
	if operation.Error != nil {
		return &domain.JobPoll{
			State:       domain.JobFailed,
			FailureNote: operation.Error.Message,
		}, nil
	}
	if operation.Response == nil || len(operation.Response.GeneratedVideos) == 0 {
		// Done without a video; the poller treats this as a failed job.
		return &domain.JobPoll{State: domain.JobSucceeded}, nil
	}

	result, err := v.buildResult(ctx, operation.Response.GeneratedVideos[0])
	if err != nil {
		return nil, err
	}

	return &domain.JobPoll{
		State:  domain.JobSucceeded,
		Result: result,
	}, nil
}

func (v *veoClient) buildResult(ctx context.Context, generated veoGeneratedVideo) (*domain.SegmentResult, error) {
	videoData, err := v.mediaBytes(ctx, generated.Video)
	if err != nil {
		return nil, err
	}

	mimeType := generated.Video.MimeType
	if mimeType == "" {
		mimeType = "video/mp4"
	}

	result := &domain.SegmentResult{
		Video: domain.VideoArtifact{
			Data:      videoData,
			SourceURL: generated.Video.Uri,
			MimeType:  mimeType,
		},
	}

	if generated.LastFrame != nil {
		frameData, err := base64.StdEncoding.DecodeString(generated.LastFrame.BytesBase64Encoded)
		if err != nil {
			v.logger.Error(err, "Failed to decode the last frame")
			return nil, domain.NewPipelineError(domain.ErrExternalService, err)
		}
		result.FinalFrame = &domain.ImageRef{
			URL:      generated.LastFrame.Uri,
			Data:     frameData,
			MimeType: generated.LastFrame.MimeType,
		}
	}

	return result, nil
}

// mediaBytes materializes a video either from the inline payload or by
// downloading the referenced file.
func (v *veoClient) mediaBytes(ctx context.Context, media veoMedia) ([]byte, error) {
	if media.BytesBase64Encoded != "" {
		data, err := base64.StdEncoding.DecodeString(media.BytesBase64Encoded)
		if err != nil {
			v.logger.Error(err, "Failed to decode the video payload")
			return nil, domain.NewPipelineError(domain.ErrExternalService, err)
		}
		return data, nil
	}
	if media.Uri == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", media.Uri, nil)
	if err != nil {
		return nil, domain.NewPipelineError(domain.ErrExternalService, err)
	}
	req.Header.Add("x-goog-api-key", v.veoConfig.ApiKey)

	data, err := v.FetchContent(req)
	if err != nil {
		return nil, mapTransportError(err)
	}
	return data, nil
}

// resolveImage turns a seed image reference into an inline payload,
// downloading it first when only a URL is known.
func (v *veoClient) resolveImage(ctx context.Context, ref *domain.ImageRef) (*veoMedia, error) {
	if ref.IsEmpty() {
		return nil, nil
	}

	data := ref.Data
	if len(data) == 0 {
		req, err := http.NewRequestWithContext(ctx, "GET", ref.URL, nil)
		if err != nil {
			return nil, domain.NewPipelineError(domain.ErrInvalidRequest, err)
		}
		data, err = v.FetchContent(req)
		if err != nil {
			return nil, mapTransportError(err)
		}
	}

	mimeType := ref.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	return &veoMedia{
		BytesBase64Encoded: base64.StdEncoding.EncodeToString(data),
		MimeType:           mimeType,
	}, nil
}

// mapTransportError classifies fetcher failures: client-side status codes mean
// the request itself was malformed, everything else is the provider's fault.
func mapTransportError(err error) error {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 &&
		statusErr.StatusCode != http.StatusTooManyRequests {
		return domain.NewPipelineError(domain.ErrInvalidRequest, err)
	}
	return domain.NewPipelineError(domain.ErrExternalService, err)
}
