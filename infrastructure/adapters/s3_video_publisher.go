package adapters

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/config"
	"github.com/ohduang-droid/fc-morphix/domain"
	"strings"
	"time"
)

type s3VideoPublisher struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3VideoPublisher(logger outbound.LoggerPort, s3Svc *s3.S3, s3Config *config.S3Config) outbound.VideoPublisherPort {
	return &s3VideoPublisher{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

// Publish uploads the final video under a time-partitioned, content-addressed
// key and returns its public URL. Upload errors are surfaced, not retried.
func (s *s3VideoPublisher) Publish(ctx context.Context, req outbound.PublishVideoRequest) (*outbound.PublishVideoResponse, error) {
	if len(req.Video.Data) == 0 {
		return nil, domain.Errorf(domain.ErrStorageUpload, "video artifact is empty")
	}

	bucket := req.Bucket
	if bucket == "" {
		bucket = s.s3Config.BucketName
	}
	prefix := req.KeyPrefix
	if prefix == "" {
		prefix = s.s3Config.VideoPrefix
	}

	mimeType := req.Video.MimeType
	if mimeType == "" {
		mimeType = "video/mp4"
	}

	objectKey := buildObjectKey(prefix, req.Video.Data, "mp4")

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(req.Video.Data),
		ContentLength: aws.Int64(int64(len(req.Video.Data))),
		ContentType:   aws.String(mimeType),
		ACL:           aws.String("public-read"),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload video to S3", map[string]interface{}{
			"bucket": bucket,
			"key":    objectKey,
		})
		return nil, domain.NewPipelineError(domain.ErrStorageUpload, err)
	}

	url := publicObjectURL(bucket, s.s3Config.Region, objectKey)
	s.logger.DebugWithFields("Uploaded video to S3", map[string]interface{}{
		"url": url,
	})

	return &outbound.PublishVideoResponse{
		URL:    url,
		Key:    objectKey,
		Region: s.s3Config.Region,
	}, nil
}

// buildObjectKey partitions objects by UTC date and names them after their
// content hash so concurrent runs never collide.
func buildObjectKey(prefix string, content []byte, extension string) string {
	sum := sha256.Sum256(content)
	datePath := time.Now().UTC().Format("2006/01/02")
	filename := fmt.Sprintf("%s.%s", hex.EncodeToString(sum[:]), extension)

	parts := make([]string, 0, 3)
	if clean := strings.Trim(prefix, "/ "); clean != "" {
		parts = append(parts, clean)
	}
	parts = append(parts, datePath, filename)
	return strings.Join(parts, "/")
}

func publicObjectURL(bucket string, region string, key string) string {
	if region == "us-east-1" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}
