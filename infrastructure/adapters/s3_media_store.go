package adapters

import (
	"bytes"
	"context"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/config"
	"github.com/ohduang-droid/fc-morphix/domain"
)

type s3MediaStore struct {
	logger   outbound.LoggerPort
	s3Svc    *s3.S3
	s3Config *config.S3Config
}

func NewS3MediaStore(logger outbound.LoggerPort, s3Svc *s3.S3, s3Config *config.S3Config) outbound.MediaStorePort {
	return &s3MediaStore{
		logger:   logger,
		s3Svc:    s3Svc,
		s3Config: s3Config,
	}
}

func (s *s3MediaStore) SaveImage(ctx context.Context, req outbound.SaveImageRequest) (string, error) {
	if len(req.Image.Data) == 0 {
		return "", domain.Errorf(domain.ErrStorageUpload, "image is empty")
	}

	bucket := req.Bucket
	if bucket == "" {
		bucket = s.s3Config.BucketName
	}
	prefix := req.KeyPrefix
	if prefix == "" {
		prefix = s.s3Config.ImagePrefix
	}

	mimeType := req.Image.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	objectKey := buildObjectKey(prefix, req.Image.Data, "png")

	putInput := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(req.Image.Data),
		ContentLength: aws.Int64(int64(len(req.Image.Data))),
		ContentType:   aws.String(mimeType),
		ACL:           aws.String("public-read"),
	}

	_, err := s.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to upload image to S3", map[string]interface{}{
			"bucket": bucket,
			"key":    objectKey,
		})
		return "", domain.NewPipelineError(domain.ErrStorageUpload, err)
	}

	return publicObjectURL(bucket, s.s3Config.Region, objectKey), nil
}
