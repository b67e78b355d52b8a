package config

import (
	"os"
)

const (
	defaultBucket      = "amzn-s3-fc-bucket"
	defaultRegion      = "us-east-1"
	defaultVideoPrefix = "videos"
	defaultImagePrefix = "images"
)

type S3Config struct {
	BucketName  string
	Region      string
	VideoPrefix string
	ImagePrefix string
}

func GetS3Config() (*S3Config, error) {
	bucketName := os.Getenv("S3_BUCKET")
	if bucketName == "" {
		bucketName = os.Getenv("S3_BUCKET_NAME")
	}
	if bucketName == "" {
		bucketName = defaultBucket
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = os.Getenv("AWS_DEFAULT_REGION")
	}
	if region == "" {
		region = defaultRegion
	}

	videoPrefix := os.Getenv("S3_VIDEO_PREFIX")
	if videoPrefix == "" {
		videoPrefix = os.Getenv("S3_KEY_PREFIX")
	}
	if videoPrefix == "" {
		videoPrefix = defaultVideoPrefix
	}

	imagePrefix := os.Getenv("S3_IMAGE_PREFIX")
	if imagePrefix == "" {
		imagePrefix = defaultImagePrefix
	}

	return &S3Config{
		BucketName:  bucketName,
		Region:      region,
		VideoPrefix: videoPrefix,
		ImagePrefix: imagePrefix,
	}, nil
}
