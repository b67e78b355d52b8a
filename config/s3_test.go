package config

import (
	"testing"
)

func TestGetS3Config_Defaults(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	t.Setenv("S3_BUCKET_NAME", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("S3_VIDEO_PREFIX", "")
	t.Setenv("S3_KEY_PREFIX", "")
	t.Setenv("S3_IMAGE_PREFIX", "")

	cfg, err := GetS3Config()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if cfg.BucketName != defaultBucket {
		t.Errorf("unexpected bucket: %s", cfg.BucketName)
	}
	if cfg.Region != defaultRegion {
		t.Errorf("unexpected region: %s", cfg.Region)
	}
	if cfg.VideoPrefix != defaultVideoPrefix || cfg.ImagePrefix != defaultImagePrefix {
		t.Errorf("unexpected prefixes: %+v", cfg)
	}
}

func TestGetS3Config_FallbackNames(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	t.Setenv("S3_BUCKET_NAME", "alt-bucket")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "eu-west-1")
	t.Setenv("S3_VIDEO_PREFIX", "")
	t.Setenv("S3_KEY_PREFIX", "clips")

	cfg, err := GetS3Config()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if cfg.BucketName != "alt-bucket" {
		t.Errorf("S3_BUCKET_NAME fallback was not used: %s", cfg.BucketName)
	}
	if cfg.Region != "eu-west-1" {
		t.Errorf("AWS_DEFAULT_REGION fallback was not used: %s", cfg.Region)
	}
	if cfg.VideoPrefix != "clips" {
		t.Errorf("S3_KEY_PREFIX fallback was not used: %s", cfg.VideoPrefix)
	}
}
