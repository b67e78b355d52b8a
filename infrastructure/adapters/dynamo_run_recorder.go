package adapters

import (
	"context"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/ohduang-droid/fc-morphix/application/ports/outbound"
	"github.com/ohduang-droid/fc-morphix/config"
	"github.com/ohduang-droid/fc-morphix/domain"
	"time"
)

type dynamoRunItem struct {
	RunId        string `dynamodbav:"run_id"`
	Status       string `dynamodbav:"status"`
	SegmentCount int    `dynamodbav:"segment_count"`
	FinalUrl     string `dynamodbav:"final_url"`
	Failure      string `dynamodbav:"failure"`
	UpdatedAt    int64  `dynamodbav:"updated_at"`
	TTL          int64  `dynamodbav:"ttl"`
}

type dynamoRunRecorder struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoRunRecorder(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.RunRecorderPort {
	return &dynamoRunRecorder{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (r *dynamoRunRecorder) Record(ctx context.Context, record domain.RunRecord) error {
	now := time.Now()
	item := dynamoRunItem{
		RunId:        record.RunID,
		Status:       string(record.Status),
		SegmentCount: record.SegmentCount,
		FinalUrl:     record.FinalURL,
		Failure:      record.Failure,
		UpdatedAt:    now.Unix(),
		TTL:          now.Add(time.Duration(r.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}

	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		r.logger.ErrorWithFields(err, "Failed to marshal run item", map[string]interface{}{
			"run_id": record.RunID,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(r.dynamoConfig.TableName),
	}

	_, err = r.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		r.logger.ErrorWithFields(err, "Failed to save run item", map[string]interface{}{
			"run_id": record.RunID,
			"status": record.Status,
		})
		return err
	}

	return nil
}
