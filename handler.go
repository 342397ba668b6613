package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/m-mizutani/goerr/v2"
	"go.uber.org/zap"
)

type RecordCreator interface {
	Call(attrs MemeAttributes) (MemeRecord, error)
}

type S3Api interface {
	ListObjectsV2(input *s3.ListObjectsV2Input) (*s3.ListObjectsV2Output, error)
}

type Handler struct {
	creator  RecordCreator
	s3Client S3Api
	logger   *zap.Logger
}

func NewHandler(config Config, logger *zap.Logger) *Handler {
	sess := session.Must(session.NewSession())
	store := NewDynamoDBStore(sess, config.TableName)
	return &Handler{
		creator:  NewCreateMemeRecordService(store),
		s3Client: s3.New(sess),
		logger:   logger,
	}
}

func (h *Handler) record(attrs MemeAttributes) error {
	record, err := h.creator.Call(attrs)
	if err != nil {
		h.logger.Error("failed to record meme",
			zap.String("filename", attrs.Filename),
			zap.Error(err))
		return err
	}
	h.logger.Info("recorded meme",
		zap.String("id", record.ID),
		zap.String("filename", record.Filename),
		zap.Int64("content_size", record.ContentSize))

	return nil
}

func (h *Handler) HandleLambdaEvent(event S3ObjectCreatedEvent) error {
	attrs, err := ExtractMemeAttributes(event)
	if err != nil {
		h.logger.Error("invalid upload notification", zap.Error(err))
		return err
	}
	return h.record(attrs)
}

// HandleS3URL records every object under an s3://bucket/prefix URL, one at a
// time, stopping at the first failure.
func (h *Handler) HandleS3URL(url string) error {
	bucket, prefix, err := ParseS3URL(url)
	if err != nil {
		return fmt.Errorf("failed to parse S3 URL: %w", err)
	}

	var continuationToken *string
	for {
		resp, err := h.s3Client.ListObjectsV2(&s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return goerr.Wrap(err, "failed to list objects", goerr.V("bucket", bucket), goerr.V("prefix", prefix))
		}

		for _, item := range resp.Contents {
			err := h.record(MemeAttributes{
				Filename:    aws.StringValue(item.Key),
				ContentSize: aws.Int64Value(item.Size),
			})
			if err != nil {
				return err
			}
		}

		if resp.IsTruncated == nil || !*resp.IsTruncated {
			break
		}
		continuationToken = resp.NextContinuationToken
	}

	return nil
}
