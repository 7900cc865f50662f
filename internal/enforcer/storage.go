package enforcer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/smithy-go"
	"github.com/isometry/tag-enforcer/internal/models"
)

const noSuchTagSet = "NoSuchTagSet"

type bucket struct {
	name   string
	api    StorageAPI
	logger *slog.Logger
}

func newBucket(event models.Event, provider Provider, logger *slog.Logger) (Resource, error) {
	name := event.Detail.RequestParameters.BucketName
	if name == "" {
		return nil, &MissingFieldError{Source: event.Source, Field: "detail.requestParameters.bucketName"}
	}
	return &bucket{name: name, api: provider, logger: logger}, nil
}

func (r *bucket) Kind() Kind            { return Storage }
func (r *bucket) ID() string            { return r.name }
func (r *bucket) Label() string         { return "S3 bucket " + r.name }
func (r *bucket) Action() models.Action { return models.ActionDeleted }

// FetchTags treats a bucket without a tag set as having no tags.
func (r *bucket) FetchTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := r.api.BucketTags(ctx, r.name)
	if err != nil {
		if isNoSuchTagSet(err) {
			r.logger.Debug("bucket has no tag set", slog.String("bucket", r.name))
			return []models.Tag{}, nil
		}
		return nil, err
	}
	return tags, nil
}

// Enforce deletes the bucket. Deletion faults are logged and contained.
func (r *bucket) Enforce(ctx context.Context) error {
	if err := r.api.DeleteBucket(ctx, r.name); err != nil {
		r.logger.Warn(fmt.Sprintf("Failed to delete bucket %s: %v", r.name, err), slog.Any("error", err))
		return &ContainedError{Cause: err}
	}
	return nil
}

func isNoSuchTagSet(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == noSuchTagSet {
		return true
	}
	return strings.Contains(err.Error(), noSuchTagSet)
}
