package enforcer

import (
	"context"
	"log/slog"

	"github.com/isometry/tag-enforcer/internal/helpers"
	"github.com/isometry/tag-enforcer/internal/models"
)

// Kind is the category of a governed resource.
type Kind string

const (
	// Compute is an EC2 instance.
	Compute Kind = "compute"
	// Database is an RDS instance.
	Database Kind = "database"
	// Storage is an S3 bucket.
	Storage Kind = "storage"
)

// Event sources routed to a resource kind.
const (
	SourceEC2 = "aws.ec2"
	SourceRDS = "aws.rds"
	SourceS3  = "aws.s3"
)

// ComputeAPI reads tags from and terminates compute instances.
type ComputeAPI interface {
	InstanceTags(ctx context.Context, instanceID string) ([]models.Tag, error)
	TerminateInstance(ctx context.Context, instanceID string) error
}

// DatabaseAPI reads tags from and deletes database instances.
type DatabaseAPI interface {
	DatabaseTags(ctx context.Context, arn string) ([]models.Tag, error)
	DeleteDatabase(ctx context.Context, identifier string) error
}

// StorageAPI reads tags from and deletes storage buckets.
type StorageAPI interface {
	BucketTags(ctx context.Context, bucket string) ([]models.Tag, error)
	DeleteBucket(ctx context.Context, bucket string) error
}

// Provider is the remote API backing every resource kind.
type Provider interface {
	ComputeAPI
	DatabaseAPI
	StorageAPI
}

// Resource is a newly created resource subject to tag enforcement.
type Resource interface {
	// Kind returns the resource category.
	Kind() Kind
	// ID returns the provider identifier of the resource.
	ID() string
	// Label returns the human-readable name used in log lines.
	Label() string
	// FetchTags returns the current tags of the resource.
	FetchTags(ctx context.Context) ([]models.Tag, error)
	// Enforce removes the resource. A *ContainedError reports a fault the resource already handled.
	Enforce(ctx context.Context) error
	// Action returns the action recorded when Enforce succeeds.
	Action() models.Action
}

type resourceFactory func(event models.Event, provider Provider, logger *slog.Logger) (Resource, error)

var factories = map[string]resourceFactory{
	SourceEC2: newInstance,
	SourceRDS: newDatabase,
	SourceS3:  newBucket,
}

// NewResource builds the resource named by a creation event.
// It returns an *UnhandledSourceError when the event source is not governed.
func NewResource(event models.Event, provider Provider, logger *slog.Logger) (Resource, error) {
	factory, ok := factories[event.Source]
	if !ok {
		return nil, &UnhandledSourceError{Source: event.Source}
	}
	if logger == nil {
		logger = helpers.NewNoopLogger()
	}
	return factory(event, provider, logger)
}
