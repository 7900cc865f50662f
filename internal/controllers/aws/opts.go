package aws

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// WithLogger sets a custom slog.Logger instance for the Controller struct to use for logging operations.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Controller) {
		a.logger = logger
	}
}

// WithContext sets the context used while loading the AWS configuration.
func WithContext(ctx context.Context) Option {
	return func(a *Controller) {
		a.ctx = ctx
	}
}

// WithConfig sets an already loaded AWS configuration.
func WithConfig(cfg *aws.Config) Option {
	return func(a *Controller) {
		a.config = cfg
	}
}

// WithRetry bounds the SDK retryer. Zero values keep the SDK defaults.
func WithRetry(maxAttempts int, maxBackoff time.Duration) Option {
	return func(a *Controller) {
		a.maxAttempts = maxAttempts
		a.maxBackoff = maxBackoff
	}
}

// WithEC2Client overrides the EC2 client.
func WithEC2Client(client EC2API) Option {
	return func(a *Controller) {
		a.ec2Client = client
	}
}

// WithRDSClient overrides the RDS client.
func WithRDSClient(client RDSAPI) Option {
	return func(a *Controller) {
		a.rdsClient = client
	}
}

// WithS3Client overrides the S3 client.
func WithS3Client(client S3API) Option {
	return func(a *Controller) {
		a.s3Client = client
	}
}
