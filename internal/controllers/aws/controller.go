// Package aws provides the Controller struct that wraps the EC2, RDS and S3 services used to
// inspect and remove non-compliant resources.
package aws

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go/logging"
	"github.com/isometry/tag-enforcer/internal/helpers"
	"github.com/isometry/tag-enforcer/internal/models"
	"github.com/pkg/errors"
)

// EC2API defines the EC2 operations used by the controller.
type EC2API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error)
}

// RDSAPI defines the RDS operations used by the controller.
type RDSAPI interface {
	ListTagsForResource(ctx context.Context, params *rds.ListTagsForResourceInput, optFns ...func(*rds.Options)) (*rds.ListTagsForResourceOutput, error)
	DeleteDBInstance(ctx context.Context, params *rds.DeleteDBInstanceInput, optFns ...func(*rds.Options)) (*rds.DeleteDBInstanceOutput, error)
}

// S3API defines the S3 operations used by the controller.
type S3API interface {
	GetBucketTagging(ctx context.Context, params *s3.GetBucketTaggingInput, optFns ...func(*s3.Options)) (*s3.GetBucketTaggingOutput, error)
	DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Controller represents a wrapper for AWS services providing tag lookup and resource removal
// for EC2 instances, RDS instances and S3 buckets.
type Controller struct {
	ctx    context.Context
	logger *slog.Logger

	config      *aws.Config
	maxAttempts int
	maxBackoff  time.Duration

	ec2Client EC2API
	rdsClient RDSAPI
	s3Client  S3API
}

// Option defines a function type used to configure an instance of the Controller struct.
type Option func(*Controller)

// NewController initializes a Controller with customizable options and default configurations if unspecified.
// The default AWS configuration is only loaded when at least one service client was not injected.
func NewController(opts ...Option) (*Controller, error) {
	_inst := &Controller{}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	_inst.logger = _inst.logger.With("controller", "aws")
	if _inst.ctx == nil {
		_inst.ctx = context.Background()
	}
	needsConfig := _inst.ec2Client == nil || _inst.rdsClient == nil || _inst.s3Client == nil
	if _inst.config == nil && needsConfig {
		_inst.logger.Debug("loading default AWS configuration...")
		cfg, err := config.LoadDefaultConfig(_inst.ctx, config.WithRetryer(_inst.retryer))
		if err != nil {
			return nil, errors.Wrap(err, "failed to load AWS configuration")
		}
		cfg.Logger = newAWSLogger(_inst.logger)
		_inst.config = &cfg
	}

	if _inst.ec2Client == nil {
		_inst.ec2Client = ec2.NewFromConfig(*_inst.config)
	}
	if _inst.rdsClient == nil {
		_inst.rdsClient = rds.NewFromConfig(*_inst.config)
	}
	if _inst.s3Client == nil {
		_inst.s3Client = s3.NewFromConfig(*_inst.config)
	}
	return _inst, nil
}

// retryer returns the adaptive SDK retryer bounded by the configured attempts and backoff.
func (a *Controller) retryer() aws.Retryer {
	var r aws.Retryer = retry.NewAdaptiveMode()
	if a.maxAttempts > 0 {
		r = retry.AddWithMaxAttempts(r, a.maxAttempts)
	}
	if a.maxBackoff > 0 {
		r = retry.AddWithMaxBackoffDelay(r, a.maxBackoff)
	}
	return r
}

// InstanceTags returns the tags of the EC2 instance with the given ID.
// An instance without tags yields an empty slice.
func (a *Controller) InstanceTags(ctx context.Context, instanceID string) ([]models.Tag, error) {
	a.logger.With("instanceId", instanceID).Debug("describing EC2 instance...")
	out, err := a.ec2Client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to describe EC2 instance %s", instanceID)
	}
	if len(out.Reservations) == 0 || len(out.Reservations[0].Instances) == 0 {
		return nil, errors.Errorf("EC2 instance %s not found", instanceID)
	}

	instanceTags := out.Reservations[0].Instances[0].Tags
	tags := make([]models.Tag, 0, len(instanceTags))
	for _, t := range instanceTags {
		tags = append(tags, models.Tag{Key: helpers.String(t.Key), Value: helpers.String(t.Value)})
	}
	return tags, nil
}

// TerminateInstance terminates the EC2 instance with the given ID without waiting for completion.
func (a *Controller) TerminateInstance(ctx context.Context, instanceID string) error {
	a.logger.With("instanceId", instanceID).Debug("terminating EC2 instance...")
	_, err := a.ec2Client.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to terminate EC2 instance %s", instanceID)
	}
	return nil
}

// DatabaseTags returns the tags of the RDS resource identified by arn.
func (a *Controller) DatabaseTags(ctx context.Context, arn string) ([]models.Tag, error) {
	a.logger.With("arn", arn).Debug("listing RDS tags...")
	out, err := a.rdsClient.ListTagsForResource(ctx, &rds.ListTagsForResourceInput{
		ResourceName: aws.String(arn),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list tags for RDS resource %s", arn)
	}

	tags := make([]models.Tag, 0, len(out.TagList))
	for _, t := range out.TagList {
		tags = append(tags, models.Tag{Key: helpers.String(t.Key), Value: helpers.String(t.Value)})
	}
	return tags, nil
}

// DeleteDatabase deletes the RDS instance with the given identifier. No final snapshot is taken.
func (a *Controller) DeleteDatabase(ctx context.Context, identifier string) error {
	a.logger.With("dbInstanceIdentifier", identifier).Debug("deleting RDS instance...")
	_, err := a.rdsClient.DeleteDBInstance(ctx, &rds.DeleteDBInstanceInput{
		DBInstanceIdentifier: aws.String(identifier),
		SkipFinalSnapshot:    aws.Bool(true),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete RDS instance %s", identifier)
	}
	return nil
}

// BucketTags returns the tag set of the given S3 bucket.
// The underlying API error is preserved so callers can classify it.
func (a *Controller) BucketTags(ctx context.Context, bucket string) ([]models.Tag, error) {
	a.logger.With("bucket", bucket).Debug("fetching S3 bucket tagging...")
	out, err := a.s3Client.GetBucketTagging(ctx, &s3.GetBucketTaggingInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get tagging for S3 bucket %s", bucket)
	}

	tags := make([]models.Tag, 0, len(out.TagSet))
	for _, t := range out.TagSet {
		tags = append(tags, models.Tag{Key: helpers.String(t.Key), Value: helpers.String(t.Value)})
	}
	return tags, nil
}

// DeleteBucket deletes the given S3 bucket.
func (a *Controller) DeleteBucket(ctx context.Context, bucket string) error {
	a.logger.With("bucket", bucket).Debug("deleting S3 bucket...")
	_, err := a.s3Client.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete S3 bucket %s", bucket)
	}
	return nil
}

// PutS3Object uploads a JSON object to the specified S3 bucket with a key formatted as a timestamp and the provided ID.
// Nothing is uploaded when bucket is empty.
func (a *Controller) PutS3Object(ctx context.Context, id string, bucket string, body []byte) error {
	if bucket == "" {
		return nil
	}
	key := fmt.Sprintf("%s.%s.json", time.Now().UTC().Format(time.RFC3339Nano), id)
	_, err := a.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to put object to S3")
	}
	return nil
}

type awsLogger struct {
	logger *slog.Logger
}

func newAWSLogger(logger *slog.Logger) *awsLogger {
	return &awsLogger{logger}
}

func (a *awsLogger) Logf(classification logging.Classification, format string, args ...any) {
	msg := fmt.Sprintf("[%v] %s", classification, fmt.Sprintf(format, args...))
	if classification == logging.Warn {
		a.logger.Warn(msg)
		return
	}
	a.logger.Debug(msg)
}
