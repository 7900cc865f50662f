package cmd

import (
	"github.com/isometry/tag-enforcer/internal/config"
	"github.com/isometry/tag-enforcer/internal/controllers/aws"
	"github.com/isometry/tag-enforcer/internal/enforcer"
	"github.com/isometry/tag-enforcer/internal/runtime"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// setup wires the AWS controller, the enforcer and the runtime from the loaded configuration.
func setup(cmd *cobra.Command) (*runtime.Runtime, error) {
	logger.Debug("creating AWS controller...")
	ctrl, err := aws.NewController(
		aws.WithContext(cmd.Context()),
		aws.WithRetry(config.AWS.MaxAttempts, config.AWS.MaxBackoff),
		aws.WithLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create AWS controller")
	}

	logger.Debug("creating enforcer...", "dryRun", config.Enforcement.DryRun)
	enf := enforcer.New(ctrl,
		enforcer.WithDryRun(config.Enforcement.DryRun),
		enforcer.WithLogger(logger.With("component", "enforcer")))

	opts := []runtime.Option{
		runtime.WithLogger(logger.With("component", "runtime")),
	}
	if config.Global.S3.Upload.Enabled {
		if config.Global.S3.Upload.BucketName == "" {
			return nil, errors.New("report upload is enabled but no bucket is configured")
		}
		opts = append(opts, runtime.WithReporter(ctrl, config.Global.S3.Upload.BucketName))
	}

	logger.Debug("creating runtime...")
	return runtime.NewRuntime(enf, opts...), nil
}
