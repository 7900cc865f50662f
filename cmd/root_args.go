package cmd

import (
	"time"

	"github.com/isometry/tag-enforcer/internal/config"
	"github.com/isometry/tag-enforcer/internal/helpers"
)

var envMapString = map[*string]boundEnvVar[string]{
	&config.Global.Mode: {
		Name:        "mode",
		Description: "The application runtime mode. Possible values are 'lambda' and 'service'",
		Short:       helpers.Ptr("m"),
	},
	&config.Global.S3.Upload.BucketName: {
		Name:        "report-s3-upload-bucket",
		Description: "The S3 bucket to use when uploading enforcement reports",
		Env:         helpers.Ptr("ENFORCEMENT_REPORT_S3_BUCKET"),
	},
}

var envMapBool = map[*bool]boundEnvVar[bool]{
	&config.Global.Logging.CallerTrace: {
		Name:        "verbosity-caller-trace",
		Description: "Enable caller trace in logs",
		Short:       helpers.Ptr("V"),
	},
	&config.Enforcement.DryRun: {
		Name:        "enforcement-dry-run",
		Description: "Check tags and log the outcome without terminating or deleting resources",
		Env:         helpers.Ptr("DRY_RUN"),
	},
	&config.Global.S3.Upload.Enabled: {
		Name:        "report-s3-upload",
		Description: "Enable S3 upload of enforcement reports",
		Env:         helpers.Ptr("ENFORCEMENT_REPORT_S3_UPLOAD"),
	},
}

var envMapInt = map[*int]boundEnvVar[int]{
	&config.Global.Logging.Verbosity: {
		Name:        "verbosity",
		Description: "Increase logger verbosity (default InfoLevel)",
		Short:       helpers.Ptr("v"),
		Count:       true,
	},
	&config.AWS.MaxAttempts: {
		Name:        "aws-max-attempts",
		Description: "The maximum number of attempts made for a single AWS API call",
	},
}

var envMapDuration = map[*time.Duration]boundEnvVar[time.Duration]{
	&config.AWS.MaxBackoff: {
		Name:        "aws-max-backoff",
		Description: "The maximum delay between two attempts of an AWS API call",
	},
}
