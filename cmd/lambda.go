package cmd

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func cmdLambda() *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Run the enforcer inside the AWS Lambda runtime",
		RunE:  runLambda,
	}
}

func runLambda(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd)
	if err != nil {
		return errors.Wrap(err, "failed to setup lambda")
	}

	logger.Info("lambda starting...")
	lambda.StartWithOptions(rt.Lambda,
		lambda.WithContext(cmd.Context()))
	return nil
}
