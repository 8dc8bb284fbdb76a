// LingoTeach - language-teaching voice skill backend
// License: MIT

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"

	"github.com/lingoteach/lingoteach/pkg/alexa"
	"github.com/lingoteach/lingoteach/pkg/config"
)

func newLambdaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Run as an AWS Lambda skill handler",
		RunE:  runLambda,
	}
}

func runLambda(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rt, cleanup, err := buildRouter(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	lambda.Start(func(ctx context.Context, env alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
		return rt.Route(ctx, &env), nil
	})
	return nil
}
