// Package awsconfig builds the aws.Config shared by the DynamoDB and SNS clients.
package awsconfig

import (
	"context"

	"breachcheck/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/pkg/errors"
)

// loadDefaultConfig is replaced in tests.
var loadDefaultConfig = awsconfig.LoadDefaultConfig

// Load resolves region and credentials. Static keys win over the default
// provider chain when both are configured.
func Load(ctx context.Context, cfg *config.AWSConfig) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error

	if cfg != nil && cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg != nil && cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := loadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "load aws config")
	}

	return awsCfg, nil
}

// BaseEndpoint returns the endpoint override, or nil to use the regional default.
func BaseEndpoint(cfg *config.AWSConfig) *string {
	if cfg == nil || cfg.Endpoint == "" {
		return nil
	}

	return aws.String(cfg.Endpoint)
}
