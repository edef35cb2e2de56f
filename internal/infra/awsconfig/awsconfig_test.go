package awsconfig

import (
	"context"
	"testing"

	"breachcheck/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLoadDefaultConfig(t *testing.T, fn func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error)) {
	t.Helper()

	orig := loadDefaultConfig
	loadDefaultConfig = fn
	t.Cleanup(func() { loadDefaultConfig = orig })
}

func TestLoad_AppliesRegionAndStaticCredentials(t *testing.T) {
	var lo awsconfig.LoadOptions
	stubLoadDefaultConfig(t, func(_ context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}

		return aws.Config{Region: lo.Region}, nil
	})

	awsCfg, err := Load(context.Background(), &config.AWSConfig{
		Region:          "ap-south-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "ap-south-1", awsCfg.Region)
	require.NotNil(t, lo.Credentials)
	creds, err := lo.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKIDEXAMPLE", creds.AccessKeyID)
}

func TestLoad_DefaultChainWhenNoKeys(t *testing.T) {
	var lo awsconfig.LoadOptions
	stubLoadDefaultConfig(t, func(_ context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}

		return aws.Config{}, nil
	})

	_, err := Load(context.Background(), &config.AWSConfig{AccessKeyID: "only-id"})
	require.NoError(t, err)
	assert.Nil(t, lo.Credentials)
	assert.Empty(t, lo.Region)
}

func TestLoad_Error(t *testing.T) {
	stubLoadDefaultConfig(t, func(context.Context, ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	})

	_, err := Load(context.Background(), nil)
	assert.ErrorContains(t, err, "load-fail")
}

func TestBaseEndpoint(t *testing.T) {
	assert.Nil(t, BaseEndpoint(nil))
	assert.Nil(t, BaseEndpoint(&config.AWSConfig{}))
	assert.Equal(t, "http://localhost:4566", aws.ToString(BaseEndpoint(&config.AWSConfig{Endpoint: "http://localhost:4566"})))
}
