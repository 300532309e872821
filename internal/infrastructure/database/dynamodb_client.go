// Package database builds the clients for the stores SCA sessions and
// payment records live in.
package database

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/nails/driver-invoice-worldpay/internal/config"
)

// DynamoDBOptions selects the region and, for local runs, a custom endpoint
// and static credentials.
type DynamoDBOptions struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// DynamoDBOptionsFromEnv reads:
//   - AWS_REGION (default: eu-west-2)
//   - DYNAMODB_ENDPOINT (optional; e.g. http://dynamodb:8000)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (static credentials, only used with DYNAMODB_ENDPOINT)
func DynamoDBOptionsFromEnv() DynamoDBOptions {
	return DynamoDBOptions{
		Region:          config.Getenv("AWS_REGION", "eu-west-2"),
		Endpoint:        config.Getenv("DYNAMODB_ENDPOINT", ""),
		AccessKeyID:     config.Getenv("AWS_ACCESS_KEY_ID", "local"),
		SecretAccessKey: config.Getenv("AWS_SECRET_ACCESS_KEY", "local"),
	}
}

// NewDynamoDBClient loads the default AWS config chain. With a custom
// endpoint (DynamoDB Local) static credentials are used, since the SDK
// requires some even though the local server ignores them.
func NewDynamoDBClient(ctx context.Context, opts DynamoDBOptions) (*dynamodb.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.Endpoint != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	log.Printf("[worldpay][store] dynamodb client region=%s custom_endpoint=%t", opts.Region, opts.Endpoint != "")
	return client, nil
}
