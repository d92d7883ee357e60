package gateway

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
	"github.com/sicko7947/colorstore"
	"github.com/sicko7947/colorstore/broker"
	"github.com/sicko7947/colorstore/service"
	"github.com/sicko7947/colorstore/store"
)

// NewTenantServiceFactory builds the production service factory: each
// request assumes the tenant role through the broker and talks to the
// table with the brokered credentials, so a tenant session can only
// reach its own partition of the data plane.
func NewTenantServiceFactory(
	brk broker.Broker,
	awsCfg aws.Config,
	tableName, indexName string,
	logger zerolog.Logger,
) ServiceFactory {
	return func(ctx context.Context, tenantID string) (*service.ColorService, error) {
		creds, err := brk.AssumeTenantRole(ctx, tenantID)
		if err != nil {
			return nil, err
		}

		logger.Debug().
			Str("event", colorstore.EventCredentialsIssued).
			Str("tenant_id", tenantID).
			Time("expiration", creds.Expiration).
			Msg("Tenant credentials issued")

		tenantCfg := awsCfg.Copy()
		tenantCfg.Credentials = credentials.NewStaticCredentialsProvider(
			creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken)

		colorStore := store.NewDynamoDBStore(dynamodb.NewFromConfig(tenantCfg), tableName, indexName)

		return service.NewColorService(colorStore, service.WithLogger(logger)), nil
	}
}
