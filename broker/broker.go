// Package broker issues per-tenant scoped storage credentials by
// assuming a tenant-tagged IAM role. The data-plane isolation policy
// itself lives on the role; this package only acquires the session.
package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/sicko7947/colorstore"
)

// TenantCredentials are short-lived credentials scoped to one tenant.
type TenantCredentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
}

// Broker acquires tenant-scoped storage credentials.
type Broker interface {
	AssumeTenantRole(ctx context.Context, tenantID string) (*TenantCredentials, error)
}

// STSClient defines the interface for STS operations used by the broker.
// This interface allows for easy mocking in tests without requiring actual AWS infrastructure.
type STSClient interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// Verify that the real STS client implements our interface
var _ STSClient = (*sts.Client)(nil)

// STSBroker implements Broker over AWS STS AssumeRole with a tenantId
// session tag.
type STSBroker struct {
	client   STSClient
	roleARN  string
	duration time.Duration
}

// NewSTSBroker creates a broker assuming roleARN for each tenant
// session. A zero duration falls back to 15 minutes, the minimum STS
// session lifetime.
func NewSTSBroker(client STSClient, roleARN string, duration time.Duration) *STSBroker {
	if duration <= 0 {
		duration = 15 * time.Minute
	}
	return &STSBroker{
		client:   client,
		roleARN:  roleARN,
		duration: duration,
	}
}

func (b *STSBroker) AssumeTenantRole(ctx context.Context, tenantID string) (*TenantCredentials, error) {
	if err := colorstore.ValidateTenantID(tenantID); err != nil {
		return nil, err
	}

	result, err := b.client.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(b.roleARN),
		RoleSessionName: aws.String(fmt.Sprintf("tenant-%s", tenantID)),
		DurationSeconds: aws.Int32(int32(b.duration.Seconds())),
		Tags: []types.Tag{
			{Key: aws.String("tenantId"), Value: aws.String(tenantID)},
		},
	})
	if err != nil {
		// Assume-role failures are reported as an invalid tenant: the
		// tenant may not exist or may not be entitled to the data plane.
		return nil, colorstore.NewErrorf(colorstore.ErrCodeInvalidTenantID,
			"failed to assume tenant role: %v", err)
	}

	creds := &TenantCredentials{
		AccessKeyID:     aws.ToString(result.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(result.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(result.Credentials.SessionToken),
	}
	if result.Credentials.Expiration != nil {
		creds.Expiration = *result.Credentials.Expiration
	}

	return creds, nil
}
