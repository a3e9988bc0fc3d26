// Package secrets resolves database credentials from AWS Secrets Manager.
package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// ErrCredential marks a failed credential lookup. Fatal: nothing connects to
// the database without credentials.
var ErrCredential = errors.New("credential lookup failed")

// localCredentials is the static pair used when running against a local
// database, where no secret store is available.
var localCredentials = Credentials{Username: "root", Password: "strongpassword"}

type Credentials struct {
	Username string
	Password string
}

// Provider fetches the database secret for one environment. The secret lives
// under "{env}/api/rds" and its value is a one-entry JSON object mapping the
// username to the password.
type Provider struct {
	env string
}

func NewProvider(env string) *Provider {
	return &Provider{env: env}
}

func (p *Provider) Fetch(ctx context.Context, region string) (Credentials, error) {
	if p.env == "local" {
		return localCredentials, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithSharedConfigProfile(fmt.Sprintf("nataas-%s", p.env)),
	)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: load aws config: %v", ErrCredential, err)
	}

	client := secretsmanager.NewFromConfig(cfg)
	secretID := fmt.Sprintf("%s/api/rds", p.env)
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return Credentials{}, fmt.Errorf("%w: secret not found: %s", ErrCredential, secretID)
		}
		return Credentials{}, fmt.Errorf("%w: get %s: %v", ErrCredential, secretID, err)
	}

	return parseSecret(aws.ToString(out.SecretString))
}

func parseSecret(raw string) (Credentials, error) {
	var pairs map[string]string
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return Credentials{}, fmt.Errorf("%w: malformed secret value: %v", ErrCredential, err)
	}

	for username, password := range pairs {
		return Credentials{Username: username, Password: password}, nil
	}

	return Credentials{}, fmt.Errorf("%w: secret value holds no credentials", ErrCredential)
}
