// Package secrets reads secrets from HashiCorp Vault's KV v2 engine.
package secrets

import (
	"context"
	"fmt"

	vault "github.com/hashicorp/vault/api"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/config"
	domainservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/service"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

// VaultClient reads secrets from a KV v2 mount.
type VaultClient struct {
	client    *vault.Client
	mountPath string
}

// NewVaultClient creates and authenticates the Vault client.
func NewVaultClient(cfg *config.VaultConfig) (*VaultClient, error) {
	vaultCfg := vault.DefaultConfig()
	vaultCfg.Address = cfg.Address

	client, err := vault.NewClient(vaultCfg)
	if err != nil {
		return nil, errors.ErrVault.WithMessage("failed to create vault client").WithError(err)
	}
	client.SetToken(cfg.Token)

	return &VaultClient{client: client, mountPath: cfg.MountPath}, nil
}

var _ domainservice.SecretSource = (*VaultClient)(nil)

// Get reads one key from the secret at path.
func (c *VaultClient) Get(ctx context.Context, path, key string) (string, error) {
	secret, err := c.client.KVv2(c.mountPath).Get(ctx, path)
	if err != nil {
		return "", errors.ErrVault.WithMessage("failed to read secret at %s", path).WithError(err)
	}

	value, ok := secret.Data[key]
	if !ok {
		return "", errors.ErrVault.WithMessage("secret at %s has no key %s", path, key)
	}

	str, ok := value.(string)
	if !ok {
		return "", errors.ErrVault.WithMessage("secret %s/%s is not a string", path, key)
	}
	return str, nil
}

// StaticSecretSource serves secrets from configuration. Used when Vault is
// disabled, e.g. local development.
type StaticSecretSource map[string]string

// Get returns the configured value for path/key.
func (s StaticSecretSource) Get(_ context.Context, path, key string) (string, error) {
	value, ok := s[fmt.Sprintf("%s/%s", path, key)]
	if !ok {
		return "", errors.ErrVault.WithMessage("no static secret for %s/%s", path, key)
	}
	return value, nil
}
