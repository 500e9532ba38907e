// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions selects where configuration is read from. The zero value means
// the standard lookup: the config directory first, then a config.toml in the
// working directory.
type LoadOptions struct {
	// ConfigFilePath reads exactly this file when set; a missing file is an
	// error rather than a fallthrough.
	ConfigFilePath string
	// ConfigDirPath replaces the config directory lookup when set.
	ConfigDirPath string
}

// Provider yields configuration on demand. The CLI holds one and loads at
// startup; tests steer it at fixtures through LoadOptions.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider returns the file-backed Provider.
func NewProvider() Provider {
	return fileProvider{}
}

func (fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads like Provider.Load and additionally reports which config
// file supplied the values. The path is empty when only defaults, .env
// entries, and environment variables applied.
func Resolve(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	return loadWithOptions(ctx, opts)
}
