package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/keyring"
	"github.com/julianstephens/habitrack/internal/logger"
)

// ConfigSource names where the store config came from.
type ConfigSource string

const (
	SourceFlag    ConfigSource = "flag"
	SourceEnv     ConfigSource = "environment"
	SourceKeyring ConfigSource = "keyring"
	SourceDefault ConfigSource = "default"
)

// ResolvedConfig is the store config picked by ResolveConfig.
type ResolvedConfig struct {
	Value  string
	Source ConfigSource
}

// Trusted reports whether the value came from a place where embedded
// PostgreSQL passwords are acceptable.
func (r ResolvedConfig) Trusted() bool {
	return r.Source == SourceEnv || r.Source == SourceKeyring
}

var (
	getenvFunc        = os.Getenv
	keyringLookupFunc = keyring.GetConnectionString
)

// ResolveConfig picks the store config: an explicit --config wins, then the
// connection string in the environment, then the one in the OS keyring, then
// the default SQLite path.
func ResolveConfig(flagValue string) ResolvedConfig {
	if v := strings.TrimSpace(flagValue); v != "" {
		return ResolvedConfig{Value: v, Source: SourceFlag}
	}
	if v := strings.TrimSpace(getenvFunc(constants.EnvDBConnection)); v != "" {
		return ResolvedConfig{Value: v, Source: SourceEnv}
	}

	v, err := keyringLookupFunc()
	switch {
	case err == nil && strings.TrimSpace(v) != "":
		return ResolvedConfig{Value: strings.TrimSpace(v), Source: SourceKeyring}
	case err != nil && !errors.Is(err, keyring.ErrNotFound):
		logger.Debug("Keyring lookup failed", "error", err)
	}

	return ResolvedConfig{Value: constants.DefaultConfigPath, Source: SourceDefault}
}
