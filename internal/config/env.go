// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names are the
// concatenated envPrefix/env tags, e.g. STORAGE_CACHE_USER_TTL.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom is parseEnv over an explicit variable set. Unset variables
// leave their fields zero so mergo keeps lower-priority values.
func parseEnvFrom(cfg *StructuredConfig, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
