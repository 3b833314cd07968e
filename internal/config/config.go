// Package config loads the project configuration file of the test selector.
package config

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/testsel/testsel/internal/errors"
	"github.com/zclconf/go-cty/cty"
)

// ConfigFileName is the project configuration file name.
const ConfigFileName = ".testsel.hcl"

// Config is the structure of the project configuration file:
//
//	filters     = ["/MyAssembly", "/[Category!=Slow]"]
//	tests       = ["discovery/**/*.json", "integration.yaml"]
//	parallelism = 4
//	log_level   = "info"
//
// Relative `tests` entries are resolved against the directory of the config file and may be glob patterns,
// see ManifestPaths. Expressions can read environment variables through the `env` object, e.g. `env.CI_NODE_TOTAL`.
type Config struct {
	// SourceFile is the path the configuration was loaded from.
	SourceFile string

	Filters     []string `hcl:"filters,optional"`
	Tests       []string `hcl:"tests,optional"`
	Parallelism *int     `hcl:"parallelism,optional"`
	LogLevel    *string  `hcl:"log_level,optional"`
}

// LoadConfig returns the loaded configuration at the specified `path`.
func LoadConfig(path string) (*Config, error) {
	return LoadConfigWithEnv(path, os.Environ())
}

// LoadConfigWithEnv is LoadConfig with an explicit environment in `KEY=value` form.
func LoadConfigWithEnv(path string, environ []string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(NewFileReadError(path, err))
	}

	cfg := &Config{SourceFile: path}

	if err := hclsimple.Decode(path, src, newEvalContext(environ), cfg); err != nil {
		return nil, errors.New(NewDecodeError(path, err))
	}

	if cfg.Parallelism != nil && *cfg.Parallelism < 0 {
		return nil, errors.New(NewInvalidValueError(path, "parallelism", "must not be negative"))
	}

	return cfg, nil
}

func newEvalContext(environ []string) *hcl.EvalContext {
	env := make(map[string]cty.Value, len(environ))

	for _, keyVal := range environ {
		if key, val, ok := strings.Cut(keyVal, "="); ok && key != "" {
			env[key] = cty.StringVal(val)
		}
	}

	envVal := cty.EmptyObjectVal
	if len(env) > 0 {
		envVal = cty.ObjectVal(env)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envVal,
		},
	}
}
