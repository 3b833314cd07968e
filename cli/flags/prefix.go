package flags

import (
	"strings"
)

// EnvVarPrefix is prepended to every flag environment variable.
const EnvVarPrefix = "TESTSEL"

type Prefix []string

func (prefix Prefix) Append(val string) Prefix {
	return append(prefix, val)
}

func (prefix Prefix) EnvVar(name string) string {
	name = strings.Join(append(prefix, name), "_")

	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func (prefix Prefix) EnvVars(names ...string) []string {
	var envVars = make([]string, len(names))

	for i := range names {
		envVars[i] = prefix.EnvVar(names[i])
	}

	return envVars
}

// EnvVarsWithPrefix returns the `TESTSEL_` environment variable names for the given flag names,
// e.g. `log-level` becomes `TESTSEL_LOG_LEVEL`.
func EnvVarsWithPrefix(names ...string) []string {
	return Prefix{EnvVarPrefix}.EnvVars(names...)
}
