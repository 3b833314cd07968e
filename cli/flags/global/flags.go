// Package global provides CLI global flags.
package global

import (
	"github.com/testsel/testsel/cli/flags"
	"github.com/testsel/testsel/options"
	"github.com/urfave/cli/v2"
)

const (
	LogLevelFlagName  = "log-level"
	LogFormatFlagName = "log-format"
	NoColorFlagName   = "no-color"

	WorkingDirFlagName = "working-dir"
	ConfigFlagName     = "config"

	TelemetryTraceExporterFlagName = "telemetry-trace-exporter"
	TraceparentFlagName            = "traceparent"
)

// NewFlags returns the flags accepted before any command.
func NewFlags(opts *options.TestselOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        LogLevelFlagName,
			EnvVars:     flags.EnvVarsWithPrefix(LogLevelFlagName),
			Destination: &opts.LogLevelStr,
			Value:       opts.LogLevelStr,
			Usage:       "Sets the logging level. Valid values: error, warn, info, debug, trace.",
		},
		&cli.StringFlag{
			Name:    LogFormatFlagName,
			EnvVars: flags.EnvVarsWithPrefix(LogFormatFlagName),
			Value:   "pretty",
			Usage:   "Sets the logging format. Valid values: pretty, json.",
		},
		&cli.BoolFlag{
			Name:        NoColorFlagName,
			EnvVars:     flags.EnvVarsWithPrefix(NoColorFlagName),
			Destination: &opts.NoColor,
			Usage:       "Disables colored output.",
		},
		&cli.StringFlag{
			Name:        WorkingDirFlagName,
			EnvVars:     flags.EnvVarsWithPrefix(WorkingDirFlagName),
			Destination: &opts.WorkingDir,
			Usage:       "The path to the directory where the config file lookup starts. Default is the current directory.",
		},
		&cli.StringFlag{
			Name:        ConfigFlagName,
			EnvVars:     flags.EnvVarsWithPrefix(ConfigFlagName),
			Destination: &opts.ConfigPath,
			Usage:       "The path to the project config file. Default is the nearest .testsel.hcl.",
		},
		&cli.StringFlag{
			Name:        TelemetryTraceExporterFlagName,
			EnvVars:     flags.EnvVarsWithPrefix(TelemetryTraceExporterFlagName),
			Destination: &opts.Telemetry.TraceExporter,
			Usage:       "Enables tracing. Valid values: none, console.",
		},
		&cli.StringFlag{
			Name:        TraceparentFlagName,
			EnvVars:     []string{"TRACEPARENT"},
			Destination: &opts.Telemetry.TraceParent,
			Usage:       "W3C traceparent of the span the traces are attached to.",
		},
	}
}
