package common

import "github.com/testsel/testsel/cli/flags"

// NoManifestsError is returned when a command needs test cases but no manifest was given.
type NoManifestsError struct{}

func NewNoManifestsError() *NoManifestsError {
	return &NoManifestsError{}
}

func (err NoManifestsError) Error() string {
	return "no test manifests given, use --" + flags.TestsFlagName + " or the `tests` attribute of the config file"
}
