package config

import "fmt"

type FileReadError struct {
	underlyingErr error
	path          string
}

func (err FileReadError) Error() string {
	return fmt.Sprintf("could not read config file %s: %s", err.path, err.underlyingErr)
}

func (err FileReadError) Unwrap() error {
	return err.underlyingErr
}

func NewFileReadError(path string, err error) *FileReadError {
	return &FileReadError{
		path:          path,
		underlyingErr: err,
	}
}

type DecodeError struct {
	underlyingErr error
	path          string
}

func (err DecodeError) Error() string {
	return fmt.Sprintf("could not decode config file %s: %s", err.path, err.underlyingErr)
}

func (err DecodeError) Unwrap() error {
	return err.underlyingErr
}

func NewDecodeError(path string, err error) *DecodeError {
	return &DecodeError{
		path:          path,
		underlyingErr: err,
	}
}

type InvalidValueError struct {
	path      string
	attribute string
	reason    string
}

func (err InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s in config file %s: %s", err.attribute, err.path, err.reason)
}

func NewInvalidValueError(path, attribute, reason string) *InvalidValueError {
	return &InvalidValueError{
		path:      path,
		attribute: attribute,
		reason:    reason,
	}
}

type NoManifestMatchError struct {
	pattern string
	baseDir string
}

func (err NoManifestMatchError) Error() string {
	return fmt.Sprintf("tests entry %q matches no file in %s", err.pattern, err.baseDir)
}

func NewNoManifestMatchError(pattern, baseDir string) *NoManifestMatchError {
	return &NoManifestMatchError{
		pattern: pattern,
		baseDir: baseDir,
	}
}
