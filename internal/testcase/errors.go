package testcase

import "fmt"

// FileReadError is returned when a manifest file cannot be read.
type FileReadError struct {
	underlyingErr error
	path          string
}

func (err FileReadError) Error() string {
	return fmt.Sprintf("could not read test manifest %s: %s", err.path, err.underlyingErr)
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

// DecodeError is returned when a manifest file has invalid content.
type DecodeError struct {
	underlyingErr error
	path          string
}

func (err DecodeError) Error() string {
	return fmt.Sprintf("could not decode test manifest %s: %s", err.path, err.underlyingErr)
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

// UnsupportedFormatError is returned for a manifest with an unknown file extension.
type UnsupportedFormatError struct {
	path string
}

func (err UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported test manifest format %s, expected .json, .yaml or .yml", err.path)
}

func NewUnsupportedFormatError(path string) *UnsupportedFormatError {
	return &UnsupportedFormatError{path: path}
}
