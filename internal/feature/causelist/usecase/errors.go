// Package usecase builds cause list dockets and their PDF files.
package usecase

import "errors"

var (
	// ErrInvalidInput is returned for a malformed date, code or file name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownComplex is returned for a complex code that is not listed.
	ErrUnknownComplex = errors.New("unknown court complex")

	// ErrUnknownJudge is returned for a judge code that is not listed in the complex.
	ErrUnknownJudge = errors.New("unknown judge")

	// ErrFileNotFound is returned by file stores when no file has the name.
	ErrFileNotFound = errors.New("file not found")
)
