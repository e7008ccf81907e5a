// Package usecase implements CNR lookup reconciliation for the cases feature.
package usecase

import "errors"

var (
	// ErrInvalidInput is returned for an empty or malformed CNR.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataUnavailable is returned when the lookup produced only placeholder data.
	ErrDataUnavailable = errors.New("real case data not available")

	// ErrCaseNotFound is returned by repositories when no case has the CNR.
	ErrCaseNotFound = errors.New("case not found")

	// ErrDuplicateCase is returned by repositories when a case with the CNR already exists.
	ErrDuplicateCase = errors.New("case already exists")
)
