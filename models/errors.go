package models

import "errors"

var (
	ErrNullArgument    = errors.New("argument must not be null")
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidCountryName   = errors.New("invalid country name")
	ErrDuplicateCountryName = errors.New("country name already exists")

	ErrInvalidPersonID = errors.New("invalid person ID")

	ErrUnsupportedFile                 = errors.New("unsupported file")
	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	ErrRecordNotFound = errors.New("record not found")
)
