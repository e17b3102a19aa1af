package domain

import "errors"

var (
	ErrNotFound            = errors.New("record not found")
	ErrUnknownColumn       = errors.New("unknown lookup column")
	ErrInvalidLookupValue  = errors.New("invalid lookup value")
	ErrNotNullViolation    = errors.New("required column is null")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrUniqueViolation     = errors.New("duplicate key value")
)
