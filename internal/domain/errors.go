package domain

import "errors"

var (
	ErrCollectionNotFound  = errors.New("collection not found")
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrForbidden           = errors.New("forbidden")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrUnsupportedFormat   = errors.New("unsupported file format")
	ErrFileTooLarge        = errors.New("file too large")
	ErrInvalidSettings     = errors.New("invalid processing settings")
	ErrOriginalUnavailable = errors.New("original file unavailable")
)
