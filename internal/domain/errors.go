package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidInput       = errors.New("invalid input")

	ErrVideoNotFound    = errors.New("video not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchExists      = errors.New("match already exists")
	ErrInvalidStatus    = errors.New("invalid match status")

	// ErrForbidden is returned when the actor does not own the referenced entity
	ErrForbidden = errors.New("forbidden")

	ErrUnsupportedMedia     = errors.New("unsupported media type")
	ErrFileTooLarge         = errors.New("file too large")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
