package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatasetUnavailable = errors.New("no places available")
	ErrSessionNotFound    = errors.New("session not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrAIUnavailable      = errors.New("ai collaborator unavailable")
)
