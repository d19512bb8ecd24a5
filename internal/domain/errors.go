package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrSessionBusy        = errors.New("a generation batch is already running")
	ErrMissingSourceImage = errors.New("no source image uploaded")
	ErrMissingCredential  = errors.New("gemini api key is not configured")
	ErrMissingHeadline    = errors.New("poster headline is empty")
	ErrInvalidTransition  = errors.New("invalid result transition")
	ErrBatchSuperseded    = errors.New("batch superseded by a newer request")
	ErrNothingToUpscale   = errors.New("no completed results to upscale")
	ErrProviderFailure    = errors.New("provider failure")

	// ErrUnparsableRecommendation is returned when the model answer cannot be
	// decoded into the requested structure.
	ErrUnparsableRecommendation = errors.New("could not understand recommendation")
)
