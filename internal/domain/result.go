package domain

import "fmt"

// ResultStatus is the lifecycle state of a single generation slot.
type ResultStatus string

const (
	ResultEmpty      ResultStatus = "empty"
	ResultGenerating ResultStatus = "generating"
	ResultCompleted  ResultStatus = "completed"
	ResultError      ResultStatus = "error"
	ResultUpscaling  ResultStatus = "upscaling"
)

// validTransitions encodes the slot state machine. Every batch walks
// empty/completed/error -> generating -> completed|error, and a completed
// slot may round-trip through upscaling.
var validTransitions = map[ResultStatus][]ResultStatus{
	ResultEmpty:      {ResultGenerating},
	ResultGenerating: {ResultCompleted, ResultError},
	ResultCompleted:  {ResultGenerating, ResultUpscaling},
	ResultError:      {ResultGenerating},
	ResultUpscaling:  {ResultCompleted, ResultError},
}

// GeneratedImage is the payload of a completed slot.
type GeneratedImage struct {
	URL        string `json:"imageUrl"`
	StorageKey string `json:"-"`
	MIME       string `json:"-"`
	Prompt     string `json:"prompt"`
}

// ResultItem is one slot in a generation batch. Slots are identified by
// position; a batch of N always exposes exactly N of them.
type ResultItem struct {
	ID           int             `json:"id"`
	Status       ResultStatus    `json:"status"`
	Image        *GeneratedImage `json:"data,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	UpscaledURL  string          `json:"upscaledImageUrl,omitempty"`
	UpscaledKey  string          `json:"-"`
}

// EmptyResults returns n fresh slots in the empty state.
func EmptyResults(n int) []ResultItem {
	items := make([]ResultItem, n)
	for i := range items {
		items[i] = ResultItem{ID: i, Status: ResultEmpty}
	}
	return items
}

// CanTransition reports whether the slot may move to the given status.
func (r ResultItem) CanTransition(to ResultStatus) bool {
	for _, s := range validTransitions[r.Status] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves the slot to the given status, enforcing the state
// machine. Moving into generating clears the previous payload; moving into
// error clears it and expects the caller to set ErrorMessage after.
func (r *ResultItem) Transition(to ResultStatus) error {
	if !r.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, to)
	}
	switch to {
	case ResultGenerating:
		r.Image = nil
		r.ErrorMessage = ""
		r.UpscaledURL = ""
		r.UpscaledKey = ""
	case ResultError:
		if r.Status == ResultGenerating {
			r.Image = nil
		}
	}
	r.Status = to
	return nil
}

// CompleteWith marks the slot completed with a fresh image. Valid from
// generating only; upscaling completes via CompleteUpscale so the original
// image is preserved.
func (r *ResultItem) CompleteWith(img GeneratedImage) error {
	if r.Status != ResultGenerating {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, ResultCompleted)
	}
	r.Status = ResultCompleted
	r.Image = &img
	r.ErrorMessage = ""
	return nil
}

// Fail marks the slot errored with a user-facing message.
func (r *ResultItem) Fail(msg string) error {
	if err := r.Transition(ResultError); err != nil {
		return err
	}
	r.ErrorMessage = msg
	return nil
}

// CompleteUpscale merges an upscaled rendition into a slot that is mid
// upscale. The original image stays; only the upscaled URL is added.
func (r *ResultItem) CompleteUpscale(url, key string) error {
	if r.Status != ResultUpscaling {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, ResultCompleted)
	}
	r.Status = ResultCompleted
	r.UpscaledURL = url
	r.UpscaledKey = key
	return nil
}

// FailUpscale returns a slot that failed to upscale back to completed,
// keeping its original image and recording the message.
func (r *ResultItem) FailUpscale(msg string) error {
	if r.Status != ResultUpscaling {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Status, ResultCompleted)
	}
	r.Status = ResultCompleted
	r.ErrorMessage = msg
	return nil
}
