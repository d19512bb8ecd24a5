package domain

import (
	"errors"
	"testing"
)

func TestEmptyResults(t *testing.T) {
	items := EmptyResults(4)
	if len(items) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(items))
	}
	for i, it := range items {
		if it.ID != i || it.Status != ResultEmpty {
			t.Errorf("slot %d = %+v", i, it)
		}
	}
}

func TestResultLifecycle(t *testing.T) {
	r := ResultItem{Status: ResultEmpty}

	if err := r.Transition(ResultGenerating); err != nil {
		t.Fatalf("empty -> generating: %v", err)
	}
	if err := r.CompleteWith(GeneratedImage{URL: "/assets/a.png"}); err != nil {
		t.Fatalf("generating -> completed: %v", err)
	}
	if r.Image == nil || r.Image.URL != "/assets/a.png" {
		t.Fatalf("image not set: %+v", r)
	}

	if err := r.Transition(ResultUpscaling); err != nil {
		t.Fatalf("completed -> upscaling: %v", err)
	}
	if err := r.CompleteUpscale("/assets/a-2k.png", "a-2k.png"); err != nil {
		t.Fatalf("upscaling -> completed: %v", err)
	}
	if r.UpscaledURL != "/assets/a-2k.png" {
		t.Fatalf("upscaled url not merged: %+v", r)
	}
	if r.Image == nil || r.Image.URL != "/assets/a.png" {
		t.Fatal("original image lost during upscale merge")
	}
}

func TestInvalidTransitions(t *testing.T) {
	cases := []struct {
		from ResultStatus
		to   ResultStatus
	}{
		{ResultEmpty, ResultCompleted},
		{ResultEmpty, ResultUpscaling},
		{ResultGenerating, ResultUpscaling},
		{ResultError, ResultUpscaling},
		{ResultUpscaling, ResultGenerating},
	}
	for _, tc := range cases {
		r := ResultItem{Status: tc.from}
		err := r.Transition(tc.to)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("%s -> %s: expected ErrInvalidTransition, got %v", tc.from, tc.to, err)
		}
		if r.Status != tc.from {
			t.Errorf("%s -> %s: status mutated on rejected transition", tc.from, tc.to)
		}
	}
}

func TestRegenerateClearsSlot(t *testing.T) {
	r := ResultItem{
		Status:      ResultCompleted,
		Image:       &GeneratedImage{URL: "/assets/old.png"},
		UpscaledURL: "/assets/old-2k.png",
	}
	if err := r.Transition(ResultGenerating); err != nil {
		t.Fatalf("completed -> generating: %v", err)
	}
	if r.Image != nil || r.UpscaledURL != "" || r.ErrorMessage != "" {
		t.Fatalf("stale payload survived regeneration: %+v", r)
	}
}

func TestFailSetsMessage(t *testing.T) {
	r := ResultItem{Status: ResultGenerating}
	if err := r.Fail("model returned no image"); err != nil {
		t.Fatal(err)
	}
	if r.Status != ResultError || r.ErrorMessage != "model returned no image" {
		t.Fatalf("unexpected slot: %+v", r)
	}

	up := ResultItem{Status: ResultUpscaling, Image: &GeneratedImage{URL: "/assets/a.png"}}
	if err := up.FailUpscale("upscale refused"); err != nil {
		t.Fatal(err)
	}
	if up.Status != ResultCompleted || up.Image == nil {
		t.Fatalf("failed upscale should keep completed image: %+v", up)
	}
}
