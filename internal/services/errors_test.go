package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := fmt.Errorf("exit status 1")
	err := Wrap(ErrExternalTool, "pipeline", "medium copy", "convert failed", base)
	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped base error, got %v", err)
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := Wrap(nil, "pipeline", "", "something", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected ErrTransient fallback, got %v", err)
	}
}

func TestWrapDetailJoinsParts(t *testing.T) {
	err := Wrap(ErrValidation, "cards", "gather", "unknown card type", nil)
	want := "validation error: cards: gather: unknown card type"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q want %q", err.Error(), want)
	}
}

func TestCardAndStageContext(t *testing.T) {
	ctx := WithStage(WithCard(context.Background(), "fireball:enUS"), "medium-copy")
	card, ok := CardFromContext(ctx)
	if !ok || card != "fireball:enUS" {
		t.Fatalf("card context round-trip failed: %q %v", card, ok)
	}
	stage, ok := StageFromContext(ctx)
	if !ok || stage != "medium-copy" {
		t.Fatalf("stage context round-trip failed: %q %v", stage, ok)
	}
}
