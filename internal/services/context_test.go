package services_test

import (
	"context"
	"testing"

	"certgen/internal/services"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := services.WithRunID(context.Background(), "run-123")
	id, ok := services.RunIDFromContext(ctx)
	if !ok || id != "run-123" {
		t.Fatalf("expected run-123, got %q ok=%v", id, ok)
	}
	if _, ok := services.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on bare context")
	}
}

func TestStageRoundTrip(t *testing.T) {
	ctx := services.WithStage(context.Background(), "upload")
	stage, ok := services.StageFromContext(ctx)
	if !ok || stage != "upload" {
		t.Fatalf("expected upload, got %q ok=%v", stage, ok)
	}
	if changed := services.WithStage(ctx, ""); changed != ctx {
		t.Fatal("empty stage should not replace context")
	}
}
