//go:build !ebiten

package app

import (
	"errors"
	"testing"
)

func TestRunPreviewNeedsEbiten(t *testing.T) {
	if err := RunPreview(nil, nil, nil, PreviewOptions{}); !errors.Is(err, ErrNoPreview) {
		t.Fatalf("expected ErrNoPreview, got %v", err)
	}
}
