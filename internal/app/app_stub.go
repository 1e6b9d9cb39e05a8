//go:build !ebiten

package app

import (
	"errors"

	"pixelfire/internal/core"
	"pixelfire/internal/sink/memory"
)

// ErrNoPreview is returned when the window preview was not compiled in.
var ErrNoPreview = errors.New("the window preview requires building with the 'ebiten' tag")

// PreviewOptions configure the preview window.
type PreviewOptions struct {
	Title  string
	Scale  int
	TPS    int
	Params core.ParameterSnapshot
}

// RunPreview always fails in the headless build.
func RunPreview(*Animator, Simulation, *memory.Sink, PreviewOptions) error {
	return ErrNoPreview
}
