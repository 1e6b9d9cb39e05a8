//go:build !ws281x

// Package ws281x drives a WS281x strip through the rpi_ws281x PWM/DMA driver.
// Without the ws281x build tag the sink is registered but cannot be opened.
package ws281x

import (
	"errors"

	"pixelfire/internal/core"
)

// ErrUnavailable is returned when the driver was not compiled in.
var ErrUnavailable = errors.New("ws281x sink requires building with -tags ws281x")

func init() {
	core.RegisterSink("ws281x", func(core.SinkOptions) (core.Sink, error) {
		return nil, ErrUnavailable
	})
}
