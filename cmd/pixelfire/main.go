package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pixelfire/internal/app"
	"pixelfire/internal/config"
	"pixelfire/internal/core"
	"pixelfire/internal/render"
	"pixelfire/internal/sims/fire"
	"pixelfire/internal/sink/memory"
	_ "pixelfire/internal/sink/spi"
	_ "pixelfire/internal/sink/terminal"
	_ "pixelfire/internal/sink/ws281x"
	pcore "pixelfire/pkg/core"
)

const statsEvery = 100

func main() {
	log.SetFlags(0)
	log.SetPrefix("pixelfire: ")

	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	if flags.ListSinks {
		for _, name := range core.SinkNames() {
			fmt.Println(name)
		}
		fmt.Println(app.PreviewSink)
		return
	}

	cfg, err := flags.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Sink != app.PreviewSink && !core.HasSink(cfg.Sink) {
		log.Fatalf("config: %v: %q", core.ErrUnknownSink, cfg.Sink)
	}
	palette, err := cfg.Palette()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sim := fire.NewWithConfig(cfg.Fire())
	renderer := render.NewRenderer(palette, cfg.Adjustment(), pcore.NewRNG(sim.Seed()+1))
	opts := app.Options{MaxFPS: cfg.MaxFPS, Logger: log.Default()}
	if flags.Verbose {
		opts.StatsEvery = statsEvery
	}
	log.Printf("%s sink=%s palette=%d colors", sim.Parameters().String(), cfg.Sink, palette.Len())

	if cfg.Sink == app.PreviewSink {
		os.Exit(runPreview(cfg, sim, renderer, opts))
	}

	// Sinks that own the keyboard (terminal) report quit keys here.
	quit := make(chan os.Signal, 1)
	interrupt := func() {
		select {
		case quit <- os.Interrupt:
		default:
		}
	}
	sink, err := core.OpenSink(cfg.Sink, cfg.SinkOptions(interrupt))
	if err != nil {
		log.Fatalf("%v", err)
	}
	anim := app.NewAnimator(sim, renderer, sink, opts)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	watched := forwardShutdown(quit, anim.RequestShutdown)

	runErr := anim.Run(context.Background())
	signal.Stop(quit)
	if err := sink.Close(); err != nil {
		log.Printf("close sink: %v", err)
	}
	// The terminal sink stops calling interrupt once closed.
	close(quit)
	<-watched
	if runErr != nil {
		log.Printf("%v", runErr)
		os.Exit(1)
	}
}

func runPreview(cfg config.Config, sim *fire.Fire, renderer *render.Renderer, opts app.Options) int {
	sink := memory.New(cfg.NumPixels)
	anim := app.NewAnimator(sim, renderer, sink, opts)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	watched := forwardShutdown(sigs, anim.RequestShutdown)
	defer func() {
		signal.Stop(sigs)
		close(sigs)
		<-watched
	}()

	tps := cfg.MaxFPS
	if tps == 0 {
		tps = 60
	}
	err := app.RunPreview(anim, sim, sink, app.PreviewOptions{
		Title:  "pixelfire",
		Scale:  12,
		TPS:    tps,
		Params: sim.Parameters(),
	})
	if err != nil {
		log.Printf("preview: %v", err)
		return 1
	}
	return 0
}

// forwardShutdown calls stop for every value received on ch. The returned
// channel is closed once ch is closed and drained.
func forwardShutdown(ch <-chan os.Signal, stop func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range ch {
			stop()
		}
	}()
	return done
}
