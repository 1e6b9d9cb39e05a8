package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"pixelfire/internal/config"
	"pixelfire/internal/render"
	"pixelfire/internal/sims/fire"
	"pixelfire/internal/sink/memory"
	pcore "pixelfire/pkg/core"
)

type paramSet struct {
	sparking int
	cooling  float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("sparking=%d cooling=%.1f", p.sparking, p.cooling)
}

type scenarioResult struct {
	params   paramSet
	meanHeat float64
	peakHeat float64
	litRatio float64
	sparks   int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("fire-sweep: ")

	pixels := flag.Int("pixels", 60, "strip length")
	frames := flag.Int("frames", 600, "frames to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	sparkRange := flag.String("sparking", "20:200:30", "sparking range lo:hi:step")
	coolRange := flag.String("cooling", "20:80:10", "cooling range lo:hi:step")
	seed := flag.Int64("seed", 1337, "random seed shared by every scenario")
	flag.Parse()
	*workers = max(*workers, 1)

	sparks, err := parseRange(*sparkRange)
	if err == nil {
		err = requireIntegers(sparks)
	}
	if err != nil {
		log.Fatalf("-sparking: %v", err)
	}
	cools, err := parseRange(*coolRange)
	if err != nil {
		log.Fatalf("-cooling: %v", err)
	}

	base := config.Default()
	base.NumPixels = *pixels
	base.Seed = *seed
	palette, err := base.Palette()
	if err != nil {
		log.Fatal(err)
	}

	var sets []paramSet
	for _, s := range sparks {
		for _, c := range cools {
			p := paramSet{sparking: int(s), cooling: c}
			cfg := base.Fire()
			cfg.Sparking, cfg.Cooling = p.sparking, p.cooling
			if err := cfg.Validate(); err != nil {
				log.Printf("skipping %s: %v", p, err)
				continue
			}
			sets = append(sets, p)
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d frames, %d pixels)\n", len(sets), *workers, *frames, *pixels)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				res, err := runScenario(base, palette, params, *frames)
				if err != nil {
					log.Printf("%s: %v", params, err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].params.sparking != all[j].params.sparking {
			return all[i].params.sparking < all[j].params.sparking
		}
		return all[i].params.cooling < all[j].params.cooling
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%s mean=%.1f peak=%.1f lit=%.2f sparks=%d\n",
			res.params, res.meanHeat, res.peakHeat, res.litRatio, res.sparks)
	}
}

// runScenario runs one fire through the full render path into a memory sink
// and averages heat and lit pixels over all frames.
func runScenario(base config.Config, palette *render.Palette, params paramSet, frames int) (scenarioResult, error) {
	cfg := base.Fire()
	cfg.Sparking = params.sparking
	cfg.Cooling = params.cooling

	sim := fire.NewWithConfig(cfg)
	sink := memory.New(cfg.NumPixels)
	renderer := render.NewRenderer(palette, base.Adjustment(), pcore.NewRNG(sim.Seed()+1))

	res := scenarioResult{params: params}
	if frames <= 0 || cfg.NumPixels <= 0 {
		return res, nil
	}
	var heatSum float64
	lit := 0
	for f := 0; f < frames; f++ {
		sim.Step()
		if err := renderer.Render(sim.Heat(), sink); err != nil {
			return res, fmt.Errorf("frame %d: %w", f+1, err)
		}
		heatSum += sim.Field().Total()
		res.peakHeat = max(res.peakHeat, sim.Field().Peak())
		for _, c := range sink.View() {
			if c != 0 {
				lit++
			}
		}
	}
	samples := float64(frames * cfg.NumPixels)
	res.meanHeat = heatSum / samples
	res.litRatio = float64(lit) / samples
	res.sparks = sim.Sparks()
	return res, nil
}

// requireIntegers rejects values with a fractional part.
func requireIntegers(vals []float64) error {
	for _, v := range vals {
		if v != math.Trunc(v) {
			return fmt.Errorf("%g is not an integer", v)
		}
	}
	return nil
}

// parseRange expands "lo:hi:step" (or a single value) into the inclusive list
// of values.
func parseRange(s string) ([]float64, error) {
	parts := strings.Split(s, ":")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad range %q: %w", s, err)
		}
		vals[i] = v
	}
	switch len(vals) {
	case 1:
		return vals, nil
	case 3:
	default:
		return nil, fmt.Errorf("bad range %q: expected lo:hi:step", s)
	}
	lo, hi, step := vals[0], vals[1], vals[2]
	if step <= 0 || hi < lo {
		return nil, fmt.Errorf("bad range %q: need lo <= hi and step > 0", s)
	}
	var out []float64
	for i := 0; ; i++ {
		v := lo + float64(i)*step
		if v > hi+1e-9 {
			break
		}
		out = append(out, v)
	}
	return out, nil
}
