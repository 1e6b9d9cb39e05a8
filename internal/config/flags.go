package config

import "flag"

// Flags holds the command-line parameters. Only flags given explicitly
// override the loaded configuration.
type Flags struct {
	File      string
	Sparking  int
	Cooling   float64
	Smooth    bool
	Sink      string
	Seed      int64
	FPS       int
	Verbose   bool
	ListSinks bool
}

// NewFlags returns Flags populated with the configuration defaults.
func NewFlags() *Flags {
	d := Default()
	return &Flags{
		Sparking: d.Sparking,
		Cooling:  d.Cooling,
		Sink:     d.Sink,
		FPS:      d.MaxFPS,
	}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&f.File, "c", f.File, "path to json config file")
	fs.StringVar(&f.File, "config-file", f.File, "path to json config file")
	fs.IntVar(&f.Sparking, "sparking", f.Sparking, "spark chance out of 255 per frame")
	fs.Float64Var(&f.Cooling, "cooling", f.Cooling, "heat lost per frame")
	fs.BoolVar(&f.Smooth, "smooth", f.Smooth, "force color smoothing on")
	fs.StringVar(&f.Sink, "sink", f.Sink, "output sink")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "random seed (0 = time based)")
	fs.IntVar(&f.FPS, "fps", f.FPS, "frame rate cap (0 = as fast as the sink allows)")
	fs.BoolVar(&f.Verbose, "v", f.Verbose, "log frame statistics")
	fs.BoolVar(&f.ListSinks, "list-sinks", f.ListSinks, "print available sinks and exit")
}

// Resolve loads the configuration file (or the defaults when none was
// given), applies the flags that were set on fs and validates the result.
func (f *Flags) Resolve(fs *flag.FlagSet) (Config, error) {
	cfg := Default()
	if f.File != "" {
		loaded, err := Load(f.File)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	f.Apply(fs, &cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply copies every explicitly set flag into cfg.
func (f *Flags) Apply(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "sparking":
			cfg.Sparking = f.Sparking
		case "cooling":
			cfg.Cooling = f.Cooling
		case "smooth":
			if f.Smooth {
				cfg.ColorSmoothing = true
			}
		case "sink":
			cfg.Sink = f.Sink
		case "seed":
			cfg.Seed = f.Seed
		case "fps":
			cfg.MaxFPS = f.FPS
		}
	})
}
