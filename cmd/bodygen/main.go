// Command bodygen generates a body segment with appendage placements and writes
// the interchange document, optionally rendering a plot of the placements
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/evo-body/body"
	"github.com/lixenwraith/evo-body/config"
	"github.com/lixenwraith/evo-body/export"
	"github.com/lixenwraith/evo-body/logging"
	"github.com/lixenwraith/evo-body/netplot"
)

const logFileName = "bodygen.log"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bodygen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML config file (defaults apply when empty)")
		shape      = fs.String("shape", "", "Segment shape: cube, sphere")
		strategy   = fs.String("strategy", "", "Slot selection: shuffle, retry")
		size       = fs.Float64("size", 0, "Cube edge or sphere diameter")
		fill       = fs.Float64("fill", 0, "Fill factor in [0, 1]")
		seed       = fs.Uint64("seed", 0, "Random seed (0 = from clock)")
		diameter   = fs.Float64("diameter", 0, "Fixed appendage diameter")
		length     = fs.Float64("length", 0, "Fixed appendage length")
		out        = fs.String("out", "-", "Output document path, - for stdout, .zst suffix compresses")
		plotPath   = fs.String("plot", "", "Render placements to this image (.png, .svg, .pdf)")
		debug      = fs.Bool("debug", false, "Write debug log to "+logging.DefaultDir+"/"+logFileName)
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if f := logging.Setup(logging.DefaultDir, logFileName, *debug); f != nil {
		defer f.Close()
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "bodygen: %v\n", err)
			return 1
		}
		log.Printf("loaded config %s", *configPath)
	}

	// Explicit flags override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shape":
			cfg.Shape = *shape
		case "strategy":
			cfg.Strategy = *strategy
		case "size":
			cfg.Size = *size
		case "fill":
			cfg.Fill = *fill
		case "seed":
			cfg.Seed = *seed
		case "diameter":
			cfg.Appendage.Diameter = diameter
		case "length":
			cfg.Appendage.Length = length
		}
	})

	cfg.Seed = body.ResolveSeed(cfg.Seed)
	rng := cfg.NewRand()

	seg, err := cfg.Build(rng)
	if err != nil {
		fmt.Fprintf(stderr, "bodygen: %v\n", err)
		return 1
	}
	dim := seg.Dimensions()
	log.Printf("segment %v size=%g diameter=%g length=%g slots=%d strategy=%v seed=%d",
		seg.Shape(), dim.Size, dim.AppendageDiameter, dim.AppendageLength, seg.SlotCount(), seg.Strategy(), cfg.Seed)

	apps, err := seg.Appendages(cfg.Fill, rng)
	if err != nil {
		fmt.Fprintf(stderr, "bodygen: %v\n", err)
		return 1
	}

	doc := export.New(seg, cfg.Fill, cfg.Seed, apps)
	if short := doc.Shortfall(); short > 0 {
		log.Printf("retry budget exhausted: placed %d of %d", len(apps), doc.Requested)
	}

	if *out == "-" {
		err = doc.Encode(stdout)
	} else {
		err = export.WriteFile(*out, doc)
	}
	if err != nil {
		fmt.Fprintf(stderr, "bodygen: %v\n", err)
		return 1
	}
	log.Printf("wrote document %s with %d appendages to %s", doc.ID, len(apps), *out)

	if *plotPath != "" {
		if err := netplot.Render(seg, apps, *plotPath); err != nil {
			fmt.Fprintf(stderr, "bodygen: %v\n", err)
			return 1
		}
		log.Printf("rendered plot %s", *plotPath)
	}
	return 0
}
