// This defines a basic executable for generating an image of a maze.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/render"
)

func run() int {
	var algorithm, outFilename string
	var size, canvasSize int
	var seed int64
	var extraEdges, thickness float64
	var ascii, verify bool
	flag.StringVar(&algorithm, "algorithm", "wilson",
		"The generation algorithm: prim, wilson or backtracking.")
	flag.IntVar(&size, "size", 20, "The width and height of the maze, in cells.")
	flag.Int64Var(&seed, "seed", -1,
		"If non-negative, specifies the random seed to use.")
	flag.Float64Var(&extraEdges, "extra_edges", 0,
		"Probability of opening each remaining wall after a Prim maze is "+
			"built, creating loops.")
	flag.IntVar(&canvasSize, "canvas", 800, "The side length of the image, in pixels.")
	flag.Float64Var(&thickness, "thickness", 2, "The wall stroke width, in pixels.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png file to which the maze will be saved.")
	flag.BoolVar(&ascii, "ascii", false, "If set, prints the maze as text.")
	flag.BoolVar(&verify, "verify", true, "If set, re-checks the maze invariants.")
	flag.Parse()

	log, err := logger.New("MAZE", config.ColorBlue, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %s\n", err)
		return 1
	}

	if !ascii && outFilename == "" {
		log.Error("Missing -output_file or -ascii. Run with -help for more information.")
		return 1
	}

	alg, err := maze.ParseAlgorithm(algorithm)
	if err != nil {
		log.Error(err.Error())
		return 1
	}
	var opts []maze.Option
	if seed >= 0 {
		opts = append(opts, maze.WithSeed(seed))
	}
	if extraEdges > 0 {
		opts = append(opts, maze.WithExtraEdgeProbability(extraEdges))
	}

	g, err := maze.New(alg, size, opts...)
	if err != nil {
		log.Error(fmt.Sprintf("Failed creating generator: %s", err))
		return 1
	}
	m, err := g.Generate()
	if err != nil {
		log.Error(fmt.Sprintf("Failed generating maze: %s", err))
		return 1
	}
	log.With(map[string]any{
		"algorithm": g.Algorithm(),
		"size":      m.Size(),
		"seed":      g.Seed(),
		"edges":     m.EdgeCount(),
		"dead_ends": m.DeadEnds(),
	}).Info("Generated maze")

	if verify {
		if err := m.Verify(extraEdges == 0); err != nil {
			log.Error(fmt.Sprintf("Maze failed verification: %s", err))
			return 1
		}
	}

	if ascii {
		fmt.Print(m.String())
	}
	if outFilename == "" {
		return 0
	}

	f, err := os.Create(outFilename)
	if err != nil {
		log.Error(fmt.Sprintf("Error creating output file %s: %s", outFilename, err))
		return 1
	}
	defer f.Close()
	if err := render.EncodePNG(f, m, canvasSize, canvasSize, thickness); err != nil {
		log.Error(fmt.Sprintf("Error writing image to %s: %s", outFilename, err))
		return 1
	}
	log.Info(fmt.Sprintf("Image %s written OK.", outFilename))
	return 0
}

func main() {
	os.Exit(run())
}
