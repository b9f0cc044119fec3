package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/aspvall/twosat"
)

func main() {
	log.SetFlags(0)
	app := cli.NewApp()
	app.Name = "twosat"
	app.Usage = "decide satisfiability of 2-CNF formulas"
	app.ArgsUsage = "file [file ...]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "algorithm, a",
			Usage: "decision procedure: scc, walk or both",
			Value: "both",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed for the walk engine (default: time-based)",
		},
		cli.BoolFlag{
			Name:  "debug, d",
			Usage: "print solver trace output",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		cli.ShowAppHelpAndExit(c, 2)
	}
	algo := c.String("algorithm")
	switch algo {
	case "scc", "walk", "both":
	default:
		return fmt.Errorf("unknown algorithm %q", algo)
	}
	seed := time.Now().UnixNano()
	if c.IsSet("seed") {
		seed = c.Int64("seed")
	}
	failed := false
	for _, path := range c.Args() {
		if err := solveFile(path, algo, seed, c.Bool("debug")); err != nil {
			// A bad file doesn't stop the batch.
			log.Printf("%s: %v", path, err)
			failed = true
		}
	}
	if failed {
		return cli.NewExitError("", 1)
	}
	return nil
}

func solveFile(path, algo string, seed int64, debug bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	pb, err := twosat.Parse(f)
	if err != nil {
		return fmt.Errorf("parse: %v", err)
	}
	opts := twosat.Options{
		Debug: debug,
		Rand:  rand.New(rand.NewSource(seed)),
	}
	if algo == "scc" || algo == "both" {
		verdict(path, "scc", twosat.NewSolver(pb, opts).Solve())
	}
	if algo == "walk" || algo == "both" {
		verdict(path, "walk", twosat.NewWalker(pb, opts).Search())
	}
	return nil
}

func verdict(path, algo string, sat bool) {
	if sat {
		fmt.Printf("%s [%s] SATISFIABLE\n", path, algo)
	} else {
		fmt.Printf("%s [%s] UNSATISFIABLE\n", path, algo)
	}
}
