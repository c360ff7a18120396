package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/YuujiKamura/tohu-advertise/internal/advertise"
)

type runPair struct {
	runIndex int
	seed     int64
	baseline *advertise.SessionReport
	improved *advertise.SessionReport
}

func main() {
	var runs int
	var maxFrames uint64
	var seedBase int64
	var seedStep int64
	var enemies int
	var out string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of observe/improve run pairs")
	flag.Uint64Var(&maxFrames, "max-frames", 1800, "frame budget per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&enemies, "enemies", 4, "homing enemies per session")
	flag.StringVar(&out, "out", "", "write the last improved report JSON to this file")
	flag.BoolVar(&verbose, "verbose", false, "stream session log lines to stderr")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if maxFrames < 300 {
		fmt.Println("error: -max-frames must be >= 300")
		return
	}

	fmt.Printf("=== Advertise Mode Report ===\n")
	fmt.Printf("runs=%d max_frames=%d seed_base=%d seed_step=%d enemies=%d\n\n",
		runs, maxFrames, seedBase, seedStep, enemies)

	all := make([]runPair, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		pair, err := runPairAt(i+1, seed, maxFrames, enemies, verbose)
		if err != nil {
			fmt.Printf("run %d failed: %v\n", i+1, err)
			os.Exit(1)
		}
		all = append(all, pair)
		printPair(pair)
	}

	printAggregate(all)

	if out != "" {
		last := all[len(all)-1].improved
		data, err := advertise.MarshalReport(last.Result)
		if err != nil {
			fmt.Printf("marshal report: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			fmt.Printf("write %s: %v\n", out, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d bytes)\n", out, len(data))
	}
}

// runPairAt runs one baseline session with the default wander controller,
// then an identically seeded session with the strategy set injected.
func runPairAt(runIndex int, seed int64, maxFrames uint64, enemies int, verbose bool) (runPair, error) {
	opts := func(label string) []advertise.SessionOption {
		o := []advertise.SessionOption{
			advertise.WithSeed(seed),
			advertise.WithMaxFrames(maxFrames),
			advertise.WithLabel(label),
			advertise.WithHomingEnemies(enemies),
		}
		if verbose {
			o = append(o, advertise.WithLogWriter(os.Stderr))
		}
		return o
	}

	baseline, err := advertise.NewSessionDriver(opts("baseline")...).Run()
	if err != nil {
		return runPair{}, err
	}

	improvedOpts := append(opts("improved"), advertise.WithStrategySet())
	improved, err := advertise.NewSessionDriver(improvedOpts...).Run()
	if err != nil {
		return runPair{}, err
	}

	return runPair{runIndex: runIndex, seed: seed, baseline: baseline, improved: improved}, nil
}

func printPair(p runPair) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", p.runIndex, p.seed)
	fmt.Print(p.baseline.Format())
	fmt.Print(p.improved.Format())
	fmt.Print(advertise.FormatComparison(p.baseline, p.improved))
	fmt.Println()
}

func printAggregate(all []runPair) {
	var baseScore, impScore float64
	var baseDefects, impDefects int
	baseAcceptable, impAcceptable := 0, 0

	for _, p := range all {
		baseScore += p.baseline.Verdict.Score
		impScore += p.improved.Verdict.Score
		baseDefects += len(p.baseline.Result.Problems)
		impDefects += len(p.improved.Result.Problems)
		if p.baseline.Verdict.Acceptable {
			baseAcceptable++
		}
		if p.improved.Verdict.Acceptable {
			impAcceptable++
		}
	}
	n := float64(len(all))

	fmt.Printf("=== Aggregate (%d runs) ===\n", len(all))
	fmt.Printf("avg score:   baseline %.1f (%s)  improved %.1f (%s)\n",
		baseScore/n, advertise.LetterGrade(baseScore/n),
		impScore/n, advertise.LetterGrade(impScore/n))
	fmt.Printf("acceptable:  baseline %d/%d  improved %d/%d\n",
		baseAcceptable, len(all), impAcceptable, len(all))
	fmt.Printf("defects:     baseline %d  improved %d\n", baseDefects, impDefects)
}
