package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/stat"

	"splitfmt/batch"
)

// runAnalyze formats every .go file under dir with opts and reports the
// mean and standard deviation of their costs (one value per file: the sum of
// that file's batch costs), using the same
// gonum module the teacher's layout_test.go experiments with (there against
// optimize/convex/lp; here against the stat subpackage, the part of gonum
// that actually fits a cost distribution — see DESIGN.md).
func runAnalyze(dir string, opts batch.Options, logger *log.Logger) error {
	lw := batch.New(opts, logger, false)

	var costs []float64
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}

		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		chunks := tokenizeSource(string(src))
		cost, err := lw.Write(io.Discard, chunks)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		costs = append(costs, float64(cost))
		return nil
	})
	if err != nil {
		return err
	}

	if len(costs) == 0 {
		fmt.Println("analyze: no .go files found")
		return nil
	}

	mean, std := stat.MeanStdDev(costs, nil)
	fmt.Printf("analyze: %d files, cost mean=%.2f stddev=%.2f\n", len(costs), mean, std)
	return nil
}
