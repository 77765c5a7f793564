package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/d2verb/pq-falcon-sigs/internal/config"
	"github.com/d2verb/pq-falcon-sigs/internal/falcon"
	"github.com/posener/complete"
)

// newLevelPredictor returns a predictor for --level.
func newLevelPredictor() complete.Predictor {
	return complete.PredictFunc(func(args complete.Args) []string {
		return completeLevels(args.Last)
	})
}

// newKeyPredictor returns a predictor for key file flags.
// Suggests key files in the default key directory as well as *.key files
// relative to the working directory.
func newKeyPredictor() complete.Predictor {
	return complete.PredictOr(
		complete.PredictFiles("*.key"),
		complete.PredictFunc(func(args complete.Args) []string {
			paths, err := config.GetPaths()
			if err != nil {
				return nil
			}
			return completeKeys(paths.Home, args.Last)
		}),
	)
}

// completeLevels returns the security levels starting with partial.
func completeLevels(partial string) []string {
	var results []string
	for _, l := range falcon.Levels {
		s := strconv.Itoa(int(l))
		if strings.HasPrefix(s, partial) {
			results = append(results, s)
		}
	}
	return results
}

// completeKeys returns the *.key files in dir whose path starts with partial.
func completeKeys(dir, partial string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var results []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".key" {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if strings.HasPrefix(p, partial) {
			results = append(results, p)
		}
	}
	return results
}
