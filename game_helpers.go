package main

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-sparselife/model"
	"github.com/sheikhrachel/go-sparselife/utils"
)

// initializeBoard builds the starting board. A positive percent_alive uses
// the random factory; zero falls back to stamping well-known patterns.
func initializeBoard(config utils.Config, mode model.BoundaryMode) (*model.Board, error) {
	if config.PercentAlive > 0 {
		return model.FromRandom(config.Rows, config.Cols, config.Seed, config.PercentAlive, mode)
	}
	return model.FromMatrix(patternMatrix(config.Rows, config.Cols), mode)
}

// patternMatrix lays out gliders and blinkers across a rows x cols matrix.
func patternMatrix(rows, cols int) [][]int {
	matrix := make([][]int, rows)
	for i := range matrix {
		matrix[i] = make([]int, cols)
	}

	if rows >= 10 && cols >= 10 {
		model.StampPattern(matrix, model.PatternGlider, 5, 5)
		if rows >= 15 && cols >= 20 {
			model.StampPattern(matrix, model.PatternGlider, 5, cols-8)
		}
		model.StampPattern(matrix, model.PatternBlinker, rows/4, cols/4)
		if cols >= 30 {
			model.StampPattern(matrix, model.PatternBlinker, 3*rows/4, 3*cols/4)
		}
	}
	return matrix
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, board *model.Board) {
	fmt.Printf("Board: %dx%d (%s) | Initial living cells: %d\n",
		board.Rows(), board.Cols(), board.Boundary(), board.Population())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(generation, population int, status string, board *model.Board, stats *utils.Stats) {
	density := float64(population) / float64(board.Rows()*board.Cols()) * 100

	boundingInfo := ""
	if population > 0 {
		if xmin, xmax, ymin, ymax, err := board.BoundingBox(); err == nil {
			boundingInfo = fmt.Sprintf(" | Bounding box: %d cells",
				(xmax-xmin+1)*(ymax-ymin+1))
		}
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		generation, population, density, status, boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	fmt.Println()
}

// checkStopConditions determines if the simulation loop should stop
func checkStopConditions(population, stagnantCount, generation int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, "max generations reached"
	}
	return false, ""
}

// runSeedSweep advances one independent board per seed concurrently and
// reports the seed whose population survives the longest. Boards never
// share state, so no locking beyond the result aggregation is needed.
func runSeedSweep(config utils.Config, mode model.BoundaryMode) error {
	var (
		eg        errgroup.Group
		mu        sync.Mutex
		bestSeed  int64
		bestGens  = -1
		bestFinal int
	)

	for s := 0; s < config.SweepSeeds; s++ {
		seed := config.Seed + int64(s)
		eg.Go(func() error {
			board, err := model.FromRandom(config.Rows, config.Cols, seed, config.PercentAlive, mode)
			if err != nil {
				return err
			}

			generations := 0
			population := board.Population()
			for generations < config.SweepGenerations && population > 0 {
				population = board.Advance()
				generations++
			}

			mu.Lock()
			if generations > bestGens || (generations == bestGens && population > bestFinal) {
				bestSeed, bestGens, bestFinal = seed, generations, population
			}
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	fmt.Printf("Sweep complete: %d seeds, %d generations each\n", config.SweepSeeds, config.SweepGenerations)
	fmt.Printf("Longest-lived seed: %d (%d generations, final population %d)\n", bestSeed, bestGens, bestFinal)
	return nil
}
