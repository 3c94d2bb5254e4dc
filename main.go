package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-sparselife/model"
	"github.com/sheikhrachel/go-sparselife/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	mode, err := model.ParseBoundaryMode(config.BoundaryMode)
	if err != nil {
		fmt.Println("Invalid configuration:", err)
		os.Exit(1)
	}

	if config.SweepSeeds > 1 {
		if err = runSeedSweep(config, mode); err != nil {
			fmt.Println("Seed sweep failed:", err)
			os.Exit(1)
		}
		return
	}

	board, err := initializeBoard(config, mode)
	if err != nil {
		fmt.Println("Failed to initialize board:", err)
		os.Exit(1)
	}

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()
	displayGameInfo(config, board)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		generation    = 0
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d peak\n",
				stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation)
			return
		default:
			// Continue with the simulation loop
		}

		frameStart := time.Now()
		renderer.Clear()

		population := board.Population()
		stats.Update(generation, population, time.Since(lastFrameTime))
		lastFrameTime = frameStart

		status := "Active"
		if stagnantCount > 0 {
			status = fmt.Sprintf("Stagnant (%d)", stagnantCount)
		}
		if population == 0 {
			status = "Extinct"
		}

		displayGameStatus(generation, population, status, board, stats)
		renderer.Display(board)

		if stop, reason := checkStopConditions(population, stagnantCount, generation, config); stop {
			fmt.Printf("\nStopping: %s after %d generations\n", reason, generation)
			return
		}

		// Record the current state before advancing so stagnation checks
		// compare the new generation against its predecessors.
		board.UpdateHistory()
		board.Advance()

		if board.IsStagnant() {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		generation++
		time.Sleep(config.FrameRate)
	}
}
