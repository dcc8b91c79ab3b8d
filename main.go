package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golife/model"
	"golife/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	// Initialize game
	grid, pool, renderer, stats, err := initializeGame(config)
	if err != nil {
		fmt.Printf("Failed to initialize: %+v\n", err)
		os.Exit(1)
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Main game loop: the driver owns the current grid and swaps it for the
	// stepper's result each tick; grids themselves are never mutated.
	var (
		detector       = utils.NewCycleDetector()
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		// Update game state
		livingCells, density, status, isStagnant := updateGameState(grid, generation, lastFrameTime, stats, detector)
		lastFrameTime = frameStart

		// Update stagnation counter
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		// Display current status
		displayGameStatus(generation, livingCells, density, status, stats, lastRestartGen)
		renderer.Display(grid)

		// Check for max generations limit
		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			break
		}

		// Check restart conditions
		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)

			newGrid, err := restartGame(config, generation)
			if err != nil {
				fmt.Printf("Failed to restart: %+v\n", err)
				break
			}

			gridToPool(grid, pool)
			grid = newGrid
			detector.Reset()
			lastRestartGen = generation
			stagnantCount = 0
		}

		// Calculate next generation
		newGrid, err := advance(grid, config, pool)
		if err != nil {
			fmt.Printf("Step failed: %+v\n", err)
			break
		}

		// Return old grid to pool if using memory pooling
		gridToPool(grid, pool)
		grid = newGrid

		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
	gridToPool(grid, pool)
}

// gridToPool returns a superseded grid to the pool when pooling is enabled
func gridToPool(grid *model.Grid, pool *model.GridPool) {
	if pool == nil {
		return
	}

	pool.Put(grid)
}
