package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"golife/model"
	"golife/rules"
	"golife/seed"
	"golife/utils"
)

// newBuilder maps the configured seeding policy onto a seed.Builder
func newBuilder(config utils.Config, seedValue int64) seed.Builder {
	if config.SeedPolicy == utils.SeedPolicyNoise {
		return seed.Noise(seedValue, config.NoiseThreshold)
	}
	return seed.Uniform(seedValue, config.RandomDensity)
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.GridPool,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid, err := newBuilder(config, config.Seed).Build(config.Size)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to seed grid")
	}

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return grid, pool, renderer, stats, nil
}

// advance computes the next generation using the configured stepper
func advance(grid *model.Grid, config utils.Config, pool *model.GridPool) (*model.Grid, error) {
	if config.UseParallel {
		return rules.StepParallel(grid, pool)
	}
	return rules.Step(grid)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	fmt.Printf("Features: Memory Pool: %v, Parallel: %v | Seed policy: %s\n",
		config.UseMemoryPool, config.UseParallel, config.SeedPolicy)
	fmt.Printf("Grid: %dx%d | Seed: %d | Initial living cells: %d\n",
		grid.Size(), grid.Size(), config.Seed, grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
	detector *utils.CycleDetector,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.Size()*grid.Size()) * 100

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)

	// Check for stagnation
	isStagnant := detector.Observe(grid.Hash())

	// Display status
	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	lastRestartGen int,
) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%200 == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds a fresh board. The replacement seed is derived from the
// configured one so a run stays reproducible across restarts.
func restartGame(config utils.Config, generation int) (*model.Grid, error) {
	fmt.Printf("\n🔄 Restarting...\n")
	time.Sleep(1 * time.Second)

	grid, err := newBuilder(config, config.Seed+int64(generation)).Build(config.Size)
	if err != nil {
		return nil, errors.Wrap(err, "[restartGame] failed to reseed grid")
	}

	fmt.Printf("✨ New board seeded! Living cells: %d\n", grid.CountLivingCells())
	time.Sleep(2 * time.Second)

	return grid, nil
}
