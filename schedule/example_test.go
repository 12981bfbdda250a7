package schedule_test

import (
	"fmt"

	"github.com/katalvlaran/permga/ga"
	"github.com/katalvlaran/permga/schedule"
)

func ExampleSolve() {
	programs := []string{"news", "cartoons", "movie"}
	slots, _ := schedule.HourSlots(18, 21)
	ratings := [][]float64{
		{0.5, 0.25, 0.125},
		{0.75, 0.25, 0.125},
		{0.125, 0.5, 1},
	}

	cfg := ga.Config{PopulationSize: 6, Generations: 10, CrossoverRate: 0.8, MutationRate: 0.2, Elitism: 2}
	s, _, err := schedule.Solve(programs, slots, ratings, cfg,
		ga.WithSeed(3), ga.WithInitializer(ga.ExhaustiveSeedInit{}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s)
	// Output:
	// 18:00 - 19:00: cartoons
	// 19:00 - 20:00: news
	// 20:00 - 21:00: movie
	// total: 2
}
