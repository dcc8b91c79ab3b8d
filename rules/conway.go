package rules

/*
ApplyConwayRules determines the next state of a single cell from its current
state and living-neighbor count.

A living cell survives with 2 or 3 neighbors; a dead cell comes alive with
exactly 3. This collapses to: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
