package model

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the grid to the terminal; it only reads the grid
func (r *TerminalRenderer) Display(g *Grid) {
	for y := range g.size {
		for x := range g.size {
			if g.Get(x, y) {
				fmt.Print(gridPosBlock)
			} else {
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
