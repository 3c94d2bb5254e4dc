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

// TerminalRenderer implements basic terminal rendering of a board snapshot.
type TerminalRenderer struct{}

// Display renders the board to the terminal. Fixed and periodic boards draw
// the original rows x cols window; infinite boards draw the bounding box of
// the live set.
func (r *TerminalRenderer) Display(b *Board) {
	if b.Boundary() == BoundaryInfinite {
		r.displayUnbounded(b)
		return
	}

	for x := 0; x < b.Rows(); x++ {
		for y := 0; y < b.Cols(); y++ {
			if b.Alive(Cell{X: x, Y: y}) {
				fmt.Print(gridPosBlock)
			} else {
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
	}
}

func (r *TerminalRenderer) displayUnbounded(b *Board) {
	if b.Population() == 0 {
		fmt.Println("(extinct)")
		return
	}

	matrix, err := b.ToMatrix()
	if err != nil {
		fmt.Println("Error rendering board:", err)
		return
	}
	for _, row := range matrix {
		for _, v := range row {
			if v != 0 {
				fmt.Print(gridPosBlock)
			} else {
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
	}
}

// Clear clears the terminal screen.
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
