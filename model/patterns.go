package model

// AddGlider stamps a glider pattern with its top-left corner at (startX, startY)
func (g *Grid) AddGlider(startX, startY int) {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			g.Set(startX+x, startY+y, cell)
		}
	}
}

// AddBlinker stamps a horizontal three-cell blinker starting at (startX, startY)
func (g *Grid) AddBlinker(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX+2, startY, true)
}

// AddBlock stamps a 2x2 still-life block with its top-left corner at (startX, startY)
func (g *Grid) AddBlock(startX, startY int) {
	g.Set(startX, startY, true)
	g.Set(startX+1, startY, true)
	g.Set(startX, startY+1, true)
	g.Set(startX+1, startY+1, true)
}
