package model

import "testing"

func TestNewRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -200} {
		if _, err := New(size); err == nil {
			t.Errorf("New(%d) should have failed", size)
		}
	}
}

func TestOutOfRangeAccess(t *testing.T) {
	g, err := New(4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {-1, -1}, {4, 4}} {
		if g.Get(pos[0], pos[1]) {
			t.Errorf("Get(%d,%d) outside the grid should read dead", pos[0], pos[1])
		}
		// Writes outside the grid must not panic or land anywhere
		g.Set(pos[0], pos[1], true)
	}

	if got := g.CountLivingCells(); got != 0 {
		t.Fatalf("out-of-range writes leaked into the grid: %d living cells", got)
	}
}

func TestCountNeighborsClampsAtCorner(t *testing.T) {
	g, err := New(5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Corner (0,0) has only (1,0), (0,1), (1,1) as real neighbors. The
	// opposite edges must not contribute, no matter what lives there.
	g.Set(1, 0, true)
	g.Set(0, 1, true)
	g.Set(1, 1, true)
	g.Set(4, 4, true)
	g.Set(4, 0, true)
	g.Set(0, 4, true)

	if got := g.CountNeighbors(0, 0); got != 3 {
		t.Fatalf("corner neighbor count = %d, expected 3", got)
	}
}

func TestCountNeighborsInterior(t *testing.T) {
	g, err := New(5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			g.Set(2+dx, 2+dy, true)
		}
	}

	if got := g.CountNeighbors(2, 2); got != 8 {
		t.Fatalf("interior neighbor count = %d, expected 8 (cell itself excluded)", got)
	}
}

func TestValidateDetectsRaggedRows(t *testing.T) {
	g, err := New(3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("fresh grid should validate: %v", err)
	}

	g.cells[1] = make([]bool, 2)
	if err := g.Validate(); err == nil {
		t.Fatal("ragged grid should fail validation")
	}

	g.cells = g.cells[:2]
	if err := g.Validate(); err == nil {
		t.Fatal("grid with missing rows should fail validation")
	}
}

func TestValidateNilGrid(t *testing.T) {
	var g *Grid
	if err := g.Validate(); err == nil {
		t.Fatal("nil grid should fail validation")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := New(4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	g.Set(1, 2, true)

	clone := g.Clone()
	if !g.Equal(clone) {
		t.Fatal("clone should equal its source")
	}

	clone.Set(3, 3, true)
	if g.Get(3, 3) {
		t.Fatal("mutating a clone must not touch the source grid")
	}
}

func TestHashTracksContent(t *testing.T) {
	a, err := New(4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	b := a.Clone()

	if a.Hash() != b.Hash() {
		t.Fatal("identical grids should hash identically")
	}

	b.Set(0, 0, true)
	if a.Hash() == b.Hash() {
		t.Fatal("differing grids should hash differently")
	}
}

func TestGridPoolRecyclesCleared(t *testing.T) {
	pool := NewGridPool()

	g := pool.Get(3)
	g.Set(1, 1, true)
	pool.Put(g)

	reused := pool.Get(3)
	if got := reused.CountLivingCells(); got != 0 {
		t.Fatalf("pooled grid handed out with %d living cells, expected 0", got)
	}
	if reused.Size() != 3 {
		t.Fatalf("pooled grid size = %d, expected 3", reused.Size())
	}

	resized := pool.Get(5)
	if resized.Size() != 5 {
		t.Fatalf("pooled grid size = %d, expected 5", resized.Size())
	}
	if err := resized.Validate(); err != nil {
		t.Fatalf("resized pooled grid should validate: %v", err)
	}
}
