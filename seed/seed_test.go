package seed

import "testing"

func TestUniformReproducible(t *testing.T) {
	a, err := Uniform(1234, 0.4).Build(20)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	b, err := Uniform(1234, 0.4).Build(20)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !a.Equal(b) {
		t.Fatal("same seed and density should produce identical grids")
	}

	c, err := Uniform(5678, 0.4).Build(20)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if a.Equal(c) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestUniformDensityExtremes(t *testing.T) {
	dead, err := Uniform(1, 0).Build(10)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := dead.CountLivingCells(); got != 0 {
		t.Fatalf("density 0 produced %d living cells", got)
	}

	alive, err := Uniform(1, 1).Build(10)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if got := alive.CountLivingCells(); got != 100 {
		t.Fatalf("density 1 produced %d living cells, expected 100", got)
	}
}

func TestUniformRejectsBadInput(t *testing.T) {
	if _, err := Uniform(1, 0.5).Build(0); err == nil {
		t.Fatal("size 0 should be rejected")
	}
	if _, err := Uniform(1, 0.5).Build(-5); err == nil {
		t.Fatal("negative size should be rejected")
	}
	if _, err := Uniform(1, -0.1).Build(10); err == nil {
		t.Fatal("negative density should be rejected")
	}
	if _, err := Uniform(1, 1.1).Build(10); err == nil {
		t.Fatal("density above 1 should be rejected")
	}
}

func TestNoiseReproducible(t *testing.T) {
	a, err := Noise(99, 0.2).Build(24)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	b, err := Noise(99, 0.2).Build(24)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !a.Equal(b) {
		t.Fatal("same seed and threshold should produce identical grids")
	}
}

func TestNoiseRejectsBadInput(t *testing.T) {
	if _, err := Noise(1, 0.2).Build(0); err == nil {
		t.Fatal("size 0 should be rejected")
	}
	if _, err := Noise(1, -1.5).Build(10); err == nil {
		t.Fatal("threshold below -1 should be rejected")
	}
	if _, err := Noise(1, 1.5).Build(10); err == nil {
		t.Fatal("threshold above 1 should be rejected")
	}
}
