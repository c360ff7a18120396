package advertise

import "testing"

func TestCoverageCellsAndRatio(t *testing.T) {
	cfg := DefaultConfig()
	c := NewCoverageTracker(cfg)

	c.Update(5, 5)
	c.Update(5, 5)
	c.Update(15, 5)
	if c.VisitedCells() != 2 {
		t.Fatalf("VisitedCells = %d, want 2", c.VisitedCells())
	}
	if got := c.Heatmap()[0][0]; got != 2 {
		t.Fatalf("heatmap[0][0] = %d, want 2", got)
	}
	want := 2.0 / float64(cfg.GridCols()*cfg.GridRows())
	if got := c.CoverageRatio(); got != want {
		t.Fatalf("CoverageRatio = %v, want %v", got, want)
	}
}

func TestCoverageFarEdgeLandsInLastCell(t *testing.T) {
	cfg := DefaultConfig()
	c := NewCoverageTracker(cfg)

	c.Update(799, 599)
	hm := c.Heatmap()
	if got := hm[cfg.GridRows()-1][cfg.GridCols()-1]; got != 1 {
		t.Fatalf("far corner count = %d, want 1", got)
	}
}

func TestCoverageDropsOutOfArena(t *testing.T) {
	cfg := DefaultConfig()
	c := NewCoverageTracker(cfg)

	c.Update(-1, 100)
	c.Update(100, -1)
	c.Update(800, 100)
	c.Update(100, 600)
	if c.VisitedCells() != 0 {
		t.Fatalf("VisitedCells = %d after out-of-arena updates, want 0", c.VisitedCells())
	}
}

func TestHeatmapCopyIsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	c := NewCoverageTracker(cfg)
	c.Update(5, 5)

	cp := c.HeatmapCopy()
	c.Update(5, 5)
	if cp[0][0] != 1 {
		t.Fatalf("copy mutated: [0][0] = %d, want 1", cp[0][0])
	}
}
