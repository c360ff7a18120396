package advertise

// CoverageTracker accumulates a visited-cell grid and a movement frequency
// heatmap at 10x10-unit resolution.
type CoverageTracker struct {
	cfg     Config
	cols    int
	rows    int
	heatmap [][]int
	visited int
}

func NewCoverageTracker(cfg Config) *CoverageTracker {
	cols := cfg.GridCols()
	rows := cfg.GridRows()
	hm := make([][]int, rows)
	for i := range hm {
		hm[i] = make([]int, cols)
	}
	return &CoverageTracker{cfg: cfg, cols: cols, rows: rows, heatmap: hm}
}

// Update increments the cell containing (x,y). Positions outside the arena are
// silently dropped; positions inside always land in a valid cell, including
// the arena's far edge.
func (c *CoverageTracker) Update(x, y float64) {
	if x < 0 || y < 0 || x >= c.cfg.ScreenWidth || y >= c.cfg.ScreenHeight {
		return
	}
	col := int(x / c.cfg.CellSize)
	row := int(y / c.cfg.CellSize)
	if col >= c.cols {
		col = c.cols - 1
	}
	if row >= c.rows {
		row = c.rows - 1
	}
	if c.heatmap[row][col] == 0 {
		c.visited++
	}
	c.heatmap[row][col]++
}

// CoverageRatio returns visited cells / total cells.
func (c *CoverageTracker) CoverageRatio() float64 {
	total := c.cols * c.rows
	if total == 0 {
		return 0
	}
	return float64(c.visited) / float64(total)
}

// VisitedCells returns how many distinct cells have been entered.
func (c *CoverageTracker) VisitedCells() int {
	return c.visited
}

// Heatmap returns the live visit-count grid, indexed [row][col].
func (c *CoverageTracker) Heatmap() [][]int {
	return c.heatmap
}

// HeatmapCopy returns a deep copy, safe to retain after the session ends.
func (c *CoverageTracker) HeatmapCopy() [][]int {
	out := make([][]int, len(c.heatmap))
	for i, row := range c.heatmap {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}
