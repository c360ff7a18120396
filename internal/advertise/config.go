package advertise

// Config holds the tunable constants of an analysis session. All values mirror
// the live game's arena and a fixed 60 Hz timestep; tests override individual
// fields through DefaultConfig.
type Config struct {
	ScreenWidth  float64 // arena width in world units
	ScreenHeight float64 // arena height in world units

	HistoryLength     int     // retained position samples (~2s at 60 Hz)
	VelocityThreshold float64 // below this speed, direction reversals count as vibration
	CenterRadius      float64 // radius of the "center area" around the arena midpoint
	ApproachThreshold float64 // an enemy closer than this counts as an approach
	FrameRate         float64 // frames per second the session assumes
	CellSize          float64 // coverage grid cell edge length
}

// DefaultConfig returns the production constants.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:       800,
		ScreenHeight:      600,
		HistoryLength:     120,
		VelocityThreshold: 2.0,
		CenterRadius:      100,
		ApproachThreshold: 150,
		FrameRate:         60,
		CellSize:          10,
	}
}

// Center returns the arena midpoint.
func (c Config) Center() Point {
	return Point{X: c.ScreenWidth / 2, Y: c.ScreenHeight / 2}
}

// GridCols returns the coverage grid width in cells.
func (c Config) GridCols() int {
	return int(c.ScreenWidth / c.CellSize)
}

// GridRows returns the coverage grid height in cells.
func (c Config) GridRows() int {
	return int(c.ScreenHeight / c.CellSize)
}

// SpawnPoint returns where the agent materialises on session start and after a
// game restart: arena center shifted 100 units down.
func (c Config) SpawnPoint() Point {
	mid := c.Center()
	return Point{X: mid.X, Y: mid.Y + 100}
}
