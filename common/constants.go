package common

const (
	// TileSize is the edge length of one grid cell in world units.
	TileSize = 100

	// TPS is the fixed simulation rate. Every timer in the game counts ticks.
	TPS = 60

	ScreenWidth  = 1600
	ScreenHeight = 960
)
