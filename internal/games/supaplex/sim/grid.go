package sim

// Grid represents the level as a rectangular grid of tiles.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int    // Width of the grid
	H     int    // Height of the grid
	Cells []Tile // Flat array of tiles, length W*H
}

// NewGrid creates a grid from a row-major list of categories. Each cell
// starts as the resting tile of its category. Missing cells are Empty.
func NewGrid(w, h int, cats []Category) *Grid {
	g := &Grid{
		W:     w,
		H:     h,
		Cells: make([]Tile, w*h),
	}
	for i := range g.Cells {
		c := Empty
		if i < len(cats) {
			c = cats[i]
		}
		g.Cells[i] = c.Tile()
	}
	return g
}

// NewGridFromBytes creates a grid from level-file bytes.
func NewGridFromBytes(w, h int, data []byte) *Grid {
	cats := make([]Category, len(data))
	for i, b := range data {
		cats[i] = CategoryFromByte(b)
	}
	return NewGrid(w, h, cats)
}

// NewEmptyGrid creates a grid with every cell Empty.
func NewEmptyGrid(w, h int) *Grid {
	return NewGrid(w, h, nil)
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the tile at the given coordinate.
// Returns BorderTile if out of bounds.
func (g *Grid) Get(c Coord) Tile {
	if !g.InBounds(c) {
		return BorderTile
	}
	return g.Cells[g.index(c)]
}

// Ptr returns a pointer to the tile at the given coordinate for in-place
// edits, or nil if out of bounds.
func (g *Grid) Ptr(c Coord) *Tile {
	if !g.InBounds(c) {
		return nil
	}
	return &g.Cells[g.index(c)]
}

// at returns a pointer to a tile known to be in bounds. Systems use it on
// their own cell, which the scan guarantees is valid.
func (g *Grid) at(c Coord) *Tile {
	return &g.Cells[g.index(c)]
}

// Set replaces the tile at the given coordinate. Out-of-bounds writes
// are dropped.
func (g *Grid) Set(c Coord, t Tile) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = t
	}
}

// SetCategory places the resting tile of a category.
func (g *Grid) SetCategory(c Coord, cat Category) {
	g.Set(c, cat.Tile())
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, t := range g.Cells {
		if t != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns how many cells hold the given category.
func (g *Grid) Count(cat Category) int {
	n := 0
	for _, t := range g.Cells {
		if t.Category == cat {
			n++
		}
	}
	return n
}

// Find returns the first coordinate in scan order holding the category.
func (g *Grid) Find(cat Category) (Coord, bool) {
	for i, t := range g.Cells {
		if t.Category == cat {
			return C(i%g.W, i/g.W), true
		}
	}
	return Coord{}, false
}

// Each calls fn for every cell in scan order: top row first,
// left to right within a row.
func (g *Grid) Each(fn func(Coord, Tile)) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			fn(c, g.Cells[g.index(c)])
		}
	}
}
