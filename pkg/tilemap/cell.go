// pkg/tilemap/cell.go
package tilemap

// Cell addresses a grid tile by row and column.
type Cell struct {
	Row, Col int
}

// NeighborDirections lists the 4-connected steps in walk priority order:
// up, down, left, right. PlanPath relies on this order.
var NeighborDirections = []Cell{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Add returns the sum of two cells.
func (c Cell) Add(other Cell) Cell {
	return Cell{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Neighbors returns the in-bounds 4-connected neighbours of c in walk priority order.
func (c Cell) Neighbors(rows, cols int) []Cell {
	neighbors := make([]Cell, 0, len(NeighborDirections))
	for _, d := range NeighborDirections {
		n := c.Add(d)
		if n.Row < 0 || n.Row >= rows || n.Col < 0 || n.Col >= cols {
			continue
		}
		neighbors = append(neighbors, n)
	}
	return neighbors
}

// TileSet is a set of tile identifiers.
type TileSet map[int]struct{}

// NewTileSet builds a set from the given identifiers.
func NewTileSet(ids ...int) TileSet {
	s := make(TileSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s TileSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// Markers tells PlanPath which tile identifiers start, continue and end the path.
type Markers struct {
	Start TileSet
	End   TileSet
	Path  TileSet
}

// DefaultMarkers returns the identifiers used by the bundled levels.
func DefaultMarkers() Markers {
	return Markers{
		Start: NewTileSet(3),
		End:   NewTileSet(4),
		Path:  NewTileSet(2, 3, 4),
	}
}

// walkable reports whether the walk may step onto a tile. End tiles are always enterable.
func (m Markers) walkable(id int) bool {
	return m.Path.Contains(id) || m.End.Contains(id)
}
