package board

// cube is a cube coordinate; x+y+z is always 0.
type cube struct {
	x, y, z int
}

// cubeDirections are the unit offsets for Direction 0..5.
var cubeDirections = [NumDirections]cube{
	{1, -1, 0}, {1, 0, -1}, {0, 1, -1}, {-1, 1, 0}, {-1, 0, 1}, {0, -1, 1},
}

func (c cube) neighbor(d Direction) cube {
	o := cubeDirections[d]
	return cube{c.x + o.x, c.y + o.y, c.z + o.z}
}

func (c cube) ring() int {
	return max(abs(c.x), abs(c.y), abs(c.z))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Standard builds the board the referee sends at startup when no cell is
// left unusable. Cells are numbered from the center outwards, each ring
// starting east of the previous ring's start and turning counter-clockwise.
// Richness is 3 on the center and first ring, 2 on the second, 1 on the
// outer ring.
func Standard() *Board {
	index := map[cube]int{}
	coords := make([]cube, 0, NumCells)

	at := cube{}
	index[at] = 0
	coords = append(coords, at)
	for ring := 1; ring <= 3; ring++ {
		at = at.neighbor(0)
		for side := 0; side < NumDirections; side++ {
			for step := 0; step < ring; step++ {
				index[at] = len(coords)
				coords = append(coords, at)
				at = at.neighbor(Direction((side + 2) % NumDirections))
			}
		}
	}

	cells := make([]Cell, NumCells)
	for i, c := range coords {
		cell := Cell{Index: i}
		switch c.ring() {
		case 0, 1:
			cell.Richness = 3
		case 2:
			cell.Richness = 2
		default:
			cell.Richness = 1
		}
		for d := Direction(0); d < NumDirections; d++ {
			if n, ok := index[c.neighbor(d)]; ok {
				cell.Neighbors[d] = n
			} else {
				cell.Neighbors[d] = NoNeighbor
			}
		}
		cells[i] = cell
	}
	b, err := New(cells)
	if err != nil {
		// The generated layout is fixed; failing here is a programming error.
		panic(err)
	}
	return b
}
