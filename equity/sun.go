// Package equity scores hypothetical trees by the sun they would collect
// and the shade they would throw on both players' trees.
package equity

import (
	"github.com/sylvanbot/sylvan/board"
	"github.com/sylvanbot/sylvan/game"
)

const (
	// CycleLength is the number of days for the sun to go around once.
	CycleLength = 6
	// MaxShadowLength is how far the tallest tree throws its shadow.
	MaxShadowLength = 3
)

// DayRange is the half-open range of days [Start, End).
type DayRange struct {
	Start int
	End   int
}

func (r DayRange) Len() int {
	return r.End - r.Start
}

// NextDay is the range holding only the day after day.
func NextDay(day int) DayRange {
	return DayRange{Start: day + 1, End: day + 2}
}

// FullCycle covers one full turn of the sun.
var FullCycle = DayRange{Start: 0, End: CycleLength}

// CycleDay maps a day onto the sun's position.
func CycleDay(day int) int {
	return day % CycleLength
}

// SunDirection is the direction shadows are thrown on a given cycle day.
func SunDirection(cycleDay int) board.Direction {
	return board.Direction(cycleDay % CycleLength)
}

// IsShadowed reports whether cell is in shade on the given cycle day. It
// looks up to MaxShadowLength cells towards the sun for a tree taller than
// its distance and at least minSize. With onlyMine, only our trees count.
func IsShadowed(st *game.State, cycleDay, minSize int, onlyMine bool, cell int) bool {
	b := st.Board()
	dir := SunDirection(cycleDay).Opposite()
	dist := 0
	next := b.Neighbor(cell, dir)
	for next != board.NoNeighbor && dist < MaxShadowLength {
		if tr, ok := st.TreeAt(next); ok {
			if (tr.Mine || !onlyMine) && tr.Size > dist && tr.Size >= minSize {
				return true
			}
		}
		next = b.Neighbor(next, dir)
		dist++
	}
	return false
}

// ShadowDayCount counts the days in r on which cell is shadowed.
func ShadowDayCount(st *game.State, r DayRange, minSize int, onlyMine bool, cell int) int {
	n := 0
	for day := r.Start; day < r.End; day++ {
		if IsShadowed(st, CycleDay(day), minSize, onlyMine, cell) {
			n++
		}
	}
	return n
}

// OpponentSunLost is the sun the opponent's trees would lose over r to a
// tree of the given size on cell.
func OpponentSunLost(st *game.State, r DayRange, cell, size int) int {
	return sunLost(st, r, cell, size, false)
}

// OwnSunLost is the sun our own trees would lose over r to a tree of the
// given size on cell.
func OwnSunLost(st *game.State, r DayRange, cell, size int) int {
	return sunLost(st, r, cell, size, true)
}

// sunLost walks away from the sun for size cells each day. A tree only
// counts if it is no taller than size and taller than every tree met so
// far that day; shorter ones are already shaded by those.
func sunLost(st *game.State, r DayRange, cell, size int, mine bool) int {
	b := st.Board()
	lost := 0
	for day := r.Start; day < r.End; day++ {
		dir := SunDirection(CycleDay(day))
		tallest := 0
		dist := 0
		next := b.Neighbor(cell, dir)
		for next != board.NoNeighbor && dist < size {
			if tr, ok := st.TreeAt(next); ok && tr.Size <= size && tr.Size > tallest {
				if tr.Mine == mine {
					lost += tr.Size
				}
				tallest = tr.Size
			}
			next = b.Neighbor(next, dir)
			dist++
		}
	}
	return lost
}

// SunRate is the net sun advantage of a tree of size on cell over r: the
// sun it collects, less the sun it takes from our trees, plus the sun it
// takes from the opponent's.
func SunRate(st *game.State, cell, size int, r DayRange) float64 {
	oppLost := OpponentSunLost(st, r, cell, size)
	ownLost := OwnSunLost(st, r, cell, size)
	won := (r.Len() - ShadowDayCount(st, r, size, false, cell)) * size
	return float64(won - ownLost + oppLost)
}
