// Package rack lays out numbered balls in a triangular rack.
package rack

import "fmt"

// Scene-space shift applied after the row/column layout: x = -rawZ + ShiftX, z = -rawX + ShiftZ.
const (
	ShiftX = -1.3
	ShiftZ = -1.5
)

// Params controls the rack. Row r (0-based) holds r+1 balls.
type Params struct {
	Rows    int
	Spacing float32
	StartX  float32
	StartZ  float32
	Count   int
}

// Standard returns the 15-ball, 5-row rack.
func Standard() Params {
	return Params{Rows: 5, Spacing: 0.6, StartX: -1.5, StartZ: 0.5, Count: 15}
}

// Slot is one placed ball. RawX/RawZ are rack coordinates, X/Z scene coordinates.
type Slot struct {
	Index      int
	Row, Col   int
	RawX, RawZ float32
	X, Z       float32
}

// Layout enumerates slots row-major, left to right, and stops after p.Count placements.
// It returns fewer slots only when the rows run out first.
func Layout(p Params) []Slot {
	if p.Count <= 0 || p.Rows <= 0 {
		return nil
	}
	slots := make([]Slot, 0, p.Count)
	for row := 0; row < p.Rows && len(slots) < p.Count; row++ {
		ballsInRow := row + 1
		offsetX := p.StartX - float32(ballsInRow-1)*p.Spacing/2
		for col := 0; col < ballsInRow && len(slots) < p.Count; col++ {
			rawX := offsetX + float32(col)*p.Spacing
			rawZ := p.StartZ + float32(row)*p.Spacing
			slots = append(slots, Slot{
				Index: len(slots),
				Row:   row,
				Col:   col,
				RawX:  rawX,
				RawZ:  rawZ,
				X:     -rawZ + ShiftX,
				Z:     -rawX + ShiftZ,
			})
		}
	}
	return slots
}

// BallTextures returns the texture file names for balls 1..n in rack order.
func BallTextures(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("ball-%d.jpg", i+1)
	}
	return out
}
