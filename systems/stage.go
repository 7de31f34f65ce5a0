package systems

import "github.com/solarlune/resolv"

// Stage is the playfield a fighter moves in: horizontal bounds, the ground
// line and the collision space holding hurtboxes and hitbox probes.
type Stage struct {
	Width   float64
	Height  float64
	GroundY float64
	Space   *resolv.Space
}

// gridExtent is the area actually covered by the space's cells. The grid is
// sized with integer division, so it can stop short of Width and Height.
func (s *Stage) gridExtent() (w, h float64) {
	if s.Space == nil || len(s.Space.Cells) == 0 {
		return 0, 0
	}
	return float64(len(s.Space.Cells[0]) * s.Space.CellWidth),
		float64(len(s.Space.Cells) * s.Space.CellHeight)
}

// contains reports whether r lies fully inside the grid.
func (s *Stage) contains(x, y, w, h float64) bool {
	gw, gh := s.gridExtent()
	return x >= 0 && y >= 0 && x+w <= gw && y+h <= gh
}
