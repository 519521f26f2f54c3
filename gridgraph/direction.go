package gridgraph

// Direction is a unit vector on the grid. Rows grow downwards, so Right
// turned clockwise is Down.
type Direction struct {
	DRow, DCol int
}

// The four unit directions.
var (
	Up    = Direction{DRow: -1}
	Down  = Direction{DRow: +1}
	Left  = Direction{DCol: -1}
	Right = Direction{DCol: +1}
)

// neighborOrder is the fixed enumeration order (+row, +col, −row, −col).
var neighborOrder = [4]Direction{Down, Right, Up, Left}

// TurnRight rotates d by 90° clockwise: (dr, dc) → (dc, −dr).
func (d Direction) TurnRight() Direction {
	return Direction{DRow: d.DCol, DCol: -d.DRow}
}

// TurnLeft rotates d by 90° counter-clockwise: (dr, dc) → (−dc, dr).
// It is the exact inverse of TurnRight.
func (d Direction) TurnLeft() Direction {
	return Direction{DRow: -d.DCol, DCol: d.DRow}
}

// String returns the lowercase name of d, or "none" for anything that
// is not a unit vector.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
