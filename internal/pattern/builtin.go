package pattern

// DefaultID is the pattern stamped at startup when none is selected.
const DefaultID = "classic"

func init() {
	Register(Pattern{
		ID:   "classic",
		Name: "Classic Seed",
		Cells: []Cell{
			{X: 0, Y: 0},
			{X: -1, Y: -1},
			{X: 1, Y: 0},
			{X: 1, Y: -1},
			{X: 0, Y: 1},
		},
	})

	Register(Pattern{
		ID:   "glider",
		Name: "Glider",
		Cells: []Cell{
			{X: 0, Y: -1},
			{X: 1, Y: 0},
			{X: -1, Y: 1},
			{X: 0, Y: 1},
			{X: 1, Y: 1},
		},
	})

	Register(Pattern{
		ID:   "blinker",
		Name: "Blinker",
		Cells: []Cell{
			{X: -1, Y: 0},
			{X: 0, Y: 0},
			{X: 1, Y: 0},
		},
	})

	Register(Pattern{
		ID:   "toad",
		Name: "Toad",
		Cells: []Cell{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 2, Y: 0},
			{X: -1, Y: 1},
			{X: 0, Y: 1},
			{X: 1, Y: 1},
		},
	})

	Register(Pattern{
		ID:   "r-pentomino",
		Name: "R-Pentomino",
		Cells: []Cell{
			{X: 0, Y: -1},
			{X: 1, Y: -1},
			{X: -1, Y: 0},
			{X: 0, Y: 0},
			{X: 0, Y: 1},
		},
	})

	Register(Pattern{
		ID:   "lwss",
		Name: "Lightweight Spaceship",
		Cells: []Cell{
			{X: -1, Y: -1},
			{X: 2, Y: -1},
			{X: -2, Y: 0},
			{X: -2, Y: 1},
			{X: 2, Y: 1},
			{X: -2, Y: 2},
			{X: -1, Y: 2},
			{X: 0, Y: 2},
			{X: 1, Y: 2},
		},
	})
}
