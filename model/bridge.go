package model

// ToDense flattens the grid into a Height x Width matrix indexed [row][col], where
// [y][x] is true iff (x, y) is alive. Cells outside the extent are dropped.
func ToDense(g *Grid) [][]bool {
	dim := g.Dim()
	if dim.Area() == 0 {
		return [][]bool{}
	}

	matrix := make([][]bool, dim.Height)
	for y := range matrix {
		matrix[y] = make([]bool, dim.Width)
	}
	for c := range g.cells {
		if dim.Contains(c) {
			matrix[c.Y][c.X] = true
		}
	}
	return matrix
}

// ToSparse builds a grid from a [row][col] matrix. The extent is the widest row by the
// number of rows; ragged rows are read up to their own length.
func ToSparse(matrix [][]bool) *Grid {
	dim := Dim{Height: len(matrix)}
	for _, row := range matrix {
		dim.Width = max(dim.Width, len(row))
	}
	if dim.Width == 0 {
		return NewGrid(Dim{})
	}

	g := NewGrid(dim)
	for y, row := range matrix {
		for x, alive := range row {
			if alive {
				g.cells.Insert(C(x, y))
			}
		}
	}
	return g
}
