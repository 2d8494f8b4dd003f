/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package maze

import (
	"strings"

	"github.com/flxj/mstlib"
)

const (
	emptyField   = ' '
	horizontalCh = '-'
	verticalCh   = '|'
	vertexCh     = '+'
)

// Render draws edges over a rows x columns grid exactly as the
// source's printMaze does: vertices sit at even (row,col) positions
// of a (2*rows-1) x (2*columns-1) character grid, and each edge is
// drawn as a dash (same-row neighbour) or a pipe (same-column
// neighbour) between the two vertices it connects.
func Render(edges []mstlib.Edge, rows, columns int) string {
	gridRows := rows*2 - 1
	gridCols := columns*2 - 1
	if gridRows < 0 {
		gridRows = 0
	}
	if gridCols < 0 {
		gridCols = 0
	}

	grid := make([][]rune, gridRows)
	for i := range grid {
		grid[i] = make([]rune, gridCols)
		for j := range grid[i] {
			grid[i][j] = emptyField
		}
	}
	for i := 0; i < gridRows; i += 2 {
		for j := 0; j < gridCols; j += 2 {
			grid[i][j] = vertexCh
		}
	}

	for _, e := range edges {
		from, to := e.From, e.To
		if from > to {
			from, to = to, from
		}
		row := from/columns + to/columns
		if row%2 == 1 {
			grid[row][(to%columns)*2] = verticalCh
		} else {
			grid[row][(to%columns-1)*2+1] = horizontalCh
		}
	}

	var b strings.Builder
	for i, line := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(line))
	}
	return b.String()
}
