// Package render draws built schedule grids: text tables for terminals, a
// JSON document for pipes. Rendering is stateless; a Renderer only carries
// the calendar labels and view options it was built with.
package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vk/timegridgo/internal/config"
	"github.com/vk/timegridgo/internal/timetable"
)

// Renderer turns grid sets into output. Grids handed to it must match the
// calendar shape it was built with; the app guarantees that by building
// grids from the same calendar.
type Renderer struct {
	calendar config.Calendar
	view     config.View
}

// New builds a Renderer for one calendar and view configuration.
func New(calendar config.Calendar, view config.View) *Renderer {
	return &Renderer{calendar: calendar, view: view}
}

// Text writes one table per group, in grid-set order, separated by blank
// lines. Slot labels run across the header, day labels down the first
// column.
func (r *Renderer) Text(w io.Writer, set *timetable.GridSet) {
	for i, id := range set.Groups() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Group %s\n", id)

		grid, _ := set.Grid(id)
		r.writeTable(w, grid)
	}
}

func (r *Renderer) writeTable(w io.Writer, grid timetable.Grid) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{""}, r.calendar.Slots...))
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetRowLine(true)

	for day, row := range grid {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, r.calendar.Days[day])
		for _, cell := range row {
			cells = append(cells, r.formatCell(cell))
		}
		table.Append(cells)
	}

	table.Render()
}

// formatCell renders one cell as "<course> (<sub-type>) - T<teacher>",
// dropping the segments the cell or the view does not carry.
func (r *Renderer) formatCell(cell *timetable.Cell) string {
	if cell == nil {
		return r.view.EmptyCell
	}

	text := cell.CourseName
	if cell.SubType != "" {
		text = fmt.Sprintf("%s (%s)", text, cell.SubType)
	}
	if r.view.ShowTeachers {
		text = fmt.Sprintf("%s - T%d", text, cell.TeacherID)
	}
	return text
}
