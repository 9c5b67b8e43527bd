package render

import (
	"encoding/json"
	"io"

	"github.com/vk/timegridgo/internal/timetable"
)

// groupDocument is the JSON presentation of one group's grid. The output is
// an array of these rather than an object keyed by group, because an array
// is the only JSON shape that guarantees group order for consumers.
type groupDocument struct {
	Group string         `json:"group"`
	Days  int            `json:"days"`
	Slots int            `json:"slots"`
	Grid  timetable.Grid `json:"grid"`
}

// JSON writes the whole grid set as one indented document. Empty cells
// appear as null so consumers can index the grid positionally.
func (r *Renderer) JSON(w io.Writer, set *timetable.GridSet) error {
	docs := make([]groupDocument, 0, set.Len())
	for _, id := range set.Groups() {
		grid, _ := set.Grid(id)
		docs = append(docs, groupDocument{
			Group: id,
			Days:  len(r.calendar.Days),
			Slots: len(r.calendar.Slots),
			Grid:  grid,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}
