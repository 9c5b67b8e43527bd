package timetable

import (
	"fmt"
	"strings"
)

// Cell is one populated grid position. SubType is derived from CourseType at
// build time (the segment after the first underscore) so that rendering
// layers never parse course-type tags themselves.
type Cell struct {
	CourseName string `json:"course_name"`
	CourseType string `json:"course_type"`
	SubType    string `json:"sub_type"`
	TeacherID  int    `json:"teacher_id"`
}

// Grid is a dense day-by-slot matrix for one group. Rows are days and
// columns are slots, both 0-based. A nil entry is a free slot.
type Grid [][]*Cell

// NewGrid allocates an all-empty grid of the given shape.
func NewGrid(days, slots int) Grid {
	grid := make(Grid, days)
	for d := range grid {
		grid[d] = make([]*Cell, slots)
	}
	return grid
}

// GridSet holds one grid per group, in payload order. It is the complete
// contract handed to a renderer; nothing else is needed to draw a schedule.
type GridSet struct {
	order []string
	grids map[string]Grid
}

// Groups returns the group identifiers in payload order.
func (s *GridSet) Groups() []string {
	if s == nil {
		return nil
	}
	return s.order
}

// Grid returns the grid built for one group.
func (s *GridSet) Grid(group string) (Grid, bool) {
	if s == nil {
		return nil, false
	}
	g, ok := s.grids[group]
	return g, ok
}

// Len returns the number of grids.
func (s *GridSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Only returns a set holding just the named group. Asking for a group the
// payload does not carry is an error that names the groups which do exist.
func (s *GridSet) Only(group string) (*GridSet, error) {
	grid, ok := s.Grid(group)
	if !ok {
		if s.Len() == 0 {
			return nil, fmt.Errorf("group %q not found: the schedule document has no groups", group)
		}
		return nil, fmt.Errorf("group %q not found, available groups: %s", group, strings.Join(s.Groups(), ", "))
	}
	return &GridSet{
		order: []string{group},
		grids: map[string]Grid{group: grid},
	}, nil
}

// Build converts the sparse payload into one dense days×slots grid per
// group. Each session lands at [day-1][slot-1]. Sessions whose day or slot
// falls outside the calendar are skipped outright: malformed positions must
// never break rendering, so they raise no error and leave no trace. When two
// sessions land on the same cell the later one wins; courses are walked in
// document order and sessions in list order, and the cell is overwritten,
// not merged.
//
// Every group present in the payload gets a grid, all-empty if it has no
// placeable sessions. A nil payload yields an empty set. Build performs no
// I/O and returns a freshly allocated result on every call.
func Build(payload *SchedulePayload, days, slots int) *GridSet {
	set := &GridSet{grids: make(map[string]Grid, payload.Len())}

	for _, id := range payload.Groups() {
		grid := NewGrid(days, slots)
		group, _ := payload.Group(id)
		for _, course := range group.Courses() {
			for _, session := range group.Sessions(course) {
				day := session.Day - 1
				slot := session.Slot - 1
				if day < 0 || day >= days || slot < 0 || slot >= slots {
					continue
				}
				grid[day][slot] = &Cell{
					CourseName: course,
					CourseType: session.CourseType,
					SubType:    subTypeOf(session.CourseType),
					TeacherID:  session.TeacherID,
				}
			}
		}
		set.order = append(set.order, id)
		set.grids[id] = grid
	}

	return set
}

// subTypeOf extracts the display sub-type from a course-type tag:
// "Security_lecture" → "lecture". Tags without an underscore have none.
func subTypeOf(courseType string) string {
	if _, sub, ok := strings.Cut(courseType, "_"); ok {
		return sub
	}
	return ""
}
