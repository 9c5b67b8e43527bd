package timetable

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Session is one scheduled occurrence of a course: a 1-based (day, slot)
// position in the teaching week, the course-type tag, and the assigned
// teacher. TeacherID is opaque here; it is never resolved to a name.
type Session struct {
	CourseType string `json:"course_type"`
	Day        int    `json:"day"`
	Slot       int    `json:"slot"`
	TeacherID  int    `json:"teacher_id"`
}

// GroupSchedule maps course names to their sessions for a single group.
// Go maps do not keep insertion order, so the document's course order is
// tracked separately; rendering depends on it being stable.
type GroupSchedule struct {
	order    []string
	sessions map[string][]Session
}

// Courses returns the course names in document order.
func (g *GroupSchedule) Courses() []string {
	if g == nil {
		return nil
	}
	return g.order
}

// Sessions returns the session list for a course, in document order.
func (g *GroupSchedule) Sessions(course string) []Session {
	if g == nil {
		return nil
	}
	return g.sessions[course]
}

// Len returns the number of courses.
func (g *GroupSchedule) Len() int {
	if g == nil {
		return 0
	}
	return len(g.order)
}

// UnmarshalJSON decodes a course → sessions object, preserving key order.
func (g *GroupSchedule) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	g.order = nil
	g.sessions = make(map[string][]Session)

	return walkObject(data, "course", func(name string, dec *json.Decoder) error {
		var sessions []Session
		if err := dec.Decode(&sessions); err != nil {
			return fmt.Errorf("failed to decode sessions for course %q: %w", name, err)
		}
		if _, seen := g.sessions[name]; !seen {
			g.order = append(g.order, name)
		}
		g.sessions[name] = sessions
		return nil
	})
}

// SchedulePayload is the decoded upstream document: group identifier →
// GroupSchedule, group order preserved from the document. One payload is
// produced per successful fetch and replaced wholesale by the next; it is
// never mutated after decoding.
type SchedulePayload struct {
	order  []string
	groups map[string]*GroupSchedule
}

// Groups returns the group identifiers in document order.
func (p *SchedulePayload) Groups() []string {
	if p == nil {
		return nil
	}
	return p.order
}

// Group returns the schedule for one group.
func (p *SchedulePayload) Group(id string) (*GroupSchedule, bool) {
	if p == nil {
		return nil, false
	}
	g, ok := p.groups[id]
	return g, ok
}

// Len returns the number of groups.
func (p *SchedulePayload) Len() int {
	if p == nil {
		return 0
	}
	return len(p.order)
}

// UnmarshalJSON decodes the full schedule document, preserving group order.
func (p *SchedulePayload) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	p.order = nil
	p.groups = make(map[string]*GroupSchedule)

	return walkObject(data, "group", func(id string, dec *json.Decoder) error {
		var gs GroupSchedule
		if err := dec.Decode(&gs); err != nil {
			return fmt.Errorf("failed to decode schedule for group %q: %w", id, err)
		}
		if _, seen := p.groups[id]; !seen {
			p.order = append(p.order, id)
		}
		p.groups[id] = &gs
		return nil
	})
}

// walkObject streams over a single JSON object, invoking fn once per key with
// the decoder positioned at the key's value. A duplicate key keeps its first
// position; the callback decides what happens to its value.
func walkObject(data []byte, kind string, fn func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read %s document: %w", kind, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object of %ss, got %v", kind, tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read %s key: %w", kind, err)
		}
		// Inside an object, every key token is a string.
		key := keyTok.(string)
		if err := fn(key, dec); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read %s document: %w", kind, err)
	}
	return nil
}
