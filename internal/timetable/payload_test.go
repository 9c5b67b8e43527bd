package timetable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodePayload is a test helper that decodes a raw schedule document.
func decodePayload(t *testing.T, doc string) *SchedulePayload {
	t.Helper()
	var payload SchedulePayload
	require.NoError(t, json.Unmarshal([]byte(doc), &payload))
	return &payload
}

func TestSchedulePayload_PreservesDocumentOrder(t *testing.T) {
	doc := `{
		"3": {"Security": [], "Algebra": [], "Physics": []},
		"1": {"Databases": []},
		"10": {},
		"2": {"Security": []}
	}`

	payload := decodePayload(t, doc)

	assert.Equal(t, []string{"3", "1", "10", "2"}, payload.Groups())

	group, ok := payload.Group("3")
	require.True(t, ok)
	assert.Equal(t, []string{"Security", "Algebra", "Physics"}, group.Courses())
}

func TestSchedulePayload_DecodesSessionFields(t *testing.T) {
	doc := `{"1": {"Security": [
		{"course_type": "Security_lecture", "day": 2, "slot": 3, "teacher_id": 7},
		{"course_type": "Security_tutorial", "day": 4, "slot": 1, "teacher_id": 9}
	]}}`

	payload := decodePayload(t, doc)
	group, ok := payload.Group("1")
	require.True(t, ok)

	sessions := group.Sessions("Security")
	require.Len(t, sessions, 2)
	assert.Equal(t, Session{CourseType: "Security_lecture", Day: 2, Slot: 3, TeacherID: 7}, sessions[0])
	assert.Equal(t, Session{CourseType: "Security_tutorial", Day: 4, Slot: 1, TeacherID: 9}, sessions[1])
}

func TestSchedulePayload_DecodeErrors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "document is an array",
			doc:  `[{"1": {}}]`,
		},
		{
			name: "document is a string",
			doc:  `"schedule"`,
		},
		{
			name: "group value is a number",
			doc:  `{"1": 5}`,
		},
		{
			name: "course value is an object",
			doc:  `{"1": {"Security": {"day": 1}}}`,
		},
		{
			name: "session day is a string",
			doc:  `{"1": {"Security": [{"course_type": "x", "day": "one", "slot": 1, "teacher_id": 1}]}}`,
		},
		{
			name: "truncated document",
			doc:  `{"1": {"Security": [`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var payload SchedulePayload
			require.Error(t, json.Unmarshal([]byte(tc.doc), &payload))
		})
	}
}

func TestSchedulePayload_EmptyDocument(t *testing.T) {
	payload := decodePayload(t, `{}`)

	assert.Zero(t, payload.Len())
	assert.Empty(t, payload.Groups())
}

func TestSchedulePayload_NullGroupSchedule(t *testing.T) {
	// A null group still gets an entry, with zero courses.
	payload := decodePayload(t, `{"1": null}`)

	require.Equal(t, []string{"1"}, payload.Groups())
	group, ok := payload.Group("1")
	require.True(t, ok)
	assert.Zero(t, group.Len())
}

func TestSchedulePayload_DuplicateGroupKeys(t *testing.T) {
	// A repeated key keeps its first position but the later value wins.
	doc := `{
		"1": {"Security": []},
		"2": {},
		"1": {"Algebra": []}
	}`

	payload := decodePayload(t, doc)

	assert.Equal(t, []string{"1", "2"}, payload.Groups())
	group, ok := payload.Group("1")
	require.True(t, ok)
	assert.Equal(t, []string{"Algebra"}, group.Courses())
}
