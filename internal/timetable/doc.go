// Package timetable holds the schedule data model and the sparse-to-dense
// grid construction. The upstream endpoint serves a nested JSON document
// (group → course → sessions); Build turns it into one dense day-by-slot
// grid per group, ready for positional rendering.
//
// Everything in this package is pure: decoding produces an immutable
// snapshot, and Build allocates a fresh result on every call.
package timetable
