// Package explain holds the step trail a solve call produces. A trail is
// owned by exactly one in-flight call and handed to the caller when the
// call returns; nothing here is safe for concurrent mutation and nothing
// needs to be.
package explain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Step is one titled entry in an explanation trail.
type Step struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Explanation is an append-only sequence of steps. The trace ID identifies
// the solve call that produced the trail; it is excluded from Render so
// rendered trails stay byte-identical across runs.
type Explanation struct {
	id    string
	steps []Step
}

// New starts an empty trail with a fresh trace ID.
func New() *Explanation {
	return &Explanation{id: uuid.NewString()}
}

// TraceID returns the identifier of the producing call.
func (e *Explanation) TraceID() string { return e.id }

// Add appends a step.
func (e *Explanation) Add(title, body string) {
	e.steps = append(e.steps, Step{Title: title, Body: body})
}

// Append copies every step of other onto e, preserving order.
func (e *Explanation) Append(other *Explanation) {
	if other == nil {
		return
	}
	e.steps = append(e.steps, other.steps...)
}

// Steps returns the recorded steps; callers must not mutate the slice.
func (e *Explanation) Steps() []Step { return e.steps }

// Len reports the number of steps.
func (e *Explanation) Len() int { return len(e.steps) }

// Render formats the trail as numbered plain text.
func (e *Explanation) Render() string {
	var sb strings.Builder
	for i, s := range e.steps {
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(s.Title)
		if s.Body != "" {
			sb.WriteString(": ")
			sb.WriteString(s.Body)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
