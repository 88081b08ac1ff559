// Package rspecjson reads RSpec JSON formatter output and aggregates it
// across runs.
package rspecjson

import "strconv"

// Example statuses emitted by the RSpec JSON formatter.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusPending = "pending"
)

// DefaultExceptionClass stands in for a failed example with no exception.
const DefaultExceptionClass = "UnknownError"

// ResultFile is one `rspec --format json` document.
type ResultFile struct {
	Version  string    `json:"version,omitempty"`
	Seed     *int64    `json:"seed,omitempty"` // absent unless the run used random ordering
	Examples []Example `json:"examples"`
}

// Example is one executed test case.
type Example struct {
	ID              string     `json:"id,omitempty"`
	Description     string     `json:"description,omitempty"`
	FullDescription string     `json:"full_description"`
	Status          string     `json:"status"`
	FilePath        string     `json:"file_path"`
	LineNumber      int        `json:"line_number"`
	RunTime         float64    `json:"run_time"`
	PendingMessage  *string    `json:"pending_message,omitempty"`
	Exception       *Exception `json:"exception,omitempty"`
}

// Exception describes why an example failed.
type Exception struct {
	Class     string   `json:"class"`
	Message   string   `json:"message"`
	Backtrace []string `json:"backtrace,omitempty"`
}

// ExceptionClass returns the exception class, or DefaultExceptionClass.
func (e *Example) ExceptionClass() string {
	if e.Exception == nil || e.Exception.Class == "" {
		return DefaultExceptionClass
	}
	return e.Exception.Class
}

// ExceptionMessage returns the exception message, or "".
func (e *Example) ExceptionMessage() string {
	if e.Exception == nil {
		return ""
	}
	return e.Exception.Message
}

// Pending returns the pending message, or "".
func (e *Example) Pending() string {
	if e.PendingMessage == nil {
		return ""
	}
	return *e.PendingMessage
}

// Location returns "path:line" with any leading "./" removed.
func (e *Example) Location() string {
	return CleanPath(e.FilePath) + ":" + strconv.Itoa(e.LineNumber)
}

// TotalRunTime sums run_time over all examples in the file.
func (f *ResultFile) TotalRunTime() float64 {
	var total float64
	for i := range f.Examples {
		total += f.Examples[i].RunTime
	}
	return total
}
