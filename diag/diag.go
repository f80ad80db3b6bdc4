// Package diag collects structured diagnostics emitted while building
// schemas and resolving bindings. Failures accumulate instead of aborting,
// so one pass over a declaration surfaces every error it contains; the host
// decides presentation and gates code generation on an error-free collector.
package diag

import (
	"errors"
	"fmt"
	"strings"
)

// Severity classifies a diagnostic record.
type Severity int

// Severities.
const (
	Warning Severity = iota
	Error
)

// String returns the severity name.
func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Coordinate keys a diagnostic to its logical location. Fields that do not
// apply stay empty; the core carries no source spans, the host attaches
// those when presenting records.
type Coordinate struct {
	Interface string
	Enum      string
	Variant   string
	Property  string
}

// String returns the non-empty coordinate fields in declaration order.
func (c Coordinate) String() string {
	var parts []string
	if c.Interface != "" {
		parts = append(parts, "interface "+c.Interface)
	}
	if c.Enum != "" {
		parts = append(parts, "enum "+c.Enum)
	}
	if c.Variant != "" {
		parts = append(parts, "variant "+c.Variant)
	}
	if c.Property != "" {
		parts = append(parts, "property "+c.Property)
	}
	return strings.Join(parts, ", ")
}

// Record is one collected diagnostic.
type Record struct {
	Severity Severity
	Coord    Coordinate
	Err      error
}

// String renders the record for user-facing reporting.
func (r Record) String() string {
	if loc := r.Coord.String(); loc != "" {
		return fmt.Sprintf("%s: %s: %v", r.Severity, loc, r.Err)
	}
	return fmt.Sprintf("%s: %v", r.Severity, r.Err)
}

// Collector accumulates diagnostics for one generation unit. The zero value
// is ready to use. Collectors are not safe for concurrent use; each
// generation unit owns its own.
type Collector struct {
	records []Record
	errs    int
}

// New returns an empty collector.
func New() *Collector {
	return &Collector{}
}

// Error records an error diagnostic at the given coordinate.
func (c *Collector) Error(coord Coordinate, err error) {
	c.records = append(c.records, Record{Severity: Error, Coord: coord, Err: err})
	c.errs++
}

// Warn records a warning diagnostic at the given coordinate.
func (c *Collector) Warn(coord Coordinate, err error) {
	c.records = append(c.records, Record{Severity: Warning, Coord: coord, Err: err})
}

// Merge appends every record of other into c.
func (c *Collector) Merge(other *Collector) {
	c.records = append(c.records, other.records...)
	c.errs += other.errs
}

// HasErrors reports whether any error-severity record was collected.
func (c *Collector) HasErrors() bool {
	return c.errs > 0
}

// ErrorCount returns the number of error-severity records.
func (c *Collector) ErrorCount() int {
	return c.errs
}

// Records returns all collected records in collection order.
func (c *Collector) Records() []Record {
	return c.records
}

// Errors returns the error-severity records in collection order.
func (c *Collector) Errors() []Record {
	out := make([]Record, 0, c.errs)
	for _, r := range c.records {
		if r.Severity == Error {
			out = append(out, r)
		}
	}
	return out
}

// Err returns all error-severity records joined into one error, or nil if
// the collector holds no errors.
func (c *Collector) Err() error {
	if c.errs == 0 {
		return nil
	}
	errs := make([]error, 0, c.errs)
	for _, r := range c.records {
		if r.Severity == Error {
			if loc := r.Coord.String(); loc != "" {
				errs = append(errs, fmt.Errorf("%s: %w", loc, r.Err))
			} else {
				errs = append(errs, r.Err)
			}
		}
	}
	return errors.Join(errs...)
}
