// Package report assembles the fixed aggregate reports over the record
// store: total hours, hours per course, per weekday and per month. Reports
// are JSON-shaped nested maps ready for export.
package report

import (
	"context"
	"fmt"

	"geekhours/internal/core"
	"geekhours/internal/storage"
)

// Section keys of the four report dimensions.
const (
	KeyTotal     = "total_hours"
	KeyPerCourse = "total_hours_per_course"
	KeyPerWeek   = "total_hours_per_week"
	KeyPerMonth  = "total_hours_per_month"
)

type (
	// Section maps a label (course name, weekday or month name, or the fixed
	// total label) to summed hours. A nil value marshals to JSON null and
	// stands for the NULL sum of an empty store.
	Section map[string]*float64

	// Report is one or more sections keyed by their report dimension.
	Report map[string]Section
)

// Assembler composes store aggregates and bucket naming into reports.
type Assembler struct {
	store *storage.Store
}

func NewAssembler(store *storage.Store) *Assembler {
	return &Assembler{store: store}
}

// TotalHours builds the full report: the ungrouped total merged with the
// per-course, per-week and per-month sections under their own keys.
func (a *Assembler) TotalHours(ctx context.Context) (Report, error) {
	total, err := a.store.TotalHours(ctx)
	if err != nil {
		return nil, err
	}

	section := Section{}
	if total.Hours.Valid {
		hours := total.Hours.Float64
		section[total.Label] = &hours
	} else {
		section[total.Label] = nil
	}

	full := Report{KeyTotal: section}

	perCourse, err := a.TotalHoursPerCourse(ctx)
	if err != nil {
		return nil, err
	}
	perWeek, err := a.TotalHoursPerWeek(ctx, "")
	if err != nil {
		return nil, err
	}
	perMonth, err := a.TotalHoursPerMonth(ctx, "")
	if err != nil {
		return nil, err
	}

	if err := merge(full, perCourse, perWeek, perMonth); err != nil {
		return nil, err
	}
	return full, nil
}

// TotalHoursPerCourse reports summed hours keyed by course name.
func (a *Assembler) TotalHoursPerCourse(ctx context.Context) (Report, error) {
	totals, err := a.store.TotalHoursByCourse(ctx)
	if err != nil {
		return nil, err
	}

	section := Section{}
	for _, ch := range totals {
		hours := ch.Hours
		section[ch.Course] = &hours
	}
	return Report{KeyPerCourse: section}, nil
}

// TotalHoursPerWeek reports summed hours keyed by weekday name, optionally
// restricted to one course.
func (a *Assembler) TotalHoursPerWeek(ctx context.Context, course string) (Report, error) {
	totals, err := a.store.TotalHoursByWeek(ctx, course)
	if err != nil {
		return nil, err
	}
	return Report{KeyPerWeek: bucketSection(totals)}, nil
}

// TotalHoursPerMonth reports summed hours keyed by month name, optionally
// restricted to one course.
func (a *Assembler) TotalHoursPerMonth(ctx context.Context, course string) (Report, error) {
	totals, err := a.store.TotalHoursByMonth(ctx, course)
	if err != nil {
		return nil, err
	}
	return Report{KeyPerMonth: bucketSection(totals)}, nil
}

func bucketSection(totals []core.BucketHours) Section {
	section := Section{}
	for _, b := range core.NameBuckets(totals) {
		hours := b.Hours
		section[b.Bucket] = &hours
	}
	return section
}

// merge copies each sub-report's sections into dst. The four dimensions own
// disjoint keys; a collision means the contract is broken and fails loud
// instead of silently overwriting.
func merge(dst Report, subs ...Report) error {
	for _, sub := range subs {
		for key, section := range sub {
			if _, ok := dst[key]; ok {
				return fmt.Errorf("report key %q assembled twice", key)
			}
			dst[key] = section
		}
	}
	return nil
}
