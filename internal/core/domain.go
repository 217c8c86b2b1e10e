package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Relation names of the two tables owned by the record store.
const (
	RelationCourse   = "course"
	RelationDonelist = "donelist"
)

type (
	// Course is a validated course name. Name is unique across all courses.
	Course struct {
		ID   int64
		Name string
	}

	// StudyRecord is one study session from the donelist table. Course holds
	// the course name by value, not the course id; Duration keeps the
	// decimal-hour text exactly as stored.
	StudyRecord struct {
		ID       int64
		Date     string
		Course   string
		Duration string
	}

	// BucketHours is one aggregated bucket: a weekday or month code (or its
	// short name after renaming) and the summed hours that fell into it.
	BucketHours struct {
		Bucket string
		Hours  float64
	}
)

var (
	ErrUnknownRelation = errors.New("unknown relation")
	ErrDuplicateName   = errors.New("course name already registered")
	ErrDuplicateRecord = errors.New("record already exists for date and course")
	ErrNoSuchCourse    = errors.New("no such course")
	ErrNoSuchRecord    = errors.New("no such record")
	ErrEmptyName       = errors.New("empty course name")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidDuration = errors.New("invalid duration")
)

// ValidateRelation reports whether name is one of the two known relations.
func ValidateRelation(name string) error {
	switch name {
	case RelationCourse, RelationDonelist:
		return nil
	}
	return ErrUnknownRelation
}

// ValidateCourseName rejects empty and whitespace-only names.
func ValidateCourseName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

// ValidateDate requires a strict ISO-8601 calendar date (YYYY-MM-DD).
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// ParseDuration parses a decimal-hours string. Durations are persisted as
// text for schema compatibility, so malformed input has to be rejected here,
// before it can reach an aggregate query.
func ParseDuration(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidDuration
	}
	hours, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidDuration
	}
	if hours < 0 {
		return 0, ErrInvalidDuration
	}
	return hours, nil
}

func (c Course) Validate() error {
	return ValidateCourseName(c.Name)
}

func (r StudyRecord) Validate() error {
	if err := ValidateDate(r.Date); err != nil {
		return err
	}
	if err := ValidateCourseName(r.Course); err != nil {
		return err
	}
	if _, err := ParseDuration(r.Duration); err != nil {
		return err
	}
	return nil
}
