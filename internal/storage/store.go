// Package storage owns the two relations of the study-time bookkeeping
// store, course and donelist, on an embedded SQLite database. All mutation
// and aggregate queries go through the Store; no other package touches the
// tables directly.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"geekhours/internal/core"

	_ "modernc.org/sqlite"
)

// TotalLabel is the fixed label paired with the ungrouped total-hours sum.
const TotalLabel = "Total: "

// Total is the one-row result of the ungrouped total-hours aggregate. Hours
// is invalid when the donelist is empty: SUM over zero rows is NULL.
type Total struct {
	Label string
	Hours sql.NullFloat64
}

// CourseHours is the summed duration for one course that has at least one
// study record.
type CourseHours struct {
	Course string
	Hours  float64
}

// Store holds one open connection for its whole lifetime. It assumes a
// single owner; cross-process isolation is left to SQLite's own locking.
type Store struct {
	db *sql.DB
}

// Open creates the parent directory if needed, opens the database, verifies
// the connection and brings the schema up to date.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the connection. Safe to call on a store that never opened.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Columns returns the ordered column names of a relation, as used for CSV
// export headers.
func (s *Store) Columns(ctx context.Context, relation string) ([]string, error) {
	switch relation {
	case core.RelationCourse:
		return []string{"id", "name"}, nil
	case core.RelationDonelist:
		return []string{"id", "date", "course", "duration"}, nil
	}
	return nil, fmt.Errorf("columns of %q: %w", relation, core.ErrUnknownRelation)
}

// List returns every row of a relation in storage order, each cell rendered
// as a string in column order.
func (s *Store) List(ctx context.Context, relation string) ([][]string, error) {
	switch relation {
	case core.RelationCourse:
		courses, err := s.ListCourses(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, len(courses))
		for i, c := range courses {
			rows[i] = []string{strconv.FormatInt(c.ID, 10), c.Name}
		}
		return rows, nil
	case core.RelationDonelist:
		records, err := s.ListRecords(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([][]string, len(records))
		for i, r := range records {
			rows[i] = []string{strconv.FormatInt(r.ID, 10), r.Date, r.Course, r.Duration}
		}
		return rows, nil
	}
	return nil, fmt.Errorf("list %q: %w", relation, core.ErrUnknownRelation)
}

// ListCourses returns all registered courses in storage order.
func (s *Store) ListCourses(ctx context.Context) ([]core.Course, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM course")
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []core.Course
	for rows.Next() {
		var c core.Course
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// ListRecords returns all study records in storage order.
func (s *Store) ListRecords(ctx context.Context) ([]core.StudyRecord, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, date, course, duration FROM donelist")
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []core.StudyRecord
	for rows.Next() {
		var r core.StudyRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.Course, &r.Duration); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// AddCourses registers each name as a new course. The first name that
// collides with an existing course fails with ErrDuplicateName; names
// inserted earlier in the same call stay committed, each insert being its
// own statement.
func (s *Store) AddCourses(ctx context.Context, names []string) error {
	for _, name := range names {
		if err := core.ValidateCourseName(name); err != nil {
			return fmt.Errorf("add course %q: %w", name, err)
		}

		exists, err := s.courseExists(ctx, name)
		if err != nil {
			return fmt.Errorf("check course %q: %w", name, err)
		}
		if exists {
			return fmt.Errorf("add course %q: %w", name, core.ErrDuplicateName)
		}

		if _, err := s.db.ExecContext(ctx, "INSERT INTO course(name) VALUES (?)", name); err != nil {
			// A raw UNIQUE violation can still fire here; it surfaces as the
			// driver error, not as ErrDuplicateName.
			return fmt.Errorf("insert course %q: %w", name, err)
		}

		slog.InfoContext(ctx, "Course registered", "name", name)
	}
	return nil
}

// AddRecord inserts one study session. The course must be registered and the
// (date, course) pair must not already be present; both checks and the
// insert run in one transaction so the caller observes them atomically.
func (s *Store) AddRecord(ctx context.Context, date, course, duration string) error {
	if err := core.ValidateDate(date); err != nil {
		return fmt.Errorf("add record %q: %w", date, err)
	}
	hours, err := core.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("add record %q: %w", duration, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin add record: %w", err)
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM course WHERE name = ?", course).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("add record for %q: %w", course, core.ErrNoSuchCourse)
	}
	if err != nil {
		return fmt.Errorf("check course %q: %w", course, err)
	}

	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM donelist WHERE date = ? AND course = ?", date, course).Scan(&one)
	if err == nil {
		return fmt.Errorf("add record %s/%s: %w", date, course, core.ErrDuplicateRecord)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("check record %s/%s: %w", date, course, err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO donelist(date, course, duration) VALUES (?, ?, ?)",
		date, course, duration); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit add record: %w", err)
	}

	slog.InfoContext(ctx, "Study record saved",
		"date", date,
		"course", course,
		"hours", hours)

	return nil
}

// RemoveCourse deletes a course by name.
func (s *Store) RemoveCourse(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM course WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("remove course %q: %w", name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove course %q: %w", name, err)
	}
	if affected == 0 {
		return fmt.Errorf("remove course %q: %w", name, core.ErrNoSuchCourse)
	}

	slog.InfoContext(ctx, "Course removed", "name", name)
	return nil
}

// RemoveRecord deletes the study record matching the exact (date, course)
// pair, the dedup key of the donelist.
func (s *Store) RemoveRecord(ctx context.Context, date, course string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM donelist WHERE date = ? AND course = ?", date, course)
	if err != nil {
		return fmt.Errorf("remove record %s/%s: %w", date, course, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove record %s/%s: %w", date, course, err)
	}
	if affected == 0 {
		return fmt.Errorf("remove record %s/%s: %w", date, course, core.ErrNoSuchRecord)
	}

	slog.InfoContext(ctx, "Study record removed", "date", date, "course", course)
	return nil
}

// TotalHours sums duration over the whole donelist. SQLite coerces the TEXT
// durations to numbers at SUM time; on an empty table the sum is NULL and
// Hours comes back invalid.
func (s *Store) TotalHours(ctx context.Context) (Total, error) {
	total := Total{Label: TotalLabel}
	err := s.db.QueryRowContext(ctx,
		"SELECT SUM(duration) FROM donelist").Scan(&total.Hours)
	if err != nil {
		return Total{}, fmt.Errorf("total hours: %w", err)
	}
	return total, nil
}

// TotalHoursByCourse sums duration per course, ordered by course name.
// Courses without records do not appear.
func (s *Store) TotalHoursByCourse(ctx context.Context) ([]CourseHours, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT course.name, SUM(donelist.duration)
		 FROM donelist
		 INNER JOIN course ON course.name = donelist.course
		 GROUP BY course.name
		 ORDER BY course.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("total hours by course: %w", err)
	}
	defer rows.Close()

	var totals []CourseHours
	for rows.Next() {
		var ch CourseHours
		if err := rows.Scan(&ch.Course, &ch.Hours); err != nil {
			return nil, fmt.Errorf("scan course total: %w", err)
		}
		totals = append(totals, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("total hours by course: %w", err)
	}
	return totals, nil
}

// TotalHoursByWeek buckets records by day of week (strftime '%w': 0=Sunday)
// and sums duration per bucket, ordered by weekday code. A non-empty course
// restricts the records before bucketing.
func (s *Store) TotalHoursByWeek(ctx context.Context, course string) ([]core.BucketHours, error) {
	return s.bucketTotals(ctx, "%w", course)
}

// TotalHoursByMonth is TotalHoursByWeek with the two-digit month ('01'-'12')
// as the bucket key.
func (s *Store) TotalHoursByMonth(ctx context.Context, course string) ([]core.BucketHours, error) {
	return s.bucketTotals(ctx, "%m", course)
}

func (s *Store) bucketTotals(ctx context.Context, format, course string) ([]core.BucketHours, error) {
	head := `SELECT strftime('` + format + `', donelist.date) AS bucket, SUM(donelist.duration)
		 FROM donelist
		 INNER JOIN course ON course.name = donelist.course`
	tail := ` GROUP BY bucket
		 ORDER BY bucket ASC`

	var (
		rows *sql.Rows
		err  error
	)
	if course == "" {
		rows, err = s.db.QueryContext(ctx, head+tail)
	} else {
		rows, err = s.db.QueryContext(ctx, head+` WHERE donelist.course = ?`+tail, course)
	}
	if err != nil {
		return nil, fmt.Errorf("bucket totals: %w", err)
	}
	defer rows.Close()

	var totals []core.BucketHours
	for rows.Next() {
		var b core.BucketHours
		if err := rows.Scan(&b.Bucket, &b.Hours); err != nil {
			return nil, fmt.Errorf("scan bucket total: %w", err)
		}
		totals = append(totals, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("bucket totals: %w", err)
	}
	return totals, nil
}

func (s *Store) courseExists(ctx context.Context, name string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM course WHERE name = ?", name).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
