package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"geekhours/internal/cli"
	"geekhours/internal/core"
	"geekhours/internal/export"
	"geekhours/internal/report"
	"geekhours/internal/storage"
)

const usage = `Usage: geekhours <command> [arguments]

Commands:
  course add NAME...             register one or more courses
  course rm NAME                 remove a course
  course list                    list registered courses
  done add DATE COURSE DURATION  record a study session (DATE is YYYY-MM-DD)
  done rm DATE COURSE            remove a study session
  done list                      list study sessions
  report [total|course|week|month] [-course NAME]
                                 print an aggregate report as JSON
  export (course|donelist|report) -out PATH [-format csv|json]
                                 write a relation or the full report to a file
`

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	store := cli.InitStore(logger, cfg.DBPath)
	defer store.Close()

	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "course":
		err = runCourse(ctx, store, os.Args[2:])
	case "done":
		err = runDone(ctx, store, os.Args[2:])
	case "report":
		err = runReport(ctx, store, os.Args[2:])
	case "export":
		err = runExport(ctx, store, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logger.Error("Command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func runCourse(ctx context.Context, store *storage.Store, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("course: missing subcommand")
	}
	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("course add: at least one name required")
		}
		return store.AddCourses(ctx, args[1:])
	case "rm":
		if len(args) != 2 {
			return fmt.Errorf("course rm: exactly one name required")
		}
		return store.RemoveCourse(ctx, args[1])
	case "list":
		courses, err := store.ListCourses(ctx)
		if err != nil {
			return err
		}
		for _, c := range courses {
			fmt.Println(c.Name)
		}
		return nil
	}
	return fmt.Errorf("course: unknown subcommand %q", args[0])
}

func runDone(ctx context.Context, store *storage.Store, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("done: missing subcommand")
	}
	switch args[0] {
	case "add":
		if len(args) != 4 {
			return fmt.Errorf("done add: DATE COURSE DURATION required")
		}
		return store.AddRecord(ctx, args[1], args[2], args[3])
	case "rm":
		if len(args) != 3 {
			return fmt.Errorf("done rm: DATE COURSE required")
		}
		return store.RemoveRecord(ctx, args[1], args[2])
	case "list":
		records, err := store.ListRecords(ctx)
		if err != nil {
			return err
		}
		for _, r := range records {
			fmt.Printf("%s  %s  %s\n", r.Date, r.Course, r.Duration)
		}
		return nil
	}
	return fmt.Errorf("done: unknown subcommand %q", args[0])
}

func runReport(ctx context.Context, store *storage.Store, args []string) error {
	dimension := "total"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		dimension = args[0]
		args = args[1:]
	}

	fs := flag.NewFlagSet("report", flag.ExitOnError)
	course := fs.String("course", "", "restrict week/month reports to one course")
	if err := fs.Parse(args); err != nil {
		return err
	}

	assembler := report.NewAssembler(store)

	var (
		rep report.Report
		err error
	)
	switch dimension {
	case "total":
		rep, err = assembler.TotalHours(ctx)
	case "course":
		rep, err = assembler.TotalHoursPerCourse(ctx)
	case "week":
		rep, err = assembler.TotalHoursPerWeek(ctx, *course)
	case "month":
		rep, err = assembler.TotalHoursPerMonth(ctx, *course)
	default:
		return fmt.Errorf("report: unknown dimension %q", dimension)
	}
	if err != nil {
		return err
	}

	return json.NewEncoder(os.Stdout).Encode(rep)
}

func runExport(ctx context.Context, store *storage.Store, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("export: target required (course, donelist or report)")
	}
	target := args[0]

	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "csv", "output format: csv or json")
	out := fs.String("out", "", "output file path")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *out == "" {
		return fmt.Errorf("export: -out is required")
	}

	if target == "report" {
		rep, err := report.NewAssembler(store).TotalHours(ctx)
		if err != nil {
			return err
		}
		return export.JSON(rep, *out)
	}

	if err := core.ValidateRelation(target); err != nil {
		return fmt.Errorf("export %q: %w", target, err)
	}

	rows, err := store.List(ctx, target)
	if err != nil {
		return err
	}

	switch *format {
	case "csv":
		fields, err := store.Columns(ctx, target)
		if err != nil {
			return err
		}
		return export.CSV(rows, *out, fields)
	case "json":
		return export.JSON(rows, *out)
	}
	return fmt.Errorf("export: unknown format %q", *format)
}
