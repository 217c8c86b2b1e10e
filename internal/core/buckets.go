// Package core holds the domain types for study-time bookkeeping: courses,
// study records and the bucket vocabulary used by the aggregate reports.
package core

// Weekday codes follow SQLite's strftime('%w'): 0 is Sunday, 6 is Saturday.
// Month codes are the zero-padded strftime('%m') output.
var bucketNames = map[string]string{
	"0": "Sun",
	"1": "Mon",
	"2": "Tue",
	"3": "Wed",
	"4": "Thu",
	"5": "Fri",
	"6": "Sat",

	"01": "Jan",
	"02": "Feb",
	"03": "Mar",
	"04": "Apr",
	"05": "May",
	"06": "Jun",
	"07": "Jul",
	"08": "Aug",
	"09": "Sep",
	"10": "Oct",
	"11": "Nov",
	"12": "Dec",
}

// NameBuckets replaces weekday and month codes with their three-letter
// names, preserving input order. Entries with an unrecognized code are
// dropped. Dates are validated at insertion so every code coming out of the
// store is expected to be in the table; callers that feed this function
// hand-built buckets must account for the drop.
func NameBuckets(buckets []BucketHours) []BucketHours {
	named := make([]BucketHours, 0, len(buckets))
	for _, b := range buckets {
		name, ok := bucketNames[b.Bucket]
		if !ok {
			continue
		}
		named = append(named, BucketHours{Bucket: name, Hours: b.Hours})
	}
	return named
}
