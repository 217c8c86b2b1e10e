package core

import (
	"errors"
	"testing"
)

func TestValidateRelation(t *testing.T) {
	cases := []struct {
		relation string
		ok       bool
	}{
		{"course", true},
		{"donelist", true},
		{"", false},
		{"Course", false},
		{"students", false},
	}
	for _, tc := range cases {
		err := ValidateRelation(tc.relation)
		if tc.ok && err != nil {
			t.Fatalf("%q: unexpected error %v", tc.relation, err)
		}
		if !tc.ok && !errors.Is(err, ErrUnknownRelation) {
			t.Fatalf("%q: expected ErrUnknownRelation, got %v", tc.relation, err)
		}
	}
}

func TestValidateDate(t *testing.T) {
	cases := []struct {
		date string
		ok   bool
	}{
		{"2018-11-01", true},
		{"2019-06-08", true},
		{"2020-02-29", true}, // leap day
		{"2019-02-29", false},
		{"2018-13-01", false},
		{"2018-11-1", false},
		{"20181101", false},
		{"00000000", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, tc := range cases {
		err := ValidateDate(tc.date)
		if tc.ok && err != nil {
			t.Fatalf("%q: unexpected error %v", tc.date, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("%q: expected ErrInvalidDate, got %v", tc.date, err)
		}
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"5", 5, true},
		{"0", 0, true},
		{"2.5", 2.5, true},
		{" 3 ", 3, true},
		{"-1", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"1h30m", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDuration(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q: expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if !errors.Is(err, ErrInvalidDuration) {
				t.Fatalf("%q: expected ErrInvalidDuration, got %v", tc.in, err)
			}
		}
	}
}

func TestStudyRecordValidate(t *testing.T) {
	cases := []struct {
		name    string
		record  StudyRecord
		wantErr error
	}{
		{
			name:   "valid record",
			record: StudyRecord{Date: "2018-11-01", Course: "python", Duration: "5"},
		},
		{
			name:    "bad date",
			record:  StudyRecord{Date: "2018/11/01", Course: "python", Duration: "5"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "empty course",
			record:  StudyRecord{Date: "2018-11-01", Course: "  ", Duration: "5"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "bad duration",
			record:  StudyRecord{Date: "2018-11-01", Course: "python", Duration: "five"},
			wantErr: ErrInvalidDuration,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.record.Validate()
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}
