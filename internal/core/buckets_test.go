package core

import (
	"reflect"
	"testing"
)

func TestNameBuckets(t *testing.T) {
	in := []BucketHours{
		{"01", 1},
		{"02", 2},
		{"12", 12},
		{"0", 1},
		{"1", 10},
		{"6", 60},
	}
	want := []BucketHours{
		{"Jan", 1},
		{"Feb", 2},
		{"Dec", 12},
		{"Sun", 1},
		{"Mon", 10},
		{"Sat", 60},
	}
	if got := NameBuckets(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNameBucketsDropsUnrecognized(t *testing.T) {
	in := []BucketHours{
		{"0", 1},
		{"1", 10},
		{"99", 5},
	}
	want := []BucketHours{
		{"Sun", 1},
		{"Mon", 10},
	}
	if got := NameBuckets(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNameBucketsPreservesOrder(t *testing.T) {
	// Month codes before weekday codes, deliberately unsorted.
	in := []BucketHours{
		{"11", 5},
		{"4", 5},
		{"01", 2},
	}
	want := []BucketHours{
		{"Nov", 5},
		{"Thu", 5},
		{"Jan", 2},
	}
	if got := NameBuckets(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNameBucketsEmpty(t *testing.T) {
	if got := NameBuckets(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
