package model

import (
	"reflect"
	"testing"
)

func TestIntSetAdd(t *testing.T) {
	tests := []struct {
		name string
		set  IntSet
		n    int
		want IntSet
	}{
		{"empty set", IntSet{}, 2, IntSet{2}},
		{"appends and sorts", IntSet{3, 1}, 2, IntSet{1, 2, 3}},
		{"duplicate is a no-op", IntSet{0, 1}, 1, IntSet{0, 1}},
		{"nil set", nil, 0, IntSet{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.set.Add(tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Add(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestIntSetAddDoesNotMutateReceiver(t *testing.T) {
	original := IntSet{0, 1}
	_ = original.Add(5)
	if !reflect.DeepEqual(original, IntSet{0, 1}) {
		t.Errorf("receiver mutated: %v", original)
	}
}

func TestIntSetContains(t *testing.T) {
	s := IntSet{0, 2, 4}
	if !s.Contains(2) {
		t.Error("expected Contains(2) to be true")
	}
	if s.Contains(3) {
		t.Error("expected Contains(3) to be false")
	}
	if (IntSet)(nil).Contains(0) {
		t.Error("nil set should contain nothing")
	}
}

func TestIntSetScanValueRoundTrip(t *testing.T) {
	original := IntSet{1, 3, 5}
	raw, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var decoded IntSet
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("round trip = %v, want %v", decoded, original)
	}
}

func TestIntSetScanNil(t *testing.T) {
	var s IntSet
	if err := s.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if s == nil || len(s) != 0 {
		t.Errorf("Scan(nil) = %v, want empty set", s)
	}
}

func TestStringListScanString(t *testing.T) {
	var l StringList
	if err := l.Scan(`["variables","loops"]`); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if !reflect.DeepEqual(l, StringList{"variables", "loops"}) {
		t.Errorf("got %v", l)
	}
}

func TestStringListScanRejectsUnknownType(t *testing.T) {
	var l StringList
	if err := l.Scan(42); err == nil {
		t.Error("expected error scanning an int")
	}
}

func TestMinuteMapTotal(t *testing.T) {
	tests := []struct {
		name string
		m    MinuteMap
		want float64
	}{
		{"nil map", nil, 0},
		{"single key", MinuteMap{"quiz": 12.5}, 12.5},
		{"mixed keys", MinuteMap{"quiz": 10, "0": 20, "1": 5.5}, 35.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Total(); got != tt.want {
				t.Errorf("Total() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMinuteMapScanValueRoundTrip(t *testing.T) {
	original := MinuteMap{"quiz": 7, "2": 30}
	raw, err := original.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}

	var decoded MinuteMap
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("round trip = %v, want %v", decoded, original)
	}
}
