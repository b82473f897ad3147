package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// StringList is stored as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// IntSet is a deduplicated set of topic indices, stored as a sorted JSON array.
type IntSet []int

func (s IntSet) Value() (driver.Value, error) {
	if s == nil {
		s = IntSet{}
	}
	return json.Marshal(s)
}

func (s *IntSet) Scan(value interface{}) error {
	if value == nil {
		*s = IntSet{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into IntSet", value)
	}
}

// Add returns the set with n included, keeping elements unique and sorted.
func (s IntSet) Add(n int) IntSet {
	for _, v := range s {
		if v == n {
			return s
		}
	}
	out := append(IntSet{}, s...)
	out = append(out, n)
	sort.Ints(out)
	return out
}

func (s IntSet) Contains(n int) bool {
	for _, v := range s {
		if v == n {
			return true
		}
	}
	return false
}

// MinuteMap maps an activity key ("quiz" or a stringified topic index)
// to accumulated minutes. Stored as a JSON object column.
type MinuteMap map[string]float64

func (m MinuteMap) Value() (driver.Value, error) {
	if m == nil {
		m = MinuteMap{}
	}
	return json.Marshal(m)
}

func (m *MinuteMap) Scan(value interface{}) error {
	if value == nil {
		*m = MinuteMap{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into MinuteMap", value)
	}
}

// Total sums minutes across all keys.
func (m MinuteMap) Total() float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}
