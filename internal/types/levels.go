package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// NotConcerned is the sentinel for a role/level cell where the skill does
// not apply. It is distinct from level 0.
const NotConcerned = "NC"

// LevelValue is an expected proficiency level: an integer or NC.
type LevelValue struct {
	level        int
	notConcerned bool
}

// Level returns an integer LevelValue.
func Level(n int) LevelValue {
	return LevelValue{level: n}
}

// NC returns the not-concerned LevelValue.
func NC() LevelValue {
	return LevelValue{notConcerned: true}
}

// ParseLevelValue converts a decoded YAML scalar into a LevelValue.
// Only integers and the exact string "NC" are accepted.
func ParseLevelValue(v any) (LevelValue, error) {
	switch x := v.(type) {
	case LevelValue:
		return x, nil
	case int:
		return Level(x), nil
	case int64:
		return Level(int(x)), nil
	case uint64:
		return Level(int(x)), nil
	case float64:
		if x != float64(int(x)) {
			return LevelValue{}, fmt.Errorf("level %v is not an integer", x)
		}
		return Level(int(x)), nil
	case string:
		if x == NotConcerned {
			return NC(), nil
		}
		return LevelValue{}, fmt.Errorf("invalid level %q (expected integer or %q)", x, NotConcerned)
	default:
		return LevelValue{}, fmt.Errorf("invalid level %v (expected integer or %q)", v, NotConcerned)
	}
}

// IsNC reports whether the value is the not-concerned sentinel.
func (v LevelValue) IsNC() bool {
	return v.notConcerned
}

// Int returns the integer level and false for NC.
func (v LevelValue) Int() (int, bool) {
	if v.notConcerned {
		return 0, false
	}
	return v.level, true
}

// String renders the value as it appears in the workbook: "NC" or the digit.
func (v LevelValue) String() string {
	if v.notConcerned {
		return NotConcerned
	}
	return strconv.Itoa(v.level)
}

// MarshalJSON encodes NC as a string and levels as numbers.
func (v LevelValue) MarshalJSON() ([]byte, error) {
	if v.notConcerned {
		return json.Marshal(NotConcerned)
	}
	return json.Marshal(v.level)
}

// LevelTuple holds the expected levels for [junior, confirmed, senior, expert].
type LevelTuple [4]LevelValue

// Indexes into LevelTuple.
const (
	Junior = iota
	Confirmed
	Senior
	Expert
)

// AllNC is used for a role a skill has no levels for.
func AllNC() LevelTuple {
	return LevelTuple{NC(), NC(), NC(), NC()}
}

// ParseLevelTuple converts a decoded YAML sequence into a LevelTuple.
func ParseLevelTuple(v any) (LevelTuple, error) {
	if t, ok := v.(LevelTuple); ok {
		return t, nil
	}
	items, ok := v.([]any)
	if !ok {
		return LevelTuple{}, fmt.Errorf("levels must be a list of 4 values, got %T", v)
	}
	if len(items) != len(LevelTuple{}) {
		return LevelTuple{}, fmt.Errorf("levels must have exactly 4 values (Jr/Cf/Sr/Ex), got %d", len(items))
	}
	var t LevelTuple
	for i, item := range items {
		lv, err := ParseLevelValue(item)
		if err != nil {
			return LevelTuple{}, err
		}
		t[i] = lv
	}
	return t, nil
}
