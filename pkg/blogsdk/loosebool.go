package blogsdk

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrNotBoolean is returned when a LooseBool field holds something that
// cannot be read as true or false.
var ErrNotBoolean = errors.New("blogsdk: value is not a boolean")

// LooseBool accepts true/false, numbers (non-zero is true) and strings
// understood by strconv.ParseBool. Older clients send "published" in all of
// these shapes.
type LooseBool bool

// Bool returns a pointer to v as a LooseBool.
func Bool(v bool) *LooseBool {
	b := LooseBool(v)
	return &b
}

func (b *LooseBool) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case bool:
		*b = LooseBool(t)
	case float64:
		*b = t != 0
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return ErrNotBoolean
		}
		*b = LooseBool(parsed)
	default:
		return ErrNotBoolean
	}
	return nil
}

// Ptr converts an optional LooseBool into an optional bool.
func (b *LooseBool) Ptr() *bool {
	if b == nil {
		return nil
	}
	v := bool(*b)
	return &v
}
