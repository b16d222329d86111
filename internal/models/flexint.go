package models

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
)

// FlexInt is an integer that also accepts its decimal string form, so both
// {"servings": 4} and {"servings": "4"} decode to 4.
type FlexInt int

// ParseFlexInt coerces a form value.
func ParseFlexInt(s string) (FlexInt, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &json.UnmarshalTypeError{Value: "string " + strconv.Quote(s), Type: reflect.TypeOf(0)}
	}
	return FlexInt(n), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := ParseFlexInt(s)
		if err != nil {
			return err
		}
		*f = n
		return nil
	}

	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return &json.UnmarshalTypeError{Value: "value " + string(b), Type: reflect.TypeOf(0)}
	}
	*f = FlexInt(n)
	return nil
}

// IntPtr converts an optional FlexInt into an optional int.
func (f *FlexInt) IntPtr() *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}
