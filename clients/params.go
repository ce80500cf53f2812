package clients

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Params is the parameter mapping of one request. Values may be scalars,
// pointers to scalars, string slices, or nested mappings. A nil value (or a
// nil pointer, slice, or map) marks the field as not provided.
type Params map[string]interface{}

// PickExisting returns a copy of params without the entries whose value is
// absent. Non-nil pointers are flattened to their pointed-to value, so
// applying PickExisting to an already-filtered mapping is a no-op.
func PickExisting(params Params) Params {
	picked := Params{}
	for key, value := range params {
		if value == nil {
			continue
		}
		v := reflect.ValueOf(value)
		switch v.Kind() {
		case reflect.Ptr:
			if v.IsNil() {
				continue
			}
			picked[key] = v.Elem().Interface()
		case reflect.Slice, reflect.Map:
			if v.IsNil() {
				continue
			}
			picked[key] = value
		default:
			picked[key] = value
		}
	}
	return picked
}

func queryValues(params Params) map[string]string {
	values := map[string]string{}
	for key, value := range params {
		values[key] = queryValue(value)
	}
	return values
}

func queryValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case []string:
		return strings.Join(v, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}
