package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// CoerceFloat converts an editor-supplied value to a float64. Anything that is
// not a finite number, or a string holding one, becomes zero.
func CoerceFloat(value interface{}) float64 {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// CoerceInt converts an editor-supplied value to an int, truncating any
// fractional part. Non-numeric input becomes zero.
func CoerceInt(value interface{}) int {
	f := CoerceFloat(value)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

// CoerceHook is a mapstructure decode hook that applies CoerceFloat and
// CoerceInt to numeric fields and renders numbers and booleans bound for
// string fields as text. Other targets are passed through unchanged.
func CoerceHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Float32, reflect.Float64:
		return CoerceFloat(data), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return CoerceInt(data), nil
	case reflect.String:
		switch v := data.(type) {
		case string:
			return v, nil
		case json.Number:
			return v.String(), nil
		case bool, float64, int:
			return fmt.Sprint(v), nil
		}
	}
	return data, nil
}

// DecodeHook returns CoerceHook in the form mapstructure and viper accept.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.DecodeHookFuncType(CoerceHook)
}
