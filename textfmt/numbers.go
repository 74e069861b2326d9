// SPDX-License-Identifier: MIT

package textfmt

import (
	"reflect"
	"strconv"

	"github.com/katalvlaran/lookuptable/lut"
)

// formatNumber renders v in its default decimal text form: base-10 integers,
// and the shortest float representation that parses back to the same value
// at the element's bit size.
func formatNumber[N lut.Number](v N) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	}
}

// parseNumber parses s as an N, honouring N's bit size.
// Out-of-range values are errors, never silently truncated.
func parseNumber[N lut.Number](s string) (N, error) {
	var v N
	rv := reflect.ValueOf(&v).Elem()
	bits := rv.Type().Bits()

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return v, err
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return v, err
		}
		rv.SetUint(u)
	default:
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)
	}

	return v, nil
}
