// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types the arithmetic, comparison and math
// kernels operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Element is Number extended with bool, the set accepted by the logical
// kernels. A bool sequence doubles as a mask.
type Element interface {
	Number | ~bool
}

// Truth converts x to bool the way the logical operators see it:
// any non-zero number is true, zero is false.
func Truth[T Element](x T) bool {
	switch v := any(x).(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case uintptr:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	}
	// named types fall back to the zero comparison
	var zero T
	return x != zero
}

// FromBool returns 1 (true) or 0 (false) in T; for bool element types it
// returns b itself.
func FromBool[T Element](b bool) T {
	var r T
	if b {
		setOne(&r)
	}
	return r
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return 1
}

// IsFloat reports whether T is a floating point type.
func IsFloat[T Number]() bool {
	one := One[T]()
	return one/2 != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Number]() bool {
	var zero T
	one := One[T]()
	return zero-one < zero
}

func setOne[T Element](r *T) {
	switch p := any(r).(type) {
	case *bool:
		*p = true
	case *int:
		*p = 1
	case *int8:
		*p = 1
	case *int16:
		*p = 1
	case *int32:
		*p = 1
	case *int64:
		*p = 1
	case *uint:
		*p = 1
	case *uint8:
		*p = 1
	case *uint16:
		*p = 1
	case *uint32:
		*p = 1
	case *uint64:
		*p = 1
	case *uintptr:
		*p = 1
	case *float32:
		*p = 1
	case *float64:
		*p = 1
	default:
		// named element types
		v := reflect.ValueOf(r).Elem()
		switch v.Kind() {
		case reflect.Bool:
			v.SetBool(true)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v.SetInt(1)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			v.SetUint(1)
		case reflect.Float32, reflect.Float64:
			v.SetFloat(1)
		}
	}
}
