// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// SetFromDefaultTags sets the values of fields in the given struct pointer
// based on `default:` struct field tags, for fields that still have their
// zero value. It recurses into embedded and nested struct fields.
func SetFromDefaultTags(obj any) error {
	if AnyIsNil(obj) {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: object must be a pointer to a struct, not %T", obj)
	}
	return setFromDefaultTags(ov.Elem())
}

func setFromDefaultTags(sv reflect.Value) error {
	typ := sv.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := sv.Field(i)
		if fv.Kind() == reflect.Struct && f.Type != reflect.TypeFor[time.Time]() {
			if err := setFromDefaultTags(fv); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok || !fv.IsZero() {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", f.Name, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("reflectx.SetFromDefaultTags: %v", errs)
	}
	return nil
}

// SetFromString sets the given settable value from its string representation.
// Slices of basic kinds are parsed from comma-separated lists.
func SetFromString(v reflect.Value, str string) error {
	if !v.CanSet() {
		return fmt.Errorf("value of type %v cannot be set", v.Type())
	}
	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(str)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	vk := v.Kind()
	switch {
	case vk == reflect.String:
		v.SetString(str)
	case vk == reflect.Bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case vk >= reflect.Int && vk <= reflect.Int64:
		n, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case vk >= reflect.Uint && vk <= reflect.Uintptr:
		n, err := strconv.ParseUint(str, 0, 64)
		if err != nil {
			return err
		}
		v.SetUint(n)
	case vk == reflect.Float32 || vk == reflect.Float64:
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case vk == reflect.Slice:
		parts := strings.Split(str, ",")
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := SetFromString(sl.Index(i), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("unsupported kind %v", vk)
	}
	return nil
}
