// Package envtag overrides tagged struct fields from environment variables.
package envtag

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

const squash = ",squash"

// Unmarshal sets each field of s tagged with tagName from the environment
// variable prefix+tag (upper cased), if it is set and not empty.
// Supported field kinds are string, bool, int and []string (comma separated).
//
// s must be a pointer to a struct.
func Unmarshal(tagName string, prefix string, s interface{}) error {
	structVal := reflect.ValueOf(s)
	if structVal.Kind() != reflect.Ptr || structVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("envtag: expected a pointer to a struct, got %T", s)
	}
	structVal = structVal.Elem()
	typ := structVal.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" {
			continue
		}

		v := structVal.Field(i)
		if !v.CanSet() {
			continue
		}

		if tag == squash && v.Kind() == reflect.Struct {
			if err := Unmarshal(tagName, prefix, v.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		name := strings.ToUpper(prefix + tag)
		envVal := os.Getenv(name)
		if envVal == "" {
			continue
		}
		if err := set(v, envVal); err != nil {
			return fmt.Errorf("envtag: invalid value for %s: %w", name, err)
		}
	}
	return nil
}

func set(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(n))
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", v.Type())
		}
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		v.Set(reflect.ValueOf(parts).Convert(v.Type()))
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}
