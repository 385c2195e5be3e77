package binder

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// BindValues binds submitted form values to a tagged struct.
//
// Struct tags control the mapping:
//   - `form:"name"` binds to the field "name"
//   - `form:"-"` skips the field
//   - `form:"name,omitempty"` is treated the same as `form:"name"`
//   - untagged fields bind by lowercased Go field name
//
// Supported types are string, the int/uint/float families, bool, slices of
// those, and pointers for optional fields. Bool parsing is lenient towards
// HTML checkbox submissions ("on", "yes", "off", "no").
//
//	type SignupRequest struct {
//		Email    string   `form:"email"`
//		Age      int      `form:"age"`
//		Terms    bool     `form:"terms"`    // checkbox
//		Colors   []string `form:"colors"`   // checkbox group
//		Referrer *string  `form:"ref"`      // optional
//		Internal string   `form:"-"`        // skipped
//	}
//
//	var req SignupRequest
//	if err := binder.BindValues(r.PostForm, &req); err != nil { ... }
func BindValues(values url.Values, v any) error {
	return bindToStruct(v, "form", values, ErrInvalidForm)
}

// bindToStruct binds string values to a struct using reflection. tagName
// selects the struct tag, bindErr is the sentinel wrapped into failures.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidTarget)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidTarget)
	}

	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}

		fieldValues, exists := values[name]
		if !exists || len(fieldValues) == 0 {
			// Absent fields keep their zero value; unchecked checkboxes
			// and empty optional inputs land here.
			continue
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, fieldType.Name, err)
		}
	}

	return nil
}

// parseFieldTag resolves the bound name for a struct field.
func parseFieldTag(field reflect.StructField, tagName string) (name string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	// Strip tag options such as ",omitempty".
	name, _, _ = strings.Cut(tag, ",")
	return name, false
}

// setFieldValue assigns string values to a single struct field.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if fieldType.Kind() == reflect.Ptr {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values)
	}

	if len(values) == 0 {
		return nil
	}
	value := values[0]

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := parseLenientBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

// parseLenientBool accepts strconv booleans plus the values HTML forms
// actually submit for checkboxes.
func parseLenientBool(value string) (bool, error) {
	if b, err := strconv.ParseBool(value); err == nil {
		return b, nil
	}
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool value %q", value)
	}
}

// setSliceValue assigns multi-value submissions to a slice field, also
// splitting comma-separated single values.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	elemType := fieldType.Elem()

	var allValues []string
	for _, v := range values {
		if strings.Contains(v, ",") {
			allValues = append(allValues, strings.Split(v, ",")...)
		} else {
			allValues = append(allValues, v)
		}
	}

	slice := reflect.MakeSlice(fieldType, len(allValues), len(allValues))
	for i, value := range allValues {
		if err := setFieldValue(slice.Index(i), elemType, []string{strings.TrimSpace(value)}); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}
