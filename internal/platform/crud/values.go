// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

package crud

// Values is an ordered set of field/value pairs destined for an INSERT or a
// partial UPDATE. Only fields explicitly Set are written; everything else is
// left untouched, giving PATCH rather than full-replace semantics.
type Values struct {
	names []string
	args  []any
}

// Set records a field to write. Calling Set twice for the same name writes
// the field twice; callers build each Values from a decoded request exactly
// once, so duplicates do not arise in practice.
func (v *Values) Set(name string, value any) *Values {
	v.names = append(v.names, name)
	v.args = append(v.args, value)
	return v
}

// SetIf records the field only when present is true. It keeps partial-update
// call sites flat: one line per optional request field.
func (v *Values) SetIf(present bool, name string, value any) *Values {
	if present {
		v.Set(name, value)
	}
	return v
}

// Len reports how many fields have been recorded.
func (v *Values) Len() int {
	return len(v.names)
}
