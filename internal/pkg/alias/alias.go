// Package alias resolves logical fields from loosely shaped records whose
// key names drift between backend versions (snake_case, camelCase, Indonesian).
package alias

// Record is a decoded JSON object.
type Record = map[string]any

// Accessor extracts one candidate value from a record. A nil result means
// the candidate is absent.
type Accessor func(Record) any

// Key looks up a single top-level key.
func Key(name string) Accessor {
	return func(r Record) any {
		if r == nil {
			return nil
		}
		return r[name]
	}
}

// Path walks nested objects, e.g. Path("verified", "present").
// Keys are never split on dots; every step is explicit.
func Path(keys ...string) Accessor {
	return func(r Record) any {
		var current any = r
		for _, k := range keys {
			obj := AsRecord(current)
			if obj == nil {
				return nil
			}
			current = obj[k]
		}
		return current
	}
}

// Scalar drops object and array results, so a nested object under a key
// that usually holds a number does not shadow later candidates.
func Scalar(get Accessor) Accessor {
	return func(r Record) any {
		switch v := get(r).(type) {
		case map[string]any, []any:
			return nil
		default:
			return v
		}
	}
}

// Keys builds one Key accessor per name, preserving order.
func Keys(names ...string) Aliases {
	out := make(Aliases, 0, len(names))
	for _, n := range names {
		out = append(out, Key(n))
	}
	return out
}

// Aliases is an ordered list of accessors for one logical field.
type Aliases []Accessor

// Resolve returns the first non-nil candidate, or nil.
func (a Aliases) Resolve(r Record) any {
	for _, get := range a {
		if v := get(r); v != nil {
			return v
		}
	}
	return nil
}

// Then appends more candidates, returning a new list.
func (a Aliases) Then(more ...Accessor) Aliases {
	out := make(Aliases, 0, len(a)+len(more))
	out = append(out, a...)
	return append(out, more...)
}

// Under prefixes every candidate with a nested object lookup, so
// Keys("name").Under("raw") checks raw.name.
func (a Aliases) Under(key string) Aliases {
	out := make(Aliases, 0, len(a))
	for _, get := range a {
		out = append(out, func(r Record) any {
			return get(AsRecord(Key(key)(r)))
		})
	}
	return out
}

// AsRecord returns v as an object, or nil when v is not one.
func AsRecord(v any) Record {
	switch obj := v.(type) {
	case map[string]any:
		return obj
	default:
		return nil
	}
}

// FirstRecord returns the first candidate that resolves to an object.
func FirstRecord(r Record, candidates ...Accessor) Record {
	for _, get := range candidates {
		if obj := AsRecord(get(r)); obj != nil {
			return obj
		}
	}
	return nil
}
