//nolint:revive // types is a standard Go package name pattern
package types

// Issue represents a single constraint violation, scoped to the field the
// user must correct. Issues are advisory: they are collected, never raised
// as errors, so the caller always sees the complete list.
type Issue struct {
	Field   Field  `json:"field"`
	Message string `json:"message"`
}

// Issues is an ordered collection of constraint violations.
type Issues []Issue

// Has reports whether any issue targets the given field.
func (is Issues) Has(field Field) bool {
	for _, i := range is {
		if i.Field == field {
			return true
		}
	}
	return false
}

// ForField returns the issues targeting the given field, preserving order.
func (is Issues) ForField(field Field) Issues {
	var out Issues
	for _, i := range is {
		if i.Field == field {
			out = append(out, i)
		}
	}
	return out
}

// Fields returns the distinct fields with at least one issue, in first-seen
// order.
func (is Issues) Fields() []Field {
	seen := make(map[Field]bool, len(is))
	var out []Field
	for _, i := range is {
		if !seen[i.Field] {
			seen[i.Field] = true
			out = append(out, i.Field)
		}
	}
	return out
}
