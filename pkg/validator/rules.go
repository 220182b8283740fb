package validator

import (
	"fmt"
)

// Required fails when present is false.
func Required(field string, present bool) Rule {
	return Rule{
		Check: func() bool { return present },
		Error: NewError(field, "is required", "validation.required", "field", field),
	}
}

// InList fails when value is not one of allowedValues.
func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if value == allowed {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}
