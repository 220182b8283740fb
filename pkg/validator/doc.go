// Package validator carries the field-level error model shared by the
// transition guard and the changeset: ValidationError describes one failure
// together with a translation key and values, ValidationErrors collects them
// and satisfies the error interface.
//
// Small declarative checks are expressed as Rule values (a Check func plus the
// error to report) and evaluated with Apply:
//
//	err := validator.Apply(
//	    validator.Required("status", ok),
//	    validator.InList("status", status, []string{"draft", "published"}),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Get("status")
//	}
//
// The package holds no state and is safe for concurrent use.
package validator
