// Package ruleset loads transition rules from YAML documents.
//
// A document names the governed field and lists one entry per source state:
//
//	field: status
//	transitions:
//	  - from: draft
//	    to: [review]
//	    on_success:
//	      review: notify_reviewers
//	    on_error: alert
//	  - from: review
//	    to: [draft, published]
//
// Each on_success key must name a destination listed in to; keys are matched
// like transition.CallbackKey, so "review" and "review_callback" both address
// the destination review. Two keys addressing the same destination, or an
// on_success key colliding with on_error, fail with transition.ErrInvalidRule.
//
// Callback names are resolved against a Registry filled by the application.
// The returned Definition builds the transition.Table and transition.Validator.
package ruleset
