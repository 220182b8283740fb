// Package transition validates proposed changes to a
// single lifecycle field (for example a record's status) against a declared
// table of allowed transitions, and dispatches user callbacks on the outcome.
//
// The package is built from two pieces:
//  1. Table – compiled once from a list of Rule values; maps every source
//     state to the set of destinations it may move to, and keeps the
//     callbacks declared on each rule.
//  2. Validator – binds a Table to a field name and judges (from, to) pairs
//     supplied by the caller, recording a field error on the caller's
//     ValidationContext when the change is not allowed.
//
// State is wholly external: the caller reads the current and proposed values
// from its own record and passes them in on every call. Neither type owns a
// "current state", so one Table and one Validator serve every record of a
// type concurrently.
//
// # Usage
//
//	const (
//	    Draft     = transition.StringState("draft")
//	    Review    = transition.StringState("review")
//	    Published = transition.StringState("published")
//	)
//
//	table := transition.MustBuild(
//	    transition.NewRule(Draft, []transition.State{Review},
//	        transition.OnSuccess(Review, notifyReviewers),
//	        transition.OnError(alert),
//	    ),
//	    transition.NewRule(Review, []transition.State{Draft, Published}),
//	)
//
//	status := transition.MustNewValidator("status", table)
//	if err := status.Validate(ctx, Draft, Published, cs); err != nil {
//	    // a callback failed
//	}
//	// cs now carries "Invalid update for status. Wanted to transition
//	// from draft to published for the field status."
//
// # Callbacks
//
// Callbacks are registered per rule under a name. Names are normalized with
// CallbackKey (lower-cased, trailing "_callback" removed) and destinations
// are matched by DestinationKey (lower-cased only), so a destination
// "Review" selects a callback registered as "review_callback" while a
// destination "review_callback" does not. Rejected
// transitions select the callback registered under ErrorCallbackKey. A call
// runs at most one callback, and a missing callback is not an error.
//
// # Error Handling
//
// Rejected transitions are data: one validator.ValidationError is added to
// the ValidationContext with TranslationKey "transition.invalid". Errors
// returned from Validate are reserved for callback failures, which arrive
// wrapped in *CallbackError (see IsCallbackError). Build reports a source
// state declared twice as *DuplicateSourceError.
package transition
