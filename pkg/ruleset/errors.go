package ruleset

import "errors"

var (
	ErrMalformedRules     = errors.New("failed to parse transition rules")
	ErrMissingField       = errors.New("transition rules must name the governed field")
	ErrUnknownCallback    = errors.New("unknown callback")
	ErrUnknownDestination = errors.New("on_success names a state missing from to")
	ErrDuplicateCallback  = errors.New("callback already registered")
	ErrEmptyCallbackName  = errors.New("callback name cannot be empty")
	ErrFailedToReadFile   = errors.New("failed to read transition rules file")
)
