package sld

import "github.com/hashicorp/go-hclog"

// options collects the Driver construction knobs. It stays unexported —
// callers only ever see the functional Option type, the same shape the
// teacher uses for solver configuration.
type options struct {
	logger      hclog.Logger
	occursCheck bool
}

func defaultOptions() options {
	return options{
		logger:      hclog.NewNullLogger(),
		occursCheck: false,
	}
}

// Option configures a Driver at construction time.
type Option func(*options)

// WithLogger attaches a structured logger the Driver uses to trace
// resolution attempts at Trace level. A failed resolution attempt is also
// logged at Trace: it is the dominant, silent control path of
// backtracking search and should not read as an error (spec §7). A goal
// running out of candidates is not logged.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithOccursCheck enables an occurs-check in BindMap.Unify, rejecting a
// binding that would make a variable's own expansion refer back to
// itself. The source this core is modeled on omits this check (spec §9);
// the default preserves that omission. Enabling it trades the source's
// behavior (and the possibility of a non-terminating Normalize over a
// cyclic binding) for rejecting such unifications outright.
func WithOccursCheck(enabled bool) Option {
	return func(o *options) {
		o.occursCheck = enabled
	}
}
