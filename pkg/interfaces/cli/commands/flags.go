package commands

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

// enumValue is a pflag.Value restricted to a fixed set of names. Rejecting
// bad values at parse time keeps config validation errors out of RunE.
type enumValue struct {
	target  *string
	allowed []string
}

func newEnumValue(target *string, allowed ...string) pflag.Value {
	return &enumValue{target: target, allowed: allowed}
}

func (e *enumValue) Set(s string) error {
	for _, a := range e.allowed {
		if s == a {
			*e.target = s
			return nil
		}
	}
	return errors.Newf("must be one of %s", strings.Join(e.allowed, ", "))
}

func (e *enumValue) String() string { return *e.target }

func (e *enumValue) Type() string { return "string" }
