package entities

// Policy is a configuration override that is either a constant value or a
// single-argument function of the current version. Function policies are
// invoked lazily, exactly once per resolution.
type Policy struct {
	value    string
	function func(string) string
}

// FixedPolicy returns a policy that always resolves to the given value.
func FixedPolicy(value string) Policy {
	return Policy{value: value} //nolint:exhaustruct // constant flavor only
}

// PolicyFunc returns a policy computed from the current version at the
// point of use.
func PolicyFunc(function func(string) string) Policy {
	return Policy{function: function} //nolint:exhaustruct // function flavor only
}

// IsSet returns true if the policy was configured with either flavor.
func (p Policy) IsSet() bool {
	return p.value != "" || p.function != nil
}

// Resolve evaluates the policy against the current version. An unset policy
// resolves to the empty string so callers can fall back to their default.
func (p Policy) Resolve(current string) string {
	if p.function != nil {
		return p.function(current)
	}
	return p.value
}
