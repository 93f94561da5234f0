package event

import "strconv"

// ArityPolicy is either unconstrained or an exact argument count.
type ArityPolicy struct {
	exact bool
	n     int
}

func Unconstrained() ArityPolicy {
	return ArityPolicy{}
}

func Exact(n int) ArityPolicy {
	return ArityPolicy{exact: true, n: n}
}

func (p ArityPolicy) IsExact() bool {
	return p.exact
}

// Expected returns the required argument count. ok is false for Unconstrained.
func (p ArityPolicy) Expected() (n int, ok bool) {
	return p.n, p.exact
}

// Allows reports whether received satisfies the policy. There is no
// "at least" matching: Exact(n) accepts n and nothing else.
func (p ArityPolicy) Allows(received int) bool {
	return !p.exact || received == p.n
}

func (p ArityPolicy) String() string {
	if !p.exact {
		return "unconstrained"
	}

	return "exact(" + strconv.Itoa(p.n) + ")"
}
