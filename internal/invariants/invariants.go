// Package invariants provides assertions that are only active in builds with
// the "invariants" or "race" build tags. Production builds compile them away,
// so a violated caller contract is silently ignored there and panics loudly in
// test builds run with -tags invariants or -race.
package invariants

import "fmt"

// Assertf panics with the formatted message if cond is false and invariants
// are enabled.
func Assertf(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
