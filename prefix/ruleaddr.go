package prefix

import (
	"reflect"

	"splitfmt/rule"
)

// ruleAddr extracts a stable, order-comparable fingerprint for a rule. Every
// Rule implementation in this module is a pointer type, so reflect's
// Pointer() gives us identity without requiring Rule to expose its own hash
// method (spec.md §6 only requires Rule support equality and hashing "used
// as map keys", which Go's native interface comparison already gives us;
// this just lets LinePrefix's hash mix that identity in).
func ruleAddr(r rule.Rule) uint64 {
	v := reflect.ValueOf(r)
	if v.Kind() != reflect.Ptr {
		panic("prefix: Rule implementations must be pointer types")
	}
	return uint64(v.Pointer())
}
