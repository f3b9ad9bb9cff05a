// Package matching provides the field predicates used to select API
// resources.
//
// A pattern is a case-insensitive regular expression searched anywhere in
// the value, so a plain word behaves as a substring test:
//
//   - "orders" matches "Orders API" and "legacy-orders"
//   - "^/v1/" matches context paths that start with /v1/
//   - "" matches everything
//
// Patterns should be compiled once with Compile, which reports malformed
// expressions before any resource is fetched. Match is a convenience for
// uncompiled patterns and never fails.
package matching
