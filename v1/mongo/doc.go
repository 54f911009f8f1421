// Package mongo is the validating pass-through translator for backends
// whose native filter language is the canonical vocabulary itself.
//
// Translate returns a structurally-normalized deep copy of the input filter:
// maps and arrays are copied, dates at the leaves normalize to RFC 3339
// strings, everything else passes through unchanged. Filters built from
// vocabulary operators round-trip structurally intact.
//
// Support checking is decoupled from compilation. IsSupportedFilter answers
// a quick yes/no, ValidateFilterSupport returns every violation in one pass,
// and Translate itself fails fast on the first unsupported operator or
// malformed operand. The matrix covers the full vocabulary including $all,
// $elemMatch, $regex and $options.
package mongo
