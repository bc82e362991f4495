// Package sanitizer provides the transforms used by rto rules: small pure
// string helpers plus adapters that turn them into rto.Transform values.
//
//	rto.Field("email", validator.IsEmail(
//	    rto.WithTransform(sanitizer.String(sanitizer.Trim, sanitizer.NormalizeEmail)),
//	))
//	rto.Field("startsAt", validator.IsDate(rto.WithTransform(sanitizer.ParseDate())))
//
// Parsing transforms (ParseDate, ParseInt, ParseFloat, ParseBool) return the
// original value when it does not parse. The rule's predicate then rejects
// it and the validation error still shows what the client sent.
//
// HashPassword wraps bcrypt so that a validated password never reaches the
// result object in clear text.
//
// # Error handling
//
// None of the helpers returns an error; they always fall back to the input.
package sanitizer
