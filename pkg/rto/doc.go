// Package rto validates and transforms untrusted payloads into clean request
// objects ("RTOs") described by a declarative Shape.
//
// A Shape is a schema table: an ordered list of properties, each carrying one
// or more Rules. A Rule pairs a Predicate with an optional Transform, a
// message renderer and the Optional, Each and Expose flags. Run iterates the
// table, builds the subject and returns either the cleaned Object or an
// *AggregateError describing every failure.
//
//	signup := rto.NewShape("Signup",
//	    rto.Field("email", validator.IsEmail(rto.WithTransform(sanitizer.String(sanitizer.Trim, sanitizer.ToLower)))),
//	    rto.Field("age", validator.IsInt(), validator.Min(18)),
//	    rto.Field("tags", validator.IsString(rto.Each(), rto.Optional())),
//	    rto.Field("address", rto.Nested(addressShape)),
//	    rto.Field("plan", validator.IsIn("free", "pro")).WithDefault("free"),
//	)
//
//	obj, err := rto.Run(ctx, signup, payload)
//	if err != nil {
//	    if rto.IsValidationError(err) {
//	        doc := rto.Format(rto.ExtractErrors(err))
//	        // render doc
//	    }
//	}
//
// # Pass lifecycle
//
// Every call to Run creates a private session holding the raw payload,
// exposed values, optional flags, nested results and one error slot per
// property. Nothing is stored on the Shape, so the same Shape can be used by
// any number of concurrent passes. For each property Run first settles the
// working value (payload value, or the default when defaults are exposed),
// marks the property optional when it is undefined and optional or was
// filled from its default, and exposes it when asked. It then pushes the value
// through the rules: each rule transforms it and checks it against a View of
// the values seen so far.
//
// Several failures on one property share a single ValidationError whose
// Constraints list every distinct message in registration order.
//
// # Deferred rules
//
// Predicates built with CheckAsync, and Nested rules, return deferred results
// backed by async.Future. They start right away and are only joined when the
// pass collects its errors, so independent slow rules overlap. An error
// returned by a deferred predicate is treated as a fault and returned by Run
// as is. Cancelling ctx stops the join.
//
// # Whitelisting and defaults
//
// Payload keys with no declared property are dropped unless
// ExcludeExtraneousValues(false) is given. Declared defaults fill missing
// values unless ExposeDefaultValues(false) is given; a partial object in the
// payload is merged over an object default.
//
// # Reporting
//
// The default FailureHandler returns an *AggregateError whose Document is
// the Format of its errors. WithFailureHandler replaces it; LogFailures and
// IgnoreFailures let the pass return the partially validated subject.
package rto
