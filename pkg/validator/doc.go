// Package validator is the rule library of the rto engine: small predicates
// for common data types, each returned as an rto.Rule with a default
// human-readable message.
//
// Every constructor accepts rto.RuleOption values, so the engine's options
// apply uniformly:
//
//	rto.Field("tags",
//	    validator.IsString(rto.Each()),
//	    validator.MaxLen(32, rto.Each(), rto.WithMessageText("tag too long")),
//	)
//
// Rules are grouped by concern: type checks (IsString, IsNumber, IsInt,
// IsBool, IsDate, IsObject, IsArray, IsDefined, IsNotEmpty), strings
// (MinLen, MaxLen, Matches, IsEmail), numbers (Min, Max, Positive), dates
// (MinDate, MaxDate, AfterField), choices (IsIn, IsNotIn), collections
// (ArrayMinSize, ArrayMaxSize, ArrayUnique) and identifiers (IsUUID). Custom
// and CustomAsync wrap application-specific checks; CustomAsync is the way to
// plug in checks that block, such as database lookups.
//
// # Messages
//
// Default messages name the property, e.g. "'email' must be an email.". A
// Catalog loaded from YAML replaces them by rule name:
//
//	catalog, err := validator.LoadCatalog(yamlBytes)
//	localized := catalog.LocalizeShape(shape)
//
// # Performance Considerations
//
// All synchronous rules are allocation-light comparisons. Regular expressions
// are compiled once, when the rule is declared.
package validator
