package schema

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

// Zero values mean "not supplied" in create-request overrides; the constructors replace them
// with generated values and then run Validate, so overrides are trimmed the same way decoded
// bodies are.

func fill(field *string, gen func() string) {
	if *field == "" {
		*field = gen()
	}
}

func fillInt(field *int, gen func() int) {
	if *field == 0 {
		*field = gen()
	}
}

func fillOptional(field *ldvalue.OptionalString, gen func() string) {
	if !field.IsDefined() {
		*field = ldvalue.NewOptionalString(gen())
	}
}

func fillOptionalInt(field *ldvalue.OptionalInt, gen func() int) {
	if !field.IsDefined() {
		*field = ldvalue.NewOptionalInt(gen())
	}
}
