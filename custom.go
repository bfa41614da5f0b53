package objcase

// CustomKeys returns a rule that runs f on every object key in the tree and
// reports each non-nil error under the key's path. desc documents the rule
// on OpenAPI schemas.
func CustomKeys(f func(key string) error, desc string) Rule {
	return &keyRule{
		desc: desc,
		check: func(key string, _ Value) error {
			return f(key)
		},
	}
}
