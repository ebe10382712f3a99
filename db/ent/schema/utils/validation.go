package utils

import "fmt"

// EnumValidator returns an ent field validator that accepts only the given
// values. Schemas pair it with the matching constants list so the database
// rejects anything the application-level types would.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not allowed", s)
	}
}
