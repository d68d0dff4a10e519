// Package validate contains the pure field validators that gate every
// outbound API call. Each validator checks one field against a syntactic
// rule and returns a structured Result; no validator touches the network
// or any cross-command state.
package validate

// Result represents the outcome of a single field validation.
type Result struct {
	Valid bool
	Error string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Valid: false, Error: msg}
}
