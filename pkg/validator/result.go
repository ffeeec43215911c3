package validator

// Result is the verdict of a single field validator.
// Error is empty if and only if Valid is true.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error"`
}

func ok() Result {
	return Result{Valid: true}
}

// fail never produces an invalid Result without a message.
func fail(msg string) Result {
	if msg == "" {
		msg = "Invalid value"
	}
	return Result{Valid: false, Error: msg}
}

// Err returns nil for a valid result and a one-entry ValidationErrors for field otherwise.
func (r Result) Err(field string) error {
	if r.Valid {
		return nil
	}
	return ValidationErrors{{Field: field, Message: r.Error}}
}
