package swapi

import "fmt"

// TransportError reports a failure to reach the remote API or to read a
// well-formed response. Callers may retry these; the dispatcher never does.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// OperationError reports a failure the remote API itself signalled, either
// as a SOAP fault or as an ERR_* status in the response envelope. The
// remote message is carried verbatim.
type OperationError struct {
	Op      string
	Status  string
	Message string

	// Fields holds the remaining response fields when the failure came
	// from an ERR_* status envelope. Nil for SOAP faults.
	Fields map[string]any
}

func (e *OperationError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
