package content

import "fmt"

// LoadError represents a failure retrieving a content bundle
type LoadError struct {
	Lang    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content load error (%s): %s: %v", e.Lang, e.Message, e.Cause)
	}
	return fmt.Sprintf("content load error (%s): %s", e.Lang, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ParseError represents a content bundle that was retrieved but is not a valid document
type ParseError struct {
	Lang    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content parse error (%s): %s: %v", e.Lang, e.Message, e.Cause)
	}
	return fmt.Sprintf("content parse error (%s): %s", e.Lang, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
