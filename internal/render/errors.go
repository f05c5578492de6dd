package render

import "fmt"

// TemplateError represents an error parsing or executing a markup template
type TemplateError struct {
	Name    string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error (%s): %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error (%s): %s", e.Name, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure applying one page region
type RenderError struct {
	Region  string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error (%s): %s: %v", e.Region, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error (%s): %s", e.Region, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
