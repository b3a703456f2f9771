package render

import "fmt"

// ResourceNotFoundError is returned when the deployment template lacks the placeholder schema resource.
type ResourceNotFoundError struct {
	Path string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("deployment template has no %s", e.Path)
}

// PlaceholderRemainsError is returned when the rendered template still carries the placeholder token.
type PlaceholderRemainsError struct {
	Placeholder string
}

func (e *PlaceholderRemainsError) Error() string {
	return fmt.Sprintf("rendered template still contains %s", e.Placeholder)
}
