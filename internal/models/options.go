// Package models provides the core data structures shared between the command line and the generator.
package models

import (
	"fmt"
	"strings"
)

// TemplateKind selects the document produced for an event.
type TemplateKind string

const (
	// TemplateJSON produces the bare event schema document.
	TemplateJSON TemplateKind = "json"
	// TemplateServerlessJS produces the event schema embedded in a Serverless Framework resources template.
	TemplateServerlessJS TemplateKind = "serverlessjs"
)

// TemplateKinds lists the supported template kinds in help order.
var TemplateKinds = []TemplateKind{TemplateJSON, TemplateServerlessJS}

// UnknownTemplateError is returned when a template kind is not one of TemplateKinds.
type UnknownTemplateError struct {
	Kind string
}

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown template %q (supported: %s)", e.Kind, strings.Join(TemplateKindNames(), ", "))
}

// TemplateKindNames returns the string values of TemplateKinds.
func TemplateKindNames() []string {
	names := make([]string, 0, len(TemplateKinds))
	for _, k := range TemplateKinds {
		names = append(names, string(k))
	}
	return names
}

// ParseTemplateKind converts s into a TemplateKind, rejecting unsupported values.
func ParseTemplateKind(s string) (TemplateKind, error) {
	for _, k := range TemplateKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", &UnknownTemplateError{Kind: s}
}

// Options represents a resolved create-event-schema invocation.
type Options struct {
	// Event is the name of the event. It is used verbatim as the schema key.
	Event string
	// Output is the destination file. When empty, a name is derived from Event and Template.
	Output string
	// Template selects the produced document.
	Template TemplateKind
}
