// Package render embeds an event schema into the Serverless Framework deployment template.
package render

import (
	"bytes"
	"strings"

	"github.com/isometry/event-schema/internal/helpers"
	"github.com/isometry/event-schema/internal/schema"
	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"
)

const (
	// Placeholder is replaced with the capitalized event name throughout the template.
	Placeholder = "__PLACEHOLDER__"
	// ResourceSuffix is appended to Placeholder to form the schema resource name.
	ResourceSuffix = "EventSchema"
)

// ResourceName returns the schema resource name for event.
func ResourceName(event string) string {
	return helpers.Capitalize(event) + ResourceSuffix
}

// RenderDeploymentTemplate sets the serialized doc as the Content of the placeholder schema resource,
// replaces every Placeholder occurrence with the capitalized event name and returns the YAML text.
// The template node is left unmodified.
func RenderDeploymentTemplate(template *yaml.Node, doc schema.Document, event string) ([]byte, error) {
	if template == nil {
		return nil, &ResourceNotFoundError{Path: "document"}
	}
	tree := cloneNode(template)

	properties, err := schemaProperties(tree)
	if err != nil {
		return nil, err
	}

	content, err := doc.Marshal()
	if err != nil {
		return nil, err
	}
	setScalar(properties, "Content", string(content))

	replacePlaceholder(tree, helpers.Capitalize(event))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err = enc.Encode(tree); err != nil {
		return nil, errors.Wrap(err, "failed to encode deployment template")
	}
	if err = enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to encode deployment template")
	}

	out := buf.Bytes()
	if bytes.Contains(out, []byte(Placeholder)) {
		return nil, &PlaceholderRemainsError{Placeholder: Placeholder}
	}
	return out, nil
}

func schemaProperties(tree *yaml.Node) (*yaml.Node, error) {
	root := tree
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, &ResourceNotFoundError{Path: "document"}
		}
		root = root.Content[0]
	}

	path := []string{"Resources", Placeholder + ResourceSuffix, "Properties"}
	node := root
	for i, key := range path {
		node = lookup(node, key)
		if node == nil || node.Kind != yaml.MappingNode {
			return nil, &ResourceNotFoundError{Path: strings.Join(path[:i+1], ".")}
		}
	}
	return node, nil
}

// lookup returns the value of key in a mapping node, following aliases.
func lookup(node *yaml.Node, key string) *yaml.Node {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			value := node.Content[i+1]
			if value.Kind == yaml.AliasNode {
				return value.Alias
			}
			return value
		}
	}
	return nil
}

func setScalar(mapping *yaml.Node, key, value string) {
	scalar := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.LiteralStyle,
		Value: value,
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1] = scalar
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		scalar,
	)
}

// replacePlaceholder rewrites Placeholder in every key, value, anchor and comment below node.
func replacePlaceholder(node *yaml.Node, value string) {
	if node == nil {
		return
	}
	node.Value = strings.ReplaceAll(node.Value, Placeholder, value)
	node.Anchor = strings.ReplaceAll(node.Anchor, Placeholder, value)
	node.HeadComment = strings.ReplaceAll(node.HeadComment, Placeholder, value)
	node.LineComment = strings.ReplaceAll(node.LineComment, Placeholder, value)
	node.FootComment = strings.ReplaceAll(node.FootComment, Placeholder, value)
	if node.Kind == yaml.AliasNode {
		return
	}
	for _, child := range node.Content {
		replacePlaceholder(child, value)
	}
}

// cloneNode deep-copies a node tree, preserving alias targets within the copy.
func cloneNode(node *yaml.Node) *yaml.Node {
	seen := map[*yaml.Node]*yaml.Node{}
	var clone func(*yaml.Node) *yaml.Node
	clone = func(n *yaml.Node) *yaml.Node {
		if n == nil {
			return nil
		}
		if c, ok := seen[n]; ok {
			return c
		}
		c := *n
		seen[n] = &c
		if n.Content != nil {
			c.Content = make([]*yaml.Node, len(n.Content))
			for i, child := range n.Content {
				c.Content[i] = clone(child)
			}
		}
		c.Alias = clone(n.Alias)
		return &c
	}
	return clone(node)
}
