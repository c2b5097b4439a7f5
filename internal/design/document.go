package design

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	skyerrors "github.com/alexisbeaulieu97/skyui/pkg/errors"
)

const (
	documentStyleKey      = "style"
	documentBreakpointKey = "bp"
)

// IsReservedKey reports whether name has a fixed meaning in directive
// documents and so cannot name an alias.
func IsReservedKey(name string) bool {
	return name == documentStyleKey || name == documentBreakpointKey
}

// LoadDirectives reads a directive document from disk.
func LoadDirectives(path string) ([]Directive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, skyerrors.NewParseError(path, 0, err)
	}
	return ParseDirectives(path, data)
}

// ParseDirectives decodes a YAML or JSON directive document. The document is a
// sequence of single-entry mappings:
//
//	- pa: $space.m
//	- jcb: true
//	- font: mono
//	- mt: 24
//	  bp: gtPhone
//	- style: {color: $color.text}
//
// Keys naming a macro become macro directives, "style" introduces a literal
// style, and every other key is treated as an alias. A key that is neither
// fails at resolve time with an UnknownAliasError that has OrMacro set.
// Strings of the form $category.key become token references. Source order is
// preserved.
func ParseDirectives(path string, data []byte) ([]Directive, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, skyerrors.NewParseError(path, 0, err)
	}
	if root.Kind == 0 {
		return nil, nil
	}

	seq := &root
	if seq.Kind == yaml.DocumentNode && len(seq.Content) > 0 {
		seq = seq.Content[0]
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, skyerrors.NewParseError(path, seq.Line, fmt.Errorf("directive document must be a list"))
	}

	directives := make([]Directive, 0, len(seq.Content))
	for _, item := range seq.Content {
		d, err := parseDirective(item)
		if err != nil {
			return nil, skyerrors.NewParseError(path, item.Line, err)
		}
		directives = append(directives, d)
	}
	return directives, nil
}

func parseDirective(node *yaml.Node) (Directive, error) {
	if node.Kind != yaml.MappingNode {
		return Directive{}, fmt.Errorf("directive must be a mapping")
	}

	var (
		breakpoint string
		key        string
		valueNode  *yaml.Node
	)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Value == documentBreakpointKey {
			if v.Kind != yaml.ScalarNode || v.Value == "" {
				return Directive{}, fmt.Errorf("bp must name a breakpoint")
			}
			breakpoint = v.Value
			continue
		}
		if valueNode != nil {
			return Directive{}, fmt.Errorf("directive has more than one entry (%q and %q)", key, k.Value)
		}
		key, valueNode = k.Value, v
	}
	if valueNode == nil {
		return Directive{}, fmt.Errorf("directive is empty")
	}

	var d Directive
	switch {
	case key == documentStyleKey:
		if valueNode.Kind != yaml.MappingNode {
			return Directive{}, fmt.Errorf("style must be a mapping of property names to values")
		}
		var raw map[string]any
		if err := valueNode.Decode(&raw); err != nil {
			return Directive{}, err
		}
		style := make(Style, len(raw))
		for prop, value := range raw {
			converted, err := convertScalar(value)
			if err != nil {
				return Directive{}, fmt.Errorf("style.%s: %w", prop, err)
			}
			style[prop] = converted
		}
		d = Literal(style)
	case IsMacro(key):
		value, err := decodeScalar(valueNode)
		if err != nil {
			return Directive{}, fmt.Errorf("%s: %w", key, err)
		}
		d = Use(Macro(key), value)
	default:
		value, err := decodeScalar(valueNode)
		if err != nil {
			return Directive{}, fmt.Errorf("%s: %w", key, err)
		}
		d = Alias(key, value)
		d.bareKey = true
	}

	if breakpoint != "" {
		d = d.At(breakpoint)
	}
	return d, nil
}

func decodeScalar(node *yaml.Node) (any, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("value must be a scalar")
	}
	var value any
	if err := node.Decode(&value); err != nil {
		return nil, err
	}
	return convertScalar(value)
}

func convertScalar(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return value, nil
	}
	ref, isRef, err := ParseTokenRef(s)
	if err != nil {
		return nil, err
	}
	if isRef {
		return ref, nil
	}
	return s, nil
}
