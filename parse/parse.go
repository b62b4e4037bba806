package parse

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/pathtree/format"
	"github.com/signadot/pathtree/ir"

	"github.com/goccy/go-yaml"
)

var ErrParse = errors.New("parse error")

// Parse decodes a single YAML or JSON document. Object key order is kept.
// YAML is the default and, being a superset, also reads JSON; ParseJSON
// rejects anything that is not strict JSON.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	po := &parseOpts{format: format.YAMLFormat}
	for _, opt := range opts {
		opt(po)
	}
	switch po.format {
	case format.JSONFormat:
		if !json.Valid(d) {
			return nil, fmt.Errorf("%w: invalid json", ErrParse)
		}
	case format.YAMLFormat:
	default:
		return nil, fmt.Errorf("%w: cannot parse %s", format.ErrBadFormat, po.format)
	}
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return node, nil
}

// ParseValue decodes a single scalar or flow value such as a command line
// argument: `1`, `true`, `x`, `[1, 2]` or `{a: 1}`.
func ParseValue(s string) (*ir.Node, error) {
	return Parse([]byte(s))
}
