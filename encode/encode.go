package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/pathtree/format"
	"github.com/signadot/pathtree/ir"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w. The default format is the nested dump, which is
// meant for people and is not parsed back. Colors apply to the dump only.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.DumpFormat:
	default:
		return fmt.Errorf("%w: unknown format %d", ErrEncoding, es.format)
	}
	if err := dump(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := node.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if !es.wire {
		buf := bytes.NewBuffer(nil)
		if err := json.Indent(buf, d, "", strings.Repeat(" ", es.indent)); err != nil {
			return fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		d = buf.Bytes()
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := yaml.MarshalWithOptions(ir.ToMapSlice(node),
		yaml.Indent(es.indent),
		yaml.Flow(es.wire))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func dump(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
		return dumpContainer(node, w, es)
	}
	return writeString(w, es.color(node.Type, ValueColor, scalarString(node)))
}

func dumpContainer(node *ir.Node, w io.Writer, es *EncState) error {
	lb, rb := "{", "}"
	if node.Type == ir.ArrayType {
		lb, rb = "[", "]"
	}
	if node.Len() == 0 {
		return writeString(w, es.color(node.Type, SepColor, lb+rb))
	}
	if err := writeString(w, es.color(node.Type, SepColor, lb)); err != nil {
		return err
	}
	es.depth++
	i := 0
	for key, val := range node.Entries() {
		if es.wire && i != 0 {
			if err := writeString(w, es.color(node.Type, SepColor, ",")+" "); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if node.Type == ir.ObjectType {
			field := es.color(node.Type, FieldColor, quoteKey(key))
			if err := writeString(w, field+es.color(node.Type, SepColor, ":")+" "); err != nil {
				return err
			}
		}
		if err := dump(val, w, es); err != nil {
			return err
		}
		i++
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, es.color(node.Type, SepColor, rb))
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func scalarString(node *ir.Node) string {
	switch node.Type {
	case ir.StringType:
		return strconv.Quote(node.String)
	case ir.NumberType:
		if node.Int64 != nil {
			return strconv.FormatInt(*node.Int64, 10)
		}
		if node.Float64 != nil {
			return strconv.FormatFloat(*node.Float64, 'g', -1, 64)
		}
		return node.Number
	case ir.BoolType:
		return strconv.FormatBool(node.Bool)
	case ir.NullType:
		return "null"
	default:
		panic("type")
	}
}

func quoteKey(k string) string {
	if k == "" || strings.ContainsAny(k, " \t\r\n:{}[],\"'#") {
		return strconv.Quote(k)
	}
	return k
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
