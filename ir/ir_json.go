package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the node as plain JSON. Object keys are written in
// order.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := y.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) writeJSON(buf *bytes.Buffer) error {
	switch y.Type {
	case ObjectType:
		buf.WriteByte('{')
		for i, field := range y.Fields {
			if i != 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(field.String)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := y.Values[i].writeJSON(buf); err != nil {
				return fmt.Errorf("%s: %w", field.String, err)
			}
		}
		buf.WriteByte('}')
		return nil
	case ArrayType:
		buf.WriteByte('[')
		for i, elt := range y.Values {
			if i != 0 {
				buf.WriteByte(',')
			}
			if err := elt.writeJSON(buf); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
		return nil
	case NumberType:
		if y.Int64 == nil && y.Float64 == nil && json.Valid([]byte(y.Number)) {
			buf.WriteString(y.Number)
			return nil
		}
	}
	d, err := json.Marshal(y.Scalar())
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}
