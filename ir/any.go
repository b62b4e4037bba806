package ir

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/goccy/go-yaml"
)

// IRValue is implemented by values which know their own node form.
type IRValue interface {
	ToIR() (*Node, error)
}

// FromAny converts a Go value to a node. Supported values are nil, strings,
// booleans, integer and floating point kinds, json.Number, *Node, IRValue,
// yaml.MapSlice (order preserved), maps with string keys (keys sorted) and
// slices or arrays of any of these.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case IRValue:
		return x.ToIR()
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return FromNumber(string(x)), nil
	case yaml.MapSlice:
		return fromMapSlice(x)
	case []*Node:
		res := FromSlice(x)
		for i, elt := range x {
			res.Values[i] = elt.Clone()
		}
		return res, nil
	case map[string]*Node:
		res := FromMap(x)
		for i, elt := range res.Values {
			res.Values[i] = elt.Clone()
		}
		return res, nil
	case []any:
		res := &Node{Type: ArrayType, Values: make([]*Node, len(x))}
		for i, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Values[i] = y
		}
		return res, nil
	case map[string]any:
		res := make(map[string]*Node, len(x))
		for k, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res[k] = y
		}
		return FromMap(res), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromMapSlice(ms yaml.MapSlice) (*Node, error) {
	res := Object()
	for _, item := range ms {
		key, err := mapKey(item.Key)
		if err != nil {
			return nil, err
		}
		y, err := FromAny(item.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		res.Put(key, y)
	}
	return res, nil
}

func mapKey(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case nil:
		return "", nil
	case bool:
		return strconv.FormatBool(x), nil
	}
	rv := reflect.ValueOf(k)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	case reflect.String:
		return rv.String(), nil
	}
	return "", fmt.Errorf("%w: key of type %T", ErrUnsupported, k)
}

func fromReflect(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > 1<<63-1 {
			return &Node{Type: NumberType, Number: strconv.FormatUint(u, 10)}, nil
		}
		return FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		res := &Node{Type: ArrayType, Values: make([]*Node, rv.Len())}
		for i := range rv.Len() {
			y, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Values[i] = y
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map with %s keys", ErrUnsupported, rv.Type().Key())
		}
		res := make(map[string]*Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			y, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res[k] = y
		}
		return FromMap(res), nil
	}
	if !rv.IsValid() {
		return Null(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupported, rv.Type())
}

// ToAny converts node to plain Go values: map[string]any, []any, string,
// int64, float64, bool or nil. Numbers fitting neither int64 nor float64
// are returned as their text.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			res[field.String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	}
	return node.Scalar()
}

// ToMapSlice is like ToAny but renders objects as yaml.MapSlice so that key
// order survives encoding.
func ToMapSlice(node *Node) any {
	switch node.Type {
	case ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, field := range node.Fields {
			res[i] = yaml.MapItem{Key: field.String, Value: ToMapSlice(node.Values[i])}
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToMapSlice(elt)
		}
		return res
	}
	return node.Scalar()
}

// Scalar returns the Go value of a leaf, or nil for containers.
func (y *Node) Scalar() any {
	switch y.Type {
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return y.Number
	case BoolType:
		return y.Bool
	}
	return nil
}

// Float returns the value of a number node as a float64.
func (y *Node) Float() (float64, bool) {
	if y.Type != NumberType {
		return 0, false
	}
	if y.Int64 != nil {
		return float64(*y.Int64), true
	}
	if y.Float64 != nil {
		return *y.Float64, true
	}
	f, err := strconv.ParseFloat(y.Number, 64)
	return f, err == nil
}
