package eval

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/signadot/pathtree/ir"
	"github.com/signadot/pathtree/ptree"
)

// Predicate compiles src into a function of an entry whose result is the
// truth of the expression, see ir.Truth.
func Predicate(src string) (func(key string, v ptree.Value) (bool, error), error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return func(key string, v ptree.Value) (bool, error) {
		res, err := p.Run(Env{"key": key, "value": v.Raw()})
		if err != nil {
			return false, err
		}
		return ir.Truth(res), nil
	}, nil
}

// Comparator compiles src into a comparison of two entry values a and b.
// A numeric result is used by its sign. A boolean result means a sorts
// before b, and is evaluated both ways to detect ties.
func Comparator(src string) (func(a, b ptree.Value) (int, error), error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	run := func(a, b ptree.Value) (*ir.Node, error) {
		return p.Run(Env{"a": a.Raw(), "b": b.Raw()})
	}
	return func(a, b ptree.Value) (int, error) {
		res, err := run(a, b)
		if err != nil {
			return 0, err
		}
		switch res.Type {
		case ir.NumberType:
			f, _ := res.Float()
			return cmp.Compare(f, 0), nil
		case ir.BoolType:
			if res.Bool {
				return -1, nil
			}
			rev, err := run(b, a)
			if err != nil {
				return 0, err
			}
			if ir.Truth(rev) {
				return 1, nil
			}
			return 0, nil
		}
		return 0, fmt.Errorf("%w: comparator %q returned a %s", ErrEval, p, res.Type)
	}, nil
}

// SortKey compiles src into a function computing the value an entry is
// sorted by.
func SortKey(src string) (func(key string, v ptree.Value) (ptree.Value, error), error) {
	p, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return func(key string, v ptree.Value) (ptree.Value, error) {
		res, err := p.Run(Env{"key": key, "value": v.Raw()})
		if err != nil {
			return ptree.Value{}, err
		}
		if res.IsContainer() {
			return ptree.Value{}, fmt.Errorf("%w: sort key %q returned a %s", ErrEval, p, res.Type)
		}
		return ptree.Scalar(res.Scalar()), nil
	}, nil
}

// Filter returns the entries of t for which src is true. The first
// evaluation error aborts the filter.
func Filter(t *ptree.Tree, src string) (*ptree.Tree, error) {
	pred, err := Predicate(src)
	if err != nil {
		return nil, err
	}
	var evalErr error
	res, err := t.Filter(func(key string, v ptree.Value) bool {
		if evalErr != nil {
			return false
		}
		ok, err := pred(key, v)
		if err != nil {
			evalErr = fmt.Errorf("entry %q: %w", key, err)
		}
		return ok
	})
	if err != nil {
		return nil, err
	}
	if evalErr != nil {
		return nil, evalErr
	}
	return res, nil
}

// SortBy returns t stably sorted by the sort key expression src, with keys
// compared by ptree.CompareValues.
func SortBy(t *ptree.Tree, src string, reverse bool) (*ptree.Tree, error) {
	sortKey, err := SortKey(src)
	if err != nil {
		return nil, err
	}
	type keyed struct {
		key string
		by  ptree.Value
	}
	ks := make([]keyed, 0, t.Len())
	for key, v := range t.All() {
		by, err := sortKey(key, v)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		ks = append(ks, keyed{key: key, by: by})
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		c := ptree.CompareValues(a.by, b.by)
		if reverse {
			return -c
		}
		return c
	})
	pos := make(map[string]int, len(ks))
	for i, k := range ks {
		pos[k.key] = i
	}
	return t.SortByKey(func(a, b string) int {
		return cmp.Compare(pos[a], pos[b])
	})
}

// SortWith returns t stably sorted by the comparator expression src.
func SortWith(t *ptree.Tree, src string, reverse bool) (*ptree.Tree, error) {
	compare, err := Comparator(src)
	if err != nil {
		return nil, err
	}
	var evalErr error
	res, err := t.SortByValue(func(a, b ptree.Value) int {
		if evalErr != nil {
			return 0
		}
		c, err := compare(a, b)
		if err != nil {
			evalErr = err
		}
		if reverse {
			return -c
		}
		return c
	})
	if err != nil {
		return nil, err
	}
	if evalErr != nil {
		return nil, evalErr
	}
	return res, nil
}
