package expr

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// ToJSON serializes an expression tree to its JSON wire form. This is the
// only ingest/egress format of the engine; textual math notation belongs to
// an external parser.
func ToJSON(e Expr) (string, error) {
	b, err := json.Marshal(e.toJSON())
	return string(b), err
}

// ParseJSON decodes a JSON document into an expression tree.
func ParseJSON(data []byte) (Expr, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return FromJSON(m)
}

// FromJSON rebuilds an expression from its decoded JSON form. It returns a
// well-formed tree or an error, never a partial tree.
func FromJSON(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	subObj := func(field string) (map[string]interface{}, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		return m, nil
	}

	subObjArray := func(field string) ([]map[string]interface{}, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an array", typ, field)
		}
		out := make([]map[string]interface{}, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s: %q[%d] must be an object", typ, field, i)
			}
			out[i] = m
		}
		return out, nil
	}

	subString := func(field string) (string, error) {
		v, ok := data[field]
		if !ok {
			return "", fmt.Errorf("%s: missing %q", typ, field)
		}
		s, ok := v.(string)
		if !ok || s == "" {
			return "", fmt.Errorf("%s: %q must be a non-empty string", typ, field)
		}
		return s, nil
	}

	decodeList := func(field string) ([]Expr, error) {
		objs, err := subObjArray(field)
		if err != nil {
			return nil, err
		}
		out := make([]Expr, len(objs))
		for i, o := range objs {
			e, err := FromJSON(o)
			if err != nil {
				return nil, fmt.Errorf("%s: %s[%d]: %w", typ, field, i, err)
			}
			out[i] = e
		}
		return out, nil
	}

	switch typ {
	case "num":
		valAny, ok := data["value"]
		if !ok {
			return nil, fmt.Errorf("num: missing 'value'")
		}
		val, ok := valAny.(string)
		if !ok || val == "" {
			return nil, fmt.Errorf("num: 'value' must be a non-empty string")
		}
		r := new(big.Rat)
		if _, ok := r.SetString(val); !ok {
			return nil, fmt.Errorf("invalid num value: %s", val)
		}
		return &Num{val: r}, nil

	case "sym":
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		kind := ScalarKind
		if k, ok := data["kind"].(string); ok {
			kind = KindFromString(k)
		}
		return SymOf(name, kind), nil

	case "const":
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		c, ok := ConstFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown constant: %s", name)
		}
		return c, nil

	case "add":
		terms, err := decodeList("terms")
		if err != nil {
			return nil, err
		}
		return AddOf(terms...), nil

	case "mul":
		factors, err := decodeList("factors")
		if err != nil {
			return nil, err
		}
		return MulOf(factors...), nil

	case "pow":
		baseM, err := subObj("base")
		if err != nil {
			return nil, err
		}
		expM, err := subObj("exp")
		if err != nil {
			return nil, err
		}
		base, err := FromJSON(baseM)
		if err != nil {
			return nil, fmt.Errorf("pow: base: %w", err)
		}
		exp, err := FromJSON(expM)
		if err != nil {
			return nil, fmt.Errorf("pow: exp: %w", err)
		}
		return PowOf(base, exp), nil

	case "func":
		name, err := subString("name")
		if err != nil {
			return nil, err
		}
		args, err := decodeList("args")
		if err != nil {
			return nil, err
		}
		return FuncOf(name, args...), nil

	case "derivative":
		fnM, err := subObj("fn")
		if err != nil {
			return nil, err
		}
		fn, err := FromJSON(fnM)
		if err != nil {
			return nil, fmt.Errorf("derivative: fn: %w", err)
		}
		rawWrt, ok := data["wrt"].([]interface{})
		if !ok || len(rawWrt) == 0 {
			return nil, fmt.Errorf("derivative: 'wrt' must be a non-empty array")
		}
		wrt := make([]string, len(rawWrt))
		for i, w := range rawWrt {
			s, ok := w.(string)
			if !ok || s == "" {
				return nil, fmt.Errorf("derivative: wrt[%d] must be a non-empty string", i)
			}
			wrt[i] = s
		}
		return DerivOf(fn, wrt...), nil
	}
	return nil, fmt.Errorf("unknown expression type: %s", typ)
}
