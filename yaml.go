package objcase

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document into a Value, keeping mapping keys in
// document order. An empty document yields null.
func ParseYAML(b []byte) (Value, error) {
	var v Value
	if err := yaml.Unmarshal(b, &v); err != nil {
		return Value{}, err
	}
	if v.IsUndefined() {
		return Null(), nil
	}
	return v, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	out, err := fromNode(node)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func fromNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return fromNode(node.Content[0])
	case yaml.AliasNode:
		return fromNode(node.Alias)
	case yaml.SequenceNode:
		arr := make([]Value, len(node.Content))
		for i, n := range node.Content {
			v, err := fromNode(n)
			if err != nil {
				return Value{}, fmt.Errorf("%d: %w", i, err)
			}
			arr[i] = v
		}
		return Array(arr...), nil
	case yaml.MappingNode:
		return fromMapping(node)
	case yaml.ScalarNode:
		return fromScalar(node)
	}
	return Value{}, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
}

// fromMapping builds an object from a mapping node. Merge keys (<<) copy
// the members of the merged mappings in place, without overriding keys the
// mapping sets itself; with a sequence of merges the earlier mapping wins.
func fromMapping(node *yaml.Node) (Value, error) {
	explicit := map[string]bool{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if k := node.Content[i]; !isMergeKey(k) {
			explicit[k.Value] = true
		}
	}

	o := NewObject()
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, vn := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return Value{}, fmt.Errorf("line %d: mapping key must be a scalar", k.Line)
		}
		if isMergeKey(k) {
			if err := merge(o, vn, explicit); err != nil {
				return Value{}, err
			}
			continue
		}
		v, err := fromNode(vn)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", k.Value, err)
		}
		o.Set(k.Value, v)
	}
	return o.Value(), nil
}

func isMergeKey(k *yaml.Node) bool {
	return k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge"
}

func merge(o *Object, node *yaml.Node, explicit map[string]bool) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.SequenceNode:
		for _, n := range node.Content {
			if n.Kind == yaml.AliasNode {
				n = n.Alias
			}
			if n.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: merge sequence must hold mappings", n.Line)
			}
			if err := merge(o, n, explicit); err != nil {
				return err
			}
		}
		return nil
	case yaml.MappingNode:
		v, err := fromMapping(node)
		if err != nil {
			return err
		}
		src := v.obj
		for _, key := range src.keys {
			if explicit[key] || o.Has(key) {
				continue
			}
			o.Set(key, src.vals[key])
		}
		return nil
	}
	return fmt.Errorf("line %d: merge value must be a mapping or a sequence of mappings", node.Line)
}

func fromScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, err
		}
		return Number(f), nil
	}
	return String(node.Value), nil
}

// MarshalYAML implements [yaml.Marshaler]. Undefined and function members
// are left out of mappings and become null inside sequences.
func (v Value) MarshalYAML() (any, error) {
	return toNode(v), nil
}

func toNode(v Value) *yaml.Node {
	switch v.kind {
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}
	case KindNumber:
		if v.n == math.Trunc(v.n) && math.Abs(v.n) < 1e15 {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatFloat(v.n, 'f', -1, 64)}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatYAMLFloat(v.n)}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}
	case KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range v.arr {
			n.Content = append(n.Content, toNode(elem))
		}
		return n
	case KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range v.obj.keys {
			elem := v.obj.vals[key]
			if elem.kind == KindUndefined || elem.kind == KindFunc {
				continue
			}
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				toNode(elem),
			)
		}
		return n
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func formatYAMLFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
