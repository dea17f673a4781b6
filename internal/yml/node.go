package yml

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type (
	Node yaml.Node
)

// Root unwraps a document node.
func (n *Node) Root() *Node {
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return (*Node)(n.Content[0])
	}
	return n
}

// IsEmpty reports whether the node holds no content, for example an empty
// document.
func (n *Node) IsEmpty() bool {
	switch n.Kind {
	case 0:
		return true
	case yaml.DocumentNode, yaml.MappingNode, yaml.SequenceNode:
		return len(n.Content) == 0
	case yaml.ScalarNode:
		return n.Tag == "!!null"
	}
	return false
}

func (n *Node) Items(callback func(index int, node *Node) error) error {
	for i := 0; i < len(n.Content); i++ {
		if err := callback(i, (*Node)(n.Content[i])); err != nil {
			return err
		}
	}
	return nil
}

// Pairs iterates a mapping node in document order.
func (n *Node) Pairs(callback func(key string, node *Node) error) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping at line %d, got %v", n.Line, kindName(n.Kind))
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if err := callback(n.Content[i].Value, (*Node)(n.Content[i+1])); err != nil {
			return err
		}
	}
	return nil
}

// Scalars returns the trimmed, non-blank scalar values of a sequence node.
// A null node yields no values.
func (n *Node) Scalars() ([]string, error) {
	if n.Kind == yaml.ScalarNode && n.Tag == "!!null" {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected sequence at line %d, got %v", n.Line, kindName(n.Kind))
	}
	var ret []string
	err := n.Items(func(_ int, item *Node) error {
		if item.Kind != yaml.ScalarNode {
			return fmt.Errorf("expected scalar at line %d, got %v", item.Line, kindName(item.Kind))
		}
		if item.Tag == "!!null" {
			return nil
		}
		if value := strings.TrimSpace(item.Value); value != "" {
			ret = append(ret, value)
		}
		return nil
	})
	return ret, err
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "empty node"
}
