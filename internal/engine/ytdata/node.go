// Package ytdata holds the embedded page-state JSON that YouTube inlines as
// ytInitialData, decoded into an order-preserving value tree.
//
// encoding/json into map[string]any would lose member order, and callers
// that take "the first match" of a key depend on document order.
package ytdata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Kind identifies which variant of the JSON union a Node holds.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Object
	Array
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Object:
		return "object"
	case Array:
		return "array"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Member is one key/value pair of an object, in document order.
type Member struct {
	Key   string
	Value *Node
}

// Node is a decoded JSON value. Scalars keep their literal text in str
// (numbers are not converted, so "lengthSeconds": 212 and "212" read the same).
type Node struct {
	kind    Kind
	str     string
	members []Member
	items   []*Node
}

// Kind reports the variant; a nil Node reports Null.
func (n *Node) Kind() Kind {
	if n == nil {
		return Null
	}
	return n.kind
}

// Members returns an object's members in document order.
func (n *Node) Members() []Member {
	if n == nil || n.kind != Object {
		return nil
	}
	return n.members
}

// Items returns an array's elements.
func (n *Node) Items() []*Node {
	if n == nil || n.kind != Array {
		return nil
	}
	return n.items
}

// Len is the member count of an object or the element count of an array.
func (n *Node) Len() int {
	switch n.Kind() {
	case Object:
		return len(n.members)
	case Array:
		return len(n.items)
	}
	return 0
}

// Get returns the object member named key, or nil.
func (n *Node) Get(key string) *Node {
	if n == nil || n.kind != Object {
		return nil
	}
	for _, m := range n.members {
		if m.Key == key {
			return m.Value
		}
	}
	return nil
}

// Index returns the i-th array element, or nil.
func (n *Node) Index(i int) *Node {
	if n == nil || n.kind != Array || i < 0 || i >= len(n.items) {
		return nil
	}
	return n.items[i]
}

// Text returns the literal of a string, number or bool node.
// ok is false for null, containers and nil.
func (n *Node) Text() (s string, ok bool) {
	switch n.Kind() {
	case String, Number, Bool:
		return n.str, true
	}
	return "", false
}

// String returns Text or "".
func (n *Node) String() string {
	s, _ := n.Text()
	return s
}

// set adds or replaces a member. A repeated key keeps its first position and
// takes the last value, which is how the page's own JavaScript sees it.
func (n *Node) set(key string, v *Node) {
	for i := range n.members {
		if n.members[i].Key == key {
			n.members[i].Value = v
			return
		}
	}
	n.members = append(n.members, Member{Key: key, Value: v})
}

// ErrEmpty is returned by Parse for input with no JSON value.
var ErrEmpty = errors.New("ytdata: empty document")

// Parse decodes exactly one JSON value.
// The decoder is driven token by token with an explicit stack, so nesting
// depth is bounded only by memory.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	type frame struct {
		node    *Node
		key     string
		haveKey bool
	}
	var (
		stack []*frame
		root  *Node
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ytdata: %w", err)
		}

		var n *Node
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				n = &Node{kind: Object}
			case '[':
				n = &Node{kind: Array}
			default: // '}' or ']'; the decoder has already checked the pairing
				stack = stack[:len(stack)-1]
				continue
			}
		case string:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.node.kind == Object && !top.haveKey {
					top.key, top.haveKey = v, true
					continue
				}
			}
			n = &Node{kind: String, str: v}
		case json.Number:
			n = &Node{kind: Number, str: v.String()}
		case bool:
			n = &Node{kind: Bool, str: strconv.FormatBool(v)}
		case nil:
			n = &Node{kind: Null}
		default:
			return nil, fmt.Errorf("ytdata: unexpected token %T", tok)
		}

		if len(stack) == 0 {
			if root != nil {
				return nil, errors.New("ytdata: trailing data after top-level value")
			}
			root = n
		} else {
			top := stack[len(stack)-1]
			if top.node.kind == Object {
				top.node.set(top.key, n)
				top.haveKey = false
			} else {
				top.node.items = append(top.node.items, n)
			}
		}
		if n.kind == Object || n.kind == Array {
			stack = append(stack, &frame{node: n})
		}
	}

	if root == nil {
		return nil, ErrEmpty
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("ytdata: %w", io.ErrUnexpectedEOF)
	}
	return root, nil
}

// Dig follows a path of object keys and array indices (decimal strings).
// It returns nil as soon as a step does not exist.
func (n *Node) Dig(path ...string) *Node {
	cur := n
	for _, step := range path {
		switch cur.Kind() {
		case Object:
			cur = cur.Get(step)
		case Array:
			i, err := strconv.Atoi(step)
			if err != nil {
				return nil
			}
			cur = cur.Index(i)
		default:
			return nil
		}
		if cur == nil {
			return nil
		}
	}
	return cur
}
