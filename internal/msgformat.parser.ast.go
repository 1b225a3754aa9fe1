package internal

import (
	"fmt"
	"strings"
)

// Node is the interface all AST nodes implement
type Node interface {
	// Type returns the node type identifier
	Type() NodeType
	// Pos returns the source position of this node
	Pos() Position
	// String returns a human-readable representation
	String() string
}

// MessageNode is the top-level container for an AST: literal text runs
// interleaved with variables, in document order.
type MessageNode struct {
	Children []Node
}

// Type returns NodeTypeMessage
func (n *MessageNode) Type() NodeType {
	return NodeTypeMessage
}

// Pos returns a zero position (the message has no specific position)
func (n *MessageNode) Pos() Position {
	return Position{Offset: 0, Line: 1, Column: 1}
}

// String returns a string representation of the message node
func (n *MessageNode) String() string {
	var sb strings.Builder
	sb.WriteString("MessageNode{\n")
	for i, child := range n.Children {
		sb.WriteString(fmt.Sprintf("  [%d] %s\n", i, child.String()))
	}
	sb.WriteString("}")
	return sb.String()
}

// TextNode represents literal text. Inside transformer arguments it is one raw
// argument fragment.
type TextNode struct {
	pos     Position
	Content string
}

// Type returns NodeTypeText
func (n *TextNode) Type() NodeType {
	return NodeTypeText
}

// Pos returns the source position
func (n *TextNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *TextNode) String() string {
	content := n.Content
	if len(content) > MaxStringDisplayLength {
		content = content[:TruncatedStringLength] + TruncationSuffix
	}
	return fmt.Sprintf("TextNode{%q @ %s}", content, n.pos)
}

// NewTextNode creates a new text node
func NewTextNode(content string, pos Position) *TextNode {
	return &TextNode{
		pos:     pos,
		Content: content,
	}
}

// LiteralNode is a plain path key. A path consisting of a single all-digit
// segment collapses to a LiteralNode, so a[0] indexes with the literal "0".
type LiteralNode struct {
	pos   Position
	Value string
}

// Type returns NodeTypeLiteral
func (n *LiteralNode) Type() NodeType {
	return NodeTypeLiteral
}

// Pos returns the source position
func (n *LiteralNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *LiteralNode) String() string {
	return fmt.Sprintf("LiteralNode{%q}", n.Value)
}

// NewLiteralNode creates a new literal node
func NewLiteralNode(value string, pos Position) *LiteralNode {
	return &LiteralNode{
		pos:   pos,
		Value: value,
	}
}

// PathNode is an access path. Segments are *LiteralNode keys or nested
// *PathNode values for computed indices such as a[b.c].
type PathNode struct {
	pos      Position
	Segments []Node
}

// Type returns NodeTypePath
func (n *PathNode) Type() NodeType {
	return NodeTypePath
}

// Pos returns the source position
func (n *PathNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *PathNode) String() string {
	parts := make([]string, len(n.Segments))
	for i, seg := range n.Segments {
		parts[i] = seg.String()
	}
	return fmt.Sprintf("PathNode{%s}", strings.Join(parts, ", "))
}

// NewPathNode creates a new path node
func NewPathNode(segments []Node, pos Position) *PathNode {
	return &PathNode{
		pos:      pos,
		Segments: segments,
	}
}

// TransformerNode names a formatter and carries its raw, untyped argument
// fragments (*TextNode, *SpanNode or *VariableNode).
type TransformerNode struct {
	pos  Position
	Name string
	Args []Node
}

// Type returns NodeTypeTransformer
func (n *TransformerNode) Type() NodeType {
	return NodeTypeTransformer
}

// Pos returns the source position
func (n *TransformerNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *TransformerNode) String() string {
	return fmt.Sprintf("TransformerNode{%s, args=%d @ %s}", n.Name, len(n.Args), n.pos)
}

// NewTransformerNode creates a new transformer node
func NewTransformerNode(name string, args []Node, pos Position) *TransformerNode {
	return &TransformerNode{
		pos:  pos,
		Name: name,
		Args: args,
	}
}

// VariableNode is a {path} or {path, formatter, args} placeholder.
// Path is either a *PathNode or a *LiteralNode.
type VariableNode struct {
	pos         Position
	Path        Node
	Transformer *TransformerNode
}

// Type returns NodeTypeVariable
func (n *VariableNode) Type() NodeType {
	return NodeTypeVariable
}

// Pos returns the source position
func (n *VariableNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *VariableNode) String() string {
	if n.Transformer == nil {
		return fmt.Sprintf("VariableNode{%s @ %s}", n.Path, n.pos)
	}
	return fmt.Sprintf("VariableNode{%s, %s @ %s}", n.Path, n.Transformer, n.pos)
}

// HasTransformer returns true if the variable names a formatter
func (n *VariableNode) HasTransformer() bool {
	return n.Transformer != nil
}

// NewVariableNode creates a new variable node
func NewVariableNode(path Node, transformer *TransformerNode, pos Position) *VariableNode {
	return &VariableNode{
		pos:         pos,
		Path:        path,
		Transformer: transformer,
	}
}

// SpanNode holds the content between a matched delimiter pair inside
// transformer arguments. The delimiters themselves are separate TextNode
// fragments on either side of the span.
type SpanNode struct {
	pos      Position
	Children []Node
}

// Type returns NodeTypeSpan
func (n *SpanNode) Type() NodeType {
	return NodeTypeSpan
}

// Pos returns the source position
func (n *SpanNode) Pos() Position {
	return n.pos
}

// String returns a string representation
func (n *SpanNode) String() string {
	return fmt.Sprintf("SpanNode{children=%d @ %s}", len(n.Children), n.pos)
}

// NewSpanNode creates a new span node
func NewSpanNode(children []Node, pos Position) *SpanNode {
	return &SpanNode{
		pos:      pos,
		Children: children,
	}
}

// Variables returns every variable in the message, including variables nested
// inside transformer arguments, in document order.
func (n *MessageNode) Variables() []*VariableNode {
	var vars []*VariableNode
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, node := range nodes {
			switch v := node.(type) {
			case *VariableNode:
				vars = append(vars, v)
				if v.Transformer != nil {
					walk(v.Transformer.Args)
				}
			case *SpanNode:
				walk(v.Children)
			}
		}
	}
	walk(n.Children)
	return vars
}
