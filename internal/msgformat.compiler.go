package internal

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// RenderFunc renders a compiled message against a data record
type RenderFunc func(data map[string]any) (string, error)

// segmentFunc renders one piece of a message
type segmentFunc func(data map[string]any) (string, error)

// valueFunc resolves a path to a value; it never fails
type valueFunc func(data map[string]any) any

// argFunc produces one formatter argument fragment
type argFunc func(data map[string]any) (any, error)

// Compiler turns a message AST into a tree of closures. Formatter names are
// looked up when the closure runs, not when it is built, so a message may
// reference a formatter that is registered after compilation.
type Compiler struct {
	registry *Registry
	locale   language.Tag
	logger   *zap.Logger
}

// NewCompiler creates a compiler bound to a registry and locale
func NewCompiler(registry *Registry, locale language.Tag, logger *zap.Logger) *Compiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Compiler{
		registry: registry,
		locale:   locale,
		logger:   logger,
	}
}

// Compile builds the render function for msg
func (c *Compiler) Compile(msg *MessageNode) RenderFunc {
	c.logger.Debug(LogMsgCompileStart,
		zap.Int(LogFieldNodes, len(msg.Children)),
		zap.String(LogFieldLocale, c.locale.String()))

	segments := make([]segmentFunc, 0, len(msg.Children))
	for _, child := range msg.Children {
		segments = append(segments, c.compileSegment(child))
	}

	c.logger.Debug(LogMsgCompileEnd)

	return func(data map[string]any) (string, error) {
		var sb strings.Builder
		for _, segment := range segments {
			out, err := segment(data)
			if err != nil {
				return StringValueEmpty, err
			}
			sb.WriteString(out)
		}
		return sb.String(), nil
	}
}

// compileSegment compiles a top-level message child
func (c *Compiler) compileSegment(node Node) segmentFunc {
	switch n := node.(type) {
	case *TextNode:
		content := n.Content
		return func(map[string]any) (string, error) {
			return content, nil
		}
	case *VariableNode:
		return c.compileVariable(n)
	}
	text := node.String()
	return func(map[string]any) (string, error) {
		return text, nil
	}
}

// compileVariable compiles '{' PATH TRANSFORMER? '}'
func (c *Compiler) compileVariable(node *VariableNode) segmentFunc {
	resolve := c.compilePath(node.Path)

	if !node.HasTransformer() {
		return func(data map[string]any) (string, error) {
			return Stringify(resolve(data)), nil
		}
	}

	name := node.Transformer.Name
	pos := node.Transformer.Pos()
	args := make([]argFunc, 0, len(node.Transformer.Args))
	for _, arg := range node.Transformer.Args {
		args = append(args, c.compileArg(arg))
	}
	locale := c.locale

	return func(data map[string]any) (string, error) {
		formatter, ok := c.registry.Get(name)
		if !ok {
			c.logger.Debug(LogMsgFormatterMissing,
				zap.String(LogFieldFormatter, name),
				zap.String(LogFieldPosition, pos.String()))
			return StringValueEmpty, &FormatterError{
				Message:  ErrMsgUnknownFormatter,
				Name:     name,
				Position: pos,
			}
		}

		values := make([]any, 0, len(args))
		for _, arg := range args {
			v, err := arg(data)
			if err != nil {
				return StringValueEmpty, err
			}
			values = append(values, v)
		}
		return formatter(resolve(data), locale, values...), nil
	}
}

// compilePath compiles a path expression. A single named segment resolves
// with a direct lookup; longer paths walk the record segment by segment,
// where bracketed segments are themselves resolved to produce the key.
func (c *Compiler) compilePath(node Node) valueFunc {
	switch n := node.(type) {
	case *LiteralNode:
		value := n.Value
		return func(map[string]any) any {
			return value
		}
	case *PathNode:
		if len(n.Segments) == 1 {
			if lit, ok := n.Segments[0].(*LiteralNode); ok {
				key := lit.Value
				return func(data map[string]any) any {
					if v, ok := data[key]; ok {
						return v
					}
					return Undefined
				}
			}
		}

		keys := make([]valueFunc, 0, len(n.Segments))
		for _, segment := range n.Segments {
			keys = append(keys, c.compilePath(segment))
		}
		return func(data map[string]any) any {
			resolved := make([]any, len(keys))
			for i, key := range keys {
				resolved[i] = key(data)
			}
			return Resolve(data, resolved, Undefined)
		}
	}
	return func(map[string]any) any {
		return Undefined
	}
}

// compileArg compiles a formatter argument fragment. Text stays a string,
// spans become nested []any, and variables render to their output string.
func (c *Compiler) compileArg(node Node) argFunc {
	switch n := node.(type) {
	case *TextNode:
		content := n.Content
		return func(map[string]any) (any, error) {
			return content, nil
		}
	case *SpanNode:
		children := make([]argFunc, 0, len(n.Children))
		for _, child := range n.Children {
			children = append(children, c.compileArg(child))
		}
		return func(data map[string]any) (any, error) {
			items := make([]any, 0, len(children))
			for _, child := range children {
				v, err := child(data)
				if err != nil {
					return nil, err
				}
				items = append(items, v)
			}
			return items, nil
		}
	case *VariableNode:
		render := c.compileVariable(n)
		return func(data map[string]any) (any, error) {
			out, err := render(data)
			if err != nil {
				return nil, err
			}
			return out, nil
		}
	}
	text := node.String()
	return func(map[string]any) (any, error) {
		return text, nil
	}
}
