package internal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// AST builders for expected trees; positions are ignored in comparisons

func txt(s string) Node { return &TextNode{Content: s} }

func lit(s string) Node { return &LiteralNode{Value: s} }

func path(segments ...Node) Node { return &PathNode{Segments: segments} }

func span(children ...Node) Node { return &SpanNode{Children: children} }

func variable(p Node) *VariableNode { return &VariableNode{Path: p} }

func transformed(p Node, name string, args ...Node) *VariableNode {
	return &VariableNode{Path: p, Transformer: &TransformerNode{Name: name, Args: args}}
}

var ignorePositions = cmpopts.IgnoreUnexported(
	TextNode{}, LiteralNode{}, PathNode{}, TransformerNode{}, VariableNode{}, SpanNode{},
)

func assertAST(t *testing.T, expected []Node, msg *MessageNode) {
	t.Helper()
	if diff := cmp.Diff(expected, msg.Children, ignorePositions, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("AST mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Node
	}{
		{
			name:     "empty message",
			input:    "",
			expected: nil,
		},
		{
			name:     "plain text keeps whitespace",
			input:    "Hello,  world!\n",
			expected: []Node{txt("Hello,  world!\n")},
		},
		{
			name:     "simple variable",
			input:    "Hello {name}",
			expected: []Node{txt("Hello "), variable(path(lit("name")))},
		},
		{
			name:     "structural whitespace inside variable",
			input:    "{ name }",
			expected: []Node{variable(path(lit("name")))},
		},
		{
			name:     "dotted path",
			input:    "{a.b.c}",
			expected: []Node{variable(path(lit("a"), lit("b"), lit("c")))},
		},
		{
			name:     "index segment",
			input:    "{items[0]}",
			expected: []Node{variable(path(lit("items"), lit("0")))},
		},
		{
			name:     "computed segment",
			input:    "{a[b.c]}",
			expected: []Node{variable(path(lit("a"), path(lit("b"), lit("c"))))},
		},
		{
			name:     "bare numeric path is a literal",
			input:    "{0}",
			expected: []Node{variable(lit("0"))},
		},
		{
			name:     "transformer without args",
			input:    "{n, number}",
			expected: []Node{transformed(path(lit("n")), "number")},
		},
		{
			name:  "transformer args keep tokenized fragments",
			input: "{p, number, currency:EUR}",
			expected: []Node{
				transformed(path(lit("p")), "number", txt("currency"), txt(":"), txt("EUR")),
			},
		},
		{
			name:  "select options become spans",
			input: "{g, select, male{He} other{They}}",
			expected: []Node{
				transformed(path(lit("g")), "select",
					txt("male"), txt("{"), span(txt("He")), txt("}"),
					txt(" "),
					txt("other"), txt("{"), span(txt("They")), txt("}"),
				),
			},
		},
		{
			name:  "variables inside option content",
			input: "{g, select, a{Hi {name}}}",
			expected: []Node{
				transformed(path(lit("g")), "select",
					txt("a"), txt("{"),
					span(txt("Hi"), txt(" "), variable(path(lit("name")))),
					txt("}"),
				),
			},
		},
		{
			name:  "quoted argument is literal",
			input: "{a, fmt, '{x}'}",
			expected: []Node{
				transformed(path(lit("a")), "fmt",
					txt("'"), span(txt("{"), txt("x"), txt("}")), txt("'"),
				),
			},
		},
		{
			name:  "nested brackets and parens",
			input: "{a, fmt, [x(y)]}",
			expected: []Node{
				transformed(path(lit("a")), "fmt",
					txt("["), span(txt("x"), txt("("), span(txt("y")), txt(")")), txt("]"),
				),
			},
		},
		{
			name:     "escaped braces are literal text",
			input:    `\{literal\}`,
			expected: []Node{txt("{literal}")},
		},
		{
			name:     "lone closing brace is text",
			input:    "a}b",
			expected: []Node{txt("a}b")},
		},
		{
			name:     "other backslashes are kept",
			input:    `a\b`,
			expected: []Node{txt(`a\b`)},
		},
		{
			name:  "text between variables",
			input: "{a} and {b}",
			expected: []Node{
				variable(path(lit("a"))),
				txt(" and "),
				variable(path(lit("b"))),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Parse(tt.input, zap.NewNop())
			require.NoError(t, err)
			assertAST(t, tt.expected, msg)
		})
	}
}

func TestParser_Parse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter string
		expected  string
	}{
		{name: "unclosed variable", input: "Hello {name", delimiter: "{", expected: "'}'"},
		{name: "brace at end of input", input: "Hello {", delimiter: "{", expected: "'}'"},
		{name: "unclosed transformer", input: "{a, number", delimiter: "{", expected: "'}'"},
		{name: "empty variable", input: "Hi {}"},
		{name: "transformer without closing brace", input: "{a, select, x{y}"},
		{name: "unclosed paren in args", input: "{a, fmt, (b}", delimiter: "("},
		{name: "unclosed bracket in args", input: "{a, fmt, [b}", delimiter: "["},
		{name: "lone apostrophe in args", input: "{a, fmt, it's}", delimiter: "'"},
		{name: "escaped closing brace", input: `{a\}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Parse(tt.input, zap.NewNop())
			require.Error(t, err)
			assert.Nil(t, msg)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			if tt.delimiter != "" {
				assert.Equal(t, ErrMsgUnclosedDelimiter, parseErr.Message)
				assert.Equal(t, tt.delimiter, parseErr.Delimiter)
			}
			if tt.expected != "" {
				assert.Equal(t, tt.expected, parseErr.Expected)
			}
		})
	}
}

func TestParser_Parse_UnclosedBracePosition(t *testing.T) {
	_, err := Parse("Hi\nthere {name.first", zap.NewNop())
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, ErrMsgUnclosedDelimiter, parseErr.Message)
	assert.Equal(t, 2, parseErr.Position.Line)
	assert.Equal(t, 7, parseErr.Position.Column)
	assert.Contains(t, err.Error(), `"{"`)
}

func TestParser_Parse_ErrorPosition(t *testing.T) {
	_, err := Parse("line one\n{a, fmt, (open}", zap.NewNop())
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Position.Line)
	assert.Equal(t, 10, parseErr.Position.Column)
	assert.Contains(t, parseErr.Error(), "line 2, column 10")
}

func TestMessageNode_Variables(t *testing.T) {
	msg, err := Parse("{a} {g, select, x{{b}}}", zap.NewNop())
	require.NoError(t, err)

	vars := msg.Variables()
	require.Len(t, vars, 3)
	assert.Equal(t, "select", vars[1].Transformer.Name)
}
