package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Parser produces a message AST from a token stream.
//
// The grammar is recursive descent with ordered alternation: every rule either
// succeeds and advances, or fails and leaves the cursor where it started, so
// the next alternative sees the same input. Unclosed delimiters inside
// formatter arguments are fatal and abort the whole parse.
type Parser struct {
	tokens   []Token
	pos      int
	logger   *zap.Logger
	err      *ParseError // fatal error, aborts all alternatives
	farthest *ParseError // deepest recoverable failure, reported on trailing input
}

// NewParser creates a new parser for the given token stream
func NewParser(tokens []Token, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgParserCreated, zap.Int(LogFieldTokens, len(tokens)))
	return &Parser{
		tokens: tokens,
		pos:    0,
		logger: logger,
	}
}

// Parse tokenizes and parses source in one step
func Parse(source string, logger *zap.Logger) (*MessageNode, error) {
	tokens := NewLexer(source, logger).Tokenize()
	return NewParser(tokens, logger).Parse()
}

// Parse parses a MESSAGE and requires that it consumes the entire input
func (p *Parser) Parse() (*MessageNode, error) {
	p.logger.Debug(LogMsgParserStart)

	msg := p.parseMessage()
	if p.err != nil {
		p.logger.Debug(LogMsgParserFailed, zap.String(LogFieldError, p.err.Error()))
		return nil, p.err
	}

	if !p.isAtEnd() {
		err := p.trailingInputError()
		p.logger.Debug(LogMsgParserFailed, zap.String(LogFieldError, err.Error()))
		return nil, err
	}

	p.logger.Debug(LogMsgParserEnd, zap.Int(LogFieldNodes, len(msg.Children)))
	return msg, nil
}

// parseMessage parses MESSAGE: whitespace, variables and any other character,
// accumulated into text runs interleaved with variables.
func (p *Parser) parseMessage() *MessageNode {
	msg := &MessageNode{}
	text := newTextRun()

	for !p.isAtEnd() {
		tok := p.current()

		if p.isEscapedBraceAhead() {
			p.advance() // drop the backslash
			text.add(p.advance())
			continue
		}

		if tok.Type == TokenTypeLBrace && !p.escaped() {
			v, ok := p.parseVariable()
			if p.err != nil {
				return msg
			}
			if !ok {
				break
			}
			msg.Children = text.flush(msg.Children)
			msg.Children = append(msg.Children, v)
			continue
		}

		text.add(p.advance())
	}

	msg.Children = text.flush(msg.Children)
	return msg
}

// parseVariable parses VARIABLE: '{' PATH TRANSFORMER? '}'
func (p *Parser) parseVariable() (*VariableNode, bool) {
	start := p.pos
	open := p.current()
	if open.Type != TokenTypeLBrace || p.escaped() {
		return nil, false
	}
	p.advance()

	path, ok := p.parsePath()
	if !ok {
		p.failUnclosed(open)
		p.pos = start
		return nil, false
	}

	transformer, _ := p.parseTransformer()
	if p.err != nil {
		return nil, false
	}

	if _, ok := p.expectUnescaped(TokenTypeRBrace); !ok {
		p.failUnclosed(open)
		p.pos = start
		return nil, false
	}

	return NewVariableNode(path, transformer, open.Position), true
}

// parsePathSegment parses PATH_SEGMENT: Identifier | '[' PATH ']'
func (p *Parser) parsePathSegment() (Node, bool) {
	if id, ok := p.expect(TokenTypeIdentifier); ok {
		return NewLiteralNode(id.Value, id.Position), true
	}
	return p.parseBracketPath()
}

// parseBracketPath parses '[' PATH ']'
func (p *Parser) parseBracketPath() (Node, bool) {
	start := p.pos
	if _, ok := p.expect(TokenTypeLBracket); !ok {
		return nil, false
	}
	inner, ok := p.parsePath()
	if !ok {
		p.pos = start
		return nil, false
	}
	if _, ok := p.expect(TokenTypeRBracket); !ok {
		p.pos = start
		return nil, false
	}
	return inner, true
}

// parsePath parses PATH: PATH_SEGMENT ('.' Identifier | '[' PATH ']')*.
// A single all-digit segment is returned as a bare LiteralNode.
func (p *Parser) parsePath() (Node, bool) {
	first, ok := p.parsePathSegment()
	if !ok {
		return nil, false
	}
	segments := []Node{first}

	for {
		save := p.pos
		if _, ok := p.expect(TokenTypeDot); ok {
			if id, ok := p.expect(TokenTypeIdentifier); ok {
				segments = append(segments, NewLiteralNode(id.Value, id.Position))
				continue
			}
		}
		p.pos = save

		if seg, ok := p.parseBracketPath(); ok {
			segments = append(segments, seg)
			continue
		}
		p.pos = save
		break
	}

	if lit, ok := first.(*LiteralNode); ok && len(segments) == 1 && isAllDigits(lit.Value) {
		return lit, true
	}
	return NewPathNode(segments, first.Pos()), true
}

// parseTransformer parses TRANSFORMER: ',' Identifier ARGS*
func (p *Parser) parseTransformer() (*TransformerNode, bool) {
	start := p.pos
	comma, ok := p.expect(TokenTypeComma)
	if !ok {
		return nil, false
	}
	name, ok := p.expect(TokenTypeIdentifier)
	if !ok {
		p.pos = start
		return nil, false
	}

	var args []Node
	for {
		chunk, ok := p.parseArgs()
		if p.err != nil {
			return nil, false
		}
		if !ok {
			break
		}
		args = append(args, chunk...)
	}

	return NewTransformerNode(name.Value, compactArgs(args), comma.Position), true
}

// parseArgs parses ARGS: ',' whitespace* (whitespace | delimited span | any)+
// terminated by lookahead at an unescaped '}'. Internal commas do not split
// the blob.
func (p *Parser) parseArgs() ([]Node, bool) {
	start := p.pos
	if _, ok := p.expect(TokenTypeComma); !ok {
		return nil, false
	}
	for p.current().IsWhitespace() {
		p.advance()
	}

	var items []Node
	for !p.isAtEnd() {
		tok := p.current()
		if tok.Type == TokenTypeRBrace && !p.escaped() {
			break
		}
		if tok.IsOpenDelimiter() && !p.escaped() {
			span, ok := p.matchDelimiters()
			if !ok {
				return nil, false
			}
			items = append(items, span...)
			continue
		}
		items = append(items, p.textNode(p.advance()))
	}

	if len(items) == 0 || p.isAtEnd() {
		p.fail(tokenDescription(TokenTypeRBrace))
		p.pos = start
		return nil, false
	}
	return items, true
}

// parseArgMessageContent parses ARG_MESSAGE_CONTENT, the body of a '{...}'
// span inside arguments: whitespace, variables and any character up to an
// unescaped '}'.
func (p *Parser) parseArgMessageContent() []Node {
	var content []Node

	for !p.isAtEnd() {
		tok := p.current()

		if p.isEscapedBraceAhead() {
			p.advance()
			content = append(content, p.textNode(p.advance()))
			continue
		}
		if tok.Type == TokenTypeRBrace {
			break
		}
		if tok.Type == TokenTypeLBrace {
			if v, ok := p.parseVariable(); ok {
				content = append(content, v)
				continue
			}
			if p.err != nil {
				return content
			}
		}
		content = append(content, p.textNode(p.advance()))
	}

	return content
}

// trailingInputError reports the deepest failure reached, or the token the
// message stopped at.
func (p *Parser) trailingInputError() *ParseError {
	tok := p.current()
	if p.farthest != nil && p.farthest.Position.Offset >= tok.Position.Offset {
		return p.farthest
	}
	return &ParseError{
		Message:  ErrMsgUnexpectedToken,
		Position: tok.Position,
		Actual:   tok.Value,
	}
}

// Token-level helpers

// current returns the token at the cursor
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// peekAt returns the token offset positions after the cursor
func (p *Parser) peekAt(offset int) Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

// advance consumes and returns the token at the cursor
func (p *Parser) advance() Token {
	tok := p.current()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

// isAtEnd returns true if the cursor sits on EOF
func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.tokens) || p.tokens[p.pos].IsEOF()
}

// escaped reports whether the token at the cursor is immediately preceded by
// a backslash.
func (p *Parser) escaped() bool {
	return p.pos > 0 && p.tokens[p.pos-1].Type == TokenTypeBackslash
}

// isEscapedBraceAhead reports whether the cursor is on a backslash directly
// followed by a brace.
func (p *Parser) isEscapedBraceAhead() bool {
	if p.current().Type != TokenTypeBackslash {
		return false
	}
	next := p.peekAt(1)
	return next.Type == TokenTypeLBrace || next.Type == TokenTypeRBrace
}

// expect skips structural whitespace and consumes a token of the given type.
// On failure the cursor is restored and the failure recorded.
func (p *Parser) expect(tt TokenType) (Token, bool) {
	start := p.pos
	for p.current().IsWhitespace() {
		p.advance()
	}
	tok := p.current()
	if tok.Type != tt {
		p.fail(tokenDescription(tt))
		p.pos = start
		return Token{}, false
	}
	return p.advance(), true
}

// expectUnescaped is expect for a token that must not follow a backslash
func (p *Parser) expectUnescaped(tt TokenType) (Token, bool) {
	start := p.pos
	tok, ok := p.expect(tt)
	if !ok {
		return Token{}, false
	}
	if p.pos >= 2 && p.tokens[p.pos-2].Type == TokenTypeBackslash {
		p.fail(tokenDescription(tt))
		p.pos = start
		return Token{}, false
	}
	return tok, true
}

// fail records a recoverable failure at the cursor if it is the deepest so far
func (p *Parser) fail(expected string) {
	tok := p.current()
	if p.farthest != nil && p.farthest.Position.Offset > tok.Position.Offset {
		return
	}
	actual := tok.Value
	if tok.IsEOF() {
		actual = string(TokenTypeEOF)
	}
	p.farthest = &ParseError{
		Message:  ErrMsgExpectedToken,
		Position: tok.Position,
		Expected: expected,
		Actual:   actual,
	}
}

// failUnclosed replaces a farthest failure that ran into the end of input
// after open with an unclosed delimiter error at open
func (p *Parser) failUnclosed(open Token) {
	if p.farthest == nil || p.farthest.Actual != string(TokenTypeEOF) ||
		p.farthest.Position.Offset <= open.Position.Offset {
		return
	}
	p.farthest = &ParseError{
		Message:   ErrMsgUnclosedDelimiter,
		Position:  open.Position,
		Expected:  tokenDescription(TokenTypeRBrace),
		Actual:    string(TokenTypeEOF),
		Delimiter: open.Value,
	}
}

// textNode converts a token into a raw text fragment
func (p *Parser) textNode(tok Token) *TextNode {
	return NewTextNode(tok.Value, tok.Position)
}

// textRun accumulates adjacent literal tokens into one TextNode
type textRun struct {
	sb    strings.Builder
	pos   Position
	empty bool
}

func newTextRun() *textRun {
	return &textRun{empty: true}
}

func (r *textRun) add(tok Token) {
	if r.empty {
		r.pos = tok.Position
		r.empty = false
	}
	r.sb.WriteString(tok.Value)
}

func (r *textRun) flush(nodes []Node) []Node {
	if r.empty {
		return nodes
	}
	nodes = append(nodes, NewTextNode(r.sb.String(), r.pos))
	r.sb.Reset()
	r.empty = true
	return nodes
}

// compactArgs drops empty text fragments from a transformer's argument list
func compactArgs(args []Node) []Node {
	out := args[:0:0]
	for _, arg := range args {
		if text, ok := arg.(*TextNode); ok && text.Content == StringValueEmpty {
			continue
		}
		out = append(out, arg)
	}
	return out
}

func isAllDigits(s string) bool {
	if s == StringValueEmpty {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
