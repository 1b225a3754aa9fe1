package internal

// matchDelimiters consumes one matched delimiter pair starting at the cursor
// and returns it as three argument fragments: the opening delimiter text, a
// SpanNode with the content, and the closing delimiter text.
//
// Braces hold ARG_MESSAGE_CONTENT (which may contain variables). Brackets and
// parens nest every recognized pair, spliced one level into the span. Quotes
// never nest: their content is literal up to the next unescaped same quote.
//
// The caller guarantees the cursor is on an unescaped opening delimiter. The
// only failure is reaching end of input, which is fatal.
func (p *Parser) matchDelimiters() ([]Node, bool) {
	open := p.advance()
	closeType := closingDelimiters[open.Type]

	var content []Node
	switch open.Type {
	case TokenTypeLBrace:
		content = p.parseArgMessageContent()
		if p.err != nil {
			return nil, false
		}
	case TokenTypeLBracket, TokenTypeLParen:
		var ok bool
		content, ok = p.nestedContent(closeType)
		if !ok {
			return nil, false
		}
	default:
		content = p.literalContent(closeType)
	}

	if p.isAtEnd() || p.current().Type != closeType {
		p.err = newUnclosedDelimiterError(open)
		return nil, false
	}
	closing := p.advance()

	return []Node{
		p.textNode(open),
		NewSpanNode(content, open.Position),
		p.textNode(closing),
	}, true
}

// nestedContent consumes bracket or paren content up to the unescaped close
// token, recursing into nested delimiter pairs.
func (p *Parser) nestedContent(closeType TokenType) ([]Node, bool) {
	var content []Node
	for !p.isAtEnd() {
		tok := p.current()
		if tok.Type == closeType && !p.escaped() {
			break
		}
		if tok.IsOpenDelimiter() && !p.escaped() {
			span, ok := p.matchDelimiters()
			if !ok {
				return nil, false
			}
			content = append(content, span...)
			continue
		}
		content = append(content, p.textNode(p.advance()))
	}
	return content, true
}

// literalContent consumes quoted content up to the unescaped close quote
func (p *Parser) literalContent(closeType TokenType) []Node {
	var content []Node
	for !p.isAtEnd() {
		tok := p.current()
		if tok.Type == closeType && !p.escaped() {
			break
		}
		content = append(content, p.textNode(p.advance()))
	}
	return content
}
