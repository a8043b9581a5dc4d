package parser

import (
	"corec/internal/ast"
	"corec/internal/diag"
	"corec/internal/lexer"
	"corec/internal/source"
	"corec/internal/token"
)

// DefaultMaxDepth bounds expression/block nesting.
const DefaultMaxDepth = 256

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	MaxDepth      int
	Reporter      diag.Reporter
	// Checkpoint runs after every top-level declaration; returning false
	// stops the parse (fail-fast, flood guard).
	Checkpoint func() bool
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Top    ast.TopLevelID
	Halted bool // parse stopped before EOF
	Errors uint
}

// Parser: состояние парсера на один файл
type Parser struct {
	file     *source.File
	toks     []token.Token
	pos      int
	eof      token.Token
	arenas   *ast.Builder
	top      ast.TopLevelID
	opts     Options
	lastSpan source.Span // span последнего съеденного токена
	depth    int
	halted   bool
	decls    map[source.StringID]source.Span
}

// ParseTokens builds the tree for toks, which must come from file and must
// not include EOF.
func ParseTokens(file *source.File, toks []token.Token, arenas *ast.Builder, opts Options) Result {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	eof := file.EOF()
	p := Parser{
		file:     file,
		toks:     toks,
		eof:      token.Token{Kind: token.EOF, Span: eof},
		arenas:   arenas,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
		decls:    make(map[source.StringID]source.Span),
	}
	p.top = arenas.NewTopLevel(source.Span{File: file.ID, Start: 0, End: eof.End})
	p.parseTopLevel()
	return Result{Top: p.top, Halted: p.halted, Errors: p.opts.CurrentErrors}
}

// ParseFile scans and parses file in one go, sharing opts.Reporter.
func ParseFile(file *source.File, arenas *ast.Builder, opts Options) Result {
	toks := lexer.Scan(file, lexer.Options{Reporter: opts.Reporter})
	return ParseTokens(file, toks, arenas, opts)
}

// parseTopLevel: основной цикл верхнего уровня.
func (p *Parser) parseTopLevel() {
	for !p.at(token.EOF) && !p.halted {
		before := p.pos
		itemID, ok := p.parseDecl()
		if !ok {
			p.resyncTop(before)
		} else {
			p.checkDuplicate(itemID)
			p.arenas.PushItem(p.top, itemID)
			p.expectDeclEnd(itemID)
		}
		if p.opts.Checkpoint != nil && !p.halted && !p.opts.Checkpoint() {
			p.halted = true
		}
	}
}

// expectDeclEnd: после декларации нужен ';', кроме EOF и функций
// (их тело закрыто '}').
func (p *Parser) expectDeclEnd(item ast.ItemID) {
	switch {
	case p.at(token.Semicolon):
		p.advance()
		return
	case p.at(token.EOF):
		return
	}
	if it := p.arenas.Items.Get(item); it != nil && it.Kind == ast.ItemFn {
		return
	}
	p.missingSemicolon()
	if !isDeclStart(p.peek().Kind) {
		p.resyncTop(-1)
	}
}

func (p *Parser) missingSemicolon() {
	tok := p.peek()
	hint := "missing semicolon?"
	if tok.Kind == token.RParen {
		hint = "missing LParen?"
	}
	p.errAt(diag.SynUnexpectedToken, tok.Span, "unexpected "+tok.Kind.String()).
		WithNote(p.lastSpan, hint).
		Emit()
}

// resyncTop прокручивает до ';' (съедая его), до '^' или '@' на нулевой
// глубине скобок, или до EOF. If the failed declaration consumed nothing,
// at least one token is skipped.
func (p *Parser) resyncTop(before int) {
	if p.pos == before && !p.at(token.EOF) {
		p.advance()
	}
	depth := 0
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case token.LParen, token.LBrace, token.LBracket:
			depth++
		case token.RParen, token.RBrace, token.RBracket:
			if depth > 0 {
				depth--
			}
		case token.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
		case token.Caret, token.At:
			if depth == 0 {
				return
			}
		}
		p.advance()
	}
}

func isDeclStart(k token.Kind) bool {
	switch k {
	case token.Caret, token.At, token.Star, token.Tilde, token.Ident:
		return true
	}
	return false
}

// checkDuplicate: имена переменных и функций верхнего уровня уникальны.
// The duplicate is still recorded by the caller.
func (p *Parser) checkDuplicate(item ast.ItemID) {
	name, sp, ok := p.arenas.Items.DeclName(item)
	if !ok || name == source.NoStringID {
		return
	}
	if first, seen := p.decls[name]; seen {
		p.errAt(diag.DeclDuplicate, sp, "`"+p.arenas.Name(name)+"` is already declared").
			WithNote(first, "previously declared here").
			Emit()
		return
	}
	p.decls[name] = sp
}
