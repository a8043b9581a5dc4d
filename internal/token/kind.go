package token

// Kind is the tag of a token.
type Kind uint8

const (
	Invalid Kind = iota
	EOF

	IntLit    // 12
	FloatLit  // 1.5
	StringLit // "abc"
	Ident     // name

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	LBrace    // {
	RBrace    // }
	Bang      // !
	At        // @
	Hash      // #
	Dollar    // $
	Percent   // %
	Caret     // ^
	Amp       // &
	Assign    // =
	Pipe      // |
	Dot       // .
	Comma     // ,
	Lt        // <
	Gt        // >
	Semicolon // ;
	Colon     // :
	Tilde     // ~
	Question  // ?

	BangBang // !!
	EqEq     // ==
	BangEq   // !=
	LtEq     // <=
	GtEq     // >=
	AndAnd   // &&
	OrOr     // ||

	kindCount
)

// имена совпадают с тем, что видит пользователь в "unexpected X"
var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	IntLit:    "Int",
	FloatLit:  "Float",
	StringLit: "String",
	Ident:     "Identifier",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Asterisk",
	Slash:     "Slash",
	LParen:    "LParen",
	RParen:    "RParen",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	LBrace:    "LCurly",
	RBrace:    "RCurly",
	Bang:      "Bang",
	At:        "At",
	Hash:      "Hash",
	Dollar:    "Dollar",
	Percent:   "Percent",
	Caret:     "Caret",
	Amp:       "Ampersand",
	Assign:    "Equals",
	Pipe:      "VerticalBar",
	Dot:       "Dot",
	Comma:     "Comma",
	Lt:        "LCaret",
	Gt:        "RCaret",
	Semicolon: "Semicolon",
	Colon:     "Colon",
	Tilde:     "Tilde",
	Question:  "Question",
	BangBang:  "Assert",
	EqEq:      "DoubleEq",
	BangEq:    "NotEq",
	LtEq:      "LtEq",
	GtEq:      "GtEq",
	AndAnd:    "And",
	OrOr:      "Or",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

var singleChars = map[byte]Kind{
	'+': Plus, '-': Minus, '*': Star, '/': Slash,
	'(': LParen, ')': RParen, '[': LBracket, ']': RBracket,
	'{': LBrace, '}': RBrace, '!': Bang, '@': At,
	'#': Hash, '$': Dollar, '%': Percent, '^': Caret,
	'&': Amp, '=': Assign, '|': Pipe, '.': Dot,
	',': Comma, '<': Lt, '>': Gt, ';': Semicolon,
	':': Colon, '~': Tilde, '?': Question,
}

// Punct maps a single punctuation byte to its kind.
func Punct(b byte) (Kind, bool) {
	k, ok := singleChars[b]
	return k, ok
}

var pairs = map[[2]byte]Kind{
	{'!', '!'}: BangBang,
	{'=', '='}: EqEq,
	{'!', '='}: BangEq,
	{'<', '='}: LtEq,
	{'>', '='}: GtEq,
	{'&', '&'}: AndAnd,
	{'|', '|'}: OrOr,
}

// Pair maps a two-byte operator to its kind.
func Pair(a, b byte) (Kind, bool) {
	k, ok := pairs[[2]byte{a, b}]
	return k, ok
}
