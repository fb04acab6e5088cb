package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Error marks unrecognized input or an unterminated string literal.
	Error Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Whitespace is a coalesced run of ' ', '\t', '\r', '\n'.
	Whitespace
	// Ident is a maximal run of alphabetic characters.
	Ident
	// Literal is a maximal run of decimal digits.
	Literal
	// LineComment is "// ..." up to the newline.
	LineComment
	// BlockComment is "/* ... */", nesting allowed.
	BlockComment
	// CharLiteral is a single-quoted span.
	CharLiteral
	// StringLiteral is a double-quoted span.
	StringLiteral

	Semi         // ;
	Comma        // ,
	Dot          // .
	OpenParen    // (
	CloseParen   // )
	OpenBrace    // {
	CloseBrace   // }
	OpenBracket  // [
	CloseBracket // ]
	At           // @
	Pound        // #
	Tilde        // ~
	Question     // ?
	Colon        // :
	Dollar       // $
	Eq           // =
	Bang         // !
	Lt           // <
	Gt           // >
	Minus        // -
	And          // &
	Or           // |
	Plus         // +
	Star         // *
	Slash        // /
	Caret        // ^
	Percent      // %
)

var kindNames = [...]string{
	Error:         "Error",
	EOF:           "EOF",
	Whitespace:    "Whitespace",
	Ident:         "Ident",
	Literal:       "Literal",
	LineComment:   "LineComment",
	BlockComment:  "BlockComment",
	CharLiteral:   "CharLiteral",
	StringLiteral: "StringLiteral",
	Semi:          "Semi",
	Comma:         "Comma",
	Dot:           "Dot",
	OpenParen:     "OpenParen",
	CloseParen:    "CloseParen",
	OpenBrace:     "OpenBrace",
	CloseBrace:    "CloseBrace",
	OpenBracket:   "OpenBracket",
	CloseBracket:  "CloseBracket",
	At:            "At",
	Pound:         "Pound",
	Tilde:         "Tilde",
	Question:      "Question",
	Colon:         "Colon",
	Dollar:        "Dollar",
	Eq:            "Eq",
	Bang:          "Bang",
	Lt:            "Lt",
	Gt:            "Gt",
	Minus:         "Minus",
	And:           "And",
	Or:            "Or",
	Plus:          "Plus",
	Star:          "Star",
	Slash:         "Slash",
	Caret:         "Caret",
	Percent:       "Percent",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// punct maps every one-character punctuation rune to its kind.
// '/' is absent: the lexer decides between Slash and a comment.
var punct = map[rune]Kind{
	';': Semi,
	',': Comma,
	'.': Dot,
	'(': OpenParen,
	')': CloseParen,
	'{': OpenBrace,
	'}': CloseBrace,
	'[': OpenBracket,
	']': CloseBracket,
	'@': At,
	'#': Pound,
	'~': Tilde,
	'?': Question,
	':': Colon,
	'$': Dollar,
	'=': Eq,
	'!': Bang,
	'<': Lt,
	'>': Gt,
	'-': Minus,
	'&': And,
	'|': Or,
	'+': Plus,
	'*': Star,
	'^': Caret,
	'%': Percent,
}

// LookupPunct returns the one-character punctuation kind for r.
func LookupPunct(r rune) (Kind, bool) {
	k, ok := punct[r]
	return k, ok
}
