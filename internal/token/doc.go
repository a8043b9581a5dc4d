// Package token defines the lexical token kinds of the Core language.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Token.Value is the decoded payload: identifier text, number text as parsed,
//     or the unescaped string contents.
//   - There are no keywords; primitive type names and `auto` are identifiers.
//   - EOF is never part of the token sequence returned by lexer.Scan, it is
//     only produced by Lexer.Next.
package token
