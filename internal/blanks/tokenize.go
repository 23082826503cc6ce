// Package blanks implements the fill-in-the-blanks template tokenizer and
// the word-pool/slot assignment state used by the quiz player.
package blanks

import "strings"

// Token is one piece of a tokenized template: either a literal text run or
// a blank slot. Blanks are numbered by left-to-right appearance order.
type Token struct {
	IsBlank bool
	Text    string // literal text, empty for blanks
	Index   int    // blank index, zero for literals
	Correct string // expected word, empty for literals
}

// Template is the tokenized form of a blank template string.
type Template struct {
	Tokens       []Token
	CorrectWords []string // blank answers in appearance order
}

// Blanks returns the number of blank slots in the template.
func (t Template) Blanks() int {
	return len(t.CorrectWords)
}

// Tokenize splits a template on {word} groups. Text between braces becomes
// a blank token with interior whitespace trimmed; everything else is kept
// as literal runs. An unterminated "{" is treated as literal text rather
// than an error, so malformed input degrades instead of failing.
func Tokenize(template string) Template {
	var out Template
	rest := template

	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			out.Tokens = append(out.Tokens, Token{Text: rest})
			break
		}

		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			// No matching brace: the remainder is literal.
			out.Tokens = append(out.Tokens, Token{Text: rest})
			break
		}
		closing += open

		if open > 0 {
			out.Tokens = append(out.Tokens, Token{Text: rest[:open]})
		}

		word := strings.TrimSpace(rest[open+1 : closing])
		out.Tokens = append(out.Tokens, Token{
			IsBlank: true,
			Index:   len(out.CorrectWords),
			Correct: word,
		})
		out.CorrectWords = append(out.CorrectWords, word)

		rest = rest[closing+1:]
	}

	return out
}

// Reconstruct rebuilds the template string from its tokens: literal text
// verbatim, blanks as "{word}". Tokenizing the result yields the same
// template again.
func (t Template) Reconstruct() string {
	var b strings.Builder
	for _, tok := range t.Tokens {
		if tok.IsBlank {
			b.WriteByte('{')
			b.WriteString(tok.Correct)
			b.WriteByte('}')
		} else {
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}
