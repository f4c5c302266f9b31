package parser

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cxxxr/chainsort/lib/chain"
	"github.com/pkg/errors"
)

type Tokenizer struct{}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

func isSeparator(c rune) bool {
	return unicode.IsSpace(c) || c == ','
}

// Tokenize splits text on whitespace, commas and "->" arrows.
func (t *Tokenizer) Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ReplaceAll(text, "->", " "), isSeparator)
}

// Parse reads a chain of ints written as "45 -> 1 -> 21 -> 5", "3,1,2" or
// "2 1 2". Blank text is the empty chain.
func Parse(text string) (*chain.Node[int], error) {
	return ParseTokens(NewTokenizer().Tokenize(text))
}

func ParseTokens(tokens []string) (*chain.Node[int], error) {
	values := make([]int, 0, len(tokens))
	for _, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid chain value %q", token)
		}
		values = append(values, v)
	}
	return chain.FromSlice(values), nil
}
