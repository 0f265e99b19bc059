// Package css understands inline style attributes produced by markdown
// transpilers and syntax highlighters.
package css

import (
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"mdflow/common"
)

// Parser parses inline CSS declarations.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseDeclarations parses content of style attribute into ordered list of
// declarations. Custom properties are skipped.
func (p *Parser) ParseDeclarations(style string) []Declaration {
	if strings.TrimSpace(style) == "" {
		return nil
	}

	parser := css.NewParser(parse.NewInput(strings.NewReader(style)), true)

	var decls []Declaration
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.String("style", style), zap.Error(parser.Err()))
			}
			return decls

		case css.DeclarationGrammar:
			values, important := stripImportant(parser.Values())
			if len(values) == 0 {
				continue
			}
			decls = append(decls, Declaration{
				Property:  strings.ToLower(string(data)),
				Value:     p.parsePropertyValue(values),
				Important: important,
			})

		case css.CustomPropertyGrammar:
			continue
		}
	}
}

// ParseInline parses style attribute and resolves declarations into
// InlineStyle. Later declarations win.
func (p *Parser) ParseInline(style string) InlineStyle {
	var st InlineStyle
	for _, d := range p.ParseDeclarations(style) {
		switch d.Property {
		case "color":
			if c, ok := ParseColor(d.Value.Raw); ok {
				st.Color = &c
			} else {
				p.log.Debug("Unable to parse color", zap.String("value", d.Value.Raw))
			}
		case "background-color", "background":
			if c, ok := ParseColor(d.Value.Raw); ok {
				st.BackgroundColor = &c
			} else {
				p.log.Debug("Unable to parse background color", zap.String("value", d.Value.Raw))
			}
		case "font-weight":
			st.FontWeight = parseFontWeight(d.Value)
		case "font-style":
			st.FontStyle = parseFontStyle(d.Value)
		case "text-decoration", "text-decoration-line":
			st.TextDecoration = parseTextDecoration(d.Value)
		case "text-align":
			if al, err := common.ParseAlign(d.Value.Keyword); err == nil {
				st.TextAlign = &al
			}
		default:
			p.log.Debug("Ignoring inline style property", zap.String("property", d.Property), zap.String("value", d.Value.Raw))
		}
	}
	return st
}

// stripImportant trims surrounding whitespace and trailing !important.
func stripImportant(tokens []css.Token) ([]css.Token, bool) {
	for len(tokens) > 0 && tokens[0].TokenType == css.WhitespaceToken {
		tokens = tokens[1:]
	}
	end := len(tokens)
	for end > 0 && tokens[end-1].TokenType == css.WhitespaceToken {
		end--
	}
	if end >= 2 && tokens[end-1].TokenType == css.IdentToken &&
		strings.EqualFold(string(tokens[end-1].Data), "important") {
		i := end - 2
		for i >= 0 && tokens[i].TokenType == css.WhitespaceToken {
			i--
		}
		if i >= 0 && tokens[i].TokenType == css.DelimToken && string(tokens[i].Data) == "!" {
			return tokens[:i], true
		}
	}
	return tokens[:end], false
}

// parsePropertyValue converts CSS tokens to a Value.
func (p *Parser) parsePropertyValue(tokens []css.Token) Value {
	if len(tokens) == 0 {
		return Value{}
	}

	// Build raw value string
	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			rawParts = append(rawParts, " ")
		}
	}
	raw := strings.TrimSpace(strings.Join(rawParts, ""))

	val := Value{Raw: raw}

	if len(tokens) == 1 || (len(tokens) == 2 && tokens[1].TokenType == css.WhitespaceToken) {
		t := tokens[0]
		switch t.TokenType {
		case css.DimensionToken:
			val.Value, val.Unit = parseDimension(string(t.Data))
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(string(t.Data), 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(string(t.Data))
		case css.StringToken:
			val.Keyword = unquote(string(t.Data))
		case css.HashToken:
			val.Keyword = string(t.Data)
		}
		return val
	}

	// functions (rgb(), url()) and multi-value properties keep raw value
	val.Keyword = raw
	return val
}

// parseDimension extracts numeric value and unit from dimension token.
func parseDimension(s string) (float64, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || r == '-' || r == '+' {
			numEnd = i + 1
		} else {
			break
		}
	}

	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}

func parseFontWeight(v Value) FontWeight {
	switch v.Keyword {
	case "bold", "bolder":
		return FontWeightBold
	case "normal", "lighter":
		return FontWeightNormal
	}
	if v.IsNumeric() {
		if v.Value >= 600 {
			return FontWeightBold
		}
		return FontWeightNormal
	}
	return FontWeightUnset
}

func parseFontStyle(v Value) FontStyle {
	switch v.Keyword {
	case "italic", "oblique":
		return FontStyleItalic
	case "normal":
		return FontStyleNormal
	}
	return FontStyleUnset
}

func parseTextDecoration(v Value) TextDecoration {
	// shorthand may carry color and style as well, first line keyword wins
	for f := range strings.FieldsSeq(strings.ToLower(v.Raw)) {
		switch f {
		case "underline":
			return TextDecorationUnderline
		case "line-through":
			return TextDecorationLineThrough
		case "none":
			return TextDecorationNone
		}
	}
	return TextDecorationUnset
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
