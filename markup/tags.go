// Package markup is the tag vocabulary: it resolves raw HTML tag names into a
// closed set of recognized tags and raw attributes into typed attributes.
package markup

import (
	"strings"
)

// Tag is a recognized element kind.
type Tag int

const (
	TagRoot Tag = iota
	TagAnchor
	TagBlockQuote
	TagBold
	TagBreak
	TagCode
	TagDetails
	TagDiv
	TagItalic
	TagH1
	TagH2
	TagH3
	TagH4
	TagH5
	TagH6
	TagHorizontalRule
	TagImage
	TagInput
	TagListItem
	TagOrderedList
	TagParagraph
	TagPicture
	TagPreformatted
	TagSection
	TagSmall
	TagSource
	TagSpan
	TagStrikethrough
	TagSummary
	TagTable
	TagTableBody
	TagTableDataCell
	TagTableHead
	TagTableHeader
	TagTableRow
	TagUnderline
	TagUnorderedList
)

var tagNames = [...]string{
	TagRoot:           "root",
	TagAnchor:         "a",
	TagBlockQuote:     "blockquote",
	TagBold:           "b",
	TagBreak:          "br",
	TagCode:           "code",
	TagDetails:        "details",
	TagDiv:            "div",
	TagItalic:         "i",
	TagH1:             "h1",
	TagH2:             "h2",
	TagH3:             "h3",
	TagH4:             "h4",
	TagH5:             "h5",
	TagH6:             "h6",
	TagHorizontalRule: "hr",
	TagImage:          "img",
	TagInput:          "input",
	TagListItem:       "li",
	TagOrderedList:    "ol",
	TagParagraph:      "p",
	TagPicture:        "picture",
	TagPreformatted:   "pre",
	TagSection:        "section",
	TagSmall:          "small",
	TagSource:         "source",
	TagSpan:           "span",
	TagStrikethrough:  "s",
	TagSummary:        "summary",
	TagTable:          "table",
	TagTableBody:      "tbody",
	TagTableDataCell:  "td",
	TagTableHead:      "thead",
	TagTableHeader:    "th",
	TagTableRow:       "tr",
	TagUnderline:      "u",
	TagUnorderedList:  "ul",
}

// String returns canonical tag name.
func (t Tag) String() string {
	if t >= 0 && int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// tagsByName maps every accepted spelling to a tag, synonyms included.
var tagsByName = map[string]Tag{
	"a":          TagAnchor,
	"blockquote": TagBlockQuote,
	"b":          TagBold,
	"strong":     TagBold,
	"br":         TagBreak,
	"code":       TagCode,
	"details":    TagDetails,
	"div":        TagDiv,
	"em":         TagItalic,
	"i":          TagItalic,
	"h1":         TagH1,
	"h2":         TagH2,
	"h3":         TagH3,
	"h4":         TagH4,
	"h5":         TagH5,
	"h6":         TagH6,
	"hr":         TagHorizontalRule,
	"img":        TagImage,
	"input":      TagInput,
	"li":         TagListItem,
	"ol":         TagOrderedList,
	"p":          TagParagraph,
	"picture":    TagPicture,
	"pre":        TagPreformatted,
	"section":    TagSection,
	"small":      TagSmall,
	"source":     TagSource,
	"span":       TagSpan,
	"s":          TagStrikethrough,
	"del":        TagStrikethrough,
	"strike":     TagStrikethrough,
	"summary":    TagSummary,
	"table":      TagTable,
	"tbody":      TagTableBody,
	"td":         TagTableDataCell,
	"thead":      TagTableHead,
	"th":         TagTableHeader,
	"tr":         TagTableRow,
	"u":          TagUnderline,
	"ins":        TagUnderline,
	"ul":         TagUnorderedList,
}

// Lookup resolves raw tag name (case insensitive). The second result is false
// for tags outside of the vocabulary.
func Lookup(name string) (Tag, bool) {
	t, ok := tagsByName[strings.ToLower(name)]
	return t, ok
}

// IsVoid reports whether element never has content and so never has a
// matching end tag.
func (t Tag) IsVoid() bool {
	switch t {
	case TagBreak, TagHorizontalRule, TagImage, TagInput, TagSource:
		return true
	}
	return false
}

// HeadingLevel returns 1-6 for heading tags.
func (t Tag) HeadingLevel() (int, bool) {
	if t >= TagH1 && t <= TagH6 {
		return int(t-TagH1) + 1, true
	}
	return 0, false
}

// SizeMultiplier returns font size multiplier for headings and 1 for
// everything else.
func (t Tag) SizeMultiplier() float32 {
	switch t {
	case TagH1:
		return 2.0
	case TagH2:
		return 1.5
	case TagH3:
		return 1.17
	case TagH4:
		return 1.0
	case TagH5:
		return 0.83
	case TagH6:
		return 0.67
	}
	return 1.0
}
