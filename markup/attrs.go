package markup

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"mdflow/common"
)

// AttrKind is a recognized attribute meaning.
type AttrKind int

const (
	AttrHref AttrKind = iota
	AttrAnchor
	AttrStyle
	AttrAlign
	AttrIsCheckbox
	AttrIsChecked
	AttrStart
)

// Attr is a parsed attribute. Only fields relevant for Kind are set.
type Attr struct {
	Kind  AttrKind
	Value string       // href target, "#id" anchor, raw style string
	Start int          // ordered list start
	Align common.Align // align attribute
}

// ParseAttrs converts raw tokenizer attributes into typed ones preserving
// their order. Attributes outside of vocabulary or with unparsable values are
// dropped.
func ParseAttrs(raw []html.Attribute) []Attr {
	if len(raw) == 0 {
		return nil
	}
	attrs := make([]Attr, 0, len(raw))
	for _, a := range raw {
		switch strings.ToLower(a.Key) {
		case "href":
			attrs = append(attrs, Attr{Kind: AttrHref, Value: a.Val})
		case "id", "name":
			if a.Val != "" {
				attrs = append(attrs, Attr{Kind: AttrAnchor, Value: "#" + a.Val})
			}
		case "style":
			attrs = append(attrs, Attr{Kind: AttrStyle, Value: a.Val})
		case "align":
			if al, err := common.ParseAlign(strings.TrimSpace(a.Val)); err == nil {
				attrs = append(attrs, Attr{Kind: AttrAlign, Align: al})
			}
		case "type":
			if strings.EqualFold(a.Val, "checkbox") {
				attrs = append(attrs, Attr{Kind: AttrIsCheckbox})
			}
		case "checked":
			attrs = append(attrs, Attr{Kind: AttrIsChecked})
		case "start":
			if n, err := strconv.Atoi(strings.TrimSpace(a.Val)); err == nil {
				attrs = append(attrs, Attr{Kind: AttrStart, Start: n})
			}
		}
	}
	return attrs
}

// Find returns first attribute of requested kind.
func Find(attrs []Attr, kind AttrKind) (Attr, bool) {
	for _, a := range attrs {
		if a.Kind == kind {
			return a, true
		}
	}
	return Attr{}, false
}

// Has reports presence of attribute of requested kind.
func Has(attrs []Attr, kind AttrKind) bool {
	_, ok := Find(attrs, kind)
	return ok
}

func (a Attr) String() string {
	switch a.Kind {
	case AttrHref:
		return "href=" + strconv.Quote(a.Value)
	case AttrAnchor:
		return "anchor=" + strconv.Quote(a.Value)
	case AttrStyle:
		return "style=" + strconv.Quote(a.Value)
	case AttrAlign:
		return "align=" + a.Align.String()
	case AttrIsCheckbox:
		return "checkbox"
	case AttrIsChecked:
		return "checked"
	case AttrStart:
		return "start=" + strconv.Itoa(a.Start)
	}
	return "unknown"
}
