package tree

import (
	"errors"
	"fmt"

	"mdflow/markup"
)

var (
	// ErrStructuralMismatch is reported when closing tag does not match
	// innermost open tag.
	ErrStructuralMismatch = errors.New("structural mismatch")
	// ErrUnclosedTag is reported for every tag still open at end of stream.
	ErrUnclosedTag = errors.New("unclosed tag")
	// ErrUnknownTag is reported for tags outside of vocabulary.
	ErrUnknownTag = errors.New("unknown tag")
)

// MismatchError describes closing tag which does not match innermost open
// element. Expected is TagRoot when nothing was open.
type MismatchError struct {
	Expected markup.Tag
	Found    markup.Tag
}

func (e *MismatchError) Error() string {
	if e.Expected == markup.TagRoot {
		return fmt.Sprintf("%s: found closing %q tag with no open element", ErrStructuralMismatch, e.Found)
	}
	return fmt.Sprintf("%s: expected closing %q tag but found %q", ErrStructuralMismatch, e.Expected, e.Found)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrStructuralMismatch
}

// UnclosedError describes element left open at the end of stream.
type UnclosedError struct {
	Tag markup.Tag
}

func (e *UnclosedError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnclosedTag, e.Tag)
}

func (e *UnclosedError) Is(target error) bool {
	return target == ErrUnclosedTag
}

// UnknownTagError describes tag name outside of vocabulary.
type UnknownTagError struct {
	Name    string
	Closing bool
}

func (e *UnknownTagError) Error() string {
	kind := "start"
	if e.Closing {
		kind = "end"
	}
	return fmt.Sprintf("%s: missing implementation for %s tag %q", ErrUnknownTag, kind, e.Name)
}

func (e *UnknownTagError) Is(target error) bool {
	return target == ErrUnknownTag
}
