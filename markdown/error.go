package markdown

import "errors"

var (
	ErrBadAttr     = errors.New("invalid style attribute")
	ErrFrontMatter = errors.New("invalid front matter")
	ErrRender      = errors.New("could not render markdown")
)
