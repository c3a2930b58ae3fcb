package markdown

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// Meta is the YAML front matter a document may open with.
type Meta struct {
	Title   string   `yaml:"title" json:"title,omitempty"`
	Summary string   `yaml:"summary" json:"summary,omitempty"`
	Tags    []string `yaml:"tags" json:"tags,omitempty"`
	Draft   bool     `yaml:"draft" json:"draft,omitempty"`
}

// A Document is Markdown source split from its front matter.
type Document struct {
	Meta Meta
	Body []byte
}

// ParseDocument splits src into its front matter and Markdown body.
// src without front matter becomes the Body as is.
func ParseDocument(src []byte) (Document, error) {
	var doc Document
	body, err := frontmatter.Parse(bytes.NewReader(src), &doc.Meta)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s", ErrFrontMatter, err)
	}

	doc.Body = body
	return doc, nil
}
