package scaffold

import (
	"bytes"
	"fmt"

	"github.com/xy-planning-network/basecamp/route"
	"gopkg.in/yaml.v3"
)

// Kinds of page a manifest Entry declares.
const (
	KindDocs     = "docs"
	KindMarkdown = "markdown"
	KindTemplate = "template"
)

// An Entry declares one route of the manifest.
type Entry struct {
	ID       string `yaml:"id"`
	Path     string `yaml:"path,omitempty"`
	Title    string `yaml:"title"`
	Kind     string `yaml:"kind"`
	Template string `yaml:"template,omitempty"`
	Content  string `yaml:"content,omitempty"`
	Fallback bool   `yaml:"fallback,omitempty"`
	Hidden   bool   `yaml:"hidden,omitempty"`
}

// Valid checks the fields the Entry's kind requires.
func (e Entry) Valid() error {
	if e.ID == "" {
		return fmt.Errorf("%w: missing id", ErrNotValid)
	}

	if e.Title == "" {
		return fmt.Errorf("%w: %s: missing title", ErrNotValid, e.ID)
	}

	if e.Path == "" && !e.Fallback {
		return fmt.Errorf("%w: %s: missing path", ErrNotValid, e.ID)
	}

	switch e.Kind {
	case KindTemplate:
		if e.Template == "" {
			return fmt.Errorf("%w: %s: template page without a template", ErrNotValid, e.ID)
		}
	case KindMarkdown:
		if e.Content == "" {
			return fmt.Errorf("%w: %s: markdown page without content", ErrNotValid, e.ID)
		}
		fallthrough
	case KindDocs:
		if e.Hidden {
			return fmt.Errorf("%w: %s: only template pages can be hidden", ErrNotValid, e.ID)
		}
	default:
		return fmt.Errorf("%w: %s: unknown kind %q", ErrNotValid, e.ID, e.Kind)
	}

	return nil
}

// A Manifest is the declarative route table pages are generated from.
type Manifest struct {
	Routes []Entry `yaml:"routes"`

	// doc holds the parsed document so Marshal keeps comments and layout.
	doc *yaml.Node
}

// ParseManifest decodes the YAML manifest in b and validates it.
func ParseManifest(b []byte, opts ...route.Option) (*Manifest, error) {
	m := new(Manifest)
	doc := new(yaml.Node)
	if err := yaml.Unmarshal(b, doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotValid, err)
	}

	if len(doc.Content) > 0 {
		if err := doc.Decode(m); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNotValid, err)
		}
		m.doc = doc
	}

	if err := m.Validate(opts...); err != nil {
		return nil, err
	}

	return m, nil
}

// Definitions returns the route.Definitions the manifest declares, without components.
func (m *Manifest) Definitions() []route.Definition {
	defs := make([]route.Definition, len(m.Routes))
	for i, e := range m.Routes {
		defs[i] = route.Definition{ID: e.ID, Path: e.Path, Fallback: e.Fallback}
	}

	return defs
}

// Validate checks every Entry, then the route table they make up.
func (m *Manifest) Validate(opts ...route.Option) error {
	for _, e := range m.Routes {
		if err := e.Valid(); err != nil {
			return err
		}
	}

	if err := route.Validate(m.Definitions(), opts...); err != nil {
		return fmt.Errorf("%w: %w", ErrConflict, err)
	}

	return nil
}

// Append adds e after the declared entries, leaving them as they are.
// The manifest is unchanged when e is invalid or conflicts with it.
func (m *Manifest) Append(e Entry, opts ...route.Option) error {
	if err := e.Valid(); err != nil {
		return err
	}

	next := &Manifest{Routes: append(m.Routes[:len(m.Routes):len(m.Routes)], e)}
	if err := next.Validate(opts...); err != nil {
		return err
	}

	if m.doc != nil {
		node := new(yaml.Node)
		if err := node.Encode(e); err != nil {
			return fmt.Errorf("%w: %s", ErrNotValid, err)
		}

		seq, err := m.routesNode()
		if err != nil {
			return err
		}
		seq.Content = append(seq.Content, node)
	}

	m.Routes = next.Routes
	return nil
}

// Marshal encodes the manifest, keeping the comments it was parsed with.
func (m *Manifest) Marshal() ([]byte, error) {
	var v any = m
	if m.doc != nil {
		v = m.doc
	}

	buf := new(bytes.Buffer)
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// routesNode finds the sequence node under the "routes" key, adding one if missing.
func (m *Manifest) routesNode() (*yaml.Node, error) {
	root := m.doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: manifest is not a mapping", ErrNotValid)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "routes" {
			seq := root.Content[i+1]
			if seq.Kind == yaml.ScalarNode && seq.Tag == "!!null" {
				seq.Kind, seq.Tag, seq.Value = yaml.SequenceNode, "!!seq", ""
			}

			if seq.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("%w: routes is not a list", ErrNotValid)
			}

			return seq, nil
		}
	}

	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "routes"},
		seq,
	)

	return seq, nil
}
