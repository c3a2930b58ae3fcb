package template

// The ParserOptFn applies functional options to a *Parser when constructing it.
type ParserOptFn func(*Parser)

// WithFn encloses a named function so it can be added to a *Parser's function map.
func WithFn(name string, fn any) ParserOptFn {
	return func(p *Parser) {
		p.AddFn(name, fn)
	}
}
