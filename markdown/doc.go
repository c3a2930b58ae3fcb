/*
Package markdown renders Markdown documents into themed HTML.

A Renderer parses GitHub Flavored Markdown with goldmark.
Every element with an entry in its Styles is written wrapped in that entry's class and attributes;
any other node, like a GFM table, falls through to goldmark's own HTML renderer.

The Code style applies to inline code spans only.
A fenced or indented code block takes the Pre style on its <pre>;
the <code> inside carries just the block's language-* class.

Attrs of a Style may not set names the renderer writes itself
(class, href, id, start, title) nor names outside [a-z][a-z0-9-]*.
Such names are skipped when rendering; Styles.Validate reports them.

	r := markdown.New(markdown.DefaultStyles(), markdown.WithWrapper(markdown.DefaultWrapperClass))
	out, err := r.Render("# Hi")

A Renderer is safe for concurrent use.
*/
package markdown
