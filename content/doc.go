/*
Package content serves the Markdown documents behind basecamp's pages.

A Store reads documents named <slug>.md from an fs.FS,
splits off their front matter, renders them with a markdown.Renderer,
and caches the result until told otherwise.
In development, Watch drops cached documents as their files change on disk.
*/
package content
