// Package markdown loads Markdown documents from a filesystem, splitting
// front matter from body content, rendering bodies to HTML, and extracting
// the hyperlinks a document references.
package markdown
