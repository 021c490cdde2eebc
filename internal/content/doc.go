// Package content turns the files of the posts directory into records.
//
// Markdown files (.md, .markdown) are converted to HTML and carry their
// metadata in a YAML front matter block or Markdown-meta header lines. HTML
// files (.html, .htm) carry metadata in leading `<!-- key : value -->`
// comments and keep their body verbatim. Every record needs a YYYY-MM-DD
// date; the directory listing is returned newest first.
package content
