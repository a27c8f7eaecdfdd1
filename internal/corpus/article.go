// Package corpus streams Wikipedia article bodies from extractor output on
// disk. It is the input side of the pipeline: it locates and decodes files,
// and the extraction core consumes one article at a time.
package corpus

// Article is one raw text body handed to the pipeline. The extraction core
// never mutates it.
type Article struct {
	// ID locates the article for diagnostics: the source path, plus the
	// line offset for multi-document files.
	ID    string
	Title string
	Text  string
}
