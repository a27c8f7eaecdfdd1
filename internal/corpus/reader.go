package corpus

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// Scanner buffer bounds: one line holds one full article in JSON form.
const (
	scanInitialBuf = 64 * 1024
	scanMaxBuf     = 16 * 1024 * 1024
)

// wikiDoc is the per-line document emitted by WikiExtractor --json.
type wikiDoc struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Reader walks a directory of extractor output and yields Articles one at a
// time. Files whose first byte is '{' are treated as JSON-lines documents;
// anything else is a single article whose body is the file contents.
//
// A file or line that cannot be read is logged and skipped: a single
// malformed file must not void a multi-hour run.
type Reader struct {
	root    string
	log     zerolog.Logger
	warn    rate.Sometimes
	skipped int
}

// NewReader creates a Reader rooted at dir.
func NewReader(dir string, log zerolog.Logger) *Reader {
	return &Reader{
		root: dir,
		log:  log,
		// Warnings are throttled so a corrupt directory cannot flood the log.
		warn: rate.Sometimes{First: 5, Interval: 10 * time.Second},
	}
}

// Skipped reports how many files or documents were dropped due to read or
// decode failures.
func (r *Reader) Skipped() int { return r.skipped }

// Each streams every article under the root directory, in lexical path
// order, to fn. It stops early if fn returns an error or ctx is cancelled.
func (r *Reader) Each(ctx context.Context, fn func(Article) error) error {
	return filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				r.skipFile(path, err)
				return fs.SkipDir
			}
			r.skipFile(path, err)
			return nil
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		return r.eachInFile(ctx, path, fn)
	})
}

func (r *Reader) eachInFile(ctx context.Context, path string, fn func(Article) error) error {
	f, err := os.Open(path)
	if err != nil {
		r.skipFile(path, err)
		return nil
	}
	defer f.Close()

	br := bufio.NewReader(f)
	head, _ := br.Peek(1)
	if len(head) == 0 {
		return nil
	}

	if head[0] != '{' {
		body, err := readAll(br)
		if err != nil {
			r.skipFile(path, err)
			return nil
		}
		return fn(Article{ID: path, Text: StripMarkup(body)})
	}

	sc := bufio.NewScanner(br)
	sc.Buffer(make([]byte, 0, scanInitialBuf), scanMaxBuf)
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return err
		}
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		var doc wikiDoc
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			r.skipFile(fmt.Sprintf("%s:%d", path, line), err)
			continue
		}
		a := Article{
			ID:    fmt.Sprintf("%s:%d", path, line),
			Title: doc.Title,
			Text:  StripMarkup(doc.Text),
		}
		if doc.ID != "" {
			a.ID = doc.ID
		}
		if err := fn(a); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		r.skipFile(path, err)
	}
	return nil
}

func (r *Reader) skipFile(where string, err error) {
	r.skipped++
	r.warn.Do(func() {
		r.log.Warn().Str("source", where).Err(err).Msg("skipping unreadable input")
	})
}

func readAll(br *bufio.Reader) (string, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, br); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// StripMarkup drops residual HTML tags that the upstream extractor leaves in
// article bodies, keeping only visible text. Plain text passes through
// untouched.
func StripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	var sb strings.Builder
	skipDepth := 0
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return sb.String()
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style", "noscript", "iframe":
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style", "noscript", "iframe":
				if skipDepth > 0 {
					skipDepth--
				}
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(z.Text())
			}
		}
	}
}
