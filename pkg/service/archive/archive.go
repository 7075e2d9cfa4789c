package archive

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Sentinel errors for archive validation
var (
	ErrInvalidArchive = goerr.New("invalid archive")
)

// Required top-level sections. Matching is by case-insensitive path prefix,
// never by exact case: exports produced on different platforms disagree on
// directory casing.
const (
	accountPrefix  = "account/"
	messagesPrefix = "messages/"
)

// Entry is a reference to a single file inside the archive
type Entry struct {
	file *zip.File
}

// Name returns the entry's full path inside the archive
func (e *Entry) Name() string {
	return e.file.Name
}

// Size returns the declared uncompressed size of the entry
func (e *Entry) Size() int64 {
	return int64(e.file.UncompressedSize64)
}

// Archive is an opened export bundle with validated structure
type Archive struct {
	entries []*Entry
}

// New opens an export bundle from raw bytes. It fails with ErrInvalidArchive
// unless the bundle contains at least one entry under Account/ and one under
// Messages/.
func New(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidArchive, "failed to read archive", goerr.V("cause", err.Error()))
	}

	ar := &Archive{}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		ar.entries = append(ar.entries, &Entry{file: f})
	}

	// Deterministic enumeration order regardless of how the bundle was packed
	sort.Slice(ar.entries, func(i, j int) bool {
		return ar.entries[i].Name() < ar.entries[j].Name()
	})

	if !ar.hasPrefix(accountPrefix) || !ar.hasPrefix(messagesPrefix) {
		return nil, goerr.Wrap(ErrInvalidArchive, "missing required section",
			goerr.V("account", ar.hasPrefix(accountPrefix)),
			goerr.V("messages", ar.hasPrefix(messagesPrefix)),
		)
	}

	return ar, nil
}

func (a *Archive) hasPrefix(prefix string) bool {
	for _, e := range a.entries {
		if strings.HasPrefix(strings.ToLower(e.Name()), prefix) {
			return true
		}
	}
	return false
}

// Exists reports whether any entry matches the pattern
func (a *Archive) Exists(re *regexp.Regexp) bool {
	return a.First(re) != nil
}

// First returns the first entry matching the pattern in name order, or nil
func (a *Archive) First(re *regexp.Regexp) *Entry {
	for _, e := range a.entries {
		if re.MatchString(e.Name()) {
			return e
		}
	}
	return nil
}

// Glob returns all entries matching the pattern, in name order
func (a *Archive) Glob(re *regexp.Regexp) []*Entry {
	var matched []*Entry
	for _, e := range a.entries {
		if re.MatchString(e.Name()) {
			matched = append(matched, e)
		}
	}
	return matched
}

// ReadText reads the whole entry into a string
func (a *Archive) ReadText(e *Entry) (string, error) {
	rc, err := e.file.Open()
	if err != nil {
		return "", goerr.Wrap(err, "failed to open entry", goerr.V("name", e.Name()))
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read entry", goerr.V("name", e.Name()))
	}
	return string(data), nil
}

// Open returns a streamed reader over the entry for callers that must not
// hold the whole entry in memory
func (a *Archive) Open(e *Entry) (io.ReadCloser, error) {
	rc, err := e.file.Open()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open entry", goerr.V("name", e.Name()))
	}
	return rc, nil
}
