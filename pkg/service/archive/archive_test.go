package archive_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/packstat/packstat/pkg/service/archive"
)

func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		gt.NoError(t, err).Required()
		_, err = w.Write([]byte(content))
		gt.NoError(t, err).Required()
	}
	gt.NoError(t, zw.Close()).Required()

	return buf.Bytes()
}

func TestNew_ValidArchive(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"Account/user.json":           `{"id":"1"}`,
		"Messages/c100/channel.json":  `{"id":"100"}`,
		"Messages/c100/messages.json": `[]`,
	})

	ar, err := archive.New(data)
	gt.NoError(t, err).Required()
	gt.Value(t, ar).NotNil()
}

func TestNew_CaseInsensitiveSections(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"ACCOUNT/User.json":          `{"id":"1"}`,
		"messages/c100/channel.json": `{"id":"100"}`,
	})

	_, err := archive.New(data)
	gt.NoError(t, err)
}

func TestNew_MissingAccountSection(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"Messages/c100/channel.json": `{"id":"100"}`,
	})

	_, err := archive.New(data)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, archive.ErrInvalidArchive)).True()
}

func TestNew_MissingMessagesSection(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"Account/user.json": `{"id":"1"}`,
	})

	_, err := archive.New(data)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, archive.ErrInvalidArchive)).True()
}

func TestNew_NotAZip(t *testing.T) {
	_, err := archive.New([]byte("this is not a zip archive"))
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, archive.ErrInvalidArchive)).True()
}

func TestGlob_NameOrderAndCaseInsensitivity(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"Messages/c300/Channel.json": `{"id":"300"}`,
		"Messages/c100/channel.json": `{"id":"100"}`,
		"Messages/c200/channel.json": `{"id":"200"}`,
		"Messages/c100/index.json":   `{}`,
		"Account/user.json":          `{"id":"1"}`,
	})

	ar, err := archive.New(data)
	gt.NoError(t, err).Required()

	re := regexp.MustCompile(`(?i)^Messages/c\d+/channel\.json$`)
	entries := ar.Glob(re)
	gt.Number(t, len(entries)).Equal(3)
	gt.Value(t, entries[0].Name()).Equal("Messages/c100/channel.json")
	gt.Value(t, entries[1].Name()).Equal("Messages/c200/channel.json")
	gt.Value(t, entries[2].Name()).Equal("Messages/c300/Channel.json")

	gt.Bool(t, ar.Exists(re)).True()
	gt.Bool(t, ar.Exists(regexp.MustCompile(`^Nothing/`))).False()
}

func TestReadText(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"Account/user.json":          `{"id":"42"}`,
		"Messages/c100/channel.json": `{"id":"100"}`,
	})

	ar, err := archive.New(data)
	gt.NoError(t, err).Required()

	entry := ar.First(regexp.MustCompile(`(?i)^Account/user\.json$`))
	gt.Value(t, entry).NotNil().Required()

	text, err := ar.ReadText(entry)
	gt.NoError(t, err)
	gt.Value(t, text).Equal(`{"id":"42"}`)
}

func TestOpen_StreamedRead(t *testing.T) {
	content := "line1\nline2\nline3\n"
	data := buildArchive(t, map[string]string{
		"Account/user.json":      `{"id":"1"}`,
		"Messages/c1/chat.json":  `[]`,
		"Account/activity.json":  content,
	})

	ar, err := archive.New(data)
	gt.NoError(t, err).Required()

	entry := ar.First(regexp.MustCompile(`(?i)^Account/activity\.json$`))
	gt.Value(t, entry).NotNil().Required()
	gt.Number(t, entry.Size()).Equal(int64(len(content)))

	rc, err := ar.Open(entry)
	gt.NoError(t, err).Required()
	defer rc.Close()

	read, err := io.ReadAll(rc)
	gt.NoError(t, err)
	gt.Value(t, string(read)).Equal(content)
}
