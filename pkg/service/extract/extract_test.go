package extract_test

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/packstat/packstat/pkg/service/archive"
	"github.com/packstat/packstat/pkg/service/extract"
)

func buildArchive(t *testing.T, files map[string]string) *archive.Archive {
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

	ar, err := archive.New(buf.Bytes())
	gt.NoError(t, err).Required()
	return ar
}

func TestIdentity(t *testing.T) {
	t.Run("reads the account record", func(t *testing.T) {
		ar := buildArchive(t, map[string]string{
			"Account/user.json":          `{"id":"100","username":"alice","avatar_hash":"abc123"}`,
			"Messages/c1/channel.json":   `{"id":"1"}`,
		})

		identity, err := extract.Identity(ar)
		gt.NoError(t, err).Required()
		gt.Value(t, string(identity.ID)).Equal("100")
		gt.Value(t, identity.Username).Equal("alice")
		gt.Value(t, identity.AvatarRef).Equal("abc123")
	})

	t.Run("falls back to the avatar field", func(t *testing.T) {
		ar := buildArchive(t, map[string]string{
			"Account/user.json":        `{"id":"100","username":"alice","avatar":"fallback"}`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})

		identity, err := extract.Identity(ar)
		gt.NoError(t, err).Required()
		gt.Value(t, identity.AvatarRef).Equal("fallback")
	})

	t.Run("missing account record is fatal", func(t *testing.T) {
		ar := buildArchive(t, map[string]string{
			"Account/settings.json":    `{}`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})

		_, err := extract.Identity(ar)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, extract.ErrMissingRequiredFile)).True()
	})

	t.Run("malformed account record is fatal", func(t *testing.T) {
		ar := buildArchive(t, map[string]string{
			"Account/user.json":        `not json`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})

		_, err := extract.Identity(ar)
		gt.Error(t, err)
	})
}

func TestDirectory(t *testing.T) {
	t.Run("collects relationships from the account record", func(t *testing.T) {
		ar := buildArchive(t, map[string]string{
			"Account/user.json": `{
				"id": "100",
				"username": "alice",
				"relationships": [
					{"user": {"id": "200", "username": "bob", "avatar": "bb"}},
					{"user": {"id": "300", "username": ""}},
					{"user": null}
				]
			}`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})

		dir, err := extract.Directory(ar)
		gt.NoError(t, err).Required()
		gt.Value(t, dir["200"].Username).Equal("bob")
		gt.Value(t, dir["200"].AvatarRef).Equal("bb")
		gt.Value(t, dir["300"].Username).Equal("Unknown")
	})

	t.Run("users document entries win over relationships", func(t *testing.T) {
		ar := buildArchive(t, map[string]string{
			"Account/user.json": `{
				"id": "100",
				"username": "alice",
				"relationships": [
					{"user": {"id": "200", "username": "old-name"}}
				]
			}`,
			"Account/users.json":       `[{"id":"200","username":"new-name","avatar":"av"}]`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})

		dir, err := extract.Directory(ar)
		gt.NoError(t, err).Required()
		gt.Value(t, dir["200"].Username).Equal("new-name")
		gt.Value(t, dir["200"].AvatarRef).Equal("av")
	})

	t.Run("finds users at any nesting depth", func(t *testing.T) {
		ar := buildArchive(t, map[string]string{
			"Account/user.json": `{"id":"100","username":"alice"}`,
			"Account/users.json": `{
				"groups": [
					{"members": {"inner": {"id": "400", "username": "deep"}}}
				]
			}`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})

		dir, err := extract.Directory(ar)
		gt.NoError(t, err).Required()
		gt.Value(t, dir["400"].Username).Equal("deep")
	})

	t.Run("objects without id or username are ignored", func(t *testing.T) {
		ar := buildArchive(t, map[string]string{
			"Account/user.json":        `{"id":"100","username":"alice"}`,
			"Account/users.json":       `[{"id":"500"},{"username":"orphan"}]`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})

		dir, err := extract.Directory(ar)
		gt.NoError(t, err).Required()
		gt.Number(t, len(dir)).Equal(0)
	})

	t.Run("duplicated ids resolve the same way on every run", func(t *testing.T) {
		// Two objects under different document keys claim the same id; the
		// traversal visits keys in sorted order, so "members" is always last
		// and always wins
		ar := buildArchive(t, map[string]string{
			"Account/user.json": `{"id":"100","username":"alice"}`,
			"Account/users.json": `{
				"friends": [{"id": "200", "username": "nameA"}],
				"members": [{"id": "200", "username": "nameB"}]
			}`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})

		for i := 0; i < 50; i++ {
			dir, err := extract.Directory(ar)
			gt.NoError(t, err).Required()
			gt.Value(t, dir["200"].Username).Equal("nameB")
		}
	})

	t.Run("absent users document yields relationships only", func(t *testing.T) {
		ar := buildArchive(t, map[string]string{
			"Account/user.json": `{
				"id": "100",
				"username": "alice",
				"relationships": [{"user": {"id": "200", "username": "bob"}}]
			}`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})

		dir, err := extract.Directory(ar)
		gt.NoError(t, err).Required()
		gt.Number(t, len(dir)).Equal(1)
	})
}

func TestFindUser(t *testing.T) {
	ar := buildArchive(t, map[string]string{
		"Account/user.json": `{"id":"100","username":"alice"}`,
		"Account/users.json": `{
			"friends": [{"id": "200", "username": "bob", "avatar": "bb"}],
			"nested": {"list": [{"id": "300", "username": "carol"}]}
		}`,
		"Messages/c1/channel.json": `{"id":"1"}`,
	})

	t.Run("finds a top-level user", func(t *testing.T) {
		ref := extract.FindUser(ar, "200")
		gt.Value(t, ref).NotNil().Required()
		gt.Value(t, ref.Username).Equal("bob")
		gt.Value(t, ref.AvatarRef).Equal("bb")
	})

	t.Run("finds a nested user", func(t *testing.T) {
		ref := extract.FindUser(ar, "300")
		gt.Value(t, ref).NotNil().Required()
		gt.Value(t, ref.Username).Equal("carol")
	})

	t.Run("duplicated ids return the first object in key order", func(t *testing.T) {
		dup := buildArchive(t, map[string]string{
			"Account/user.json": `{"id":"100","username":"alice"}`,
			"Account/users.json": `{
				"friends": [{"id": "200", "username": "nameA"}],
				"members": [{"id": "200", "username": "nameB"}]
			}`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})

		for i := 0; i < 50; i++ {
			ref := extract.FindUser(dup, "200")
			gt.Value(t, ref).NotNil().Required()
			gt.Value(t, ref.Username).Equal("nameA")
		}
	})

	t.Run("returns nil for an unknown id", func(t *testing.T) {
		gt.Value(t, extract.FindUser(ar, "999")).Nil()
	})

	t.Run("returns nil when the document is absent", func(t *testing.T) {
		bare := buildArchive(t, map[string]string{
			"Account/user.json":        `{"id":"100","username":"alice"}`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})
		gt.Value(t, extract.FindUser(bare, "200")).Nil()
	})

	t.Run("returns nil when the document is malformed", func(t *testing.T) {
		broken := buildArchive(t, map[string]string{
			"Account/user.json":        `{"id":"100","username":"alice"}`,
			"Account/users.json":       `{broken`,
			"Messages/c1/channel.json": `{"id":"1"}`,
		})
		gt.Value(t, extract.FindUser(broken, "200")).Nil()
	})
}
