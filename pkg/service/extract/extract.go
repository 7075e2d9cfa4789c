package extract

import (
	"encoding/json"
	"regexp"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/domain/model"
	"github.com/packstat/packstat/pkg/domain/types"
	"github.com/packstat/packstat/pkg/service/archive"
)

// Sentinel errors for identity extraction
var (
	ErrMissingRequiredFile = goerr.New("required file is missing")
)

var (
	userFileRe  = regexp.MustCompile(`(?i)^Account/user\.json$`)
	usersFileRe = regexp.MustCompile(`(?i)^Account/users\.json$`)
)

type accountRecord struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	AvatarHash    string `json:"avatar_hash"`
	Avatar        string `json:"avatar"`
	Relationships []struct {
		User *struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Avatar   string `json:"avatar"`
		} `json:"user"`
	} `json:"relationships"`
}

func readAccountRecord(ar *archive.Archive) (*accountRecord, error) {
	entry := ar.First(userFileRe)
	if entry == nil {
		return nil, goerr.Wrap(ErrMissingRequiredFile, "account record not found",
			goerr.V("pattern", userFileRe.String()))
	}

	text, err := ar.ReadText(entry)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read account record")
	}

	var record accountRecord
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return nil, goerr.Wrap(err, "failed to parse account record", goerr.V("name", entry.Name()))
	}
	return &record, nil
}

// Identity reads the canonical account record. Its absence is fatal: the
// pipeline cannot attribute conversations without knowing the owner.
func Identity(ar *archive.Archive) (*model.Identity, error) {
	record, err := readAccountRecord(ar)
	if err != nil {
		return nil, err
	}

	avatar := record.AvatarHash
	if avatar == "" {
		avatar = record.Avatar
	}

	return &model.Identity{
		ID:        types.UserID(record.ID),
		Username:  record.Username,
		AvatarRef: avatar,
	}, nil
}

// Directory builds the user directory by merging the account record's
// relationship list with a recursive search of the users document. Entries
// from the users document are merged last: if both sources define the same
// ID, the users document wins.
func Directory(ar *archive.Archive) (model.UserDirectory, error) {
	dir := make(model.UserDirectory)

	record, err := readAccountRecord(ar)
	if err != nil {
		return nil, err
	}

	for _, rel := range record.Relationships {
		if rel.User == nil || rel.User.ID == "" {
			continue
		}
		username := rel.User.Username
		if username == "" {
			username = "Unknown"
		}
		dir[types.UserID(rel.User.ID)] = model.UserRef{
			Username:  username,
			AvatarRef: rel.User.Avatar,
		}
	}

	entry := ar.First(usersFileRe)
	if entry == nil {
		return dir, nil
	}

	text, err := ar.ReadText(entry)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read users document")
	}

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse users document", goerr.V("name", entry.Name()))
	}
	mergeUsers(dir, doc)

	return dir, nil
}

// mergeUsers walks the decoded users document depth-first and records every
// object that carries both an id and a username, at any nesting depth. The
// document is a tree, so no cycle tracking is needed. Object keys are visited
// in sorted order: when the document defines the same id more than once, the
// winner must not depend on map iteration order or the snapshot stops being
// reproducible.
func mergeUsers(dir model.UserDirectory, v any) {
	switch node := v.(type) {
	case map[string]any:
		if ref, id, ok := userObject(node); ok {
			dir[id] = ref
		}
		for _, key := range sortedKeys(node) {
			mergeUsers(dir, node[key])
		}
	case []any:
		for _, child := range node {
			mergeUsers(dir, child)
		}
	}
}

// FindUser performs a deep structural search of the users document for a
// single ID. It is the fallback when the directory has no entry for a DM
// recipient. Returns nil when the document is absent, malformed, or has no
// matching object.
func FindUser(ar *archive.Archive, id types.UserID) *model.UserRef {
	entry := ar.First(usersFileRe)
	if entry == nil {
		return nil
	}

	text, err := ar.ReadText(entry)
	if err != nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil
	}

	return searchUser(doc, id)
}

// searchUser mirrors mergeUsers' traversal, sorted key order included, so a
// duplicated id always resolves to the same object
func searchUser(v any, id types.UserID) *model.UserRef {
	switch node := v.(type) {
	case map[string]any:
		if ref, foundID, ok := userObject(node); ok && foundID == id {
			return &ref
		}
		for _, key := range sortedKeys(node) {
			if found := searchUser(node[key], id); found != nil {
				return found
			}
		}
	case []any:
		for _, child := range node {
			if found := searchUser(child, id); found != nil {
				return found
			}
		}
	}
	return nil
}

func sortedKeys(node map[string]any) []string {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func userObject(node map[string]any) (model.UserRef, types.UserID, bool) {
	id, _ := node["id"].(string)
	username, _ := node["username"].(string)
	if id == "" || username == "" {
		return model.UserRef{}, "", false
	}
	avatar, _ := node["avatar"].(string)
	return model.UserRef{Username: username, AvatarRef: avatar}, types.UserID(id), true
}
