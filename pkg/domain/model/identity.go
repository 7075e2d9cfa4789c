package model

import "github.com/packstat/packstat/pkg/domain/types"

// Identity is the archive owner's account record, immutable after extraction
type Identity struct {
	ID        types.UserID `json:"id"`
	Username  string       `json:"username" masq:"secret"`
	AvatarRef string       `json:"avatar,omitempty"`
}

// UserRef is one resolved entry of the user directory
type UserRef struct {
	Username  string `json:"username" masq:"secret"`
	AvatarRef string `json:"avatar,omitempty"`
}

// UserDirectory maps user IDs to their display identity. It is built once by
// merging the relationship list with the users document; every present ID
// maps to a non-empty username.
type UserDirectory map[types.UserID]UserRef
