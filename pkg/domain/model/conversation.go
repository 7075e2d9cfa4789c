package model

import "github.com/packstat/packstat/pkg/domain/types"

// ConversationDescriptor is one classified conversation entry
type ConversationDescriptor struct {
	ID         types.ChannelID        `json:"id"`
	Kind       types.ConversationKind `json:"kind"`
	Name       string                 `json:"name,omitempty"`
	GuildID    types.GuildID          `json:"guildId,omitempty"`
	GuildName  string                 `json:"guildName,omitempty"`
	Recipients []types.UserID         `json:"-"`
}

// ChannelDirectory holds the conversation and community mappings produced by
// classification. Guild entries are data-quality filtered: no entry has an
// empty or "unknown" name.
type ChannelDirectory struct {
	Kinds          map[types.ChannelID]types.ConversationKind `json:"kinds"`
	Names          map[types.ChannelID]string                 `json:"names"`
	TextManifest   []string                                   `json:"textManifest"`
	GuildByChannel map[types.ChannelID]types.GuildID          `json:"guildByChannel"`
	GuildNames     map[types.GuildID]string                   `json:"guildNames"`
	Recipients     map[types.ChannelID][]types.UserID         `json:"-"`
}

// NewChannelDirectory creates an empty ChannelDirectory
func NewChannelDirectory() *ChannelDirectory {
	return &ChannelDirectory{
		Kinds:          make(map[types.ChannelID]types.ConversationKind),
		Names:          make(map[types.ChannelID]string),
		GuildByChannel: make(map[types.ChannelID]types.GuildID),
		GuildNames:     make(map[types.GuildID]string),
		Recipients:     make(map[types.ChannelID][]types.UserID),
	}
}
