package types

// UserID identifies an account in the export
type UserID string

// String returns the string representation of UserID
func (u UserID) String() string {
	return string(u)
}

// ChannelID identifies a conversation in the export
type ChannelID string

// String returns the string representation of ChannelID
func (c ChannelID) String() string {
	return string(c)
}

// GuildID identifies a community (guild/server) in the export
type GuildID string

// String returns the string representation of GuildID
func (g GuildID) String() string {
	return string(g)
}
