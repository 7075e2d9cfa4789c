package types

// ConversationKind classifies a conversation descriptor
type ConversationKind string

const (
	KindDM           ConversationKind = "DM"
	KindGroupDM      ConversationKind = "GROUP_DM"
	KindGuildText    ConversationKind = "GUILD_TEXT"
	KindGuildVoice   ConversationKind = "GUILD_VOICE"
	KindPublicThread ConversationKind = "PUBLIC_THREAD"
)

// AllConversationKinds returns all valid conversation kinds
func AllConversationKinds() []ConversationKind {
	return []ConversationKind{
		KindDM,
		KindGroupDM,
		KindGuildText,
		KindGuildVoice,
		KindPublicThread,
	}
}

// IsValid checks if the conversation kind is valid
func (k ConversationKind) IsValid() bool {
	switch k {
	case KindDM, KindGroupDM, KindGuildText, KindGuildVoice, KindPublicThread:
		return true
	default:
		return false
	}
}

// IsDirect reports whether the conversation is a direct or group direct message
func (k ConversationKind) IsDirect() bool {
	return k == KindDM || k == KindGroupDM
}

// String returns the string representation of the conversation kind
func (k ConversationKind) String() string {
	return string(k)
}

// publicThreadTag is the numeric channel type used by the export format for
// public threads. All other numeric tags fall through to GUILD_TEXT.
const publicThreadTag = 13

// KindFromTag maps a raw descriptor tag to a ConversationKind. The export
// format is inconsistent: most descriptors carry a string tag, but threads
// carry a numeric one. Unrecognized tags default to KindGuildText.
func KindFromTag(tag any) ConversationKind {
	switch v := tag.(type) {
	case string:
		switch v {
		case "DM":
			return KindDM
		case "GROUP_DM":
			return KindGroupDM
		case "GUILD_VOICE":
			return KindGuildVoice
		}
	case float64:
		if v == publicThreadTag {
			return KindPublicThread
		}
	}
	return KindGuildText
}
