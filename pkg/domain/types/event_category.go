package types

// EventCategory is one of the fixed behavioral event categories counted
// from the activity log
type EventCategory string

const (
	EventAddReaction     EventCategory = "add_reaction"
	EventAttachmentsSent EventCategory = "message_sent_with_attachments"
	EventJoinVoice       EventCategory = "join_voice_channel"
	EventStartCall       EventCategory = "start_call"
	EventJoinCall        EventCategory = "join_call"
	EventAppOpened       EventCategory = "app_opened"
)

// AllEventCategories returns the categories in match-priority order.
// Each activity log line increments at most one counter: the first
// category whose pattern appears in the line wins.
func AllEventCategories() []EventCategory {
	return []EventCategory{
		EventAddReaction,
		EventAttachmentsSent,
		EventJoinVoice,
		EventStartCall,
		EventJoinCall,
		EventAppOpened,
	}
}

// Pattern returns the substring that identifies the category in a log line
func (c EventCategory) Pattern() string {
	return string(c)
}

// String returns the string representation of the event category
func (c EventCategory) String() string {
	return string(c)
}
