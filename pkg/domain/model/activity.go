package model

import "github.com/packstat/packstat/pkg/domain/types"

// ActivityStats counts occurrences of the six fixed behavioral event
// categories found in the activity log. Counters only grow during a scan and
// the struct is immutable once the scan completes.
type ActivityStats struct {
	AddReaction     int64 `json:"addReaction"`
	AttachmentsSent int64 `json:"attachmentsSent"`
	JoinVoice       int64 `json:"joinVoice"`
	StartCall       int64 `json:"startCall"`
	JoinCall        int64 `json:"joinCall"`
	AppOpened       int64 `json:"appOpened"`
}

// Inc increments the counter for the given category
func (s *ActivityStats) Inc(cat types.EventCategory) {
	switch cat {
	case types.EventAddReaction:
		s.AddReaction++
	case types.EventAttachmentsSent:
		s.AttachmentsSent++
	case types.EventJoinVoice:
		s.JoinVoice++
	case types.EventStartCall:
		s.StartCall++
	case types.EventJoinCall:
		s.JoinCall++
	case types.EventAppOpened:
		s.AppOpened++
	}
}

// Count returns the counter value for the given category
func (s ActivityStats) Count(cat types.EventCategory) int64 {
	switch cat {
	case types.EventAddReaction:
		return s.AddReaction
	case types.EventAttachmentsSent:
		return s.AttachmentsSent
	case types.EventJoinVoice:
		return s.JoinVoice
	case types.EventStartCall:
		return s.StartCall
	case types.EventJoinCall:
		return s.JoinCall
	case types.EventAppOpened:
		return s.AppOpened
	default:
		return 0
	}
}

// Total returns the sum of all counters
func (s ActivityStats) Total() int64 {
	return s.AddReaction + s.AttachmentsSent + s.JoinVoice + s.StartCall + s.JoinCall + s.AppOpened
}
