package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/domain/model"
	"github.com/packstat/packstat/pkg/domain/types"
	"github.com/packstat/packstat/pkg/service/archive"
	"github.com/packstat/packstat/pkg/utils/errutil"
)

var channelFileRe = regexp.MustCompile(`(?i)^Messages/c\d+/channel\.json$`)

type channelRecord struct {
	ID         string   `json:"id"`
	Type       any      `json:"type"`
	Name       string   `json:"name"`
	Recipients []string `json:"recipients"`
	Guild      *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"guild"`
}

// Channels reads every conversation descriptor and builds the channel and
// community mappings. Malformed descriptors are skipped after logging; the
// classification never fails as a whole.
func Channels(ctx context.Context, ar *archive.Archive) *model.ChannelDirectory {
	dir := model.NewChannelDirectory()

	for _, entry := range ar.Glob(channelFileRe) {
		desc, err := readDescriptor(ar, entry)
		if err != nil {
			errutil.HandleSkip(ctx, err, "skipping malformed conversation descriptor")
			continue
		}
		if desc == nil {
			continue
		}

		dir.Kinds[desc.ID] = desc.Kind
		if desc.Name != "" {
			dir.Names[desc.ID] = desc.Name
		}
		if len(desc.Recipients) > 0 {
			dir.Recipients[desc.ID] = desc.Recipients
		}
		if desc.Kind == types.KindGuildText {
			dir.TextManifest = append(dir.TextManifest, fmt.Sprintf("channel_%s.json", desc.ID))
		}
		if desc.GuildID != "" {
			dir.GuildByChannel[desc.ID] = desc.GuildID
			dir.GuildNames[desc.GuildID] = desc.GuildName
		}
	}

	return dir
}

func readDescriptor(ar *archive.Archive, entry *archive.Entry) (*model.ConversationDescriptor, error) {
	text, err := ar.ReadText(entry)
	if err != nil {
		return nil, err
	}

	var record channelRecord
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return nil, goerr.Wrap(err, "failed to parse conversation descriptor",
			goerr.V("name", entry.Name()))
	}
	if record.ID == "" {
		return nil, nil
	}

	desc := &model.ConversationDescriptor{
		ID:   types.ChannelID(record.ID),
		Kind: types.KindFromTag(record.Type),
		Name: record.Name,
	}
	for _, r := range record.Recipients {
		desc.Recipients = append(desc.Recipients, types.UserID(r))
	}

	// A conversation contributes to the community mapping only with a
	// non-empty guild ID and a usable name. Exports fill missing guild names
	// with the literal "unknown"; those entries are discarded rather than
	// polluting the mapping.
	if !desc.Kind.IsDirect() && record.Guild != nil && record.Guild.ID != "" {
		name := strings.TrimSpace(record.Guild.Name)
		if name != "" && !strings.EqualFold(name, "unknown") {
			desc.GuildID = types.GuildID(record.Guild.ID)
			desc.GuildName = name
		}
	}

	return desc, nil
}
