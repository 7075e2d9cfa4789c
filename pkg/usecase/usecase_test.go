package usecase_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/packstat/packstat/pkg/domain/types"
	"github.com/packstat/packstat/pkg/service/archive"
	"github.com/packstat/packstat/pkg/usecase"
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

func exportFixture(t *testing.T) []byte {
	t.Helper()
	return buildArchive(t, map[string]string{
		"Account/user.json": `{
			"id": "100",
			"username": "alice",
			"avatar_hash": "aa11",
			"relationships": [
				{"user": {"id": "200", "username": "bob"}}
			]
		}`,
		"Account/users.json":       `[{"id":"300","username":"carol"}]`,
		"Messages/c1/channel.json": `{"id":"1","type":"DM","recipients":["100","200"]}`,
		"Messages/c1/messages.json": `[
			{"Timestamp": "2024-03-05 10:00:00", "Contents": "hey this is amazing"},
			{"Timestamp": "2024-03-06 11:00:00", "Contents": "see you at noon"}
		]`,
		"Messages/c2/channel.json": `{"id":"2","type":"GUILD_TEXT","name":"general","guild":{"id":"g1","name":"Gopher Den"}}`,
		"Messages/c2/messages.json": `[
			{"Timestamp": "2024-03-05 12:00:00", "Contents": "release day"}
		]`,
		"Activity/Analytics/events.json": `{"event_type": "app_opened", "seq": 1}` + "\n" +
			`{"event_type": "add_reaction", "seq": 2}` + "\n",
	})
}

func TestAnalyze_EndToEnd(t *testing.T) {
	uc := usecase.New()
	snapshot, err := uc.Analyze(context.Background(), exportFixture(t), nil)
	gt.NoError(t, err).Required()
	gt.Value(t, snapshot).NotNil().Required()

	gt.Value(t, string(snapshot.Self.ID)).Equal("100")
	gt.Value(t, snapshot.Self.Username).Equal("alice")

	gt.Value(t, snapshot.Users["200"].Username).Equal("bob")
	gt.Value(t, snapshot.Users["300"].Username).Equal("carol")

	gt.Number(t, snapshot.Aggregate.MessageCount).Equal(3)
	gt.Number(t, len(snapshot.Conversations)).Equal(2)

	dm := snapshot.Conversations["dm_1"]
	gt.Value(t, dm).NotNil().Required()
	gt.Value(t, dm.DisplayName).Equal("bob")
	gt.Number(t, dm.MessageCount).Equal(2)

	channel := snapshot.Conversations["channel_2"]
	gt.Value(t, channel).NotNil().Required()
	gt.Value(t, channel.DisplayName).Equal("general")

	gt.Value(t, snapshot.DMManifest).Equal([]string{"dm_1.json"})
	gt.Value(t, snapshot.Channels.TextManifest).Equal([]string{"channel_2.json"})
	gt.Value(t, snapshot.Channels.GuildNames["g1"]).Equal("Gopher Den")

	gt.Number(t, snapshot.Activity.Count(types.EventAppOpened)).Equal(1)
	gt.Number(t, snapshot.Activity.Count(types.EventAddReaction)).Equal(1)
}

func TestAnalyze_Idempotent(t *testing.T) {
	data := exportFixture(t)
	uc := usecase.New(usecase.WithWorkers(4))

	first, err := uc.Analyze(context.Background(), data, nil)
	gt.NoError(t, err).Required()
	second, err := uc.Analyze(context.Background(), data, nil)
	gt.NoError(t, err).Required()

	firstJSON, err := json.Marshal(first)
	gt.NoError(t, err).Required()
	secondJSON, err := json.Marshal(second)
	gt.NoError(t, err).Required()

	gt.Bool(t, bytes.Equal(firstJSON, secondJSON)).True()
}

func TestAnalyze_Progress(t *testing.T) {
	type sample struct {
		percent float64
		stage   string
	}
	var samples []sample

	uc := usecase.New()
	_, err := uc.Analyze(context.Background(), exportFixture(t), func(percent float64, stage string) {
		samples = append(samples, sample{percent, stage})
	})
	gt.NoError(t, err).Required()

	gt.Bool(t, len(samples) > 1).True()
	for i := 1; i < len(samples); i++ {
		gt.Bool(t, samples[i].percent >= samples[i-1].percent).True()
	}

	last := samples[len(samples)-1]
	gt.Number(t, last.percent).Equal(100)
	gt.Value(t, last.stage).Equal(usecase.StageComplete)
}

func TestAnalyze_InvalidArchive(t *testing.T) {
	uc := usecase.New()
	_, err := uc.Analyze(context.Background(), []byte("not a zip"), nil)
	gt.Error(t, err)
	gt.Bool(t, errors.Is(err, archive.ErrInvalidArchive)).True()
}

func TestAnalyze_MissingAccountRecord(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"Account/settings.json":    `{}`,
		"Messages/c1/channel.json": `{"id":"1"}`,
	})

	uc := usecase.New()
	_, err := uc.Analyze(context.Background(), data, nil)
	gt.Error(t, err)
}

func TestAnalyze_NoActivityLog(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"Account/user.json":        `{"id":"100","username":"alice"}`,
		"Messages/c1/channel.json": `{"id":"1","type":"GUILD_TEXT","name":"general"}`,
		"Messages/c1/messages.json": `[
			{"Timestamp": "2024-03-05 10:00:00", "Contents": "hello"}
		]`,
	})

	uc := usecase.New()
	snapshot, err := uc.Analyze(context.Background(), data, nil)
	gt.NoError(t, err).Required()

	gt.Number(t, snapshot.Activity.Total()).Equal(0)
	gt.Number(t, snapshot.Aggregate.MessageCount).Equal(1)
}
