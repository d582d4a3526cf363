package relay

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gm-bridge-bot/internal/core/model"
	modeldb "gm-bridge-bot/internal/lib/database/model"
)

type fakeFetcher struct {
	messages []*model.Message
	err      error
}

func (f *fakeFetcher) MessagesSince(link *model.ChannelLink) ([]*model.Message, error) {
	return f.messages, f.err
}

type fakeSink struct {
	sent   []string
	failOn string
}

func (f *fakeSink) SendGroupMeMessage(discordChannelID string, message *model.Message) ([]string, error) {
	if message.ID == f.failOn {
		return nil, errors.New("доставка оборвалась")
	}
	f.sent = append(f.sent, message.ID)
	return []string{"d-" + message.ID + "-0", "d-" + message.ID + "-1"}, nil
}

type fakeLinkStore struct {
	watermarks []string
	err        error
}

func (f *fakeLinkStore) SetLink(discordChannelID string, link *model.ChannelLink) error {
	if f.err != nil {
		return f.err
	}
	f.watermarks = append(f.watermarks, link.LastMessageID)
	return nil
}

type fakeHistory struct {
	records []modeldb.RelayMessage
	err     error
}

func (f *fakeHistory) CreateRelayMessage(message modeldb.RelayMessage) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, message)
	return nil
}

func testMessage(id string) *model.Message {
	return &model.Message{
		ID:        id,
		Member:    model.Member{ID: "u1", Name: "Alice"},
		GroupID:   "42",
		CreatedAt: time.Unix(1700000000, 0),
		Text:      "текст " + id,
	}
}

func TestPending_DelegatesToFetcher(t *testing.T) {
	fetcher := &fakeFetcher{messages: []*model.Message{testMessage("49"), testMessage("50")}}
	relayer := NewRelayer(fetcher, &fakeSink{}, &fakeLinkStore{}, nil)

	link := model.NewChannelLink("42", "Test Group")
	messages, err := relayer.Pending(link)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	// Выборка ничего не отправляет и знак не двигает.
	assert.Equal(t, "0", link.LastMessageID)
}

func TestPending_FetchErrorLeavesWatermarkUntouched(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("GroupMe недоступен")}
	relayer := NewRelayer(fetcher, &fakeSink{}, &fakeLinkStore{}, nil)

	link := model.NewChannelLink("42", "Test Group")
	_, err := relayer.Pending(link)

	require.Error(t, err)
	assert.Equal(t, "0", link.LastMessageID)
}

func TestDeliver_AdvancesWatermarkPerMessage(t *testing.T) {
	sink := &fakeSink{}
	links := &fakeLinkStore{}
	history := &fakeHistory{}

	link := model.NewChannelLink("42", "Test Group")
	relayer := NewRelayer(&fakeFetcher{}, sink, links, history)

	count, err := relayer.Deliver("chan-1", link, []*model.Message{testMessage("49"), testMessage("50")})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"49", "50"}, sink.sent, "сообщения уходят от старых к новым")
	assert.Equal(t, []string{"49", "50"}, links.watermarks, "знак двигается после каждого сообщения")
	assert.Equal(t, "50", link.LastMessageID)
}

func TestDeliver_FailureKeepsCommittedProgress(t *testing.T) {
	sink := &fakeSink{failOn: "50"}
	links := &fakeLinkStore{}

	link := model.NewChannelLink("42", "Test Group")
	relayer := NewRelayer(&fakeFetcher{}, sink, links, nil)

	count, err := relayer.Deliver("chan-1", link, []*model.Message{testMessage("49"), testMessage("50"), testMessage("51")})

	require.Error(t, err)
	assert.Equal(t, 1, count)
	// Доставленное зафиксировано, недоставленное знак не трогает.
	assert.Equal(t, []string{"49"}, links.watermarks)
	assert.Equal(t, "49", link.LastMessageID)
	assert.NotContains(t, sink.sent, "51", "после ошибки запуск прерывается")
}

func TestDeliver_RecordsHistoryPerChunk(t *testing.T) {
	history := &fakeHistory{}
	relayer := NewRelayer(&fakeFetcher{}, &fakeSink{}, &fakeLinkStore{}, history)

	_, err := relayer.Deliver("chan-1", model.NewChannelLink("42", "Test Group"), []*model.Message{testMessage("49")})

	require.NoError(t, err)
	require.Len(t, history.records, 2)
	assert.Equal(t, modeldb.RelayMessage{
		ChannelID:    "chan-1",
		GroupMeMsgID: "49",
		DiscordMsgID: "d-49-0",
		ChunkIndex:   0,
	}, history.records[0])
	assert.Equal(t, 1, history.records[1].ChunkIndex)
}

func TestDeliver_HistoryErrorIsNotFatal(t *testing.T) {
	history := &fakeHistory{err: errors.New("база недоступна")}
	links := &fakeLinkStore{}
	relayer := NewRelayer(&fakeFetcher{}, &fakeSink{}, links, history)

	count, err := relayer.Deliver("chan-1", model.NewChannelLink("42", "Test Group"), []*model.Message{testMessage("49")})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"49"}, links.watermarks)
}
