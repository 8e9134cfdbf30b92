package network_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shaddyshad/p2p-chat/domain"
	"github.com/shaddyshad/p2p-chat/errors"
	"github.com/shaddyshad/p2p-chat/network"
	"github.com/stretchr/testify/require"
)

func Test_Message_Round_Trip(t *testing.T) {
	req := require.New(t)

	// Given a message with known id and timestamp
	msg := domain.Message{
		ID:        uuid.MustParse("6f1c7d1e-3c1a-4e0b-9a55-2d5bd8d3b0a1"),
		Source:    "pA",
		GroupName: "chat001",
		Body:      "hi ünïcødé",
		Timestamp: time.Date(2024, 5, 1, 12, 30, 0, 123456789, time.UTC),
	}

	// When it goes through the wire
	data, err := network.Encode(msg)
	req.NoError(err)
	decoded, err := network.Decode(data)

	// Then every field survives
	req.NoError(err)
	req.Equal(msg.ID, decoded.ID)
	req.Equal(msg.Source, decoded.Source)
	req.Equal(msg.GroupName, decoded.GroupName)
	req.Equal(msg.Body, decoded.Body)
	req.True(msg.Timestamp.Equal(decoded.Timestamp))
	req.Nil(decoded.ReplyID)
	req.NotContains(string(data), "reply_id")
}

func Test_Message_Round_Trip_With_Reply(t *testing.T) {
	req := require.New(t)

	// Given a reply
	original := domain.NewMessage("first", "pA", "chat001")
	reply := domain.NewMessage("second", "pB", "chat001").WithReply(original.ID)

	// When
	data, err := network.Encode(reply)
	req.NoError(err)
	decoded, err := network.Decode(data)

	// Then
	req.NoError(err)
	req.NotNil(decoded.ReplyID)
	req.Equal(original.ID, *decoded.ReplyID)
}

func Test_Decode_Uses_Wire_Member_Names(t *testing.T) {
	req := require.New(t)

	// Given a payload produced by another peer with extra members
	data := []byte(`{
		"id": "6f1c7d1e-3c1a-4e0b-9a55-2d5bd8d3b0a1",
		"source": "pB",
		"msg": "hello",
		"topic": "chat001",
		"ts": "2024-05-01T12:30:00Z",
		"colour": "blue",
		"meta": {"client": "other"}
	}`)

	// When
	msg, err := network.Decode(data)

	// Then unknown members are ignored
	req.NoError(err)
	req.Equal("pB", msg.Source)
	req.Equal("hello", msg.Body)
	req.Equal("chat001", msg.GroupName)
	req.Equal(2024, msg.Timestamp.Year())
}

func Test_Decode_Without_Timestamp(t *testing.T) {
	req := require.New(t)

	// When ts is missing
	msg, err := network.Decode([]byte(`{"id":"6f1c7d1e-3c1a-4e0b-9a55-2d5bd8d3b0a1","source":"pB","msg":"x","topic":"t"}`))

	// Then the message is accepted
	req.NoError(err)
	req.True(msg.Timestamp.IsZero())
}

func Test_Decode_Rejects_Bad_Payloads(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "Not JSON", data: `hello`},
		{name: "Missing id", data: `{"source":"pB","msg":"x","topic":"t"}`},
		{name: "Missing topic", data: `{"id":"6f1c7d1e-3c1a-4e0b-9a55-2d5bd8d3b0a1","source":"pB","msg":"x"}`},
		{name: "Invalid id", data: `{"id":"nope","source":"pB","msg":"x","topic":"t"}`},
		{name: "Wrong type", data: `{"id":"6f1c7d1e-3c1a-4e0b-9a55-2d5bd8d3b0a1","source":1,"msg":"x","topic":"t"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := network.Decode([]byte(tt.data))
			require.ErrorIs(t, err, errors.ErrSerialization)
		})
	}
}
