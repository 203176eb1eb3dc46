package kafka

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventMessage_Message(t *testing.T) {
	event := EventMessage{
		ID:         "evt-1",
		Type:       "campaign.launched",
		UserID:     "user-1",
		CampaignID: "campaign-1",
		Data:       map[string]interface{}{"post_count": 9},
		Timestamp:  "2025-03-01T10:00:00Z",
	}

	msg, err := event.Message()
	require.NoError(t, err)

	assert.Equal(t, "campaign-1", string(msg.Key))
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "campaign.launched", string(msg.Headers[0].Value))
	assert.Equal(t, "user-1", string(msg.Headers[1].Value))

	var decoded EventMessage
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, float64(9), decoded.Data["post_count"])
}
