package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"printorders/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_KeyedByOrderID(t *testing.T) {
	event := ports.OrderStageChanged{
		ID:       "0b9f3c2e-8c55-4a3f-9a8f-1f6a1c1f2a10",
		OrderID:  "WC-1",
		From:     "Uploaded",
		To:       "Printing",
		VendorID: "v1",
		At:       time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
	}

	record, err := newRecord(context.Background(), "order.stage-changed", event)

	require.NoError(t, err)
	assert.Equal(t, "order.stage-changed", record.Topic)
	assert.Equal(t, []byte(event.ID), record.Key)
	assert.Empty(t, record.Headers)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(record.Value, &decoded))
	assert.Equal(t, "WC-1", decoded["orderId"])
	assert.Equal(t, "Uploaded", decoded["from"])
	assert.Equal(t, "Printing", decoded["to"])
	assert.Equal(t, "v1", decoded["vendorId"])
	assert.Equal(t, "2026-03-10T12:00:00Z", decoded["at"])
}

func TestNopPublisher(t *testing.T) {
	var p ports.EventPublisher = NopPublisher{}

	assert.NoError(t, p.PublishStageChanged(context.Background(), ports.OrderStageChanged{ID: "x"}))
}
