package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestEncodeDecodeMessage(t *testing.T) {
	bid := TestBid{
		AuctionID: "a-1",
		Amount:    "125.50",
		PlacedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	values, err := EncodeMessage(bid)
	require.NoError(t, err)
	require.Contains(t, values, PayloadField)

	// go-redis 讀回的欄位值為字串
	payload, ok := values[PayloadField].([]byte)
	require.True(t, ok)
	decoded, err := DecodeMessage[TestBid](map[string]any{PayloadField: string(payload)})
	require.NoError(t, err)
	assert.Equal(t, bid.AuctionID, decoded.AuctionID)
	assert.Equal(t, bid.Amount, decoded.Amount)
	assert.True(t, bid.PlacedAt.Equal(decoded.PlacedAt))
}

func TestEncodeMessage_Pointer(t *testing.T) {
	_, err := EncodeMessage(&TestBid{})
	assert.ErrorIs(t, err, ErrPointerType)
}

func TestDecodeMessage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		wantErr error
		errMsg  string
	}{
		{
			name:    "缺少 payload 欄位",
			values:  map[string]any{"data": "x"},
			wantErr: ErrMissingPayload,
		},
		{
			name:    "payload 型別錯誤",
			values:  map[string]any{PayloadField: 42},
			wantErr: ErrMissingPayload,
		},
		{
			name:   "payload 不是 msgpack",
			values: map[string]any{PayloadField: "\xc1"},
			errMsg: "msgpack unmarshal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMessage[TestBid](tt.values)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.ErrorContains(t, err, tt.errMsg)
			}
		})
	}

	_, err := DecodeMessage[*TestBid](map[string]any{})
	assert.ErrorIs(t, err, ErrPointerType)
}

func TestDecodeMessage_Bytes(t *testing.T) {
	payload, err := msgpack.Marshal(TestBid{Amount: "10.00"})
	require.NoError(t, err)

	decoded, err := DecodeMessage[TestBid](map[string]any{PayloadField: payload})
	require.NoError(t, err)
	assert.Equal(t, "10.00", decoded.Amount)
}
