package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewConsumer(t *testing.T) {
	client, _, cleanup := setupTest(t)
	defer cleanup()

	tests := []struct {
		name    string
		client  *redis.Client
		stream  string
		opts    []ConsumerOption[TestBid]
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid configuration",
			client: client,
			stream: "auction:bids",
		},
		{
			name:    "nil client",
			stream:  "auction:bids",
			wantErr: true,
			errMsg:  "redis client cannot be nil",
		},
		{
			name:    "empty stream",
			client:  client,
			wantErr: true,
			errMsg:  "stream cannot be empty",
		},
		{
			name:    "zero batch size",
			client:  client,
			stream:  "auction:bids",
			opts:    []ConsumerOption[TestBid]{WithConsumerBatchSize[TestBid](0)},
			wantErr: true,
			errMsg:  "batch size must be positive",
		},
		{
			name:   "with all options",
			client: client,
			stream: "auction:bids",
			opts: []ConsumerOption[TestBid]{
				WithConsumerLogger[TestBid](discardLogger),
				WithConsumerBufferSize[TestBid](200),
				WithConsumerBatchSize[TestBid](5),
				WithConsumerBlockTimeout[TestBid](2 * time.Second),
				WithConsumerRetryDelay[TestBid](10 * time.Millisecond),
				WithConsumerStartID[TestBid]("0"),
				WithConsumerDecodeFunc[TestBid](func(map[string]any) (TestBid, error) {
					return TestBid{}, nil
				}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			consumer, err := NewConsumer[TestBid](tt.client, tt.stream, tt.opts...)

			if tt.wantErr {
				assert.ErrorContains(t, err, tt.errMsg)
				assert.Nil(t, consumer)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, consumer)
				consumer.Close()
			}
		})
	}
}

func TestConsumer_CloseWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, _, cleanup := setupTest(t)
	defer cleanup()

	consumer, err := NewConsumer[TestBid](client, "auction:bids")
	require.NoError(t, err)

	consumer.Close()
	_, ok := <-consumer.Subscribe()
	assert.False(t, ok)

	// 關閉後啟動不會有任何作用
	consumer.Start()
	consumer.Close()
}

func TestConsumer_ReadsBatches(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, mock, cleanup := setupTest(t)
	defer cleanup()

	first, err := EncodeMessage(TestBid{AuctionID: "a-1", Amount: "55.00"})
	require.NoError(t, err)
	second, err := EncodeMessage(TestBid{AuctionID: "a-1", Amount: "60.00"})
	require.NoError(t, err)

	mock.ExpectXRead(&redis.XReadArgs{
		Streams: []string{"auction:bids", "$"},
		Count:   10,
		Block:   time.Second,
	}).SetVal([]redis.XStream{{
		Stream: "auction:bids",
		Messages: []redis.XMessage{
			{ID: "1-0", Values: map[string]any{PayloadField: string(first[PayloadField].([]byte))}},
			{ID: "1-1", Values: map[string]any{"garbage": "x"}},
			{ID: "2-0", Values: map[string]any{PayloadField: string(second[PayloadField].([]byte))}},
		},
	}})
	// 下一次讀取必須從最後一筆訊息之後開始
	mock.ExpectXRead(&redis.XReadArgs{
		Streams: []string{"auction:bids", "2-0"},
		Count:   10,
		Block:   time.Second,
	}).SetErr(redis.Nil)

	consumer, err := NewConsumer[TestBid](client, "auction:bids", WithConsumerLogger[TestBid](discardLogger))
	require.NoError(t, err)
	consumer.Start()

	var amounts []string
	for range 2 {
		select {
		case bid := <-consumer.Subscribe():
			amounts = append(amounts, bid.Amount)
		case <-time.After(time.Second):
			t.Fatal("message not received")
		}
	}
	assert.Equal(t, []string{"55.00", "60.00"}, amounts)

	assert.Eventually(t, func() bool {
		return mock.ExpectationsWereMet() == nil
	}, time.Second, 10*time.Millisecond)
	consumer.Close()
}

func TestConsumer_RetriesAfterError(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, mock, cleanup := setupTest(t)
	defer cleanup()

	args := &redis.XReadArgs{
		Streams: []string{"auction:bids", "$"},
		Count:   10,
		Block:   time.Second,
	}
	mock.ExpectXRead(args).SetErr(errors.New("connection refused"))
	mock.ExpectXRead(args).SetErr(redis.Nil)

	consumer, err := NewConsumer[TestBid](client, "auction:bids",
		WithConsumerLogger[TestBid](discardLogger),
		WithConsumerRetryDelay[TestBid](10*time.Millisecond),
	)
	require.NoError(t, err)
	consumer.Start()

	assert.Eventually(t, func() bool {
		return mock.ExpectationsWereMet() == nil
	}, time.Second, 10*time.Millisecond)
	consumer.Close()
}
