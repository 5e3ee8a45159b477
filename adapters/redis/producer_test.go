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

func TestNewProducer(t *testing.T) {
	tests := []struct {
		name    string
		client  *redis.Client
		stream  string
		opts    []ProducerOption[TestBid]
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid configuration",
			client: redis.NewClient(&redis.Options{}),
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
			client:  redis.NewClient(&redis.Options{}),
			wantErr: true,
			errMsg:  "stream cannot be empty",
		},
		{
			name:    "negative max length",
			client:  redis.NewClient(&redis.Options{}),
			stream:  "auction:bids",
			opts:    []ProducerOption[TestBid]{WithProducerMaxLen[TestBid](-1)},
			wantErr: true,
			errMsg:  "max length must not be negative",
		},
		{
			name:   "with custom options",
			client: redis.NewClient(&redis.Options{}),
			stream: "auction:bids",
			opts: []ProducerOption[TestBid]{
				WithProducerLogger[TestBid](discardLogger),
				WithProducerBufferSize[TestBid](200),
				WithProducerMaxLen[TestBid](0),
				WithProducerEncodeFunc[TestBid](func(TestBid) (map[string]any, error) {
					return map[string]any{"test": "value"}, nil
				}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)

			producer, err := NewProducer[TestBid](tt.client, tt.stream, tt.opts...)

			if tt.wantErr {
				assert.ErrorContains(t, err, tt.errMsg)
				assert.Nil(t, producer)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, producer)
				producer.Close()
			}

			if tt.client != nil {
				tt.client.Close()
			}
		})
	}
}

func TestProducer_StartClose(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, _, cleanup := setupTest(t)
	defer cleanup()

	producer, err := NewProducer[TestBid](client, "auction:bids", WithProducerLogger[TestBid](discardLogger))
	require.NoError(t, err)

	producer.Start()
	producer.Start() // 重複啟動不會建立第二個 goroutine
	producer.Close()
	producer.Close()

	// 關閉後可以重新啟動
	producer.Start()
	producer.Close()
}

func TestProducer_Publish(t *testing.T) {
	bid := TestBid{AuctionID: "a-1", Amount: "55.00", PlacedAt: time.Unix(1700000000, 0).UTC()}

	t.Run("publish with approximate trimming", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		values, err := EncodeMessage(bid)
		require.NoError(t, err)
		mock.ExpectXAdd(&redis.XAddArgs{
			Stream: "auction:bids",
			MaxLen: 500,
			Approx: true,
			Values: values,
		}).SetVal("1-0")

		producer, err := NewProducer[TestBid](client, "auction:bids",
			WithProducerLogger[TestBid](discardLogger),
			WithProducerMaxLen[TestBid](500),
		)
		require.NoError(t, err)

		producer.Start()
		require.NoError(t, producer.Publish(bid))
		assert.Eventually(t, func() bool {
			return mock.ExpectationsWereMet() == nil
		}, time.Second, 10*time.Millisecond)
		producer.Close()
	})

	t.Run("publish without trimming", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		values, err := EncodeMessage(bid)
		require.NoError(t, err)
		mock.ExpectXAdd(&redis.XAddArgs{
			Stream: "auction:bids",
			Values: values,
		}).SetVal("1-0")

		producer, err := NewProducer[TestBid](client, "auction:bids",
			WithProducerLogger[TestBid](discardLogger),
			WithProducerMaxLen[TestBid](0),
		)
		require.NoError(t, err)

		producer.Start()
		require.NoError(t, producer.Publish(bid))
		assert.Eventually(t, func() bool {
			return mock.ExpectationsWereMet() == nil
		}, time.Second, 10*time.Millisecond)
		producer.Close()
	})

	t.Run("publish to closed producer", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		client, _, cleanup := setupTest(t)
		defer cleanup()

		producer, err := NewProducer[TestBid](client, "auction:bids", WithProducerLogger[TestBid](discardLogger))
		require.NoError(t, err)

		assert.ErrorIs(t, producer.Publish(bid), ErrProducerClosed)
		producer.Start()
		producer.Close()
		assert.ErrorIs(t, producer.Publish(bid), ErrProducerClosed)
	})

	t.Run("encode error", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		client, _, cleanup := setupTest(t)
		defer cleanup()

		producer, err := NewProducer[TestBid](client, "auction:bids",
			WithProducerLogger[TestBid](discardLogger),
			WithProducerEncodeFunc[TestBid](func(TestBid) (map[string]any, error) {
				return nil, errors.New("boom")
			}),
		)
		require.NoError(t, err)

		producer.Start()
		assert.ErrorContains(t, producer.Publish(bid), "encode message error")
		producer.Close()
	})

	t.Run("redis error does not stop producer", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		client, mock, cleanup := setupTest(t)
		defer cleanup()

		values, err := EncodeMessage(bid)
		require.NoError(t, err)
		mock.ExpectXAdd(&redis.XAddArgs{Stream: "auction:bids", Values: values}).SetErr(errors.New("connection reset"))
		mock.ExpectXAdd(&redis.XAddArgs{Stream: "auction:bids", Values: values}).SetVal("2-0")

		producer, err := NewProducer[TestBid](client, "auction:bids",
			WithProducerLogger[TestBid](discardLogger),
			WithProducerMaxLen[TestBid](0),
		)
		require.NoError(t, err)

		producer.Start()
		require.NoError(t, producer.Publish(bid))
		require.NoError(t, producer.Publish(bid))
		assert.Eventually(t, func() bool {
			return mock.ExpectationsWereMet() == nil
		}, time.Second, 10*time.Millisecond)
		producer.Close()
	})
}

func TestProducerConsumer_RoundTrip(t *testing.T) {
	defer goleak.VerifyNone(t)
	client, _, cleanup := setupMiniredis(t)
	defer cleanup()

	consumer, err := NewConsumer[TestBid](client, "auction:bids",
		WithConsumerLogger[TestBid](discardLogger),
		WithConsumerStartID[TestBid]("0"),
		WithConsumerBlockTimeout[TestBid](50*time.Millisecond),
	)
	require.NoError(t, err)
	producer, err := NewProducer[TestBid](client, "auction:bids", WithProducerLogger[TestBid](discardLogger))
	require.NoError(t, err)

	producer.Start()
	defer producer.Close()
	consumer.Start()
	defer consumer.Close()

	sent := []TestBid{
		{AuctionID: "a-1", Amount: "55.00"},
		{AuctionID: "a-1", Amount: "60.00"},
	}
	for _, bid := range sent {
		require.NoError(t, producer.Publish(bid))
	}

	for _, want := range sent {
		select {
		case got := <-consumer.Subscribe():
			assert.Equal(t, want.Amount, got.Amount)
		case <-time.After(2 * time.Second):
			t.Fatal("message not received")
		}
	}
}
