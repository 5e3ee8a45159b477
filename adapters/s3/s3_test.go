package s3_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"r66slot/adapters/s3"
)

type fakePutter struct {
	input *awss3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	return &awss3.PutObjectOutput{}, nil
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestNewImageUploader(t *testing.T) {
	tests := []struct {
		name    string
		client  s3.IObjectPutter
		bucket  string
		baseURL string
		errMsg  string
	}{
		{
			name:    "valid configuration",
			client:  &fakePutter{},
			bucket:  "auction-images",
			baseURL: "https://cdn.example.com",
		},
		{
			name:    "missing client",
			bucket:  "auction-images",
			baseURL: "https://cdn.example.com",
			errMsg:  "S3 client is required",
		},
		{
			name:    "missing bucket",
			client:  &fakePutter{},
			baseURL: "https://cdn.example.com",
			errMsg:  "Bucket is required",
		},
		{
			name:    "invalid base URL",
			client:  &fakePutter{},
			bucket:  "auction-images",
			baseURL: "://bad",
			errMsg:  "Fail to parse public base URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uploader, err := s3.NewImageUploader(tt.client, tt.bucket, tt.baseURL)
			if tt.errMsg != "" {
				assert.ErrorContains(t, err, tt.errMsg)
				assert.Nil(t, uploader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5<<20), uploader.MaxSize())
		})
	}
}

func TestImageUploader_UploadAuctionImage(t *testing.T) {
	auctionID := uuid.MustParse("0195e1b4-7d2a-7c3e-9f10-2a4b6c8d0e1f")

	t.Run("上傳 PNG 圖片", func(t *testing.T) {
		putter := &fakePutter{}
		uploader, err := s3.NewImageUploader(putter, "auction-images", "https://cdn.example.com/media")
		require.NoError(t, err)

		object, err := uploader.UploadAuctionImage(context.Background(), auctionID, bytes.NewReader(pngHeader))
		require.NoError(t, err)

		assert.Equal(t, "image/png", object.MIMEType)
		assert.Equal(t, int64(len(pngHeader)), object.Size)
		assert.True(t, strings.HasPrefix(object.Key, "auctions/"+auctionID.String()+"/"))
		assert.True(t, strings.HasSuffix(object.Key, ".png"))
		assert.Equal(t, "https://cdn.example.com/media/"+object.Key, object.URL)

		require.NotNil(t, putter.input)
		assert.Equal(t, "auction-images", *putter.input.Bucket)
		assert.Equal(t, "image/png", *putter.input.ContentType)
		assert.Equal(t, pngHeader, putter.body)
	})

	t.Run("拒絕非圖片內容", func(t *testing.T) {
		putter := &fakePutter{}
		uploader, err := s3.NewImageUploader(putter, "auction-images", "https://cdn.example.com")
		require.NoError(t, err)

		_, err = uploader.UploadAuctionImage(context.Background(), auctionID, strings.NewReader("%PDF-1.7 not an image"))
		assert.ErrorIs(t, err, s3.ErrUnsupportedImage)
		assert.Nil(t, putter.input)
	})

	t.Run("超過大小上限", func(t *testing.T) {
		putter := &fakePutter{}
		uploader, err := s3.NewImageUploader(putter, "auction-images", "https://cdn.example.com",
			s3.WithUploaderMaxSize(8),
		)
		require.NoError(t, err)

		_, err = uploader.UploadAuctionImage(context.Background(), auctionID, bytes.NewReader(pngHeader))
		var limitErr *s3.ReachLimitError
		require.True(t, errors.As(err, &limitErr))
		assert.Equal(t, int64(8), limitErr.MaxBytes)
		assert.Nil(t, putter.input)
	})

	t.Run("上傳失敗", func(t *testing.T) {
		putter := &fakePutter{err: errors.New("access denied")}
		uploader, err := s3.NewImageUploader(putter, "auction-images", "https://cdn.example.com",
			s3.WithUploaderKeyPrefix("r66"),
		)
		require.NoError(t, err)

		_, err = uploader.UploadAuctionImage(context.Background(), auctionID, bytes.NewReader(pngHeader))
		assert.ErrorContains(t, err, "access denied")
	})
}
