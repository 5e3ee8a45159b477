package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrUnsupportedImage = errors.New("unsupported image type")

type uploaderOptions struct {
	maxSize   int64
	keyPrefix string
}

type UploaderOption func(*uploaderOptions)

// WithUploaderMaxSize 設置單張圖片的大小上限
func WithUploaderMaxSize(size int64) UploaderOption {
	return func(o *uploaderOptions) {
		o.maxSize = size
	}
}

// WithUploaderKeyPrefix 設置物件鍵的前綴
func WithUploaderKeyPrefix(prefix string) UploaderOption {
	return func(o *uploaderOptions) {
		o.keyPrefix = prefix
	}
}

// ImageUploader 將拍賣圖片上傳到 S3 相容的物件儲存
type ImageUploader struct {
	client         IObjectPutter
	bucket         string
	publicEndpoint *url.URL
	options        uploaderOptions
}

// UploadedObject 是上傳完成的圖片資訊
type UploadedObject struct {
	Key      string
	URL      string
	MIMEType string
	Size     int64
}

func NewImageUploader(client IObjectPutter, bucket, publicBaseURL string, opts ...UploaderOption) (*ImageUploader, error) {
	const op = "NewImageUploader"
	if client == nil {
		return nil, fmt.Errorf("[%s] S3 client is required", op)
	}
	if bucket == "" {
		return nil, fmt.Errorf("[%s] Bucket is required", op)
	}
	publicEndpoint, err := url.Parse(publicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to parse public base URL, err=%w", op, err)
	}

	// 默認選項
	options := uploaderOptions{
		maxSize:   5 << 20,
		keyPrefix: "auctions",
	}

	// 應用自定義選項
	for _, opt := range opts {
		opt(&options)
	}

	return &ImageUploader{
		client:         client,
		bucket:         bucket,
		publicEndpoint: publicEndpoint,
		options:        options,
	}, nil
}

// MaxSize 返回單張圖片的大小上限
func (u *ImageUploader) MaxSize() int64 {
	return u.options.maxSize
}

// UploadAuctionImage 讀取圖片內容並上傳，圖片類型依內容判斷而不是依賴客戶端宣告
// 超過大小上限時返回 ReachLimitError，非允許的類型返回 ErrUnsupportedImage
func (u *ImageUploader) UploadAuctionImage(ctx context.Context, auctionID uuid.UUID, r io.Reader) (UploadedObject, error) {
	const op = "UploadAuctionImage"

	content, err := io.ReadAll(NewMaxSizeReader(r, u.options.maxSize))
	if err != nil {
		return UploadedObject{}, err
	}

	mimeType := http.DetectContentType(content)
	ok, ext := CheckSecureImageAndGetExtension(mimeType)
	if !ok {
		return UploadedObject{}, fmt.Errorf("%w: %s", ErrUnsupportedImage, mimeType)
	}

	name, err := uuid.NewV7()
	if err != nil {
		return UploadedObject{}, fmt.Errorf("[%s] Fail to generate object name, err=%w", op, err)
	}
	key := path.Join(u.options.keyPrefix, auctionID.String(), name.String()+"."+ext)

	if _, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(mimeType),
		ContentLength: aws.Int64(int64(len(content))),
		CacheControl:  aws.String("public, max-age=31536000, immutable"),
	}); err != nil {
		return UploadedObject{}, fmt.Errorf("[%s] Fail to upload file to S3, err=%w", op, err)
	}

	uri := *u.publicEndpoint
	uri.Path = path.Join("/", uri.Path, key)
	return UploadedObject{
		Key:      key,
		URL:      uri.String(),
		MIMEType: mimeType,
		Size:     int64(len(content)),
	}, nil
}
