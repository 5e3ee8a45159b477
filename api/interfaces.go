package api

import (
	"context"
	"io"

	"github.com/google/uuid"

	internalS3 "r66slot/adapters/s3"
)

// IImageUploader 定義了拍賣圖片上傳的介面
type IImageUploader interface {
	UploadAuctionImage(ctx context.Context, auctionID uuid.UUID, r io.Reader) (internalS3.UploadedObject, error)
	MaxSize() int64
}
