//go:generate mockgen -package=s3 -destination=mock.go -source=interfaces.go

package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// IObjectPutter 定義了上傳物件所需的 S3 操作，*s3.Client 即為其實作
type IObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}
