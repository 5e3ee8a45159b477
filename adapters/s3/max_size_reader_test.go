package s3_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"r66slot/adapters/s3"
)

const imageLimit = 5 << 20

func TestMaxSizeReader(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		oneByte bool
		wantN   int
		wantErr bool
	}{
		{name: "小於上限的圖片", size: 200 << 10, wantN: 200 << 10},
		{name: "剛好等於上限", size: imageLimit, wantN: imageLimit},
		{name: "超過上限一個位元組", size: imageLimit + 1, wantN: imageLimit, wantErr: true},
		{name: "遠超過上限", size: 2 * imageLimit, wantN: imageLimit, wantErr: true},
		{name: "逐位元組讀取超過上限", size: imageLimit + 1, oneByte: true, wantN: imageLimit, wantErr: true},
		{name: "空內容", size: 0, wantN: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var source io.Reader = bytes.NewReader(make([]byte, tt.size))
			if tt.oneByte {
				source = iotest.OneByteReader(source)
			}

			got, err := io.ReadAll(s3.NewMaxSizeReader(source, imageLimit))
			assert.Len(t, got, tt.wantN)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var limitErr *s3.ReachLimitError
			require.True(t, errors.As(err, &limitErr))
			assert.Equal(t, int64(imageLimit), limitErr.MaxBytes)
			assert.Equal(t, "reach limit of 5.00 MB", err.Error())
		})
	}
}
