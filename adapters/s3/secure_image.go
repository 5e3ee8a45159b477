package s3

// SecureMIMETypesExtension 定義了拍賣圖片允許的類型及其對應的副檔名
// 類型名稱必須與 http.DetectContentType 的結果一致
var SecureMIMETypesExtension = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// CheckSecureImageAndGetExtension 檢查給定的 MIME 類型是否為允許的圖片類型，並返回對應的副檔名
func CheckSecureImageAndGetExtension(mimeType string) (bool, string) {
	ext, ok := SecureMIMETypesExtension[mimeType]
	return ok, ext
}
