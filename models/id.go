package models

import (
	"fmt"

	"github.com/google/uuid"
)

// assignID 在主鍵尚未設定時產生 UUIDv7，讓主鍵依建立時間遞增
func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}
	v7, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("fail to generate uuid v7, err=%w", err)
	}
	*id = v7
	return nil
}
