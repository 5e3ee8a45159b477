package auction

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lock_not_available
const pgLockNotAvailable = "55P03"

var (
	lockForUpdate     = clause.Locking{Strength: "UPDATE"}
	lockForUpdateSkip = clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}
)

// setLockTimeout 限制目前交易等待列鎖的時間，只對 Postgres 生效
// SET LOCAL 不支援參數綁定，因此以毫秒整數組成語句
func setLockTimeout(tx *gorm.DB, timeout time.Duration) error {
	if timeout <= 0 || tx.Dialector.Name() != "postgres" {
		return nil
	}
	return tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeout.Milliseconds())).Error
}

func isLockTimeout(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable
}
