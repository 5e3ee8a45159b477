package api

import "github.com/redis/go-redis/v9"

// BidThrottleScript 用於限制同一位競標者對同一場拍賣的出價頻率
//
//	KEYS[1] - 計數鍵
//	ARGV[1] - 時間窗口內允許的次數
//	ARGV[2] - 時間窗口長度(毫秒)
//
// 返回值:
//
//	1 - 允許出價
//	0 - 超過次數限制
//
// 流程:
//   - 1. 計數加一
//   - 2. 如果是窗口內第一次出價，設定過期時間
//   - 3. 計數超過限制時返回0，否則返回1
var BidThrottleScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('PEXPIRE', KEYS[1], ARGV[2])
end

if count > tonumber(ARGV[1]) then
    return 0
end

return 1
`)
