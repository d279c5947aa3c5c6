package uuid

import (
	"encoding/hex"

	"github.com/gofrs/uuid"
)

// HexLen 不带连字符的 UUID 长度
const HexLen = 32

// GenUUID4 生成不带连字符的 UUID4，用作请求 ID
func GenUUID4() string {
	return hex.EncodeToString(uuid.Must(uuid.NewV4()).Bytes())
}
