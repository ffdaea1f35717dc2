package invitecode

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// charset 是邀请码的字符集：大写字母加数字，共36个符号。
const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Length 是邀请码的固定长度。
const Length = 6

// Generate 生成一个6位随机邀请码。
// 碰撞概率极低，但调用方仍需查库确认唯一后才能使用。
func Generate() string {
	var sb strings.Builder
	sb.Grow(Length)
	max := big.NewInt(int64(len(charset)))
	for i := 0; i < Length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("无法生成随机邀请码: " + err.Error())
		}
		sb.WriteByte(charset[n.Int64()])
	}
	return sb.String()
}

// Normalize 把外部输入的邀请码统一为存储格式（大写、去空白）。
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
