package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// secretKey 是用于签发和校验JWT的HMAC密钥。
// 通过Configure从配置加载；配置为空时在启动阶段随机生成一个，
// 重启后旧token全部失效，客户端会自然地重新登录。
var secretKey []byte

// tokenTTL 是签发token的有效期。
var tokenTTL = time.Hour

// Claims 定义了JWT中携带的用户信息。
// sub 字段存放用户名，和数据库中的用户一一对应。
type Claims struct {
	UserID uint   `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Configure 设置签名密钥和token有效期。
// secret为空时生成一个密码学安全的32字节随机密钥。
func Configure(secret string, ttl time.Duration) {
	if secret != "" {
		secretKey = []byte(secret)
	} else {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic("无法生成安全的JWT密钥: " + err.Error())
		}
		secretKey = key
		fmt.Printf("未配置JWT密钥，已随机生成: %s...\n", base64.RawURLEncoding.EncodeToString(key)[:8])
	}
	if ttl > 0 {
		tokenTTL = ttl
	}
}

// Generate 为指定用户签发一个HS256的JWT。
func Generate(userID uint, username string, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secretKey)
}

// Parse 校验token字符串并返回其中的Claims。
// 签名无效、过期或算法不匹配都会返回错误。
func Parse(tokenString string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("意外的签名算法: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("无效的Token")
	}
	return claims, nil
}

// Username 返回Claims中的用户名。
func (c *Claims) Username() string {
	return c.Subject
}
