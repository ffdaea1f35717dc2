package user

import (
	"errors"
	"fmt"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
	"github.com/pronofoot/football-prediction-backend/pkg/token"
)

var (
	// ErrUsernameTaken 表示注册时用户名已被占用
	ErrUsernameTaken = errors.New("用户名已被占用")
	// ErrInvalidCredentials 表示用户名或密码错误
	ErrInvalidCredentials = errors.New("用户名或密码错误")
)

// Register 创建一个新用户并签发token。
// 新用户角色固定为user，初始积分为0。
func Register(username, password string) (*User, string, error) {
	existing, err := GetByUsername(username)
	if err != nil {
		return nil, "", fmt.Errorf("查询用户失败: %w", err)
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	newUser := User{Username: username, Password: password, Role: RoleUser}
	if err := database.DB.Create(&newUser).Error; err != nil {
		return nil, "", fmt.Errorf("创建用户失败: %w", err)
	}

	t, err := token.Generate(newUser.ID, newUser.Username, newUser.Role)
	if err != nil {
		return nil, "", fmt.Errorf("签发token失败: %w", err)
	}
	return &newUser, t, nil
}

// Login 校验用户凭据并签发token。
func Login(username, password string) (*User, string, error) {
	u, err := GetByUsername(username)
	if err != nil {
		return nil, "", fmt.Errorf("查询用户失败: %w", err)
	}
	if u == nil || !u.CheckPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	t, err := token.Generate(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, "", fmt.Errorf("签发token失败: %w", err)
	}
	return u, t, nil
}
