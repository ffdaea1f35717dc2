package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 用户角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User 定义了用户的持久化模型。
// Points 是全站累计积分，只由计分引擎增加、由比赛删除的回滚减少。
type User struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Username  string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Role      string `gorm:"size:10;not null;default:user" json:"role"`
	Points    int    `gorm:"not null;default:0" json:"points"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeSave GORM Hook，在保存用户前自动哈希密码。
// 新用户创建时(ID=0)或更新密码时都会执行。
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashed)
	}
	return nil
}

// CheckPassword 校验明文密码是否与存储的哈希匹配。
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
