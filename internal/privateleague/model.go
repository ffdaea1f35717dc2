package privateleague

import "time"

// PrivateLeague 定义了用户自建的私人联赛。
// 邀请码全局唯一，是加入的唯一入口。
type PrivateLeague struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description *string   `gorm:"size:500" json:"description"`
	CreatorID   uint      `gorm:"index;not null" json:"creator_id"`
	InviteCode  string    `gorm:"size:6;uniqueIndex;not null" json:"invite_code"`
	MaxMembers  int       `gorm:"not null;default:20" json:"max_members"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Member 定义了私人联赛的成员关系。
// Points 是联赛内积分，入会时从全局积分快照一份，此后只随结算增量更新，
// 与全局积分可以产生分叉。IsAdmin 独立于平台管理员角色。
type Member struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	PrivateLeagueID uint      `gorm:"uniqueIndex:idx_league_user;index;not null" json:"private_league_id"`
	UserID          uint      `gorm:"uniqueIndex:idx_league_user;not null" json:"user_id"`
	Points          int       `gorm:"not null;default:0" json:"points"`
	IsAdmin         bool      `gorm:"not null;default:false" json:"is_admin"`
	JoinedAt        time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// TableName 指定成员表名，避免默认的members歧义。
func (Member) TableName() string {
	return "private_league_members"
}

// Message 定义了私人联赛聊天室的持久化消息。
type Message struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	PrivateLeagueID uint      `gorm:"index;not null" json:"private_league_id"`
	UserID          uint      `gorm:"not null" json:"user_id"`
	Body            string    `gorm:"size:1000;not null" json:"body"`
	CreatedAt       time.Time `json:"created_at"`
}

// TableName 指定消息表名。
func (Message) TableName() string {
	return "private_league_messages"
}

// Summary 是"我的联赛"列表的视图。
type Summary struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description"`
	CreatorID       uint      `json:"creator_id"`
	CreatorUsername string    `json:"creator_username"`
	InviteCode      string    `json:"invite_code"`
	MaxMembers      int       `json:"max_members"`
	MemberCount     int       `json:"member_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// MemberView 是联赛详情页的成员视图，按联赛内积分降序排列。
type MemberView struct {
	UserID   uint      `json:"user_id"`
	Username string    `json:"username"`
	Points   int       `json:"points"`
	IsAdmin  bool      `json:"is_admin"`
	JoinedAt time.Time `json:"joined_at"`
}

// MessageView 是带用户名的聊天消息视图。
type MessageView struct {
	ID              uint      `json:"id"`
	PrivateLeagueID uint      `json:"private_league_id"`
	UserID          uint      `json:"user_id"`
	Username        string    `json:"username"`
	Body            string    `json:"body"`
	CreatedAt       time.Time `json:"created_at"`
}
