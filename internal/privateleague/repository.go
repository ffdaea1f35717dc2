package privateleague

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
)

// GetByID 按 ID 获取私人联赛，未找到时返回 (nil, nil)。
func GetByID(id uint) (*PrivateLeague, error) {
	var pl PrivateLeague
	err := database.DB.First(&pl, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询私人联赛失败: %w", err)
	}
	return &pl, nil
}

// GetByInviteCode 按邀请码获取私人联赛，未找到时返回 (nil, nil)。
// 调用方负责先把邀请码规范化。
func GetByInviteCode(code string) (*PrivateLeague, error) {
	var pl PrivateLeague
	err := database.DB.Where("invite_code = ?", code).First(&pl).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询私人联赛失败: %w", err)
	}
	return &pl, nil
}

// CodeExists 检查邀请码是否已被占用。
func CodeExists(code string) (bool, error) {
	var count int64
	err := database.DB.Model(&PrivateLeague{}).Where("invite_code = ?", code).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("检查邀请码失败: %w", err)
	}
	return count > 0, nil
}

// GetSummariesByUser 获取用户所属的所有活跃私人联赛，带创建者用户名和成员数。
func GetSummariesByUser(userID uint) ([]Summary, error) {
	var rows []Summary
	err := database.DB.Model(&PrivateLeague{}).
		Select("private_leagues.id, private_leagues.name, private_leagues.description, "+
			"private_leagues.creator_id, users.username AS creator_username, "+
			"private_leagues.invite_code, private_leagues.max_members, private_leagues.created_at, "+
			"(SELECT COUNT(*) FROM private_league_members m WHERE m.private_league_id = private_leagues.id) AS member_count").
		Joins("JOIN private_league_members ON private_league_members.private_league_id = private_leagues.id").
		Joins("JOIN users ON users.id = private_leagues.creator_id").
		Where("private_league_members.user_id = ? AND private_leagues.active = ?", userID, true).
		Order("private_leagues.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询用户私人联赛失败: %w", err)
	}
	return rows, nil
}

// GetMember 获取成员关系，未找到时返回 (nil, nil)。
func GetMember(leagueID, userID uint) (*Member, error) {
	var m Member
	err := database.DB.Where("private_league_id = ? AND user_id = ?", leagueID, userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询联赛成员失败: %w", err)
	}
	return &m, nil
}

// CountMembers 统计联赛成员数。
func CountMembers(leagueID uint) (int64, error) {
	var count int64
	err := database.DB.Model(&Member{}).Where("private_league_id = ?", leagueID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("统计联赛成员失败: %w", err)
	}
	return count, nil
}

// GetMemberViews 获取联赛的成员名册，按联赛内积分降序，同分按入会时间升序。
func GetMemberViews(leagueID uint) ([]MemberView, error) {
	var rows []MemberView
	err := database.DB.Model(&Member{}).
		Select("private_league_members.user_id, users.username, private_league_members.points, "+
			"private_league_members.is_admin, private_league_members.joined_at").
		Joins("JOIN users ON users.id = private_league_members.user_id").
		Where("private_league_members.private_league_id = ?", leagueID).
		Order("private_league_members.points DESC, private_league_members.joined_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询联赛名册失败: %w", err)
	}
	return rows, nil
}

// AddMemberPoints 给某用户在所有活跃联赛中的成员记录增加积分。
// 返回受影响的成员行数，结算传播路径使用。
func AddMemberPoints(userID uint, delta int) (int64, error) {
	result := database.DB.Model(&Member{}).
		Where("user_id = ? AND private_league_id IN (?)",
			userID,
			database.DB.Model(&PrivateLeague{}).Select("id").Where("active = ?", true)).
		Update("points", gorm.Expr("points + ?", delta))
	if result.Error != nil {
		return 0, fmt.Errorf("更新联赛成员积分失败: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// CreateTx 在事务中创建联赛记录。
func CreateTx(tx *gorm.DB, pl *PrivateLeague) error {
	if err := tx.Create(pl).Error; err != nil {
		return fmt.Errorf("创建私人联赛失败: %w", err)
	}
	return nil
}

// CreateMemberTx 在事务中创建成员记录。
func CreateMemberTx(tx *gorm.DB, m *Member) error {
	if tx == nil {
		tx = database.DB
	}
	if err := tx.Create(m).Error; err != nil {
		return fmt.Errorf("创建联赛成员失败: %w", err)
	}
	return nil
}

// DeleteMember 删除一条成员记录。
func DeleteMember(leagueID, userID uint) error {
	err := database.DB.Where("private_league_id = ? AND user_id = ?", leagueID, userID).
		Delete(&Member{}).Error
	if err != nil {
		return fmt.Errorf("删除联赛成员失败: %w", err)
	}
	return nil
}

// DeleteLeagueTx 在事务中按 消息→成员→联赛 的顺序删除整个联赛。
func DeleteLeagueTx(tx *gorm.DB, leagueID uint) error {
	if err := tx.Where("private_league_id = ?", leagueID).Delete(&Message{}).Error; err != nil {
		return fmt.Errorf("删除联赛消息失败: %w", err)
	}
	if err := tx.Where("private_league_id = ?", leagueID).Delete(&Member{}).Error; err != nil {
		return fmt.Errorf("删除联赛成员失败: %w", err)
	}
	if err := tx.Delete(&PrivateLeague{}, leagueID).Error; err != nil {
		return fmt.Errorf("删除私人联赛失败: %w", err)
	}
	return nil
}

// SetMemberPoints 直接写入某条成员记录的联赛内积分，手动同步路径使用。
func SetMemberPoints(leagueID, userID uint, points int) error {
	err := database.DB.Model(&Member{}).
		Where("private_league_id = ? AND user_id = ?", leagueID, userID).
		Update("points", points).Error
	if err != nil {
		return fmt.Errorf("写入联赛成员积分失败: %w", err)
	}
	return nil
}

// CreateMessage 持久化一条聊天消息。
func CreateMessage(msg *Message) error {
	if err := database.DB.Create(msg).Error; err != nil {
		return fmt.Errorf("保存聊天消息失败: %w", err)
	}
	return nil
}

// GetRecentMessages 获取联赛最近的 limit 条消息，按时间从旧到新返回。
func GetRecentMessages(leagueID uint, limit int) ([]MessageView, error) {
	var rows []MessageView
	err := database.DB.Model(&Message{}).
		Select("private_league_messages.id, private_league_messages.private_league_id, "+
			"private_league_messages.user_id, users.username, private_league_messages.body, "+
			"private_league_messages.created_at").
		Joins("JOIN users ON users.id = private_league_messages.user_id").
		Where("private_league_messages.private_league_id = ?", leagueID).
		Order("private_league_messages.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询聊天历史失败: %w", err)
	}
	// 倒序取最近limit条后翻转为时间正序
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}
