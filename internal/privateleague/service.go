package privateleague

import (
	"errors"
	"fmt"
	"log"

	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
	"github.com/pronofoot/football-prediction-backend/internal/user"
	"github.com/pronofoot/football-prediction-backend/pkg/invitecode"
	"gorm.io/gorm"
)

// 私人联赛路径的业务错误。
var (
	ErrLeagueNotFound     = errors.New("私人联赛不存在")
	ErrInvalidCode        = errors.New("邀请码无效")
	ErrLeagueInactive     = errors.New("该联赛已停用")
	ErrAlreadyMember      = errors.New("已是该联赛成员")
	ErrLeagueFull         = errors.New("该联赛人数已满")
	ErrNotMember          = errors.New("不是该联赛成员")
	ErrCreatorCannotLeave = errors.New("创建者不能退出自己的联赛")
	ErrNotLeagueAdmin     = errors.New("需要联赛管理员权限")
)

// 邀请码碰撞时的重试上限。6位36字符的空间下几乎不会用到。
const maxCodeAttempts = 5

// Detail 是联赛详情页的完整视图。
type Detail struct {
	League  *PrivateLeague `json:"league"`
	Members []MemberView   `json:"members"`
}

// CreateLeague 创建私人联赛。创建者自动成为联赛管理员成员，
// 联赛内积分从其全局积分快照。
func CreateLeague(creatorID uint, name string, description *string, maxMembers int) (*PrivateLeague, error) {
	creator, err := user.GetByID(creatorID)
	if err != nil {
		return nil, fmt.Errorf("创建私人联赛失败: %w", err)
	}
	if creator == nil {
		return nil, fmt.Errorf("创建私人联赛失败: 用户不存在")
	}

	code, err := uniqueInviteCode()
	if err != nil {
		return nil, err
	}

	pl := &PrivateLeague{
		Name:        name,
		Description: description,
		CreatorID:   creatorID,
		InviteCode:  code,
		MaxMembers:  maxMembers,
		Active:      true,
	}
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := CreateTx(tx, pl); err != nil {
			return err
		}
		member := &Member{
			PrivateLeagueID: pl.ID,
			UserID:          creatorID,
			Points:          creator.Points,
			IsAdmin:         true,
		}
		return CreateMemberTx(tx, member)
	})
	if err != nil {
		return nil, err
	}
	return pl, nil
}

// uniqueInviteCode 生成一个未被占用的邀请码。
func uniqueInviteCode() (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := invitecode.Generate()
		taken, err := CodeExists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("生成邀请码失败: 重试次数用尽")
}

// JoinByCode 通过邀请码加入联赛。邀请码大小写不敏感。
// 新成员的联赛内积分从其全局积分快照。
func JoinByCode(userID uint, rawCode string) (*PrivateLeague, error) {
	code := invitecode.Normalize(rawCode)
	pl, err := GetByInviteCode(code)
	if err != nil {
		return nil, err
	}
	if pl == nil {
		return nil, ErrInvalidCode
	}
	if !pl.Active {
		return nil, ErrLeagueInactive
	}

	existing, err := GetMember(pl.ID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyMember
	}

	count, err := CountMembers(pl.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(pl.MaxMembers) {
		return nil, ErrLeagueFull
	}

	u, err := user.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("加入联赛失败: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("加入联赛失败: 用户不存在")
	}

	member := &Member{
		PrivateLeagueID: pl.ID,
		UserID:          userID,
		Points:          u.Points,
	}
	if err := CreateMemberTx(nil, member); err != nil {
		return nil, err
	}
	return pl, nil
}

// GetDetail 获取联赛详情，仅限成员访问。
func GetDetail(userID, leagueID uint) (*Detail, error) {
	pl, err := GetByID(leagueID)
	if err != nil {
		return nil, err
	}
	if pl == nil {
		return nil, ErrLeagueNotFound
	}

	member, err := GetMember(leagueID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotMember
	}

	members, err := GetMemberViews(leagueID)
	if err != nil {
		return nil, err
	}
	return &Detail{League: pl, Members: members}, nil
}

// Leave 退出联赛。创建者永远不能退出，只能整体删除。
func Leave(userID, leagueID uint) error {
	pl, err := GetByID(leagueID)
	if err != nil {
		return err
	}
	if pl == nil {
		return ErrLeagueNotFound
	}
	if pl.CreatorID == userID {
		return ErrCreatorCannotLeave
	}

	member, err := GetMember(leagueID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrNotMember
	}
	return DeleteMember(leagueID, userID)
}

// DeleteLeague 删除整个联赛，须是该联赛的管理员成员。
// 消息、成员、联赛记录在同一事务中按序清理，不留任何残行。
func DeleteLeague(userID, leagueID uint) error {
	if err := requireLeagueAdmin(userID, leagueID); err != nil {
		return err
	}
	return database.DB.Transaction(func(tx *gorm.DB) error {
		return DeleteLeagueTx(tx, leagueID)
	})
}

// PropagatePoints 把结算产生的用户积分增量写入其所有活跃联赛的成员记录。
// 尽力而为：单个用户的失败只记日志，不中断其他用户的传播。
func PropagatePoints(deltas map[uint]int) {
	for userID, delta := range deltas {
		if delta == 0 {
			continue
		}
		if _, err := AddMemberPoints(userID, delta); err != nil {
			log.Printf("私人联赛积分传播失败 user=%d: %v", userID, err)
		}
	}
}

// SyncLeaguePoints 把联赛所有成员的联赛内积分重置为各自的全局积分。
// 这是传播路径出现部分失败后的手动对账入口，须是该联赛的管理员成员。
func SyncLeaguePoints(userID, leagueID uint) (int, error) {
	if err := requireLeagueAdmin(userID, leagueID); err != nil {
		return 0, err
	}

	members, err := GetMemberViews(leagueID)
	if err != nil {
		return 0, err
	}
	synced := 0
	for _, m := range members {
		u, err := user.GetByID(m.UserID)
		if err != nil || u == nil {
			log.Printf("联赛积分同步跳过 user=%d: %v", m.UserID, err)
			continue
		}
		if err := SetMemberPoints(leagueID, m.UserID, u.Points); err != nil {
			log.Printf("联赛积分同步失败 user=%d: %v", m.UserID, err)
			continue
		}
		synced++
	}
	return synced, nil
}

// IsActiveMember 检查用户是否是某个活跃联赛的成员，聊天室准入使用。
func IsActiveMember(leagueID, userID uint) (bool, error) {
	pl, err := GetByID(leagueID)
	if err != nil {
		return false, err
	}
	if pl == nil || !pl.Active {
		return false, nil
	}
	member, err := GetMember(leagueID, userID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}

// requireLeagueAdmin 校验用户是该联赛的管理员成员。
func requireLeagueAdmin(userID, leagueID uint) error {
	pl, err := GetByID(leagueID)
	if err != nil {
		return err
	}
	if pl == nil {
		return ErrLeagueNotFound
	}
	member, err := GetMember(leagueID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrNotMember
	}
	if !member.IsAdmin {
		return ErrNotLeagueAdmin
	}
	return nil
}
