package scoring

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pronofoot/football-prediction-backend/internal/match"
	"github.com/pronofoot/football-prediction-backend/internal/platform/database"
	"github.com/pronofoot/football-prediction-backend/internal/prediction"
	"github.com/pronofoot/football-prediction-backend/internal/privateleague"
	"github.com/pronofoot/football-prediction-backend/internal/ranking"
	"github.com/pronofoot/football-prediction-backend/internal/user"
)

// 结算规则：比分全对3分，只对胜负平1分，其余0分。
const (
	PointsExactScore    = 3
	PointsCorrectResult = 1
)

var (
	ErrMatchNotFound    = errors.New("比赛不存在")
	ErrMatchNotFinished = errors.New("比赛尚未结束")
)

// 比赛结果的三种取值。
const (
	resultHomeWin = "home_win"
	resultAwayWin = "away_win"
	resultDraw    = "draw"
)

func matchResult(homeScore, awayScore int) string {
	switch {
	case homeScore > awayScore:
		return resultHomeWin
	case awayScore > homeScore:
		return resultAwayWin
	default:
		return resultDraw
	}
}

// PointsFor 计算一条预测对给定终场比分应得的分数。
func PointsFor(predHome, predAway, actualHome, actualAway int) int {
	if predHome == actualHome && predAway == actualAway {
		return PointsExactScore
	}
	if matchResult(predHome, predAway) == matchResult(actualHome, actualAway) {
		return PointsCorrectResult
	}
	return 0
}

// UpdateScore 写入终场比分并把比赛推进到 finished，随后同步触发结算。
// 比分和状态在同一条 UPDATE 中落库。重复调用会以新比分重新结算，
// 增量语义保证不会重复发分。
func UpdateScore(matchID uint, homeScore, awayScore int) (map[uint]int, error) {
	m, err := match.GetByID(matchID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}

	if err := match.FinishWithScore(nil, matchID, homeScore, awayScore); err != nil {
		return nil, err
	}
	return SettleMatch(matchID)
}

// SettleMatch 对一场已结束的比赛结算所有预测。
// 每条预测的得分是重算后整体替换，用户全局积分只加差值，
// 因此对同一终场比分重复结算是无操作。
// 事务提交后再把用户增量传播到私人联赛（尽力而为，不影响结算结果）。
func SettleMatch(matchID uint) (map[uint]int, error) {
	m, err := match.GetByID(matchID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}
	if m.Status != match.StatusFinished || m.HomeScore == nil || m.AwayScore == nil {
		return nil, ErrMatchNotFinished
	}

	deltas := make(map[uint]int)
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		predictions, err := prediction.GetByMatchTx(tx, matchID)
		if err != nil {
			return err
		}
		for _, p := range predictions {
			newPoints := PointsFor(p.HomeScorePrediction, p.AwayScorePrediction, *m.HomeScore, *m.AwayScore)
			delta := newPoints - p.PointsEarned
			if delta == 0 {
				continue
			}
			if err := prediction.UpdatePointsTx(tx, p.ID, newPoints); err != nil {
				return err
			}
			if err := user.AddPoints(tx, p.UserID, delta); err != nil {
				return err
			}
			deltas[p.UserID] += delta
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("结算比赛失败: %w", err)
	}

	if len(deltas) > 0 {
		privateleague.PropagatePoints(deltas)
		ranking.Invalidate()
	}
	return deltas, nil
}

// DeleteMatch 删除比赛及其全部预测，并回滚已发放的全局积分。
// 整个清理在一个事务中完成。私人联赛内积分不回滚：入会快照本就允许
// 联赛内积分与全局积分分叉。
func DeleteMatch(matchID uint) error {
	m, err := match.GetByID(matchID)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMatchNotFound
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		predictions, err := prediction.GetByMatchTx(tx, matchID)
		if err != nil {
			return err
		}
		for _, p := range predictions {
			if p.PointsEarned == 0 {
				continue
			}
			if err := user.AddPoints(tx, p.UserID, -p.PointsEarned); err != nil {
				return err
			}
		}
		if err := prediction.DeleteByMatchTx(tx, matchID); err != nil {
			return err
		}
		return match.DeleteTx(tx, matchID)
	})
	if err != nil {
		return fmt.Errorf("删除比赛失败: %w", err)
	}
	ranking.Invalidate()
	return nil
}
