package prediction

import (
	"errors"
	"fmt"

	"github.com/pronofoot/football-prediction-backend/internal/match"
)

// 预测写入路径的业务错误。
var (
	ErrMatchNotFound    = errors.New("比赛不存在")
	ErrMatchClosed      = errors.New("比赛已不可预测")
	ErrAlreadyPredicted = errors.New("已对该比赛提交过预测")
	ErrNotFound         = errors.New("预测不存在")
	ErrNotOwner         = errors.New("只能修改自己的预测")
)

// CreatePrediction 为用户创建一条预测。
// 只允许对 scheduled 状态的比赛预测，比赛一旦离开该状态即永久封盘。
func CreatePrediction(userID, matchID uint, homeScore, awayScore int) (*Prediction, error) {
	m, err := match.GetByID(matchID)
	if err != nil {
		return nil, fmt.Errorf("创建预测失败: %w", err)
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}
	if m.Status != match.StatusScheduled {
		return nil, ErrMatchClosed
	}

	existing, err := GetByUserAndMatch(userID, matchID)
	if err != nil {
		return nil, fmt.Errorf("创建预测失败: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyPredicted
	}

	p := &Prediction{
		UserID:              userID,
		MatchID:             matchID,
		HomeScorePrediction: homeScore,
		AwayScorePrediction: awayScore,
	}
	if err := Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdatePrediction 修改用户自己的预测，封盘规则与创建时一致。
func UpdatePrediction(userID, predictionID uint, homeScore, awayScore int) (*Prediction, error) {
	p, err := GetByID(predictionID)
	if err != nil {
		return nil, fmt.Errorf("更新预测失败: %w", err)
	}
	if p == nil {
		return nil, ErrNotFound
	}
	if p.UserID != userID {
		return nil, ErrNotOwner
	}

	m, err := match.GetByID(p.MatchID)
	if err != nil {
		return nil, fmt.Errorf("更新预测失败: %w", err)
	}
	if m == nil || m.Status != match.StatusScheduled {
		return nil, ErrMatchClosed
	}

	p.HomeScorePrediction = homeScore
	p.AwayScorePrediction = awayScore
	if err := Update(p); err != nil {
		return nil, err
	}
	return p, nil
}
