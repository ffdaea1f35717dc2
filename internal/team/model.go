package team

// Team 定义了球队的持久化模型，归属于一个联赛。
type Team struct {
	ID       uint    `gorm:"primarykey" json:"id"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	LeagueID uint    `gorm:"index;not null" json:"league_id"`
	LogoURL  *string `gorm:"size:255" json:"logo_url"`
}
