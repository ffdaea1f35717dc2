package league

// League 定义了联赛（锦标赛）的持久化模型，纯参考数据。
type League struct {
	ID      uint    `gorm:"primarykey" json:"id"`
	Name    string  `gorm:"size:100;not null" json:"name"`
	Country *string `gorm:"size:50" json:"country"`
	Season  string  `gorm:"size:20" json:"season"`
	IsCup   bool    `gorm:"not null;default:false" json:"is_cup"`
	Active  bool    `gorm:"not null;default:true" json:"active"`
}
