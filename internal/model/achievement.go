package model

import "time"

type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// Achievement is a badge earned at most once per learner, enforced by the
// (user_id, badge_name) unique index on top of the rule-table check.
// swagger:model Achievement
type Achievement struct {
	BaseModel
	UserID      uint      `gorm:"uniqueIndex:idx_user_badge;type:bigint unsigned;not null" json:"userId"`
	BadgeName   string    `gorm:"uniqueIndex:idx_user_badge;size:100;not null" json:"badgeName"`
	Description string    `gorm:"size:255" json:"description"`
	Rarity      Rarity    `gorm:"type:enum('common','uncommon','rare','epic','legendary');default:'common'" json:"rarity"`
	EarnedAt    time.Time `gorm:"not null" json:"earnedAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}
