package model

import "time"

type AccountType string

const (
	AccountTypeReal  AccountType = "Real"
	AccountTypePaper AccountType = "Paper"
)

type Account struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"not null" json:"name"`
	Type      AccountType `gorm:"not null;default:Real" json:"type"`
	Trades    []Trade     `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

func (t AccountType) Valid() bool {
	return t == AccountTypeReal || t == AccountTypePaper
}
