package models

import "time"

// FinalReflection is written once the program ends; at most one per user,
// overwritten on resubmission.
type FinalReflection struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	UserID        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"user_id"`
	Mudancas      string    `json:"mudancas"`
	NovaIntencao  string    `json:"nova_intencao"`
	DataConclusao time.Time `json:"data_conclusao"`
	CreatedAt     time.Time `json:"created_at"`
}
