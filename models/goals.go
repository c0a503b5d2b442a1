package models

import "time"

// UserGoals is the single goals document for the 21-day program.
// Resubmitting overwrites it, no history is kept.
type UserGoals struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	UserID             string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"user_id"`
	MetaPrincipal      string    `json:"meta_principal"`
	DesejoTransformar  string    `json:"desejo_transformar"`
	SentimentoDesejado string    `json:"sentimento_desejado"`
	PesoInicial        *string   `json:"peso_inicial"`
	MedidasIniciais    *string   `json:"medidas_iniciais"`
	Compromisso        string    `json:"compromisso"`
	CreatedAt          time.Time `json:"created_at"`
}
