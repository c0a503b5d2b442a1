package models

import "time"

// ChecklistAlimentar is the daily food-rules checklist.
type ChecklistAlimentar struct {
	SemAcucar              bool `json:"sem_acucar"`
	SemAlcool              bool `json:"sem_alcool"`
	SemGluten              bool `json:"sem_gluten"`
	SemRefrigerante        bool `json:"sem_refrigerante"`
	AlimentosNaturais      bool `json:"alimentos_naturais"`
	EvitarIndustrializados bool `json:"evitar_industrializados"`
	FrutasVerduras         bool `json:"frutas_verduras"`
	MastigarAtencao        bool `json:"mastigar_atencao"`
}

// PraticasDiarias is the daily practices checklist.
type PraticasDiarias struct {
	Agua2l    bool `json:"agua_2l"`
	Exercicio bool `json:"exercicio"`
	Meditacao bool `json:"meditacao"`
	Vacuo     bool `json:"vacuo"`
	Gratidao  bool `json:"gratidao"`
}

// DailyRecord is the per-user, per-calendar-day aggregate. One row per
// (user_id, date); the calorie and water counters are maintained by the
// entry-log and water paths, not by the record upsert itself.
type DailyRecord struct {
	ID                 uint               `gorm:"primaryKey" json:"-"`
	UserID             string             `gorm:"type:varchar(64);uniqueIndex:idx_daily_user_date;not null" json:"user_id"`
	Date               string             `gorm:"type:varchar(10);uniqueIndex:idx_daily_user_date;not null" json:"date"` // YYYY-MM-DD
	DayNumber          int                `json:"day_number"`
	ChecklistAlimentar ChecklistAlimentar `gorm:"embedded;embeddedPrefix:ca_" json:"checklist_alimentar"`
	PraticasDiarias    PraticasDiarias    `gorm:"embedded;embeddedPrefix:pd_" json:"praticas_diarias"`
	Sentimentos        *string            `json:"sentimentos"`
	Desafios           *string            `json:"desafios"`
	VitoriaDia         *string            `json:"vitoria_dia"`
	Gratidoes          []string           `gorm:"serializer:json" json:"gratidoes"`
	CaloriesConsumed   int                `json:"calories_consumed"`
	CaloriesBurned     int                `json:"calories_burned"`
	WaterIntake        int                `json:"water_intake"` // ml
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
