package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/dgf281219-blip/metodo/models"
)

type GoalService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db, now: time.Now}
}

// GoalsInput mirrors the goals form for the 21-day program.
type GoalsInput struct {
	MetaPrincipal      string  `json:"meta_principal" binding:"required"`
	DesejoTransformar  string  `json:"desejo_transformar" binding:"required"`
	SentimentoDesejado string  `json:"sentimento_desejado" binding:"required"`
	PesoInicial        *string `json:"peso_inicial"`
	MedidasIniciais    *string `json:"medidas_iniciais"`
	Compromisso        string  `json:"compromisso" binding:"required"`
}

// Upsert replaces the user's goals document; created_at is reset on every
// write, matching the replace-on-conflict contract.
func (s *GoalService) Upsert(userID string, input GoalsInput) (*models.UserGoals, error) {
	goals := models.UserGoals{
		UserID:             userID,
		MetaPrincipal:      input.MetaPrincipal,
		DesejoTransformar:  input.DesejoTransformar,
		SentimentoDesejado: input.SentimentoDesejado,
		PesoInicial:        input.PesoInicial,
		MedidasIniciais:    input.MedidasIniciais,
		Compromisso:        input.Compromisso,
		CreatedAt:          s.now().UTC(),
	}

	var existing models.UserGoals
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.db.Create(&goals).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		goals.ID = existing.ID
		if err := s.db.Save(&goals).Error; err != nil {
			return nil, err
		}
	}
	return &goals, nil
}

// Get returns the user's goals, or nil when none were submitted yet.
func (s *GoalService) Get(userID string) (*models.UserGoals, error) {
	var goals models.UserGoals
	err := s.db.Where("user_id = ?", userID).First(&goals).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goals, nil
}
