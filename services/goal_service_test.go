package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgf281219-blip/metodo/models"
)

func TestGoalsUpsertKeepsSingleDocument(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)

	first, err := svc.Upsert("user_a", GoalsInput{
		MetaPrincipal:      "perder 5kg",
		DesejoTransformar:  "alimentação",
		SentimentoDesejado: "disposição",
		Compromisso:        "sim",
	})
	require.NoError(t, err)
	assert.Equal(t, "perder 5kg", first.MetaPrincipal)
	assert.Nil(t, first.PesoInicial)

	second, err := svc.Upsert("user_a", GoalsInput{
		MetaPrincipal:      "manter peso",
		DesejoTransformar:  "sono",
		SentimentoDesejado: "calma",
		PesoInicial:        strPtr("72kg"),
		Compromisso:        "sim",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.UserGoals{}).Where("user_id = ?", "user_a").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := svc.Get("user_a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "manter peso", got.MetaPrincipal)
	require.NotNil(t, got.PesoInicial)
	assert.Equal(t, "72kg", *got.PesoInicial)
	assert.Equal(t, second.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestGoalsGetMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	svc := NewGoalService(db)

	goals, err := svc.Get("user_a")
	require.NoError(t, err)
	assert.Nil(t, goals)
}

func TestReflectionUpsertOverwrites(t *testing.T) {
	db := newTestDB(t)
	svc := NewReflectionService(db)

	_, err := svc.Upsert("user_a", ReflectionInput{
		Mudancas:     "durmo melhor",
		NovaIntencao: "continuar",
	})
	require.NoError(t, err)

	_, err = svc.Upsert("user_a", ReflectionInput{
		Mudancas:     "mais energia",
		NovaIntencao: "manter exercícios",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.FinalReflection{}).Where("user_id = ?", "user_a").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := svc.Get("user_a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "mais energia", got.Mudancas)
}

func TestReflectionGetMissingReturnsNil(t *testing.T) {
	db := newTestDB(t)
	svc := NewReflectionService(db)

	reflection, err := svc.Get("user_a")
	require.NoError(t, err)
	assert.Nil(t, reflection)
}
