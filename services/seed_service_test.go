package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgf281219-blip/metodo/models"
)

func TestSeedCatalogsPopulatesOnce(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedCatalogs(db))

	var foods, activities int64
	require.NoError(t, db.Model(&models.Food{}).Count(&foods).Error)
	require.NoError(t, db.Model(&models.Activity{}).Count(&activities).Error)
	assert.EqualValues(t, 90, foods)
	assert.EqualValues(t, 20, activities)

	// A second run is a no-op.
	require.NoError(t, SeedCatalogs(db))
	require.NoError(t, db.Model(&models.Food{}).Count(&foods).Error)
	require.NoError(t, db.Model(&models.Activity{}).Count(&activities).Error)
	assert.EqualValues(t, 90, foods)
	assert.EqualValues(t, 20, activities)
}

func TestSeedCatalogsFillsOnlyEmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.Food{FoodID: "custom", Name: "Custom", Category: "Frutas"}).Error)

	require.NoError(t, SeedCatalogs(db))

	var foods, activities int64
	require.NoError(t, db.Model(&models.Food{}).Count(&foods).Error)
	require.NoError(t, db.Model(&models.Activity{}).Count(&activities).Error)
	assert.EqualValues(t, 1, foods)
	assert.EqualValues(t, 20, activities)
}
