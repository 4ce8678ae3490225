package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableExists(t *testing.T) {
	// Setup In-Memory DB
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	err = db.Exec("CREATE TABLE v_empresas_inativas_rs (cnpj_completo TEXT)").Error
	assert.NoError(t, err)

	exists, err := TableExists(db, "v_empresas_inativas_rs")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = TableExists(db, "v_empresas_inativas_sp")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestListTablesLike(t *testing.T) {
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)

	for _, name := range []string{"v_empresas_inativas_rs", "v_empresas_inativas_SP", "municipios"} {
		err = db.Exec("CREATE TABLE " + name + " (cnpj_completo TEXT)").Error
		assert.NoError(t, err)
	}

	matches, err := ListTablesLike(db, "v_empresas_inativas_%")
	assert.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Contains(t, matches, "v_empresas_inativas_rs")
	assert.Contains(t, matches, "v_empresas_inativas_SP")

	matches, err = ListTablesLike(db, "v_empresas_ativas_%")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}
