package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

type stubLogRepo struct {
	entries []*entity.Log
	failing bool
}

func (r *stubLogRepo) Create(l *entity.Log) error {
	if r.failing {
		return errors.New("log store caído")
	}
	cl := *l
	r.entries = append(r.entries, &cl)
	return nil
}

func (r *stubLogRepo) List(limit, offset int) ([]*entity.Log, error) {
	out := make([]*entity.Log, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

func TestActivityRecord_GuardaMetodoAccionYPayload(t *testing.T) {
	repo := &stubLogRepo{}
	uc := usecase.NewActivityLogUseCase(repo)

	uc.Record("POST", "/api/products", []byte(`{"product_code":"SKU-001"}`))

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, "POST", entry.Method)
	assert.Equal(t, "/api/products", entry.Action)
	assert.JSONEq(t, `{"product_code":"SKU-001"}`, string(entry.Info))
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestActivityRecord_PayloadNoJSON_GuardaSinInfo(t *testing.T) {
	repo := &stubLogRepo{}
	uc := usecase.NewActivityLogUseCase(repo)

	uc.Record("DELETE", "/api/products/abc", nil)

	require.Len(t, repo.entries, 1)
	assert.Nil(t, repo.entries[0].Info, "payload vacío o inválido se guarda sin info")
}

// El log es best-effort: un fallo al escribirlo nunca se propaga a la operación.
func TestActivityRecord_FalloDelStore_NoPanicNiError(t *testing.T) {
	repo := &stubLogRepo{failing: true}
	uc := usecase.NewActivityLogUseCase(repo)

	assert.NotPanics(t, func() {
		uc.Record("POST", "/api/sales", []byte(`{}`))
	})
	assert.Empty(t, repo.entries)
}

func TestActivityList_DevuelveEntradas(t *testing.T) {
	repo := &stubLogRepo{}
	uc := usecase.NewActivityLogUseCase(repo)
	uc.Record("POST", "/api/buys", []byte(`{"quantity":3}`))
	uc.Record("PUT", "/api/buys/1", []byte(`{"quantity":5}`))

	out, err := uc.List(20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 20, out.Page.Limit)
}
