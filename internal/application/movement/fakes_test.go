package movement_test

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// errForcedFailure simula un fallo de persistencia dentro de la transacción.
var errForcedFailure = errors.New("fallo forzado de persistencia")

// memStore estado compartido de los fakes en memoria. Un solo store respalda
// los tres repositorios, igual que los adaptadores reales comparten la base.
type memStore struct {
	products map[string]*entity.Product
	buys     map[string]*entity.Buy
	sales    map[string]*entity.Sale
	users    map[string]*entity.User
	saleSeq  int64

	// failBuyUpdate y failSaleUpdate fuerzan el error dentro de la transacción
	// para probar el rollback.
	failBuyUpdate  bool
	failSaleUpdate bool
}

func newMemStore() *memStore {
	return &memStore{
		products: map[string]*entity.Product{},
		buys:     map[string]*entity.Buy{},
		sales:    map[string]*entity.Sale{},
		users:    map[string]*entity.User{},
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	c.saleSeq = s.saleSeq
	c.failBuyUpdate = s.failBuyUpdate
	c.failSaleUpdate = s.failSaleUpdate
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, b := range s.buys {
		cb := *b
		c.buys[id] = &cb
	}
	for id, sl := range s.sales {
		cs := *sl
		c.sales[id] = &cs
	}
	for id, u := range s.users {
		cu := *u
		c.users[id] = &cu
	}
	return c
}

// memTxRunner ejecuta el callback sobre el store y restaura el snapshot si
// falla: mismo contrato de atomicidad que la transacción real.
type memTxRunner struct {
	s *memStore
}

func (t *memTxRunner) Run(_ context.Context, fn func(repository.BuyRepository, repository.SaleRepository, repository.ProductRepository) error) error {
	snap := t.s.clone()
	err := fn(&memBuyRepo{t.s}, &memSaleRepo{t.s}, &memProductRepo{t.s})
	if err != nil {
		*t.s = *snap
	}
	return err
}

// ── Product ──────────────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) AdjustStock(id string, delta int64) (bool, error) {
	p, ok := r.s.products[id]
	if !ok {
		return false, nil
	}
	p.Stock += delta
	return true, nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

func (r *memProductRepo) Delete(id string) (bool, error) {
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}

// ── Buy ──────────────────────────────────────────────────────────────────────

type memBuyRepo struct{ s *memStore }

func (r *memBuyRepo) Create(b *entity.Buy) error {
	cb := *b
	r.s.buys[b.ID] = &cb
	return nil
}

func (r *memBuyRepo) GetByID(id string) (*entity.Buy, error) {
	b, ok := r.s.buys[id]
	if !ok {
		return nil, nil
	}
	cb := *b
	return &cb, nil
}

func (r *memBuyRepo) Update(b *entity.Buy) error {
	if r.s.failBuyUpdate {
		return errForcedFailure
	}
	cb := *b
	r.s.buys[b.ID] = &cb
	return nil
}

func (r *memBuyRepo) List(limit, offset int) ([]*entity.Buy, error) {
	var out []*entity.Buy
	for _, b := range r.s.buys {
		cb := *b
		out = append(out, &cb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

func (r *memBuyRepo) Delete(id string) (bool, error) {
	if _, ok := r.s.buys[id]; !ok {
		return false, nil
	}
	delete(r.s.buys, id)
	return true, nil
}

// ── Sale ─────────────────────────────────────────────────────────────────────

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) NextSaleCode() (int64, error) {
	r.s.saleSeq++
	return r.s.saleSeq, nil
}

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	cs := *sale
	r.s.sales[sale.ID] = &cs
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sl, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cs := *sl
	return &cs, nil
}

func (r *memSaleRepo) Update(sale *entity.Sale) error {
	if r.s.failSaleUpdate {
		return errForcedFailure
	}
	cs := *sale
	r.s.sales[sale.ID] = &cs
	return nil
}

func (r *memSaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, sl := range r.s.sales {
		cs := *sl
		out = append(out, &cs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleCode > out[j].SaleCode })
	return page(out, limit, offset), nil
}

func (r *memSaleRepo) Delete(id string) (bool, error) {
	if _, ok := r.s.sales[id]; !ok {
		return false, nil
	}
	delete(r.s.sales, id)
	return true, nil
}

// ── User ─────────────────────────────────────────────────────────────────────

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(u *entity.User) error {
	cu := *u
	r.s.users[u.ID] = &cu
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cu := *u
	return &cu, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cu := *u
			return &cu, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error {
	cu := *u
	r.s.users[u.ID] = &cu
	return nil
}

func (r *memUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.s.users {
		cu := *u
		out = append(out, &cu)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return page(out, limit, offset), nil
}

func (r *memUserRepo) Delete(id string) (bool, error) {
	if _, ok := r.s.users[id]; !ok {
		return false, nil
	}
	delete(r.s.users, id)
	return true, nil
}

func page[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
