package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

type stubCustomerRepo struct {
	rows      map[int64]domain.Customer
	nextID    int64
	lastSkip  int
	lastLimit int
	err       error
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{rows: make(map[int64]domain.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	c.ID = r.nextID
	r.rows[c.ID] = *c
	return nil
}

func (r *stubCustomerRepo) List(_ context.Context, skip, limit int) ([]domain.Customer, error) {
	r.lastSkip, r.lastLimit = skip, limit
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := []domain.Customer{}
	for i := skip; i < len(ids) && len(out) < limit; i++ {
		out = append(out, r.rows[ids[i]])
	}
	return out, nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &c, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *domain.Customer) error {
	if r.err != nil {
		return r.err
	}
	r.rows[c.ID] = *c
	return nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestCustomerService_CreateGet(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Customer{ID: 99, Name: strPtr("Acme")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID, "client supplied id is ignored")

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", *got.Name)
}

func TestCustomerService_GetMissing(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo(), zerolog.Nop())

	_, err := svc.Get(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerService_ListBounds(t *testing.T) {
	tests := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
	}{
		{"defaults", 0, 0, 0, DefaultCustomerLimit},
		{"negative skip", -3, 10, 0, 10},
		{"capped", 5, 5000, 5, MaxCustomerLimit},
		{"negative limit", 0, -1, 0, DefaultCustomerLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubCustomerRepo()
			svc := NewCustomerService(repo, zerolog.Nop())

			_, err := svc.List(context.Background(), tt.skip, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, repo.lastSkip)
			assert.Equal(t, tt.wantLimit, repo.lastLimit)
		})
	}
}

func TestCustomerService_UpdateIsPartial(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())
	ctx := context.Background()

	c, err := svc.Create(ctx, domain.Customer{Name: strPtr("Acme"), Phone: strPtr("555")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, c.ID, domain.CustomerPatch{Phone: strPtr("777")})
	require.NoError(t, err)
	assert.Equal(t, "Acme", *updated.Name)
	assert.Equal(t, "777", *updated.Phone)
	assert.Equal(t, "777", *repo.rows[c.ID].Phone)
}

func TestCustomerService_UpdateMissing(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo(), zerolog.Nop())

	_, err := svc.Update(context.Background(), 1, domain.CustomerPatch{})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerService_DeleteReturnsRecord(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, zerolog.Nop())
	ctx := context.Background()

	c, err := svc.Create(ctx, domain.Customer{Name: strPtr("Acme")})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", *deleted.Name)
	assert.Empty(t, repo.rows)

	_, err = svc.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCustomerService_CreateStorageError(t *testing.T) {
	repo := newStubCustomerRepo()
	repo.err = errors.New("boom")
	svc := NewCustomerService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), domain.Customer{})
	assert.ErrorIs(t, err, repo.err)
}
