package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rmagtibay/barangay-service/internal/errs"
	"github.com/rmagtibay/barangay-service/internal/model"
	"github.com/rmagtibay/barangay-service/internal/repository"
	"github.com/rmagtibay/barangay-service/internal/service"
)

// fakePropertyRepo keeps the repository contract in memory: conditional
// decrement under a lock, one-way record transitions. It lets the service
// state machine be exercised without postgres.
type fakePropertyRepo struct {
	mu    sync.Mutex
	props map[string]*model.Property
}

var _ repository.PropertyRepository = (*fakePropertyRepo)(nil)

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{props: make(map[string]*model.Property)}
}

func (f *fakePropertyRepo) Create(_ context.Context, p model.Property) (model.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now().UTC()
	p.PropertyUid = uuid.NewString()
	p.DateAdded = now
	p.DateUpdated = now
	p.BorrowRecords = []model.BorrowRecord{}
	f.props[p.PropertyUid] = &p
	return snapshot(&p), nil
}

func (f *fakePropertyRepo) Get(_ context.Context, uid string) (model.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.props[uid]
	if !ok {
		return model.Property{}, errs.ErrNotFound
	}
	return snapshot(p), nil
}

func (f *fakePropertyRepo) List(_ context.Context) ([]model.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Property, 0, len(f.props))
	for _, p := range f.props {
		out = append(out, snapshot(p))
	}
	return out, nil
}

func (f *fakePropertyRepo) Update(_ context.Context, uid string, cols repository.Columns) (model.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.props[uid]
	if !ok {
		return model.Property{}, errs.ErrNotFound
	}
	if v, ok := cols["quantity"]; ok {
		q := v.(int)
		newAvail := p.AvailableQuantity + q - p.Quantity
		if newAvail < 0 {
			return model.Property{}, errors.Wrap(errs.ErrValidation, "quantity below units currently borrowed")
		}
		p.Quantity = q
		p.AvailableQuantity = newAvail
	}
	if v, ok := cols["name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := cols["condition"]; ok {
		p.Condition = v.(model.Condition)
	}
	p.DateUpdated = time.Now().UTC()
	return snapshot(p), nil
}

func (f *fakePropertyRepo) Delete(_ context.Context, uid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.props[uid]; !ok {
		return errs.ErrNotFound
	}
	delete(f.props, uid)
	return nil
}

func (f *fakePropertyRepo) Borrow(_ context.Context, uid string, rec model.BorrowRecord) (model.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.props[uid]
	if !ok {
		return model.Property{}, errs.ErrNotFound
	}
	if p.AvailableQuantity < rec.Quantity {
		return model.Property{}, errs.ErrInsufficientAvailability
	}
	rec.BorrowUid = uuid.NewString()
	rec.PropertyUid = uid
	rec.Status = model.StatusBorrowed
	p.BorrowRecords = append(p.BorrowRecords, rec)
	p.AvailableQuantity -= rec.Quantity
	p.DateUpdated = time.Now().UTC()
	return snapshot(p), nil
}

func (f *fakePropertyRepo) Return(_ context.Context, uid, borrowUid string) (model.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.props[uid]
	if !ok {
		return model.Property{}, errs.ErrNotFound
	}
	for i := range p.BorrowRecords {
		rec := &p.BorrowRecords[i]
		if rec.BorrowUid != borrowUid {
			continue
		}
		if rec.Status == model.StatusReturned {
			return model.Property{}, errs.ErrAlreadyReturned
		}
		now := time.Now().UTC()
		rec.Status = model.StatusReturned
		rec.ActualReturnDate = &now
		p.AvailableQuantity += rec.Quantity
		p.DateUpdated = now
		return snapshot(p), nil
	}
	return model.Property{}, errs.ErrNotFound
}

func snapshot(p *model.Property) model.Property {
	cp := *p
	cp.BorrowRecords = append([]model.BorrowRecord(nil), p.BorrowRecords...)
	return cp
}

func date(t *testing.T, s string) model.Date {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return model.Date{Time: parsed}
}

func requireInvariant(t *testing.T, p model.Property) {
	t.Helper()
	require.Equal(t, p.Quantity-p.ActiveBorrowed(), p.AvailableQuantity)
	require.GreaterOrEqual(t, p.AvailableQuantity, 0)
	require.LessOrEqual(t, p.AvailableQuantity, p.Quantity)
}

func newPropertySvc() (*service.Property, *fakePropertyRepo) {
	repo := newFakePropertyRepo()
	return service.NewProperty(repo, nil, zap.NewNop()), repo
}

func TestProperty_BorrowReturnLifecycle(t *testing.T) {
	t.Parallel()
	svc, _ := newPropertySvc()
	ctx := context.Background()

	created, err := svc.Create(ctx, model.CreatePropertyRequest{
		Name:        "Monobloc Chairs",
		Category:    "Furniture",
		Description: "White plastic chairs",
		Location:    "Barangay Hall",
		Quantity:    5,
		Condition:   model.ConditionGood,
	})
	require.NoError(t, err)
	require.Equal(t, 5, created.Quantity)
	require.Equal(t, 5, created.AvailableQuantity)
	require.Empty(t, created.BorrowRecords)
	requireInvariant(t, created)

	borrowed, err := svc.Borrow(ctx, created.PropertyUid, model.BorrowRequest{
		BorrowedBy: "Alice",
		Quantity:   3,
		BorrowDate: date(t, "2024-01-01"),
		ReturnDate: date(t, "2024-01-10"),
	})
	require.NoError(t, err)
	require.Equal(t, 2, borrowed.AvailableQuantity)
	require.Len(t, borrowed.BorrowRecords, 1)
	require.Equal(t, model.StatusBorrowed, borrowed.BorrowRecords[0].Status)
	require.Nil(t, borrowed.BorrowRecords[0].ActualReturnDate)
	requireInvariant(t, borrowed)

	// over-borrow is rejected against current availability, state untouched
	_, err = svc.Borrow(ctx, created.PropertyUid, model.BorrowRequest{
		BorrowedBy: "Bob",
		Quantity:   3,
		BorrowDate: date(t, "2024-01-02"),
		ReturnDate: date(t, "2024-01-05"),
	})
	require.ErrorIs(t, err, errs.ErrInsufficientAvailability)

	unchanged, err := svc.Get(ctx, created.PropertyUid)
	require.NoError(t, err)
	require.Equal(t, 2, unchanged.AvailableQuantity)
	require.Len(t, unchanged.BorrowRecords, 1)
	requireInvariant(t, unchanged)

	borrowUid := borrowed.BorrowRecords[0].BorrowUid
	returned, err := svc.Return(ctx, created.PropertyUid, borrowUid)
	require.NoError(t, err)
	require.Equal(t, 5, returned.AvailableQuantity)
	require.Equal(t, model.StatusReturned, returned.BorrowRecords[0].Status)
	require.NotNil(t, returned.BorrowRecords[0].ActualReturnDate)
	requireInvariant(t, returned)

	// double return fails and leaves state as after the first return
	_, err = svc.Return(ctx, created.PropertyUid, borrowUid)
	require.ErrorIs(t, err, errs.ErrAlreadyReturned)

	final, err := svc.Get(ctx, created.PropertyUid)
	require.NoError(t, err)
	require.Equal(t, 5, final.AvailableQuantity)
	require.Equal(t, model.StatusReturned, final.BorrowRecords[0].Status)
	requireInvariant(t, final)
}

func TestProperty_BorrowValidation(t *testing.T) {
	t.Parallel()
	svc, _ := newPropertySvc()
	ctx := context.Background()

	created, err := svc.Create(ctx, model.CreatePropertyRequest{
		Name:        "Tent",
		Category:    "Equipment",
		Description: "Event tent",
		Location:    "Storage",
		Quantity:    2,
		Condition:   model.ConditionFair,
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		uid     string
		req     model.BorrowRequest
		wantErr error
	}{
		{
			name: "zero quantity",
			uid:  created.PropertyUid,
			req: model.BorrowRequest{
				BorrowedBy: "Alice",
				Quantity:   0,
				BorrowDate: date(t, "2024-01-01"),
				ReturnDate: date(t, "2024-01-02"),
			},
			wantErr: errs.ErrValidation,
		},
		{
			name: "empty borrower",
			uid:  created.PropertyUid,
			req: model.BorrowRequest{
				BorrowedBy: "   ",
				Quantity:   1,
				BorrowDate: date(t, "2024-01-01"),
				ReturnDate: date(t, "2024-01-02"),
			},
			wantErr: errs.ErrValidation,
		},
		{
			name: "return before borrow",
			uid:  created.PropertyUid,
			req: model.BorrowRequest{
				BorrowedBy: "Alice",
				Quantity:   1,
				BorrowDate: date(t, "2024-01-10"),
				ReturnDate: date(t, "2024-01-01"),
			},
			wantErr: errs.ErrValidation,
		},
		{
			name: "missing property",
			uid:  uuid.NewString(),
			req: model.BorrowRequest{
				BorrowedBy: "Alice",
				Quantity:   1,
				BorrowDate: date(t, "2024-01-01"),
				ReturnDate: date(t, "2024-01-02"),
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Borrow(ctx, tt.uid, tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProperty_ConcurrentBorrowsNeverOverlend(t *testing.T) {
	t.Parallel()
	svc, _ := newPropertySvc()
	ctx := context.Background()

	const (
		stock     = 5
		attempts  = 20
		perBorrow = 1
	)
	created, err := svc.Create(ctx, model.CreatePropertyRequest{
		Name:        "Folding Tables",
		Category:    "Furniture",
		Description: "Steel folding tables",
		Location:    "Barangay Hall",
		Quantity:    stock,
		Condition:   model.ConditionGood,
	})
	require.NoError(t, err)

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		succeeded    int
		insufficient int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Borrow(ctx, created.PropertyUid, model.BorrowRequest{
				BorrowedBy: "Resident",
				Quantity:   perBorrow,
				BorrowDate: date(t, "2024-01-01"),
				ReturnDate: date(t, "2024-01-02"),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, errs.ErrInsufficientAvailability):
				insufficient++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, stock, succeeded)
	require.Equal(t, attempts-stock, insufficient)

	final, err := svc.Get(ctx, created.PropertyUid)
	require.NoError(t, err)
	require.Equal(t, 0, final.AvailableQuantity)
	require.Equal(t, stock, final.ActiveBorrowed())
	requireInvariant(t, final)
}

func TestProperty_UpdateGuards(t *testing.T) {
	t.Parallel()
	svc, _ := newPropertySvc()
	ctx := context.Background()

	created, err := svc.Create(ctx, model.CreatePropertyRequest{
		Name:        "Sound System",
		Category:    "Electronics",
		Description: "Speakers and mixer",
		Location:    "Barangay Hall",
		Quantity:    3,
		Condition:   model.ConditionGood,
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.PropertyUid, model.UpdatePropertyRequest{})
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = svc.Borrow(ctx, created.PropertyUid, model.BorrowRequest{
		BorrowedBy: "Alice",
		Quantity:   2,
		BorrowDate: date(t, "2024-01-01"),
		ReturnDate: date(t, "2024-01-05"),
	})
	require.NoError(t, err)

	// shrinking stock below what is out is refused
	one := 1
	_, err = svc.Update(ctx, created.PropertyUid, model.UpdatePropertyRequest{Quantity: &one})
	require.ErrorIs(t, err, errs.ErrValidation)

	// shrinking within bounds adjusts availability by the same delta
	two := 2
	updated, err := svc.Update(ctx, created.PropertyUid, model.UpdatePropertyRequest{Quantity: &two})
	require.NoError(t, err)
	require.Equal(t, 2, updated.Quantity)
	require.Equal(t, 0, updated.AvailableQuantity)
	requireInvariant(t, updated)
}

func TestProperty_DeleteMissing(t *testing.T) {
	t.Parallel()
	svc, _ := newPropertySvc()

	err := svc.Delete(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, errs.ErrNotFound)
}
