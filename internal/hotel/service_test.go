package hotel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayview/reviews-api/internal/logging"
)

// fakeStore is an in-memory Store for service tests.
type fakeStore struct {
	hotels map[int64]*Hotel
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		hotels: make(map[int64]*Hotel),
		nextID: 1,
	}
}

func (f *fakeStore) Insert(_ context.Context, h *Hotel) (*Hotel, error) {
	stored := *h
	stored.ID = f.nextID
	f.nextID++
	f.hotels[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeStore) Update(_ context.Context, h *Hotel) error {
	if _, ok := f.hotels[h.ID]; !ok {
		return ErrNotFound
	}
	stored := *h
	f.hotels[h.ID] = &stored
	return nil
}

func (f *fakeStore) FindByID(_ context.Context, id int64) (*Hotel, error) {
	h, ok := f.hotels[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *h
	return &found, nil
}

func (f *fakeStore) List(_ context.Context) ([]*Hotel, error) {
	return f.filter(func(*Hotel) bool { return true }), nil
}

func (f *fakeStore) ListByMunicipalityCode(_ context.Context, code string) ([]*Hotel, error) {
	return f.filter(func(h *Hotel) bool { return h.MunicipalityCode == code }), nil
}

func (f *fakeStore) ListByTerritoryCode(_ context.Context, code string) ([]*Hotel, error) {
	return f.filter(func(h *Hotel) bool { return h.TerritoryCode == code }), nil
}

func (f *fakeStore) ListByMunicipalityName(_ context.Context, name string) ([]*Hotel, error) {
	return f.filter(func(h *Hotel) bool { return h.Municipality == name }), nil
}

func (f *fakeStore) ListByTerritoryName(_ context.Context, name string) ([]*Hotel, error) {
	return f.filter(func(h *Hotel) bool { return h.Territory == name }), nil
}

func (f *fakeStore) Municipalities(_ context.Context) ([]string, error) {
	return f.distinct(func(h *Hotel) string { return h.Municipality }), nil
}

func (f *fakeStore) Territories(_ context.Context) ([]string, error) {
	return f.distinct(func(h *Hotel) string { return h.Territory }), nil
}

func (f *fakeStore) filter(keep func(*Hotel) bool) []*Hotel {
	var matched []*Hotel
	for id := int64(1); id < f.nextID; id++ {
		if h, ok := f.hotels[id]; ok && keep(h) {
			matched = append(matched, h)
		}
	}
	return matched
}

func (f *fakeStore) distinct(key func(*Hotel) string) []string {
	seen := make(map[string]bool)
	var values []string
	for id := int64(1); id < f.nextID; id++ {
		h, ok := f.hotels[id]
		if !ok {
			continue
		}
		if k := key(h); !seen[k] {
			seen[k] = true
			values = append(values, k)
		}
	}
	return values
}

func newTestService(store Store) *Service {
	return NewService(store, logging.NewLogger(true))
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("derives price and rooms from stars", func(t *testing.T) {
		svc := newTestService(newFakeStore())

		created, err := svc.Create(ctx, CreateInput{Name: "Grand Plaza", Stars: 4})
		require.NoError(t, err)
		assert.Equal(t, 400, created.Price)
		assert.Equal(t, 600, created.Rooms)
	})

	t.Run("validation", func(t *testing.T) {
		svc := newTestService(newFakeStore())

		_, err := svc.Create(ctx, CreateInput{Stars: 3})
		assert.ErrorIs(t, err, ErrNameRequired)

		_, err = svc.Create(ctx, CreateInput{Name: "x", Stars: 0})
		assert.ErrorIs(t, err, ErrInvalidStars)

		_, err = svc.Create(ctx, CreateInput{Name: "x", Stars: 6})
		assert.ErrorIs(t, err, ErrInvalidStars)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("stars change recomputes price and rooms", func(t *testing.T) {
		store := newFakeStore()
		svc := newTestService(store)

		created, err := svc.Create(ctx, CreateInput{Name: "Grand Plaza", Stars: 2})
		require.NoError(t, err)
		require.Equal(t, 200, created.Price)

		stars := 5
		updated, err := svc.Update(ctx, created.ID, UpdateInput{Stars: &stars})
		require.NoError(t, err)
		assert.Equal(t, 5, updated.Stars)
		assert.Equal(t, 500, updated.Price)
		assert.Equal(t, 750, updated.Rooms)
	})

	t.Run("other fields leave derived values alone", func(t *testing.T) {
		store := newFakeStore()
		svc := newTestService(store)

		created, err := svc.Create(ctx, CreateInput{Name: "Grand Plaza", Stars: 3})
		require.NoError(t, err)

		name := "Grand Plaza Renamed"
		updated, err := svc.Update(ctx, created.ID, UpdateInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Grand Plaza Renamed", updated.Name)
		assert.Equal(t, 300, updated.Price)
		assert.Equal(t, 450, updated.Rooms)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		svc := newTestService(newFakeStore())

		name := "x"
		_, err := svc.Update(ctx, 99, UpdateInput{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_ListBy(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc *Service) {
		t.Helper()
		hotels := []CreateInput{
			{Name: "A", Stars: 3, Municipality: "Springfield", MunicipalityCode: "SPR", Territory: "North", TerritoryCode: "N"},
			{Name: "B", Stars: 4, Municipality: "Springfield", MunicipalityCode: "SPR", Territory: "North", TerritoryCode: "N"},
			{Name: "C", Stars: 5, Municipality: "Shelbyville", MunicipalityCode: "SHL", Territory: "South", TerritoryCode: "S"},
		}
		for _, in := range hotels {
			_, err := svc.Create(ctx, in)
			require.NoError(t, err)
		}
	}

	t.Run("by municipality code", func(t *testing.T) {
		svc := newTestService(newFakeStore())
		seed(t, svc)

		hotels, err := svc.ListBy(ctx, ByMunicipalityCode, "SPR")
		require.NoError(t, err)
		assert.Len(t, hotels, 2)
	})

	t.Run("by territory name", func(t *testing.T) {
		svc := newTestService(newFakeStore())
		seed(t, svc)

		hotels, err := svc.ListBy(ctx, ByTerritoryName, "South")
		require.NoError(t, err)
		require.Len(t, hotels, 1)
		assert.Equal(t, "C", hotels[0].Name)
	})

	t.Run("no matches", func(t *testing.T) {
		svc := newTestService(newFakeStore())
		seed(t, svc)

		_, err := svc.ListBy(ctx, ByMunicipalityName, "Nowhere")
		assert.ErrorIs(t, err, ErrNoHotelsFound)
	})

	t.Run("unknown filter", func(t *testing.T) {
		svc := newTestService(newFakeStore())

		_, err := svc.ListBy(ctx, "postcode", "123")
		assert.Error(t, err)
	})
}

func TestService_DistinctLists(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newFakeStore())

	inputs := []CreateInput{
		{Name: "A", Stars: 3, Municipality: "Springfield", Territory: "North"},
		{Name: "B", Stars: 4, Municipality: "Springfield", Territory: "North"},
		{Name: "C", Stars: 5, Municipality: "Shelbyville", Territory: "South"},
	}
	for _, in := range inputs {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	municipalities, err := svc.Municipalities(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Springfield", "Shelbyville"}, municipalities)

	territories, err := svc.Territories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"North", "South"}, territories)
}
