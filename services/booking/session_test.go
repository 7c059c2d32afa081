package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kessoku/models"
)

type fakeStoreAPI struct {
	store        *models.Store
	orders       map[string][]models.ClassOrder
	ordersErr    error
	submitted    []models.BookRequest
	submitResult *models.BookResult
	submitErr    error
}

func (f *fakeStoreAPI) GetStoreInfo(ctx context.Context, storeID string) (*models.Store, error) {
	if f.store == nil {
		return nil, errors.New("store not found")
	}
	return f.store, nil
}

func (f *fakeStoreAPI) GetClassOrders(ctx context.Context, classID string) ([]models.ClassOrder, error) {
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return f.orders[classID], nil
}

func (f *fakeStoreAPI) SubmitBooking(ctx context.Context, req models.BookRequest) (*models.BookResult, error) {
	f.submitted = append(f.submitted, req)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitResult, nil
}

func testStore() *models.Store {
	return &models.Store{
		ID:   "S1",
		Name: "Starry Studio",
		Classes: []models.StoreClass{
			{
				ID:   "C1",
				Name: "Room A",
				OrderDateTimeList: []models.DateTimes{
					{Date: "2024-03-20", TimeList: []string{"14:00", "15:00", "16:00"}},
				},
			},
			{
				ID:   "C2",
				Name: "Room B",
				OrderDateTimeList: []models.DateTimes{
					{Date: "2024-03-20", TimeList: []string{"14:00"}},
				},
			},
		},
	}
}

func TestSessionLoadPopulatesSnapshots(t *testing.T) {
	api := &fakeStoreAPI{
		store: testStore(),
		orders: map[string][]models.ClassOrder{
			"C1": {{Date: "2024-03-20", TimeList: []string{"14:00"}}},
		},
	}
	session := NewStoreDetailSession(api)

	store, err := session.Load(context.Background(), "S1")
	require.NoError(t, err)
	assert.Equal(t, "Starry Studio", store.Name)

	assert.Equal(t, SlotBooked, session.SlotState("C1", "2024-03-20", "14:00"))
	assert.Equal(t, SlotAvailable, session.SlotState("C1", "2024-03-20", "15:00"))
	assert.Equal(t, SlotAvailable, session.SlotState("C2", "2024-03-20", "14:00"))
}

func TestSessionToggleRespectsBookedSnapshot(t *testing.T) {
	api := &fakeStoreAPI{
		store: testStore(),
		orders: map[string][]models.ClassOrder{
			"C1": {{Date: "2024-03-20", TimeList: []string{"14:00"}}},
		},
	}
	session := NewStoreDetailSession(api)
	_, err := session.Load(context.Background(), "S1")
	require.NoError(t, err)

	session.Toggle("C1", "2024-03-20", "14:00") // booked, no-op
	assert.False(t, session.Draft().HasSelection())

	session.Toggle("C1", "2024-03-20", "15:00")
	assert.Equal(t, SlotSelected, session.SlotState("C1", "2024-03-20", "15:00"))
}

func TestSessionSubmit(t *testing.T) {
	api := &fakeStoreAPI{
		store:        testStore(),
		orders:       map[string][]models.ClassOrder{},
		submitResult: &models.BookResult{BookIDs: []string{"B1"}},
	}
	session := NewStoreDetailSession(api)
	_, err := session.Load(context.Background(), "S1")
	require.NoError(t, err)

	session.Toggle("C1", "2024-03-20", "15:00")
	session.Toggle("C1", "2024-03-20", "14:00")

	result, err := session.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"B1"}, result.BookIDs)

	require.Len(t, api.submitted, 1)
	contents := api.submitted[0].BookContents
	require.Len(t, contents, 1)
	assert.Equal(t, "C1", contents[0].ClassID)
	assert.Equal(t, "2024-03-20", contents[0].BookDate)
	assert.Equal(t, []string{"14:00", "15:00"}, contents[0].Times)

	// The draft is emptied once the submission went through.
	assert.False(t, session.Draft().HasSelection())
}

func TestSessionSubmitEmptyDraft(t *testing.T) {
	api := &fakeStoreAPI{store: testStore(), orders: map[string][]models.ClassOrder{}}
	session := NewStoreDetailSession(api)
	_, err := session.Load(context.Background(), "S1")
	require.NoError(t, err)

	_, err = session.Submit(context.Background())
	assert.ErrorIs(t, err, ErrEmptyDraft)
}

func TestSessionSubmitBeforeLoad(t *testing.T) {
	session := NewStoreDetailSession(&fakeStoreAPI{})
	_, err := session.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestSessionSubmitFailureKeepsDraft(t *testing.T) {
	api := &fakeStoreAPI{
		store:     testStore(),
		orders:    map[string][]models.ClassOrder{},
		submitErr: errors.New("slot taken"),
	}
	session := NewStoreDetailSession(api)
	_, err := session.Load(context.Background(), "S1")
	require.NoError(t, err)

	session.Toggle("C1", "2024-03-20", "14:00")
	_, err = session.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, session.Draft().HasSelection())
}

// overtakenAPI simulates an orders fetch that is overtaken by a newer
// one before its own response arrives.
type overtakenAPI struct {
	fakeStoreAPI
	session *StoreDetailSession
	calls   int
	stale   []models.ClassOrder
	fresh   []models.ClassOrder
}

func (f *overtakenAPI) GetClassOrders(ctx context.Context, classID string) ([]models.ClassOrder, error) {
	f.calls++
	if f.calls == 1 {
		if err := f.session.RefreshRoom(ctx, classID); err != nil {
			return nil, err
		}
		return f.stale, nil
	}
	return f.fresh, nil
}

func TestRefreshRoomDiscardsStaleResponse(t *testing.T) {
	api := &overtakenAPI{
		stale: []models.ClassOrder{{Date: "2024-03-20", TimeList: []string{"14:00"}}},
		fresh: []models.ClassOrder{{Date: "2024-03-20", TimeList: []string{"15:00"}}},
	}
	session := NewStoreDetailSession(api)
	api.session = session

	require.NoError(t, session.RefreshRoom(context.Background(), "C1"))
	assert.Equal(t, 2, api.calls)

	// The fresher snapshot wins even though the stale response
	// arrived after it.
	booked := session.Booked("C1")
	assert.False(t, booked.Contains("2024-03-20", "14:00"))
	assert.True(t, booked.Contains("2024-03-20", "15:00"))
}
