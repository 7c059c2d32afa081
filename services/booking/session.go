package booking

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"kessoku/models"
	"kessoku/utils"
)

// StoreDetailSession owns one store visit: the fetched store, a
// per-room snapshot of already-booked slots, and the user's draft
// selection. It lives from opening the store detail view until the
// view is torn down or a submission succeeds.
//
// Draft mutation (Toggle, Submit) must happen on the view's event
// loop. Order re-fetches may run on their own goroutines; snapshot
// bookkeeping is locked, and each room carries a monotonic fetch token
// so a response that was overtaken by a newer fetch is discarded
// instead of clobbering the fresher snapshot.
type StoreDetailSession struct {
	api    StoreAPI
	logger *zap.Logger

	mu       sync.Mutex
	store    *models.Store
	booked   map[string]BookedSet
	fetchSeq map[string]uint64

	draft *Draft
}

// NewStoreDetailSession returns a session with an empty draft.
func NewStoreDetailSession(api StoreAPI) *StoreDetailSession {
	return &StoreDetailSession{
		api:      api,
		logger:   utils.GetLogger(),
		booked:   make(map[string]BookedSet),
		fetchSeq: make(map[string]uint64),
		draft:    NewDraft(),
	}
}

// Load fetches the store and the confirmed orders of every room. Any
// previous draft is discarded: the draft belongs to a single store
// visit.
func (s *StoreDetailSession) Load(ctx context.Context, storeID string) (*models.Store, error) {
	store, err := s.api.GetStoreInfo(ctx, storeID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.store = store
	s.booked = make(map[string]BookedSet, len(store.Classes))
	s.fetchSeq = make(map[string]uint64, len(store.Classes))
	s.mu.Unlock()
	s.draft = NewDraft()

	for _, class := range store.Classes {
		if err := s.RefreshRoom(ctx, class.ID); err != nil {
			return nil, fmt.Errorf("failed to load orders for class %s: %w", class.ID, err)
		}
	}
	return store, nil
}

// RefreshRoom re-fetches one room's confirmed orders and replaces its
// snapshot, unless a newer fetch for the same room was issued while
// this one was in flight.
func (s *StoreDetailSession) RefreshRoom(ctx context.Context, classID string) error {
	s.mu.Lock()
	s.fetchSeq[classID]++
	token := s.fetchSeq[classID]
	s.mu.Unlock()

	orders, err := s.api.GetClassOrders(ctx, classID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.fetchSeq[classID] {
		s.logger.Debug("discarding stale orders response",
			zap.String("classId", classID),
			zap.Uint64("token", token),
			zap.Uint64("latest", s.fetchSeq[classID]))
		return nil
	}
	s.booked[classID] = NewBookedSet(orders)
	return nil
}

// Store returns the loaded store, or nil before Load.
func (s *StoreDetailSession) Store() *models.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store
}

// Booked returns the current snapshot for a room. A room with no
// snapshot yet yields an empty set, which classifies everything as
// available or selected.
func (s *StoreDetailSession) Booked(classID string) BookedSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booked[classID]
}

// Toggle flips one slot of the draft against the room's current
// snapshot. Booked slots are never toggled.
func (s *StoreDetailSession) Toggle(classID, date, timeKey string) {
	s.draft.Toggle(classID, date, timeKey, s.Booked(classID))
}

// SlotState classifies one slot coordinate for display.
func (s *StoreDetailSession) SlotState(classID, date, timeKey string) SlotState {
	return Classify(s.Booked(classID), s.draft, classID, date, timeKey)
}

// Draft exposes the session's draft for read-only projections.
func (s *StoreDetailSession) Draft() *Draft {
	return s.draft
}

// Submit sends the draft as a booking request. On success the draft is
// emptied; on failure it is kept so the user can adjust and retry after
// the presentation layer re-fetches availability.
func (s *StoreDetailSession) Submit(ctx context.Context) (*models.BookResult, error) {
	if s.Store() == nil {
		return nil, ErrNotLoaded
	}
	if !s.draft.HasSelection() {
		return nil, ErrEmptyDraft
	}

	result, err := s.api.SubmitBooking(ctx, models.BookRequest{BookContents: s.draft.Payload()})
	if err != nil {
		return nil, err
	}
	s.draft.Reset()
	s.logger.Info("booking submitted", zap.Strings("bookIds", result.BookIDs))
	return result, nil
}
