package scheduling

import (
	"context"
	"sync"
	"testing"
	"time"

	"slotify/models"
	"slotify/services/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEventTypes struct {
	items map[string]models.EventType
}

func (f *fakeEventTypes) GetByID(_ context.Context, id string) (*models.EventType, error) {
	if e, ok := f.items[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (f *fakeEventTypes) ListByTenant(_ context.Context, _ string) ([]models.EventType, error) {
	return nil, nil
}

func (f *fakeEventTypes) Upsert(_ context.Context, e models.EventType) error {
	f.items[e.ID] = e
	return nil
}

func (f *fakeEventTypes) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fakeHosts struct {
	items map[string]models.Host
}

func (f *fakeHosts) GetByID(_ context.Context, id string) (*models.Host, error) {
	if h, ok := f.items[id]; ok {
		return &h, nil
	}
	return nil, nil
}

func (f *fakeHosts) GetByIDs(_ context.Context, ids []string) ([]models.Host, error) {
	var out []models.Host
	for _, id := range ids {
		if h, ok := f.items[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHosts) Upsert(_ context.Context, h models.Host) error {
	f.items[h.ID] = h
	return nil
}

func (f *fakeHosts) Delete(_ context.Context, id string) error {
	delete(f.items, id)
	return nil
}

type fakeBookings struct {
	mu    sync.Mutex
	items []models.Booking
}

func (f *fakeBookings) ListConfirmed(_ context.Context, hostIDs []string, rng models.TimeWindow) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wanted := make(map[string]struct{}, len(hostIDs))
	for _, id := range hostIDs {
		wanted[id] = struct{}{}
	}
	var out []models.Booking
	for _, b := range f.items {
		if b.Status != models.BookingConfirmed || !b.Window.Overlaps(rng) {
			continue
		}
		for _, id := range b.HostIDs {
			if _, ok := wanted[id]; ok {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookings) Create(_ context.Context, b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, *b)
	return nil
}

func (f *fakeBookings) Cancel(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = models.BookingCancelled
		}
	}
	return nil
}

func allWeekRules() []models.WeeklyRule {
	rules := make([]models.WeeklyRule, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		rules = append(rules, models.WeeklyRule{Weekday: d, StartMinute: 0, EndMinute: 24 * 60})
	}
	return rules
}

// testRange returns a three-hour range two days out, so the engine's
// wall-clock checks never interfere.
func testRange(t *testing.T) models.TimeWindow {
	t.Helper()
	day := time.Now().UTC().AddDate(0, 0, 2).Truncate(24 * time.Hour)
	return utcWindow(t, day.Add(9*time.Hour), day.Add(12*time.Hour))
}

func newTestEngine(t *testing.T) (*DefaultSchedulingEngine, *fakeBookings) {
	t.Helper()
	bookings := &fakeBookings{}
	engine := &DefaultSchedulingEngine{
		EventTypes: &fakeEventTypes{items: map[string]models.EventType{
			"e1": {
				ID:                 "e1",
				TenantID:           "t1",
				Policy:             models.PolicyRoundRobin,
				DurationMinutes:    60,
				GranularityMinutes: 60,
				HostIDs:            []string{"h1", "h2"},
			},
			"e2": {
				ID:                 "e2",
				TenantID:           "t1",
				Policy:             models.PolicyCollective,
				DurationMinutes:    60,
				GranularityMinutes: 60,
				HostIDs:            []string{"h1", "h2"},
			},
			"broken": {
				ID:              "broken",
				Policy:          models.PolicyAnyOf,
				DurationMinutes: 60,
				HostIDs:         []string{"h1", "ghost"},
			},
		}},
		Hosts: &fakeHosts{items: map[string]models.Host{
			"h1": {ID: "h1", Timezone: "UTC", WeeklyRules: allWeekRules(), IsFixed: true, Priority: 1},
			"h2": {ID: "h2", Timezone: "UTC", WeeklyRules: allWeekRules(), IsFixed: true, Priority: 5},
		}},
		Bookings:       bookings,
		Ledger:         reservation.NewMemoryLedger(),
		ReservationTTL: time.Minute,
		Logger:         zap.NewNop(),
	}
	return engine, bookings
}

func TestEngineListSlots(t *testing.T) {
	engine, _ := newTestEngine(t)
	rng := testRange(t)

	slots, err := engine.ListSlots(context.Background(), "e1", rng)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	for i, s := range slots {
		assert.Equal(t, rng.Start.Add(time.Duration(i)*time.Hour), s.Window.Start)
		assert.Equal(t, []string{"h1", "h2"}, s.EligibleHostIDs)
	}
}

func TestEngineListSlotsUnknownEventType(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.ListSlots(context.Background(), "nope", testRange(t))
	assert.ErrorIs(t, err, ErrEventTypeNotFound)
}

func TestEngineListSlotsUnknownHost(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.ListSlots(context.Background(), "broken", testRange(t))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestEngineListSlotsBookingWindowCutoff(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.BookingWindowDays = 1

	slots, err := engine.ListSlots(context.Background(), "e1", testRange(t))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestEngineReserveConfirmLifecycle(t *testing.T) {
	engine, bookings := newTestEngine(t)
	ctx := context.Background()
	rng := testRange(t)
	slot := utcWindow(t, rng.Start, rng.Start.Add(time.Hour))

	res, err := engine.ReserveSlot(ctx, "e1", slot, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	assert.Equal(t, []string{"h1", "h2"}, res.EligibleHostIDs)

	// A competing hold on the same slot loses.
	_, err = engine.ReserveSlot(ctx, "e1", slot, "bob")
	assert.ErrorIs(t, err, reservation.ErrConflict)

	booking, err := engine.ConfirmReservation(ctx, res.Token)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, slot, booking.Window)
	assert.Equal(t, "alice", booking.HolderID)
	// h2 outranks h1 on priority.
	assert.Equal(t, []string{"h2"}, booking.HostIDs)
	require.Len(t, bookings.items, 1)

	// The token is spent; confirming again is a no-op.
	again, err := engine.ConfirmReservation(ctx, res.Token)
	require.NoError(t, err)
	assert.Nil(t, again)

	// For an any-host event the other host still covers the slot.
	slots, err := engine.ListSlots(ctx, "e1", rng)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, []string{"h1"}, slots[0].EligibleHostIDs)
}

func TestEngineConfirmCollectiveBooksAllHosts(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	rng := testRange(t)
	slot := utcWindow(t, rng.Start, rng.Start.Add(time.Hour))

	res, err := engine.ReserveSlot(ctx, "e2", slot, "alice")
	require.NoError(t, err)

	booking, err := engine.ConfirmReservation(ctx, res.Token)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, []string{"h1", "h2"}, booking.HostIDs)

	// Both hosts are now busy, so the collective slot is gone.
	slots, err := engine.ListSlots(ctx, "e2", rng)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, slot.End, slots[0].Window.Start)
}

func TestEngineReserveUnavailableWindow(t *testing.T) {
	engine, _ := newTestEngine(t)
	rng := testRange(t)
	offGrid := utcWindow(t, rng.Start.Add(15*time.Minute), rng.Start.Add(75*time.Minute))

	_, err := engine.ReserveSlot(context.Background(), "e1", offGrid, "alice")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestEngineReleaseFreesSlot(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	rng := testRange(t)
	slot := utcWindow(t, rng.Start, rng.Start.Add(time.Hour))

	res, err := engine.ReserveSlot(ctx, "e1", slot, "alice")
	require.NoError(t, err)
	require.NoError(t, engine.ReleaseReservation(ctx, res.Token))

	// Releasing again is harmless, and the slot is claimable by anyone.
	require.NoError(t, engine.ReleaseReservation(ctx, res.Token))
	_, err = engine.ReserveSlot(ctx, "e1", slot, "bob")
	assert.NoError(t, err)
}
