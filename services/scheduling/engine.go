package scheduling

import (
	"context"
	"fmt"
	"sort"
	"time"

	bookingRepo "slotify/database/repository/booking"
	eventtypeRepo "slotify/database/repository/eventtype"
	hostRepo "slotify/database/repository/host"
	"slotify/models"
	"slotify/services/reservation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSchedulingEngine is the production implementation.
type DefaultSchedulingEngine struct {
	EventTypes eventtypeRepo.EventTypeRepository
	Hosts      hostRepo.HostRepository
	Bookings   bookingRepo.BookingRepository
	Ledger     reservation.Ledger
	Expiry     ExpiryScheduler // optional

	ReservationTTL    time.Duration
	BookingWindowDays int // 0 disables the cutoff
	Logger            *zap.Logger
}

// ListSlots implements SchedulingEngine.
func (se *DefaultSchedulingEngine) ListSlots(ctx context.Context, eventTypeID string, rng models.TimeWindow) ([]models.Slot, error) {
	now := time.Now()
	return se.listSlots(ctx, eventTypeID, rng, now)
}

func (se *DefaultSchedulingEngine) listSlots(ctx context.Context, eventTypeID string, rng models.TimeWindow, now time.Time) ([]models.Slot, error) {
	event, err := se.EventTypes.GetByID(ctx, eventTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event type %s: %w", eventTypeID, err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: %s", ErrEventTypeNotFound, eventTypeID)
	}

	// Clamp the range to the booking window cutoff.
	if se.BookingWindowDays > 0 {
		cutoff := now.AddDate(0, 0, se.BookingWindowDays).UTC()
		if rng.End.After(cutoff) {
			rng.End = cutoff
		}
		if !rng.Start.Before(rng.End) {
			return []models.Slot{}, nil
		}
	}

	hosts, err := se.loadRoster(ctx, event)
	if err != nil {
		return nil, err
	}

	hostAvail, err := se.resolveAndFilter(ctx, event, hosts, rng)
	if err != nil {
		return nil, err
	}

	slots, err := AggregateSlots(*event, hostAvail, now)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = []models.Slot{}
	}
	return slots, nil
}

// loadRoster fetches the event's hosts and rejects configurations that
// reference hosts missing from the roster.
func (se *DefaultSchedulingEngine) loadRoster(ctx context.Context, event *models.EventType) ([]models.Host, error) {
	hosts, err := se.Hosts.GetByIDs(ctx, event.HostIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load hosts for event type %s: %w", event.ID, err)
	}

	byID := make(map[string]models.Host, len(hosts))
	for _, h := range hosts {
		byID[h.ID] = h
	}

	ordered := make([]models.Host, 0, len(event.HostIDs))
	for _, id := range event.HostIDs {
		h, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: event type %s references unknown host %s", ErrInvalidConfiguration, event.ID, id)
		}
		ordered = append(ordered, h)
	}
	return ordered, nil
}

// resolveAndFilter computes each host's raw availability and subtracts its
// buffered bookings.
func (se *DefaultSchedulingEngine) resolveAndFilter(ctx context.Context, event *models.EventType, hosts []models.Host, rng models.TimeWindow) ([]HostAvailability, error) {
	bufferBefore := time.Duration(event.BufferBeforeMinutes) * time.Minute
	bufferAfter := time.Duration(event.BufferAfterMinutes) * time.Minute

	// Pad the lookup range so bookings just outside it still project their
	// buffers into it.
	lookup := models.TimeWindow{
		Start: rng.Start.Add(-bufferAfter),
		End:   rng.End.Add(bufferBefore),
	}
	hostIDs := make([]string, 0, len(hosts))
	for _, h := range hosts {
		hostIDs = append(hostIDs, h.ID)
	}
	bookings, err := se.Bookings.ListConfirmed(ctx, hostIDs, lookup)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for event type %s: %w", event.ID, err)
	}

	out := make([]HostAvailability, 0, len(hosts))
	for _, host := range hosts {
		avail, err := ResolveAvailability(host, rng)
		if err != nil {
			return nil, err
		}
		avail = FilterConflicts(avail, bookingsForHost(bookings, host.ID), bufferBefore, bufferAfter)
		out = append(out, HostAvailability{Host: host, Windows: avail})
	}
	return out, nil
}

// ReserveSlot implements SchedulingEngine. The claim itself is delegated to
// the ledger; this method first re-derives the slot so the reservation can
// carry the hosts eligible for it at claim time.
func (se *DefaultSchedulingEngine) ReserveSlot(ctx context.Context, eventTypeID string, window models.TimeWindow, holderID string) (*models.Reservation, error) {
	slots, err := se.listSlots(ctx, eventTypeID, window, time.Now())
	if err != nil {
		return nil, err
	}

	var match *models.Slot
	for i := range slots {
		if slots[i].Window.Equal(window) {
			match = &slots[i]
			break
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrSlotUnavailable, window)
	}

	res, err := se.Ledger.Claim(ctx, models.Reservation{
		EventTypeID:     eventTypeID,
		Window:          window,
		HolderID:        holderID,
		EligibleHostIDs: match.EligibleHostIDs,
	}, se.ReservationTTL)
	if err != nil {
		return nil, err
	}

	if se.Expiry != nil {
		// Schedule best-effort cleanup a little after the TTL.
		if err := se.Expiry.ScheduleCleanup(ctx, res.Token, se.ReservationTTL+time.Minute); err != nil {
			se.logger().Warn("failed to schedule reservation cleanup",
				zap.String("token", res.Token), zap.Error(err))
		}
	}

	se.logger().Info("slot reserved",
		zap.String("eventTypeId", eventTypeID),
		zap.String("holderId", holderID),
		zap.String("window", window.String()))
	return res, nil
}

// ReleaseReservation implements SchedulingEngine.
func (se *DefaultSchedulingEngine) ReleaseReservation(ctx context.Context, token string) error {
	return se.Ledger.Release(ctx, token)
}

// ConfirmReservation implements SchedulingEngine. Confirm on the ledger gates
// the durable write: the booking is only created when a live hold matched the
// token, and the hold is gone either way afterwards.
func (se *DefaultSchedulingEngine) ConfirmReservation(ctx context.Context, token string) (*models.Booking, error) {
	res, err := se.Ledger.Confirm(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to confirm reservation: %w", err)
	}
	if res == nil {
		return nil, nil
	}

	event, err := se.EventTypes.GetByID(ctx, res.EventTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event type %s: %w", res.EventTypeID, err)
	}
	if event == nil {
		return nil, fmt.Errorf("%w: %s", ErrEventTypeNotFound, res.EventTypeID)
	}

	hostIDs, err := se.assignHosts(ctx, event, res)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		TenantID:    event.TenantID,
		EventTypeID: event.ID,
		HostIDs:     hostIDs,
		Window:      res.Window,
		HolderID:    res.HolderID,
		Status:      models.BookingConfirmed,
		CreatedAt:   time.Now().UTC(),
	}
	if err := se.Bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	se.logger().Info("reservation confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("eventTypeId", event.ID),
		zap.Strings("hostIds", hostIDs))
	return booking, nil
}

// assignHosts turns the reservation's eligible set into the booked hosts.
// Collective events book every eligible (fixed) host; the others book a
// single host picked deterministically by priority, then weight, then ID.
func (se *DefaultSchedulingEngine) assignHosts(ctx context.Context, event *models.EventType, res *models.Reservation) ([]string, error) {
	if len(res.EligibleHostIDs) == 0 {
		return nil, fmt.Errorf("%w: reservation for event type %s has no eligible hosts", ErrInvalidConfiguration, event.ID)
	}
	if event.Policy == models.PolicyCollective {
		return res.EligibleHostIDs, nil
	}

	hosts, err := se.Hosts.GetByIDs(ctx, res.EligibleHostIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load eligible hosts: %w", err)
	}
	if len(hosts) == 0 {
		return nil, fmt.Errorf("%w: eligible hosts for event type %s no longer exist", ErrInvalidConfiguration, event.ID)
	}

	sort.Slice(hosts, func(i, j int) bool {
		if hosts[i].Priority != hosts[j].Priority {
			return hosts[i].Priority > hosts[j].Priority
		}
		if hosts[i].Weight != hosts[j].Weight {
			return hosts[i].Weight > hosts[j].Weight
		}
		return hosts[i].ID < hosts[j].ID
	})
	return []string{hosts[0].ID}, nil
}

func bookingsForHost(bookings []models.Booking, hostID string) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		for _, id := range b.HostIDs {
			if id == hostID {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

func (se *DefaultSchedulingEngine) logger() *zap.Logger {
	if se.Logger != nil {
		return se.Logger
	}
	return zap.L()
}
