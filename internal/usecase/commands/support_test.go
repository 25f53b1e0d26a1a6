//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"workshop-booking/internal/domain/booking"
	"workshop-booking/internal/domain/slot"
	"workshop-booking/internal/infra"
	"workshop-booking/internal/pkg/errs"
	"workshop-booking/internal/usecase/commands"
	"workshop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeState holds the in-memory tables the fake unit of work operates on.
type fakeState struct {
	services  map[uuid.UUID]shared.ServiceSnapshot
	slots     map[uuid.UUID]shared.SlotSnapshot
	bookings  map[uuid.UUID]shared.BookingSnapshot
	workshops map[uuid.UUID]shared.WorkshopSnapshot
}

func newFakeState() *fakeState {
	return &fakeState{
		services:  make(map[uuid.UUID]shared.ServiceSnapshot),
		slots:     make(map[uuid.UUID]shared.SlotSnapshot),
		bookings:  make(map[uuid.UUID]shared.BookingSnapshot),
		workshops: make(map[uuid.UUID]shared.WorkshopSnapshot),
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	for k, v := range s.services {
		c.services[k] = v
	}
	for k, v := range s.slots {
		c.slots[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.workshops {
		c.workshops[k] = v
	}
	return c
}

// fakeUoW serializes transactions behind a mutex and commits by swapping in a
// mutated clone, so a failed transaction leaves the state untouched and
// concurrent conditional writes behave like they do against the database.
type fakeUoW struct {
	mu    sync.Mutex
	state *fakeState
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{state: newFakeState()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	work := u.state.clone()
	if err := fn(ctx, &fakeTx{state: work}); err != nil {
		return err
	}
	u.state = work
	return nil
}

func (u *fakeUoW) Reads() shared.CommandReads {
	return &fakeReads{uow: u}
}

// seeding helpers, called before the scenario under test runs

func (u *fakeUoW) addWorkshop(ownerID uuid.UUID) uuid.UUID {
	u.mu.Lock()
	defer u.mu.Unlock()

	id := uuid.New()
	u.state.workshops[id] = shared.WorkshopSnapshot{ID: id, OwnerID: ownerID, Name: "garage"}
	return id
}

func (u *fakeUoW) addService(workshopID uuid.UUID, durationMinutes int, active bool) uuid.UUID {
	u.mu.Lock()
	defer u.mu.Unlock()

	id := uuid.New()
	u.state.services[id] = shared.ServiceSnapshot{
		ID:              id,
		WorkshopID:      workshopID,
		Name:            "oil change",
		DurationMinutes: durationMinutes,
		PriceCents:      4900,
		IsActive:        active,
	}
	return id
}

func (u *fakeUoW) addSlot(workshopID uuid.UUID, start time.Time, length time.Duration, status slot.Status) uuid.UUID {
	u.mu.Lock()
	defer u.mu.Unlock()

	id := uuid.New()
	u.state.slots[id] = shared.SlotSnapshot{
		ID:         id,
		WorkshopID: workshopID,
		StartTime:  start,
		EndTime:    start.Add(length),
		Status:     status.String(),
	}
	return id
}

func (u *fakeUoW) slotStatus(id uuid.UUID) string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.slots[id].Status
}

func (u *fakeUoW) bookingStatus(id uuid.UUID) string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state.bookings[id].Status
}

func (u *fakeUoW) setSlotStatus(id uuid.UUID, status slot.Status) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s := u.state.slots[id]
	s.Status = status.String()
	u.state.slots[id] = s
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Slots() shared.SlotRepository       { return &fakeSlotRepo{state: t.state} }
func (t *fakeTx) Bookings() shared.BookingRepository { return &fakeBookingRepo{state: t.state} }
func (t *fakeTx) Reads() shared.CommandReads         { return &fakeReads{state: t.state} }

type fakeSlotRepo struct {
	state *fakeState
}

func (r *fakeSlotRepo) Create(_ context.Context, s *slot.Slot) error {
	r.state.slots[s.ID()] = shared.SlotSnapshot{
		ID:         s.ID(),
		WorkshopID: s.WorkshopID(),
		StartTime:  s.Window().Start(),
		EndTime:    s.Window().End(),
		Status:     s.Status().String(),
	}
	return nil
}

func (r *fakeSlotRepo) TryClaim(_ context.Context, slotID uuid.UUID) (bool, error) {
	s, ok := r.state.slots[slotID]
	if !ok || s.Status != slot.StatusAvailable.String() {
		return false, nil
	}
	s.Status = slot.StatusBooked.String()
	r.state.slots[slotID] = s
	return true, nil
}

func (r *fakeSlotRepo) Release(_ context.Context, slotID uuid.UUID) (bool, error) {
	s, ok := r.state.slots[slotID]
	if !ok || s.Status != slot.StatusBooked.String() {
		return false, nil
	}
	s.Status = slot.StatusAvailable.String()
	r.state.slots[slotID] = s
	return true, nil
}

func (r *fakeSlotRepo) DeleteAvailable(_ context.Context, slotID uuid.UUID) (bool, error) {
	s, ok := r.state.slots[slotID]
	if !ok || s.Status != slot.StatusAvailable.String() {
		return false, nil
	}
	delete(r.state.slots, slotID)
	return true, nil
}

type fakeBookingRepo struct {
	state *fakeState
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	sl := r.state.slots[b.SlotID()]
	ws := r.state.workshops[sl.WorkshopID]
	r.state.bookings[b.ID()] = shared.BookingSnapshot{
		ID:              b.ID(),
		SlotID:          b.SlotID(),
		ServiceID:       b.ServiceID(),
		UserID:          b.UserID(),
		Status:          b.Status().String(),
		WorkshopID:      sl.WorkshopID,
		WorkshopOwnerID: ws.OwnerID,
	}
	return nil
}

func (r *fakeBookingRepo) Transition(_ context.Context, bookingID uuid.UUID, from []booking.Status, to booking.Status) (bool, error) {
	b, ok := r.state.bookings[bookingID]
	if !ok {
		return false, nil
	}
	for _, f := range from {
		if b.Status == f.String() {
			b.Status = to.String()
			r.state.bookings[bookingID] = b
			return true, nil
		}
	}
	return false, nil
}

// fakeReads serves both the transactional view (state set) and the
// out-of-transaction view (uow set, locked per call).
type fakeReads struct {
	uow   *fakeUoW
	state *fakeState
}

func (r *fakeReads) snapshot() *fakeState {
	if r.state != nil {
		return r.state
	}
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return r.uow.state.clone()
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", errs.New("no rows in result set"), infra.KindNotFound)
}

func (r *fakeReads) ServiceByID(_ context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	s, ok := r.snapshot().services[id]
	if !ok {
		return nil, notFound("service")
	}
	return &s, nil
}

func (r *fakeReads) SlotByID(_ context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	s, ok := r.snapshot().slots[id]
	if !ok {
		return nil, notFound("slot")
	}
	return &s, nil
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := r.snapshot().bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return &b, nil
}

func (r *fakeReads) WorkshopByID(_ context.Context, id uuid.UUID) (*shared.WorkshopSnapshot, error) {
	w, ok := r.snapshot().workshops[id]
	if !ok {
		return nil, notFound("workshop")
	}
	return &w, nil
}

// recordingNotifier captures emitted events per transition for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	created   []commands.BookingEvent
	confirmed []commands.BookingEvent
	canceled  []commands.BookingEvent
	completed []commands.BookingEvent
}

func (n *recordingNotifier) BookingCreated(_ context.Context, ev commands.BookingEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, ev)
}

func (n *recordingNotifier) BookingConfirmed(_ context.Context, ev commands.BookingEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmed = append(n.confirmed, ev)
}

func (n *recordingNotifier) BookingCanceled(_ context.Context, ev commands.BookingEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.canceled = append(n.canceled, ev)
}

func (n *recordingNotifier) BookingCompleted(_ context.Context, ev commands.BookingEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.completed = append(n.completed, ev)
}

func (n *recordingNotifier) createdEvents() []commands.BookingEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]commands.BookingEvent(nil), n.created...)
}
