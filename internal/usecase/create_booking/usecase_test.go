package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	bookingRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/client"
	professionalRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/professional"
	"github.com/t1mga/FSP-BookingService/pkg/types"
)

var testNow = time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

// 2026-09-21 - понедельник
var bookingDate = time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC)

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeStore разделяемое состояние фейковых репозиториев
// Мьютекс сериализует транзакции, имитируя SERIALIZABLE изоляцию
type fakeStore struct {
	mu            sync.Mutex
	clients       map[uuid.UUID]*domain.Client
	professionals map[uuid.UUID]*domain.Professional
	bookings      []*domain.Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clients:       make(map[uuid.UUID]*domain.Client),
		professionals: make(map[uuid.UUID]*domain.Professional),
	}
}

type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return fn(ctx)
}

type fakeClientRepo struct {
	store *fakeStore
}

func (r *fakeClientRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	client, ok := r.store.clients[id]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return client, nil
}

type fakeProfessionalRepo struct {
	store *fakeStore
}

func (r *fakeProfessionalRepo) GetByIDWithBookings(_ context.Context, id uuid.UUID) (*domain.Professional, error) {
	professional, ok := r.store.professionals[id]
	if !ok {
		return nil, professionalRepo.ErrProfessionalNotFound
	}

	loaded := *professional
	loaded.Bookings = nil
	for _, booking := range r.store.bookings {
		if booking.ProfessionalID == id && !booking.IsCancelled() {
			loaded.AddBooking(booking)
		}
	}
	return &loaded, nil
}

type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	// Exclusion constraint в схеме: пересекающиеся неотменённые бронирования
	// одного профессионала на одну дату не сохраняются
	for _, existing := range r.store.bookings {
		if existing.ProfessionalID != booking.ProfessionalID || existing.IsCancelled() {
			continue
		}
		if !domain.SameDate(existing.Date, booking.Date) {
			continue
		}
		if domain.TimeRangesOverlap(booking.StartTime, booking.EndTime, existing.StartTime, existing.EndTime) {
			return nil, bookingRepo.ErrTimeConflict
		}
	}
	r.store.bookings = append(r.store.bookings, booking)
	return booking, nil
}

func (r *fakeBookingRepo) HasTimeConflict(_ context.Context, professionalID uuid.UUID, date time.Time, startTime, endTime types.TimeString, excludeID *uuid.UUID) (bool, error) {
	for _, existing := range r.store.bookings {
		if existing.ProfessionalID != professionalID || existing.IsCancelled() {
			continue
		}
		if !domain.SameDate(existing.Date, date) {
			continue
		}
		if excludeID != nil && existing.ID == *excludeID {
			continue
		}
		if domain.TimeRangesOverlap(startTime, endTime, existing.StartTime, existing.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	parsed, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return parsed
}

type fixture struct {
	uc           *UseCase
	store        *fakeStore
	client       *domain.Client
	professional *domain.Professional
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newFakeStore()

	client, err := domain.NewClient("Maria", "maria@example.com", "1234567890", 0, 0, testNow)
	require.NoError(t, err)
	store.clients[client.ID] = client

	professional, err := domain.NewProfessional(
		"João", "joao@example.com", "1234567890", 0.01, 0.01, 50, testNow)
	require.NoError(t, err)
	require.NoError(t, professional.SetAvailability(
		time.Monday, mustTime(t, "08:00"), mustTime(t, "18:00"), testNow))
	store.professionals[professional.ID] = professional

	uc := NewUseCase(
		&fakeBookingRepo{store: store},
		&fakeProfessionalRepo{store: store},
		&fakeClientRepo{store: store},
		&fakeTxManager{store: store},
		nopLogger{},
	)
	uc.timeProvider = &fakeTimeProvider{now: testNow}

	return &fixture{uc: uc, store: store, client: client, professional: professional}
}

func (f *fixture) request(t *testing.T, start, end string) *Request {
	t.Helper()
	return &Request{
		ClientID:        f.client.ID,
		ProfessionalID:  f.professional.ID,
		Date:            bookingDate,
		StartTime:       mustTime(t, start),
		EndTime:         mustTime(t, end),
		OriginAddress:   "Av. Paulista, 1000",
		OriginLatitude:  0,
		OriginLongitude: 0,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request(t, "10:00", "11:30"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.Equal(t, f.client.ID, resp.ClientID)
	require.Len(t, f.store.bookings, 1)
}

func TestExecute_ClientNotFound(t *testing.T) {
	f := newFixture(t)
	req := f.request(t, "10:00", "11:00")
	req.ClientID = uuid.New()

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	f := newFixture(t)
	req := f.request(t, "10:00", "11:00")
	req.ProfessionalID = uuid.New()

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_ProfessionalInactive(t *testing.T) {
	f := newFixture(t)
	f.professional.Deactivate()

	_, err := f.uc.Execute(context.Background(), f.request(t, "10:00", "11:00"))
	assert.ErrorIs(t, err, ErrProfessionalInactive)
}

func TestExecute_LeadTime(t *testing.T) {
	f := newFixture(t)

	// Бронирование на завтра, но "сейчас" - за 30 минут до начала
	f.uc.timeProvider = &fakeTimeProvider{
		now: time.Date(2026, 9, 21, 9, 30, 0, 0, time.UTC),
	}

	_, err := f.uc.Execute(context.Background(), f.request(t, "10:00", "11:00"))
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_InvalidBookingData(t *testing.T) {
	f := newFixture(t)

	// Длительность меньше 30 минут нарушает инвариант сущности
	req := f.request(t, "10:00", "10:15")
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Дата не строго в будущем: сегодня, даже на вечер, бронировать нельзя
	req = f.request(t, "16:00", "17:00")
	req.Date = testNow
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NotAvailable(t *testing.T) {
	f := newFixture(t)

	// Вне окна доступности (окно понедельника 08:00-18:00)
	_, err := f.uc.Execute(context.Background(), f.request(t, "06:00", "07:00"))
	assert.ErrorIs(t, err, ErrNotAvailable)

	// День недели без окна
	req := f.request(t, "10:00", "11:00")
	req.Date = bookingDate.AddDate(0, 0, 1)
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestExecute_ConflictWithExistingBooking(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), f.request(t, "10:00", "11:00"))
	require.NoError(t, err)

	// Пересекающийся слот отклоняется
	_, err = f.uc.Execute(context.Background(), f.request(t, "10:30", "11:30"))
	assert.ErrorIs(t, err, ErrNotAvailable)

	// Граничащий слот проходит: полуоткрытые интервалы
	_, err = f.uc.Execute(context.Background(), f.request(t, "11:00", "12:00"))
	assert.NoError(t, err)

	require.Len(t, f.store.bookings, 2)
}

// Два конкурирующих запроса на один слот: зафиксироваться должен ровно один
func TestExecute_ConcurrentDoubleBooking(t *testing.T) {
	f := newFixture(t)

	const attempts = 8

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Execute(context.Background(), f.request(t, "10:00", "11:00"))
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrNotAvailable)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, f.store.bookings, 1)
}
