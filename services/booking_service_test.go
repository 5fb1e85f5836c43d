package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cabin-backend/models"
	"cabin-backend/repository"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeMailer records every send and can be told to fail.
type fakeMailer struct {
	mu    sync.Mutex
	sends []sentMail
	err   error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sends = append(m.sends, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMail, len(m.sends))
	copy(out, m.sends)
	return out
}

func newBookingService() (*BookingService, *fakeMailer) {
	mailer := &fakeMailer{}
	svc := NewBookingService(repository.NewMemoryBookingRepository(), mailer, zap.NewNop())
	return svc, mailer
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		GuestName:  "A",
		GuestEmail: "a@x.com",
		StartDate:  date(2025, time.June, 1),
		EndDate:    date(2025, time.June, 5),
		Guests:     2,
	}
}

func TestBookingService_CreateForcesPending(t *testing.T) {
	svc, mailer := newBookingService()

	before := time.Now()
	booking, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.WithinDuration(t, before, booking.CreatedAt, 5*time.Second)
	assert.Equal(t, "a@x.com", booking.GuestEmail)

	sends := mailer.sent()
	require.Len(t, sends, 1)
	assert.Equal(t, "a@x.com", sends[0].To)
	assert.Equal(t, "Booking Request Received", sends[0].Subject)
}

func TestBookingService_CreateValidation(t *testing.T) {
	svc, _ := newBookingService()
	ctx := context.Background()

	in := validInput()
	in.EndDate = in.StartDate
	_, err := svc.Create(ctx, in)
	assert.ErrorIs(t, err, models.ErrInvalidDateRange)

	in = validInput()
	in.StartDate, in.EndDate = in.EndDate, in.StartDate
	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, models.ErrInvalidDateRange)

	in = validInput()
	in.Guests = 0
	_, err = svc.Create(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)
}

func TestBookingService_ApproveNotifiesOnce(t *testing.T) {
	svc, mailer := newBookingService()
	ctx := context.Background()

	booking, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)

	sends := mailer.sent()
	require.Len(t, sends, 2, "creation mail plus approval mail")
	assert.Contains(t, sends[1].Subject, "Approved")
	assert.Contains(t, sends[1].Body, "calendar.google.com")
}

func TestBookingService_RejectNotifies(t *testing.T) {
	svc, mailer := newBookingService()
	ctx := context.Background()

	booking, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)

	sends := mailer.sent()
	require.Len(t, sends, 2)
	assert.Equal(t, "Booking Request Update", sends[1].Subject)
}

func TestBookingService_IllegalTransitions(t *testing.T) {
	svc, _ := newBookingService()
	ctx := context.Background()

	booking, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.Approve(ctx, booking.ID)
	require.NoError(t, err)

	_, err = svc.Reject(ctx, booking.ID)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
	_, err = svc.Approve(ctx, booking.ID)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	got, err := svc.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)
}

func TestBookingService_ChangeDatesOnApprovedKeepsStatus(t *testing.T) {
	svc, mailer := newBookingService()
	ctx := context.Background()

	booking, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	_, err = svc.Approve(ctx, booking.ID)
	require.NoError(t, err)

	updated, err := svc.ChangeDates(ctx, booking.ID, date(2025, time.June, 2), date(2025, time.June, 9))
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, updated.Status)
	assert.Equal(t, date(2025, time.June, 2), updated.StartDate)
	assert.Equal(t, date(2025, time.June, 9), updated.EndDate)

	sends := mailer.sent()
	require.Len(t, sends, 3)
	assert.Equal(t, "Booking Dates Updated", sends[2].Subject)
}

func TestBookingService_GuestOwnershipBoundary(t *testing.T) {
	svc, _ := newBookingService()
	ctx := context.Background()

	booking, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.GuestChangeDates(ctx, "intruder@x.com", booking.ID, date(2025, time.June, 2), date(2025, time.June, 6))
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.GuestCancel(ctx, "intruder@x.com", booking.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// the owner may, case-insensitively
	_, err = svc.GuestChangeDates(ctx, "A@X.com", booking.ID, date(2025, time.June, 2), date(2025, time.June, 6))
	assert.NoError(t, err)

	require.NoError(t, svc.GuestCancel(ctx, "a@x.com", booking.ID))
	_, err = svc.GetByID(ctx, booking.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestBookingService_NotificationFailureDoesNotFailOperation(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewBookingService(repository.NewMemoryBookingRepository(), mailer, zap.NewNop())
	ctx := context.Background()

	booking, err := svc.Create(ctx, validInput())
	require.NoError(t, err, "booking creation must survive a dead mailer")

	approved, err := svc.Approve(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)
}

func TestBookingService_ListByEmailScopesView(t *testing.T) {
	svc, _ := newBookingService()
	ctx := context.Background()

	_, err := svc.Create(ctx, validInput())
	require.NoError(t, err)
	other := validInput()
	other.GuestEmail = "b@x.com"
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	mine, err := svc.ListByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a@x.com", mine[0].GuestEmail)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBookingService_DeleteUnknownID(t *testing.T) {
	svc, _ := newBookingService()
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), models.ErrNotFound)
}
