package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devansh2311/deskmate/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Mock MeetingRoomRepository ---

type mockRoomRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*models.MeetingRoom, error)
	saved      []*models.MeetingRoom
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id uint) (*models.MeetingRoom, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRoomRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.MeetingRoom, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRoomRepo) FindByNumber(ctx context.Context, roomNumber string) (*models.MeetingRoom, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRoomRepo) FindAll(ctx context.Context) ([]models.MeetingRoom, error) { return nil, nil }
func (m *mockRoomRepo) FindByStatus(ctx context.Context, status models.ResourceStatus) ([]models.MeetingRoom, error) {
	return nil, nil
}
func (m *mockRoomRepo) SearchByName(ctx context.Context, name string) ([]models.MeetingRoom, error) {
	return nil, nil
}
func (m *mockRoomRepo) Create(ctx context.Context, room *models.MeetingRoom) error { return nil }
func (m *mockRoomRepo) Save(ctx context.Context, tx *gorm.DB, room *models.MeetingRoom) error {
	m.saved = append(m.saved, room)
	return nil
}
func (m *mockRoomRepo) Delete(ctx context.Context, id uint) error { return nil }

// --- Mock MeetingRoomBookingRepository ---

type mockRoomBookingRepo struct {
	findByIDFn        func(ctx context.Context, id uint) (*models.MeetingRoomBooking, error)
	findOverlappingFn func(ctx context.Context, roomID uint, date, startTime, endTime string) ([]models.MeetingRoomBooking, error)
	findByRoomDateFn  func(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error)
	created           []*models.MeetingRoomBooking
	deleted           []uint
	emailSentMarked   []uint
}

func (m *mockRoomBookingRepo) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}
func (m *mockRoomBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.MeetingRoomBooking) error {
	booking.ID = uint(len(m.created) + 1)
	m.created = append(m.created, booking)
	return nil
}
func (m *mockRoomBookingRepo) FindByID(ctx context.Context, id uint) (*models.MeetingRoomBooking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockRoomBookingRepo) FindByRoom(ctx context.Context, roomID uint) ([]models.MeetingRoomBooking, error) {
	return nil, nil
}
func (m *mockRoomBookingRepo) FindByRoomAndDate(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error) {
	if m.findByRoomDateFn != nil {
		return m.findByRoomDateFn(ctx, roomID, date)
	}
	return nil, nil
}
func (m *mockRoomBookingRepo) FindOverlapping(ctx context.Context, tx *gorm.DB, roomID uint, date, startTime, endTime string) ([]models.MeetingRoomBooking, error) {
	if m.findOverlappingFn != nil {
		return m.findOverlappingFn(ctx, roomID, date, startTime, endTime)
	}
	return nil, nil
}
func (m *mockRoomBookingRepo) FindByDate(ctx context.Context, date string) ([]models.MeetingRoomBooking, error) {
	return nil, nil
}
func (m *mockRoomBookingRepo) FindByEmail(ctx context.Context, email string) ([]models.MeetingRoomBooking, error) {
	return nil, nil
}
func (m *mockRoomBookingRepo) MarkEmailSent(ctx context.Context, id uint) error {
	m.emailSentMarked = append(m.emailSentMarked, id)
	return nil
}
func (m *mockRoomBookingRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

// --- Tests ---

func sampleRoom() *models.MeetingRoom {
	return &models.MeetingRoom{
		ID:         1,
		RoomNumber: "A101",
		RoomName:   "Executive Suite",
		Capacity:   12,
		Status:     models.StatusVacant,
	}
}

func sampleRoomBooking() *models.MeetingRoomBooking {
	return &models.MeetingRoomBooking{
		MeetingRoomID: 1,
		BookerName:    "Alice Kumar",
		Email:         "alice@x.com",
		BookingDate:   "2024-06-10",
		StartTime:     "10:00",
		EndTime:       "11:00",
	}
}

func newRoomService(roomRepo *mockRoomRepo, bookingRepo *mockRoomBookingRepo, n *mockNotifier) *meetingRoomService {
	return NewMeetingRoomService(roomRepo, bookingRepo, n, nil).(*meetingRoomService)
}

func TestBookMeetingRoom_Success(t *testing.T) {
	roomRepo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.MeetingRoom, error) {
			return sampleRoom(), nil
		},
	}
	bookingRepo := &mockRoomBookingRepo{}
	n := &mockNotifier{}

	svc := newRoomService(roomRepo, bookingRepo, n)
	booking, err := svc.BookMeetingRoom(context.Background(), sampleRoomBooking())

	require.NoError(t, err)
	require.Len(t, bookingRepo.created, 1)
	assert.Equal(t, 1, n.roomSent)
	assert.True(t, booking.EmailSent)
	// room status is derived, never written by the booking path
	assert.Empty(t, roomRepo.saved)
}

func TestBookMeetingRoom_RoomNotFound(t *testing.T) {
	roomRepo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.MeetingRoom, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	bookingRepo := &mockRoomBookingRepo{}

	svc := newRoomService(roomRepo, bookingRepo, &mockNotifier{})
	booking, err := svc.BookMeetingRoom(context.Background(), sampleRoomBooking())

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.Nil(t, booking)
	assert.Empty(t, bookingRepo.created)
}

func TestBookMeetingRoom_Conflict(t *testing.T) {
	roomRepo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.MeetingRoom, error) {
			return sampleRoom(), nil
		},
	}
	bookingRepo := &mockRoomBookingRepo{
		findOverlappingFn: func(ctx context.Context, roomID uint, date, startTime, endTime string) ([]models.MeetingRoomBooking, error) {
			return []models.MeetingRoomBooking{{ID: 5}}, nil
		},
	}
	n := &mockNotifier{}

	svc := newRoomService(roomRepo, bookingRepo, n)
	booking, err := svc.BookMeetingRoom(context.Background(), sampleRoomBooking())

	assert.ErrorIs(t, err, ErrRoomAlreadyBooked)
	assert.Nil(t, booking)
	assert.Empty(t, bookingRepo.created)
	assert.Equal(t, 0, n.roomSent)
}

func TestBookMeetingRoom_EmailFailureDoesNotFailBooking(t *testing.T) {
	roomRepo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.MeetingRoom, error) {
			return sampleRoom(), nil
		},
	}
	bookingRepo := &mockRoomBookingRepo{}
	n := &mockNotifier{roomErr: errors.New("smtp timeout")}

	svc := newRoomService(roomRepo, bookingRepo, n)
	booking, err := svc.BookMeetingRoom(context.Background(), sampleRoomBooking())

	require.NoError(t, err)
	require.Len(t, bookingRepo.created, 1)
	assert.False(t, booking.EmailSent)
	assert.Empty(t, bookingRepo.emailSentMarked)
}

func TestCancelRoomBooking_DeletesWithoutTouchingRoom(t *testing.T) {
	roomRepo := &mockRoomRepo{}
	bookingRepo := &mockRoomBookingRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.MeetingRoomBooking, error) {
			b := sampleRoomBooking()
			b.ID = id
			return b, nil
		},
	}

	svc := newRoomService(roomRepo, bookingRepo, &mockNotifier{})
	err := svc.CancelBooking(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, []uint{42}, bookingRepo.deleted)
	assert.Empty(t, roomRepo.saved)
}

func TestCancelRoomBooking_NotFound(t *testing.T) {
	bookingRepo := &mockRoomBookingRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.MeetingRoomBooking, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := newRoomService(&mockRoomRepo{}, bookingRepo, &mockNotifier{})
	err := svc.CancelBooking(context.Background(), 999)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, bookingRepo.deleted)
}

func TestIsRoomAvailable(t *testing.T) {
	roomRepo := &mockRoomRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.MeetingRoom, error) {
			if id == 1 {
				return sampleRoom(), nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	bookingRepo := &mockRoomBookingRepo{
		findOverlappingFn: func(ctx context.Context, roomID uint, date, startTime, endTime string) ([]models.MeetingRoomBooking, error) {
			// existing booking 10:00-11:00; closed-interval overlap test
			if startTime <= "11:00" && endTime >= "10:00" {
				return []models.MeetingRoomBooking{{ID: 1}}, nil
			}
			return nil, nil
		},
	}

	svc := newRoomService(roomRepo, bookingRepo, &mockNotifier{})
	ctx := context.Background()

	assert.False(t, svc.IsRoomAvailable(ctx, 1, "2024-06-10", "10:30", "10:45"), "contained overlap")
	assert.False(t, svc.IsRoomAvailable(ctx, 1, "2024-06-10", "11:00", "12:00"), "touching start")
	assert.True(t, svc.IsRoomAvailable(ctx, 1, "2024-06-10", "12:00", "13:00"), "disjoint")
	assert.False(t, svc.IsRoomAvailable(ctx, 99, "2024-06-10", "12:00", "13:00"), "unknown room")
}

// --- Status deriver ---

// Fixed clock: 2024-06-10 09:30.
func fixedNow() time.Time {
	return time.Date(2024, 6, 10, 9, 30, 0, 0, time.Local)
}

func TestRoomStatusForDate_PastDateIsVacant(t *testing.T) {
	bookingRepo := &mockRoomBookingRepo{
		findByRoomDateFn: func(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error) {
			t.Fatal("past dates must not hit the store")
			return nil, nil
		},
	}
	svc := newRoomService(&mockRoomRepo{}, bookingRepo, &mockNotifier{})
	svc.now = fixedNow

	status := svc.RoomStatusForDate(context.Background(), sampleRoom(), "2024-06-09")
	assert.Equal(t, models.StatusVacant, status)
}

func TestRoomStatusForDate_TodayElapsedBookingIsVacant(t *testing.T) {
	bookingRepo := &mockRoomBookingRepo{
		findByRoomDateFn: func(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error) {
			return []models.MeetingRoomBooking{
				{StartTime: "08:00", EndTime: "09:00"},
			}, nil
		},
	}
	svc := newRoomService(&mockRoomRepo{}, bookingRepo, &mockNotifier{})
	svc.now = fixedNow

	status := svc.RoomStatusForDate(context.Background(), sampleRoom(), "2024-06-10")
	assert.Equal(t, models.StatusVacant, status)
}

func TestRoomStatusForDate_TodayOngoingBookingIsBooked(t *testing.T) {
	bookingRepo := &mockRoomBookingRepo{
		findByRoomDateFn: func(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error) {
			return []models.MeetingRoomBooking{
				{StartTime: "09:00", EndTime: "10:00"},
			}, nil
		},
	}
	svc := newRoomService(&mockRoomRepo{}, bookingRepo, &mockNotifier{})
	svc.now = fixedNow

	status := svc.RoomStatusForDate(context.Background(), sampleRoom(), "2024-06-10")
	assert.Equal(t, models.StatusBooked, status)
}

func TestRoomStatusForDate_FutureDate(t *testing.T) {
	bookingRepo := &mockRoomBookingRepo{
		findByRoomDateFn: func(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error) {
			if date == "2024-06-12" {
				return []models.MeetingRoomBooking{{StartTime: "08:00", EndTime: "09:00"}}, nil
			}
			return nil, nil
		},
	}
	svc := newRoomService(&mockRoomRepo{}, bookingRepo, &mockNotifier{})
	svc.now = fixedNow

	assert.Equal(t, models.StatusBooked, svc.RoomStatusForDate(context.Background(), sampleRoom(), "2024-06-12"))
	assert.Equal(t, models.StatusVacant, svc.RoomStatusForDate(context.Background(), sampleRoom(), "2024-06-13"))
}

func TestRoomStatusForDate_ErrorDefaultsToVacant(t *testing.T) {
	bookingRepo := &mockRoomBookingRepo{
		findByRoomDateFn: func(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newRoomService(&mockRoomRepo{}, bookingRepo, &mockNotifier{})
	svc.now = fixedNow

	status := svc.RoomStatusForDate(context.Background(), sampleRoom(), "2024-06-11")
	assert.Equal(t, models.StatusVacant, status)
}

func TestRoomStatusForDateTime_PastMinuteIsVacant(t *testing.T) {
	bookingRepo := &mockRoomBookingRepo{
		findByRoomDateFn: func(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error) {
			// spans the queried instant, but the instant is already in the past
			return []models.MeetingRoomBooking{{StartTime: "09:00", EndTime: "10:00"}}, nil
		},
	}
	svc := newRoomService(&mockRoomRepo{}, bookingRepo, &mockNotifier{})
	svc.now = fixedNow

	status := svc.RoomStatusForDateTime(context.Background(), sampleRoom(), "2024-06-10", "09:29")
	assert.Equal(t, models.StatusVacant, status)
}

func TestRoomStatusForDateTime_HalfOpenInterval(t *testing.T) {
	bookingRepo := &mockRoomBookingRepo{
		findByRoomDateFn: func(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error) {
			return []models.MeetingRoomBooking{{StartTime: "10:00", EndTime: "11:00"}}, nil
		},
	}
	svc := newRoomService(&mockRoomRepo{}, bookingRepo, &mockNotifier{})
	svc.now = fixedNow

	ctx := context.Background()
	room := sampleRoom()
	assert.Equal(t, models.StatusBooked, svc.RoomStatusForDateTime(ctx, room, "2024-06-10", "10:00"), "start minute is booked")
	assert.Equal(t, models.StatusBooked, svc.RoomStatusForDateTime(ctx, room, "2024-06-10", "10:30"), "middle is booked")
	assert.Equal(t, models.StatusVacant, svc.RoomStatusForDateTime(ctx, room, "2024-06-10", "11:00"), "end minute is free")
}

func TestRoomStatusForDateTime_ErrorDefaultsToVacant(t *testing.T) {
	bookingRepo := &mockRoomBookingRepo{
		findByRoomDateFn: func(ctx context.Context, roomID uint, date string) ([]models.MeetingRoomBooking, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newRoomService(&mockRoomRepo{}, bookingRepo, &mockNotifier{})
	svc.now = fixedNow

	status := svc.RoomStatusForDateTime(context.Background(), sampleRoom(), "2024-06-11", "10:00")
	assert.Equal(t, models.StatusVacant, status)
}
