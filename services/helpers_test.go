package services

import (
	"context"
	"sync"
	"testing"

	"hotel-reservation-api/dto"
	apperrors "hotel-reservation-api/errors"
	"hotel-reservation-api/models"
	"hotel-reservation-api/services/notification"
	"hotel-reservation-api/testutil"
	"hotel-reservation-api/validator"

	"gorm.io/gorm"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []notification.Event
}

func (n *recordingNotifier) Publish(event notification.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	db           *gorm.DB
	notifier     *recordingNotifier
	clients      *ClientService
	rooms        *RoomService
	reservations *ReservationService
	stats        *StatsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	notifier := &recordingNotifier{}
	opts := ServiceOptions{DB: db, Notifier: notifier}
	return &fixture{
		db:           db,
		notifier:     notifier,
		clients:      NewClientService(opts),
		rooms:        NewRoomService(opts),
		reservations: NewReservationService(opts),
		stats:        NewStatsService(opts),
	}
}

func (f *fixture) createClient(t *testing.T, body string) *models.Client {
	t.Helper()
	in, err := validator.DecodeClient([]byte(body), false)
	if err != nil {
		t.Fatalf("decode client: %v", err)
	}
	client, err := f.clients.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return client
}

func (f *fixture) createRoom(t *testing.T, body string) *models.Room {
	t.Helper()
	in, err := validator.DecodeRoom([]byte(body), false)
	if err != nil {
		t.Fatalf("decode room: %v", err)
	}
	room, err := f.rooms.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	return room
}

func (f *fixture) createReservation(t *testing.T, body string) (*models.Reservation, error) {
	t.Helper()
	in, err := validator.DecodeReservation([]byte(body), false)
	if err != nil {
		t.Fatalf("decode reservation: %v", err)
	}
	return f.reservations.Create(context.Background(), in)
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func assertCode(t *testing.T, err error, code apperrors.ErrorCode) {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		t.Fatalf("expected %s error, got %v", code, err)
	}
	if appErr.Code != code {
		t.Fatalf("code = %s, want %s (%v)", appErr.Code, code, err)
	}
}

func listQuery(page, perPage int) dto.ListQuery {
	return dto.ListQuery{Page: page, PerPage: perPage}
}
