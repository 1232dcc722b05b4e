package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "hotel-reservation-api/errors"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page, perPage int
		total         int64
		wantPages     int
	}{
		{1, 2, 5, 3},
		{1, 10, 0, 0},
		{2, 10, 10, 1},
		{1, 10, 11, 2},
	}
	for _, tt := range tests {
		if got := NewPagination(tt.page, tt.perPage, tt.total); got.Pages != tt.wantPages {
			t.Errorf("NewPagination(%d, %d, %d).Pages = %d, want %d", tt.page, tt.perPage, tt.total, got.Pages, tt.wantPages)
		}
	}
}

func TestErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", apperrors.NewValidationError(map[string]string{"name": "Missing data for required field."}), http.StatusBadRequest, ""},
		{"not found", apperrors.NotFound(apperrors.ErrRoomNotFound), http.StatusNotFound, "Room not found"},
		{"conflict", apperrors.Conflict(apperrors.ErrRoomNumberTaken), http.StatusConflict, "A room with this number already exists"},
		{"domain rule", apperrors.DomainRule(apperrors.ErrRoomNotAvailable), http.StatusBadRequest, "Room unavailable"},
		{"database", apperrors.Database(errors.New("pq: connection refused")), http.StatusInternalServerError, "Internal server error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			Error(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body Response
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success {
				t.Error("success should be false")
			}
			if body.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMsg)
			}
		})
	}
}

func TestListResponseKeepsEmptyData(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	SuccessWithPagination(c, []string{}, NewPagination(3, 10, 4))

	want := `{"success":true,"data":[],"pagination":{"page":3,"per_page":10,"total":4,"pages":1}}`
	if w.Body.String() != want {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}
}
