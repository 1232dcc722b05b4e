package routes

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-reservation-api/testutil"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type envelope struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Data       json.RawMessage        `json:"data"`
	Errors     map[string]string      `json:"errors"`
	Pagination map[string]interface{} `json:"pagination"`
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps := Dependencies{DB: testutil.NewTestDB(t)}
	router := gin.New()
	SetupRoutes(router, deps, NewServices(deps))
	return &apiClient{t: t, router: router}
}

func (a *apiClient) do(method, path, body string) (int, envelope) {
	a.t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		a.t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func (a *apiClient) mustCreate(path, body string) map[string]interface{} {
	a.t.Helper()
	code, env := a.do(http.MethodPost, path, body)
	if code != http.StatusCreated || !env.Success {
		a.t.Fatalf("POST %s = %d %+v", path, code, env)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		a.t.Fatalf("decode data: %v", err)
	}
	return data
}

func TestReservationScenario(t *testing.T) {
	api := newAPI(t)

	room := api.mustCreate("/api/rooms", `{"number":"101","type":"Double","nightly_price":100.00,"capacity":2,"available":true}`)
	if room["nightly_price"] != "100.00" || room["available"] != true {
		t.Errorf("room = %v", room)
	}
	client := api.mustCreate("/api/clients", `{"name":"Smith","surname":"John","email":"john@x.com"}`)
	if client["id"] != float64(1) || client["created_at"] == nil {
		t.Errorf("client = %v", client)
	}

	reservation := api.mustCreate("/api/reservations",
		`{"client_id":1,"room_id":1,"arrival_date":"2025-06-01","departure_date":"2025-06-05","party_size":2}`)
	if reservation["total_price"] != "400.00" {
		t.Errorf("total_price = %v, want 400.00", reservation["total_price"])
	}
	if reservation["status"] != "confirmed" {
		t.Errorf("status = %v, want confirmed", reservation["status"])
	}
	if reservation["arrival_date"] != "2025-06-01" || reservation["departure_date"] != "2025-06-05" {
		t.Errorf("dates = %v / %v", reservation["arrival_date"], reservation["departure_date"])
	}

	for i := 0; i < 2; i++ {
		code, env := api.do(http.MethodPut, "/api/reservations/1/cancel", "")
		if code != http.StatusOK || !env.Success {
			t.Fatalf("cancel #%d = %d %+v", i+1, code, env)
		}
		var data map[string]interface{}
		_ = json.Unmarshal(env.Data, &data)
		if data["status"] != "cancelled" {
			t.Errorf("cancel #%d status = %v", i+1, data["status"])
		}
	}

	code, env := api.do(http.MethodGet, "/api/stats", "")
	if code != http.StatusOK {
		t.Fatalf("stats = %d", code)
	}
	var stats struct {
		Clients int `json:"clients"`
		Rooms   struct {
			Total     int `json:"total"`
			Available int `json:"available"`
		} `json:"rooms"`
		Reservations struct {
			Cancelled int `json:"cancelled"`
		} `json:"reservations"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.Clients != 1 || stats.Rooms.Total != 1 || stats.Rooms.Available != 1 || stats.Reservations.Cancelled != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestErrorResponses(t *testing.T) {
	api := newAPI(t)
	api.mustCreate("/api/clients", `{"name":"Smith","surname":"John","email":"john@x.com"}`)
	api.mustCreate("/api/rooms", `{"number":"101","type":"Double","nightly_price":100,"capacity":2,"available":false}`)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantMsg    string
		wantField  string
	}{
		{"duplicate email", http.MethodPost, "/api/clients", `{"name":"A","surname":"B","email":"john@x.com"}`, http.StatusConflict, "A client with this email already exists", ""},
		{"duplicate room number", http.MethodPost, "/api/rooms", `{"number":"101","type":"Suite","nightly_price":300,"capacity":4}`, http.StatusConflict, "A room with this number already exists", ""},
		{"missing field", http.MethodPost, "/api/clients", `{"name":"A"}`, http.StatusBadRequest, "", "email"},
		{"not an object", http.MethodPost, "/api/rooms", `"room"`, http.StatusBadRequest, "", "_schema"},
		{"unknown field on update", http.MethodPut, "/api/clients/1", `{"id":9}`, http.StatusBadRequest, "", "id"},
		{"unavailable room", http.MethodPost, "/api/reservations", `{"client_id":1,"room_id":1,"arrival_date":"2025-06-01","departure_date":"2025-06-05","party_size":2}`, http.StatusBadRequest, "Room unavailable", ""},
		{"unknown client", http.MethodPost, "/api/reservations", `{"client_id":7,"room_id":1,"arrival_date":"2025-06-01","departure_date":"2025-06-05","party_size":2}`, http.StatusNotFound, "Client not found", ""},
		{"departure before arrival", http.MethodPost, "/api/reservations", `{"client_id":1,"room_id":1,"arrival_date":"2025-06-05","departure_date":"2025-06-01","party_size":2}`, http.StatusBadRequest, "", "departure_date"},
		{"missing reservation", http.MethodGet, "/api/reservations/42", "", http.StatusNotFound, "Reservation not found", ""},
		{"non numeric id", http.MethodGet, "/api/rooms/abc", "", http.StatusNotFound, "Resource not found", ""},
		{"unknown route", http.MethodGet, "/api/unknown", "", http.StatusNotFound, "Resource not found", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := api.do(tt.method, tt.path, tt.body)
			if code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%+v)", code, tt.wantStatus, env)
			}
			if env.Success {
				t.Error("success should be false")
			}
			if tt.wantMsg != "" && env.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", env.Message, tt.wantMsg)
			}
			if tt.wantField != "" && env.Errors[tt.wantField] == "" {
				t.Errorf("errors = %v, want key %q", env.Errors, tt.wantField)
			}
		})
	}
}

func TestListPagination(t *testing.T) {
	api := newAPI(t)
	for i := 1; i <= 5; i++ {
		api.mustCreate("/api/clients", fmt.Sprintf(`{"name":"C%d","surname":"S","email":"c%d@x.com"}`, i, i))
	}

	tests := []struct {
		query     string
		wantItems int
		wantPage  float64
		wantPer   float64
	}{
		{"?page=1&per_page=2", 2, 1, 2},
		{"?page=9&per_page=2", 0, 9, 2},
		{"?page=abc&per_page=-3", 5, 1, 10},
		{"?per_page=500", 5, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			code, env := api.do(http.MethodGet, "/api/clients"+tt.query, "")
			if code != http.StatusOK || !env.Success {
				t.Fatalf("status = %d", code)
			}
			var items []map[string]interface{}
			if err := json.Unmarshal(env.Data, &items); err != nil {
				t.Fatalf("data must be a list: %v", err)
			}
			if len(items) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(items), tt.wantItems)
			}
			p := env.Pagination
			if p["total"] != float64(5) || p["page"] != tt.wantPage || p["per_page"] != tt.wantPer {
				t.Errorf("pagination = %v", p)
			}
		})
	}
}

func TestRoomFiltersOverHTTP(t *testing.T) {
	api := newAPI(t)
	api.mustCreate("/api/rooms", `{"number":"101","type":"Simple","nightly_price":50,"capacity":1}`)
	api.mustCreate("/api/rooms", `{"number":"201","type":"Suite","nightly_price":300,"capacity":4}`)
	api.mustCreate("/api/rooms", `{"number":"202","type":"Suite","nightly_price":300,"capacity":4,"available":false}`)

	tests := []struct {
		query string
		want  []string
	}{
		{"?type=Suite", []string{"201", "202"}},
		{"?type=Suite&available=False", []string{"202"}},
		{"?available=true", []string{"101", "201"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, env := api.do(http.MethodGet, "/api/rooms"+tt.query, "")
			var rooms []struct {
				Number string `json:"number"`
				Type   string `json:"type"`
			}
			if err := json.Unmarshal(env.Data, &rooms); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(rooms) != len(tt.want) {
				t.Fatalf("rooms = %+v, want %v", rooms, tt.want)
			}
			for i, r := range rooms {
				if r.Number != tt.want[i] {
					t.Errorf("room[%d] = %s, want %s", i, r.Number, tt.want[i])
				}
			}
		})
	}
}

func TestDeleteFlows(t *testing.T) {
	api := newAPI(t)
	api.mustCreate("/api/clients", `{"name":"Smith","surname":"John","email":"john@x.com"}`)
	api.mustCreate("/api/rooms", `{"number":"101","type":"Double","nightly_price":100,"capacity":2}`)
	api.mustCreate("/api/reservations", `{"client_id":1,"room_id":1,"arrival_date":"2025-06-01","departure_date":"2025-06-05","party_size":2}`)

	if code, _ := api.do(http.MethodDelete, "/api/rooms/1", ""); code != http.StatusConflict {
		t.Errorf("delete referenced room = %d, want 409", code)
	}
	if code, env := api.do(http.MethodDelete, "/api/clients/1", ""); code != http.StatusOK || env.Message != "Client deleted" {
		t.Errorf("delete client = %d %+v", code, env)
	}
	if code, _ := api.do(http.MethodGet, "/api/reservations/1", ""); code != http.StatusNotFound {
		t.Errorf("reservation should be gone, got %d", code)
	}
	if code, _ := api.do(http.MethodDelete, "/api/rooms/1", ""); code != http.StatusOK {
		t.Errorf("delete free room = %d, want 200", code)
	}
}

func TestIndexAndHealth(t *testing.T) {
	api := newAPI(t)

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Errorf("/ping = %d %q", w.Code, w.Body.String())
	}

	code, env := api.do(http.MethodGet, "/health", "")
	if code != http.StatusOK || !env.Success {
		t.Errorf("/health = %d %+v", code, env)
	}

	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	var index map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &index); err != nil || index["version"] != "1.0" {
		t.Errorf("/ = %s", w.Body.String())
	}
}

func TestClientEmbedsReservations(t *testing.T) {
	api := newAPI(t)
	created := api.mustCreate("/api/clients", `{"name":"Smith","surname":"John","email":"john@x.com"}`)
	if list, ok := created["reservations"].([]interface{}); !ok || len(list) != 0 {
		t.Errorf("new client reservations = %v, want []", created["reservations"])
	}
	api.mustCreate("/api/rooms", `{"number":"101","type":"Double","nightly_price":100,"capacity":2}`)
	api.mustCreate("/api/reservations", `{"client_id":1,"room_id":1,"arrival_date":"2025-06-01","departure_date":"2025-06-05","party_size":2}`)
	api.mustCreate("/api/reservations", `{"client_id":1,"room_id":1,"arrival_date":"2025-07-01","departure_date":"2025-07-02","party_size":1}`)

	type nestedReservation struct {
		ID         int                    `json:"id"`
		TotalPrice string                 `json:"total_price"`
		Client     map[string]interface{} `json:"client"`
		Room       struct {
			Number string `json:"number"`
		} `json:"room"`
	}

	for _, path := range []string{"/api/clients/1", "/api/clients"} {
		var client struct {
			Reservations []nestedReservation `json:"reservations"`
		}
		code, env := api.do(http.MethodGet, path, "")
		if code != http.StatusOK {
			t.Fatalf("GET %s = %d", path, code)
		}
		data := []byte(env.Data)
		if path == "/api/clients" {
			var list []json.RawMessage
			if err := json.Unmarshal(env.Data, &list); err != nil || len(list) != 1 {
				t.Fatalf("GET %s data = %s", path, env.Data)
			}
			data = list[0]
		}
		if err := json.Unmarshal(data, &client); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		if len(client.Reservations) != 2 {
			t.Fatalf("GET %s reservations = %+v", path, client.Reservations)
		}
		first := client.Reservations[0]
		if first.ID != 1 || first.TotalPrice != "400.00" || first.Room.Number != "101" {
			t.Errorf("GET %s first reservation = %+v", path, first)
		}
		if first.Client != nil {
			t.Errorf("GET %s nested reservation repeats the client: %v", path, first.Client)
		}
	}
}

func TestComputedTotalOutOfRange(t *testing.T) {
	api := newAPI(t)
	api.mustCreate("/api/clients", `{"name":"Smith","surname":"John","email":"john@x.com"}`)
	api.mustCreate("/api/rooms", `{"number":"901","type":"Suite","nightly_price":99999999.99,"capacity":2}`)

	code, env := api.do(http.MethodPost, "/api/reservations",
		`{"client_id":1,"room_id":1,"arrival_date":"2025-06-01","departure_date":"2025-06-03","party_size":2}`)
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%+v)", code, env)
	}
	if env.Errors["total_price"] == "" {
		t.Errorf("errors = %v, want total_price", env.Errors)
	}
}
