package validator

import (
	"testing"
	"time"

	apperrors "hotel-reservation-api/errors"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	return appErr.Fields
}

func TestDecodeClient(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		partial bool
		want    map[string]string
	}{
		{
			name: "valid",
			body: `{"name":"Smith","surname":"John","email":"john@x.com","phone":"0600000000"}`,
		},
		{
			name: "missing required",
			body: `{"name":"Smith"}`,
			want: map[string]string{"surname": MsgRequired, "email": MsgRequired},
		},
		{
			name:    "partial allows missing",
			body:    `{"phone":"0600"}`,
			partial: true,
		},
		{
			name: "invalid email",
			body: `{"name":"Smith","surname":"John","email":"not-an-email"}`,
			want: map[string]string{"email": "Not a valid email address."},
		},
		{
			name: "empty name",
			body: `{"name":"","surname":"John","email":"john@x.com"}`,
			want: map[string]string{"name": "Shorter than minimum length 1."},
		},
		{
			name: "null field",
			body: `{"name":null,"surname":"John","email":"john@x.com"}`,
			want: map[string]string{"name": MsgNull},
		},
		{
			name:    "immutable fields are unknown",
			body:    `{"id":4,"created_at":"2020-01-01"}`,
			partial: true,
			want:    map[string]string{"id": MsgUnknownField, "created_at": MsgUnknownField},
		},
		{
			name: "wrong type",
			body: `{"name":12,"surname":"John","email":"john@x.com"}`,
			want: map[string]string{"name": MsgNotString},
		},
		{
			name: "not an object",
			body: `["a"]`,
			want: map[string]string{SchemaKey: MsgInvalidInputType},
		},
		{
			name: "empty body",
			body: ``,
			want: map[string]string{SchemaKey: MsgInvalidInputType},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := DecodeClient([]byte(tt.body), tt.partial)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("DecodeClient() error = %v", err)
				}
				if in == nil {
					t.Fatal("expected input")
				}
				return
			}
			got := fieldErrors(t, err)
			if len(got) != len(tt.want) {
				t.Fatalf("errors = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("errors[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestDecodeClientValues(t *testing.T) {
	in, err := DecodeClient([]byte(`{"name":"Smith","surname":"John","email":"john@x.com"}`), false)
	if err != nil {
		t.Fatalf("DecodeClient() error = %v", err)
	}
	if *in.Name != "Smith" || *in.Surname != "John" || *in.Email != "john@x.com" {
		t.Errorf("unexpected input: %+v", in)
	}
	if in.Phone != nil {
		t.Errorf("Phone = %v, want nil", *in.Phone)
	}
}

func TestDecodeRoom(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{
			name: "valid",
			body: `{"number":"101","type":"Double","nightly_price":100.00,"capacity":2,"available":true}`,
		},
		{
			name: "price as string",
			body: `{"number":"102","type":"Suite","nightly_price":"250.50","capacity":4}`,
		},
		{
			name: "unknown type",
			body: `{"number":"101","type":"Penthouse","nightly_price":100,"capacity":2}`,
			want: map[string]string{"type": "Must be one of: Double, Simple, Suite."},
		},
		{
			name: "non positive price and capacity",
			body: `{"number":"101","type":"Simple","nightly_price":0,"capacity":0}`,
			want: map[string]string{
				"nightly_price": "Must be greater than 0.",
				"capacity":      "Must be greater than or equal to 1.",
			},
		},
		{
			name: "number too long",
			body: `{"number":"12345678901","type":"Simple","nightly_price":10,"capacity":1}`,
			want: map[string]string{"number": "Longer than maximum length 10."},
		},
		{
			name: "bad types",
			body: `{"number":"1","type":"Simple","nightly_price":"abc","capacity":1.5,"available":"maybe"}`,
			want: map[string]string{
				"nightly_price": MsgNotNumber,
				"capacity":      MsgNotInteger,
				"available":     MsgNotBoolean,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRoom([]byte(tt.body), false)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("DecodeRoom() error = %v", err)
				}
				return
			}
			got := fieldErrors(t, err)
			if len(got) != len(tt.want) {
				t.Fatalf("errors = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("errors[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestDecodeRoomPriceKeepsCents(t *testing.T) {
	in, err := DecodeRoom([]byte(`{"number":"101","type":"Double","nightly_price":"99.999","capacity":2}`), false)
	if err != nil {
		t.Fatalf("DecodeRoom() error = %v", err)
	}
	if got := in.NightlyPrice.StringFixed(2); got != "100.00" {
		t.Errorf("nightly_price = %s, want 100.00", got)
	}
	if in.Available != nil {
		t.Error("available should stay unset")
	}
}

func TestDecodeReservation(t *testing.T) {
	in, err := DecodeReservation([]byte(`{"client_id":1,"room_id":1,"arrival_date":"2025-06-01","departure_date":"2025-06-05","party_size":2}`), false)
	if err != nil {
		t.Fatalf("DecodeReservation() error = %v", err)
	}
	wantArrival := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !in.ArrivalDate.Equal(wantArrival) {
		t.Errorf("arrival = %v, want %v", in.ArrivalDate, wantArrival)
	}
	if in.TotalPrice != nil || in.Status != nil {
		t.Error("optional fields should stay unset")
	}
}

func TestDecodeReservationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		partial bool
		want    map[string]string
	}{
		{
			name: "departure before arrival",
			body: `{"client_id":1,"room_id":1,"arrival_date":"2025-06-05","departure_date":"2025-06-01","party_size":2}`,
			want: map[string]string{"departure_date": MsgDepartureOrder},
		},
		{
			name: "same day",
			body: `{"client_id":1,"room_id":1,"arrival_date":"2025-06-05","departure_date":"2025-06-05","party_size":2}`,
			want: map[string]string{"departure_date": MsgDepartureOrder},
		},
		{
			name: "bad date and status",
			body: `{"client_id":1,"room_id":1,"arrival_date":"06/01/2025","departure_date":"2025-06-05","party_size":2,"status":"pending"}`,
			want: map[string]string{
				"arrival_date": MsgNotDate,
				"status":       "Must be one of: cancelled, completed, confirmed.",
			},
		},
		{
			name: "non positive ids",
			body: `{"client_id":0,"room_id":-1,"arrival_date":"2025-06-01","departure_date":"2025-06-05","party_size":0}`,
			want: map[string]string{
				"client_id":  "Must be greater than 0.",
				"room_id":    "Must be greater than 0.",
				"party_size": "Must be greater than or equal to 1.",
			},
		},
		{
			name:    "partial negative price",
			body:    `{"total_price":-5}`,
			partial: true,
			want:    map[string]string{"total_price": "Must be greater than or equal to 0."},
		},
		{
			name:    "partial unknown",
			body:    `{"created_at":"2025-01-01"}`,
			partial: true,
			want:    map[string]string{"created_at": MsgUnknownField},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeReservation([]byte(tt.body), tt.partial)
			got := fieldErrors(t, err)
			if len(got) != len(tt.want) {
				t.Fatalf("errors = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("errors[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestCheckStay(t *testing.T) {
	arrival := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if err := CheckStay(arrival, arrival.AddDate(0, 0, 1)); err != nil {
		t.Errorf("CheckStay() one night error = %v", err)
	}
	if err := CheckStay(arrival, arrival); err == nil {
		t.Error("CheckStay() zero nights should fail")
	}
}
