package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"hotel-reservation-api/constants"
	"hotel-reservation-api/dto"
	apperrors "hotel-reservation-api/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Field messages
const (
	MsgInvalidInputType = "Invalid input type."
	MsgUnknownField     = "Unknown field."
	MsgRequired         = "Missing data for required field."
	MsgNull             = "Field may not be null."
	MsgNotString        = "Not a valid string."
	MsgNotInteger       = "Not a valid integer."
	MsgNotBoolean       = "Not a valid boolean."
	MsgNotNumber        = "Not a valid number."
	MsgNotDate          = "Not a valid date."
	MsgDepartureOrder   = "Departure date must be after arrival date."
)

// SchemaKey carries errors that concern the payload as a whole
const SchemaKey = "_schema"

var validate = newValidate()

func newValidate() *playground.Validate {
	v := playground.New()
	v.RegisterAlias("room_type", "oneof="+strings.Join(constants.RoomTypes, " "))
	v.RegisterAlias("reservation_status", "oneof="+strings.Join(constants.ReservationStatuses, " "))
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// DecodeClient validates a client payload. In partial mode required fields may be absent.
func DecodeClient(body []byte, partial bool) (*dto.ClientInput, error) {
	var in dto.ClientInput
	fields := []field{
		stringField("name", true, &in.Name),
		stringField("surname", true, &in.Surname),
		stringField("email", true, &in.Email),
		stringField("phone", false, &in.Phone),
	}
	if err := decode(body, partial, fields, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// DecodeRoom validates a room payload. In partial mode required fields may be absent.
func DecodeRoom(body []byte, partial bool) (*dto.RoomInput, error) {
	var in dto.RoomInput
	fields := []field{
		stringField("number", true, &in.Number),
		stringField("type", true, &in.Type),
		decimalField("nightly_price", true, &in.NightlyPrice),
		intField("capacity", true, &in.Capacity),
		boolField("available", false, &in.Available),
	}
	if err := decode(body, partial, fields, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// DecodeReservation validates a reservation payload. In partial mode required fields may be absent.
func DecodeReservation(body []byte, partial bool) (*dto.ReservationInput, error) {
	var in dto.ReservationInput
	fields := []field{
		intField("client_id", true, &in.ClientID),
		intField("room_id", true, &in.RoomID),
		dateField("arrival_date", true, &in.ArrivalDate),
		dateField("departure_date", true, &in.DepartureDate),
		intField("party_size", true, &in.PartySize),
		decimalField("total_price", false, &in.TotalPrice),
		stringField("status", false, &in.Status),
	}
	if err := decode(body, partial, fields, &in); err != nil {
		return nil, err
	}
	if in.ArrivalDate != nil && in.DepartureDate != nil {
		if err := CheckStay(*in.ArrivalDate, *in.DepartureDate); err != nil {
			return nil, err
		}
	}
	return &in, nil
}

// CheckStay rejects a stay whose departure is not strictly after its arrival
func CheckStay(arrival, departure time.Time) error {
	if !departure.After(arrival) {
		return apperrors.NewValidationError(map[string]string{
			"departure_date": MsgDepartureOrder,
		})
	}
	return nil
}

func decode(body []byte, partial bool, fields []field, target interface{}) error {
	payload, ok := parseObject(body)
	if !ok {
		return apperrors.NewValidationError(map[string]string{SchemaKey: MsgInvalidInputType})
	}

	errs := make(map[string]string)
	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.name] = struct{}{}
		raw, present := payload[f.name]
		if !present {
			if f.required && !partial {
				errs[f.name] = MsgRequired
			}
			continue
		}
		if isNull(raw) {
			errs[f.name] = MsgNull
			continue
		}
		if msg := f.decode(raw); msg != "" {
			errs[f.name] = msg
		}
	}

	for key := range payload {
		if _, ok := known[key]; !ok {
			errs[key] = MsgUnknownField
		}
	}

	if err := validate.Struct(target); err != nil {
		var verrs playground.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			if _, exists := errs[fe.Field()]; !exists {
				errs[fe.Field()] = ruleMessage(fe)
			}
		}
	}

	if len(errs) > 0 {
		return apperrors.NewValidationError(errs)
	}
	return nil
}

func ruleMessage(fe playground.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.ActualTag() {
	case "min":
		if isText {
			return fmt.Sprintf("Shorter than minimum length %s.", fe.Param())
		}
		return fmt.Sprintf("Must be greater than or equal to %s.", fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("Longer than maximum length %s.", fe.Param())
		}
		return fmt.Sprintf("Must be less than or equal to %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s.", fe.Param())
	case "lt":
		return fmt.Sprintf("Must be less than %s.", fe.Param())
	case "email":
		return "Not a valid email address."
	case "oneof":
		choices := strings.Fields(fe.Param())
		sort.Strings(choices)
		return fmt.Sprintf("Must be one of: %s.", strings.Join(choices, ", "))
	default:
		return fmt.Sprintf("Failed validation on %s.", fe.Tag())
	}
}
