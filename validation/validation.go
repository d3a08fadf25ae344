package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError reports one offending input field. Validation never aborts on
// the first problem; every bad field in a payload gets its own entry.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Signup is the validated payload for account creation.
type Signup struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Gender   string `json:"gender" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signin is the validated payload for login.
type Signin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// DonationCreate is the validated payload for recording a food donation.
type DonationCreate struct {
	FoodName       string    `json:"foodName" validate:"required"`
	FoodType       string    `json:"foodType" validate:"required"`
	FoodImage      string    `json:"foodImage"`
	Description    string    `json:"description"`
	Quantity       float64   `json:"quantity" validate:"gt=0"`
	ExpiryDate     time.Time `json:"expiryDate" validate:"required"`
	DonatedDate    time.Time `json:"donatedDate"`
	PickupLocation string    `json:"pickupLocation" validate:"required"`
	PickupTime     string    `json:"pickupTime" validate:"required"`
	PhoneNo        string    `json:"phoneNo" validate:"required"`
	Note           string    `json:"note"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the json field names clients actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Date layouts accepted on the wire, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeEmail trims and lowercases an email so uniqueness and lookup are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// fields walks a raw decoded JSON object, collecting one error per offending
// field. Unknown keys are ignored.
type fields struct {
	raw  map[string]any
	errs []FieldError
	seen map[string]bool
}

func newFields(raw map[string]any) *fields {
	return &fields{raw: raw, seen: map[string]bool{}}
}

func (f *fields) fail(name, msg string) {
	f.errs = append(f.errs, FieldError{Field: name, Message: msg})
	f.seen[name] = true
}

func (f *fields) requiredString(name string) string {
	v, ok := f.raw[name]
	if !ok || v == nil {
		f.fail(name, "is required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail(name, "must be a string")
		return ""
	}
	return s
}

func (f *fields) optionalString(name string) string {
	v, ok := f.raw[name]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		f.fail(name, "must be a string")
		return ""
	}
	return s
}

func (f *fields) requiredNumber(name string) float64 {
	v, ok := f.raw[name]
	if !ok || v == nil {
		f.fail(name, "is required")
		return 0
	}
	n, ok := v.(float64)
	if !ok {
		f.fail(name, "must be a number")
		return 0
	}
	return n
}

// requiredDate coerces a raw date-like value into a time.Time before any
// rule validation runs; a string that does not parse is a field error.
func (f *fields) requiredDate(name string) time.Time {
	v, ok := f.raw[name]
	if !ok || v == nil {
		f.fail(name, "is required")
		return time.Time{}
	}
	s, ok := v.(string)
	if !ok {
		f.fail(name, "must be a date string")
		return time.Time{}
	}
	t, ok := parseDate(s)
	if !ok {
		f.fail(name, "must be a valid date")
	}
	return t
}

func (f *fields) optionalDate(name string, def time.Time) time.Time {
	v, ok := f.raw[name]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		f.fail(name, "must be a date string")
		return def
	}
	t, ok := parseDate(s)
	if !ok {
		f.fail(name, "must be a valid date")
		return def
	}
	return t
}

// finish runs the struct rules and merges their errors with the coercion
// errors, skipping fields that already failed extraction.
func (f *fields) finish(rec any) []FieldError {
	if err := validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if f.seen[fe.Field()] {
					continue
				}
				f.fail(fe.Field(), messageFor(fe))
			}
		}
	}
	return f.errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}

// ParseSignup validates a raw signup payload.
func ParseSignup(raw map[string]any) (Signup, []FieldError) {
	f := newFields(raw)
	rec := Signup{
		Name:     f.requiredString("name"),
		Email:    NormalizeEmail(f.requiredString("email")),
		Gender:   f.requiredString("gender"),
		Contact:  f.requiredString("contact"),
		Address:  f.requiredString("address"),
		Password: f.requiredString("password"),
	}
	return rec, f.finish(rec)
}

// ParseSignin validates a raw signin payload.
func ParseSignin(raw map[string]any) (Signin, []FieldError) {
	f := newFields(raw)
	rec := Signin{
		Email:    NormalizeEmail(f.requiredString("email")),
		Password: f.requiredString("password"),
	}
	return rec, f.finish(rec)
}

// ParseDonationCreate validates a raw donation payload. donatedDate defaults
// to now when the caller omits it.
func ParseDonationCreate(raw map[string]any, now time.Time) (DonationCreate, []FieldError) {
	f := newFields(raw)
	rec := DonationCreate{
		FoodName:       f.requiredString("foodName"),
		FoodType:       f.requiredString("foodType"),
		FoodImage:      f.optionalString("foodImage"),
		Description:    f.optionalString("description"),
		Quantity:       f.requiredNumber("quantity"),
		ExpiryDate:     f.requiredDate("expiryDate"),
		DonatedDate:    f.optionalDate("donatedDate", now),
		PickupLocation: f.requiredString("pickupLocation"),
		PickupTime:     f.requiredString("pickupTime"),
		PhoneNo:        f.requiredString("phoneNo"),
		Note:           f.optionalString("note"),
	}
	return rec, f.finish(rec)
}
