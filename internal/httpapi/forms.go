package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"fyyur/shared/go/models"
)

// showTimeLayouts are the start_time formats accepted from the show form.
var showTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// venueForm carries the fields of the new and edit venue forms.
type venueForm struct {
	Name               string   `schema:"name" validate:"required"`
	City               string   `schema:"city" validate:"required"`
	State              string   `schema:"state" validate:"required"`
	Address            string   `schema:"address" validate:"required"`
	Phone              string   `schema:"phone"`
	ImageLink          string   `schema:"image_link"`
	Genres             []string `schema:"genres" validate:"required"`
	FacebookLink       string   `schema:"facebook_link"`
	Website            string   `schema:"website_link"`
	SeekingTalent      bool     `schema:"seeking_talent"`
	SeekingDescription string   `schema:"seeking_description"`
}

func (f venueForm) venue() models.Venue {
	return models.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Genres:             f.Genres,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

func venueFormFrom(v models.Venue) venueForm {
	return venueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             v.Genres,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// artistForm carries the fields of the new and edit artist forms.
type artistForm struct {
	Name               string   `schema:"name" validate:"required"`
	City               string   `schema:"city" validate:"required"`
	State              string   `schema:"state" validate:"required"`
	Phone              string   `schema:"phone"`
	ImageLink          string   `schema:"image_link"`
	Genres             []string `schema:"genres" validate:"required"`
	FacebookLink       string   `schema:"facebook_link"`
	Website            string   `schema:"website_link"`
	SeekingVenue       bool     `schema:"seeking_venue"`
	SeekingDescription string   `schema:"seeking_description"`
}

func (f artistForm) artist() models.Artist {
	return models.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		ImageLink:          f.ImageLink,
		Genres:             f.Genres,
		FacebookLink:       f.FacebookLink,
		Website:            f.Website,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

func artistFormFrom(a models.Artist) artistForm {
	return artistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             a.Genres,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// showForm carries the fields of the new show form.
type showForm struct {
	ArtistID  int64  `schema:"artist_id" validate:"required"`
	VenueID   int64  `schema:"venue_id" validate:"required"`
	StartTime string `schema:"start_time" validate:"required"`
}

func (f showForm) show() (models.Show, error) {
	startsAt, err := parseShowTime(f.StartTime)
	if err != nil {
		return models.Show{}, err
	}
	return models.Show{ArtistID: f.ArtistID, VenueID: f.VenueID, StartsAt: startsAt}, nil
}

func parseShowTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range showTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", raw)
}

// fieldErrors maps form field names to a message shown next to the field.
type fieldErrors map[string]string

// Has reports whether the named field failed validation.
func (e fieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// formBinder decodes urlencoded form posts and checks required fields.
type formBinder struct {
	decoder  *schema.Decoder
	validate *validator.Validate
}

func newFormBinder() *formBinder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	decoder.RegisterConverter(false, convertCheckbox)

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("schema"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &formBinder{decoder: decoder, validate: validate}
}

// convertCheckbox accepts the values browsers and form helpers send for a
// checked box. Anything else is unchecked.
func convertCheckbox(value string) reflect.Value {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "on", "true", "1":
		return reflect.ValueOf(true)
	default:
		return reflect.ValueOf(false)
	}
}

// bind fills dst from the request form. A non-nil fieldErrors is returned
// when decoding or validation fails on specific fields; err is reserved for
// requests whose body cannot be read at all.
func (b *formBinder) bind(r *http.Request, dst any) (fieldErrors, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	problems := fieldErrors{}
	if err := b.decoder.Decode(dst, r.PostForm); err != nil {
		var multi schema.MultiError
		if !errors.As(err, &multi) {
			return nil, fmt.Errorf("decode form: %w", err)
		}
		for field := range multi {
			problems[field] = "Invalid value."
		}
	}

	if err := b.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validate form: %w", err)
		}
		for _, fe := range verrs {
			if _, seen := problems[fe.Field()]; !seen {
				problems[fe.Field()] = "This field is required."
			}
		}
	}

	if len(problems) > 0 {
		return problems, nil
	}
	return nil, nil
}
