package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSubmitDelay  = 2 * time.Second
	DefaultContactDelay = time.Second

	MaxImages = 10
	Steps     = 3
)

var (
	ErrMissingInformation = errors.New("please fill in all required fields")
	ErrTooManyImages      = fmt.Errorf("you can upload a maximum of %d images", MaxImages)
	ErrUnknownStep        = errors.New("unknown step")
)

// PropertyForm mirrors the upload wizard. Numeric fields stay text, as typed.
type PropertyForm struct {
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Price        string   `json:"price"`
	Size         string   `json:"size"`
	Bedrooms     string   `json:"bedrooms"`
	Bathrooms    string   `json:"bathrooms"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	YearBuilt    string   `json:"yearBuilt"`
	Parking      bool     `json:"parking"`
	Furnished    bool     `json:"furnished"`
	Amenities    []string `json:"selectedAmenities"`
	ContactName  string   `json:"contactName"`
	ContactPhone string   `json:"contactPhone"`
	ContactEmail string   `json:"contactEmail"`
	Images       []string `json:"images"`
}

type ContactMessage struct {
	PropertyId string `json:"propertyId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
}

type Receipt struct {
	Reference string `json:"reference"`
	Title     string `json:"title"`
	Message   string `json:"message"`
}

type field struct {
	name  string
	value string
}

func (f PropertyForm) stepFields(step int) ([]field, error) {
	switch step {
	case 1:
		return []field{{"title", f.Title}, {"location", f.Location}, {"price", f.Price}, {"type", f.Type}}, nil
	case 2:
		return []field{{"bedrooms", f.Bedrooms}, {"bathrooms", f.Bathrooms}, {"size", f.Size}, {"description", f.Description}}, nil
	case 3:
		return []field{{"contactName", f.ContactName}, {"contactPhone", f.ContactPhone}, {"contactEmail", f.ContactEmail}}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStep, step)
	}
}

// ValidateStep reports the required fields of a wizard step that are empty.
func ValidateStep(form PropertyForm, step int) error {
	fields, err := form.stepFields(step)
	if err != nil {
		return err
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == `` {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingInformation, strings.Join(missing, ", "))
	}

	if step == 1 && len(form.Images) > MaxImages {
		return ErrTooManyImages
	}

	return nil
}

type Option func(*Submitter)

// WithDelays overrides the simulated processing pauses. sleep defaults to
// time.Sleep when nil.
func WithDelays(submit, contact time.Duration, sleep func(time.Duration)) Option {
	return func(s *Submitter) {
		s.submitDelay = submit
		s.contactDelay = contact
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Submitter) { s.logger = logger }
}

// Submitter accepts listing uploads and contact messages. Nothing is stored
// and, once a form is complete, nothing fails.
type Submitter struct {
	submitDelay  time.Duration
	contactDelay time.Duration
	sleep        func(time.Duration)
	logger       *slog.Logger
}

func NewSubmitter(opts ...Option) *Submitter {
	s := &Submitter{
		submitDelay:  DefaultSubmitDelay,
		contactDelay: DefaultContactDelay,
		sleep:        time.Sleep,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("component", "submission")

	return s
}

// SubmitProperty checks the contact step, as the wizard's final button does,
// and the image limit, then waits out the submit delay and accepts the listing for review.
func (s *Submitter) SubmitProperty(_ context.Context, form PropertyForm) (Receipt, error) {
	if err := ValidateStep(form, Steps); err != nil {
		return Receipt{}, err
	}

	if len(form.Images) > MaxImages {
		return Receipt{}, ErrTooManyImages
	}

	s.pause(s.submitDelay)

	receipt := Receipt{
		Reference: uuid.NewString(),
		Title:     "Property Submitted!",
		Message:   "Your property will be reviewed and published within 24-48 hours.",
	}

	s.logger.Info("Property submitted for review", "reference", receipt.Reference, "title", form.Title)

	return receipt, nil
}

func (s *Submitter) SendContact(_ context.Context, msg ContactMessage) Receipt {
	s.pause(s.contactDelay)

	receipt := Receipt{
		Reference: uuid.NewString(),
		Title:     "Message Sent!",
		Message:   "The property owner will contact you soon.",
	}

	s.logger.Info("Contact message sent", "reference", receipt.Reference, "property_id", msg.PropertyId)

	return receipt
}

func (s *Submitter) pause(d time.Duration) {
	if d > 0 {
		s.sleep(d)
	}
}
