package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/league-portal/internal/domain/registration"
	idgen "github.com/riskibarqy/league-portal/internal/platform/id"
)

// RegistrationInput is the raw submission; all fields are validated before anything is stored.
type RegistrationInput struct {
	Name           string `validate:"trimmed_required,trimmed_max=100"`
	DOB            string `validate:"required,ymd"`
	Phone          string `validate:"required,phone"`
	Email          string `validate:"required,basic_email"`
	DocumentType   string `validate:"document_type"`
	DocumentNumber string `validate:"trimmed_required,trimmed_max=50"`
	PlayerType     string `validate:"player_type"`
	Address        string `validate:"trimmed_required,trimmed_max=500"`
}

var registrationMessages = map[string]map[string]string{
	"Name": {
		"trimmed_required": "Name is required",
		"trimmed_max":      "Name must be under 100 characters",
	},
	"DOB": {
		"required": "Date of birth is required",
		"ymd":      "Invalid date format (YYYY-MM-DD)",
	},
	"Phone": {
		"required": "Phone is required",
		"phone":    "Invalid phone number",
	},
	"Email": {
		"required":    "Email is required",
		"basic_email": "Invalid email",
	},
	"DocumentType": {"document_type": "Invalid document type"},
	"DocumentNumber": {
		"trimmed_required": "Document number is required",
		"trimmed_max":      "Document number too long",
	},
	"PlayerType": {"player_type": "Invalid player type"},
	"Address": {
		"trimmed_required": "Address is required",
		"trimmed_max":      "Address must be under 500 characters",
	},
}

var (
	ymdPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	phonePattern = regexp.MustCompile(`^[\d+\-\s]{7,15}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const maxEmailLen = 255

type RegistrationService struct {
	repo     registration.Repository
	ids      idgen.Generator
	validate *validator.Validate
	limit    int
	now      func() time.Time
}

func NewRegistrationService(repo registration.Repository, ids idgen.Generator, listLimit int) *RegistrationService {
	return &RegistrationService{
		repo:     repo,
		ids:      ids,
		validate: newRegistrationValidator(),
		limit:    listLimit,
		now:      time.Now,
	}
}

// Submit validates every field, reporting all problems at once, then stores a sanitised row.
func (s *RegistrationService) Submit(ctx context.Context, in RegistrationInput) (registration.Registration, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.Submit")
	defer span.End()

	if problems := s.problems(in); len(problems) > 0 {
		return registration.Registration{}, &ClientError{Kind: ErrInvalidInput, Problems: problems}
	}

	id, err := s.ids.NewID()
	if err != nil {
		return registration.Registration{}, fmt.Errorf("generate registration id: %w", err)
	}
	item := registration.Registration{
		ID:             id,
		Name:           sanitizeText(in.Name),
		DOB:            in.DOB,
		Phone:          sanitizeText(in.Phone),
		Email:          sanitizeText(in.Email),
		DocumentType:   in.DocumentType,
		DocumentNumber: sanitizeText(in.DocumentNumber),
		PlayerType:     in.PlayerType,
		Address:        sanitizeText(in.Address),
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return registration.Registration{}, fmt.Errorf("create registration: %w", err)
	}
	return item, nil
}

// ListRecent is the admin view of sign-ups, newest first.
func (s *RegistrationService) ListRecent(ctx context.Context) ([]registration.Registration, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.ListRecent")
	defer span.End()

	items, err := s.repo.ListRecent(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return items, nil
}

func (s *RegistrationService) problems(in RegistrationInput) []string {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := registrationMessages[fe.StructField()][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		out = append(out, msg)
	}
	return out
}

// sanitizeText trims and drops angle brackets.
func sanitizeText(v string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(strings.TrimSpace(v))
}

func newRegistrationValidator() *validator.Validate {
	v := validator.New()
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}
	mustRegister("trimmed_required", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister("trimmed_max", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) <= limit
	})
	mustRegister("ymd", func(fl validator.FieldLevel) bool {
		return ymdPattern.MatchString(fl.Field().String())
	})
	mustRegister("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	mustRegister("basic_email", func(fl validator.FieldLevel) bool {
		email := strings.TrimSpace(fl.Field().String())
		return len(email) <= maxEmailLen && emailPattern.MatchString(email)
	})
	mustRegister("document_type", func(fl validator.FieldLevel) bool {
		return slices.Contains(registration.DocumentTypes, fl.Field().String())
	})
	mustRegister("player_type", func(fl validator.FieldLevel) bool {
		return slices.Contains(registration.PlayerTypes, fl.Field().String())
	})
	return v
}
