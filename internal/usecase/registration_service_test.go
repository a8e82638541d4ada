package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/league-portal/internal/domain/registration"
	registrationmock "github.com/riskibarqy/league-portal/internal/mocks/domain/registration"
	"github.com/stretchr/testify/mock"
)

func validRegistrationInput() RegistrationInput {
	return RegistrationInput{
		Name:           "Ravi Kumar",
		DOB:            "2004-08-15",
		Phone:          "+91 98765 43210",
		Email:          "ravi@example.in",
		DocumentType:   registration.DocumentAadhar,
		DocumentNumber: "1234 5678 9012",
		PlayerType:     "All Rounder",
		Address:        "Ward 4, Darbhanga, Bihar",
	}
}

func TestRegistrationService_Submit_ReportsEveryFieldInOrder(t *testing.T) {
	t.Parallel()

	repo := registrationmock.NewRepository(t)
	service := NewRegistrationService(repo, &sequenceIDs{prefix: "reg"}, 100)

	_, err := service.Submit(context.Background(), RegistrationInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	want := strings.Join([]string{
		"Name is required",
		"Date of birth is required",
		"Phone is required",
		"Email is required",
		"Invalid document type",
		"Document number is required",
		"Invalid player type",
		"Address is required",
	}, "; ")
	if err.Error() != want {
		t.Fatalf("unexpected message:\nwant: %s\ngot:  %s", want, err.Error())
	}
}

func TestRegistrationService_Submit_OneMessagePerField(t *testing.T) {
	t.Parallel()

	service := NewRegistrationService(registrationmock.NewRepository(t), &sequenceIDs{prefix: "reg"}, 100)

	cases := []struct {
		name   string
		mutate func(in *RegistrationInput)
		want   string
	}{
		{"long name", func(in *RegistrationInput) { in.Name = strings.Repeat("a", 101) }, "Name must be under 100 characters"},
		{"bad dob shape", func(in *RegistrationInput) { in.DOB = "15/08/2004" }, "Invalid date format (YYYY-MM-DD)"},
		{"short phone", func(in *RegistrationInput) { in.Phone = "12345" }, "Invalid phone number"},
		{"letters in phone", func(in *RegistrationInput) { in.Phone = "98765abcde" }, "Invalid phone number"},
		{"email without tld", func(in *RegistrationInput) { in.Email = "ravi@example" }, "Invalid email"},
		{"long email", func(in *RegistrationInput) { in.Email = strings.Repeat("a", 250) + "@x.com" }, "Invalid email"},
		{"unknown document", func(in *RegistrationInput) { in.DocumentType = "Passport" }, "Invalid document type"},
		{"long document number", func(in *RegistrationInput) { in.DocumentNumber = strings.Repeat("9", 51) }, "Document number too long"},
		{"unknown player type", func(in *RegistrationInput) { in.PlayerType = "Captain" }, "Invalid player type"},
		{"long address", func(in *RegistrationInput) { in.Address = strings.Repeat("x", 501) }, "Address must be under 500 characters"},
	}
	for _, tc := range cases {
		in := validRegistrationInput()
		tc.mutate(&in)
		_, err := service.Submit(context.Background(), in)
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if err.Error() != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, err.Error(), tc.want)
		}
	}
}

func TestRegistrationService_Submit_SanitisesAndStores(t *testing.T) {
	t.Parallel()

	repo := registrationmock.NewRepository(t)
	service := NewRegistrationService(repo, &sequenceIDs{prefix: "reg"}, 100)

	in := validRegistrationInput()
	in.Name = "  <b>Ravi</b> Kumar "
	in.Address = " <script>Ward 4</script> "
	// Only the shape of the date is checked.
	in.DOB = "2004-13-45"

	repo.
		On("Create", mock.Anything, mock.MatchedBy(func(r registration.Registration) bool {
			return r.ID == "reg-1" &&
				r.Name == "bRavi/b Kumar" &&
				r.Address == "scriptWard 4/script" &&
				r.DOB == "2004-13-45" &&
				r.PlayerType == "All Rounder"
		})).
		Return(nil).
		Once()

	got, err := service.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit registration: %v", err)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestRegistrationService_Submit_StorageFailureIsNotClientError(t *testing.T) {
	t.Parallel()

	repo := registrationmock.NewRepository(t)
	service := NewRegistrationService(repo, &sequenceIDs{prefix: "reg"}, 100)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	_, err := service.Submit(context.Background(), validRegistrationInput())
	if err == nil {
		t.Fatalf("expected storage error")
	}
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		t.Fatalf("storage failures must not surface as client errors: %v", err)
	}
}

func TestRegistrationService_ListRecent_UsesLimit(t *testing.T) {
	t.Parallel()

	repo := registrationmock.NewRepository(t)
	service := NewRegistrationService(repo, &sequenceIDs{prefix: "reg"}, 25)
	repo.On("ListRecent", mock.Anything, 25).Return([]registration.Registration{{ID: "r1"}}, nil).Once()

	got, err := service.ListRecent(context.Background())
	if err != nil {
		t.Fatalf("list registrations: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected rows: %+v", got)
	}
}
