package registration

import "time"

const (
	DocumentAadhar    = "Aadhar Card"
	DocumentBirthCert = "Birth Certificate"
)

var (
	DocumentTypes = []string{DocumentAadhar, DocumentBirthCert}
	PlayerTypes   = []string{"Batter", "Bowler", "All Rounder", "Wicket Keeper"}
)

// Registration is a player sign-up. DOB is kept as submitted (YYYY-MM-DD, shape-checked only).
type Registration struct {
	ID             string
	Name           string
	DOB            string
	Phone          string
	Email          string
	DocumentType   string
	DocumentNumber string
	PlayerType     string
	Address        string
	CreatedAt      time.Time
}
