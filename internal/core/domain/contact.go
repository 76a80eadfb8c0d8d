package domain

import (
	"regexp"
	"strings"
	"time"
)

// ContactStatus is the follow-up state of an enquiry.
type ContactStatus string

const (
	ContactPending   ContactStatus = "pending"
	ContactContacted ContactStatus = "contacted"
)

// Valid reports whether s is a known status.
func (s ContactStatus) Valid() bool {
	return s == ContactPending || s == ContactContacted
}

// Services offered at the counter; enquiries must name one of them.
var Services = []string{
	"Aadhaar Services",
	"PAN Card",
	"Voter ID",
	"Online Forms",
	"Government Schemes",
	"Printing Services",
}

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidPhone reports whether p is a bare 10-digit mobile number.
func ValidPhone(p string) bool {
	return phonePattern.MatchString(p)
}

// Contact is an enquiry left through the public contact form.
type Contact struct {
	ID          string        `json:"id"`
	FullName    string        `json:"full_name"`
	PhoneNumber string        `json:"phone_number"`
	Service     string        `json:"service"`
	Message     string        `json:"message,omitempty"`
	Status      ContactStatus `json:"status"`
	Contacted   bool          `json:"contacted"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Matches implements the admin search box: case-insensitive name match or phone substring.
func (c *Contact) Matches(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.FullName), strings.ToLower(term)) ||
		strings.Contains(c.PhoneNumber, term)
}

// ValidService reports whether s is one of Services.
func ValidService(s string) bool {
	for _, known := range Services {
		if known == s {
			return true
		}
	}
	return false
}
