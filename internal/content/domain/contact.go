package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const minMessageLen = 10

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Normalize trims every field of the submission.
func (s ContactSubmission) Normalize() ContactSubmission {
	return ContactSubmission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Phone:   strings.TrimSpace(s.Phone),
		Subject: strings.TrimSpace(s.Subject),
		Service: strings.TrimSpace(s.Service),
		Message: strings.TrimSpace(s.Message),
	}
}

// Validate returns a message per invalid field, keyed by the JSON field
// name. The map is empty, never nil, when the submission is valid.
func (s ContactSubmission) Validate() map[string]string {
	s = s.Normalize()
	errs := make(map[string]string)

	if s.Name == "" {
		errs["name"] = "Name is required"
	}
	switch {
	case s.Email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(s.Email):
		errs["email"] = "Please enter a valid email"
	}
	switch {
	case s.Message == "":
		errs["message"] = "Message is required"
	case utf8.RuneCountInString(s.Message) < minMessageLen:
		errs["message"] = "Message must be at least 10 characters"
	}
	return errs
}
