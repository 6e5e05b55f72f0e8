package domain

import (
	"strings"
	"time"
)

// Service is an offering listed on the public site. ID is the slug chosen at
// creation and never changes afterwards.
type Service struct {
	RecordID         string     `json:"_id,omitempty"`
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	ShortDescription string     `json:"shortDescription"`
	FullDescription  string     `json:"fullDescription"`
	LongDescription  string     `json:"longDescription"`
	Icon             string     `json:"icon"`
	Color            Color      `json:"color"`
	Gradient         string     `json:"gradient"`
	Features         []string   `json:"features"`
	Benefits         []string   `json:"benefits"`
	UseCases         []string   `json:"useCases"`
	Technologies     []string   `json:"technologies"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

func (s Service) Key() string { return s.ID }

// PortfolioItem is a showcased project. ID is an immutable slug.
type PortfolioItem struct {
	RecordID        string        `json:"_id,omitempty"`
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Tagline         string        `json:"tagline"`
	Category        Category      `json:"category"`
	Image           string        `json:"image"`
	Color           Color         `json:"color"`
	Description     string        `json:"description"`
	FullDescription string        `json:"fullDescription"`
	Technologies    []string      `json:"technologies"`
	Features        []string      `json:"features"`
	Results         []string      `json:"results"`
	Client          string        `json:"client"`
	Duration        string        `json:"duration"`
	Status          ProjectStatus `json:"status"`
	LiveLink        string        `json:"liveLink,omitempty"`
	CreatedAt       *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time    `json:"updatedAt,omitempty"`
}

func (p PortfolioItem) Key() string { return p.ID }

// Contact is a message left through the public contact form. Its identifier
// is assigned by the backend.
type Contact struct {
	ID        string        `json:"_id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone,omitempty"`
	Subject   string        `json:"subject,omitempty"`
	Service   string        `json:"service,omitempty"`
	Message   string        `json:"message"`
	Status    ContactStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (c Contact) Key() string { return c.ID }

// ContactSubmission is the payload of the public contact form.
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone,omitempty" form:"phone"`
	Subject string `json:"subject,omitempty" form:"subject"`
	Service string `json:"service,omitempty" form:"service"`
	Message string `json:"message" form:"message"`
}

type User struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	if u.Email != "" {
		return u.Email
	}
	return "Admin"
}

// Initial is the avatar letter shown in the admin sidebar.
func (u User) Initial() string {
	if u.Username == "" {
		return "A"
	}
	return strings.ToUpper(string([]rune(u.Username)[:1]))
}
