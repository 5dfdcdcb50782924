package brand

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrInvalidWebsite = errors.New("invalid website URL")
	ErrEmptyName      = errors.New("brand name cannot be empty")
	ErrNameTooLong    = errors.New("brand name is too long")
)

const MaxNameLength = 60

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	if len(s) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

type Website struct {
	value string
}

func NewWebsite(s string) (Website, error) {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Website{}, ErrInvalidWebsite
	}
	return Website{value: s}, nil
}

func (w Website) Value() string {
	return w.value
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}
