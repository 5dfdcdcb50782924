package discount

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode        = errors.New("invalid discount code format")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrNegativeQuantity   = errors.New("quantity cannot be negative")
)

const MaxDescriptionLength = 60

var codeRegex = regexp.MustCompile(`^[A-Z0-9\-]{3,60}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if len(s) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: s}, nil
}

func (d Description) Value() string {
	return d.value
}

type Quantity int

func NewQuantity(n int) (Quantity, error) {
	if n < 0 {
		return 0, ErrNegativeQuantity
	}
	return Quantity(n), nil
}

func (q Quantity) Value() int {
	return int(q)
}
