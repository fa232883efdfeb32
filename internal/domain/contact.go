package domain

import "strings"

// Contact is the buyer. Email and the free-form address go through setters because
// both normalise their input; every other field is plain data.
type Contact struct {
	FirstName   string
	LastName    string
	Mobile      string
	PostCode    string
	City        string
	Street      string
	Number      string
	CountryCode string

	email        string
	address      string
	addressSplit bool
}

func (c *Contact) Email() string {
	return c.email
}

// SetEmail lowercases the address and rejects it if sanitizing would drop any character.
// No format or MX checks are made.
func (c *Contact) SetEmail(email string) error {
	email = strings.ToLower(email)
	if email != sanitizeEmail(email) {
		return NewValidationError("Invalid email address")
	}
	c.email = email
	return nil
}

// Address returns the stored address or, when none was set, "street number".
// The synthesized value is not stored.
func (c *Contact) Address() string {
	if c.address != "" {
		return c.address
	}
	return c.Street + " " + c.Number
}

// SetAddress stores the raw address. When street and number are both still empty the
// address is split into them once: at the last comma, otherwise at the last space.
// Without either delimiter nothing is split.
func (c *Contact) SetAddress(address string) {
	c.address = address
	if c.Street == "" && c.Number == "" && !c.addressSplit {
		c.splitAddress()
	}
}

func (c *Contact) splitAddress() {
	if c.address == "" {
		return
	}
	c.addressSplit = true

	pos := strings.LastIndex(c.address, ",")
	if pos < 0 {
		pos = strings.LastIndex(c.address, " ")
	}
	if pos < 0 {
		return
	}

	c.Street = strings.TrimSpace(c.address[:pos])
	c.Number = strings.TrimSpace(c.address[pos+1:])
}

func (c *Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// sanitizeEmail keeps letters, digits and !#$%&'*+-=?^_`{|}~@.[] and drops everything else.
func sanitizeEmail(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune("!#$%&'*+-=?^_`{|}~@.[]", r):
			return r
		}
		return -1
	}, s)
}
