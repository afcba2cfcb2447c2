package usecase

import "regexp"

var (
	nameRegex  = regexp.MustCompile(`^[a-zA-Z0-9]{2,20}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
	zipRegex   = regexp.MustCompile(`^[a-zA-Z0-9]{6}$`)
)

// ValidateLead checks every field and returns one message per failing
// field. An empty map means the record is valid. Fields are not
// short-circuited: a record with three bad fields reports all three.
func ValidateLead(input LeadInput) map[string]string {
	errors := make(map[string]string)

	if !nameRegex.MatchString(input.FName) {
		errors["fname"] = "First name must be alphanumeric and 2-20 characters long."
	}

	if !nameRegex.MatchString(input.LName) {
		errors["lname"] = "Last name must be alphanumeric and 2-20 characters long."
	}

	if !emailRegex.MatchString(input.Email) {
		errors["email"] = "Please provide a valid email address."
	}

	if !phoneRegex.MatchString(input.Phone) {
		errors["phone"] = "Phone number must be exactly 10 digits."
	}

	if !zipRegex.MatchString(input.Zipcode) {
		errors["zipcode"] = "Zipcode/Eircode must be exactly 6 characters."
	}

	return errors
}
