package usecase

import "strings"

// fieldAliases lists, in priority order, the upload headers accepted for
// each canonical field. The first alias present in the row wins, even if
// its value is empty; validation decides whether the value is usable.
var fieldAliases = map[string][]string{
	"fname":   {"fname", "first_name", "firstname", "first name"},
	"lname":   {"lname", "last_name", "lastname", "surname"},
	"email":   {"email", "email_address", "e-mail"},
	"phone":   {"phone", "phone_number", "mobile"},
	"zipcode": {"zipcode", "zip", "postal_code", "eircode"},
}

// canonicalHeader folds an uploaded column name onto the form the alias
// table uses. Strips a UTF-8 BOM so the first column of Excel exports
// still matches.
func canonicalHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

// NormalizeRow maps a raw uploaded row onto the canonical lead fields.
// Fields with no matching alias are left empty and will be flagged by the
// validator.
func NormalizeRow(row map[string]string) LeadInput {
	folded := make(map[string]string, len(row))
	for k, v := range row {
		key := canonicalHeader(k)
		if _, seen := folded[key]; !seen {
			folded[key] = v
		}
	}

	pick := func(field string) string {
		for _, alias := range fieldAliases[field] {
			if v, ok := folded[alias]; ok {
				return v
			}
		}
		return ""
	}

	return LeadInput{
		FName:   pick("fname"),
		LName:   pick("lname"),
		Email:   pick("email"),
		Phone:   pick("phone"),
		Zipcode: pick("zipcode"),
	}
}
