package usecase

import "strings"

// htmlEscaper neutralises the characters that let user input break out of
// an HTML context. Replacer walks the input once, so the entities it
// produces are never themselves re-escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"/", "&#x2F;",
)

// Sanitize must be applied exactly once per value, after validation and
// before persistence. A second application would escape the ampersands
// inside entities produced by the first.
func Sanitize(input string) string {
	return htmlEscaper.Replace(input)
}

func sanitizeInput(input LeadInput) LeadInput {
	return LeadInput{
		FName:   Sanitize(input.FName),
		LName:   Sanitize(input.LName),
		Email:   Sanitize(input.Email),
		Phone:   Sanitize(input.Phone),
		Zipcode: Sanitize(input.Zipcode),
	}
}
