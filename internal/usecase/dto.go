package usecase

type LeadInput struct {
	FName   string `json:"fname"`
	LName   string `json:"lname"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Zipcode string `json:"zipcode"`
}

type CreateLeadOutput struct {
	Msg string `json:"msg"`
}

// RejectedRow keeps the raw row exactly as uploaded, alongside the reason
// each field failed.
type RejectedRow struct {
	Data   map[string]string `json:"data"`
	Errors map[string]string `json:"errors"`
}

type BulkOutcome struct {
	Accepted int           `json:"accepted"`
	Rejected int           `json:"rejected"`
	Details  []RejectedRow `json:"details"`
}
