package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"log"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type BulkImportUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	Notifier ImportNotifier
}

func NewBulkImportUseCase(leadRepo entity.LeadRepositoryInterface, notifier ImportNotifier) *BulkImportUseCase {
	return &BulkImportUseCase{
		LeadRepo: leadRepo,
		Notifier: notifier,
	}
}

// Execute streams a CSV once, front to back. The first row is the header;
// every following row is normalized, validated and sorted into the
// accepted or rejected pile. One bad row never aborts its siblings — only
// a read failure on the stream itself does. Accepted rows go to the store
// in a single batched insert after the stream ends.
func (uc *BulkImportUseCase) Execute(ctx context.Context, src io.Reader) (*BulkOutcome, error) {
	reader := csv.NewReader(src)
	// Short rows are a validation problem, not a parse failure.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		// No header means no data rows. Nothing to import.
		return &BulkOutcome{Details: []RejectedRow{}}, nil
	}
	if err != nil {
		return nil, &TechnicalError{
			Code:    "CSV_READ_ERROR",
			Message: "Internal Server Error: Could not read the uploaded file.",
		}
	}

	var accepted []*entity.Lead
	details := []RejectedRow{}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &TechnicalError{
				Code:    "CSV_READ_ERROR",
				Message: "Internal Server Error: Could not read the uploaded file.",
			}
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}

		input := NormalizeRow(row)
		if errors := ValidateLead(input); len(errors) > 0 {
			details = append(details, RejectedRow{Data: row, Errors: errors})
			continue
		}

		safe := sanitizeInput(input)
		accepted = append(accepted, &entity.Lead{
			FName:   safe.FName,
			LName:   safe.LName,
			Email:   safe.Email,
			Phone:   safe.Phone,
			Zipcode: safe.Zipcode,
		})
	}

	if len(accepted) > 0 {
		if err := uc.LeadRepo.InsertBatch(ctx, accepted); err != nil {
			log.Printf("bulk lead insert failed: %v", err)
			return nil, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "Internal Server Error: Could not save leads to the database.",
			}
		}
	}

	outcome := &BulkOutcome{
		Accepted: len(accepted),
		Rejected: len(details),
		Details:  details,
	}

	if uc.Notifier != nil {
		if err := uc.Notifier.SendImportSummary(outcome.Accepted, outcome.Rejected); err != nil {
			log.Printf("import summary email failed: %v", err)
		}
	}

	return outcome, nil
}
