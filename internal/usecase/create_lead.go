package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/lead-intake/internal/entity"
)

type CreateLeadUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	Events   LeadEventPublisher
}

func NewCreateLeadUseCase(leadRepo entity.LeadRepositoryInterface, events LeadEventPublisher) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		LeadRepo: leadRepo,
		Events:   events,
	}
}

// Execute validates one lead and persists it with a single insert. The
// store is never touched when validation fails, and values are sanitized
// exactly once, after validation passes.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input LeadInput) (*CreateLeadOutput, error) {
	if errors := ValidateLead(input); len(errors) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_FAILED",
			Message: "Validation has failed. Please check the fields below.",
			Fields:  errors,
		}
	}

	safe := sanitizeInput(input)
	lead := &entity.Lead{
		FName:   safe.FName,
		LName:   safe.LName,
		Email:   safe.Email,
		Phone:   safe.Phone,
		Zipcode: safe.Zipcode,
	}

	if err := uc.LeadRepo.Insert(ctx, lead); err != nil {
		log.Printf("lead insert failed: %v", err)
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "Internal Server Error: Could not save lead to the database.",
		}
	}

	// Event delivery is best effort. A broker outage never fails the
	// request that already persisted the lead.
	if uc.Events != nil {
		if err := uc.Events.PublishLeadCreated(ctx, lead); err != nil {
			log.Printf("lead event publish failed: %v", err)
		}
	}

	return &CreateLeadOutput{
		Msg: "Success! The lead has been securely saved to the database.",
	}, nil
}
