package usecase

import (
	"context"

	"github.com/xavierca1/lead-intake/internal/entity"
)

// LeadEventPublisher pushes a lead-created event to the queue. Optional
// integration: use cases tolerate a nil publisher.
type LeadEventPublisher interface {
	PublishLeadCreated(ctx context.Context, lead *entity.Lead) error
}

// ImportNotifier tells the sales inbox a bulk import finished. Optional
// integration: use cases tolerate a nil notifier.
type ImportNotifier interface {
	SendImportSummary(accepted, rejected int) error
}
