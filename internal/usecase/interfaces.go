package usecase

import (
	"context"

	"github.com/erino/leadcrm/internal/infra/queue"
)

// TokenIssuer is satisfied by auth.Codec.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

// QueueProducerInterface publishes lead lifecycle events. A failure to
// publish never fails the originating request.
type QueueProducerInterface interface {
	PublishLeadCreated(ctx context.Context, payload queue.LeadCreatedPayload) error
}
