package usecase

import "context"

// AssistantUsecase wraps the hosted text-generation collaborator with
// domain-specific prompting. Both operations degrade to a fixed fallback
// string on any transport or model error; they never fail the request.
type AssistantUsecase interface {
	// GetLogisticsAdvice answers a free-form cargo/shipping question.
	GetLogisticsAdvice(ctx context.Context, question string) string

	// SummarizeShipment produces a short status-and-risk summary for the
	// shipment behind the tracking number. Returns (summary, found).
	SummarizeShipment(ctx context.Context, trackingNumber string) (string, bool)
}
