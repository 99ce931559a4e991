package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cargofly/internal/domain/service"
	"cargofly/internal/usecase"
)

// Fallback strings returned when the model endpoint fails or produces
// nothing. The assistant never surfaces an error to the caller.
const (
	adviceErrorFallback  = "I encountered an error while trying to process your request. Please check your network connection or try again later."
	adviceEmptyFallback  = "I'm sorry, I couldn't generate a response at this time."
	summaryErrorFallback = "Could not summarize status."
	summaryEmptyFallback = "Status summary unavailable."
)

// shipmentSummaryInput is the slimmed-down shipment view handed to the model.
// It deliberately omits addresses, contact details and pricing.
type shipmentSummaryInput struct {
	TrackingNumber    string   `json:"trackingNumber"`
	Status            string   `json:"status"`
	StatusLabel       string   `json:"statusLabel"`
	Progress          int      `json:"progress"`
	CurrentLocation   string   `json:"currentLocation"`
	Service           string   `json:"service"`
	EstimatedDelivery string   `json:"estimatedDelivery"`
	History           []string `json:"history"`
}

// assistantService implements the AssistantUsecase interface on top of the
// hosted text-generation collaborator.
type assistantService struct {
	ai        service.AssistantService
	shipments usecase.ShipmentUsecase
	logger    *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(
	ai service.AssistantService,
	shipments usecase.ShipmentUsecase,
	logger *slog.Logger,
) usecase.AssistantUsecase {
	return &assistantService{
		ai:        ai,
		shipments: shipments,
		logger:    logger,
	}
}

// GetLogisticsAdvice answers a free-form cargo/shipping question, degrading
// to a fixed fallback string on any error.
func (srv *assistantService) GetLogisticsAdvice(ctx context.Context, question string) string {
	prompt := fmt.Sprintf(
		"You are a logistics expert. Answer the following user question about cargo, shipping, or supply chain: %s",
		question,
	)

	answer, err := srv.ai.Ask(ctx, prompt)
	if err != nil {
		srv.logger.Error("Assistant advice request failed", "error", err)

		return adviceErrorFallback
	}
	if answer == "" {
		return adviceEmptyFallback
	}

	return answer
}

// SummarizeShipment produces a short status-and-risk summary for the shipment
// behind the tracking number. The second return value is false when the
// tracking number matches nothing.
func (srv *assistantService) SummarizeShipment(ctx context.Context, trackingNumber string) (string, bool) {
	result, err := srv.shipments.TrackShipment(ctx, trackingNumber)
	if err != nil {
		srv.logger.Error("Assistant summary lookup failed", "trackingNumber", trackingNumber, "error", err)

		return summaryErrorFallback, true
	}
	if result == nil {
		return "", false
	}

	shipment := result.Shipment
	label, _ := shipment.Status.DisplayLabel()

	input := shipmentSummaryInput{
		TrackingNumber:    shipment.TrackingNumber,
		Status:            shipment.Status.String(),
		StatusLabel:       label,
		Progress:          shipment.Progress,
		CurrentLocation:   shipment.CurrentLocation,
		Service:           string(shipment.Service),
		EstimatedDelivery: shipment.EstimatedDelivery.Format("2006-01-02"),
		History:           make([]string, 0, len(result.Events)),
	}
	for _, event := range result.Events {
		input.History = append(input.History, fmt.Sprintf(
			"%s: %s at %s",
			event.Timestamp.Format("2006-01-02 15:04"),
			event.Description,
			event.Location,
		))
	}

	payload, err := json.Marshal(input)
	if err != nil {
		srv.logger.Error("Assistant summary encoding failed", "error", err)

		return summaryErrorFallback, true
	}

	prompt := fmt.Sprintf("Summarize the status and potential risks for this shipment: %s", payload)

	summary, err := srv.ai.Ask(ctx, prompt)
	if err != nil {
		srv.logger.Error("Assistant summary request failed", "trackingNumber", trackingNumber, "error", err)

		return summaryErrorFallback, true
	}
	if summary == "" {
		return summaryEmptyFallback, true
	}

	return summary, true
}
