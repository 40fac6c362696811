package metrics

import (
	"context"

	"github.com/hearthvale/forgecore/internal/domain"
	"github.com/hearthvale/forgecore/internal/event"
	"github.com/hearthvale/forgecore/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []domain.EventType{
		domain.EventTypeItemCrafted,
		domain.EventTypeRecipeDiscovered,
		domain.EventTypeRecipeLearned,
		domain.EventTypeMasteryAdvanced,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(event.Type(eventType), e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch payload := evt.Payload.(type) {
	case event.ItemCraftedPayloadV1:
		outcome := OutcomeFailure
		if payload.Success {
			outcome = OutcomeSuccess
		}
		CraftAttempts.WithLabelValues(payload.RecipeName, outcome).Inc()
		if payload.Success {
			CraftQuality.WithLabelValues(payload.RecipeName).Observe(float64(payload.Quality))
		}

	case event.RecipeDiscoveredPayloadV1:
		RecipesDiscovered.WithLabelValues(payload.RecipeName).Inc()

	case event.RecipeLearnedPayloadV1:
		RecipesLearned.WithLabelValues(payload.RecipeName).Inc()

	case event.MasteryAdvancedPayloadV1:
		MasteryAdvances.Inc()

	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
