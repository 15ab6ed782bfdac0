package adoption

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"pet-adoption/internal/platform/logger"
)

const tracerName = "pet-adoption/internal/domain/adoption"

// Instrumented decora UseCases con spans, logs y contadores.
type Instrumented struct {
	inner   UseCases
	tracer  trace.Tracer
	log     logger.Logger
	metrics serviceMetrics
}

// NewInstrumented: tracer/meter nil => noop.
func NewInstrumented(inner UseCases, tracer trace.Tracer, meter metric.Meter, log logger.Logger) *Instrumented {
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Instrumented{
		inner:   inner,
		tracer:  tracer,
		log:     log,
		metrics: newServiceMetrics(meter),
	}
}

func (s *Instrumented) Register(ctx context.Context, in RegisterInput) (Interest, error) {
	ctx, span := s.tracer.Start(ctx, "adoption.Register", trace.WithAttributes(
		attribute.String("animal.id", in.AnimalID),
		attribute.String("adopter.id", in.AdopterID),
	))
	defer span.End()

	i, err := s.inner.Register(ctx, in)
	if errors.Is(err, ErrAlreadyInQueue) {
		// No es una falla: el cliente lo trata como éxito idempotente.
		span.SetAttributes(attribute.Bool("interest.duplicate", true))
		addCounter(ctx, s.metrics.duplicate, attribute.String("animal.id", in.AnimalID))
		s.log.Info("interest already in queue", map[string]any{"animal_id": in.AnimalID, "adopter_id": in.AdopterID})
		return i, err
	}
	if err != nil {
		return i, s.handleError(span, err, "failed to register interest", map[string]any{"animal_id": in.AnimalID})
	}

	span.SetAttributes(attribute.String("interest.id", i.ID))
	addCounter(ctx, s.metrics.registered, attribute.String("animal.id", in.AnimalID))
	s.log.Info("interest registered", map[string]any{"interest_id": i.ID, "animal_id": i.AnimalID})
	return i, nil
}

func (s *Instrumented) ListQueue(ctx context.Context, animalID, orgID string) ([]Interest, error) {
	ctx, span := s.tracer.Start(ctx, "adoption.ListQueue", trace.WithAttributes(
		attribute.String("animal.id", animalID),
	))
	defer span.End()

	items, err := s.inner.ListQueue(ctx, animalID, orgID)
	if err != nil {
		return nil, s.handleError(span, err, "failed to list queue", map[string]any{"animal_id": animalID})
	}
	span.SetAttributes(attribute.Int("queue.size", len(items)))
	return items, nil
}

func (s *Instrumented) Evaluate(ctx context.Context, interestID, orgID string, decision Status) (Interest, error) {
	ctx, span := s.tracer.Start(ctx, "adoption.Evaluate", trace.WithAttributes(
		attribute.String("interest.id", interestID),
		attribute.String("interest.decision", string(decision)),
	))
	defer span.End()

	i, err := s.inner.Evaluate(ctx, interestID, orgID, decision)
	if err != nil {
		return i, s.handleError(span, err, "failed to evaluate interest", map[string]any{"interest_id": interestID})
	}

	addCounter(ctx, s.metrics.evaluated, attribute.String("interest.status", string(i.Status)))
	s.log.Info("interest evaluated", map[string]any{"interest_id": i.ID, "status": string(i.Status)})
	return i, nil
}

func (s *Instrumented) ListByAdopter(ctx context.Context, adopterID string) ([]Interest, error) {
	ctx, span := s.tracer.Start(ctx, "adoption.ListByAdopter")
	defer span.End()

	items, err := s.inner.ListByAdopter(ctx, adopterID)
	if err != nil {
		return nil, s.handleError(span, err, "failed to list adopter interests", map[string]any{"adopter_id": adopterID})
	}
	span.SetAttributes(attribute.Int("interests.count", len(items)))
	return items, nil
}

func (s *Instrumented) handleError(span trace.Span, err error, msg string, fields map[string]any) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	f := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		f[k] = v
	}
	f["error"] = err.Error()

	// Errores de negocio van como warn; el resto es error real.
	if isDomainError(err) {
		s.log.Warn(msg, f)
	} else {
		s.log.Error(msg, f)
	}
	return err
}

func isDomainError(err error) bool {
	for _, target := range []error{ErrInvalidInput, ErrForbidden, ErrNotFound, ErrBadState, ErrPetUnavailable} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type serviceMetrics struct {
	registered metric.Int64Counter
	duplicate  metric.Int64Counter
	evaluated  metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	registered, _ := m.Int64Counter("adoption.interests.registered", metric.WithDescription("Interests created"))
	duplicate, _ := m.Int64Counter("adoption.interests.duplicate", metric.WithDescription("Registrations for an adopter already in queue"))
	evaluated, _ := m.Int64Counter("adoption.interests.evaluated", metric.WithDescription("Interests approved or rejected"))
	return serviceMetrics{registered: registered, duplicate: duplicate, evaluated: evaluated}
}

func addCounter(ctx context.Context, counter metric.Int64Counter, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

var _ UseCases = (*Instrumented)(nil)
