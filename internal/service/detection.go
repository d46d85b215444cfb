package service

import (
	"context"
	"time"

	"botshield/internal/detector"
	"botshield/internal/matcher"
	"botshield/internal/model"
	"botshield/internal/mq"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DetectionService ingests finalized client detection sessions. The
// submitted signals are re-scored server-side with the same rule table
// rather than trusting the client's verdict; the client score is kept
// for drift comparison.
type DetectionService struct {
	scorer     *detector.Scorer
	mysqlRepo  MySQLRepositoryInterface
	redisRepo  RedisRepositoryInterface
	mqProducer mq.ProducerInterface
	known      []model.BotPattern
}

// NewDetectionService creates a new Detection Service. mqProducer may
// be nil, in which case events persist inline.
func NewDetectionService(
	scorer *detector.Scorer,
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	mqProducer mq.ProducerInterface,
	known []model.BotPattern,
) *DetectionService {
	return &DetectionService{
		scorer:     scorer,
		mysqlRepo:  mysqlRepo,
		redisRepo:  redisRepo,
		mqProducer: mqProducer,
		known:      known,
	}
}

// Ingest scores a classification payload and hands the event off for
// persistence. Delivery is fire-and-forget: persistence failures are
// logged, never retried, and never fail the call.
func (s *DetectionService) Ingest(ctx context.Context, req *model.LogVisitRequest) (*model.LogVisitResponse, error) {
	observedAt := time.UnixMilli(req.Timestamp).UTC()
	if req.Timestamp <= 0 {
		observedAt = time.Now().UTC()
	}

	result := s.replay(req)

	botName := ""
	if p, ok := matcher.Match(req.UserAgent, s.known); ok {
		botName = p.Name
	}

	event := &model.DetectionEvent{
		EventID:     uuid.NewString(),
		UserAgent:   req.UserAgent,
		Referrer:    req.Referrer,
		URL:         req.URL,
		BotName:     botName,
		IsBot:       result.IsBot,
		Score:       result.Score,
		ClientScore: req.BotScore,
		ObservedAt:  observedAt,
	}

	// A catalogued crawler reporting in feeds the aggregator like any
	// observed, non-blocked hit
	if botName != "" {
		day := observedAt.Format("2006-01-02")
		if err := s.mysqlRepo.IncrementDailyCount(ctx, botName, day, false); err != nil {
			log.Error().Err(err).Str("bot", botName).Msg("Failed to count classified visit")
		} else if s.redisRepo != nil {
			if err := s.redisRepo.IncrementLive(ctx, botName, day, false); err != nil {
				log.Warn().Err(err).Str("bot", botName).Msg("Failed to update live counter")
			}
		}
	}

	s.persist(ctx, event)

	return &model.LogVisitResponse{
		Success: true,
		IsBot:   result.IsBot,
		Score:   result.Score,
		EventID: event.EventID,
	}, nil
}

// replay runs the payload through a detection session so ingestion
// exercises the exact lifecycle a live session has: bounded pointer
// window, accumulated sub-scores, one finalize.
func (s *DetectionService) replay(req *model.LogVisitRequest) detector.Result {
	var result detector.Result

	session := detector.NewSession(s.scorer, detector.InitialSignals{
		UserAgent: req.UserAgent,
		Referrer:  req.Referrer,
		URL:       req.URL,
		StartedAt: time.UnixMilli(req.Timestamp).UTC(),
	}, 0, func(_ detector.InitialSignals, r detector.Result) {
		result = r
	})

	session.SetFeatures(req.Features)
	session.SetFingerprint(req.Fingerprint)
	for _, p := range req.Behavior.PointerSamples {
		session.RecordPointer(p)
	}
	for i := 0; i < req.Behavior.InteractionEvents; i++ {
		session.RecordInteraction()
	}
	if req.Behavior.ScrollPercentage > 0 {
		session.RecordScroll(req.Behavior.ScrollPercentage, req.Behavior.ScrollPercentage)
	}
	for i := 0; i < req.Behavior.ScrollDirectionChanges; i++ {
		session.RecordScroll(float64(i+1), req.Behavior.ScrollPercentage)
	}
	for i := 0; i < req.Honeypot; i++ {
		session.RecordHoneypot()
	}

	session.Finalize()
	return result
}

// persist hands the event to the MQ pipeline when configured, falling
// back to a direct write.
func (s *DetectionService) persist(ctx context.Context, event *model.DetectionEvent) {
	if s.mqProducer != nil {
		msg := &mq.DetectionEventMessage{
			EventID:     event.EventID,
			UserAgent:   event.UserAgent,
			Referrer:    event.Referrer,
			URL:         event.URL,
			BotName:     event.BotName,
			IsBot:       event.IsBot,
			Score:       event.Score,
			ClientScore: event.ClientScore,
			ObservedAt:  event.ObservedAt,
		}
		if err := s.mqProducer.SendDetectionEvent(ctx, msg); err != nil {
			log.Error().Err(err).Str("event_id", event.EventID).Msg("Failed to send detection event to MQ")
		}
		return
	}

	if err := s.mysqlRepo.SaveDetectionEvent(ctx, event); err != nil {
		log.Error().Err(err).Str("event_id", event.EventID).Msg("Failed to save detection event")
	}
}

// RecentEvents lists the latest persisted detection events
func (s *DetectionService) RecentEvents(ctx context.Context, limit int) ([]model.DetectionEvent, error) {
	return s.mysqlRepo.GetRecentEvents(ctx, limit)
}
