package relay

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"skillswap/backend/internal/models"
	"skillswap/backend/internal/observability"
)

// Scheduler validates session scheduling proposals before the hub
// re-broadcasts them. Proposals are ephemeral coordination signals, not chat:
// they never touch the message store, so a reconnecting client cannot recover
// them through history replay.
type Scheduler struct {
	validate *validator.Validate
	log      *zap.Logger
}

func NewScheduler(validate *validator.Validate, log *zap.Logger) *Scheduler {
	return &Scheduler{
		validate: validate,
		log:      log,
	}
}

// Accept reports whether the proposal passes relay validation. A proposal
// without a date or time is dropped silently, mirroring the chat drop policy.
func (s *Scheduler) Accept(p models.ScheduleProposal) bool {
	if err := s.validate.Struct(p); err != nil {
		observability.ValidationDrops.WithLabelValues(models.EventScheduleSession).Inc()
		s.log.Debug("dropping invalid schedule proposal",
			zap.String("match_id", p.MatchID),
			zap.Error(err))
		return false
	}
	return true
}
