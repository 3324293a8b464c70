package relay

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"skillswap/backend/internal/models"
	"skillswap/backend/internal/observability"
	"skillswap/backend/internal/storage"
)

// InboundMessage is a chat message received on a connection, pending
// validation and broadcast.
type InboundMessage struct {
	Client  Client
	Message models.Message
}

// InboundProposal is a session scheduling proposal received on a connection.
type InboundProposal struct {
	Client   Client
	Proposal models.ScheduleProposal
}

// Hub is the dispatch core of the relay. It ties the connection registry, the
// message store, and outbound delivery together: connections register and
// unregister through it, and every accepted event is fanned out to the match's
// connection set.
//
// All events flow through a single Run loop, so mutation of per-match state is
// serialized and every connection in a match observes the same message order:
// the relay's arrival order, regardless of client-supplied timestamps.
type Hub struct {
	registry  *Registry
	store     storage.Store
	scheduler *Scheduler
	validate  *validator.Validate
	log       *zap.Logger

	RegisterCh   chan Client
	UnregisterCh chan Client
	MessageCh    chan InboundMessage
	ScheduleCh   chan InboundProposal
}

func NewHub(registry *Registry, store storage.Store, log *zap.Logger) *Hub {
	validate := validator.New()
	return &Hub{
		registry:  registry,
		store:     store,
		scheduler: NewScheduler(validate, log),
		validate:  validate,
		log:       log,

		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		MessageCh:    make(chan InboundMessage),
		ScheduleCh:   make(chan InboundProposal),
	}
}

// Run consumes relay events until ctx is cancelled, then closes every
// remaining connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.registry.CloseAll()
			return
		case c := <-h.RegisterCh:
			h.handleRegister(c)
		case c := <-h.UnregisterCh:
			h.handleUnregister(c)
		case in := <-h.MessageCh:
			h.handleMessage(in)
		case in := <-h.ScheduleCh:
			h.handleSchedule(in)
		}
	}
}

// handleRegister admits the connection and replays the match history to it.
// History goes to the new connection only; peers already hold it.
func (h *Hub) handleRegister(c Client) {
	if err := h.registry.Admit(c); err != nil {
		h.log.Warn("admission rejected",
			zap.String("match_id", c.GetMatchID()),
			zap.String("user_id", c.GetUserID()),
			zap.Error(err))
		c.Close()
		return
	}

	observability.ActiveConnections.Inc()

	c.TrySend(models.OutboundEvent{
		Event: models.EventPreviousMessages,
		Data:  h.store.History(c.GetMatchID()),
	})

	h.log.Info("connected",
		zap.String("match_id", c.GetMatchID()),
		zap.String("user_id", c.GetUserID()))
}

// handleUnregister removes the connection. When the match's connection set
// empties, the stored history goes with it: nothing survives the last
// participant leaving. Peers are not notified of the departure.
func (h *Hub) handleUnregister(c Client) {
	removed, empty := h.registry.Remove(c)
	if !removed {
		return
	}

	observability.ActiveConnections.Dec()
	if empty {
		h.store.Drop(c.GetMatchID())
	}
	c.Close()

	h.log.Info("disconnected",
		zap.String("match_id", c.GetMatchID()),
		zap.String("user_id", c.GetUserID()))
}

// handleMessage validates, stores, and broadcasts a chat message. Invalid
// messages are dropped silently: nothing is stored, nothing is forwarded, and
// the sender is not told.
func (h *Hub) handleMessage(in InboundMessage) {
	msg := in.Message
	if err := h.validate.Struct(msg); err != nil {
		observability.ValidationDrops.WithLabelValues(models.EventSendMessage).Inc()
		h.log.Debug("dropping invalid message",
			zap.String("match_id", in.Client.GetMatchID()),
			zap.Error(err))
		return
	}

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	matchID := in.Client.GetMatchID()
	h.store.Append(matchID, msg)
	h.broadcast(matchID, models.OutboundEvent{
		Event: models.EventMessage,
		Data:  msg,
	})
	observability.MessagesRelayed.Inc()
}

// handleSchedule re-broadcasts an accepted scheduling proposal to the
// connection's match. Proposals bypass the message store entirely.
func (h *Hub) handleSchedule(in InboundProposal) {
	if !h.scheduler.Accept(in.Proposal) {
		return
	}

	h.broadcast(in.Client.GetMatchID(), models.OutboundEvent{
		Event: models.EventSessionScheduled,
		Data:  in.Proposal,
	})
	observability.ScheduleProposals.Inc()
}

// broadcast fans an event out to every connection in the match, sender
// included, so clients render relay-confirmed state instead of trusting their
// own optimistic copy. A connection whose send queue overflows is dropped
// rather than allowed to stall the match.
func (h *Hub) broadcast(matchID string, ev models.OutboundEvent) {
	for _, c := range h.registry.Connections(matchID) {
		if !c.TrySend(ev) {
			h.log.Warn("send queue overflow, dropping connection",
				zap.String("match_id", matchID),
				zap.String("user_id", c.GetUserID()))
			h.handleUnregister(c)
		}
	}
}
