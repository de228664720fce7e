package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/plmkit/notifier/internal/api/dto"
	"github.com/plmkit/notifier/internal/api/respond"
	"github.com/plmkit/notifier/internal/dispatcher"
	"github.com/plmkit/notifier/internal/model"
	"github.com/plmkit/notifier/internal/recipient"
	repo "github.com/plmkit/notifier/internal/repository/delivery"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/delivery/mock.go -package=mocks

type dispatchService interface {
	Dispatch(ctx context.Context, req dispatcher.Request) (dispatcher.Result, error)
	RecordStatus(ctx context.Context, id uuid.UUID) (model.DeliveryStatus, error)
}

type deliveryReader interface {
	ListRecordsByAlert(ctx context.Context, alertID string) ([]model.DeliveryRecord, error)
	ListInbox(ctx context.Context, userID int64) ([]model.InboxNotification, error)
	MarkInboxRead(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	service   dispatchService
	reader    deliveryReader
	validator *validator.Validate
}

func NewHandler(s dispatchService, r deliveryReader, v *validator.Validate) *Handler {
	return &Handler{service: s, reader: r, validator: v}
}

// Send dispatches an alert to an explicit recipient list.
func (h *Handler) Send(c *ginext.Context) {
	var req dto.SendRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	result, err := h.service.Dispatch(c.Request.Context(), dispatcher.Request{
		AlertID:    req.AlertID,
		Recipients: req.Recipients,
		Channels:   toChannels(req.Channels),
		Category:   req.Category,
		Title:      req.Title,
		Content:    req.Content,
		Severity:   req.Severity,
		Link:       req.Link,
		Metadata:   req.Metadata,
		Card:       req.Card,
		Force:      req.Force,
		Inline:     req.Inline,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("alert_id", req.AlertID).Msg("failed to dispatch alert")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, result)
}

// Broadcast dispatches an alert to a rule-based audience.
func (h *Handler) Broadcast(c *ginext.Context) {
	var req dto.BroadcastRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	result, err := h.service.Dispatch(c.Request.Context(), dispatcher.Request{
		AlertID: req.AlertID,
		Rule: &recipient.Rule{
			OwnerID:   req.Rule.OwnerID,
			HandlerID: req.Rule.HandlerID,
			ExtraIDs:  req.Rule.ExtraIDs,
			Channels:  toChannels(req.Rule.Channels),
		},
		Category: req.Category,
		Title:    req.Title,
		Content:  req.Content,
		Severity: req.Severity,
		Link:     req.Link,
		Metadata: req.Metadata,
		Card:     req.Card,
		Force:    req.Force,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("alert_id", req.AlertID).Msg("failed to broadcast alert")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, result)
}

// GetStatus returns one delivery record's status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	status, err := h.service.RecordStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("delivery record not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get delivery status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

// ListByAlert returns the delivery audit trail for one alert.
func (h *Handler) ListByAlert(c *ginext.Context) {
	alertID := c.Param("alertID")
	if alertID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing alert id"))
		return
	}

	records, err := h.reader.ListRecordsByAlert(c.Request.Context(), alertID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("alert_id", alertID).Msg("failed to list delivery records")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, records)
}

// Inbox returns a user's in-app notifications.
func (h *Handler) Inbox(c *ginext.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return
	}

	items, err := h.reader.ListInbox(c.Request.Context(), userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Int64("user_id", userID).Msg("failed to list inbox")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, items)
}

// MarkRead flags one inbox notification as read.
func (h *Handler) MarkRead(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.reader.MarkInboxRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification read")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "notification marked read")
}

func (h *Handler) parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("idStr", idStr).Msg("invalid id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

func toChannels(names []string) []model.Channel {
	out := make([]model.Channel, 0, len(names))
	for _, n := range names {
		out = append(out, model.Channel(n))
	}
	return out
}
