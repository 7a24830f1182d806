package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/promanage/promanage-api/internal/api/shared"
	"github.com/promanage/promanage-api/internal/domain"
	"github.com/promanage/promanage-api/internal/platform/logger"
	"github.com/promanage/promanage-api/internal/service/board"
)

// CardHandler handles card-related HTTP requests.
type CardHandler struct {
	boardService *board.Service
	logger       *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(boardService *board.Service, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &CardHandler{
		boardService: boardService,
		logger:       logger.With(slog.String("component", "card_handler")),
	}
}

// CreateCard handles POST /task/newTask requests.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req CardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	params, err := cardParamsFromRequest(req)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.boardService.CreateCard(r.Context(), params); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	// Acknowledgment only; the created card body is not part of the contract.
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task created successfully!!",
	})
}

// ListCards handles GET /task/allTasks/{ownerId}?filter= requests, returning
// the owner's cards created within the named window.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := parseUUIDParam(w, r, "ownerId")
	if !ok {
		return
	}

	filter := r.URL.Query().Get("filter")

	cards, err := h.boardService.ListByOwnerAndWindow(r.Context(), ownerID, filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataResponse{Data: cards})
}

// ToggleChecklistItem handles PUT /task/cards/{cardId}/tasks/{taskId}
// requests, setting the checked flag of a single checklist item.
func (h *CardHandler) ToggleChecklistItem(w http.ResponseWriter, r *http.Request) {
	cardID, ok := parseUUIDParam(w, r, "cardId")
	if !ok {
		return
	}
	itemID, ok := parseUUIDParam(w, r, "taskId")
	if !ok {
		return
	}

	var req ToggleChecklistItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	card, err := h.boardService.ToggleChecklistItem(r.Context(), cardID, itemID, *req.Checked)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataResponse{Data: card})
}

// SetState handles PUT /task/tasks/{taskId} requests, moving a card to
// another board column.
func (h *CardHandler) SetState(w http.ResponseWriter, r *http.Request) {
	cardID, ok := parseUUIDParam(w, r, "taskId")
	if !ok {
		return
	}

	var req SetStateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	card, err := h.boardService.SetState(r.Context(), cardID, domain.CardState(req.State))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataResponse{Data: card})
}

// EditCard handles PUT /task/edit/{id} requests, replacing all mutable
// fields of a card. An edit on an unknown id still acknowledges success;
// see board.Service.EditCard.
func (h *CardHandler) EditCard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	var req CardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	params, err := cardParamsFromRequest(req)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.boardService.EditCard(r.Context(), cardID, params); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Card details Updated successfully!!",
	})
}

// DeleteCard handles DELETE /task/delete/{id} requests.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := parseUUIDParam(w, r, "id")
	if !ok {
		return
	}

	card, err := h.boardService.DeleteCard(r.Context(), cardID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteCardResponse{
		Message:     "Card deleted successfully",
		DeletedCard: card,
	})
}

// GetCard handles GET /task/board/card/{cardId} requests.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	cardID, ok := parseUUIDParam(w, r, "cardId")
	if !ok {
		return
	}

	card, err := h.boardService.GetCard(r.Context(), cardID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DataResponse{Data: card})
}

// GetCounts handles GET /task/counts/{ownerId} requests, returning the
// aggregate state/priority/due-date counts for an owner's cards.
func (h *CardHandler) GetCounts(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := parseUUIDParam(w, r, "ownerId")
	if !ok {
		return
	}

	counts, err := h.boardService.CountsByOwner(r.Context(), ownerID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, counts)
}

// parseUUIDParam extracts and parses a UUID path parameter, responding with
// 400 (and returning false) when it is missing or malformed.
func parseUUIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	log := logger.FromContext(r.Context())

	raw := chi.URLParam(r, name)
	if raw == "" {
		log.Warn("path parameter missing", slog.String("param", name))
		shared.RespondWithError(w, r, http.StatusBadRequest, fmt.Sprintf("%s is required", name))
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		log.Warn("invalid path parameter", slog.String("param", name), slog.String("value", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid %s format", name))
		return uuid.Nil, false
	}

	return id, true
}

// cardParamsFromRequest converts a validated CardRequest into service
// parameters, parsing the owner and any checklist item IDs.
func cardParamsFromRequest(req CardRequest) (board.CreateCardParams, error) {
	ownerID, err := uuid.Parse(req.Owner)
	if err != nil {
		return board.CreateCardParams{}, errors.New("invalid owner format")
	}

	checklist := make([]domain.ChecklistItem, len(req.Checklist))
	for i, item := range req.Checklist {
		var itemID uuid.UUID
		if item.ID != "" {
			itemID, err = uuid.Parse(item.ID)
			if err != nil {
				return board.CreateCardParams{}, errors.New("invalid checklist item id format")
			}
		}
		checklist[i] = domain.ChecklistItem{
			ID:          itemID,
			Description: item.Description,
			Checked:     item.Checked,
		}
	}

	var createdAt time.Time
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	return board.CreateCardParams{
		OwnerID:   ownerID,
		Title:     req.Title,
		Priority:  req.Priority,
		State:     domain.CardState(req.State),
		DueDate:   req.DueDate,
		CreatedAt: createdAt,
		Checklist: checklist,
	}, nil
}
