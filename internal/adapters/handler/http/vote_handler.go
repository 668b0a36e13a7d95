package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/vncsmyrnk/awards/internal/core/domain"
	"github.com/vncsmyrnk/awards/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
	logger  *slog.Logger
}

func NewVoteHandler(service ports.VoteService, logger *slog.Logger) *VoteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VoteHandler{
		service: service,
		logger:  logger,
	}
}

// maxVoteBodyBytes bounds the request body; a vote carries two ids.
const maxVoteBodyBytes = 4 << 10

type voteRequest struct {
	CategoryID string
	NomineeID  string
	// nonStringID is set when an id is present but not a JSON string.
	// Such an id can never name a nominee or category.
	nonStringID bool
}

// SubmitVote godoc
// @Summary      Casts the authenticated user's vote in a category
// @Description  Records one vote per user, category and edition. A repeated vote answers 409 with status `already_voted`.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400
// @Failure      401
// @Failure      409
// @Router       /vote [post]
func (h *VoteHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	voterID, ok := VoterID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	req, err := decodeVoteRequest(http.MaxBytesReader(w, r.Body, maxVoteBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgMalformedBody)
		return
	}

	if req.nonStringID && req.CategoryID != "" && req.NomineeID != "" {
		writeError(w, http.StatusBadRequest, msgInvalidNomineeOrCategory)
		return
	}

	input := ports.SubmitVoteInput{
		VoterID:    voterID,
		CategoryID: req.CategoryID,
		NomineeID:  req.NomineeID,
	}

	if _, err := h.service.SubmitVote(r.Context(), input); err != nil {
		h.writeServiceError(w, r, input, err)
		return
	}

	writeJSON(w, http.StatusOK, acceptedResponse{OK: true})
}

func (h *VoteHandler) writeServiceError(w http.ResponseWriter, r *http.Request, input ports.SubmitVoteInput, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		writeError(w, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, domain.ErrInvalidNomineeOrCategory):
		writeError(w, http.StatusBadRequest, msgInvalidNomineeOrCategory)
	case errors.Is(err, domain.ErrCategoryNotFound):
		writeError(w, http.StatusBadRequest, msgCategoryNotFound)
	case errors.Is(err, domain.ErrMissingEdition):
		h.logger.WarnContext(r.Context(), "category without edition", "category_id", input.CategoryID)
		writeError(w, http.StatusBadRequest, msgMissingEdition)
	case errors.Is(err, domain.ErrAlreadyVoted):
		writeJSON(w, http.StatusConflict, alreadyVotedResponse{
			Status:  statusAlreadyVoted,
			Message: msgAlreadyVoted,
		})
	default:
		h.logger.ErrorContext(r.Context(), "POST /vote error",
			"error", err,
			"request_id", middleware.GetReqID(r.Context()),
			"category_id", input.CategoryID,
			"nominee_id", input.NomineeID,
		)
		message := msgStorageFallback
		var storageErr *domain.StorageError
		if errors.As(err, &storageErr) && storageErr.Message != "" {
			message = storageErr.Message
		}
		writeError(w, http.StatusBadRequest, message)
	}
}

// decodeVoteRequest accepts exactly one JSON value. Values other than an
// object, and ids that are null, false, 0 or "", leave the matching field
// empty so the request is reported as missing fields.
func decodeVoteRequest(body io.Reader) (voteRequest, error) {
	var raw any
	dec := json.NewDecoder(body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return voteRequest{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return voteRequest{}, errors.New("unexpected data after request body")
	}

	var req voteRequest
	fields, ok := raw.(map[string]any)
	if !ok {
		return req, nil
	}

	var categoryIsString, nomineeIsString bool
	req.CategoryID, categoryIsString = idField(fields["categoryId"])
	req.NomineeID, nomineeIsString = idField(fields["nomineeId"])
	req.nonStringID = !categoryIsString || !nomineeIsString
	return req, nil
}

// idField returns the id carried by v and whether v was a JSON string.
// A non-string value yields a placeholder when it is truthy and "" otherwise.
func idField(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case nil:
		return "", false
	case bool:
		if !v {
			return "", false
		}
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return "", false
		}
	}
	return fmt.Sprint(v), false
}
