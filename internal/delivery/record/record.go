package record

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"kifu_vault/internal/adapters"
	"kifu_vault/internal/bootstrap"
	recordDomain "kifu_vault/internal/domain/record"
	"kifu_vault/internal/domain/sgf"
	ownErrors "kifu_vault/internal/errors"
	"kifu_vault/internal/httpresponse"
	repo "kifu_vault/internal/repository"
	recorduc "kifu_vault/internal/usecase/record"
	sessionuc "kifu_vault/internal/usecase/session"
	"kifu_vault/internal/utils"
)

const sessionCookie = "session_key"

type RecordHandler struct {
	cfg       bootstrap.Config
	log       *zap.SugaredLogger
	recordUC  *recorduc.RecordUseCase
	sessionUC *sessionuc.SessionUseCase
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func NewRecordHandler(cfg bootstrap.Config, log *zap.SugaredLogger, mongoAdapter *adapters.AdapterMongo, redisAdapter *adapters.AdapterRedis) *RecordHandler {
	recordRepo := repo.NewRecordRepository(cfg, log, redisAdapter.GetClient(), mongoAdapter.Database)
	sessionRepo := repo.NewSessionRepository(redisAdapter.GetClient())

	return &RecordHandler{
		cfg:       cfg,
		log:       log,
		recordUC:  recorduc.NewRecordUseCase(recordRepo, sessionRepo),
		sessionUC: sessionuc.NewSessionUseCase(sessionRepo),
	}
}

func newRecordHandlerWith(cfg bootstrap.Config, log *zap.SugaredLogger, recordUC *recorduc.RecordUseCase, sessionUC *sessionuc.SessionUseCase) *RecordHandler {
	return &RecordHandler{cfg: cfg, log: log, recordUC: recordUC, sessionUC: sessionUC}
}

func (h *RecordHandler) Router(r chi.Router) {
	r.Post("/records", h.HandleUpload)
	r.Get("/records", h.HandleList)
	r.Get("/records/selected", h.HandleSelected)
	r.Get("/records/{id}", h.HandleGet)
	r.Delete("/records/{id}", h.HandleDelete)
	r.Get("/records/{id}/sgf", h.HandleGetSGF)
	r.Post("/records/{id}/select", h.HandleSelect)
	r.Get("/records/{id}/pdf", h.HandleExportPDF)
	r.Get("/records/{id}/replay", h.HandleReplay)
}

// ensureSession reads the session cookie, validates it against redis and
// sets a fresh cookie when needed.
func (h *RecordHandler) ensureSession(w http.ResponseWriter, r *http.Request) (string, error) {
	existing := ""
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		existing = cookie.Value
	}

	sessionKey, created, err := h.sessionUC.Ensure(r.Context(), existing)
	if err != nil {
		return "", err
	}
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sessionKey,
			Path:     "/",
			HttpOnly: true,
		})
	}
	return sessionKey, nil
}

// writeError maps domain errors to statuses: parse-taxonomy errors are the
// client's bad file (400), a missing record is 404, the rest is 500.
func (h *RecordHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case isParseError(err):
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
	case errors.Is(err, ownErrors.ErrRecordNotFound), errors.Is(err, ownErrors.ErrNoSelectedRecord):
		httpresponse.WriteResponseWithStatus(w, http.StatusNotFound,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
	default:
		h.log.Error(err)
		httpresponse.WriteInternalErrorResponse(w)
	}
}

func isParseError(err error) bool {
	var lexErr *sgf.LexError
	var synErr *sgf.SyntaxError
	var coordErr *sgf.CoordinateError
	var sizeErr *sgf.InvalidSizeError
	var ambErr *sgf.AmbiguousMoveError
	return errors.As(err, &lexErr) || errors.As(err, &synErr) ||
		errors.As(err, &coordErr) || errors.As(err, &sizeErr) ||
		errors.As(err, &ambErr) || errors.Is(err, sgf.ErrMultipleGames)
}

func (h *RecordHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	sessionKey, err := h.ensureSession(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req recordDomain.UploadRequest
	if err = utils.DecodeJSONRequest(r, &req); err != nil {
		h.log.Error("JSON decode error:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: err.Error()})
		return
	}
	if req.SGF == "" {
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: "sgf text is required"})
		return
	}

	rec, err := h.recordUC.Upload(r.Context(), sessionKey, req.Filename, req.SGF)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.log.Infof("uploaded %q as record %s (%d moves)", rec.Filename, rec.ID, len(rec.Game.Moves))
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, recordDomain.UploadResponse{Record: rec.Summary()})
}

func (h *RecordHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sessionKey, err := h.ensureSession(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	summaries, err := h.recordUC.List(r.Context(), sessionKey, page)
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, recordDomain.ListResponse{Records: summaries, Page: page})
}

func (h *RecordHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sessionKey, err := h.ensureSession(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	rec, err := h.recordUC.Get(r.Context(), sessionKey, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, rec)
}

func (h *RecordHandler) HandleGetSGF(w http.ResponseWriter, r *http.Request) {
	sessionKey, err := h.ensureSession(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	text, err := h.recordUC.GetSGF(r.Context(), sessionKey, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-go-sgf")
	_, _ = w.Write([]byte(text))
}

func (h *RecordHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	sessionKey, err := h.ensureSession(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err = h.recordUC.Delete(r.Context(), sessionKey, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}

func (h *RecordHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	sessionKey, err := h.ensureSession(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err = h.recordUC.Select(r.Context(), sessionKey, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, nil)
}

func (h *RecordHandler) HandleSelected(w http.ResponseWriter, r *http.Request) {
	sessionKey, err := h.ensureSession(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	rec, err := h.recordUC.Selected(r.Context(), sessionKey)
	if err != nil {
		h.writeError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, rec)
}

func (h *RecordHandler) HandleExportPDF(w http.ResponseWriter, r *http.Request) {
	sessionKey, err := h.ensureSession(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	pdfBytes, err := h.recordUC.ExportPDF(r.Context(), sessionKey, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	_, _ = w.Write(pdfBytes)
}

type replayFrame struct {
	Move *sgf.Move `json:"move,omitempty"`
	Done bool      `json:"done,omitempty"`
}

// HandleReplay streams the canonical line over a websocket: each client
// "next" message is answered with one move, then with a done frame. The
// board viewer steps through a game with this.
func (h *RecordHandler) HandleReplay(w http.ResponseWriter, r *http.Request) {
	sessionKey, err := h.ensureSession(w, r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	rec, err := h.recordUC.Get(r.Context(), sessionKey, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("websocket upgrade failed:", err)
		return
	}
	defer conn.Close()

	next := 0
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if string(msg) != "next" {
			continue
		}

		var frame replayFrame
		if next < len(rec.Game.Moves) {
			frame.Move = &rec.Game.Moves[next]
			next++
		} else {
			frame.Done = true
		}

		payload, err := json.Marshal(frame)
		if err != nil {
			h.log.Error("failed to marshal replay frame:", err)
			return
		}
		if err = conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
		if frame.Done {
			return
		}
	}
}
