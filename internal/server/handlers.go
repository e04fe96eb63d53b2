package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tusklore/tuskbot/internal/domain"
	"github.com/tusklore/tuskbot/internal/logger"
)

type dailyRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	GuildID  string `json:"guild_id"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req dailyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" || req.GuildID == "" {
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return
	}

	result, err := s.boarService.Daily(ctx, req.UserID, req.Username, req.GuildID)
	if err != nil {
		if errors.Is(err, domain.ErrUserBanned) {
			http.Error(w, domain.ErrMsgUserBanned, http.StatusForbidden)
			return
		}
		log.Error("Daily draw failed", "error", err, "user_id", req.UserID)
		http.Error(w, ErrMsgInternal, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := s.store.LoadBoards(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to load leaderboards", "error", err)
		http.Error(w, ErrMsgInternal, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	metric := chi.URLParam(r, "metric")

	boards, err := s.store.LoadBoards(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to load leaderboards", "error", err)
		http.Error(w, ErrMsgInternal, http.StatusInternalServerError)
		return
	}

	board, ok := boards[metric]
	if !ok {
		http.Error(w, "unknown metric", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (s *Server) handleGetMarket(w http.ResponseWriter, r *http.Request) {
	market, err := s.store.LoadPowerups(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to load market", "error", err)
		http.Error(w, ErrMsgInternal, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, market)
}

func (s *Server) handleGetQuests(w http.ResponseWriter, r *http.Request) {
	quests, err := s.store.ReconcileQuests(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to load quests", "error", err)
		http.Error(w, ErrMsgInternal, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, quests)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set(HeaderContentType, HeaderValueJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
