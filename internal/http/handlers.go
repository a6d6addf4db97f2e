package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

func (s *Server) handleGreet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	currency := r.PathValue("currency")

	var in core.EntryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, detailBody{Detail: "invalid request body"})
		return
	}

	key, err := s.svc.CreateEntry(r.Context(), uid, currency, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key})
}

// balanceResponse carries totals as JSON numbers, the way the API has
// always reported them.
type balanceResponse struct {
	NetBalance float64 `json:"net_balance"`
	TotalIn    float64 `json:"total_in"`
	TotalOut   float64 `json:"total_out"`
}

func (s *Server) handleAccountData(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	balance, found, err := s.svc.AccountData(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !found {
		writeNotFound(w, msgNoAccountData)
		return
	}
	writeJSON(w, http.StatusOK, balanceResponse{
		NetBalance: balance.NetBalance.InexactFloat64(),
		TotalIn:    balance.TotalIn.InexactFloat64(),
		TotalOut:   balance.TotalOut.InexactFloat64(),
	})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	entries, found, err := s.svc.Logs(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !found {
		writeNotFound(w, msgNoLogs)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleFilteredLogs(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	filtertype := r.PathValue("filtertype")
	label := r.PathValue("label")

	entries, found, err := s.svc.FilteredLogs(r.Context(), uid, filtertype, label)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !found {
		writeNotFound(w, msgNoLogs)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleReportDownload(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	var payload struct {
		Data []core.Entry `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, detailBody{Detail: "invalid request body"})
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", uid))
	w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
	if err := core.WriteReport(w, payload.Data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to write report", "uid", uid, "error", err)
	}
}

func (s *Server) handleSetGoal(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, detailBody{Detail: "invalid request body"})
		return
	}
	doc := make(store.Document, len(raw))
	for k, v := range raw {
		doc[k] = stringValue(v)
	}

	key, err := s.svc.SetGoal(r.Context(), uid, core.GoalFromDocument("", doc))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"key": key})
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	goals, found, err := s.svc.Goals(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !found {
		writeNotFound(w, msgNoGoals)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleRemoveGoal(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	key := r.PathValue("key")

	if err := s.svc.RemoveGoal(r.Context(), uid, key); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleBookmark(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	key := r.PathValue("key")

	if err := s.svc.ToggleBookmark(r.Context(), uid, key); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// stringValue renders a decoded JSON value as the flat string the store
// holds.
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case float64:
		return trimFloat(val)
	case bool:
		if val {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", val)
	}
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
