package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/alexisbeaulieu97/twmerge/pkg/classnames"
	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

type classesRequest struct {
	Classes []string `json:"classes"`
}

type mergeResponse struct {
	Result string `json:"result"`
}

type classifyResponse struct {
	Token  string         `json:"token"`
	Group  twmerge.Group  `json:"group,omitempty"`
	Reason twmerge.Reason `json:"reason,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeClasses(w, r)
	if !ok {
		return
	}
	result := classnames.NewJoiner(s.opts.Merger).Cn(req.Classes)
	writeJSON(w, http.StatusOK, mergeResponse{Result: result})
}

func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeClasses(w, r)
	if !ok {
		return
	}
	trace := s.opts.Merger.Explain(classnames.Tokens(req.Classes))
	if trace.Decisions == nil {
		trace.Decisions = []twmerge.Decision{}
	}
	writeJSON(w, http.StatusOK, trace)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("token")
	if strings.TrimSpace(raw) == "" {
		writeError(w, http.StatusBadRequest, "missing token query parameter")
		return
	}

	token, reason := twmerge.Validate(raw)
	if reason != twmerge.ReasonNone {
		writeJSON(w, http.StatusOK, classifyResponse{Token: token, Reason: reason})
		return
	}
	group, _ := s.opts.Merger.Classify(token)
	writeJSON(w, http.StatusOK, classifyResponse{Token: token, Group: group})
}

func (s *Server) decodeClasses(w http.ResponseWriter, r *http.Request) (classesRequest, bool) {
	var req classesRequest
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return req, false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
