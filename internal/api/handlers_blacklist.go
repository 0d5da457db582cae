package api

import (
	"net/http"

	"github.com/pfassina/tocnav/internal/blacklist"
)

type blacklistRequest struct {
	Path   string   `json:"path"`
	List   []string `json:"list"`
	Folder bool     `json:"folder"`
}

type toggleResponse struct {
	List    []string `json:"list"`
	Outcome string   `json:"outcome"`
	Changed bool     `json:"changed"`
}

type matchResponse struct {
	Matched bool   `json:"matched"`
	Pattern string `json:"pattern,omitempty"`
}

// handleBlacklistToggle adds or removes a path (or its folder) from a
// pattern list and returns the resulting list.
func (s *Server) handleBlacklistToggle(w http.ResponseWriter, r *http.Request) {
	var req blacklistRequest
	if err := decode(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Path == "" {
		jsonError(w, "path is required", http.StatusBadRequest)
		return
	}

	toggle := blacklist.Toggle
	if req.Folder {
		toggle = blacklist.ToggleFolder
	}
	list, outcome := toggle(req.Path, req.List)
	if list == nil {
		list = req.List
	}
	if list == nil {
		list = []string{}
	}

	s.log.Debug("blacklist toggle", "path", req.Path, "outcome", outcome)
	writeJSON(w, toggleResponse{List: list, Outcome: outcome.String(), Changed: outcome.Changed()})
}

// handleBlacklistMatch reports whether a path matches any pattern.
func (s *Server) handleBlacklistMatch(w http.ResponseWriter, r *http.Request) {
	var req blacklistRequest
	if err := decode(w, r, &req); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Folder {
		jsonError(w, "folder is not valid for match", http.StatusBadRequest)
		return
	}

	p := blacklist.Matching(req.Path, req.List)
	writeJSON(w, matchResponse{Matched: p != "", Pattern: p})
}
