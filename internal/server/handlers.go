package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/career-recommender/internal/recommend"
)

// handleRecommend runs the recommendation pipeline for one preference query.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var query recommend.PreferenceQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	result, err := s.engine.Recommend(query)
	if err != nil {
		s.logger.Warn("recommendation failed", zap.Error(err))
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleQueryTerms exposes the expanded query and its top TF-IDF terms.
func (s *Server) handleQueryTerms(w http.ResponseWriter, r *http.Request) {
	var query recommend.PreferenceQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	explanation, err := s.engine.ExplainQuery(query)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, explanation)
}
