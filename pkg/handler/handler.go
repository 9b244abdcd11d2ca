package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/patmatch/patmatch/pkg/glob"
	"github.com/patmatch/patmatch/pkg/rules"
)

type Configuration = struct {
	Debug bool
	Rules *rules.RuleSet
}

type HandlerState struct {
	Configuration
	logger Logger
}

func NewHandler(config Configuration) HandlerState {
	return HandlerState{
		Configuration: config,
		logger:        NewLogger(config.Debug),
	}
}

type matchRequest = struct {
	Path    string `json:"path"`
	Pattern string `json:"pattern"`
}

type matchResponse = struct {
	Match bool `json:"match"`
}

func (state HandlerState) AttachRoutes(router chi.Router) {
	router.Get("/match", state.matchQuery)
	router.Post("/match", state.matchBody)

	if state.Rules != nil {
		router.Post("/rules/match", state.rulesMatch)
	}
}

func (state HandlerState) matchQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	state.respondMatch(w, r, query.Get("path"), query.Get("pattern"))
}

func (state HandlerState) matchBody(w http.ResponseWriter, r *http.Request) {
	var request matchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		state.sendError(w, r, http.StatusBadRequest)
		return
	}

	state.respondMatch(w, r, request.Path, request.Pattern)
}

func (state HandlerState) respondMatch(w http.ResponseWriter, r *http.Request, path string, pattern string) {
	state.logger.Debug("match", path, pattern)

	hit, err := glob.MatchString(path, pattern, glob.Options{Debug: state.Debug})
	if err != nil {
		state.sendError(w, r, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, matchResponse{Match: hit})
}

func (state HandlerState) rulesMatch(w http.ResponseWriter, r *http.Request) {
	var request matchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		state.sendError(w, r, http.StatusBadRequest)
		return
	}

	state.logger.Debug("rules match", request.Path)

	hit, err := state.Rules.Match(request.Path)
	if err != nil {
		state.sendError(w, r, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, matchResponse{Match: hit})
}

func (state HandlerState) sendError(w http.ResponseWriter, r *http.Request, statusCode int) {
	type errorBodyType = struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	type errorInfo = struct {
		Error errorBodyType `json:"error"`
	}

	errorBody := errorBodyType{}
	switch statusCode {
	case http.StatusBadRequest:
		errorBody.Code = "bad_request"
		errorBody.Message = "Bad request"
	case http.StatusNotFound:
		errorBody.Code = "not_found"
		errorBody.Message = "The requested path could not be found"
	case http.StatusInternalServerError:
		errorBody.Code = "internal_server_error"
		errorBody.Message = "A server error has occurred"
	}

	writeJSON(w, statusCode, errorInfo{errorBody})
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Fatal(err)
	}
}
