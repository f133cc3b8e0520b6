package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cours-de-latin/greeknames"
)

const maxBodyBytes = 1 << 20

// ---- JSON response types ------------------------------------------------

type healthResponse struct {
	Status string `json:"status"`
}

type correctResponse struct {
	*greeknames.Result
	Output string `json:"output"`
}

type batchResponse struct {
	Results []correctResponse `json:"results,omitempty"`
	Records []map[string]any  `json:"records,omitempty"`
}

type inflectResponse struct {
	Name string          `json:"name"`
	Case greeknames.Case `json:"case"`
	Form string          `json:"form"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- request types ------------------------------------------------------

type correctRequest struct {
	Name    string              `json:"name"`
	Options *greeknames.Options `json:"options"`
}

type batchRequest struct {
	Names   []string            `json:"names"`
	Records []map[string]any    `json:"records"`
	Options *greeknames.Options `json:"options"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func newCorrectResponse(res *greeknames.Result) correctResponse {
	return correctResponse{Result: res, Output: res.Output()}
}

// decodeBody decodes a JSON body into v, rejecting unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// queryFlags maps boolean query parameters to option fields.
func queryFlags(opts *greeknames.Options) map[string]*bool {
	return map[string]*bool{
		"genitive":          &opts.ConvertToGenitive,
		"preserve_original": &opts.PreserveOriginal,
		"split":             &opts.SplitNames,
		"gender":            &opts.DetectGender,
		"diminutive":        &opts.DetectDiminutive,
		"tonotics":          &opts.NormalizeTonotics,
		"diacritics":        &opts.HandleDiacritics,
		"strict":            &opts.StrictMode,
		"spaces":            &opts.RemoveExtraSpaces,
		"particles":         &opts.HandleParticles,
		"titles":            &opts.HandleTitles,
		"suggest":           &opts.SuggestCorrections,
		"katharevousa":      &opts.RecognizeKatharevousa,
		"database_safe":     &opts.DatabaseSafe,
		"sort_key":          &opts.GenerateSortKey,
		"slug":              &opts.GenerateSlug,
		"statistics":        &opts.Statistics,
		"general_title":     &opts.AddGeneralTitle,
		"accents":           &opts.AddAccents,
	}
}

// optionsFromQuery starts from the default options and applies every
// parameter present in q.
func optionsFromQuery(q url.Values) (greeknames.Options, error) {
	opts := greeknames.DefaultOptions()
	if v := q.Get("case"); v != "" {
		c, err := greeknames.ParseCase(v)
		if err != nil {
			return opts, err
		}
		opts.ConvertToCase = c
	}
	if v := q.Get("transliterate"); v != "" {
		m, err := greeknames.ParseTranslitMode(v)
		if err != nil {
			return opts, err
		}
		opts.Transliterate = m
	}
	for name, field := range queryFlags(&opts) {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid %q parameter %q", name, v)
		}
		*field = b
	}
	return opts, nil
}

// ---- handlers -----------------------------------------------------------

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (s *Server) handleCorrectQuery(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing 'name' query parameter")
		return
	}
	opts, err := optionsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.correct(w, name, opts)
}

func (s *Server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	defaults := greeknames.DefaultOptions()
	body := correctRequest{Options: &defaults}
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Options == nil {
		body.Options = &defaults
	}
	s.correct(w, body.Name, *body.Options)
}

func (s *Server) correct(w http.ResponseWriter, name string, opts greeknames.Options) {
	res, err := s.corrector.Process(name, opts)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, newCorrectResponse(res))
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	defaults := greeknames.DefaultOptions()
	body := batchRequest{Options: &defaults}
	if err := decodeBody(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(body.Names) == 0 && len(body.Records) == 0 {
		writeError(w, http.StatusBadRequest, "body must contain 'names' or 'records'")
		return
	}
	if body.Options == nil {
		body.Options = &defaults
	}
	opts := *body.Options

	var resp batchResponse
	if len(body.Names) > 0 {
		results, err := s.corrector.ProcessAll(r.Context(), body.Names, opts, s.workers)
		if err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
		resp.Results = make([]correctResponse, 0, len(results))
		for _, res := range results {
			resp.Results = append(resp.Results, newCorrectResponse(res))
		}
	}
	if len(body.Records) > 0 {
		resp.Records = make([]map[string]any, 0, len(body.Records))
		for _, rec := range body.Records {
			resp.Records = append(resp.Records, s.corrector.ProcessRecord(rec, opts))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleInflect(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing 'name' query parameter")
		return
	}
	c, err := greeknames.ParseCase(q.Get("case"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts := greeknames.CaseOptions{HandleParticles: true}
	if v := q.Get("particles"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid 'particles' parameter %q", v))
			return
		}
		opts.HandleParticles = b
	}
	writeJSON(w, http.StatusOK, inflectResponse{
		Name: name,
		Case: c,
		Form: s.corrector.Inflect(name, c, opts),
	})
}

func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "case")
	c, err := greeknames.ParseCase(key)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	table := s.corrector.Rules(c)
	if table == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("no rule table loaded for %s", c))
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, greeknames.ErrEmptyName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
