// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package server exposes a list holder over HTTP.
//
// Routes, rooted at /list:
//
//	GET    /list                                   help page
//	GET    /list/create                            create the list (idempotent)
//	GET    /list/read                              pop the tail element
//	POST   /list/update/{element}                  push element
//	POST   /list/insert/{element}/after/{after}    insert element after pivot
//	DELETE /list/delete                            destroy the list
//	GET    /healthz                                liveness
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"code.hybscloud.com/lfl"
	"code.hybscloud.com/lfl/holder"
	"code.hybscloud.com/lfl/logger"
)

// Store is the list façade served over HTTP.
type Store interface {
	Create() bool
	Destroy() bool
	Push(element string) error
	Pop() (string, error)
	InsertAfter(element, after string) (bool, error)
}

var _ Store = (*holder.Holder[string])(nil)

const (
	codeNotPresent = "list_not_present"
	codeInternal   = "internal_error"
)

// Server routes HTTP requests to a Store.
type Server struct {
	store  Store
	logger logger.Logger
	mux    *http.ServeMux
}

// New returns a Server for store.
func New(store Store, l logger.Logger) *Server {
	s := &Server{
		store:  store,
		logger: l,
		mux:    http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /list", s.intro)
	s.mux.HandleFunc("GET /list/create", s.create)
	s.mux.HandleFunc("GET /list/read", s.read)
	s.mux.HandleFunc("POST /list/update/{element}", s.update)
	s.mux.HandleFunc("POST /list/insert/{element}/after/{after}", s.insert)
	s.mux.HandleFunc("DELETE /list/delete", s.delete)
	s.mux.HandleFunc("GET /healthz", s.healthz)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Handler wraps s with CORS and panic recovery.
func Handler(s *Server, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})
	return PanicRecoveryHandler(c.Handler(s), s.logger)
}

type elementResponse struct {
	Element *string `json:"element"`
}

type resultResponse struct {
	Result bool `json:"result"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	created := s.store.Create()
	s.logger.DebugWithContext(r.Context(), "create", zap.Bool("installed", created))
	s.writeJSON(w, r, http.StatusOK, true)
}

func (s *Server) read(w http.ResponseWriter, r *http.Request) {
	v, err := s.store.Pop()
	switch {
	case err == nil:
		s.writeJSON(w, r, http.StatusOK, elementResponse{Element: &v})
	case lfl.IsWouldBlock(err):
		s.writeJSON(w, r, http.StatusOK, elementResponse{})
	default:
		s.writeError(w, r, err)
	}
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Push(r.PathValue("element")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, resultResponse{Result: true})
}

func (s *Server) insert(w http.ResponseWriter, r *http.Request) {
	ok, err := s.store.InsertAfter(r.PathValue("element"), r.PathValue("after"))
	if err != nil && !lfl.IsWouldBlock(err) {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, resultResponse{Result: ok})
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	destroyed := s.store.Destroy()
	s.logger.DebugWithContext(r.Context(), "delete", zap.Bool("destroyed", destroyed))
	s.writeJSON(w, r, http.StatusOK, true)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "SERVING"})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, holder.ErrNotPresent) {
		s.writeJSON(w, r, http.StatusNotFound, errorResponse{
			Code:    codeNotPresent,
			Message: "no list exists; create one with GET /list/create",
		})
		return
	}
	s.logger.ErrorWithContext(r.Context(), "list operation failed",
		zap.String("path", r.URL.Path), zap.Error(err))
	s.writeJSON(w, r, http.StatusInternalServerError, errorResponse{
		Code:    codeInternal,
		Message: err.Error(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WarnWithContext(r.Context(), "failed to write response", zap.Error(err))
	}
}
