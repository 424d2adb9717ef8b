package fireworks

import "net/http"

// routes registers every endpoint on the mux. Method-qualified patterns
// make the mux reject other verbs with 405 on its own.
func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc(http.MethodGet+" /fireworks", s.handleFireworks)
	mux.HandleFunc(http.MethodGet+" /fireworks/demo", s.handleDemo)
	mux.HandleFunc(http.MethodGet+" /healthz", s.handleHealthz)
}
