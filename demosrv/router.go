package demosrv

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// Router builds the demo API route set. Exported so tests can mount it on an
// httptest server without a live listener.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	r.HandleFunc("/api/users", s.listUsers).Methods("GET")
	r.HandleFunc("/api/users", s.createUser).Methods("POST")
	r.HandleFunc("/api/users/{id}", s.getUser).Methods("GET")
	r.HandleFunc("/api/users/{id}", s.updateUser).Methods("PUT")
	r.HandleFunc("/api/users/{id}", s.deleteUser).Methods("DELETE")
	r.HandleFunc("/api/upload", s.upload).Methods("POST")
	r.HandleFunc("/api/error/{kind}", s.fail).Methods("GET")

	return r
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("demosrv: request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
