package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/matt-g-everett/drawtx/stream"
)

// A FrameSource supplies the latest frame to serve.
type FrameSource interface {
	LastFrame() *stream.Frame
}

// Api serves the client pages and the current frame over HTTP.
type Api struct {
	frames FrameSource
	mux    *http.ServeMux
}

// NewApi creates an Api serving frames from source.
func NewApi(source FrameSource) *Api {
	a := new(Api)
	a.frames = source
	a.mux = http.NewServeMux()
	a.mux.Handle("/", http.FileServer(http.Dir("client/dist")))
	a.mux.HandleFunc("/frame", a.serveFrame)
	return a
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}

func (a *Api) serveFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	f := a.frames.LastFrame()
	if f == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(f); err != nil {
		log.Println(err)
	}
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) {
	log.Printf("Listening on %s...", addr)
	if err := http.ListenAndServe(addr, a); err != nil {
		log.Println(err)
	}
}
