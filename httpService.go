package main

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/mux"
)

type statusResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
	Gear     string `json:"gear,omitempty"`
	Text     string `json:"text,omitempty"`
	Scroll   string `json:"scroll,omitempty"`
	Inverted bool   `json:"inverted"`
	Frames   int    `json:"frames"`
}

// apiHandler - the thing that handles HTTP requests
type apiHandler struct {
	rt runtimeConfig
}

func newHandler(rt runtimeConfig) *apiHandler {
	return &apiHandler{rt: rt}
}

func (m *apiHandler) router() *mux.Router {
	// text can hold '/' and dots, match it escaped and uncleaned
	r := mux.NewRouter().UseEncodedPath().SkipClean(true)
	r.HandleFunc("/api/frame", m.apiFrame).Methods("GET")
	r.HandleFunc("/api/status", m.apiStatus).Methods("GET")
	r.HandleFunc("/api/gear/{pos}", m.apiGear).Methods("PUT", "POST")
	r.HandleFunc("/api/text/{text}", m.apiText).Methods("PUT", "POST")
	r.HandleFunc("/api/text", m.apiTextBody).Methods("PUT", "POST")
	r.HandleFunc("/api/text", m.apiClearText).Methods("DELETE")
	r.HandleFunc("/api/scroll/{dir}", m.apiScroll).Methods("PUT", "POST")
	r.HandleFunc("/api/invert/{on}", m.apiInvert).Methods("PUT", "POST")
	r.HandleFunc("/api/clear", m.apiClear).Methods("PUT", "POST")
	r.HandleFunc("/", m.rootHandler)
	return r
}

func writeAnswer(w http.ResponseWriter, code int, sr statusResponse) {
	output, _ := json.Marshal(sr)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(output)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeAnswer(w, code, statusResponse{Response: "BAD", Error: err.Error()})
}

func (m *apiHandler) getStatus() statusResponse {
	_, state, count := m.rt.frames.snapshot()
	return statusResponse{
		Response: "OK",
		Gear:     string(state.gear.char()),
		Text:     state.text,
		Scroll:   state.scroll.String(),
		Inverted: state.inverted,
		Frames:   count,
	}
}

// send hands an effect to the effects loop, giving up if it is gone
func (m *apiHandler) send(w http.ResponseWriter, e displayEffect) {
	select {
	case m.rt.comms.effects <- e:
		writeAnswer(w, http.StatusOK, statusResponse{Response: "OK"})
	case <-m.rt.comms.quit:
		writeAnswer(w, http.StatusServiceUnavailable, statusResponse{Response: "BAD", Error: "shutting down"})
	}
}

func (m *apiHandler) apiFrame(w http.ResponseWriter, r *http.Request) {
	frame, _, _ := m.rt.frames.snapshot()
	body := frame.String()
	if r.URL.Query().Get("format") == "bits" {
		body = frame.Bits()
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(body))
}

func (m *apiHandler) apiStatus(w http.ResponseWriter, r *http.Request) {
	writeAnswer(w, http.StatusOK, m.getStatus())
}

func (m *apiHandler) apiGear(w http.ResponseWriter, r *http.Request) {
	g, err := parseGear(mux.Vars(r)["pos"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m.send(w, gearEffect(g))
}

func (m *apiHandler) apiText(w http.ResponseWriter, r *http.Request) {
	text, err := url.PathUnescape(mux.Vars(r)["text"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m.send(w, textEffect(text))
}

// apiTextBody takes the text as the plain request body
func (m *apiHandler) apiTextBody(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, 4096))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m.send(w, textEffect(string(body)))
}

func (m *apiHandler) apiClearText(w http.ResponseWriter, r *http.Request) {
	m.send(w, textEffect(""))
}

func (m *apiHandler) apiScroll(w http.ResponseWriter, r *http.Request) {
	d, err := parseScroll(mux.Vars(r)["dir"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m.send(w, scrollEffect(d))
}

func (m *apiHandler) apiInvert(w http.ResponseWriter, r *http.Request) {
	o, err := parseOnOff(mux.Vars(r)["on"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	m.send(w, invertEffect(o))
}

func (m *apiHandler) apiClear(w http.ResponseWriter, r *http.Request) {
	m.send(w, clearEffect())
}

func (m *apiHandler) rootHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/api/frame", http.StatusMovedPermanently)
}

type httpService struct {
	srv *http.Server
	wg  sync.WaitGroup
}

func (h *httpService) launch(handler *apiHandler, addr string) {
	h.srv = &http.Server{
		Addr:         addr,
		Handler:      handler.router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		log.Printf("starting http service on %s", addr)
		if err := h.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Print(err)
		}
		log.Print("Exiting http service")
	}()
}

func (h *httpService) stop() {
	if h.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.srv.Shutdown(ctx); err != nil {
		log.Printf("http shutdown: %s", err.Error())
	}
	h.wg.Wait()
}

func runHTTPService(rt runtimeConfig) {
	var svc httpService
	svc.launch(newHandler(rt), rt.settings.GetString(sHTTPAddr))

	<-rt.comms.quit
	log.Printf("quit from http service")
	svc.stop()
}
