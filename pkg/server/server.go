package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heathcliff26/brewbook/pkg/config"
	"github.com/heathcliff26/brewbook/pkg/webhook"
	"github.com/heathcliff26/simple-fileserver/pkg/middleware"
)

// Upper limit for webhook bodies, storyblok payloads are only a few hundred bytes
const maxBodySize = 1 << 20

var (
	responseOK               = map[string]any{"ok": true}
	responseInvalidSignature = map[string]any{"error": "Invalid signature"}
)

type Server struct {
	addr     string
	ssl      config.SSLConfig
	verifier *webhook.Verifier
}

func NewServer(cfgServer config.ServerConfig, verifier *webhook.Verifier) *Server {
	return &Server{
		addr:     ":" + strconv.Itoa(cfgServer.Port),
		ssl:      cfgServer.SSL,
		verifier: verifier,
	}
}

// Handle incoming storyblok webhook events.
// Every rejection gets the same response, the reason is only logged.
// URL: POST /webhooks/storyblok
func (s *Server) webhookHandler(res http.ResponseWriter, req *http.Request) {
	ip := clientIP(req)

	signature := req.Header.Get(webhook.SignatureHeader)
	if signature == "" {
		slog.Warn("Missing signature attempt", slog.String("ip", ip))
		writeJSON(res, http.StatusBadRequest, responseInvalidSignature)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(res, req.Body, maxBodySize))
	if err != nil {
		slog.Warn("Failed to read request body", slog.String("ip", ip), slog.String("err", err.Error()))
		writeJSON(res, http.StatusBadRequest, responseInvalidSignature)
		return
	}

	err = s.verifier.Check(body, signature)
	if err != nil {
		slog.Warn("Invalid signature attempt", slog.String("ip", ip), slog.String("reason", err.Error()))
		writeJSON(res, http.StatusBadRequest, responseInvalidSignature)
		return
	}

	// The signature is valid at this point, a bad payload only costs us the event type in the logs
	event, err := webhook.ParseEvent(body)
	if err != nil {
		slog.Warn("Verified webhook has an unreadable payload", slog.String("ip", ip), slog.String("err", err.Error()))
	}

	slog.Info("Webhook verified",
		slog.String("ip", ip),
		slog.String("event", event.Type()),
		slog.Int64("story", event.StoryID),
		slog.String("slug", event.FullSlug),
	)
	writeJSON(res, http.StatusOK, responseOK)
}

// Report that the service is running
// URL: GET /
func (s *Server) handleRoot(rw http.ResponseWriter, _ *http.Request) {
	writeJSON(rw, http.StatusOK, map[string]string{"message": "Brewbook Webhook Service is running"})
}

// Return a health status of the server
// URL: GET /health
func (s *Server) handleHealthCheck(rw http.ResponseWriter, _ *http.Request) {
	writeJSON(rw, http.StatusOK, map[string]string{"status": "healthy", "service": "brewbook-webhook"})
}

// Create the router with all routes of the server
func (s *Server) Handler() http.Handler {
	router := http.NewServeMux()
	router.HandleFunc("POST /webhooks/storyblok", s.webhookHandler)
	router.HandleFunc("GET /health", s.handleHealthCheck)
	router.HandleFunc("GET /{$}", s.handleRoot)

	return middleware.Logging(router)
}

// Starts the server and exits with error if that fails
func (s *Server) Run() error {
	server := http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	var err error
	if s.ssl.Enabled {
		slog.Info("Starting server", slog.String("addr", s.addr), slog.String("sslKey", s.ssl.Key), slog.String("sslCert", s.ssl.Cert))
		err = server.ListenAndServeTLS(s.ssl.Cert, s.ssl.Key)
	} else {
		slog.Info("Starting server", slog.String("addr", s.addr))
		err = server.ListenAndServe()
	}

	// This just means the server was closed after running
	if errors.Is(err, http.ErrServerClosed) {
		slog.Info("Server closed, exiting")
		return nil
	}
	return fmt.Errorf("failed to start server: %w", err)
}

func writeJSON(rw http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal response", slog.String("err", err.Error()))
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_, err = rw.Write(body)
	if err != nil {
		slog.Error("Failed to write response", slog.String("err", err.Error()))
	}
}
