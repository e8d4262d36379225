package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// Handler upgrades viewers and serves the gateway's HTTP routes
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a handler. An empty allowedOrigins accepts any origin.
func NewHandler(hub *Hub, allowedOrigins []string, logger *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

// Routes configures the gateway routes
func (h *Handler) Routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/ws/auctions/{id}", h.HandleWebSocket).Methods(http.MethodGet)
	router.HandleFunc("/stats/auctions/{id}", h.GetStats).Methods(http.MethodGet)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)
	return router
}

// HandleWebSocket joins the viewer to the auction room
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	auctionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid auction id", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.Debug("Websocket upgrade failed", "error", err)
		return
	}

	client := newClient(auctionID, conn)
	if err := h.hub.Join(r.Context(), client); err != nil {
		h.logger.Error("Failed to join auction feed", "auction_id", auctionID, "error", err)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "feed unavailable"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(func() { h.hub.Leave(client) })
}

// GetStats reports the auction's viewer count on this instance
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	auctionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid auction id", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"auction_id": auctionID,
		"viewers":    h.hub.Viewers(auctionID),
	})
}

func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return slices.Contains(allowed, u.Scheme+"://"+u.Host)
	}
}
