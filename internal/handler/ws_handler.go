package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	"github.com/fsociety/arcade-api/internal/config"
	ws "github.com/fsociety/arcade-api/internal/websocket"
)

// WSHandler обрабатывает подключения к ленте результатов
type WSHandler struct {
	hub      *ws.Hub
	cfg      config.WebSocketConfig
	upgrader gorillaws.Upgrader
}

// NewWSHandler создает новый обработчик WebSocket-подключений
func NewWSHandler(hub *ws.Hub, cfg config.WebSocketConfig) *WSHandler {
	return &WSHandler{
		hub: hub,
		cfg: cfg,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin проверяется CORS-слоем; лента read-only и не содержит
			// приватных данных
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection обрабатывает GET /ws
func (h *WSHandler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WSHandler] Ошибка апгрейда соединения: %v", err)
		return
	}

	client := ws.NewClient(
		h.hub,
		conn,
		h.cfg.ClientSendBuffer,
		time.Duration(h.cfg.PingIntervalSec)*time.Second,
		time.Duration(h.cfg.PongWaitSec)*time.Second,
	)

	go client.WritePump()
	go client.ReadPump()
}
