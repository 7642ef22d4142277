package websocket

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// writeWait — максимальное время записи одного сообщения
	writeWait = 10 * time.Second

	// maxMessageSize — лимит входящего сообщения (лента read-only, клиенты
	// шлют только ping)
	maxMessageSize = 512
)

// Client — одно WebSocket-подключение дашборда
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	pingInterval time.Duration
	pongWait     time.Duration
}

// NewClient создает клиента и регистрирует его в хабе
func NewClient(hub *Hub, conn *websocket.Conn, sendBuffer int, pingInterval, pongWait time.Duration) *Client {
	if sendBuffer <= 0 {
		sendBuffer = 64
	}
	client := &Client{
		id:           uuid.New().String(),
		hub:          hub,
		conn:         conn,
		send:         make(chan []byte, sendBuffer),
		pingInterval: pingInterval,
		pongWait:     pongWait,
	}
	hub.register <- client
	return client
}

// ReadPump читает входящие сообщения. Лента односторонняя, поэтому
// входящие данные только поддерживают соединение (pong-дедлайны).
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WSClient] Неожиданное закрытие %s: %v", c.id, err)
			}
			return
		}
	}
}

// WritePump пишет сообщения из буфера клиента и шлет периодические пинги
func (c *Client) WritePump() {
	ticker := time.NewTicker(c.pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Хаб закрыл канал
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
