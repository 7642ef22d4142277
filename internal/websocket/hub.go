package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/fsociety/arcade-api/internal/domain/entity"
)

// Типы сообщений ленты
const (
	MessageTypeScoreRecorded = "score_recorded"
	MessageTypePing          = "ping"
	MessageTypePong          = "pong"
)

// Message — сообщение ленты результатов
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Hub хранит множество подключённых клиентов дашборда и рассылает им
// события о новых результатах
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message

	mu   sync.RWMutex
	done chan struct{}
}

// NewHub создает новый хаб ленты результатов
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		done:       make(chan struct{}),
	}
}

// Run запускает основной цикл хаба
func (h *Hub) Run() {
	log.Println("[WSHub] Лента результатов запущена")
	for {
		select {
		case <-h.done:
			log.Println("[WSHub] Лента результатов остановлена")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("[WSHub] Клиент подключён: %s", client.id)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("[WSHub] Клиент отключён: %s", client.id)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Stop останавливает хаб
func (h *Hub) Stop() {
	close(h.done)
}

// broadcastMessage рассылает сообщение всем подключённым клиентам.
// Клиент с переполненным буфером пропускается, а не блокирует рассылку.
func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("[WSHub] Ошибка сериализации сообщения: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Printf("[WSHub] Буфер клиента %s переполнен, сообщение пропущено", client.id)
		}
	}
}

// BroadcastScore отправляет событие о новом результате в ленту
func (h *Hub) BroadcastScore(score *entity.GameScore) {
	message := &Message{
		Type:      MessageTypeScoreRecorded,
		Data:      score,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- message:
	default:
		log.Println("[WSHub] Канал рассылки переполнен, сообщение отброшено")
	}
}

// ConnectionCount возвращает количество подключённых клиентов
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
