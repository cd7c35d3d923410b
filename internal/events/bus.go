package events

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

// DefaultCapacity размер кольцевого буфера последних событий
const DefaultCapacity = 100

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Bus процессный pub/sub доменных событий с буфером последних событий.
// Буфер не переживает рестарт и не согласован между инстансами
type Bus struct {
	mu sync.RWMutex

	ring  []domain.Event
	start int
	size  int

	nextID      int64
	nextSubID   int
	subscribers map[int]chan domain.Event
	hooks       []func(domain.Event)

	now    func() time.Time
	logger Logger
}

// NewBus создает шину с буфером на capacity событий
func NewBus(capacity int, logger Logger) *Bus {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Bus{
		ring:        make([]domain.Event, capacity),
		subscribers: make(map[int]chan domain.Event),
		now:         time.Now,
		logger:      logger,
	}
}

// Publish сохраняет событие в буфер и рассылает подписчикам.
// Медленный подписчик с заполненным каналом пропускает событие, издатель не блокируется
func (b *Bus) Publish(eventType string, payload map[string]interface{}) {
	b.mu.Lock()
	b.nextID++
	event := domain.Event{
		ID:        b.nextID,
		Type:      eventType,
		Payload:   payload,
		CreatedAt: b.now().UTC(),
	}
	b.push(event)

	subs := make(map[int]chan domain.Event, len(b.subscribers))
	for id, ch := range b.subscribers {
		subs[id] = ch
	}
	hooks := b.hooks
	b.mu.Unlock()

	for _, hook := range hooks {
		hook(event)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range subs {
		if _, alive := b.subscribers[id]; !alive {
			continue
		}
		select {
		case ch <- event:
		default:
			b.logger.Warn("events: subscriber %d is slow, dropped %s id=%d", id, event.Type, event.ID)
		}
	}
}

// Subscribe регистрирует подписчика. Возвращаемая функция отписывает и закрывает канал
func (b *Bus) Subscribe(buffer int) (<-chan domain.Event, func()) {
	ch := make(chan domain.Event, buffer)

	b.mu.Lock()
	b.nextSubID++
	id := b.nextSubID
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			close(ch)
			b.mu.Unlock()
		})
	}
}

// OnPublish регистрирует синхронный обработчик, вызываемый для каждого события
func (b *Bus) OnPublish(hook func(domain.Event)) {
	b.mu.Lock()
	b.hooks = append(b.hooks, hook)
	b.mu.Unlock()
}

// Recent возвращает до limit последних событий, от старых к новым
func (b *Bus) Recent(limit int) []domain.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if limit <= 0 || limit > b.size {
		limit = b.size
	}

	result := make([]domain.Event, 0, limit)
	for i := b.size - limit; i < b.size; i++ {
		result = append(result, b.ring[(b.start+i)%len(b.ring)])
	}
	return result
}

// push кладёт событие в кольцо, вытесняя самое старое. Вызывается под mu
func (b *Bus) push(event domain.Event) {
	if b.size < len(b.ring) {
		b.ring[(b.start+b.size)%len(b.ring)] = event
		b.size++
		return
	}
	b.ring[b.start] = event
	b.start = (b.start + 1) % len(b.ring)
}
