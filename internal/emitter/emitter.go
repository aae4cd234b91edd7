package emitter

import (
	"context"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"slot_client/internal/model"
)

// Handler — обработчик события презентационного слоя
type Handler func(ctx context.Context, event model.EmitterEvent) error

// Emitter — типизированная шина событий между интерпретатором книги и презентацией.
// Подписчиков на один тип события может быть несколько
type Emitter struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[model.EmitterEventType]map[int]Handler
}

func New() *Emitter {
	return &Emitter{
		handlers: make(map[model.EmitterEventType]map[int]Handler),
	}
}

// Subscribe регистрирует обработчик и возвращает функцию отписки
func (e *Emitter) Subscribe(eventType model.EmitterEventType, handler Handler) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.handlers[eventType] == nil {
		e.handlers[eventType] = make(map[int]Handler)
	}
	id := e.nextID
	e.nextID++
	e.handlers[eventType][id] = handler

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.handlers[eventType], id)
	}
}

// Broadcast — синхронная рассылка без ожидания. Ошибка или паника одного
// обработчика не мешает остальным, порядок вызова не гарантируется
func (e *Emitter) Broadcast(event model.EmitterEvent) {
	for _, handler := range e.snapshot(event.Type) {
		if err := e.invoke(context.Background(), handler, event); err != nil {
			log.Printf("[emitter] handler error on %s: %v", event.Type, err)
		}
	}
}

// BroadcastAsync рассылает событие всем обработчикам параллельно и ждет
// завершения самого медленного. Возвращает первую ошибку обработчика,
// но дожидается всех
func (e *Emitter) BroadcastAsync(ctx context.Context, event model.EmitterEvent) error {
	handlers := e.snapshot(event.Type)
	if len(handlers) == 0 {
		return nil
	}

	g := new(errgroup.Group)
	for _, handler := range handlers {
		handler := handler
		g.Go(func() error {
			return e.invoke(ctx, handler, event)
		})
	}
	return g.Wait()
}

// snapshot копирует список обработчиков, чтобы отписка во время рассылки
// не ломала итерацию
func (e *Emitter) snapshot(eventType model.EmitterEventType) []Handler {
	e.mu.RLock()
	defer e.mu.RUnlock()

	handlers := make([]Handler, 0, len(e.handlers[eventType]))
	for _, h := range e.handlers[eventType] {
		handlers = append(handlers, h)
	}
	return handlers
}

// invoke изолирует панику обработчика, превращая ее в ошибку
func (e *Emitter) invoke(ctx context.Context, handler Handler, event model.EmitterEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic on %s: %v", event.Type, r)
		}
	}()
	return handler(ctx, event)
}
