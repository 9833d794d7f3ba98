package utils

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// ShutdownManager координирует остановку приложения: по SIGINT/SIGTERM
// отменяет свой контекст и прогоняет зарегистрированные задачи в порядке,
// обратном регистрации (сервер раньше хранилища).
type ShutdownManager struct {
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	tasks  []func(context.Context) error
}

func NewShutdownManager(parent context.Context) *ShutdownManager {
	ctx, cancel := context.WithCancel(parent)
	return &ShutdownManager{ctx: ctx, cancel: cancel}
}

// Context отменяется при получении сигнала; запросы, унаследовавшие его,
// узнают об остановке.
func (sm *ShutdownManager) Context() context.Context {
	return sm.ctx
}

func (sm *ShutdownManager) Register(task func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.tasks = append(sm.tasks, task)
}

func (sm *ShutdownManager) StartListening() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Получен сигнал %v, останавливаемся", sig)
		sm.cancel()

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		sm.runTasks(ctx)

		log.Println("Остановка завершена")
		os.Exit(0)
	}()
}

func (sm *ShutdownManager) runTasks(ctx context.Context) {
	sm.mu.Lock()
	tasks := make([]func(context.Context) error, len(sm.tasks))
	copy(tasks, sm.tasks)
	sm.mu.Unlock()

	for i := len(tasks) - 1; i >= 0; i-- {
		if err := tasks[i](ctx); err != nil {
			log.Printf("Ошибка при остановке: %v", err)
		}
	}
}
