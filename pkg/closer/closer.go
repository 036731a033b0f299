// Package closer собирает функции освобождения ресурсов приложения и
// закрывает их в обратном порядке регистрации при остановке.
package closer

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Func — функция освобождения одного ресурса.
type Func func(ctx context.Context) error

// Closer накапливает функции закрытия и выполняет их один раз, LIFO.
type Closer struct {
	mu    sync.Mutex
	once  sync.Once
	funcs []Func

	// forceTimeout ограничивает принудительное закрытие ресурсов,
	// не успевших закрыться до отмены контекста в Close.
	forceTimeout time.Duration
}

func NewCloser(forceTimeout time.Duration) *Closer {
	if forceTimeout == 0 {
		forceTimeout = 2 * time.Second
	}

	return &Closer{forceTimeout: forceTimeout}
}

// Add регистрирует функцию закрытия. Потокобезопасно.
func (c *Closer) Add(f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, f)
}

// Close выполняет зарегистрированные функции в обратном порядке. Повторные
// вызовы ничего не делают. Если ctx отменяется до завершения, оставшиеся
// функции запускаются параллельно с таймаутом forceTimeout.
func (c *Closer) Close(ctx context.Context) error {
	var err error

	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.mu.Unlock()

		pending, problems := c.closeInOrder(ctx, funcs)
		if len(pending) > 0 {
			problems = append(problems, c.closeForced(pending)...)
			err = fmt.Errorf(
				"shutdown interrupted, %d of %d closer(s) forced:\n%s",
				len(pending), len(funcs), strings.Join(problems, "\n"),
			)
			return
		}

		if len(problems) > 0 {
			err = fmt.Errorf("shutdown finished with error(s):\n%s", strings.Join(problems, "\n"))
		}
	})

	return err
}

// closeInOrder закрывает ресурсы по одному, LIFO. Возвращает функции,
// не запущенные из-за отмены контекста, и собранные ошибки.
func (c *Closer) closeInOrder(ctx context.Context, funcs []Func) ([]Func, []string) {
	var problems []string

	for i := len(funcs) - 1; i >= 0; i-- {
		done := make(chan error, 1)
		f := funcs[i]

		go func() {
			done <- f(ctx)
		}()

		select {
		case err := <-done:
			if err != nil {
				problems = append(problems, fmt.Sprintf("[!] %v", err))
			}
		case <-ctx.Done():
			return funcs[:i+1], problems
		}
	}

	return nil, problems
}

// closeForced параллельно добивает оставшиеся ресурсы со своим таймаутом.
func (c *Closer) closeForced(funcs []Func) []string {
	ctx, cancel := context.WithTimeout(context.Background(), c.forceTimeout)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		problems []string
	)

	for _, f := range funcs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f(ctx); err != nil {
				mu.Lock()
				problems = append(problems, fmt.Sprintf("[FORCED] %v", err))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return problems
}
