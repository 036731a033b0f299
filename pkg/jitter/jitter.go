// Package jitter размывает интервалы повторов случайной добавкой, чтобы
// переподключающиеся воркеры не били по зависимостям синхронно.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — коэффициент разброса по умолчанию (до +50% к интервалу)
const DefaultJitter = 0.5

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Duration добавляет к d случайную долю в диапазоне [0, factor*d].
func Duration(d time.Duration, factor float64) time.Duration {
	rngMu.Lock()
	defer rngMu.Unlock()
	return d + time.Duration(rng.Float64()*factor*float64(d))
}

// DurationWithSeed — вариант Duration с внешним генератором;
// нужен тестам, которым важна воспроизводимость.
func DurationWithSeed(d time.Duration, factor float64, r *rand.Rand) time.Duration {
	return d + time.Duration(r.Float64()*factor*float64(d))
}

// ExponentialBackoff считает интервал для attempt-й попытки (с нуля):
// base удваивается на каждую попытку, ограничивается max и размывается
// джиттером с коэффициентом factor.
func ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	d := base
	for ; attempt > 0 && d < max; attempt-- {
		d *= 2
	}
	if d > max {
		d = max
	}
	return Duration(d, factor)
}
