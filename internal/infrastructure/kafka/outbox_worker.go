package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/petstore-backend/internal/usecase"
	"github.com/DRSN-tech/petstore-backend/pkg/e"
	"github.com/DRSN-tech/petstore-backend/pkg/jitter"
	"github.com/DRSN-tech/petstore-backend/pkg/logger"
	"github.com/jackc/pgx/v5"
)

const (
	outboxChannel   = "outbox_pending"
	outboxBatchSize = 10

	// notifyWaitTimeout периодически прерывает WaitForNotification,
	// чтобы цикл видел отмену контекста и сигнал stop
	notifyWaitTimeout = 30 * time.Second
)

// OutboxWorker перекладывает события заказов из таблицы outbox_events в Kafka.
// Накопившееся дочитывается при старте, новое подхватывается по NOTIFY.
type OutboxWorker struct {
	repo      usecase.OutboxRepository
	producer  usecase.MessageProducer
	logger    logger.Logger
	dbConnStr string

	stop chan struct{}
	wg   sync.WaitGroup
}

func NewOutboxWorker(
	repo usecase.OutboxRepository,
	logger logger.Logger,
	producer usecase.MessageProducer,
	dbConnStr string,
) *OutboxWorker {
	return &OutboxWorker{
		repo:      repo,
		producer:  producer,
		logger:    logger,
		dbConnStr: dbConnStr,
		stop:      make(chan struct{}),
	}
}

// Start запускает стартовый drain и слушателя уведомлений.
func (w *OutboxWorker) Start(ctx context.Context) {
	w.wg.Add(2)

	go func() {
		defer w.wg.Done()
		w.logger.Infof("draining pending outbox events on startup")
		w.drainOutbox(ctx)
		<-ctx.Done()
	}()

	go func() {
		defer w.wg.Done()
		w.listen(ctx)
	}()
}

// Stop останавливает воркера и дожидается завершения обеих горутин.
func (w *OutboxWorker) Stop() {
	close(w.stop)
	w.wg.Wait()
}

// listen держит отдельное LISTEN-соединение и запускает drain на каждое
// уведомление. Потерянное соединение восстанавливается с растущей паузой.
func (w *OutboxWorker) listen(ctx context.Context) {
	conn, err := w.subscribe(ctx)
	if err != nil {
		w.logger.Warnf("initial LISTEN connect failed: %v", err)
		return
	}
	defer conn.Close(ctx)

	failures := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stop:
			return
		default:
		}

		waitCtx, cancel := context.WithTimeout(ctx, notifyWaitTimeout)
		notif, err := conn.WaitForNotification(waitCtx)
		cancel()

		switch {
		case err == nil:
			if notif != nil && notif.Channel == outboxChannel {
				w.logger.Debugf("outbox notification received")
				w.drainOutbox(ctx)
			}

		case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
			continue

		default:
			w.logger.Warnf("LISTEN connection lost: %v", err)
			conn.Close(ctx)

			time.Sleep(jitter.ExponentialBackoff(2*time.Second, 30*time.Second, failures, jitter.DefaultJitter))
			if conn, err = w.subscribe(ctx); err != nil {
				failures++
				w.logger.Warnf("reconnect failed: %v", err)
				continue
			}
			failures = 0
		}
	}
}

func (w *OutboxWorker) subscribe(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, w.dbConnStr)
	if err != nil {
		return nil, e.Wrap("connect for LISTEN", err)
	}

	if _, err := conn.Exec(ctx, "LISTEN "+outboxChannel); err != nil {
		conn.Close(ctx)
		return nil, e.Wrap("LISTEN "+outboxChannel, err)
	}

	w.logger.Infof("subscribed to %q channel", outboxChannel)
	return conn, nil
}

// drainOutbox обрабатывает пачки, пока таблица не опустеет.
func (w *OutboxWorker) drainOutbox(ctx context.Context) {
	for {
		events, err := w.repo.GetAndMarkAsProcessing(ctx, outboxBatchSize)
		if err != nil {
			w.logger.Warnf("outbox batch claim failed: %v", err)
			return
		}
		if len(events) == 0 {
			return
		}

		for _, event := range events {
			// Неотправленное событие остаётся в processing;
			// строку видно по processing_started_at без processed_at
			if err := w.publish(ctx, event); err != nil {
				w.logger.Warnf("publish event %d failed: %v", event.ID, err)
				continue
			}
			if err := w.repo.MarkAsProcessed(ctx, event.ID); err != nil {
				w.logger.Warnf("mark processed failed: %v", err)
			}
		}
	}
}

func (w *OutboxWorker) publish(ctx context.Context, event *usecase.OutboxEvent) error {
	err := w.producer.WriteRawMessage(ctx, usecase.NewWriteRawMessageReq(event.OrderID, event.Payload))
	if err == nil {
		return nil
	}

	if isRetryableError(err) {
		return e.Wrap("temporary kafka failure", err)
	}
	return e.Wrap("permanent kafka failure", err)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, phrase := range []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	} {
		if strings.Contains(msg, phrase) {
			return true
		}
	}

	return false
}
