package worker

import (
	"context"
	"sync"
	"time"

	"github.com/tdnguyen27/StudyPet_Go/internal/logger"
)

// DefaultResetCheckInterval is how often the worker re-checks the reset
// boundaries after the initial check at startup.
const DefaultResetCheckInterval = time.Minute

// QuestService defines the interface for the quest operations the worker needs
type QuestService interface {
	CheckResets(ctx context.Context) error
}

// QuestResetWorker checks the daily and weekly quest reset boundaries once at
// startup and once per interval thereafter. Checks run as jobs on the shared
// pool so a slow persistence layer never blocks the ticker.
type QuestResetWorker struct {
	questService QuestService
	pool         *Pool
	interval     time.Duration
	shutdown     chan struct{}
	wg           sync.WaitGroup
	once         sync.Once
}

// resetCheckJob is the pool job wrapping one boundary check.
type resetCheckJob struct {
	questService QuestService
}

func (j resetCheckJob) Process(ctx context.Context) error {
	logger.FromContext(ctx).Debug(LogMsgResetCheckStarting)
	return j.questService.CheckResets(ctx)
}

// NewQuestResetWorker creates a new QuestResetWorker
func NewQuestResetWorker(questService QuestService, pool *Pool, interval time.Duration) *QuestResetWorker {
	if interval <= 0 {
		interval = DefaultResetCheckInterval
	}
	return &QuestResetWorker{
		questService: questService,
		pool:         pool,
		interval:     interval,
		shutdown:     make(chan struct{}),
	}
}

// Start runs one immediate check, then ticks until shutdown.
func (w *QuestResetWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		log := logger.FromContext(ctx)
		log.Info(LogMsgResetWorkerStarted, "interval", w.interval)

		w.check(ctx)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.check(ctx)
			case <-w.shutdown:
				return
			}
		}
	}()
}

func (w *QuestResetWorker) check(ctx context.Context) {
	job := resetCheckJob{questService: w.questService}
	if w.pool != nil {
		w.pool.Enqueue(job)
		return
	}
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgResetCheckFailed, "error", err)
	}
}

// Shutdown stops the ticker loop and waits for an in-flight check to finish.
func (w *QuestResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	w.once.Do(func() { close(w.shutdown) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgResetWorkerStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgResetWorkerTimeout)
		return ctx.Err()
	}
}
