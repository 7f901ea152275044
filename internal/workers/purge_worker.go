package workers

import (
	"context"
	"time"

	"github.com/ndanilkin/go-vault-server/internal/logger"
	"github.com/ndanilkin/go-vault-server/internal/service"
)

// purgeWorker periodically removes device-approval requests that sat pending
// past their TTL. Stale rows carry a polling access code, so leaving them
// around extends the window for guessing it.
type purgeWorker struct {
	requests service.AuthRequestService
	interval time.Duration

	stop chan struct{}
	done chan struct{}

	logger *logger.Logger
}

func newPurgeWorker(requests service.AuthRequestService, interval time.Duration, logger *logger.Logger) *purgeWorker {
	return &purgeWorker{
		requests: requests,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

func (p *purgeWorker) Run() {
	p.logger.Info().Dur("interval", p.interval).Msg("auth request purge worker started")
	go p.loop()
}

func (p *purgeWorker) Stop() {
	close(p.stop)
	<-p.done
	p.logger.Info().Msg("auth request purge worker stopped")
}

func (p *purgeWorker) loop() {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.sweep()
		}
	}
}

func (p *purgeWorker) sweep() {
	removed, err := p.requests.PurgeExpiredAuthRequests(context.Background())
	if err != nil {
		p.logger.Error().Err(err).Msg("auth request purge failed")
		return
	}
	if removed > 0 {
		p.logger.Info().Int64("removed", removed).Msg("expired auth requests purged")
	}
}
