// Package broadcaster drains the trade outbox onto a Kafka topic.
// Delivery is at least once: a record is marked SENT before the
// publish and ACKED only after the broker accepted it, so a crash
// between the two replays the trade on the next scan.
package broadcaster

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"mimir/infra/outbox"
)

// Publisher abstracts the Kafka client behind the feed.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
	Close() error
}

type Broadcaster struct {
	ob       *outbox.Outbox
	pub      Publisher
	interval time.Duration
	log      *zap.Logger
}

func New(ob *outbox.Outbox, pub Publisher, interval time.Duration, log *zap.Logger) *Broadcaster {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &Broadcaster{
		ob:       ob,
		pub:      pub,
		interval: interval,
		log:      log,
	}
}

// Run scans the outbox until ctx is cancelled.
func (b *Broadcaster) Run(ctx context.Context) {
	b.log.Info("broadcaster started", zap.Duration("interval", b.interval))

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.drainOnce(ctx)
		}
	}
}

func (b *Broadcaster) drainOnce(ctx context.Context) {
	err := b.ob.ScanPending(func(seq uint64, rec outbox.Record) error {
		if err := b.ob.MarkSent(seq); err != nil {
			return err
		}

		key := []byte(strconv.FormatUint(seq, 10))
		if err := b.pub.Publish(ctx, key, rec.Payload); err != nil {
			b.log.Warn("publish failed, will retry",
				zap.Uint64("seq", seq), zap.Error(err))
			return nil // retry on the next scan
		}

		return b.ob.MarkAcked(seq)
	})
	if err != nil {
		b.log.Error("outbox scan failed", zap.Error(err))
	}
}
