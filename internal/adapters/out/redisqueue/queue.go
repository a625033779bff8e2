// Package redisqueue implements the delayed notification queue on Redis.
//
// Layout per queue prefix:
//   - <prefix>:scheduled  sorted set, member = order id, score = eligibility
//     time in UnixNano. Equal delays keep FIFO order through the monotonic
//     score.
//   - <prefix>:job:<id>   JSON payload of the job. The key doubles as the
//     per-order dedup guard: SETNX fails while a job is outstanding.
//   - <prefix>:active     set of order ids currently held by a worker.
//
// A job is claimed by removing its member from the scheduled set; ZREM
// returns the number of removed members, so of several competing workers
// exactly one observes 1 and owns the job. Delivery is at-least-once: a
// worker crash between claim and terminal call leaves the job parked in the
// active set until an operator intervenes.
package redisqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"parcelhub/internal/core/domain/model/notification"
	"parcelhub/internal/core/ports"
)

const defaultPrefix = "notifications"

// Queue implements ports.NotificationQueue on a Redis client.
// Safe for concurrent use; multiple instances may drain the same prefix.
type Queue struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// Option configures a Queue.
type Option func(*Queue)

// WithPrefix overrides the key prefix, isolating queues that share a Redis.
func WithPrefix(prefix string) Option {
	return func(q *Queue) {
		q.prefix = prefix
	}
}

// WithClock overrides the time source. Used by tests to control eligibility.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		q.now = now
	}
}

// NewQueue creates a queue on the given Redis client.
func NewQueue(client *redis.Client, opts ...Option) *Queue {
	q := &Queue{
		client: client,
		prefix: defaultPrefix,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

func (q *Queue) scheduledKey() string {
	return q.prefix + ":scheduled"
}

func (q *Queue) activeKey() string {
	return q.prefix + ":active"
}

func (q *Queue) jobKey(orderID string) string {
	return q.prefix + ":job:" + orderID
}

// Enqueue schedules the job to become due after delay. The job payload key
// is created with SETNX; an existing key means a job for the same order is
// still outstanding and the enqueue is rejected with ports.ErrDuplicateJob.
func (q *Queue) Enqueue(ctx context.Context, job *notification.Job, delay time.Duration) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}

	orderID := job.OrderID.String()
	created, err := q.client.SetNX(ctx, q.jobKey(orderID), payload, 0).Result()
	if err != nil {
		return unavailable(err)
	}
	if !created {
		return ports.ErrDuplicateJob
	}

	eligibleAt := q.now().Add(delay).UnixNano()
	err = q.client.ZAdd(ctx, q.scheduledKey(), redis.Z{
		Score:  float64(eligibleAt),
		Member: orderID,
	}).Err()
	if err != nil {
		// release the dedup slot so the enqueue can be retried
		q.client.Del(ctx, q.jobKey(orderID))
		return unavailable(err)
	}

	return nil
}

// Due claims up to limit eligible jobs in eligibility order. Claiming races
// are settled by ZREM: the caller that removes the member owns the job.
func (q *Queue) Due(ctx context.Context, limit int) ([]*notification.Job, error) {
	if limit <= 0 {
		return nil, nil
	}

	now := strconv.FormatInt(q.now().UnixNano(), 10)
	members, err := q.client.ZRangeByScore(ctx, q.scheduledKey(), &redis.ZRangeBy{
		Min:   "-inf",
		Max:   now,
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, unavailable(err)
	}

	jobs := make([]*notification.Job, 0, len(members))
	for _, orderID := range members {
		removed, zremErr := q.client.ZRem(ctx, q.scheduledKey(), orderID).Result()
		if zremErr != nil {
			return jobs, unavailable(zremErr)
		}
		if removed == 0 {
			// another worker claimed it first
			continue
		}

		job, loadErr := q.loadJob(ctx, orderID)
		if loadErr != nil {
			return jobs, loadErr
		}

		if saddErr := q.client.SAdd(ctx, q.activeKey(), orderID).Err(); saddErr != nil {
			return jobs, unavailable(saddErr)
		}

		jobs = append(jobs, job)
	}

	return jobs, nil
}

// Complete removes a finished job and frees the per-order dedup slot.
func (q *Queue) Complete(ctx context.Context, job *notification.Job) error {
	return q.discard(ctx, job)
}

// Retry reschedules a claimed job after delay, persisting its updated
// attempt counter. The dedup slot stays held the whole time.
func (q *Queue) Retry(ctx context.Context, job *notification.Job, delay time.Duration) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}

	orderID := job.OrderID.String()
	if err = q.client.Set(ctx, q.jobKey(orderID), payload, 0).Err(); err != nil {
		return unavailable(err)
	}

	eligibleAt := q.now().Add(delay).UnixNano()
	err = q.client.ZAdd(ctx, q.scheduledKey(), redis.Z{
		Score:  float64(eligibleAt),
		Member: orderID,
	}).Err()
	if err != nil {
		return unavailable(err)
	}

	return q.client.SRem(ctx, q.activeKey(), orderID).Err()
}

// Fail removes an exhausted or permanently rejected job. Same cleanup as
// Complete; the distinction lives in the worker's logging.
func (q *Queue) Fail(ctx context.Context, job *notification.Job) error {
	return q.discard(ctx, job)
}

func (q *Queue) discard(ctx context.Context, job *notification.Job) error {
	orderID := job.OrderID.String()
	if err := q.client.Del(ctx, q.jobKey(orderID)).Err(); err != nil {
		return unavailable(err)
	}
	if err := q.client.SRem(ctx, q.activeKey(), orderID).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (q *Queue) loadJob(ctx context.Context, orderID string) (*notification.Job, error) {
	payload, err := q.client.Get(ctx, q.jobKey(orderID)).Result()
	if err != nil {
		return nil, unavailable(err)
	}

	var job notification.Job
	if err = json.Unmarshal([]byte(payload), &job); err != nil {
		return nil, err
	}
	if err = job.RestoreOrderID(); err != nil {
		return nil, err
	}

	return &job, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ports.ErrQueueUnavailable, err)
}
