package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Andyrulz/clinicmanagement-sub000/internal/slot"
)

// cache is a read-through day-schedule cache. Failures degrade to a direct
// database resolve; a broken Redis must never break the calendar.
type cache struct {
	rdb *goredis.Client
	ttl time.Duration
}

func scheduleKey(clinicID, doctorID uuid.UUID, from, to time.Time) string {
	return fmt.Sprintf("schedule:%s:%s:%s:%s",
		clinicID, doctorID, from.Format(time.DateOnly), to.Format(time.DateOnly))
}

func doctorKeyPattern(clinicID, doctorID uuid.UUID) string {
	return fmt.Sprintf("schedule:%s:%s:*", clinicID, doctorID)
}

func (c *cache) get(ctx context.Context, key string) ([]slot.DaySchedule, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			slog.Warn("schedule cache read failed", "key", key, "err", err)
		}
		return nil, false
	}
	var days []slot.DaySchedule
	if err := json.Unmarshal(raw, &days); err != nil {
		slog.Warn("schedule cache entry corrupt", "key", key, "err", err)
		return nil, false
	}
	return days, true
}

func (c *cache) set(ctx context.Context, key string, days []slot.DaySchedule) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(days)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("schedule cache write failed", "key", key, "err", err)
	}
}

// invalidate drops every cached range for one doctor. Called when the
// doctor's patterns change or a visit is booked, moved or cancelled.
func (c *cache) invalidate(ctx context.Context, clinicID, doctorID uuid.UUID) {
	if c == nil || c.rdb == nil {
		return
	}
	iter := c.rdb.Scan(ctx, 0, doctorKeyPattern(clinicID, doctorID), 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("schedule cache scan failed", "clinic_id", clinicID, "doctor_id", doctorID, "err", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("schedule cache invalidation failed", "clinic_id", clinicID, "doctor_id", doctorID, "err", err)
	}
}
