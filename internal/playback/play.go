package playback

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrInvalidInterval = errors.New("playback interval must be greater than zero")

// Play calls fn with the cursor's current frame, then with one frame per
// tick until the cursor is done. Cancelling ctx stops playback and returns
// ctx.Err().
func Play(ctx context.Context, cursor *Cursor, interval time.Duration, fn func(Frame)) error {
	if interval <= 0 {
		return ErrInvalidInterval
	}
	fn(cursor.Frame())
	if cursor.Done() {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			logrus.Debugf("playback stopped at t=%d", cursor.Time())
			return err
		}
		select {
		case <-ctx.Done():
			logrus.Debugf("playback stopped at t=%d", cursor.Time())
			return ctx.Err()
		case <-ticker.C:
			frame, ok := cursor.Next()
			if !ok {
				return nil
			}
			fn(frame)
			if cursor.Done() {
				return nil
			}
		}
	}
}
