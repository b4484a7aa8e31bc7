package db

import (
	"context"
	"database/sql"
	"log"
	"strconv"
	"time"

	"github.com/lib/pq"
)

// Notifier wraps the LISTEN/NOTIFY mechanism in PostgreSQL.  It announces
// completed consultations on a channel so dashboards can refresh without
// polling.
type Notifier struct {
	DB      *sql.DB
	DSN     string
	Channel string
}

// NewNotifier constructs a new Notifier.  The DSN is needed because pq's
// listener maintains its own dedicated connection.
func NewNotifier(db *sql.DB, dsn, channel string) *Notifier {
	return &Notifier{DB: db, DSN: dsn, Channel: channel}
}

// Notify publishes a consultation ID on the channel.  Best effort: callers
// typically ignore the error, since a missed notification only delays a
// dashboard refresh.
func (n *Notifier) Notify(ctx context.Context, consultationID int64) error {
	_, err := n.DB.ExecContext(ctx,
		`SELECT pg_notify($1, $2)`, n.Channel, strconv.FormatInt(consultationID, 10))
	return err
}

// Listen yields consultation IDs as they are announced.  The returned
// channel closes when ctx is cancelled or the listener fails permanently.
func (n *Notifier) Listen(ctx context.Context) (<-chan int64, error) {
	listener := pq.NewListener(n.DSN, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.Println("notifier listener event:", err)
		}
	})
	if err := listener.Listen(n.Channel); err != nil {
		_ = listener.Close()
		return nil, err
	}
	ch := make(chan int64)
	go func() {
		defer func() {
			_ = listener.Close()
			close(ch)
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case note, ok := <-listener.Notify:
				if !ok {
					return
				}
				if note == nil {
					// Reconnect event; pq re-establishes the LISTEN itself.
					continue
				}
				id, err := strconv.ParseInt(note.Extra, 10, 64)
				if err != nil {
					log.Println("notifier: bad payload:", note.Extra)
					continue
				}
				select {
				case ch <- id:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch, nil
}
