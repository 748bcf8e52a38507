package natscons

import (
	"context"
	"errors"
	"fmt"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
	recordrepo "github.com/10Narratives/pager/internal/repositories/records"
	"go.uber.org/zap"
)

// ErrMalformed marks messages that will never decode; they are terminated
// instead of redelivered.
var ErrMalformed = errors.New("malformed message")

type Inserter interface {
	Insert(ctx context.Context, records ...pagedomain.Record) error
}

// NewRecordHandler decodes each message as one JSON record and inserts it.
// onInsert, when set, runs after every successful insert.
func NewRecordHandler(store Inserter, log *zap.Logger, onInsert func()) Handler {
	return func(ctx context.Context, msg Message) error {
		record, err := recordrepo.Decode(msg.Data())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		if err := store.Insert(ctx, record); err != nil {
			return err
		}
		if onInsert != nil {
			onInsert()
		}

		log.Debug("record ingested", zap.String("subject", msg.Subject()))
		return nil
	}
}
