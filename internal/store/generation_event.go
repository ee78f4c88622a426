package store

import (
	"context"
	"fmt"

	"github.com/akiohm/quizlab/ent"
	"github.com/akiohm/quizlab/ent/generationevent"
)

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GenerationEvent.Create().
		SetSequence(seqNum).
		SetMode(data.Mode).
		SetRequestedCount(data.RequestedCount).
		SetItemCount(data.ItemCount).
		SetContentChars(data.ContentChars).
		SetLevel(data.Level).
		SetSuccess(data.Success).
		SetErrorKind(data.ErrorKind).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save generation event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEvent, error) {
	q := r.client.GenerationEvent.Query().
		Order(ent.Desc(generationevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(generationevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(generationevent.SequenceLT(opts.Before))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query generation events: %w", err)
	}

	out := make([]GenerationEvent, len(rows))
	for i, row := range rows {
		out[i] = GenerationEvent{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			GenerationEventData: GenerationEventData{
				Mode:           row.Mode,
				RequestedCount: row.RequestedCount,
				ItemCount:      row.ItemCount,
				ContentChars:   row.ContentChars,
				Level:          row.Level,
				Success:        row.Success,
				ErrorKind:      row.ErrorKind,
			},
		}
	}
	return out, nil
}
