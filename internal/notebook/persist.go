package notebook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/mathdrill/internal/store"
)

// Load reads the notebook from repo. A missing or unreadable document
// yields an empty notebook; read failures are logged, never returned.
func Load(ctx context.Context, repo store.Repo, log *zap.Logger) *Notebook {
	b, err := repo.Get(ctx, store.KeyNotebook)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Warn("load notebook failed, starting empty", zap.Error(err))
		}
		return New()
	}

	var recs []Record
	if err := json.Unmarshal(b, &recs); err != nil {
		log.Warn("notebook document is corrupt, starting empty", zap.Error(err))
		return New()
	}
	return FromRecords(recs)
}

// Save writes the notebook to repo. Callers treat a failure as non-fatal.
func (nb *Notebook) Save(ctx context.Context, repo store.Repo) error {
	b, err := json.Marshal(nb.Records())
	if err != nil {
		return fmt.Errorf("marshal notebook: %w", err)
	}
	if err := repo.Put(ctx, store.KeyNotebook, b); err != nil {
		return fmt.Errorf("save notebook: %w", err)
	}
	return nil
}
