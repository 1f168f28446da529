package directory

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/classhub/internal/common"
	"github.com/dmitrijs2005/classhub/internal/logging"
	"github.com/dmitrijs2005/classhub/internal/session"
	"github.com/dmitrijs2005/classhub/internal/validate"
)

// FindByHandle returns the entry whose handle matches case-insensitively,
// or nil when absent. A linear scan is fine at class-roster scale.
func FindByHandle(entries []Entry, handle string) *Entry {
	handle = strings.TrimSpace(handle)
	for i := range entries {
		if strings.EqualFold(entries[i].Handle, handle) {
			return &entries[i]
		}
	}
	return nil
}

// SearchFreeText returns entries whose name or handle contains the query,
// case-insensitively, preserving order. An empty query returns the
// directory unfiltered.
func SearchFreeText(entries []Entry, query string) []Entry {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}

	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(strings.ToLower(e.Handle), query) {
			matched = append(matched, e)
		}
	}
	return matched
}

// DirStats summarizes a loaded directory for the stats panel.
type DirStats struct {
	Total       int
	UniqueNames int
}

func Stats(entries []Entry) DirStats {
	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Name != "" {
			names[strings.ToLower(e.Name)] = struct{}{}
		}
	}
	return DirStats{Total: len(entries), UniqueNames: len(names)}
}

// Service owns the directory business rules on top of the adapter.
type Service struct {
	adapter *Adapter
	logger  logging.Logger
	now     func() time.Time
}

func NewService(adapter *Adapter, logger logging.Logger) *Service {
	return &Service{adapter: adapter, logger: logger, now: time.Now}
}

// LoadAll returns the normalized directory view.
func (s *Service) LoadAll(ctx context.Context) ([]Entry, error) {
	return s.adapter.LoadAll(ctx)
}

// Add runs the full submission sequence, terminal on the first failure:
// session rate limit, name validation, handle validation, directory
// reload, case-insensitive duplicate scan, append.
//
// The duplicate scan is a read-then-append sequence with no transaction
// over the shared store, so two concurrent submissions for the same
// handle can both land. LoadAll's last-occurrence dedup is the accepted
// tie-break for that case.
func (s *Service) Add(ctx context.Context, sess *session.Session, name, handle string) (*Entry, error) {
	if !sess.AllowAdd() {
		return nil, common.ErrRateLimited
	}

	cleanName, err := validate.Name(name)
	if err != nil {
		return nil, err
	}

	cleanHandle, err := validate.Handle(handle)
	if err != nil {
		return nil, err
	}

	entries, err := s.adapter.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	if FindByHandle(entries, cleanHandle) != nil {
		return nil, common.ErrDuplicateHandle
	}

	e := Entry{
		Name:      cleanName,
		Handle:    cleanHandle,
		CreatedAt: s.now().Format(common.TimestampLayout),
	}
	if err := s.adapter.Append(ctx, e); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "entry added", "handle", e.Handle, "session", sess.ID)
	return &e, nil
}

// Seed appends an entry unless its handle is already present. Used at
// startup to guarantee the instructor row exists; unlike Add it is not
// rate limited and silently succeeds on a duplicate.
func (s *Service) Seed(ctx context.Context, name, handle string) error {
	cleanName, err := validate.Name(name)
	if err != nil {
		return err
	}

	cleanHandle, err := validate.Handle(handle)
	if err != nil {
		return err
	}

	entries, err := s.adapter.LoadAll(ctx)
	if err != nil {
		return err
	}

	if FindByHandle(entries, cleanHandle) != nil {
		return nil
	}

	e := Entry{
		Name:      cleanName,
		Handle:    cleanHandle,
		CreatedAt: s.now().Format(common.TimestampLayout),
	}
	return s.adapter.Append(ctx, e)
}
