// Package testutil provides in-memory repository fakes so service and
// handler tests run without a Postgres instance.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"shift_calendar_app/internal/domain/message"
	"shift_calendar_app/internal/domain/session"
	"shift_calendar_app/internal/domain/user"
	idb "shift_calendar_app/internal/infra/database"
)

// Clock is a manually advanced clock for deterministic timestamps.
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{t: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// InMemoryUserRepo implements user.Repository backed by a map. It returns
// the same sentinel errors as the Postgres repository.
type InMemoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*user.User
}

func NewInMemoryUserRepo() *InMemoryUserRepo {
	return &InMemoryUserRepo{users: make(map[int64]*user.User)}
}

func (r *InMemoryUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return idb.ErrDuplicateUsername
		}
		if existing.Email == u.Email {
			return idb.ErrDuplicateEmail
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *InMemoryUserRepo) GetByID(_ context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, idb.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *InMemoryUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, idb.ErrUserNotFound
}

func (r *InMemoryUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, idb.ErrUserNotFound
}

func (r *InMemoryUserRepo) ListOthers(_ context.Context, excludeID int64) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	others := make([]*user.User, 0)
	for _, u := range r.users {
		if u.ID == excludeID {
			continue
		}
		copied := *u
		others = append(others, &copied)
	}
	sort.Slice(others, func(i, j int) bool { return others[i].Username < others[j].Username })
	return others, nil
}

// InMemoryMessageRepo implements message.Repository with the same ordering
// and limit semantics as the Postgres repository.
type InMemoryMessageRepo struct {
	mu       sync.Mutex
	nextID   int64
	now      func() time.Time
	messages []*message.Message
}

func NewInMemoryMessageRepo(now func() time.Time) *InMemoryMessageRepo {
	if now == nil {
		now = time.Now
	}
	return &InMemoryMessageRepo{now: now}
}

func (r *InMemoryMessageRepo) Create(_ context.Context, m *message.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	m.ID = r.nextID
	m.Timestamp = r.now()
	stored := *m
	r.messages = append(r.messages, &stored)
	return nil
}

func (r *InMemoryMessageRepo) ListConversation(_ context.Context, userA, userB int64, limit int) ([]*message.Message, error) {
	if limit <= 0 {
		limit = idb.DefaultConversationLimit
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	matched := make([]*message.Message, 0)
	for _, m := range r.messages {
		if (m.SenderID == userA && m.RecipientID == userB) ||
			(m.SenderID == userB && m.RecipientID == userA) {
			copied := *m
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Timestamp.Equal(matched[j].Timestamp) {
			return matched[i].Timestamp.After(matched[j].Timestamp)
		}
		return matched[i].ID > matched[j].ID
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// Count returns the total number of persisted messages, for before/after
// assertions on failed sends.
func (r *InMemoryMessageRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

// InMemorySessionRepo implements session.Repository backed by a map.
type InMemorySessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*session.Session
}

func NewInMemorySessionRepo() *InMemorySessionRepo {
	return &InMemorySessionRepo{sessions: make(map[string]*session.Session)}
}

func (r *InMemorySessionRepo) Create(_ context.Context, s *session.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.CreatedAt = time.Now()
	stored := *s
	r.sessions[s.Token] = &stored
	return nil
}

func (r *InMemorySessionRepo) GetByToken(_ context.Context, token string) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return nil, idb.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *InMemorySessionRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *InMemorySessionRepo) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for token, s := range r.sessions {
		if !s.ExpiresAt.After(before) {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed, nil
}

// Len reports how many sessions are currently stored.
func (r *InMemorySessionRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// NotifierCall records one push attempt made through RecordingNotifier.
type NotifierCall struct {
	RecipientID int64
	SenderName  string
}

// RecordingNotifier implements app.MurNotifier and records every call.
// Set Err to simulate push failures.
type RecordingNotifier struct {
	mu    sync.Mutex
	Err   error
	calls []NotifierCall
}

func (n *RecordingNotifier) NotifyMurReceived(recipient *user.User, senderName string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, NotifierCall{RecipientID: recipient.ID, SenderName: senderName})
	return n.Err
}

func (n *RecordingNotifier) Calls() []NotifierCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]NotifierCall, len(n.calls))
	copy(out, n.calls)
	return out
}
