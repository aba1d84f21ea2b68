package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
)

const noticeSubscriberBuffer = 16

var (
	// ErrNoticeNotFound indicates the requested notice does not exist.
	ErrNoticeNotFound = errors.New("notice not found")
	// ErrEmptyNotice indicates nothing was left of the notice after sanitising.
	ErrEmptyNotice = errors.New("notice body is empty after sanitising")
)

// Notice event types.
const (
	NoticePosted    = "notice.posted"
	NoticeDismissed = "notice.dismissed"
)

// NoticeEvent describes a change on the notice board.
type NoticeEvent struct {
	Type       string        `json:"type"`
	Notice     models.Notice `json:"notice"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NoticePublisher fans notice events out to other processes. *nats.Conn satisfies it.
type NoticePublisher interface {
	Publish(subject string, data []byte) error
}

var noticeSchema = listquery.Schema[models.Notice]{
	Text: map[string]func(models.Notice) string{
		"title": func(n models.Notice) string { return n.Title },
		"body":  func(n models.Notice) string { return n.Body },
	},
	Fields: map[string]func(models.Notice) string{
		"pinned": func(n models.Notice) string { return strconv.FormatBool(n.Pinned) },
	},
	Sorts: map[string]func(a, b models.Notice) bool{
		"created_at": func(a, b models.Notice) bool { return a.CreatedAt.Before(b.CreatedAt) },
		"title":      func(a, b models.Notice) bool { return a.Title < b.Title },
	},
}

// NoticeService is the read/write surface of the notice board.
type NoticeService interface {
	List(ctx context.Context, criteria listquery.Criteria, audience string) (dto.ListResponse[models.Notice], error)
	Post(ctx context.Context, req dto.NoticeRequest) (models.Notice, error)
	Dismiss(ctx context.Context, id string) (models.Notice, error)
}

var _ NoticeService = (*NoticeBoard)(nil)

// NoticeBoard owns the notices shown on the dashboard. Post and Dismiss are
// the only ways to change it; every change is announced to subscribers.
type NoticeBoard struct {
	mu          sync.RWMutex
	notices     []models.Notice
	subscribers map[int]chan NoticeEvent
	nextID      int

	validator *validator.Validate
	body      *bluemonday.Policy
	title     *bluemonday.Policy
	publisher NoticePublisher
	subject   string
	logger    zerolog.Logger
	now       func() time.Time
}

// NewNoticeBoard creates a board seeded with initial. publisher may be nil.
func NewNoticeBoard(initial []models.Notice, validate *validator.Validate, publisher NoticePublisher, subject string, logger zerolog.Logger) *NoticeBoard {
	notices := make([]models.Notice, len(initial))
	copy(notices, initial)
	return &NoticeBoard{
		notices:     notices,
		subscribers: make(map[int]chan NoticeEvent),
		validator:   validate,
		body:        bluemonday.UGCPolicy(),
		title:       bluemonday.StrictPolicy(),
		publisher:   publisher,
		subject:     subject,
		logger:      logger.With().Str("component", "notice_board").Logger(),
		now:         time.Now,
	}
}

// List returns notices visible to audience, pinned first and newest first
// unless the criteria name a sort. An empty or "all" audience sees everything.
func (b *NoticeBoard) List(ctx context.Context, criteria listquery.Criteria, audience string) (dto.ListResponse[models.Notice], error) {
	if err := ctx.Err(); err != nil {
		return dto.ListResponse[models.Notice]{}, err
	}

	audience = strings.ToLower(strings.TrimSpace(audience))
	visible := b.snapshot(func(n models.Notice) bool {
		return isAll(audience) || n.Audience == models.NoticeAudienceAll || n.Audience == audience
	})

	if strings.TrimSpace(criteria.Sort) == "" {
		sort.SliceStable(visible, func(i, j int) bool {
			if visible[i].Pinned != visible[j].Pinned {
				return visible[i].Pinned
			}
			return visible[i].CreatedAt.After(visible[j].CreatedAt)
		})
	}

	result, err := listquery.Run(visible, noticeSchema, criteria)
	if err != nil {
		return dto.ListResponse[models.Notice]{}, err
	}
	return dto.NewListResponse(result), nil
}

// PinnedCount returns the number of pinned notices.
func (b *NoticeBoard) PinnedCount() int {
	return len(b.snapshot(func(n models.Notice) bool { return n.Pinned }))
}

// Post sanitises and adds a notice.
func (b *NoticeBoard) Post(ctx context.Context, req dto.NoticeRequest) (models.Notice, error) {
	if err := b.validator.Struct(req); err != nil {
		return models.Notice{}, err
	}

	notice := models.Notice{
		ID:        "notice-" + uuid.NewString(),
		Title:     strings.TrimSpace(b.title.Sanitize(req.Title)),
		Body:      strings.TrimSpace(b.body.Sanitize(req.Body)),
		Audience:  strings.ToLower(strings.TrimSpace(req.Audience)),
		Pinned:    req.Pinned,
		CreatedAt: b.now().UTC(),
	}
	if notice.Audience == "" {
		notice.Audience = models.NoticeAudienceAll
	}
	if notice.Title == "" || notice.Body == "" {
		return models.Notice{}, ErrEmptyNotice
	}

	b.mu.Lock()
	b.notices = append(b.notices, notice)
	b.mu.Unlock()

	b.emit(ctx, NoticeEvent{Type: NoticePosted, Notice: notice, OccurredAt: notice.CreatedAt})
	return notice, nil
}

// Dismiss removes a notice from the board.
func (b *NoticeBoard) Dismiss(ctx context.Context, id string) (models.Notice, error) {
	b.mu.Lock()
	idx := -1
	for i, notice := range b.notices {
		if notice.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		b.mu.Unlock()
		return models.Notice{}, ErrNoticeNotFound
	}
	removed := b.notices[idx]
	b.notices = append(b.notices[:idx:idx], b.notices[idx+1:]...)
	b.mu.Unlock()

	b.emit(ctx, NoticeEvent{Type: NoticeDismissed, Notice: removed, OccurredAt: b.now().UTC()})
	return removed, nil
}

// Subscribe registers a listener for board events. The returned cancel
// function unregisters it and closes the channel. Slow listeners miss events.
func (b *NoticeBoard) Subscribe() (<-chan NoticeEvent, func()) {
	ch := make(chan NoticeEvent, noticeSubscriberBuffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

func (b *NoticeBoard) snapshot(keep func(models.Notice) bool) []models.Notice {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]models.Notice, 0, len(b.notices))
	for _, notice := range b.notices {
		if keep(notice) {
			out = append(out, notice)
		}
	}
	return out
}

func (b *NoticeBoard) emit(ctx context.Context, event NoticeEvent) {
	logger := b.logger.With().Str("event", event.Type).Str("notice_id", event.Notice.ID).Logger()

	b.mu.RLock()
	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			logger.Warn().Msg("dropping notice event for slow subscriber")
		}
	}
	b.mu.RUnlock()

	if b.publisher == nil || b.subject == "" || ctx.Err() != nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to encode notice event")
		return
	}
	if err := b.publisher.Publish(b.subject, payload); err != nil {
		logger.Warn().Err(err).Msg("failed to publish notice event")
	}
}
