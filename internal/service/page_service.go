package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/birthdaybliss/bliss-backend/internal/config"
	"github.com/birthdaybliss/bliss-backend/internal/domain"
	"github.com/birthdaybliss/bliss-backend/internal/lifecycle"
	"github.com/birthdaybliss/bliss-backend/pkg/countdown"
	"github.com/birthdaybliss/bliss-backend/pkg/logger"
)

// LayoutArranger is the external AI collaborator that proposes a page layout
type LayoutArranger interface {
	ArrangeLayout(ctx context.Context, template, device string) (json.RawMessage, error)
}

// PageDocument is the view-selected page payload. Exactly one of the view
// fields is set, matching State.
type PageDocument struct {
	State    lifecycle.State `json:"state"`
	Upcoming *UpcomingView   `json:"upcoming,omitempty"`
	Active   *ActiveView     `json:"active,omitempty"`
	Expired  *ExpiredView    `json:"expired,omitempty"`
}

// UpcomingView is shown before the target day: name, date and the countdown
type UpcomingView struct {
	Name      string              `json:"name"`
	Date      time.Time           `json:"date"`
	Countdown countdown.Remaining `json:"countdown"`
}

// ActiveView is the full celebration page
type ActiveView struct {
	Birthday  *domain.BirthdayResponse `json:"birthday"`
	Countdown countdown.Remaining      `json:"countdown"`
	IsToday   bool                     `json:"is_today"`
	Layout    domain.Layout            `json:"layout"`
	Memories  []*domain.MemoryResponse `json:"memories"`
	Share     *ShareLinks              `json:"share"`
}

// ExpiredView only needs the name for its farewell copy
type ExpiredView struct {
	Name string `json:"name"`
}

// PageService selects which view a birthday page request gets
type PageService interface {
	BuildPage(ctx context.Context, id string) (*PageDocument, error)
	Countdown(ctx context.Context, id string) (countdown.Remaining, time.Time, error)
	Share(ctx context.Context, id string) (*ShareLinks, error)
}

type pageService struct {
	birthdays BirthdayService
	memories  MemoryService
	arranger  LayoutArranger
	cfg       config.BirthdayConfig
	now       func() time.Time
}

// NewPageService creates a new PageService. The arranger may be nil when the
// AI collaborator is disabled; a nil clock uses time.Now.
func NewPageService(birthdays BirthdayService, memories MemoryService, arranger LayoutArranger, cfg config.BirthdayConfig, clock func() time.Time) PageService {
	if clock == nil {
		clock = time.Now
	}
	return &pageService{
		birthdays: birthdays,
		memories:  memories,
		arranger:  arranger,
		cfg:       cfg,
		now:       clock,
	}
}

// BuildPage looks the record up, classifies its date against now and emits
// the view for that state. A missing record surfaces as ErrNotFound;
// repository errors propagate unchanged.
func (s *pageService) BuildPage(ctx context.Context, id string) (*PageDocument, error) {
	birthday, err := s.birthdays.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	state := lifecycle.Classify(birthday.Date, now, s.cfg.GracePeriodDays)

	doc := &PageDocument{State: state}
	switch state {
	case lifecycle.StateUpcoming:
		doc.Upcoming = &UpcomingView{
			Name:      birthday.Name,
			Date:      birthday.Date,
			Countdown: countdown.Until(birthday.Date, now),
		}
	case lifecycle.StateExpired:
		doc.Expired = &ExpiredView{Name: birthday.Name}
	default:
		memories, err := s.memories.List(ctx, id)
		if err != nil {
			return nil, err
		}
		doc.Active = &ActiveView{
			Birthday:  birthday,
			Countdown: countdown.Until(birthday.Date, now),
			IsToday:   lifecycle.IsToday(birthday.Date, now),
			Layout:    s.resolveLayout(ctx, birthday.Template),
			Memories:  memories,
			Share:     BuildShareLinks(s.cfg.ShareBaseURL, id, birthday.Name, birthday.Date, now),
		}
	}
	return doc, nil
}

// Countdown returns a one-shot snapshot plus the target instant for the
// streaming endpoint to tick against
func (s *pageService) Countdown(ctx context.Context, id string) (countdown.Remaining, time.Time, error) {
	birthday, err := s.birthdays.Get(ctx, id)
	if err != nil {
		return countdown.Remaining{}, time.Time{}, err
	}
	return countdown.Until(birthday.Date, s.now()), birthday.Date, nil
}

// Share returns the share and calendar links for a page
func (s *pageService) Share(ctx context.Context, id string) (*ShareLinks, error) {
	birthday, err := s.birthdays.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return BuildShareLinks(s.cfg.ShareBaseURL, id, birthday.Name, birthday.Date, s.now()), nil
}

// resolveLayout asks the arranger for a layout and falls back to the static
// default when the service is absent, fails, or answers with a shape that
// does not validate. Layout trouble never fails the page.
func (s *pageService) resolveLayout(ctx context.Context, template domain.Template) domain.Layout {
	if s.arranger == nil {
		return domain.DefaultLayout()
	}

	raw, err := s.arranger.ArrangeLayout(ctx, string(template), "desktop")
	if err != nil {
		logger.GetLogger().Warn().Err(err).Msg("layout arrangement failed, using default")
		return domain.DefaultLayout()
	}

	var layout domain.Layout
	if err := json.Unmarshal(raw, &layout); err != nil || !layout.Valid() {
		logger.GetLogger().Warn().Msg("layout response did not validate, using default")
		return domain.DefaultLayout()
	}
	return layout
}
