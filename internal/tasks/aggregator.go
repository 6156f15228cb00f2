package tasks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrNotAuthenticated is returned when no actor id is supplied.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrFetchFailed wraps any failed retrieval; the whole listing fails
	// atomically, partial results are never returned.
	ErrFetchFailed = errors.New("failed to fetch tasks")
)

// Placeholder display values when a creator profile cannot be resolved.
const (
	UnknownUser = "Unknown User"
	UnknownRole = "Unknown Role"
)

// Aggregator joins campaigns, events and partnership requests involving an
// actor into one chronologically ordered task list. It is a pure read/projection
// component: it never mutates source records and holds no state between calls.
type Aggregator struct {
	store Store
	log   *zap.Logger
}

func NewAggregator(store Store, log *zap.Logger) *Aggregator {
	return &Aggregator{store: store, log: log}
}

// ListTasks returns every task relevant to the actor: campaigns and events the
// actor owns, plus campaigns and events the actor has requested partnership on.
// Requester-side tasks carry the request's status, not the record's own status,
// so the list answers "is my request pending/approved/denied" from the
// requester's point of view. The result is sorted ascending by due date with a
// deterministic tie-break on task id.
func (a *Aggregator) ListTasks(ctx context.Context, actorID uuid.UUID) ([]models.Task, error) {
	if actorID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	ownedCampaigns, err := a.store.QueryCampaigns(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("%w: campaigns: %v", ErrFetchFailed, err)
	}

	ownedEvents, err := a.store.QueryEvents(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("%w: events: %v", ErrFetchFailed, err)
	}

	requests, err := a.store.QueryPartnershipRequests(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("%w: partnership requests: %v", ErrFetchFailed, err)
	}

	// Resolve the linked record for each sent request. The request's own
	// status overrides the record's status before projection.
	var requestedCampaigns []models.Campaign
	var requestedEvents []models.Event
	for _, req := range requests {
		switch {
		case req.Type == models.RequestTypeCampaign && req.CampaignID != nil:
			c, err := a.store.GetCampaign(ctx, *req.CampaignID)
			if err != nil {
				return nil, fmt.Errorf("%w: campaign %s: %v", ErrFetchFailed, *req.CampaignID, err)
			}
			if c == nil {
				continue
			}
			c.Status = req.Status
			requestedCampaigns = append(requestedCampaigns, *c)
		case req.Type == models.RequestTypeEvent && req.EventID != nil:
			e, err := a.store.GetEvent(ctx, *req.EventID)
			if err != nil {
				return nil, fmt.Errorf("%w: event %s: %v", ErrFetchFailed, *req.EventID, err)
			}
			if e == nil {
				continue
			}
			e.Status = req.Status
			requestedEvents = append(requestedEvents, *e)
		}
	}

	// Creator profiles are memoized per call; owned records all share the
	// actor's profile and requested records often share a creator.
	profiles := map[uuid.UUID]*models.UserProfile{}

	var tasks []models.Task
	for _, c := range append(ownedCampaigns, requestedCampaigns...) {
		task, err := a.campaignTask(ctx, c, profiles)
		if err != nil {
			if errors.Is(err, ErrFetchFailed) {
				return nil, err
			}
			a.log.Warn("skipping malformed campaign",
				zap.String("campaign_id", c.ID.String()), zap.Error(err))
			continue
		}
		tasks = append(tasks, task)
	}
	for _, e := range append(ownedEvents, requestedEvents...) {
		task, err := a.eventTask(ctx, e, profiles)
		if err != nil {
			if errors.Is(err, ErrFetchFailed) {
				return nil, err
			}
			a.log.Warn("skipping malformed event",
				zap.String("event_id", e.ID.String()), zap.Error(err))
			continue
		}
		tasks = append(tasks, task)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].DueDate != tasks[j].DueDate {
			return tasks[i].DueDate < tasks[j].DueDate
		}
		return tasks[i].ID.String() < tasks[j].ID.String()
	})

	return tasks, nil
}

// RecentTasks returns the first n tasks of an already-sorted-ascending list,
// interpreted as "soonest due". Shorter input is returned whole.
func RecentTasks(tasks []models.Task, n int) []models.Task {
	if n < 0 {
		n = 0
	}
	if len(tasks) <= n {
		return tasks
	}
	return tasks[:n]
}

func (a *Aggregator) campaignTask(ctx context.Context, c models.Campaign, profiles map[uuid.UUID]*models.UserProfile) (models.Task, error) {
	if c.Title == "" {
		return models.Task{}, fmt.Errorf("missing title")
	}
	due, err := NormalizeDate(c.DueDate)
	if err != nil {
		return models.Task{}, fmt.Errorf("due date: %w", err)
	}
	name, role, err := a.resolveCreator(ctx, c.CreatorID, profiles)
	if err != nil {
		return models.Task{}, err
	}
	return models.Task{
		ID:          c.ID,
		Type:        models.TaskTypeCampaign,
		Title:       c.Title,
		DueDate:     due,
		Status:      c.Status,
		Platform:    c.Platform,
		CreatorName: name,
		CreatorRole: role,
		Action:      models.ActionForStatus(c.Status),
	}, nil
}

func (a *Aggregator) eventTask(ctx context.Context, e models.Event, profiles map[uuid.UUID]*models.UserProfile) (models.Task, error) {
	if e.Title == "" {
		return models.Task{}, fmt.Errorf("missing title")
	}
	due, err := NormalizeDate(e.EventDate)
	if err != nil {
		return models.Task{}, fmt.Errorf("event date: %w", err)
	}
	name, role, err := a.resolveCreator(ctx, e.CreatorID, profiles)
	if err != nil {
		return models.Task{}, err
	}
	return models.Task{
		ID:          e.ID,
		Type:        models.TaskTypeEvent,
		Title:       e.Title,
		DueDate:     due,
		Status:      e.Status,
		Platform:    e.Platform,
		CreatorName: name,
		CreatorRole: role,
		Action:      models.ActionForStatus(e.Status),
	}, nil
}

// resolveCreator looks up a creator profile, memoizing per call. A missing
// profile degrades to placeholder values; a failed lookup fails the listing.
func (a *Aggregator) resolveCreator(ctx context.Context, creatorID uuid.UUID, profiles map[uuid.UUID]*models.UserProfile) (string, string, error) {
	profile, seen := profiles[creatorID]
	if !seen {
		var err error
		profile, err = a.store.GetUserProfile(ctx, creatorID)
		if err != nil {
			return "", "", fmt.Errorf("%w: profile %s: %v", ErrFetchFailed, creatorID, err)
		}
		profiles[creatorID] = profile
	}
	if profile == nil {
		return UnknownUser, UnknownRole, nil
	}
	name := profile.FullName
	if name == "" {
		name = UnknownUser
	}
	role := profile.RoleLabel()
	if role == "" {
		role = UnknownRole
	}
	return name, role, nil
}

// dateLayouts are the source representations a due date may arrive in.
// Date-only values are parsed without a location so the stored value is
// treated as a wall-clock calendar date, never shifted by time zone.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeDate converts a stored date string to the canonical YYYY-MM-DD
// form used for comparison, sorting and calendar grouping.
func NormalizeDate(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", raw)
}
