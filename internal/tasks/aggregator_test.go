package tasks

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/models"
	"go.uber.org/zap"
)

type fakeStore struct {
	campaigns map[uuid.UUID]models.Campaign
	events    map[uuid.UUID]models.Event
	requests  []models.PartnershipRequest
	profiles  map[uuid.UUID]models.UserProfile

	failCampaigns bool
	failEvents    bool
	failRequests  bool
	failProfiles  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		campaigns: map[uuid.UUID]models.Campaign{},
		events:    map[uuid.UUID]models.Event{},
		profiles:  map[uuid.UUID]models.UserProfile{},
	}
}

func (f *fakeStore) QueryCampaigns(_ context.Context, creatorID uuid.UUID) ([]models.Campaign, error) {
	if f.failCampaigns {
		return nil, fmt.Errorf("store unavailable")
	}
	var out []models.Campaign
	for _, c := range f.campaigns {
		if c.CreatorID == creatorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeStore) QueryEvents(_ context.Context, creatorID uuid.UUID) ([]models.Event, error) {
	if f.failEvents {
		return nil, fmt.Errorf("store unavailable")
	}
	var out []models.Event
	for _, e := range f.events {
		if e.CreatorID == creatorID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) QueryPartnershipRequests(_ context.Context, requesterID uuid.UUID) ([]models.PartnershipRequest, error) {
	if f.failRequests {
		return nil, fmt.Errorf("store unavailable")
	}
	var out []models.PartnershipRequest
	for _, r := range f.requests {
		if r.RequesterID == requesterID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) GetCampaign(_ context.Context, id uuid.UUID) (*models.Campaign, error) {
	if f.failCampaigns {
		return nil, fmt.Errorf("store unavailable")
	}
	if c, ok := f.campaigns[id]; ok {
		copied := c
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeStore) GetEvent(_ context.Context, id uuid.UUID) (*models.Event, error) {
	if f.failEvents {
		return nil, fmt.Errorf("store unavailable")
	}
	if e, ok := f.events[id]; ok {
		copied := e
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeStore) GetUserProfile(_ context.Context, id uuid.UUID) (*models.UserProfile, error) {
	if f.failProfiles {
		return nil, fmt.Errorf("store unavailable")
	}
	if p, ok := f.profiles[id]; ok {
		copied := p
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeStore) addCampaign(c models.Campaign) models.Campaign {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.campaigns[c.ID] = c
	return c
}

func (f *fakeStore) addEvent(e models.Event) models.Event {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	f.events[e.ID] = e
	return e
}

func (f *fakeStore) addProfile(name, industry string) uuid.UUID {
	id := uuid.New()
	f.profiles[id] = models.UserProfile{ID: id, FullName: name, Industry: industry}
	return id
}

func newAggregator(store Store) *Aggregator {
	return NewAggregator(store, zap.NewNop())
}

func TestListTasksEmpty(t *testing.T) {
	store := newFakeStore()
	actor := store.addProfile("Alice Realtor", "Real Estate Agent")

	tasks, err := newAggregator(store).ListTasks(context.Background(), actor)
	if err != nil {
		t.Fatalf("ListTasks() error = %v, want nil", err)
	}
	if len(tasks) != 0 {
		t.Errorf("ListTasks() = %d tasks, want 0", len(tasks))
	}
}

func TestListTasksNotAuthenticated(t *testing.T) {
	store := newFakeStore()
	store.failCampaigns = true // must not be reached

	_, err := newAggregator(store).ListTasks(context.Background(), uuid.Nil)
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("ListTasks(uuid.Nil) error = %v, want ErrNotAuthenticated", err)
	}
}

func TestListTasksOwnedCampaign(t *testing.T) {
	store := newFakeStore()
	actor := store.addProfile("Alice Realtor", "Real Estate Agent")
	store.addCampaign(models.Campaign{
		CreatorID: actor,
		Title:     "Spring open house push",
		Platform:  models.PlatformInstagram,
		DueDate:   "2024-08-18",
		Status:    models.CampaignStatusPending,
	})

	tasks, err := newAggregator(store).ListTasks(context.Background(), actor)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("ListTasks() = %d tasks, want 1", len(tasks))
	}

	task := tasks[0]
	if task.Title != "Spring open house push" {
		t.Errorf("Title = %q", task.Title)
	}
	if task.Status != "pending" {
		t.Errorf("Status = %q, want pending", task.Status)
	}
	if task.Action != "View draft" {
		t.Errorf("Action = %q, want View draft", task.Action)
	}
	if task.DueDate != "2024-08-18" {
		t.Errorf("DueDate = %q, want 2024-08-18", task.DueDate)
	}
	if task.CreatorName != "Alice Realtor" || task.CreatorRole != "Real Estate Agent" {
		t.Errorf("creator = %q/%q", task.CreatorName, task.CreatorRole)
	}
}

func TestListTasksRequestStatusOverridesOwnerStatus(t *testing.T) {
	store := newFakeStore()
	requester := store.addProfile("Bob Broker", "Mortgage Broker")
	creator := store.addProfile("Carol Inspector", "Home Inspector")
	campaign := store.addCampaign(models.Campaign{
		CreatorID: creator,
		Title:     "Fall listing blitz",
		Platform:  models.PlatformLinkedIn,
		DueDate:   "2024-09-01",
		Status:    models.CampaignStatusDraft,
	})
	store.requests = append(store.requests, models.PartnershipRequest{
		ID:          uuid.New(),
		RequesterID: requester,
		CreatorID:   creator,
		Type:        models.RequestTypeCampaign,
		CampaignID:  &campaign.ID,
		Status:      models.RequestStatusApproved,
	})

	tasks, err := newAggregator(store).ListTasks(context.Background(), requester)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("ListTasks() = %d tasks, want 1", len(tasks))
	}

	task := tasks[0]
	if task.Status != "approved" {
		t.Errorf("Status = %q, want approved (request status must override owner's draft)", task.Status)
	}
	if task.Action != "Submit post" {
		t.Errorf("Action = %q, want Submit post", task.Action)
	}
	if task.DueDate != "2024-09-01" {
		t.Errorf("DueDate = %q, want 2024-09-01", task.DueDate)
	}
	if task.CreatorName != "Carol Inspector" {
		t.Errorf("CreatorName = %q, want the campaign creator's name", task.CreatorName)
	}
}

func TestListTasksSortedByDueDate(t *testing.T) {
	store := newFakeStore()
	actor := store.addProfile("Alice Realtor", "Real Estate Agent")
	dates := []string{"2024-09-15", "2024-08-02", "2024-12-01", "2024-08-18"}
	for i, d := range dates {
		store.addCampaign(models.Campaign{
			CreatorID: actor,
			Title:     fmt.Sprintf("Campaign %d", i),
			Platform:  models.PlatformTwitter,
			DueDate:   d,
			Status:    models.CampaignStatusDraft,
		})
	}
	store.addEvent(models.Event{
		CreatorID: actor,
		Title:     "Networking breakfast",
		Platform:  "In person",
		EventDate: "2024-08-10",
		Status:    models.EventStatusPending,
	})

	tasks, err := newAggregator(store).ListTasks(context.Background(), actor)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 5 {
		t.Fatalf("ListTasks() = %d tasks, want 5", len(tasks))
	}
	for i := 1; i < len(tasks); i++ {
		if tasks[i-1].DueDate > tasks[i].DueDate {
			t.Errorf("tasks out of order at %d: %q > %q", i, tasks[i-1].DueDate, tasks[i].DueDate)
		}
	}
}

func TestListTasksTieBreakDeterministic(t *testing.T) {
	store := newFakeStore()
	actor := store.addProfile("Alice Realtor", "Real Estate Agent")
	for i := 0; i < 5; i++ {
		store.addCampaign(models.Campaign{
			CreatorID: actor,
			Title:     fmt.Sprintf("Campaign %d", i),
			Platform:  models.PlatformYouTube,
			DueDate:   "2024-08-18",
			Status:    models.CampaignStatusDraft,
		})
	}

	agg := newAggregator(store)
	first, err := agg.ListTasks(context.Background(), actor)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	for run := 0; run < 10; run++ {
		again, err := agg.ListTasks(context.Background(), actor)
		if err != nil {
			t.Fatalf("ListTasks() error = %v", err)
		}
		for i := range first {
			if again[i].ID != first[i].ID {
				t.Fatalf("run %d: order differs at index %d", run, i)
			}
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i-1].ID.String() > first[i].ID.String() {
			t.Errorf("equal due dates not tie-broken by id at %d", i)
		}
	}
}

func TestListTasksMissingProfileDegrades(t *testing.T) {
	store := newFakeStore()
	actor := uuid.New() // no profile row
	store.addCampaign(models.Campaign{
		CreatorID: actor,
		Title:     "Orphan campaign",
		Platform:  models.PlatformTikTok,
		DueDate:   "2024-10-05",
		Status:    models.CampaignStatusLive,
	})

	tasks, err := newAggregator(store).ListTasks(context.Background(), actor)
	if err != nil {
		t.Fatalf("ListTasks() error = %v, want success with placeholders", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("ListTasks() = %d tasks, want 1", len(tasks))
	}
	if tasks[0].CreatorName != UnknownUser {
		t.Errorf("CreatorName = %q, want %q", tasks[0].CreatorName, UnknownUser)
	}
	if tasks[0].CreatorRole != UnknownRole {
		t.Errorf("CreatorRole = %q, want %q", tasks[0].CreatorRole, UnknownRole)
	}
}

func TestListTasksSkipsMalformedRecord(t *testing.T) {
	store := newFakeStore()
	actor := store.addProfile("Alice Realtor", "Real Estate Agent")
	store.addCampaign(models.Campaign{
		CreatorID: actor,
		Title:     "No due date",
		Platform:  models.PlatformInstagram,
		Status:    models.CampaignStatusDraft,
	})
	store.addCampaign(models.Campaign{
		CreatorID: actor,
		Title:     "Valid sibling",
		Platform:  models.PlatformInstagram,
		DueDate:   "2024-08-20",
		Status:    models.CampaignStatusDraft,
	})

	tasks, err := newAggregator(store).ListTasks(context.Background(), actor)
	if err != nil {
		t.Fatalf("ListTasks() error = %v, want partial skip not failure", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("ListTasks() = %d tasks, want 1 (malformed skipped)", len(tasks))
	}
	if tasks[0].Title != "Valid sibling" {
		t.Errorf("kept %q, want the valid sibling", tasks[0].Title)
	}
}

func TestListTasksFetchFailure(t *testing.T) {
	tests := []struct {
		name string
		fail func(*fakeStore)
	}{
		{"campaigns", func(f *fakeStore) { f.failCampaigns = true }},
		{"events", func(f *fakeStore) { f.failEvents = true }},
		{"requests", func(f *fakeStore) { f.failRequests = true }},
		{"profiles", func(f *fakeStore) { f.failProfiles = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			actor := store.addProfile("Alice Realtor", "Real Estate Agent")
			store.addCampaign(models.Campaign{
				CreatorID: actor,
				Title:     "Doomed",
				Platform:  models.PlatformInstagram,
				DueDate:   "2024-08-18",
				Status:    models.CampaignStatusDraft,
			})
			tt.fail(store)

			tasks, err := newAggregator(store).ListTasks(context.Background(), actor)
			if !errors.Is(err, ErrFetchFailed) {
				t.Errorf("ListTasks() error = %v, want ErrFetchFailed", err)
			}
			if tasks != nil {
				t.Errorf("ListTasks() returned partial results on failure: %v", tasks)
			}
		})
	}
}

func TestListTasksEndToEnd(t *testing.T) {
	store := newFakeStore()
	actorA := store.addProfile("Actor A", "Real Estate Agent")
	actorB := store.addProfile("Actor B", "Mortgage Broker")
	actorC := store.addProfile("Actor C", "Home Inspector")

	store.addCampaign(models.Campaign{
		CreatorID: actorA,
		Title:     "A's campaign",
		Platform:  models.PlatformInstagram,
		DueDate:   "2024-08-18",
		Status:    models.CampaignStatusPending,
	})
	cCampaign := store.addCampaign(models.Campaign{
		CreatorID: actorC,
		Title:     "C's campaign",
		Platform:  models.PlatformTwitter,
		DueDate:   "2024-09-01",
		Status:    models.CampaignStatusDraft,
	})
	store.requests = append(store.requests, models.PartnershipRequest{
		ID:          uuid.New(),
		RequesterID: actorB,
		CreatorID:   actorC,
		Type:        models.RequestTypeCampaign,
		CampaignID:  &cCampaign.ID,
		Status:      models.RequestStatusApproved,
	})

	agg := newAggregator(store)

	tasksA, err := agg.ListTasks(context.Background(), actorA)
	if err != nil {
		t.Fatalf("ListTasks(A) error = %v", err)
	}
	if len(tasksA) != 1 {
		t.Fatalf("ListTasks(A) = %d tasks, want 1", len(tasksA))
	}
	if tasksA[0].Title != "A's campaign" || tasksA[0].Status != "pending" ||
		tasksA[0].Action != "View draft" || tasksA[0].DueDate != "2024-08-18" {
		t.Errorf("actor A task = %+v", tasksA[0])
	}

	tasksB, err := agg.ListTasks(context.Background(), actorB)
	if err != nil {
		t.Fatalf("ListTasks(B) error = %v", err)
	}
	if len(tasksB) != 1 {
		t.Fatalf("ListTasks(B) = %d tasks, want 1", len(tasksB))
	}
	if tasksB[0].Status != "approved" || tasksB[0].Action != "Submit post" ||
		tasksB[0].DueDate != "2024-09-01" {
		t.Errorf("actor B task = %+v", tasksB[0])
	}
}

func TestListTasksDeniedRequestKept(t *testing.T) {
	store := newFakeStore()
	requester := store.addProfile("Bob Broker", "Mortgage Broker")
	creator := store.addProfile("Carol Inspector", "Home Inspector")
	ev := store.addEvent(models.Event{
		CreatorID: creator,
		Title:     "Charity gala",
		Platform:  "In person",
		EventDate: "2024-11-20",
		Status:    models.EventStatusApproved,
	})
	store.requests = append(store.requests, models.PartnershipRequest{
		ID:          uuid.New(),
		RequesterID: requester,
		CreatorID:   creator,
		Type:        models.RequestTypeEvent,
		EventID:     &ev.ID,
		Status:      models.RequestStatusDenied,
	})

	tasks, err := newAggregator(store).ListTasks(context.Background(), requester)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("denied request dropped; got %d tasks, want 1", len(tasks))
	}
	if tasks[0].Status != "denied" || tasks[0].Action != "View/edit draft" {
		t.Errorf("denied task = %+v", tasks[0])
	}
}

func TestListTasksDanglingRequestSkipped(t *testing.T) {
	store := newFakeStore()
	requester := store.addProfile("Bob Broker", "Mortgage Broker")
	missing := uuid.New()
	store.requests = append(store.requests, models.PartnershipRequest{
		ID:          uuid.New(),
		RequesterID: requester,
		CreatorID:   uuid.New(),
		Type:        models.RequestTypeCampaign,
		CampaignID:  &missing,
		Status:      models.RequestStatusPending,
	})

	tasks, err := newAggregator(store).ListTasks(context.Background(), requester)
	if err != nil {
		t.Fatalf("ListTasks() error = %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("ListTasks() = %d tasks, want 0 for a request whose record is gone", len(tasks))
	}
}

func TestRecentTasks(t *testing.T) {
	mk := func(n int) []models.Task {
		out := make([]models.Task, n)
		for i := range out {
			out[i] = models.Task{ID: uuid.New(), Title: fmt.Sprintf("t%d", i)}
		}
		return out
	}

	tests := []struct {
		name string
		in   int
		n    int
		want int
	}{
		{"shorter than n", 3, 5, 3},
		{"equal", 5, 5, 5},
		{"longer", 8, 5, 5},
		{"empty", 0, 5, 0},
		{"zero n", 3, 0, 0},
		{"negative n", 3, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mk(tt.in)
			got := RecentTasks(in, tt.n)
			if len(got) != tt.want {
				t.Errorf("RecentTasks(%d, %d) = %d tasks, want %d", tt.in, tt.n, len(got), tt.want)
			}
			for i := range got {
				if got[i].ID != in[i].ID {
					t.Errorf("RecentTasks reordered input at %d", i)
				}
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"2024-08-18", "2024-08-18", false},
		{"2024-08-18T00:00:00Z", "2024-08-18", false},
		{"2024-08-18T23:59:59+10:00", "2024-08-18", false},
		{"2024-12-31T10:30:00", "2024-12-31", false},
		{"2024-02-29 08:00:00", "2024-02-29", false},
		{"", "", true},
		{"not a date", "", true},
		{"18/08/2024", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
