package event

import (
	"context"
	"strings"
	"time"

	"github.com/bandhub/band-management-backend/internal/apperror"
	"github.com/bandhub/band-management-backend/internal/auditlog"
	"github.com/bandhub/band-management-backend/internal/notification"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxTitleLength = 255

// Service is the entry point for event and setlist operations. Writes that
// touch several rows run as one transaction; audit records and change
// notifications are emitted only after the outcome is known.
type Service struct {
	DB       *gorm.DB
	Repo     *Repository
	Entries  *SetlistRepository
	Setlist  *SetlistStore
	Query    *QueryService
	AuditSvc auditlog.Service
	NotifSvc notification.Service
	lookups  lookups
}

func NewService(db *gorm.DB, auditSvc auditlog.Service, notifSvc notification.Service) *Service {
	if notifSvc == nil {
		notifSvc = notification.NopService{}
	}
	return &Service{
		DB:       db,
		Repo:     NewRepository(db),
		Entries:  NewSetlistRepository(db),
		Setlist:  NewSetlistStore(db),
		Query:    NewQueryService(db),
		AuditSvc: auditSvc,
		NotifSvc: notifSvc,
		lookups:  newLookups(db),
	}
}

// ===========================
// 🎯 Create Event
// CreateEvent inserts the event and its whole setlist atomically and returns
// the reloaded aggregate.
func (s *Service) CreateEvent(ctx context.Context, in CreateEventInput, actor auditlog.Actor) (*Event, error) {
	details := map[string]interface{}{"title": in.Title, "setlist_size": len(in.Setlist)}

	if err := validateTitle(in.Title); err != nil {
		s.audit(ctx, actor, nil, auditlog.ActionEventCreated, details, err)
		return nil, err
	}
	if in.Date.IsZero() {
		err := apperror.InvalidInput("date is required")
		s.audit(ctx, actor, nil, auditlog.ActionEventCreated, details, err)
		return nil, err
	}

	e := &Event{
		Title:        strings.TrimSpace(in.Title),
		Date:         in.Date.UTC(),
		VenueName:    in.VenueName,
		VenueAddress: in.VenueAddress,
		Description:  in.Description,
	}
	if in.IsPublic != nil {
		e.IsPublic = *in.IsPublic
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		creator, err := s.resolveCreator(ctx, tx, in.CreatedByUserID, actor.UserID)
		if err != nil {
			return err
		}
		e.CreatedByUserID = creator

		if err := s.Repo.WithTx(tx).Create(ctx, e); err != nil {
			return storageError(err, "create event")
		}
		return s.insertSetlist(ctx, tx, e.ID, in.Setlist)
	})
	if err != nil {
		err = storageError(err, "create event")
		s.audit(ctx, actor, nil, auditlog.ActionEventCreated, details, err)
		return nil, err
	}

	details["event_id"] = e.ID
	details["date"] = e.Date.Format(time.RFC3339)
	s.audit(ctx, actor, &e.ID, auditlog.ActionEventCreated, details, nil)
	s.notify(ctx, notification.SetlistChange{Type: notification.TypeEventCreated, EventID: e.ID, Title: e.Title})

	created, err := s.Query.GetByID(ctx, e.ID, true)
	if err != nil {
		log.Error("event created but reload failed", "event_id", e.ID, "err", err)
		return nil, err
	}
	return created, nil
}

// ===========================
// 🛠 Update Event
// UpdateEvent applies the patch and, when setlist is non-nil, replaces the
// whole setlist with it. An empty slice clears the setlist.
func (s *Service) UpdateEvent(ctx context.Context, id uuid.UUID, patch EventPatch, setlist *[]SetlistItem, actor auditlog.Actor) (*Event, error) {
	details := map[string]interface{}{"event_id": id, "replace_setlist": setlist != nil}

	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			s.audit(ctx, actor, &id, auditlog.ActionEventUpdated, details, err)
			return nil, err
		}
		trimmed := strings.TrimSpace(*patch.Title)
		patch.Title = &trimmed
	}

	changes := patch.changes()
	var title string
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		e, err := repo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if e == nil {
			return errEventNotFound
		}
		title = e.Title
		if patch.Title != nil {
			title = *patch.Title
		}

		if err := repo.Update(ctx, id, changes); err != nil {
			return storageError(err, "update event")
		}

		if setlist == nil {
			return nil
		}
		if _, err := s.Entries.WithTx(tx).DeleteForEvent(ctx, id); err != nil {
			return err
		}
		return s.insertSetlist(ctx, tx, id, *setlist)
	})
	if err != nil {
		err = storageError(err, "update event")
		s.audit(ctx, actor, &id, auditlog.ActionEventUpdated, details, err)
		return nil, err
	}

	fields := make([]string, 0, len(changes))
	for k := range changes {
		fields = append(fields, k)
	}
	details["fields"] = fields
	if setlist != nil {
		details["setlist_size"] = len(*setlist)
	}
	s.audit(ctx, actor, &id, auditlog.ActionEventUpdated, details, nil)
	s.notify(ctx, notification.SetlistChange{Type: notification.TypeEventUpdated, EventID: id, Title: title})

	updated, err := s.Query.GetByID(ctx, id, true)
	if err != nil {
		log.Error("event updated but reload failed", "event_id", id, "err", err)
		return nil, err
	}
	return updated, nil
}

// ===========================
// ❌ Delete Event
func (s *Service) DeleteEvent(ctx context.Context, id uuid.UUID, actor auditlog.Actor) error {
	details := map[string]interface{}{"event_id": id}

	deleted, err := s.Repo.Delete(ctx, id)
	if err != nil {
		err = storageError(err, "delete event")
	} else if !deleted {
		err = errEventNotFound
	}
	s.audit(ctx, actor, &id, auditlog.ActionEventDeleted, details, err)
	if err != nil {
		return err
	}

	s.notify(ctx, notification.SetlistChange{Type: notification.TypeEventDeleted, EventID: id})
	return nil
}

// ===========================
// 🔍 Reads
func (s *Service) GetEventByID(ctx context.Context, id uuid.UUID, includeSetlist bool) (*Event, error) {
	return s.Query.GetByID(ctx, id, includeSetlist)
}

func (s *Service) ListEvents(ctx context.Context, f ListFilter) (*PaginatedEvents, error) {
	return s.Query.List(ctx, f)
}

func (s *Service) GetEventSetlist(ctx context.Context, eventID uuid.UUID) ([]SetlistEntry, error) {
	return s.Setlist.ListForEvent(ctx, eventID)
}

// CheckEvent returns a NotFound error when the event does not exist.
func (s *Service) CheckEvent(ctx context.Context, id uuid.UUID) error {
	exists, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return apperror.TransactionFailure(err, "load event")
	}
	if !exists {
		return errEventNotFound
	}
	return nil
}

// UpcomingPublicEvents feeds the reminder scheduler.
func (s *Service) UpcomingPublicEvents(ctx context.Context, from, to time.Time) ([]notification.UpcomingEvent, error) {
	events, err := s.Repo.ListPublicBetween(ctx, from, to)
	if err != nil {
		return nil, apperror.TransactionFailure(err, "list upcoming events")
	}
	upcoming := make([]notification.UpcomingEvent, len(events))
	for i, e := range events {
		upcoming[i] = notification.UpcomingEvent{ID: e.ID, Title: e.Title, Date: e.Date}
	}
	return upcoming, nil
}

// ===========================
// 🎵 Setlist entries
func (s *Service) AddSongToSetlist(ctx context.Context, eventID uuid.UUID, in AddEntryInput, actor auditlog.Actor) (*SetlistEntry, error) {
	details := map[string]interface{}{"song_id": in.SongID}
	if in.Order != nil {
		details["order_in_setlist"] = *in.Order
	}

	entry, err := s.Setlist.Add(ctx, eventID, in)
	if err != nil {
		s.audit(ctx, actor, &eventID, auditlog.ActionSetlistSongAdded, details, err)
		return nil, err
	}

	details["order_in_setlist"] = entry.OrderInSetlist
	s.audit(ctx, actor, &eventID, auditlog.ActionSetlistSongAdded, details, nil)
	s.notify(ctx, notification.SetlistChange{
		Type:    notification.TypeSetlistSongAdded,
		EventID: eventID,
		SongID:  &entry.SongID,
		Order:   &entry.OrderInSetlist,
	})
	return entry, nil
}

func (s *Service) RemoveSongFromSetlist(ctx context.Context, eventID, songID uuid.UUID, actor auditlog.Actor) error {
	details := map[string]interface{}{"song_id": songID}

	err := s.Setlist.Remove(ctx, eventID, songID)
	s.audit(ctx, actor, &eventID, auditlog.ActionSetlistSongRemoved, details, err)
	if err != nil {
		return err
	}

	s.notify(ctx, notification.SetlistChange{Type: notification.TypeSetlistSongRemoved, EventID: eventID, SongID: &songID})
	return nil
}

func (s *Service) UpdateSetlistEntry(ctx context.Context, eventID, songID uuid.UUID, in UpdateEntryInput, actor auditlog.Actor) (*SetlistEntry, error) {
	details := map[string]interface{}{"song_id": songID}
	if in.Order != nil {
		details["order_in_setlist"] = *in.Order
	}
	if in.Notes != nil {
		details["notes_changed"] = true
	}

	entry, err := s.Setlist.UpdateEntry(ctx, eventID, songID, in)
	s.audit(ctx, actor, &eventID, auditlog.ActionSetlistEntryUpdated, details, err)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, notification.SetlistChange{
		Type:    notification.TypeSetlistEntryUpdated,
		EventID: eventID,
		SongID:  &entry.SongID,
		Order:   &entry.OrderInSetlist,
	})
	return entry, nil
}

// ===========================
// helpers

// resolveCreator prefers an explicit creator, which must exist. The caller's
// own id is used otherwise and dropped when the account is gone.
func (s *Service) resolveCreator(ctx context.Context, tx *gorm.DB, explicit, actorID *uuid.UUID) (*uuid.UUID, error) {
	users := s.lookups.withTx(tx)
	if explicit != nil {
		u, err := users.user(ctx, *explicit)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, apperror.InvalidReference("user %s does not exist", *explicit)
		}
		return &u.ID, nil
	}
	if actorID == nil {
		return nil, nil
	}
	u, err := users.user(ctx, *actorID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		log.Warn("ignoring creator that no longer exists", "user_id", *actorID)
		return nil, nil
	}
	return &u.ID, nil
}

// insertSetlist validates the batch, resolves every song on tx and writes
// all entries. Nothing is written when any item is rejected.
func (s *Service) insertSetlist(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, items []SetlistItem) error {
	if len(items) == 0 {
		return nil
	}

	planned, err := PlanBatch(items)
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, len(planned))
	for i, p := range planned {
		ids[i] = p.SongID
	}
	songs, err := s.lookups.withTx(tx).songsByID(ctx, ids)
	if err != nil {
		return err
	}

	entries := make([]SetlistEntry, len(planned))
	for i, p := range planned {
		if _, ok := songs[p.SongID]; !ok {
			return apperror.InvalidReference("song %s does not exist", p.SongID)
		}
		entries[i] = SetlistEntry{
			EventID:        eventID,
			SongID:         p.SongID,
			OrderInSetlist: p.Order,
			Notes:          p.Notes,
		}
	}

	if err := s.Entries.WithTx(tx).InsertAll(ctx, entries); err != nil {
		return storageError(err, "insert setlist")
	}
	return nil
}

func (s *Service) audit(ctx context.Context, actor auditlog.Actor, target *uuid.UUID, action string, details map[string]interface{}, opErr error) {
	if s.AuditSvc == nil {
		return
	}
	status := auditlog.StatusSuccess
	if opErr != nil {
		status = auditlog.StatusFailure
		details["error"] = apperror.MessageOf(opErr)
		details["kind"] = apperror.KindOf(opErr).String()
	}
	if err := s.AuditSvc.LogAction(ctx, actor, target, action, details, status); err != nil {
		log.Error("audit log write failed", "action", action, "err", err)
	}
}

func (s *Service) notify(ctx context.Context, change notification.SetlistChange) {
	if change.At.IsZero() {
		change.At = time.Now().UTC()
	}
	s.NotifSvc.Notify(ctx, change)
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperror.InvalidInput("title is required")
	}
	if len(title) > maxTitleLength {
		return apperror.InvalidInput("title must be at most %d characters", maxTitleLength)
	}
	return nil
}
