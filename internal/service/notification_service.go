package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campuskit/timetable-api/internal/dto"
	"github.com/campuskit/timetable-api/internal/timetable"
	"github.com/campuskit/timetable-api/pkg/config"
	"github.com/campuskit/timetable-api/pkg/jobs"
)

const jobTypeRescheduleSummary = "reschedule_summary"

// NotificationService fans reschedule outcomes out to affected faculty via a
// background queue. Delivery is fire-and-forget: a failed broadcast never
// fails the reschedule itself.
type NotificationService struct {
	queue   *jobs.Queue
	logger  *zap.Logger
	enabled bool
}

// NewNotificationService builds the service and its backing queue.
func NewNotificationService(cfg config.NotificationsConfig, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &NotificationService{logger: logger, enabled: cfg.Enabled}
	s.queue = jobs.NewQueue(jobTypeRescheduleSummary, s.deliver, jobs.QueueConfig{
		Workers:    cfg.Workers,
		BufferSize: cfg.BufferSize,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Logger:     logger,
	})
	return s
}

// Start launches the worker pool.
func (s *NotificationService) Start(ctx context.Context) {
	if !s.enabled {
		return
	}
	s.queue.Start(ctx)
}

// Stop drains the worker pool.
func (s *NotificationService) Stop() {
	if !s.enabled {
		return
	}
	s.queue.Stop()
}

// DispatchRescheduleSummary groups the reschedule outcome per faculty member
// and enqueues one summary job each.
func (s *NotificationService) DispatchRescheduleSummary(date time.Time, reason string, mode timetable.RescheduleMode, result timetable.RescheduleResult) {
	if !s.enabled {
		return
	}

	notifications := BuildFacultyNotifications(date, reason, mode, result)
	for _, n := range notifications {
		if err := s.queue.Enqueue(jobs.Job{
			ID:      uuid.NewString(),
			Type:    jobTypeRescheduleSummary,
			Payload: n,
		}); err != nil {
			s.logger.Warn("failed to enqueue reschedule summary",
				zap.String("faculty_id", n.FacultyID), zap.Error(err))
		}
	}
}

// BuildFacultyNotifications produces one notification per affected faculty
// member, sessions ordered relocations first then cancellations.
func BuildFacultyNotifications(date time.Time, reason string, mode timetable.RescheduleMode, result timetable.RescheduleResult) []dto.FacultyNotification {
	byFaculty := make(map[string]*dto.FacultyNotification)
	get := func(facultyID string) *dto.FacultyNotification {
		if n, ok := byFaculty[facultyID]; ok {
			return n
		}
		n := &dto.FacultyNotification{
			FacultyID: facultyID,
			Date:      date,
			Reason:    reason,
			Mode:      string(mode),
		}
		byFaculty[facultyID] = n
		return n
	}

	for _, entry := range result.Relocated {
		start := entry.StartTime
		end := entry.EndTime
		n := get(entry.FacultyID)
		n.Sessions = append(n.Sessions, dto.NotificationDetail{
			SubjectID:   entry.SubjectID,
			ClassroomID: entry.ClassroomID,
			Outcome:     "RELOCATED",
			NewDay:      entry.DayOfWeek,
			NewStart:    &start,
			NewEnd:      &end,
		})
	}

	for _, entry := range result.Cancelled {
		n := get(entry.FacultyID)
		n.Sessions = append(n.Sessions, dto.NotificationDetail{
			SubjectID:   entry.SubjectID,
			ClassroomID: entry.ClassroomID,
			Outcome:     "CANCELLED",
		})
	}

	notifications := make([]dto.FacultyNotification, 0, len(byFaculty))
	for _, n := range byFaculty {
		notifications = append(notifications, *n)
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].FacultyID < notifications[j].FacultyID
	})
	return notifications
}

func (s *NotificationService) deliver(ctx context.Context, job jobs.Job) error {
	notification, ok := job.Payload.(dto.FacultyNotification)
	if !ok {
		s.logger.Error("unexpected notification payload", zap.String("job_id", job.ID))
		return nil
	}

	// Delivery channel integration (email, push) lands behind this log line.
	s.logger.Info("reschedule summary dispatched",
		zap.String("faculty_id", notification.FacultyID),
		zap.Time("date", notification.Date),
		zap.String("mode", notification.Mode),
		zap.Int("sessions", len(notification.Sessions)),
	)
	return nil
}
