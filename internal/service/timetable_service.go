package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campuskit/timetable-api/internal/dto"
	"github.com/campuskit/timetable-api/internal/models"
	"github.com/campuskit/timetable-api/internal/timetable"
	"github.com/campuskit/timetable-api/pkg/config"
	appErrors "github.com/campuskit/timetable-api/pkg/errors"
	"github.com/campuskit/timetable-api/pkg/export"
)

type subjectLister interface {
	ListForScheduling(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, error)
}

type facultyLister interface {
	ListWithSubjects(ctx context.Context, departmentID string) ([]models.FacultyMember, error)
}

type classroomLister interface {
	List(ctx context.Context, departmentID string) ([]models.Classroom, error)
}

type timetableStore interface {
	List(ctx context.Context, filter models.TimetableFilter) ([]models.TimetableEntry, error)
	ListAll(ctx context.Context) ([]models.TimetableEntry, error)
	ReplaceAll(ctx context.Context, entries []models.TimetableEntry) error
	ApplyReschedule(ctx context.Context, relocated []models.TimetableEntry) error
}

type holidayWriter interface {
	Create(ctx context.Context, holiday *models.Holiday) error
}

type timetableCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}

type rescheduleNotifier interface {
	DispatchRescheduleSummary(date time.Time, reason string, mode timetable.RescheduleMode, result timetable.RescheduleResult)
}

type schedulerMetrics interface {
	RecordGeneration(entries, warnings int, duration time.Duration)
	RecordReschedule(relocated, cancelled int, duration time.Duration)
}

// TimetableService orchestrates generation, emergency rescheduling, listing
// and export of the weekly timetable. Generate and Reschedule serialize on an
// internal mutex: each run reads a consistent snapshot and writes its result
// atomically before the next run may start.
type TimetableService struct {
	subjects   subjectLister
	faculty    facultyLister
	classrooms classroomLister
	store      timetableStore
	holidays   holidayWriter
	cache      timetableCache
	notifier   rescheduleNotifier
	metrics    schedulerMetrics

	validator *validator.Validate
	logger    *zap.Logger
	cfg       config.SchedulerConfig

	mu sync.Mutex
}

// NewTimetableService constructs the service. Cache, notifier and metrics are
// optional.
func NewTimetableService(
	subjects subjectLister,
	faculty facultyLister,
	classrooms classroomLister,
	store timetableStore,
	holidays holidayWriter,
	cache timetableCache,
	notifier rescheduleNotifier,
	metrics schedulerMetrics,
	validate *validator.Validate,
	logger *zap.Logger,
	cfg config.SchedulerConfig,
) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TimetableCachePrefix == "" {
		cfg.TimetableCachePrefix = "timetable"
	}
	return &TimetableService{
		subjects:   subjects,
		faculty:    faculty,
		classrooms: classrooms,
		store:      store,
		holidays:   holidays,
		cache:      cache,
		notifier:   notifier,
		metrics:    metrics,
		validator:  validate,
		logger:     logger,
		cfg:        cfg,
	}
}

// Generate replaces the entire weekly timetable from current subject, faculty
// and classroom data. The previous timetable is discarded wholesale; partial
// placements are kept and reported as warnings.
func (s *TimetableService) Generate(ctx context.Context, req dto.GenerateTimetableRequest, createdBy string) (*dto.GenerateTimetableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generation payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()

	subjects, err := s.subjects.ListForScheduling(ctx, models.SubjectFilter{
		DepartmentID: req.DepartmentID,
		Semester:     req.Semester,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subjects")
	}
	if len(subjects) == 0 {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "no subjects available for scheduling")
	}

	faculty, err := s.faculty.ListWithSubjects(ctx, req.DepartmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load faculty")
	}

	classrooms, err := s.classrooms.List(ctx, req.DepartmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load classrooms")
	}

	constraints := s.mergeConstraints(req.Constraints)
	entries, warnings := timetable.Generate(faculty, subjects, classrooms, constraints, createdBy)

	if err := s.store.ReplaceAll(ctx, entries); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist timetable")
	}

	s.invalidateCache(ctx)
	if s.metrics != nil {
		s.metrics.RecordGeneration(len(entries), len(warnings), time.Since(started))
	}

	s.logger.Info("timetable generated",
		zap.Int("entries", len(entries)),
		zap.Int("warnings", len(warnings)),
		zap.String("department_id", req.DepartmentID),
		zap.Int("semester", req.Semester),
	)

	return &dto.GenerateTimetableResponse{Entries: entries, Warnings: warnings}, nil
}

// Reschedule handles an emergency disruption of a single date. The emergency
// holiday record is written before any relocation is attempted, so the date
// is blocked even if later steps fail.
func (s *TimetableService) Reschedule(ctx context.Context, req dto.RescheduleRequest, createdBy string) (*dto.RescheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid reschedule payload")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid date")
	}

	disrupted, err := timetable.DayFromDate(date)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date is not a teaching day")
	}

	mode := timetable.RescheduleMode(req.Mode)
	if !mode.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported reschedule mode")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	now := time.Now().UTC()

	holiday := &models.Holiday{
		ID:          uuid.NewString(),
		Name:        fmt.Sprintf("Emergency closure: %s", req.Reason),
		Date:        date,
		Type:        models.HolidayTypeEmergency,
		Description: req.Reason,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.holidays.Create(ctx, holiday); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record emergency holiday")
	}

	existing, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}

	result := timetable.Reschedule(disrupted, mode, existing)

	if len(result.Relocated) > 0 {
		if err := s.store.ApplyReschedule(ctx, result.Relocated); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist relocations")
		}
	}

	s.invalidateCache(ctx)
	if s.notifier != nil {
		s.notifier.DispatchRescheduleSummary(date, req.Reason, mode, result)
	}
	if s.metrics != nil {
		s.metrics.RecordReschedule(len(result.Relocated), len(result.Cancelled), time.Since(started))
	}

	s.logger.Info("emergency reschedule applied",
		zap.String("date", req.Date),
		zap.String("mode", req.Mode),
		zap.Int("relocated", len(result.Relocated)),
		zap.Int("cancelled", len(result.Cancelled)),
	)

	return &dto.RescheduleResponse{
		HolidayID: holiday.ID,
		Relocated: result.Relocated,
		Cancelled: result.Cancelled,
	}, nil
}

// List returns timetable entries, read through the cache when one is wired.
func (s *TimetableService) List(ctx context.Context, query dto.TimetableQuery) ([]models.TimetableEntry, error) {
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable query")
	}

	key := s.cacheKey(query)
	if s.cache != nil {
		if cached, found, err := s.cache.Get(ctx, key); err == nil && found {
			var entries []models.TimetableEntry
			if err := json.Unmarshal([]byte(cached), &entries); err == nil {
				return entries, nil
			}
		} else if err != nil {
			s.logger.Warn("timetable cache read failed", zap.Error(err))
		}
	}

	entries, err := s.store.List(ctx, models.TimetableFilter{
		FacultyID: query.FacultyID,
		DayOfWeek: query.DayOfWeek,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, key, string(encoded), s.cfg.TimetableCacheTTL); err != nil {
				s.logger.Warn("timetable cache write failed", zap.Error(err))
			}
		}
	}

	return entries, nil
}

// Export renders the current timetable in the requested format. Supported
// formats are "csv" and "pdf".
func (s *TimetableService) Export(ctx context.Context, format string) ([]byte, string, error) {
	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}

	dataset := buildTimetableDataset(entries)

	switch strings.ToLower(format) {
	case "csv", "":
		payload, err := export.NewCSVExporter().Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := export.NewPDFExporter().Render(dataset, "Weekly Timetable")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}

func (s *TimetableService) mergeConstraints(req *dto.ConstraintsRequest) timetable.Constraints {
	constraints := timetable.DefaultConstraints()
	if s.cfg.MaxDailyHours > 0 {
		constraints.MaxDailyHours = s.cfg.MaxDailyHours
	}
	if s.cfg.MaxWeeklyHours > 0 {
		constraints.MaxWeeklyHours = s.cfg.MaxWeeklyHours
	}
	if s.cfg.MinGapMinutes > 0 {
		constraints.MinGapMinutes = s.cfg.MinGapMinutes
	}
	constraints.LabHoursRequired = s.cfg.LabHoursRequired

	if req == nil {
		return constraints
	}
	if req.MaxDailyHours > 0 {
		constraints.MaxDailyHours = req.MaxDailyHours
	}
	if req.MaxWeeklyHours > 0 {
		constraints.MaxWeeklyHours = req.MaxWeeklyHours
	}
	if req.MinGapMinutes > 0 {
		constraints.MinGapMinutes = req.MinGapMinutes
	}
	if len(req.PreferredSlots) > 0 {
		constraints.PreferredSlots = req.PreferredSlots
	}
	if req.LabHoursRequired != nil {
		constraints.LabHoursRequired = *req.LabHoursRequired
	}
	return constraints
}

func (s *TimetableService) cacheKey(query dto.TimetableQuery) string {
	return fmt.Sprintf("%s:list:faculty=%s:day=%d", s.cfg.TimetableCachePrefix, query.FacultyID, query.DayOfWeek)
}

func (s *TimetableService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidatePrefix(ctx, s.cfg.TimetableCachePrefix); err != nil {
		s.logger.Warn("timetable cache invalidation failed", zap.Error(err))
	}
}

func buildTimetableDataset(entries []models.TimetableEntry) export.Dataset {
	headers := []string{"Day", "Start", "End", "Subject", "Faculty", "Classroom", "Type", "Rescheduled"}
	rows := make([]map[string]string, 0, len(entries))
	for _, entry := range entries {
		rescheduled := "no"
		if entry.IsRescheduled {
			rescheduled = "yes"
		}
		rows = append(rows, map[string]string{
			"Day":         timetable.Day(entry.DayOfWeek).String(),
			"Start":       entry.StartTime.Format("15:04"),
			"End":         entry.EndTime.Format("15:04"),
			"Subject":     entry.SubjectID,
			"Faculty":     entry.FacultyID,
			"Classroom":   entry.ClassroomID,
			"Type":        string(entry.ClassType),
			"Rescheduled": rescheduled,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}
