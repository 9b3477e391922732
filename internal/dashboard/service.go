// Package dashboard orchestrates the dashboard actions over the session
// store and scenario generator, and builds the read-only projections the
// presentation layer renders: table rows, chart aggregates, map points,
// and heatmap cells.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/couchcryptid/crisis-coordination-service/internal/domain"
	"github.com/couchcryptid/crisis-coordination-service/internal/observability"
	"github.com/couchcryptid/crisis-coordination-service/internal/session"
)

// Generator produces a fresh dataset for a region.
type Generator interface {
	Generate(region string) []domain.DistrictRecord
}

// RegionLister names the known regions.
type RegionLister interface {
	Regions() []string
}

// Service wires the dashboard actions together. It owns no state of its
// own; everything mutable lives in the per-session stores.
type Service struct {
	generator Generator
	regions   RegionLister
	sessions  *session.Manager
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Service over the given collaborators.
func New(generator Generator, regions RegionLister, sessions *session.Manager, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		generator: generator,
		regions:   regions,
		sessions:  sessions,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness reports whether reference data is loaded and the service
// can serve datasets.
func (s *Service) CheckReadiness(_ context.Context) error {
	if len(s.regions.Regions()) == 0 {
		return errors.New("district catalog has no regions")
	}
	return nil
}

// Regions lists the selectable region names.
func (s *Service) Regions() []string {
	return s.regions.Regions()
}

// CreateSession issues a fresh session and returns its ID.
func (s *Service) CreateSession() string {
	id, _ := s.sessions.Create()
	s.logger.Info("session created", "session_id", id)
	return id
}

// Session resolves a session ID.
func (s *Service) Session(id string) (*session.State, bool) {
	return s.sessions.Get(id)
}

// SelectRegion makes region the session's current region and returns its
// dataset, generating one if none is loaded or the loaded one has
// expired. An unknown region yields an empty dataset, not an error.
func (s *Service) SelectRegion(st *session.State, region string) domain.RegionDataset {
	st.SelectRegion(region)
	return s.ensureDataset(st, region)
}

// Refresh regenerates the selected region's dataset unconditionally,
// replacing the prior one and its timestamp.
func (s *Service) Refresh(st *session.State) (domain.RegionDataset, error) {
	region := st.SelectedRegion()
	if region == "" {
		s.reject("no_region_selected")
		return domain.RegionDataset{}, session.ErrNoRegionSelected
	}
	return s.generate(st, region), nil
}

// Dataset returns the current region's dataset, regenerating on absence
// or expiry, plus the records remaining after the tier filter.
func (s *Service) Dataset(st *session.State, filter domain.TierFilter) (domain.RegionDataset, []domain.DistrictRecord, error) {
	region := st.SelectedRegion()
	if region == "" {
		s.reject("no_region_selected")
		return domain.RegionDataset{}, nil, session.ErrNoRegionSelected
	}
	ds := s.ensureDataset(st, region)
	return ds, domain.FilterByTier(ds.Records, filter), nil
}

// Submit appends a Pending aid request and returns its index.
func (s *Service) Submit(st *session.State, district, aidType string) (int, error) {
	idx, err := st.Submit(district, aidType)
	if err != nil {
		s.reject(rejectionReason(err))
		return 0, err
	}
	s.metrics.RequestsSubmitted.Inc()
	s.logger.Info("aid request submitted", "district", district, "aid_type", aidType, "index", idx)
	return idx, nil
}

// Approve transitions the request at index to Approved. The returned
// bool reports whether this call changed anything; approving an
// already-approved request is an idempotent success.
func (s *Service) Approve(st *session.State, index int) (bool, error) {
	changed, err := st.Approve(index)
	if err != nil {
		s.reject(rejectionReason(err))
		return false, err
	}
	if changed {
		s.metrics.RequestsApproved.Inc()
		s.logger.Info("aid request approved", "index", index)
	}
	return changed, nil
}

// Login sets the session's login flag when both fields are non-empty.
func (s *Service) Login(st *session.State, username, password string) error {
	if err := st.Login(username, password); err != nil {
		s.reject(rejectionReason(err))
		return err
	}
	s.metrics.Logins.Inc()
	s.logger.Info("government login", "username", username)
	return nil
}

// ensureDataset returns the region's live dataset, generating one when
// absent or past its TTL.
func (s *Service) ensureDataset(st *session.State, region string) domain.RegionDataset {
	if ds, ok := st.Dataset(region); ok {
		return ds
	}
	return s.generate(st, region)
}

func (s *Service) generate(st *session.State, region string) domain.RegionDataset {
	start := time.Now()
	records := s.generator.Generate(region)
	ds := st.PutDataset(region, records)

	s.metrics.DatasetsGenerated.WithLabelValues(region).Inc()
	s.metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	s.metrics.DatasetSize.Observe(float64(len(records)))
	for _, r := range records {
		if r.Geo == nil {
			s.metrics.CoordinateMisses.Inc()
		}
	}

	s.logger.Info("dataset generated", "region", region, "districts", len(records), "generated_at", ds.GeneratedAt)
	return ds
}

func (s *Service) reject(reason string) {
	s.metrics.RejectedActions.WithLabelValues(reason).Inc()
}

// rejectionReason maps workflow errors to stable metric label values.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, session.ErrNotLoggedIn):
		return "not_logged_in"
	case errors.Is(err, session.ErrMissingCreds):
		return "missing_credentials"
	case errors.Is(err, session.ErrEmptyAidType):
		return "empty_aid_type"
	case errors.Is(err, session.ErrNoRegionSelected):
		return "no_region_selected"
	case errors.Is(err, session.ErrUnknownDistrict):
		return "unknown_district"
	case errors.Is(err, session.ErrNoSuchRequest):
		return "no_such_request"
	default:
		return "other"
	}
}

// sortByUrgencyDesc returns the records ordered by descending urgency.
// Ties keep their original order.
func sortByUrgencyDesc(records []domain.DistrictRecord) []domain.DistrictRecord {
	out := make([]domain.DistrictRecord, len(records))
	copy(out, records)
	slices.SortStableFunc(out, func(a, b domain.DistrictRecord) int {
		switch {
		case a.UrgencyScore > b.UrgencyScore:
			return -1
		case a.UrgencyScore < b.UrgencyScore:
			return 1
		default:
			return 0
		}
	})
	return out
}
