// Package session owns all mutable per-session state: generated region
// datasets with their timestamps, the append-only aid-request sequence,
// the login flag, and the currently selected region. Nothing else in the
// service holds a second copy of any of it.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/couchcryptid/crisis-coordination-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Rejection reasons surfaced to the user. All of them are recoverable;
// none terminates the session.
var (
	ErrNotLoggedIn      = errors.New("approval requires government login")
	ErrMissingCreds     = errors.New("username and password must both be provided")
	ErrEmptyAidType     = errors.New("aid type must not be empty")
	ErrNoRegionSelected = errors.New("no region selected")
	ErrUnknownDistrict  = errors.New("district is not part of the selected region's dataset")
	ErrNoSuchRequest    = errors.New("no aid request at that index")
)

// State is one interactive session's store. All methods are safe for
// concurrent use; every mutation is atomic with respect to the action
// that triggered it.
type State struct {
	mu             sync.Mutex
	loggedIn       bool
	selectedRegion string
	datasets       map[string]*domain.RegionDataset
	requests       []domain.AidRequest

	clock clockwork.Clock
	ttl   time.Duration
}

func newState(clock clockwork.Clock, ttl time.Duration) *State {
	return &State{
		datasets: make(map[string]*domain.RegionDataset),
		clock:    clock,
		ttl:      ttl,
	}
}

// Login sets the login flag for the rest of the session. Per the stated
// contract, any non-empty credential pair is accepted; the flag gates
// approval and nothing else.
func (s *State) Login(username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCreds
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = true
	return nil
}

// LoggedIn reports whether the session holds the login flag.
func (s *State) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// SelectRegion records the region subsequent dataset reads and request
// submissions apply to.
func (s *State) SelectRegion(region string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedRegion = region
}

// SelectedRegion returns the current region, or "" before any selection.
func (s *State) SelectedRegion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedRegion
}

// Dataset returns the region's dataset if present and not past its TTL.
// A TTL of zero disables expiry. Expired datasets are reported as absent
// so the caller regenerates; the stale entry stays until replaced.
func (s *State) Dataset(region string) (domain.RegionDataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds, ok := s.datasets[region]
	if !ok {
		return domain.RegionDataset{}, false
	}
	if s.ttl > 0 && s.clock.Since(ds.GeneratedAt) > s.ttl {
		return domain.RegionDataset{}, false
	}
	return *ds, true
}

// PutDataset replaces the region's dataset wholesale and stamps the
// generation time. No record identity carries over from a prior cycle.
func (s *State) PutDataset(region string, records []domain.DistrictRecord) domain.RegionDataset {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds := &domain.RegionDataset{
		Region:      region,
		Records:     records,
		GeneratedAt: s.clock.Now(),
	}
	s.datasets[region] = ds
	return *ds
}

// Submit appends a Pending aid request for a district of the selected
// region's dataset and returns its index. Duplicate submissions are
// permitted and tracked separately. An empty aid type and a district
// outside the selected dataset are both rejected as no-ops.
func (s *State) Submit(district, aidType string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if aidType == "" {
		return 0, ErrEmptyAidType
	}

	ds, ok := s.datasets[s.selectedRegion]
	if s.selectedRegion == "" || !ok {
		return 0, ErrNoRegionSelected
	}
	if !datasetHasDistrict(ds, district) {
		return 0, ErrUnknownDistrict
	}

	s.requests = append(s.requests, domain.AidRequest{
		Region:  district,
		AidType: aidType,
		Status:  domain.StatusPending,
	})
	return len(s.requests) - 1, nil
}

// Requests returns a copy of the full request sequence. Positional index
// is request identity.
func (s *State) Requests() []domain.AidRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.AidRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// Approve transitions the request at index from Pending to Approved.
// It requires the login flag. Approving an already-approved request is
// an idempotent success; the returned bool reports whether this call
// changed anything.
func (s *State) Approve(index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loggedIn {
		return false, ErrNotLoggedIn
	}
	if index < 0 || index >= len(s.requests) {
		return false, ErrNoSuchRequest
	}
	if s.requests[index].Status == domain.StatusApproved {
		return false, nil
	}
	s.requests[index].Status = domain.StatusApproved
	return true, nil
}

func datasetHasDistrict(ds *domain.RegionDataset, district string) bool {
	for _, r := range ds.Records {
		if r.District == district {
			return true
		}
	}
	return false
}
