// ABOUTME: Lead catalog holding the ordered lead feed for the signed-in contractor
// ABOUTME: Sole enforcement point for the forward-only status transitions
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/ocalarepair/leadview/models"
)

// LeadCatalog owns the lead collection. Ordering is fixed newest-first at
// load time; status mutation happens in place and never reorders the list.
type LeadCatalog struct {
	mu    sync.Mutex
	leads []models.Lead
	index map[string]int

	source LeadSource
	log    *zap.SugaredLogger
}

func NewLeadCatalog(source LeadSource, log *zap.SugaredLogger) *LeadCatalog {
	return &LeadCatalog{
		index:  map[string]int{},
		source: source,
		log:    log,
	}
}

// Load fetches the feed and establishes the reverse-chronological order.
func (c *LeadCatalog) Load(ctx context.Context) error {
	leads, err := c.source.FetchLeads(ctx)
	if err != nil {
		return fmt.Errorf("fetching leads: %w", err)
	}
	sortLeads(leads)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.replace(leads)
	c.log.Infow("leads loaded", "count", len(leads))
	return nil
}

// Refresh re-fetches the feed. Statuses already advanced locally win over
// the fetched record so a refresh can never regress a lead.
func (c *LeadCatalog) Refresh(ctx context.Context) ([]models.Lead, error) {
	leads, err := c.source.FetchLeads(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing leads: %w", err)
	}
	sortLeads(leads)

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, lead := range leads {
		if j, ok := c.index[lead.ID]; ok && c.leads[j].Status.Rank() > lead.Status.Rank() {
			leads[i].Status = c.leads[j].Status
		}
	}
	c.replace(leads)
	c.log.Infow("leads refreshed", "count", len(leads))
	return c.snapshot(), nil
}

// List returns the leads in their established order.
func (c *LeadCatalog) List() []models.Lead {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Get returns the lead with the given id, or ErrNotFound.
func (c *LeadCatalog) Get(id string) (models.Lead, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index[id]
	if !ok {
		return models.Lead{}, fmt.Errorf("lead %s: %w", id, ErrNotFound)
	}
	return c.leads[i], nil
}

// MarkViewed records that the lead was opened. Idempotent: a lead already
// viewed or contacted is returned unchanged.
func (c *LeadCatalog) MarkViewed(id string) (models.Lead, error) {
	return c.advance(id, models.StatusViewed)
}

// MarkContacted records that the contractor reached out to the resident.
func (c *LeadCatalog) MarkContacted(id string) (models.Lead, error) {
	return c.advance(id, models.StatusContacted)
}

// advance raises the lead's status to the target if that moves it forward.
// The rank guard is what keeps status monotonic.
func (c *LeadCatalog) advance(id string, to models.Status) (models.Lead, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index[id]
	if !ok {
		return models.Lead{}, fmt.Errorf("lead %s: %w", id, ErrNotFound)
	}
	if to.Rank() > c.leads[i].Status.Rank() {
		c.leads[i].Status = to
		c.log.Infow("lead status", "id", id, "status", to)
	}
	return c.leads[i], nil
}

// replace swaps in a new ordered slice and rebuilds the id index.
// Callers hold the lock.
func (c *LeadCatalog) replace(leads []models.Lead) {
	c.leads = leads
	c.index = make(map[string]int, len(leads))
	for i, lead := range leads {
		c.index[lead.ID] = i
	}
}

func (c *LeadCatalog) snapshot() []models.Lead {
	out := make([]models.Lead, len(c.leads))
	copy(out, c.leads)
	return out
}

func sortLeads(leads []models.Lead) {
	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].DateRequested.After(leads[j].DateRequested)
	})
}
