package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"luxora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeFinanceRepo struct {
	records    []models.FinanceRecord
	failDelete bool
}

func (r *fakeFinanceRepo) Create(_ context.Context, record models.FinanceRecord) (string, error) {
	r.records = append(r.records, record)
	return record.ID, nil
}

func (r *fakeFinanceRepo) GetPayoutsByCompanyID(_ context.Context, companyID string) ([]models.FinanceRecord, error) {
	var out []models.FinanceRecord
	for _, rec := range r.records {
		if rec.CompanyID == companyID && rec.ServiceKey == models.ServiceKeyCollaboratorPayout {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeFinanceRepo) DeleteByID(_ context.Context, id string) error {
	if r.failDelete {
		return errors.New("connection reset")
	}
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return errors.New("finance record not found")
}

func (r *fakeFinanceRepo) DistinctPayoutCompanies(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, rec := range r.records {
		if rec.ServiceKey == models.ServiceKeyCollaboratorPayout && !seen[rec.CompanyID] {
			seen[rec.CompanyID] = true
			out = append(out, rec.CompanyID)
		}
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[string]models.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b models.Booking) (string, error) {
	if r.bookings == nil {
		r.bookings = map[string]models.Booking{}
	}
	r.bookings[b.ID] = b
	return b.ID, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByOfferRef(_ context.Context, offerRef string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.OfferRef == offerRef {
			copied := b
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByCompanyID(_ context.Context, companyID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CompanyID == companyID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetConfirmedByCollaborator(_ context.Context, companyID, collaboratorRef string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.CompanyID == companyID && b.CollaboratorRef == collaboratorRef && b.Status == models.BookingConfirmed {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) DeleteByID(_ context.Context, id string) error {
	delete(r.bookings, id)
	return nil
}

type fakeCollaboratorRepo struct {
	collabs map[string]models.Collaborator
}

func (r *fakeCollaboratorRepo) Create(_ context.Context, c models.Collaborator) (string, error) {
	if r.collabs == nil {
		r.collabs = map[string]models.Collaborator{}
	}
	r.collabs[c.ID] = c
	return c.ID, nil
}

func (r *fakeCollaboratorRepo) GetByID(_ context.Context, id string) (*models.Collaborator, error) {
	c, ok := r.collabs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := c
	return &copied, nil
}

func (r *fakeCollaboratorRepo) GetByCompanyID(_ context.Context, companyID string) ([]models.Collaborator, error) {
	var out []models.Collaborator
	for _, c := range r.collabs {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCollaboratorRepo) UpdateLedger(_ context.Context, id string, payments []models.PaymentRecord, paidTotal, scheduledTotal float64) error {
	c, ok := r.collabs[id]
	if !ok {
		return errors.New("collaborator not found")
	}
	c.Payments = payments
	c.PaidTotal = paidTotal
	c.ScheduledTotal = scheduledTotal
	r.collabs[id] = c
	return nil
}

func (r *fakeCollaboratorRepo) DeleteByID(_ context.Context, id string) error {
	delete(r.collabs, id)
	return nil
}

type fakeClientRepo struct {
	clients map[string]models.Client
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := c
	return &copied, nil
}

func (r *fakeClientRepo) GetByCompanyID(_ context.Context, companyID string) ([]models.Client, error) {
	var out []models.Client
	for _, c := range r.clients {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Update(_ context.Context, client models.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return errors.New("client not found")
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) DeleteByID(_ context.Context, id string) error {
	delete(r.clients, id)
	return nil
}

func newGuard(finance *fakeFinanceRepo, bookings *fakeBookingRepo, collabs *fakeCollaboratorRepo, clients *fakeClientRepo) *Guard {
	return &Guard{
		Finance:       finance,
		Bookings:      bookings,
		Collaborators: collabs,
		Clients:       clients,
	}
}

func orphanFixture() (*fakeFinanceRepo, *fakeBookingRepo, *fakeCollaboratorRepo) {
	finance := &fakeFinanceRepo{records: []models.FinanceRecord{
		// Live mirror: its booking still exists.
		{ID: "f-live", CompanyID: "acme", CollaboratorRef: "collab-1", BookingRef: "b-1",
			ServiceKey: models.ServiceKeyCollaboratorPayout, ProviderCost: 100, Status: models.FinanceSettled},
		// Orphan: booking was deleted.
		{ID: "f-gone", CompanyID: "acme", CollaboratorRef: "collab-2", BookingRef: "b-deleted",
			ServiceKey: models.ServiceKeyCollaboratorPayout, ProviderCost: 80, Status: models.FinanceSettled},
		// Orphan: legacy record with no booking linkage at all.
		{ID: "f-legacy", CompanyID: "acme", CollaboratorRef: "collab-2",
			ServiceKey: models.ServiceKeyCollaboratorPayout, ProviderCost: 40, Status: models.FinancePending},
		// A different company's record never appears in acme sweeps.
		{ID: "f-other", CompanyID: "globex", CollaboratorRef: "collab-9",
			ServiceKey: models.ServiceKeyCollaboratorPayout, ProviderCost: 10, Status: models.FinanceSettled},
	}}
	bookings := &fakeBookingRepo{bookings: map[string]models.Booking{
		"b-1": {ID: "b-1", CompanyID: "acme", Status: models.BookingConfirmed},
	}}
	collabs := &fakeCollaboratorRepo{collabs: map[string]models.Collaborator{
		"collab-1": {ID: "collab-1", CompanyID: "acme",
			Payments:  []models.PaymentRecord{{ID: "p1", Amount: 100, Status: models.PayoutPaid}},
			PaidTotal: 100},
		"collab-2": {ID: "collab-2", CompanyID: "acme",
			Payments: []models.PaymentRecord{
				{ID: "p2", Amount: 80, Status: models.PayoutPaid},
				{ID: "p3", Amount: 40, Status: models.PayoutScheduled},
			},
			PaidTotal: 80, ScheduledTotal: 40},
	}}
	return finance, bookings, collabs
}

func TestPurgeRequiresScope(t *testing.T) {
	finance, bookings, collabs := orphanFixture()
	guard := newGuard(finance, bookings, collabs, &fakeClientRepo{})

	_, err := guard.PurgeOrphanedPayouts(context.Background(), models.Scope{}, true)
	var ge *GuardError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "missingScope", ge.Code)
}

func TestPurgeDryRunWritesNothing(t *testing.T) {
	finance, bookings, collabs := orphanFixture()
	guard := newGuard(finance, bookings, collabs, &fakeClientRepo{})

	report, err := guard.PurgeOrphanedPayouts(context.Background(), models.Scope{CompanyID: "acme"}, false)
	require.NoError(t, err)

	assert.False(t, report.Applied)
	assert.Equal(t, 2, report.Deletions)
	assert.Equal(t, 1, report.Upserts)
	// Nothing actually changed.
	assert.Len(t, finance.records, 4)
	assert.Len(t, collabs.collabs["collab-2"].Payments, 2)
}

func TestPurgeDeletesOrphansAndResetsLedger(t *testing.T) {
	finance, bookings, collabs := orphanFixture()
	guard := newGuard(finance, bookings, collabs, &fakeClientRepo{})

	report, err := guard.PurgeOrphanedPayouts(context.Background(), models.Scope{CompanyID: "acme"}, true)
	require.NoError(t, err)

	assert.True(t, report.Applied)
	assert.Equal(t, 2, report.Deletions)
	assert.Equal(t, 1, report.Upserts)
	assert.Equal(t, 0, report.Unresolved)

	// The live mirror and the other company's record survive.
	remaining, _ := finance.GetPayoutsByCompanyID(context.Background(), "acme")
	require.Len(t, remaining, 1)
	assert.Equal(t, "f-live", remaining[0].ID)
	other, _ := finance.GetPayoutsByCompanyID(context.Background(), "globex")
	assert.Len(t, other, 1)

	// Affected collaborator got a full reset; the untouched one kept
	// its history.
	reset := collabs.collabs["collab-2"]
	assert.Empty(t, reset.Payments)
	assert.Equal(t, 0.0, reset.PaidTotal)
	assert.Equal(t, 0.0, reset.ScheduledTotal)
	assert.Len(t, collabs.collabs["collab-1"].Payments, 1)
}

func TestPurgeSecondRunIsNoop(t *testing.T) {
	finance, bookings, collabs := orphanFixture()
	guard := newGuard(finance, bookings, collabs, &fakeClientRepo{})

	_, err := guard.PurgeOrphanedPayouts(context.Background(), models.Scope{CompanyID: "acme"}, true)
	require.NoError(t, err)

	second, err := guard.PurgeOrphanedPayouts(context.Background(), models.Scope{CompanyID: "acme"}, true)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Deletions)
	assert.Equal(t, 0, second.Upserts)
	assert.Equal(t, 0, second.Unresolved)
}

func TestListPayoutStatusCountsOrphansPerCompany(t *testing.T) {
	finance, bookings, collabs := orphanFixture()
	guard := newGuard(finance, bookings, collabs, &fakeClientRepo{})

	statuses, err := guard.ListPayoutStatus(context.Background())
	require.NoError(t, err)

	byCompany := map[string]CompanyPayoutStatus{}
	for _, s := range statuses {
		byCompany[s.CompanyID] = s
	}
	require.Contains(t, byCompany, "acme")
	assert.Equal(t, 3, byCompany["acme"].Payouts)
	assert.Equal(t, 2, byCompany["acme"].Orphaned)
	require.Contains(t, byCompany, "globex")
	assert.Equal(t, 1, byCompany["globex"].Payouts)
	assert.Equal(t, 1, byCompany["globex"].Orphaned)
}

func directoryFixture() *fakeClientRepo {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &fakeClientRepo{clients: map[string]models.Client{
		// Three records for the same person in different casings. The
		// one with company linkage and permissions must win.
		"c-rich": {ID: "c-rich", CompanyID: "acme", Email: "Anna@Example.com",
			Permissions: []string{"offers:read"}, CreatedAt: base},
		"c-meta": {ID: "c-meta", CompanyID: "acme", Email: "anna@example.com",
			Name: "Anna K", Metadata: map[string]string{"source": "import"}, CreatedAt: base.Add(time.Hour)},
		"c-bare": {ID: "c-bare", CompanyID: "acme", Email: "ANNA@EXAMPLE.COM",
			Phone: "+33 6 00 00 00 00", CreatedAt: base.Add(2 * time.Hour)},
		// Unique record stays untouched.
		"c-solo": {ID: "c-solo", CompanyID: "acme", Email: "marc@example.com", CreatedAt: base},
		// No identity key: reported, never merged.
		"c-anon": {ID: "c-anon", CompanyID: "acme", CreatedAt: base},
	}}
}

func TestNormalizeMergesDuplicatesByEmail(t *testing.T) {
	clients := directoryFixture()
	guard := newGuard(&fakeFinanceRepo{}, &fakeBookingRepo{}, &fakeCollaboratorRepo{}, clients)

	report, err := guard.NormalizeDirectory(context.Background(), models.Scope{CompanyID: "acme"}, true)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Upserts)
	assert.Equal(t, 2, report.Deletions)
	assert.Equal(t, 1, report.Unresolved)

	canonical, ok := clients.clients["c-rich"]
	require.True(t, ok, "highest-scoring record survives")
	assert.Equal(t, "Anna K", canonical.Name, "gap filled from duplicate")
	assert.Equal(t, "+33 6 00 00 00 00", canonical.Phone)
	assert.Equal(t, []string{"offers:read"}, canonical.Permissions)
	assert.Equal(t, "import", canonical.Metadata["source"])

	_, gotMeta := clients.clients["c-meta"]
	_, gotBare := clients.clients["c-bare"]
	assert.False(t, gotMeta)
	assert.False(t, gotBare)
	_, gotSolo := clients.clients["c-solo"]
	assert.True(t, gotSolo)
}

func TestNormalizeSecondRunIsNoop(t *testing.T) {
	clients := directoryFixture()
	guard := newGuard(&fakeFinanceRepo{}, &fakeBookingRepo{}, &fakeCollaboratorRepo{}, clients)

	_, err := guard.NormalizeDirectory(context.Background(), models.Scope{CompanyID: "acme"}, true)
	require.NoError(t, err)

	second, err := guard.NormalizeDirectory(context.Background(), models.Scope{CompanyID: "acme"}, true)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Upserts)
	assert.Equal(t, 0, second.Deletions)
	// The keyless record is still reported as unresolved on every run.
	assert.Equal(t, 1, second.Unresolved)
}

func TestNormalizeDryRunWritesNothing(t *testing.T) {
	clients := directoryFixture()
	guard := newGuard(&fakeFinanceRepo{}, &fakeBookingRepo{}, &fakeCollaboratorRepo{}, clients)

	report, err := guard.NormalizeDirectory(context.Background(), models.Scope{CompanyID: "acme"}, false)
	require.NoError(t, err)

	assert.False(t, report.Applied)
	assert.Equal(t, 2, report.Deletions)
	assert.Len(t, clients.clients, 5)
}

func TestNormalizeRequiresScope(t *testing.T) {
	guard := newGuard(&fakeFinanceRepo{}, &fakeBookingRepo{}, &fakeCollaboratorRepo{}, directoryFixture())

	_, err := guard.NormalizeDirectory(context.Background(), models.Scope{}, false)
	var ge *GuardError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "missingScope", ge.Code)
}

func TestPurgeFailedDeleteCountsAsUnresolvedOnly(t *testing.T) {
	finance, bookings, collabs := orphanFixture()
	finance.failDelete = true
	guard := newGuard(finance, bookings, collabs, &fakeClientRepo{})

	report, err := guard.PurgeOrphanedPayouts(context.Background(), models.Scope{CompanyID: "acme"}, true)
	require.NoError(t, err)

	// Each failed delete shows up once, as unresolved; the summary
	// never claims a deletion that did not happen.
	assert.Equal(t, 0, report.Deletions)
	assert.Equal(t, 2, report.Unresolved)
	assert.Len(t, finance.records, 4)
}
