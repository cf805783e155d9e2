package dashboard

import (
	"log/slog"

	"propertyHub/internal/catalog"
	"propertyHub/internal/models"
)

// totalUsers is a display figure; there is no user store behind it.
const totalUsers = 1234

var pendingSubmissions = []models.PendingSubmission{
	{
		Id:          "pending-1",
		Title:       "Modern 2BHK Apartment",
		Location:    "Mumbai, India",
		SubmittedBy: "John Doe",
		SubmittedAt: "2024-01-15",
		Status:      models.Pending,
		Type:        models.Apartment,
		Price:       8500000,
	},
	{
		Id:          "pending-2",
		Title:       "Luxury Villa with Pool",
		Location:    "Goa, India",
		SubmittedBy: "Sarah Smith",
		SubmittedAt: "2024-01-14",
		Status:      models.Pending,
		Type:        models.Villa,
		Price:       25000000,
	},
}

type TypeShare struct {
	Type    models.PropertyType `json:"type"`
	Count   int                 `json:"count"`
	Percent float64             `json:"percent"`
}

type Stats struct {
	TotalProperties int                     `json:"totalProperties"`
	PendingReviews  int                     `json:"pendingReviews"`
	ActiveListings  int                     `json:"activeListings"`
	TotalUsers      int                     `json:"totalUsers"`
	ByLocation      []catalog.LocationCount `json:"byLocation"`
	ByType          []TypeShare             `json:"byType"`
}

// Dashboard backs the admin area. Approve, Reject and Delete only produce a
// confirmation; the catalog is never modified.
type Dashboard struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func New(c *catalog.Catalog, logger *slog.Logger) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}

	return &Dashboard{catalog: c, logger: logger.With("component", "dashboard")}
}

func (d *Dashboard) PendingSubmissions() []models.PendingSubmission {
	pending := make([]models.PendingSubmission, len(pendingSubmissions))
	copy(pending, pendingSubmissions)
	return pending
}

func (d *Dashboard) Stats() Stats {
	total := d.catalog.Len()
	typeCounts := d.catalog.CountByType()

	shares := make([]TypeShare, 0, len(models.PropertyTypes))
	for _, t := range models.PropertyTypes {
		share := TypeShare{Type: t, Count: typeCounts[t]}
		if total > 0 {
			share.Percent = float64(share.Count) / float64(total) * 100
		}
		shares = append(shares, share)
	}

	return Stats{
		TotalProperties: total,
		PendingReviews:  len(pendingSubmissions),
		ActiveListings:  len(d.catalog.ByStatus(models.Available)),
		TotalUsers:      totalUsers,
		ByLocation:      d.catalog.CountByLocation(),
		ByType:          shares,
	}
}

func (d *Dashboard) Approve(id string) models.Confirmation {
	d.logger.Info("Approving property", "property_id", id)
	return models.Confirmation{
		Title:       "Property Approved",
		Description: "The property has been approved and published.",
	}
}

func (d *Dashboard) Reject(id string) models.Confirmation {
	d.logger.Info("Rejecting property", "property_id", id)
	return models.Confirmation{
		Title:       "Property Rejected",
		Description: "The property submission has been rejected.",
		Destructive: true,
	}
}

func (d *Dashboard) Delete(id string) models.Confirmation {
	d.logger.Info("Deleting property", "property_id", id)
	return models.Confirmation{
		Title:       "Property Deleted",
		Description: "The property has been removed from listings.",
		Destructive: true,
	}
}
