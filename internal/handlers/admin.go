package handlers

import (
	"net/http"

	"propertyHub/internal/catalog"
	"propertyHub/internal/dashboard"
	"propertyHub/internal/models"

	"github.com/gorilla/mux"
)

type DashboardResponse struct {
	Admin   models.AdminUser           `json:"admin"`
	Stats   dashboard.Stats            `json:"stats"`
	Pending []models.PendingSubmission `json:"pending"`
}

func DashboardHandler(d *dashboard.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, _ := AdminFrom(r.Context())

		writeJSON(w, http.StatusOK, DashboardResponse{
			Admin:   admin,
			Stats:   d.Stats(),
			Pending: d.PendingSubmissions(),
		})
	})
}

// ModerationHandler serves the approve, reject and delete buttons of the
// dashboard. The property id must name a listed or pending property.
func ModerationHandler(d *dashboard.Dashboard, c *catalog.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		id := vars[`id`]

		if !knownProperty(d, c, id) {
			writeError(w, r, http.StatusNotFound, "Property not found")
			return
		}

		var confirmation models.Confirmation
		switch vars[`action`] {
		case `approve`:
			confirmation = d.Approve(id)
		case `reject`:
			confirmation = d.Reject(id)
		case `delete`:
			confirmation = d.Delete(id)
		default:
			writeError(w, r, http.StatusBadRequest, "No such action")
			return
		}

		admin, _ := AdminFrom(r.Context())
		LoggerFrom(r.Context()).Info("Moderation action", "action", vars[`action`], "property_id", id, "admin", admin.Username)

		writeJSON(w, http.StatusOK, confirmation)
	})
}

func knownProperty(d *dashboard.Dashboard, c *catalog.Catalog, id string) bool {
	if _, err := c.Get(id); err == nil {
		return true
	}

	for _, p := range d.PendingSubmissions() {
		if p.Id == id {
			return true
		}
	}

	return false
}
