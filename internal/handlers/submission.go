package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"propertyHub/internal/catalog"
	"propertyHub/internal/submission"

	"github.com/gorilla/mux"
)

// ValidateStepHandler checks one page of the upload wizard, given as ?step=N.
func ValidateStepHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		step, err := strconv.Atoi(r.URL.Query().Get(`step`))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid step")
			return
		}

		var form submission.PropertyForm
		if err := decodeJSON(r, &form); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := submission.ValidateStep(form, step); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
	})
}

func SubmitPropertyHandler(s *submission.Submitter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var form submission.PropertyForm
		if err := decodeJSON(r, &form); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}

		receipt, err := s.SubmitProperty(r.Context(), form)
		if errors.Is(err, submission.ErrMissingInformation) || errors.Is(err, submission.ErrTooManyImages) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		if err != nil {
			writeError(w, r, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusAccepted, receipt)
	})
}

func ContactHandler(s *submission.Submitter, c *catalog.Catalog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		if _, err := c.Get(id); errors.Is(err, catalog.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "Property not found")
			return
		}

		var msg submission.ContactMessage
		if err := decodeJSON(r, &msg); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}
		msg.PropertyId = id

		writeJSON(w, http.StatusOK, s.SendContact(r.Context(), msg))
	})
}
