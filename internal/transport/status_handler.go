package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/middleware"
	"github.com/KianJanloo/burger-cafe-back/internal/service"
)

type ReservationHandler struct {
	resourceHandler[domain.Reservation, domain.CreateReservation, domain.UpdateReservation]
	reservations *service.ReservationService
}

func NewReservationHandler(reservations *service.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		resourceHandler: newResourceHandler[domain.Reservation, domain.CreateReservation, domain.UpdateReservation](reservations, "reservation", logger),
		reservations:    reservations,
	}
}

func (h *ReservationHandler) RegisterRoutes(r chi.Router) {
	r.Route("/reservation", func(r chi.Router) {
		h.routes(r, h.List)
		r.Patch("/{id}/status", h.SetStatus)
	})
}

// List handles GET /reservation?date=YYYY-MM-DD
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	var date *domain.Date
	if raw := r.URL.Query().Get("date"); raw != "" {
		d, err := domain.ParseDate(raw)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		date = &d
	}

	reservations, err := h.reservations.Find(r.Context(), date)
	respondList(w, h.logger, reservations, err, h.name)
}

// SetStatus handles PATCH /reservation/{id}/status
func (h *ReservationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	var req domain.SetReservationStatus
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	reservation, err := h.reservations.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, h.logger, err, "failed to update reservation status")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, reservation)
}

type ContactHandler struct {
	resourceHandler[domain.ContactMessage, domain.CreateContactMessage, domain.UpdateContactMessage]
	contacts *service.ContactService
}

func NewContactHandler(contacts *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		resourceHandler: newResourceHandler[domain.ContactMessage, domain.CreateContactMessage, domain.UpdateContactMessage](contacts, "contact message", logger),
		contacts:        contacts,
	}
}

func (h *ContactHandler) RegisterRoutes(r chi.Router) {
	r.Route("/contact-us", func(r chi.Router) {
		h.routes(r, h.List)
		r.Patch("/{id}/status", h.SetStatus)
	})
}

// List handles GET /contact-us?status=
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	var status *domain.ContactStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.ContactStatus(raw)
		if !s.Valid() {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid status: "+raw)
			return
		}
		status = &s
	}

	messages, err := h.contacts.Find(r.Context(), status)
	respondList(w, h.logger, messages, err, h.name)
}

// SetStatus handles PATCH /contact-us/{id}/status
func (h *ContactHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	var req domain.SetContactStatus
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	message, err := h.contacts.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, h.logger, err, "failed to update contact message status")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, message)
}
