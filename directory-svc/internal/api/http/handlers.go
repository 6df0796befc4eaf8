package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"tablescout/directory-svc/internal/domain"
	"tablescout/directory-svc/internal/service"
)

type Handler struct {
	Search    service.SearchServiceInterface
	Timetable service.TimetableServiceInterface
	Bookings  service.BookingServiceInterface
}

func NewHandler(searchSvc service.SearchServiceInterface, timetableSvc service.TimetableServiceInterface, bookingSvc service.BookingServiceInterface) *Handler {
	return &Handler{
		Search:    searchSvc,
		Timetable: timetableSvc,
		Bookings:  bookingSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.searchRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/timeslots", h.getTimeSlots).Methods("GET")

	r.HandleFunc("/api/bookings", h.createBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id}/qrcode", h.getBookingQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "directory-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ParseSearchCriteria extracts and normalizes restaurant search filters
// from the URL query.
func ParseSearchCriteria(query url.Values) domain.SearchCriteria {
	var criteria domain.SearchCriteria

	if raw := query.Get("cuisines"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				criteria.Cuisines = append(criteria.Cuisines, domain.Cuisine(name))
			}
		}
	}
	if price, err := strconv.Atoi(query.Get("price")); err == nil && price > 0 {
		criteria.PriceLevel = &price
	}
	if rating, err := strconv.ParseFloat(query.Get("rating"), 64); err == nil && rating > 0 {
		criteria.MinRating = &rating
	}
	criteria.VerifiedOnly = query.Get("verified") == "true"
	criteria.OpenNow = query.Get("openNow") == "true"

	latStr, lonStr := query.Get("lat"), query.Get("lng")
	if latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr == nil && lonErr == nil {
			criteria.Location = &domain.GeoPoint{Latitude: lat, Longitude: lon}
		}
	}
	if distance, err := strconv.ParseFloat(query.Get("maxDistance"), 64); err == nil && distance > 0 {
		criteria.MaxDistanceKm = &distance
	}

	criteria.SortBy = domain.SortKey(query.Get("sortBy"))
	criteria.Page, _ = strconv.Atoi(query.Get("page"))
	criteria.Limit, _ = strconv.Atoi(query.Get("limit"))

	return criteria
}

func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	criteria := ParseSearchCriteria(r.URL.Query())

	result, err := h.Search.Search(r.Context(), criteria)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	restaurant, err := h.Search.Get(id)
	if errors.Is(err, service.ErrRestaurantNotFound) {
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(restaurant)
}

func (h *Handler) getTimeSlots(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	date := r.URL.Query().Get("date")
	partySize, _ := strconv.Atoi(r.URL.Query().Get("partySize"))
	if partySize <= 0 {
		partySize = 2
	}

	timetable, err := h.Timetable.TimeSlots(id, date, partySize)
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound):
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrClosedThatDay):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(timetable)
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	var request domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Bookings.Book(r.Context(), request)
	switch {
	case errors.Is(err, service.ErrRestaurantNotFound):
		http.Error(w, "Restaurant not found", http.StatusNotFound)
		return
	case errors.Is(err, service.ErrInvalidPartySize),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, domain.ErrInvalidClock),
		errors.Is(err, service.ErrClosedThatDay),
		errors.Is(err, service.ErrOutsideBookingWindow):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if result.Success {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) getBookingQRCode(w http.ResponseWriter, r *http.Request) {
	bookingID, _ := strconv.Atoi(mux.Vars(r)["id"])

	code, err := h.Bookings.ConfirmationCode(bookingID)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	if len(code) == 0 {
		http.Error(w, "Confirmation code not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(code)
}
