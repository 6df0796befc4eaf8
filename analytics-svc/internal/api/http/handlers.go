package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tablescout/analytics-svc/internal/domain"
	"tablescout/analytics-svc/internal/service"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/top-booked", h.getTopBooked).Methods("GET")
	r.HandleFunc("/api/analytics/top-rated", h.getTopRated).Methods("GET")
	r.HandleFunc("/api/analytics/rating-distribution", h.getGlobalRatingDistribution).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/stats", h.getRestaurantStats).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/rating-distribution", h.getRatingDistribution).Methods("GET")
}

func (h *Handler) getTopBooked(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Analytics.TopBookedToday()
	writeLeaderboard(w, entries, err)
}

func (h *Handler) getTopRated(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Analytics.TopRated()
	writeLeaderboard(w, entries, err)
}

func (h *Handler) getRestaurantStats(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	stats, err := h.Analytics.RestaurantStats(restaurantID)
	if err != nil || stats == nil {
		http.Error(w, "Restaurant stats not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(stats)
}

func (h *Handler) getRatingDistribution(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])
	data, _ := h.Analytics.RatingDistribution(restaurantID)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getGlobalRatingDistribution(w http.ResponseWriter, r *http.Request) {
	data, _ := h.Analytics.GlobalDistribution()
	json.NewEncoder(w).Encode(data)
}

// writeLeaderboard keeps leaderboard endpoints soft-failing: readers get
// an empty list, never a 5xx, when the boards cannot be assembled.
func writeLeaderboard(w http.ResponseWriter, entries []domain.RestaurantAnalytics, err error) {
	if err != nil || entries == nil {
		entries = []domain.RestaurantAnalytics{}
	}
	json.NewEncoder(w).Encode(entries)
}
