package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tablescout/review-svc/internal/domain"
	"tablescout/review-svc/internal/service"
)

type Handler struct {
	Reviews service.ReviewServiceInterface
}

func NewHandler(reviews service.ReviewServiceInterface) *Handler {
	return &Handler{Reviews: reviews}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/reviews", h.createReview).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/reviews", h.getRestaurantReviews).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/reviews/summary", h.getRatingSummary).Methods("GET")
	r.HandleFunc("/api/reviews", h.createBulkReviews).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "review-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	review.RestaurantID, _ = strconv.Atoi(mux.Vars(r)["restaurantId"])

	if err := h.Reviews.CreateOrUpdate(r.Context(), &review); err != nil {
		writeReviewError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(review)
}

func (h *Handler) getRestaurantReviews(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	reviews, err := h.Reviews.ListRestaurantReviews(restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reviews)
}

func (h *Handler) getRatingSummary(w http.ResponseWriter, r *http.Request) {
	restaurantID, _ := strconv.Atoi(mux.Vars(r)["restaurantId"])

	distribution, err := h.Reviews.RatingSummary(restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"restaurant_id": restaurantID,
		"distribution":  distribution,
	})
}

// createBulkReviews takes several reviews in one request, e.g. when a
// guest rates past visits from their booking history. Each entry is
// processed independently and reported back per booking.
func (h *Handler) createBulkReviews(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RestaurantID int `json:"restaurant_id"`
		Reviews      []struct {
			BookingID  int    `json:"booking_id"`
			Rating     int    `json:"rating"`
			Comment    string `json:"comment"`
			AuthorName string `json:"author_name"`
		} `json:"reviews"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	if payload.RestaurantID == 0 || len(payload.Reviews) == 0 {
		http.Error(w, "Missing restaurant_id or reviews", http.StatusBadRequest)
		return
	}

	type reviewResult struct {
		BookingID int    `json:"booking_id"`
		Status    string `json:"status"`
		Message   string `json:"message,omitempty"`
	}

	results := make([]reviewResult, 0, len(payload.Reviews))
	successCount := 0

	for _, incoming := range payload.Reviews {
		review := domain.Review{
			RestaurantID: payload.RestaurantID,
			BookingID:    incoming.BookingID,
			Rating:       incoming.Rating,
			Comment:      incoming.Comment,
			AuthorName:   incoming.AuthorName,
		}

		if err := h.Reviews.CreateOrUpdate(r.Context(), &review); err != nil {
			results = append(results, reviewResult{
				BookingID: incoming.BookingID,
				Status:    "error",
				Message:   err.Error(),
			})
			continue
		}

		successCount++
		results = append(results, reviewResult{
			BookingID: incoming.BookingID,
			Status:    "ok",
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if successCount == 0 {
		w.WriteHeader(http.StatusBadRequest)
	} else {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"processed": results,
		"created":   successCount,
		"failed":    len(results) - successCount,
	})
}

func writeReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRating), errors.Is(err, service.ErrBookingNotFound):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrDuplicateSubmission):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
