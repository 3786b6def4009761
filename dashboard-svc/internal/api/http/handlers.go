package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"foodplate-dashboard/dashboard-svc/internal/domain"
	"foodplate-dashboard/dashboard-svc/internal/service"

	"github.com/gorilla/mux"
)

const defaultActivityLimit = 50

type Handler struct {
	Foods   service.SynchronizerInterface
	Journal service.ActivityJournal
	QRCodes service.QRGenerator
}

func NewHandler(foods service.SynchronizerInterface, journal service.ActivityJournal, qr service.QRGenerator) *Handler {
	return &Handler{
		Foods:   foods,
		Journal: journal,
		QRCodes: qr,
	}
}

// View is the dashboard re-rendered after an action.
type View struct {
	Alert string             `json:"alert,omitempty"`
	Foods []domain.FoodPlate `json:"foods"`
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/dashboard/foods", h.listFoods).Methods("GET")
	r.HandleFunc("/api/dashboard/foods", h.addFood).Methods("POST")
	r.HandleFunc("/api/dashboard/foods/reload", h.reloadFoods).Methods("POST")
	r.HandleFunc("/api/dashboard/foods/{id:[0-9]+}", h.updateFood).Methods("PUT")
	r.HandleFunc("/api/dashboard/foods/{id:[0-9]+}", h.deleteFood).Methods("DELETE")
	r.HandleFunc("/api/dashboard/foods/{id:[0-9]+}/availability", h.toggleAvailability).Methods("PATCH")
	r.HandleFunc("/api/dashboard/foods/{id:[0-9]+}/qrcode", h.foodQRCode).Methods("GET")

	r.HandleFunc("/api/dashboard/activity", h.listActivity).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "dashboard-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	h.render(w, nil)
}

func (h *Handler) reloadFoods(w http.ResponseWriter, r *http.Request) {
	err := h.Foods.Load(r.Context())
	h.render(w, err)
}

func (h *Handler) addFood(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}
	_, err := h.Foods.Add(r.Context(), draft)
	h.render(w, err)
}

func (h *Handler) updateFood(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}
	_, err := h.Foods.Update(r.Context(), id, draft)
	h.render(w, err)
}

func (h *Handler) toggleAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	_, err := h.Foods.ToggleAvailability(r.Context(), id)
	h.render(w, err)
}

func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.Foods.Delete(r.Context(), id)
	h.render(w, err)
}

func (h *Handler) foodQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, ok := h.Foods.Find(id); !ok {
		writeJSON(w, http.StatusNotFound, View{Alert: service.AlertFoodNotFound, Foods: h.Foods.Foods()})
		return
	}
	if h.QRCodes == nil {
		http.Error(w, "QR codes are not configured", http.StatusNotFound)
		return
	}

	png, err := h.QRCodes.Generate(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) listActivity(w http.ResponseWriter, r *http.Request) {
	if h.Journal == nil {
		http.Error(w, "Activity journal is not configured", http.StatusNotFound)
		return
	}

	limit := defaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	entries, err := h.Journal.Recent(r.Context(), limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// render writes the current list. Only the not-found alert reaches the user;
// backend failures were already logged by the synchronizer.
func (h *Handler) render(w http.ResponseWriter, err error) {
	view := View{Foods: h.Foods.Foods()}
	if errors.Is(err, service.ErrFoodNotFound) {
		view.Alert = service.AlertFoodNotFound
		writeJSON(w, http.StatusNotFound, view)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// pathID rejects ids the route pattern accepts but int cannot hold.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func decodeDraft(w http.ResponseWriter, r *http.Request) (domain.FoodDraft, bool) {
	var draft domain.FoodDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return draft, false
	}
	if err := draft.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return draft, false
	}
	return draft, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
