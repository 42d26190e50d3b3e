package riegumapi

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/riegum-client/internal/app"
	"github.com/MKhiriev/riegum-client/internal/utils"
	"github.com/MKhiriev/riegum-client/models"
)

// ownedPlant resolves the {id} parameter to a plant of the caller. It
// writes the error response itself and returns false when there is none.
func (s *Server) ownedPlant(w http.ResponseWriter, r *http.Request) (*models.Plant, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plants[id]
	if !ok || s.owners[id] != usernameFrom(r) {
		utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
		return nil, false
	}
	return p, true
}

func (s *Server) listPlants(w http.ResponseWriter, r *http.Request) {
	username := usernameFrom(r)

	s.mu.Lock()
	plants := make([]models.Plant, 0)
	for id, p := range s.plants {
		if s.owners[id] == username {
			plants = append(plants, *p)
		}
	}
	s.mu.Unlock()

	slices.SortFunc(plants, func(a, b models.Plant) int { return int(a.ID - b.ID) })
	_, _ = utils.WriteJSON(w, plants, http.StatusOK)
}

func (s *Server) createPlant(w http.ResponseWriter, r *http.Request) {
	var in models.PlantInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		_, _ = utils.WriteJSON(w, map[string]string{"error": app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}
	if in.Name == "" {
		_, _ = utils.WriteJSON(w, map[string][]string{"nombre_personalizado": {app.MsgFieldRequired}}, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	p := s.addPlantLocked(usernameFrom(r), in)
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, p, http.StatusCreated)
}

func (s *Server) getPlant(w http.ResponseWriter, r *http.Request) {
	p, ok := s.ownedPlant(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	out := *p
	s.mu.Unlock()
	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) updatePlant(w http.ResponseWriter, r *http.Request) {
	p, ok := s.ownedPlant(w, r)
	if !ok {
		return
	}

	var in models.PlantInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		_, _ = utils.WriteJSON(w, map[string]string{"error": app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	p.PlantInput = in
	p.WateringStatus = computeStatus(in, nil)
	out := *p
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) deletePlant(w http.ResponseWriter, r *http.Request) {
	p, ok := s.ownedPlant(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	delete(s.plants, p.ID)
	delete(s.owners, p.ID)
	delete(s.waterings, p.ID)
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) waterPlant(w http.ResponseWriter, r *http.Request) {
	p, ok := s.ownedPlant(w, r)
	if !ok {
		return
	}

	var in models.WateringInput
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			_, _ = utils.WriteJSON(w, map[string]string{"error": app.MsgInvalidJSON}, http.StatusBadRequest)
			return
		}
	}

	s.mu.Lock()
	if in.WaterML == nil {
		ml := p.RecommendedWaterML
		in.WaterML = &ml
	}
	s.nextID++
	watering := models.Watering{
		ID:       s.nextID,
		PlantID:  p.ID,
		Date:     models.NewDate(time.Now()),
		WaterML:  in.WaterML,
		Comments: in.Comments,
	}
	s.waterings[p.ID] = append([]models.Watering{watering}, s.waterings[p.ID]...)
	p.LastWatered = watering.Date
	p.WateringStatus = computeStatus(p.PlantInput, nil)
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, watering, http.StatusCreated)
}

func (s *Server) recalculatePlant(w http.ResponseWriter, r *http.Request) {
	p, ok := s.ownedPlant(w, r)
	if !ok {
		return
	}

	raw := r.URL.Query().Get("temperatura")
	if raw == "" {
		_, _ = utils.WriteJSON(w, map[string]string{"error": app.MsgTemperatureRequired}, http.StatusBadRequest)
		return
	}
	temperature, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		_, _ = utils.WriteJSON(w, map[string]string{"error": app.MsgInvalidTemperature}, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	p.WateringStatus = computeStatus(p.PlantInput, &temperature)
	out := p.WateringStatus
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, out, http.StatusOK)
}

func (s *Server) plantHistory(w http.ResponseWriter, r *http.Request) {
	p, ok := s.ownedPlant(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	history := models.PlantHistory{Waterings: slices.Clone(s.waterings[p.ID])}
	s.mu.Unlock()

	if history.Waterings == nil {
		history.Waterings = []models.Watering{}
	}
	for _, wt := range history.Waterings {
		history.Stats.TotalWaterings++
		if wt.WaterML != nil {
			history.Stats.TotalWaterML += *wt.WaterML
		}
	}
	if n := len(history.Waterings); n > 0 {
		history.Stats.LastWatering = history.Waterings[0].Date
		history.Stats.FirstWatering = history.Waterings[n-1].Date
		history.Stats.AverageWaterML = float64(history.Stats.TotalWaterML) / float64(n)
	}

	_, _ = utils.WriteJSON(w, history, http.StatusOK)
}

func (s *Server) calendarStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	linked := s.calendarLinked
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.CalendarStatus{Linked: linked}, http.StatusOK)
}
