package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sells-group/roofquote/internal/address"
	"github.com/sells-group/roofquote/internal/model"
	"github.com/sells-group/roofquote/internal/pricing"
	"github.com/sells-group/roofquote/internal/quote"
	"github.com/sells-group/roofquote/pkg/tracking"
)

const trackTimeout = 5 * time.Second

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req quote.Request
	if !decode(w, r, &req) {
		return
	}

	resp, err := quote.Estimate(req)
	if err != nil {
		if quote.IsValidation(err) {
			writeError(w, CodeValidation, err.Error(), http.StatusBadRequest)
			return
		}
		zap.L().Error("server: estimate failed", zap.Error(err))
		writeError(w, CodeInternal, "internal server error", http.StatusInternalServerError)
		return
	}

	s.track(r, tracking.Event{
		Name:      tracking.EventViewContent,
		StateCode: resp.StateCode,
		Value:     float64(resp.LowEstimate),
		Currency:  resp.Currency,
	})
	writeJSON(w, resp, http.StatusOK)
}

type addressRequest struct {
	Address   string `json:"address"`
	StateCode string `json:"stateCode,omitempty"`
}

// ParseAddressResponse is the address parse result with the pricing region
// it resolves to.
type ParseAddressResponse struct {
	Address    string         `json:"address"`
	Parsed     address.Parsed `json:"parsed"`
	Region     string         `json:"region"`
	RegionCode string         `json:"regionCode,omitempty"`
}

func (s *Server) handleParseAddress(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		writeError(w, CodeValidation, "address is required", http.StatusBadRequest)
		return
	}

	res := quote.ResolveRegion(req.Address, req.StateCode)
	writeJSON(w, ParseAddressResponse{
		Address:    req.Address,
		Parsed:     res.Parsed,
		Region:     res.Region,
		RegionCode: res.Code,
	}, http.StatusOK)
}

func (s *Server) handleRoofAnalysis(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if !decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Address) == "" {
		writeError(w, CodeValidation, "address is required", http.StatusBadRequest)
		return
	}

	an, err := s.analyzer.Analyze(r.Context(), req.Address)
	if err != nil {
		zap.L().Error("server: roof analysis failed", zap.Error(err))
		writeError(w, CodeInternal, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, an, http.StatusOK)
}

// LeadRequest is the lead form submission. When Estimate is present the
// quote is recomputed server-side and attached to the lead.
type LeadRequest struct {
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone,omitempty"`
	Address  string            `json:"address"`
	Source   string            `json:"source,omitempty"`
	Answers  map[string]string `json:"answers,omitempty"`
	Estimate *quote.Request    `json:"estimate,omitempty"`
}

// LeadResponse reports the accepted lead and how each sink fared.
type LeadResponse struct {
	ID         string                 `json:"id"`
	Status     string                 `json:"status"`
	Quote      *quote.Response        `json:"quote,omitempty"`
	Deliveries []model.DeliveryResult `json:"deliveries"`
}

func (s *Server) handleLead(w http.ResponseWriter, r *http.Request) {
	var req LeadRequest
	if !decode(w, r, &req) {
		return
	}

	l := model.Lead{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
		Answers: req.Answers,
		Source:  req.Source,
	}
	if req.Estimate != nil {
		if req.Estimate.Address == "" {
			req.Estimate.Address = l.Address
		}
		q, err := quote.Estimate(*req.Estimate)
		if err != nil {
			writeError(w, CodeValidation, "estimate: "+err.Error(), http.StatusBadRequest)
			return
		}
		l.Quote = q
	}

	rec, err := s.leads.Dispatch(r.Context(), l)
	if err != nil {
		if quote.IsValidation(err) {
			writeError(w, CodeValidation, err.Error(), http.StatusBadRequest)
			return
		}
		if rec == nil {
			zap.L().Error("server: lead dispatch failed", zap.Error(err))
			writeError(w, CodeInternal, "internal server error", http.StatusInternalServerError)
			return
		}
		// Sinks already ran; only the lead log write failed.
		zap.L().Error("server: lead not logged", zap.String("lead_id", rec.Lead.ID), zap.Error(err))
	}

	ev := tracking.Event{
		Name:  tracking.EventLead,
		ID:    rec.Lead.ID,
		Email: rec.Lead.Email,
		Phone: rec.Lead.Phone,
	}
	if q := rec.Lead.Quote; q != nil {
		ev.StateCode = q.StateCode
		ev.Value = float64(q.LowEstimate)
		ev.Currency = q.Currency
	}
	s.track(r, ev)

	writeJSON(w, LeadResponse{
		ID:         rec.Lead.ID,
		Status:     "accepted",
		Quote:      rec.Lead.Quote,
		Deliveries: rec.Deliveries,
	}, http.StatusAccepted)
}

func (s *Server) handleStates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, pricing.States(), http.StatusOK)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	rate, ok := pricing.StatePricing(code)
	if !ok {
		writeError(w, CodeNotFound, "unknown state "+strings.ToUpper(code), http.StatusNotFound)
		return
	}
	writeJSON(w, rate, http.StatusOK)
}

// MaterialInfo is one material in the US state table.
type MaterialInfo struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	NationalAverage pricing.PriceRange `json:"nationalAverage"`
}

// MaterialsResponse lists both material sets.
type MaterialsResponse struct {
	US      []MaterialInfo         `json:"us"`
	Catalog []pricing.CatalogEntry `json:"catalog"`
}

func (s *Server) handleMaterials(w http.ResponseWriter, _ *http.Request) {
	resp := MaterialsResponse{Catalog: pricing.Catalog()}
	for _, m := range pricing.USMaterials {
		avg, _ := pricing.NationalAverage(m)
		resp.US = append(resp.US, MaterialInfo{ID: string(m), Name: m.DisplayName(), NationalAverage: avg})
	}
	writeJSON(w, resp, http.StatusOK)
}

// track sends ev in the background. Tracking never affects the response.
func (s *Server) track(r *http.Request, ev tracking.Event) {
	if tracking.IsNoop(s.tracker) {
		return
	}
	ev.SourceURL = r.Header.Get("Referer")
	ev.UserAgent = r.UserAgent()
	ev.ClientIP = r.RemoteAddr

	ctx := context.WithoutCancel(r.Context())
	go func() {
		ctx, cancel := context.WithTimeout(ctx, trackTimeout)
		defer cancel()
		if err := s.tracker.Track(ctx, ev); err != nil {
			zap.L().Warn("server: tracking failed", zap.String("event", ev.Name), zap.Error(err))
		}
	}()
}
