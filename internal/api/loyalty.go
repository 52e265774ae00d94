package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	interf "github.com/nagagroupsnewfamous-hub/salon-backend/internal/interfaces"
	model "github.com/nagagroupsnewfamous-hub/salon-backend/internal/models"
	"github.com/nagagroupsnewfamous-hub/salon-backend/internal/pdf"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type LoyaltyHandler struct {
	router  *mux.Router
	loyalty interf.LoyaltyEngine
	reports interf.Reporter
	logger  *zap.Logger
}

func NewHandler(loyalty interf.LoyaltyEngine, reports interf.Reporter, auth AuthConfig, logger *zap.Logger) *LoyaltyHandler {
	router := mux.NewRouter()
	handler := &LoyaltyHandler{router, loyalty, reports, logger}
	router.HandleFunc("/customer", handler.RegisterCustomerHandler).Methods(http.MethodPost)
	router.HandleFunc("/customers", handler.CustomersHandler).Methods(http.MethodGet)
	router.HandleFunc("/customer/{mobile}", handler.GetCustomerHandler).Methods(http.MethodGet)
	router.HandleFunc("/service", handler.RecordServiceHandler).Methods(http.MethodPost)
	router.HandleFunc("/points/add", handler.AddPointsHandler).Methods(http.MethodPost)
	router.HandleFunc("/points/deduct", handler.DeductPointsHandler).Methods(http.MethodPost)
	router.HandleFunc("/services", handler.ServicesHandler).Methods(http.MethodGet)
	router.HandleFunc("/free-services", handler.FreeServicesHandler).Methods(http.MethodGet)
	router.HandleFunc("/dashboard", handler.DashboardHandler).Methods(http.MethodGet)
	router.HandleFunc("/report/month", handler.MonthReportHandler).Methods(http.MethodGet)
	router.HandleFunc("/report/year", handler.YearReportHandler).Methods(http.MethodGet)
	router.Handle("/report/year/pdf", MiddlewareAuth(auth)(http.HandlerFunc(handler.YearReportPDFHandler))).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return handler
}

func (h *LoyaltyHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

func (h *LoyaltyHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// writeError раскладывает ошибку на HTTP статус и тело с видом ошибки
func (h *LoyaltyHandler) writeError(w http.ResponseWriter, err error) {
	kind := "internal"
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		kind, code = "not_found", http.StatusNotFound
	case errors.Is(err, model.ErrValidation):
		kind, code = "validation", http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		kind, code = "conflict", http.StatusConflict
	case errors.Is(err, model.ErrUnavailable):
		kind, code = "unavailable", http.StatusServiceUnavailable
	}
	j, merr := json.Marshal(errorResponse{errorBody{kind, err.Error()}})
	if merr != nil {
		http.Error(w, err.Error(), code)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(j)
}

func (h *LoyaltyHandler) writeJSON(w http.ResponseWriter, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(j)
}

type CustomerRequest struct {
	Mobile string `json:"mobile"`
	Name   string `json:"name"`
}

// Регистрация клиента
func (h *LoyaltyHandler) RegisterCustomerHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "RegisterCustomerHandler", err)
		h.writeError(w, model.ErrValidation)
		return
	}
	defer req.Body.Close()
	cr := &CustomerRequest{}
	err = json.Unmarshal(body, cr)
	if err != nil {
		h.Log("Unmarshal", "RegisterCustomerHandler", err)
		h.writeError(w, model.ErrValidation)
		return
	}
	cust, err := h.loyalty.RegisterCustomer(req.Context(), cr.Mobile, cr.Name)
	if err != nil {
		h.Log("RegisterCustomer", "RegisterCustomerHandler", err)
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, cust)
}

// Все клиенты
func (h *LoyaltyHandler) CustomersHandler(w http.ResponseWriter, req *http.Request) {
	customers, err := h.loyalty.Customers(req.Context())
	if err != nil {
		h.Log("Customers", "CustomersHandler", err)
		h.writeError(w, err)
		return
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	h.writeJSON(w, customers)
}

// Карточка клиента
func (h *LoyaltyHandler) GetCustomerHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	cust, err := h.loyalty.GetCustomer(req.Context(), vars["mobile"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, cust)
}

type ServiceRequest struct {
	Mobile      string  `json:"mobile"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	Points      int32   `json:"points"`
}

type ServiceResponse struct {
	Message  string         `json:"message"`
	Reward   bool           `json:"reward"`
	Customer model.Customer `json:"customer"`
}

// Оказанная услуга
func (h *LoyaltyHandler) RecordServiceHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "RecordServiceHandler", err)
		h.writeError(w, model.ErrValidation)
		return
	}
	defer req.Body.Close()
	sr := &ServiceRequest{}
	err = json.Unmarshal(body, sr)
	if err != nil {
		h.Log("Unmarshal", "RecordServiceHandler", err)
		h.writeError(w, model.ErrValidation)
		return
	}
	cust, rewarded, err := h.loyalty.RecordService(req.Context(), sr.Mobile, sr.ServiceName, sr.Price, sr.Points)
	if err != nil {
		h.Log("RecordService", "RecordServiceHandler", err)
		h.writeError(w, err)
		return
	}
	message := "Service added successfully"
	if rewarded {
		message = "Free service unlocked, 100 points redeemed"
	}
	h.writeJSON(w, ServiceResponse{message, rewarded, cust})
}

type PointsRequest struct {
	Mobile string `json:"mobile"`
	Points int32  `json:"points"`
}

// Начисление баллов вручную
func (h *LoyaltyHandler) AddPointsHandler(w http.ResponseWriter, req *http.Request) {
	h.pointsHandler(w, req, h.loyalty.AddPoints, "AddPointsHandler")
}

// Списание баллов вручную
func (h *LoyaltyHandler) DeductPointsHandler(w http.ResponseWriter, req *http.Request) {
	h.pointsHandler(w, req, h.loyalty.DeductPoints, "DeductPointsHandler")
}

func (h *LoyaltyHandler) pointsHandler(w http.ResponseWriter, req *http.Request, op func(ctx context.Context, mobile string, points int32) (model.Customer, error), name string) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", name, err)
		h.writeError(w, model.ErrValidation)
		return
	}
	defer req.Body.Close()
	pr := &PointsRequest{}
	err = json.Unmarshal(body, pr)
	if err != nil {
		h.Log("Unmarshal", name, err)
		h.writeError(w, model.ErrValidation)
		return
	}
	cust, err := op(req.Context(), pr.Mobile, pr.Points)
	if err != nil {
		h.Log("Points", name, err)
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, cust)
}

// История услуг
func (h *LoyaltyHandler) ServicesHandler(w http.ResponseWriter, req *http.Request) {
	services, err := h.loyalty.Services(req.Context())
	if err != nil {
		h.Log("Services", "ServicesHandler", err)
		h.writeError(w, err)
		return
	}
	if services == nil {
		services = []model.ServiceRecord{}
	}
	h.writeJSON(w, services)
}

// История бесплатных услуг
func (h *LoyaltyHandler) FreeServicesHandler(w http.ResponseWriter, req *http.Request) {
	redemptions, err := h.loyalty.FreeServices(req.Context())
	if err != nil {
		h.Log("FreeServices", "FreeServicesHandler", err)
		h.writeError(w, err)
		return
	}
	if redemptions == nil {
		redemptions = []model.RewardRedemption{}
	}
	h.writeJSON(w, redemptions)
}

// Дашборд
func (h *LoyaltyHandler) DashboardHandler(w http.ResponseWriter, req *http.Request) {
	stats, err := h.reports.Dashboard(req.Context())
	if err != nil {
		h.Log("Dashboard", "DashboardHandler", err)
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, stats)
}

// Отчет за месяц
func (h *LoyaltyHandler) MonthReportHandler(w http.ResponseWriter, req *http.Request) {
	month := req.URL.Query().Get("month")
	report, err := h.reports.MonthReport(req.Context(), month)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, report)
}

// Отчет за год
func (h *LoyaltyHandler) YearReportHandler(w http.ResponseWriter, req *http.Request) {
	year := req.URL.Query().Get("year")
	report, err := h.reports.YearReport(req.Context(), year)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, report)
}

// Отчет за год в PDF, только для администратора
func (h *LoyaltyHandler) YearReportPDFHandler(w http.ResponseWriter, req *http.Request) {
	year := req.URL.Query().Get("year")
	report, err := h.reports.YearReport(req.Context(), year)
	if err != nil {
		h.writeError(w, err)
		return
	}
	doc, err := pdf.YearReport(report)
	if err != nil {
		h.Log("Render PDF", "YearReportPDFHandler", err)
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=yearly_report_"+report.Year+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
