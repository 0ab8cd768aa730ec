package http

import (
	"net/http"
	"strconv"

	"rvpark-backend/internal/pagination"
	"rvpark-backend/internal/service"
)

type ReporteHandler struct {
	reporteSvc service.ReporteService
}

func NewReporteHandler(reporteSvc service.ReporteService) *ReporteHandler {
	return &ReporteHandler{reporteSvc: reporteSvc}
}

func (h *ReporteHandler) Ocupacion(w http.ResponseWriter, r *http.Request) {
	rvParkID := queryID(r, "id_rv_park")
	reporte, err := h.reporteSvc.Ocupacion(r.Context(), rvParkID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reporte)
}

func (h *ReporteHandler) Ingresos(w http.ResponseWriter, r *http.Request) {
	rvParkID := queryID(r, "id_rv_park")
	fechaInicio := r.URL.Query().Get("fecha_inicio")
	fechaFin := r.URL.Query().Get("fecha_fin")

	filas, err := h.reporteSvc.Ingresos(r.Context(), rvParkID, fechaInicio, fechaFin)
	if err != nil {
		respondError(w, err)
		return
	}
	respondList(w, filas, len(filas))
}

func (h *ReporteHandler) RentasActivas(w http.ResponseWriter, r *http.Request) {
	rvParkID := queryID(r, "id_rv_park")
	activas, err := h.reporteSvc.RentasActivas(r.Context(), rvParkID)
	if err != nil {
		respondError(w, err)
		return
	}

	pager := pagerFromQuery(r, len(activas))
	start, end := pager.SliceBounds()
	respondList(w, activas[start:end], len(activas))
}

func (h *ReporteHandler) PagosPendientes(w http.ResponseWriter, r *http.Request) {
	rvParkID := queryID(r, "id_rv_park")
	pendientes, err := h.reporteSvc.PagosPendientes(r.Context(), rvParkID)
	if err != nil {
		respondError(w, err)
		return
	}

	pager := pagerFromQuery(r, len(pendientes))
	start, end := pager.SliceBounds()
	respondList(w, pendientes[start:end], len(pendientes))
}

// pagerFromQuery builds a pager over an already-fetched list from the page
// and page_size query parameters. Out-of-range values are clamped, never
// rejected.
func pagerFromQuery(r *http.Request, itemCount int) *pagination.Pager {
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	pager := pagination.New(itemCount, pageSize)
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		pager.GoToPage(page)
	}
	return pager
}
