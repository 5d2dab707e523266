package shift

import (
	"net/http"
	"strconv"

	"github.com/Bar-innutshell/Management-Karyawan/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(filter ListFilter) ([]*Shift, error)
	GetByID(id int64) (*Shift, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

// GetShifts handles GET /shifts?aktif={bool}
func (h *Handler) GetShifts(w http.ResponseWriter, r *http.Request) {
	var filter ListFilter
	if aktifStr := r.URL.Query().Get("aktif"); aktifStr != "" {
		aktif, err := strconv.ParseBool(aktifStr)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "aktif must be true or false")
			return
		}
		filter.Aktif = &aktif
	}

	shifts, err := h.Service.List(filter)
	if err != nil {
		h.Logger.Error("GetShifts: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteList(w, "shifts retrieved", shifts, len(shifts))
}

// GetShift handles GET /shifts/{id}
func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.Logger.Error("GetShift: invalid shift ID", "id", idStr)
		h.WriteError(w, http.StatusBadRequest, "invalid shift ID")
		return
	}

	sh, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("GetShift: service error", "error", err, "shift_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteData(w, http.StatusOK, "shift retrieved", sh)
}
