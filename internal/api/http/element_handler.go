package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/holiman/uint256"

	"github.com/amakane-hakari/capset/internal/capset"
)

type elementHandler struct {
	st *capset.Synced
}

func (h *elementHandler) mount(r chi.Router) {
	r.Get("/lowest", wrap(h.lowest))
	r.Route("/elements", func(r chi.Router) {
		r.Post("/{id}", wrap(h.insert))
		r.Put("/{id}", wrap(h.update))
		r.Get("/{id}", wrap(h.get))
		r.Delete("/{id}", wrap(h.del))
	})
}

type valueRequest struct {
	Value string `json:"value"`
}

type elementDTO struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// lowestDTO の Lowest は番兵（最初の挿入）や空になった直後の除去では null になります。
type lowestDTO struct {
	Lowest *elementDTO `json:"lowest"`
}

func wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			writeError(w, FromStdError(err))
		}
	}
}

func elementToDTO(e capset.Element) *elementDTO {
	return &elementDTO{ID: e.ID.String(), Value: e.Value.Dec()}
}

func (h *elementHandler) parseIDAndValue(r *http.Request) (capset.ID, uint256.Int, error) {
	id, err := capset.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		return capset.ID{}, uint256.Int{}, InvalidID("identifier must be " + hexIDHint)
	}
	var req valueRequest
	if err := DecodeJSON(r, &req); err != nil {
		return capset.ID{}, uint256.Int{}, err
	}
	v, err := uint256.FromDecimal(req.Value)
	if err != nil {
		return capset.ID{}, uint256.Int{}, InvalidValue("value must be an unsigned 256-bit decimal")
	}
	return id, *v, nil
}

const hexIDHint = "a 40-character hex string (0x prefix optional)"

func (h *elementHandler) insert(w http.ResponseWriter, r *http.Request) error {
	id, v, err := h.parseIDAndValue(r)
	if err != nil {
		return err
	}
	low := h.st.Insert(id, v)
	resp := lowestDTO{}
	if low != (capset.Element{}) {
		resp.Lowest = elementToDTO(low)
	}
	writeSuccess(w, http.StatusOK, resp)
	return nil
}

func (h *elementHandler) update(w http.ResponseWriter, r *http.Request) error {
	id, v, err := h.parseIDAndValue(r)
	if err != nil {
		return err
	}
	low, err := h.st.Update(id, v)
	if err != nil {
		if errors.Is(err, capset.ErrNotFound) {
			return NotFound("identifier not found")
		}
		return err
	}
	writeSuccess(w, http.StatusOK, lowestDTO{Lowest: elementToDTO(low)})
	return nil
}

func (h *elementHandler) get(w http.ResponseWriter, r *http.Request) error {
	id, err := capset.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		return InvalidID("identifier must be " + hexIDHint)
	}
	v, err := h.st.GetValue(id)
	if err != nil {
		if errors.Is(err, capset.ErrNotFound) {
			return NotFound("identifier not found")
		}
		return err
	}
	writeSuccess(w, http.StatusOK, elementDTO{ID: id.String(), Value: v.Dec()})
	return nil
}

func (h *elementHandler) del(w http.ResponseWriter, r *http.Request) error {
	id, err := capset.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		return InvalidID("identifier must be " + hexIDHint)
	}
	low, err := h.st.Remove(id)
	if err != nil {
		switch {
		case errors.Is(err, capset.ErrNotFound):
			return NotFound("identifier not found")
		case errors.Is(err, capset.ErrEmptySet):
			// 除去は適用済み。最小要素が存在しないだけなので null で返す。
			writeSuccess(w, http.StatusOK, lowestDTO{})
			return nil
		default:
			return err
		}
	}
	writeSuccess(w, http.StatusOK, lowestDTO{Lowest: elementToDTO(low)})
	return nil
}

func (h *elementHandler) lowest(w http.ResponseWriter, r *http.Request) error {
	low, err := h.st.Lowest()
	if err != nil {
		if errors.Is(err, capset.ErrEmptySet) {
			return EmptySet("set is empty")
		}
		return err
	}
	writeSuccess(w, http.StatusOK, lowestDTO{Lowest: elementToDTO(low)})
	return nil
}
