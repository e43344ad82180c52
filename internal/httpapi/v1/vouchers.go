package v1

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nexinvo/gstledger/internal/ledger"
	"github.com/nexinvo/gstledger/internal/service/voucher"
)

func voucherPathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

func (s *Server) listVouchers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f voucher.Filter
	if t := q.Get("voucher_type"); t != "" {
		vt := ledger.VoucherType(t)
		if !ledger.ValidVoucherType(vt) {
			badRequest(w, "invalid voucher_type")
			return
		}
		f.Type = &vt
	}
	if raw := q.Get("from"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			badRequest(w, "invalid from date")
			return
		}
		f.From = &t
	}
	if raw := q.Get("to"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			badRequest(w, "invalid to date")
			return
		}
		f.To = &t
	}
	vouchers, err := s.vouchers.List(r.Context(), f)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	out := make([]voucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		out = append(out, toVoucherResponse(v))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) postVoucher(w http.ResponseWriter, r *http.Request) {
	v, ok := r.Context().Value(ctxKeyPostVoucher).(ledger.Voucher)
	if !ok {
		badRequest(w, "missing validated request")
		return
	}
	created, err := s.vouchers.Create(r.Context(), v)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, toVoucherResponse(created))
}

func (s *Server) getVoucher(w http.ResponseWriter, r *http.Request) {
	id, ok := voucherPathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	v, err := s.vouchers.Get(r.Context(), id)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toVoucherResponse(v))
}

func (s *Server) updateVoucher(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	id, ok := voucherPathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	var req voucherRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	v, err := toVoucherDomain(req)
	if err != nil {
		badRequest(w, "invalid voucher_date")
		return
	}
	v.ID = id
	updated, err := s.vouchers.Update(r.Context(), v)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toVoucherResponse(updated))
}

func (s *Server) deleteVoucher(w http.ResponseWriter, r *http.Request) {
	id, ok := voucherPathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if err := s.vouchers.Delete(r.Context(), id); err != nil {
		writeServiceErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// postVoucherTransition marks a voucher posted. The transition is terminal.
func (s *Server) postVoucherTransition(w http.ResponseWriter, r *http.Request) {
	id, ok := voucherPathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	v, err := s.vouchers.Post(r.Context(), id)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toVoucherResponse(v))
}
