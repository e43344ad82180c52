package v1

import (
	"encoding/json"
	"net/http"

	"github.com/nexinvo/gstledger/internal/ledger"
)

func (s *Server) listPayments(w http.ResponseWriter, r *http.Request, kind ledger.PaymentKind) {
	payments, err := s.payments.List(r.Context(), kind)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	out := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) createPayment(w http.ResponseWriter, r *http.Request, kind ledger.PaymentKind) {
	if !requireJSON(w, r) {
		return
	}
	var req paymentRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	p, err := toPaymentDomain(req, kind)
	if err != nil {
		badRequest(w, "invalid date")
		return
	}
	created, err := s.payments.Create(r.Context(), p)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, toPaymentResponse(created))
}

func (s *Server) patchPayment(w http.ResponseWriter, r *http.Request, kind ledger.PaymentKind) {
	if !requireJSON(w, r) {
		return
	}
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	var req paymentRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	p, err := toPaymentDomain(req, kind)
	if err != nil {
		badRequest(w, "invalid date")
		return
	}
	p.ID = id
	updated, err := s.payments.Update(r.Context(), p)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toPaymentResponse(updated))
}

// Receipts: money received from clients.
func (s *Server) listReceipts(w http.ResponseWriter, r *http.Request) {
	s.listPayments(w, r, ledger.KindReceipt)
}
func (s *Server) postReceipt(w http.ResponseWriter, r *http.Request) {
	s.createPayment(w, r, ledger.KindReceipt)
}
func (s *Server) updateReceipt(w http.ResponseWriter, r *http.Request) {
	s.patchPayment(w, r, ledger.KindReceipt)
}

// Expense payments: money paid out.
func (s *Server) listExpensePayments(w http.ResponseWriter, r *http.Request) {
	s.listPayments(w, r, ledger.KindPayment)
}
func (s *Server) postExpensePayment(w http.ResponseWriter, r *http.Request) {
	s.createPayment(w, r, ledger.KindPayment)
}
func (s *Server) updateExpensePayment(w http.ResponseWriter, r *http.Request) {
	s.patchPayment(w, r, ledger.KindPayment)
}

func (s *Server) deletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if err := s.payments.Delete(r.Context(), id); err != nil {
		writeServiceErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// bulkDeletePayments removes records one by one and reports counts; there
// is no rollback once the loop starts.
func (s *Server) bulkDeletePayments(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req idListRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	if len(req.IDs) == 0 {
		badRequest(w, "ids are required")
		return
	}
	res := s.payments.BulkDelete(r.Context(), req.IDs)
	toJSON(w, http.StatusOK, bulkResultDTO{Succeeded: res.Succeeded, Failed: res.Failed})
}
