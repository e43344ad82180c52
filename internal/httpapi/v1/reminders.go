package v1

import (
	"encoding/json"
	"net/http"

	"github.com/nexinvo/gstledger/internal/ledger"
)

func (s *Server) pendingInvoices(w http.ResponseWriter, r *http.Request) {
	pending, err := s.reminders.Pending(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	out := make([]pendingInvoiceDTO, 0, len(pending))
	for _, p := range pending {
		out = append(out, pendingInvoiceDTO{
			ClientID:    p.ClientID,
			ClientName:  p.ClientName,
			InvoiceRef:  p.InvoiceRef,
			DueDate:     formatDate(p.DueDate),
			Outstanding: p.Outstanding,
		})
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) scheduledReminders(w http.ResponseWriter, r *http.Request) {
	s.writeReminderList(w, r, true)
}

func (s *Server) reminderHistory(w http.ResponseWriter, r *http.Request) {
	s.writeReminderList(w, r, false)
}

func (s *Server) writeReminderList(w http.ResponseWriter, r *http.Request, scheduled bool) {
	var (
		reminders []ledger.Reminder
		err       error
	)
	if scheduled {
		reminders, err = s.reminders.Scheduled(r.Context())
	} else {
		reminders, err = s.reminders.History(r.Context())
	}
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	out := make([]reminderResponse, 0, len(reminders))
	for _, rem := range reminders {
		out = append(out, toReminderResponse(rem))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) scheduleReminder(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req reminderRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	rem := ledger.Reminder{
		ClientID:   req.ClientID,
		InvoiceRef: req.InvoiceRef,
		Amount:     req.Amount,
	}
	if req.DueDate != "" {
		t, err := parseDate(req.DueDate)
		if err != nil {
			badRequest(w, "invalid due_date")
			return
		}
		rem.DueDate = t
	}
	created, err := s.reminders.Schedule(r.Context(), rem)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	toJSON(w, http.StatusCreated, toReminderResponse(created))
}

func (s *Server) sendReminders(w http.ResponseWriter, r *http.Request) {
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
	res := s.reminders.Send(r.Context(), req.IDs)
	toJSON(w, http.StatusOK, bulkResultDTO{Succeeded: res.Sent, Failed: res.Failed})
}

func (s *Server) cancelReminder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if err := s.reminders.Cancel(r.Context(), id); err != nil {
		writeServiceErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getReminderSettings(w http.ResponseWriter, r *http.Request) {
	set, err := s.reminders.Settings(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, reminderSettingsDTO{Enabled: set.Enabled, DaysBefore: set.DaysBefore})
}

func (s *Server) putReminderSettings(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req reminderSettingsDTO
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	set := ledger.ReminderSettings{Enabled: req.Enabled, DaysBefore: req.DaysBefore}
	if err := s.reminders.UpdateSettings(r.Context(), set); err != nil {
		badRequest(w, err.Error())
		return
	}
	toJSON(w, http.StatusOK, req)
}
