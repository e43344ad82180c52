package v1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nexinvo/gstledger/internal/service/client"
)

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.clients.List(r.Context())
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	out := make([]clientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) postClient(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req clientRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	c, err := toClientDomain(req)
	if err != nil {
		badRequest(w, "invalid date")
		return
	}
	created, err := s.clients.Create(r.Context(), c)
	if err != nil {
		// the GSTIN/state gate rejects the whole record
		unprocessable(w, err.Error(), "validation_error")
		return
	}
	toJSON(w, http.StatusCreated, toClientResponse(created))
}

func (s *Server) getClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	c, err := s.clients.Get(r.Context(), id)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toClientResponse(c))
}

func (s *Server) updateClient(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	var req clientRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	c, err := toClientDomain(req)
	if err != nil {
		badRequest(w, "invalid date")
		return
	}
	c.ID = id
	updated, err := s.clients.Update(r.Context(), c)
	if err != nil {
		writeServiceErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toClientResponse(updated))
}

func (s *Server) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		badRequest(w, "invalid id")
		return
	}
	if err := s.clients.Delete(r.Context(), id); err != nil {
		writeServiceErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// bulkUploadClients accepts the 14-column CSV, validates row by row and
// saves what passes. Row failures never abort the batch.
func (s *Server) bulkUploadClients(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "file is required")
		return
	}
	defer file.Close()

	parsed, rejects, err := client.ParseBulkCSV(file, s.clients.Validate)
	if err != nil {
		unprocessable(w, err.Error(), "invalid_file")
		return
	}
	res := s.clients.BulkCreate(r.Context(), parsed)

	resp := importResponse{
		Summary:   fmt.Sprintf("%d parsed, %d errors", len(parsed), len(rejects)),
		Accepted:  len(parsed),
		Rejected:  make([]rowErrorDTO, 0, len(rejects)),
		Succeeded: res.Succeeded,
		Failed:    res.Failed + len(rejects),
	}
	for _, re := range rejects {
		resp.Rejected = append(resp.Rejected, rowErrorDTO{Row: re.Row, Name: re.Name, Reason: re.Reason})
	}
	toJSON(w, http.StatusOK, resp)
}

func (s *Server) clientTemplate(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="clients.csv"`)
	_, _ = w.Write([]byte(client.Template()))
}
