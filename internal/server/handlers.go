package server

import (
	"encoding/json"
	"net/http"

	"github.com/pktviz/pktviz/pkg/buildinfo"
	"github.com/pktviz/pktviz/pkg/errors"
	"github.com/pktviz/pktviz/pkg/layout"
	"github.com/pktviz/pktviz/pkg/pipeline"
)

// renderRequest is the body of POST /api/render.
type renderRequest struct {
	Source string `json:"source"`

	Format  string `json:"format,omitempty"`
	VizType string `json:"viz_type,omitempty"`
	Style   string `json:"style,omitempty"`

	BitsPerRow int     `json:"bits_per_row,omitempty"`
	BitWidth   int     `json:"bit_width,omitempty"`
	RowHeight  int     `json:"row_height,omitempty"`
	PaddingX   *int    `json:"padding_x,omitempty"`
	PaddingY   *int    `json:"padding_y,omitempty"`
	ShowBits   *bool   `json:"show_bits,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
	Detailed   bool    `json:"detailed,omitempty"`
	Refresh    bool    `json:"refresh,omitempty"`
}

// checkResponse is the body of POST /api/check.
type checkResponse struct {
	Title     string       `json:"title,omitempty"`
	Fields    []checkField `json:"fields"`
	TotalBits int          `json:"total_bits"`
	Rows      int          `json:"rows"`
}

type checkField struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Bits  int    `json:"bits"`
	Label string `json:"label"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}

	format := req.Format
	if format == "" {
		format = pipeline.FormatSVG
	}

	opts := pipeline.Options{
		Source:     req.Source,
		Refresh:    req.Refresh,
		BitsPerRow: req.BitsPerRow,
		BitWidth:   req.BitWidth,
		RowHeight:  req.RowHeight,
		PaddingX:   req.PaddingX,
		PaddingY:   req.PaddingY,
		ShowBits:   req.ShowBits,
		VizType:    req.VizType,
		Formats:    []string{format},
		Style:      req.Style,
		Scale:      req.Scale,
		Detailed:   req.Detailed,
		Logger:     s.logger,
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if result.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	w.Write(result.Artifacts[format])
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}

	opts := pipeline.Options{
		Source:     req.Source,
		BitsPerRow: req.BitsPerRow,
		Logger:     s.logger,
	}
	d, err := pipeline.Parse(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var packet layout.Packet
	if err := layout.Populate(d, opts.LayoutOptions(), &packet); err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := checkResponse{
		Title:     d.Title,
		Fields:    make([]checkField, 0, len(d.Fields)),
		TotalBits: d.TotalBits(),
		Rows:      packet.WordCount(),
	}
	for _, f := range d.Fields {
		resp.Fields = append(resp.Fields, checkField{
			Start: f.Start,
			End:   f.End,
			Bits:  f.Bits(),
			Label: f.Label,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// decode reads a JSON body into v, writing a 400 response on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "invalid request body: " + err.Error(),
			Code:  string(errors.ErrCodeInvalidInput),
		})
		return false
	}
	return true
}

// writeError maps error codes to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidRange, errors.ErrCodeNonContiguous,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidVizType,
		errors.ErrCodeInvalidOptions, errors.ErrCodeInvalidPath, errors.ErrCodeParse,
		errors.ErrCodeEmptyDiagram, errors.ErrCodeDiagramTooLarge:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"error", err,
			"request_id", RequestIDFromContext(r.Context()))
	}

	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(code),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
