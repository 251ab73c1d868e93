package http

import (
	"net/http"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/template"
)

func (s *Server) ListTemplatesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := s.Templates.ListTemplates(r.URL.Query().Get("categoryId"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, templates)
	}
}

func (s *Server) CreateTemplateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tpl template.Template
		if err := decodeJSON(r, &tpl); err != nil {
			respondError(w, err)
			return
		}
		if tpl.EventType == "" || tpl.Text == "" {
			respondError(w, apperr.Validation("eventType and text are required"))
			return
		}
		if tpl.CategoryID != "" {
			cat, err := s.Templates.GetCategory(tpl.CategoryID)
			if err != nil {
				respondError(w, err)
				return
			}
			if cat == nil {
				respondError(w, apperr.Reference("category %s does not exist", tpl.CategoryID))
				return
			}
		}
		if err := s.Templates.CreateTemplate(&tpl); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, tpl)
	}
}

func (s *Server) GetTemplateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID := r.PathValue("templateID")
		tpl, err := s.Templates.GetTemplate(templateID)
		if err != nil {
			respondError(w, err)
			return
		}
		if tpl == nil {
			respondError(w, apperr.NotFound("template %s not found", templateID))
			return
		}
		respondJSON(w, http.StatusOK, tpl)
	}
}

func (s *Server) UpdateTemplateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templateID := r.PathValue("templateID")
		var fields map[string]any
		if err := decodeJSON(r, &fields); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Templates.UpdateTemplate(templateID, fields); err != nil {
			respondError(w, err)
			return
		}
		tpl, err := s.Templates.GetTemplate(templateID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, tpl)
	}
}

func (s *Server) DeleteTemplateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Templates.DeleteTemplate(r.PathValue("templateID")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "template deleted"})
	}
}

func (s *Server) SetDefaultTemplateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tpl, err := s.Templates.SetDefault(r.PathValue("templateID"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, tpl)
	}
}
