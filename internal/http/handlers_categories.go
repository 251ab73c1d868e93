package http

import (
	"net/http"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/template"
)

func (s *Server) ListCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := s.Templates.ListCategories()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, categories)
	}
}

func (s *Server) CreateCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cat template.Category
		if err := decodeJSON(r, &cat); err != nil {
			respondError(w, err)
			return
		}
		if cat.Name == "" {
			respondError(w, apperr.Validation("name is required"))
			return
		}
		if err := s.Templates.CreateCategory(&cat); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, cat)
	}
}

func (s *Server) GetCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := r.PathValue("categoryID")
		cat, err := s.Templates.GetCategory(categoryID)
		if err != nil {
			respondError(w, err)
			return
		}
		if cat == nil {
			respondError(w, apperr.NotFound("category %s not found", categoryID))
			return
		}
		respondJSON(w, http.StatusOK, cat)
	}
}

func (s *Server) UpdateCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := r.PathValue("categoryID")
		var fields map[string]any
		if err := decodeJSON(r, &fields); err != nil {
			respondError(w, err)
			return
		}
		if err := s.Templates.UpdateCategory(categoryID, fields); err != nil {
			respondError(w, err)
			return
		}
		cat, err := s.Templates.GetCategory(categoryID)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, cat)
	}
}

func (s *Server) DeleteCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Templates.DeleteCategory(r.PathValue("categoryID")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"message": "category deleted"})
	}
}

func (s *Server) ListVariablesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		variables, err := s.Templates.ListVariables()
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, variables)
	}
}

func (s *Server) CreateVariableHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v template.Variable
		if err := decodeJSON(r, &v); err != nil {
			respondError(w, err)
			return
		}
		if v.Name == "" {
			respondError(w, apperr.Validation("variableName is required"))
			return
		}
		if err := s.Templates.CreateVariable(&v); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, v)
	}
}
