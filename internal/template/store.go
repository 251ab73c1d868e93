package template

import (
	"database/sql"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/GoodPie/aihl-media-app/internal/apperr"
	"github.com/GoodPie/aihl-media-app/internal/database"
)

// New creates a new template Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

var templateColumns = map[string]string{
	"categoryId": "category_id",
	"eventType":  "event_type",
	"name":       "name",
	"text":       "text",
	"isDefault":  "is_default",
}

var categoryColumns = map[string]string{
	"name":        "name",
	"description": "description",
}

const templateSelect = "SELECT id, category_id, event_type, name, text, is_default, created_at, updated_at FROM templates"

func (s *store) CreateTemplate(tpl *Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tpl.ID == "" {
		tpl.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	tpl.CreatedAt = now
	tpl.UpdatedAt = now

	// An uncategorized template stores NULL, not "", to satisfy the category
	// foreign key.
	var categoryID any
	if tpl.CategoryID != "" {
		categoryID = tpl.CategoryID
	}
	_, err := s.db.Exec(
		"INSERT INTO templates (id, category_id, event_type, name, text, is_default, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		tpl.ID, categoryID, tpl.EventType, tpl.Name, tpl.Text, tpl.IsDefault, tpl.CreatedAt, tpl.UpdatedAt,
	)
	if database.IsUniqueViolation(err) {
		return apperr.Conflict("template %s already exists", tpl.ID)
	}
	if err != nil {
		log.Error("Failed to insert template", "error", err, "templateID", tpl.ID)
		return err
	}
	return nil
}

func (s *store) GetTemplate(templateID string) (*Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(templateSelect+" WHERE id = ?", templateID)
	tpl, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error("Failed to query template", "error", err, "templateID", templateID)
		return nil, err
	}
	return tpl, nil
}

func (s *store) UpdateTemplate(templateID string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	affected, err := database.UpdateFields(s.db, "templates", "id", templateID, fields, templateColumns)
	if errors.Is(err, database.ErrNoUpdatableFields) {
		return apperr.Wrap(apperr.KindValidation, err, "no updatable fields supplied")
	}
	if err != nil {
		log.Error("Failed to update template", "error", err, "templateID", templateID)
		return err
	}
	if affected == 0 {
		return apperr.NotFound("template %s not found", templateID)
	}
	return nil
}

func (s *store) DeleteTemplate(templateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM templates WHERE id = ?", templateID)
	if err != nil {
		log.Error("Failed to delete template", "error", err, "templateID", templateID)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return apperr.NotFound("template %s not found", templateID)
	}
	return nil
}

func (s *store) ListTemplates(categoryID string) ([]Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := templateSelect + " ORDER BY created_at, id"
	var args []any
	if categoryID != "" {
		query = templateSelect + " WHERE category_id = ? ORDER BY created_at, id"
		args = append(args, categoryID)
	}
	return s.queryTemplates(query, args...)
}

func (s *store) GetTemplatesByEventType(eventType string) ([]Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.queryTemplates(
		templateSelect+" WHERE lower(event_type) = lower(?) ORDER BY created_at, id",
		eventType,
	)
}

func (s *store) SetDefault(templateID string) (*Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(templateSelect+" WHERE id = ?", templateID)
	target, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("template %s not found", templateID)
	}
	if err != nil {
		return nil, err
	}

	// Independent per-row updates: clear every sibling, then flag the target.
	// There is deliberately no cross-row transaction here; see DESIGN.md.
	now := time.Now().Unix()
	_, err = s.db.Exec(
		"UPDATE templates SET is_default = 0, updated_at = ? WHERE category_id = ? AND id != ?",
		now, target.CategoryID, templateID,
	)
	if err != nil {
		log.Error("Failed to clear sibling defaults", "error", err, "categoryID", target.CategoryID)
		return nil, err
	}
	_, err = s.db.Exec("UPDATE templates SET is_default = 1, updated_at = ? WHERE id = ?", now, templateID)
	if err != nil {
		log.Error("Failed to set default template", "error", err, "templateID", templateID)
		return nil, err
	}

	target.IsDefault = true
	target.UpdatedAt = now
	log.Info("Default template assigned", "templateID", templateID, "categoryID", target.CategoryID)
	return target, nil
}

func (s *store) CreateCategory(cat *Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	now := time.Now().Unix()
	cat.CreatedAt = now
	cat.UpdatedAt = now

	_, err := s.db.Exec(
		"INSERT INTO template_categories (id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		cat.ID, cat.Name, cat.Description, cat.CreatedAt, cat.UpdatedAt,
	)
	if database.IsUniqueViolation(err) {
		return apperr.Conflict("category %s already exists", cat.ID)
	}
	if err != nil {
		log.Error("Failed to insert category", "error", err, "categoryID", cat.ID)
		return err
	}
	return nil
}

func (s *store) GetCategory(categoryID string) (*Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Category
	var description sql.NullString
	err := s.db.QueryRow(
		"SELECT id, name, description, created_at, updated_at FROM template_categories WHERE id = ?", categoryID,
	).Scan(&c.ID, &c.Name, &description, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error("Failed to query category", "error", err, "categoryID", categoryID)
		return nil, err
	}
	c.Description = description.String
	return &c, nil
}

func (s *store) UpdateCategory(categoryID string, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	affected, err := database.UpdateFields(s.db, "template_categories", "id", categoryID, fields, categoryColumns)
	if errors.Is(err, database.ErrNoUpdatableFields) {
		return apperr.Wrap(apperr.KindValidation, err, "no updatable fields supplied")
	}
	if err != nil {
		log.Error("Failed to update category", "error", err, "categoryID", categoryID)
		return err
	}
	if affected == 0 {
		return apperr.NotFound("category %s not found", categoryID)
	}
	return nil
}

func (s *store) DeleteCategory(categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM template_categories WHERE id = ?", categoryID)
	if err != nil {
		log.Error("Failed to delete category", "error", err, "categoryID", categoryID)
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return apperr.NotFound("category %s not found", categoryID)
	}
	return nil
}

func (s *store) ListCategories() ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, description, created_at, updated_at FROM template_categories ORDER BY name")
	if err != nil {
		log.Error("Failed to query categories", "error", err)
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		var description sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			log.Error("Failed to scan category row", "error", err)
			continue
		}
		c.Description = description.String
		categories = append(categories, c)
	}
	return categories, nil
}

func (s *store) CreateVariable(v *Variable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.CreatedAt = time.Now().Unix()
	_, err := s.db.Exec(
		"INSERT INTO template_variables (name, category, description, created_at) VALUES (?, ?, ?, ?)",
		v.Name, v.Category, v.Description, v.CreatedAt,
	)
	if database.IsUniqueViolation(err) {
		return apperr.Conflict("variable %s already exists", v.Name)
	}
	if err != nil {
		log.Error("Failed to insert variable", "error", err, "name", v.Name)
		return err
	}
	return nil
}

func (s *store) ListVariables() ([]Variable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT name, category, description, created_at FROM template_variables ORDER BY name")
	if err != nil {
		log.Error("Failed to query variables", "error", err)
		return nil, err
	}
	defer rows.Close()

	var variables []Variable
	for rows.Next() {
		var v Variable
		var category, description sql.NullString
		if err := rows.Scan(&v.Name, &category, &description, &v.CreatedAt); err != nil {
			log.Error("Failed to scan variable row", "error", err)
			continue
		}
		v.Category = category.String
		v.Description = description.String
		variables = append(variables, v)
	}
	return variables, nil
}

func (s *store) queryTemplates(query string, args ...any) ([]Template, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query templates", "error", err)
		return nil, err
	}
	defer rows.Close()

	var templates []Template
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			log.Error("Failed to scan template row", "error", err)
			continue
		}
		templates = append(templates, *tpl)
	}
	return templates, nil
}

func scanTemplate(scanner interface{ Scan(...any) error }) (*Template, error) {
	var tpl Template
	var categoryID, name sql.NullString
	err := scanner.Scan(&tpl.ID, &categoryID, &tpl.EventType, &name, &tpl.Text, &tpl.IsDefault, &tpl.CreatedAt, &tpl.UpdatedAt)
	if err != nil {
		return nil, err
	}
	tpl.CategoryID = categoryID.String
	tpl.Name = name.String
	return &tpl, nil
}
