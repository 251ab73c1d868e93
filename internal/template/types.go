package template

import (
	"database/sql"
	"sync"
)

// store handles all database operations for templates, categories and
// substitution variables.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Template is a parameterized text pattern containing {{variable}}
// placeholders, keyed to an event type. At most one template per category is
// flagged as the default.
type Template struct {
	ID         string `json:"templateId"`
	CategoryID string `json:"categoryId,omitempty"`
	EventType  string `json:"eventType"`
	Name       string `json:"name,omitempty"`
	Text       string `json:"text"`
	IsDefault  bool   `json:"isDefault"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
}

// Category groups templates.
type Category struct {
	ID          string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// Variable documents a substitution key available to template authors. It is
// reference data; nothing substitutes the variable rows themselves.
type Variable struct {
	Name        string `json:"variableName"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}
