package template

// Store defines the persistence interface for templates and their reference
// data. Lookups return (nil, nil) when the row does not exist.
type Store interface {
	CreateTemplate(tpl *Template) error
	GetTemplate(templateID string) (*Template, error)
	UpdateTemplate(templateID string, fields map[string]any) error
	DeleteTemplate(templateID string) error
	ListTemplates(categoryID string) ([]Template, error)

	// GetTemplatesByEventType matches case-insensitively and returns rows in
	// a stable creation order; the first row is the resolution fallback when
	// no default is flagged.
	GetTemplatesByEventType(eventType string) ([]Template, error)

	// SetDefault flags the target template as its category's default and
	// clears the flag on every sibling. The per-row updates are independent;
	// concurrent calls for the same category are last-writer-wins per row.
	SetDefault(templateID string) (*Template, error)

	CreateCategory(cat *Category) error
	GetCategory(categoryID string) (*Category, error)
	UpdateCategory(categoryID string, fields map[string]any) error
	DeleteCategory(categoryID string) error
	ListCategories() ([]Category, error)

	CreateVariable(v *Variable) error
	ListVariables() ([]Variable, error)
}
