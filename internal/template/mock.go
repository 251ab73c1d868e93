package template

import "sync"

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	CreateTemplateFunc          func(tpl *Template) error
	GetTemplateFunc             func(templateID string) (*Template, error)
	UpdateTemplateFunc          func(templateID string, fields map[string]any) error
	DeleteTemplateFunc          func(templateID string) error
	ListTemplatesFunc           func(categoryID string) ([]Template, error)
	GetTemplatesByEventTypeFunc func(eventType string) ([]Template, error)
	SetDefaultFunc              func(templateID string) (*Template, error)
	CreateCategoryFunc          func(cat *Category) error
	GetCategoryFunc             func(categoryID string) (*Category, error)
	UpdateCategoryFunc          func(categoryID string, fields map[string]any) error
	DeleteCategoryFunc          func(categoryID string) error
	ListCategoriesFunc          func() ([]Category, error)
	CreateVariableFunc          func(v *Variable) error
	ListVariablesFunc           func() ([]Variable, error)

	GetTemplatesByEventTypeCalls []string
	SetDefaultCalls              []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) CreateTemplate(tpl *Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateTemplateFunc != nil {
		return m.CreateTemplateFunc(tpl)
	}
	return nil
}

func (m *MockStore) GetTemplate(templateID string) (*Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetTemplateFunc != nil {
		return m.GetTemplateFunc(templateID)
	}
	return nil, nil
}

func (m *MockStore) UpdateTemplate(templateID string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateTemplateFunc != nil {
		return m.UpdateTemplateFunc(templateID, fields)
	}
	return nil
}

func (m *MockStore) DeleteTemplate(templateID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteTemplateFunc != nil {
		return m.DeleteTemplateFunc(templateID)
	}
	return nil
}

func (m *MockStore) ListTemplates(categoryID string) ([]Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListTemplatesFunc != nil {
		return m.ListTemplatesFunc(categoryID)
	}
	return nil, nil
}

func (m *MockStore) GetTemplatesByEventType(eventType string) ([]Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetTemplatesByEventTypeCalls = append(m.GetTemplatesByEventTypeCalls, eventType)
	if m.GetTemplatesByEventTypeFunc != nil {
		return m.GetTemplatesByEventTypeFunc(eventType)
	}
	return nil, nil
}

func (m *MockStore) SetDefault(templateID string) (*Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetDefaultCalls = append(m.SetDefaultCalls, templateID)
	if m.SetDefaultFunc != nil {
		return m.SetDefaultFunc(templateID)
	}
	return nil, nil
}

func (m *MockStore) CreateCategory(cat *Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(cat)
	}
	return nil
}

func (m *MockStore) GetCategory(categoryID string) (*Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetCategoryFunc != nil {
		return m.GetCategoryFunc(categoryID)
	}
	return nil, nil
}

func (m *MockStore) UpdateCategory(categoryID string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateCategoryFunc != nil {
		return m.UpdateCategoryFunc(categoryID, fields)
	}
	return nil
}

func (m *MockStore) DeleteCategory(categoryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteCategoryFunc != nil {
		return m.DeleteCategoryFunc(categoryID)
	}
	return nil
}

func (m *MockStore) ListCategories() ([]Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc()
	}
	return nil, nil
}

func (m *MockStore) CreateVariable(v *Variable) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateVariableFunc != nil {
		return m.CreateVariableFunc(v)
	}
	return nil
}

func (m *MockStore) ListVariables() ([]Variable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListVariablesFunc != nil {
		return m.ListVariablesFunc()
	}
	return nil, nil
}
