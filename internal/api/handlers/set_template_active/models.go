package set_template_active

// SetTemplateActiveRequest HTTP request model
type SetTemplateActiveRequest struct {
	IsActive bool `json:"isActive"`
}
