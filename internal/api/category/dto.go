package category

type CreateCategoryRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Type        string `json:"type" validate:"required,oneof=income expense"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	ID          string `json:"id" validate:"required"`
	UserID      string `json:"user_id" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Type        string `json:"type" validate:"required,oneof=income expense"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	IsDefault   bool   `json:"is_default"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
