package api

// UpdatePropertyRequest merges into an existing listing: only fields that
// are present overwrite. id, created_by and created_at are immutable.
// swagger:model api.UpdatePropertyRequest
type UpdatePropertyRequest struct {
	Title       *string `json:"title" form:"title" validate:"omitempty,min=1"`
	Location    *string `json:"location" form:"location" validate:"omitempty,min=1"`
	Price       *int64  `json:"price" form:"price" validate:"omitempty,gte=0"`
	Description *string `json:"description" form:"description" validate:"omitempty,min=1"`
	Type        *string `json:"type" form:"type" validate:"omitempty,oneof=Sale Rent"`
	Status      *string `json:"status" form:"status" validate:"omitempty,oneof=Available Sold Rented"`
	Bedrooms    *int    `json:"bedrooms" form:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int    `json:"bathrooms" form:"bathrooms" validate:"omitempty,gte=0"`
	Area        *int    `json:"area" form:"area" validate:"omitempty,gte=0"`
	Image       *string `json:"image" form:"image" validate:"omitempty,url"`
}
