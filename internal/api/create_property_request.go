package api

// CreatePropertyRequest carries a new listing. Pointer fields distinguish
// "absent" from zero so numeric fields may legitimately be 0 and omitted
// fields pick up their defaults.
// swagger:model api.CreatePropertyRequest
type CreatePropertyRequest struct {
	Title       string `json:"title" form:"title" validate:"required" example:"Luxury Villa in Tilakwadi"`
	Location    string `json:"location" form:"location" validate:"required" example:"Tilakwadi, Belgaum"`
	Price       *int64 `json:"price" form:"price" validate:"required,gte=0" example:"8500000"`
	Description string `json:"description" form:"description" validate:"required"`
	Type        string `json:"type" form:"type" validate:"required,oneof=Sale Rent" example:"Sale"`
	Status      string `json:"status" form:"status" validate:"omitempty,oneof=Available Sold Rented" example:"Available"`
	Bedrooms    *int   `json:"bedrooms" form:"bedrooms" validate:"omitempty,gte=0" example:"4"`
	Bathrooms   *int   `json:"bathrooms" form:"bathrooms" validate:"omitempty,gte=0" example:"3"`
	Area        *int   `json:"area" form:"area" validate:"required,gte=0" example:"2400"`
	Image       string `json:"image" form:"image" validate:"omitempty,url"`
}
