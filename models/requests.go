package models

type BlogPostRequest struct {
	Title         string `json:"title" form:"title" validate:"required,min=3,max=200"`
	Slug          string `json:"slug" form:"slug" validate:"omitempty,max=200,slug"`
	Excerpt       string `json:"excerpt" form:"excerpt" validate:"required,max=500"`
	Content       string `json:"content" form:"content" validate:"required"`
	FeaturedImage string `json:"featured_image" form:"featured_image" validate:"omitempty,max=1000"`
	Author        string `json:"author" form:"author" validate:"max=100"`
	Category      string `json:"category" form:"category" validate:"omitempty,max=50"`
	Published     bool   `json:"published" form:"published"`
}

type ProgramRequest struct {
	Title       string `json:"title" form:"title" validate:"required,min=3,max=200"`
	Slug        string `json:"slug" form:"slug" validate:"omitempty,max=200,slug"`
	Description string `json:"description" form:"description" validate:"required,max=1000"`
	Content     string `json:"content" form:"content"`
	Image       string `json:"image" form:"image" validate:"omitempty,max=1000"`
	Department  string `json:"department" form:"department" validate:"required,department"`
	Active      bool   `json:"active" form:"active"`
}

type EventRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Location    string `json:"location" validate:"max=200"`
	Image       string `json:"image" validate:"omitempty,max=1000"`
}

type TeamMemberRequest struct {
	Name         string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Role         string `json:"role" form:"role" validate:"required,max=100"`
	Bio          string `json:"bio" form:"bio" validate:"max=1000"`
	Image        string `json:"image" form:"image" validate:"omitempty,max=1000"`
	DisplayOrder int    `json:"display_order" form:"display_order" validate:"gte=0"`
	Active       bool   `json:"active" form:"active"`
}

type GalleryImageRequest struct {
	Title       string `json:"title" form:"title" validate:"required,min=2,max=200"`
	Description string `json:"description" form:"description" validate:"max=1000"`
	ImageURL    string `json:"image_url" form:"image_url" validate:"omitempty,max=1000"`
	Category    string `json:"category" form:"category" validate:"required,max=50"`
}

type DonationRequest struct {
	FirstName    string `json:"firstName" form:"firstName" validate:"max=100"`
	LastName     string `json:"lastName" form:"lastName" validate:"max=100"`
	Email        string `json:"email" form:"email" validate:"required,email"`
	Amount       int64  `json:"amount" form:"amount"`
	CustomAmount int64  `json:"customAmount" form:"customAmount"`
	DonationType string `json:"donationType" form:"donationType" validate:"required,oneof=one-time monthly"`
	Anonymous    bool   `json:"anonymous" form:"anonymous"`
	Message      string `json:"message" form:"message" validate:"max=1000"`
}

// FinalAmount prefers a preset amount over the custom one
func (r DonationRequest) FinalAmount() int64 {
	if r.Amount > 0 {
		return r.Amount
	}
	return r.CustomAmount
}

type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Subject string `json:"subject" form:"subject" validate:"required,max=200"`
	Message string `json:"message" form:"message" validate:"required,min=10,max=5000"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type UpdateSettingRequest struct {
	Value string `json:"value" validate:"max=2000"`
}
