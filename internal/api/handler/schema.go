package handler

import (
	"time"

	"github.com/radheonline/storefront/internal/core/domain"
)

// errorResponse mirrors the envelope rendered by the API error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Updates ---

type updateRequest struct {
	Title            string `json:"title"        validate:"required,max=200"`
	CenterName       string `json:"center_name"  validate:"max=200"`
	Description      string `json:"description"  validate:"required"`
	Category         string `json:"category"     validate:"omitempty,oneof=Aadhaar PAN Election General"`
	PublishDate      string `json:"publish_date" validate:"omitempty,datetime=2006-01-02"`
	IsPublished      *bool  `json:"is_published"`
	IsSliderFeatured bool   `json:"is_slider_featured"`
}

// --- Enquiries ---

type enquiryRequest struct {
	FullName    string `json:"full_name"    validate:"required,max=120"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
	Service     string `json:"service"      validate:"required"`
	Message     string `json:"message"      validate:"max=2000"`
}

type enquiryResponse struct {
	Duplicate bool            `json:"duplicate"`
	Message   string          `json:"message"`
	Enquiry   *domain.Contact `json:"enquiry,omitempty"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending contacted"`
}

type contactedRequest struct {
	Contacted bool `json:"contacted"`
}

// --- Settings ---

type settingsRequest struct {
	Username        string `json:"username"         validate:"required"`
	FullName        string `json:"full_name"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type settingsResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// --- Users ---

type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin editor"`
}

type updateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role" validate:"omitempty,oneof=admin editor"`
}

type activeRequest struct {
	IsActive bool `json:"is_active"`
}

// --- Dashboard ---

type dashboardResponse struct {
	TotalPosts      int               `json:"total_posts"`
	TotalEnquiries  int               `json:"total_enquiries"`
	ActiveUpdates   int               `json:"active_updates"`
	PendingContacts int               `json:"pending_contacts"`
	RecentPosts     []*domain.Update  `json:"recent_posts"`
	RecentEnquiries []*domain.Contact `json:"recent_enquiries"`
	GeneratedAt     time.Time         `json:"generated_at"`
}
