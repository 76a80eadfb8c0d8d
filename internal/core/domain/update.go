package domain

import "time"

// DefaultCenterName is stamped on posts created without an explicit center.
const DefaultCenterName = "Radhe Online Services Center"

// PublishDateLayout is the calendar-day format used for publish dates.
const PublishDateLayout = "2006-01-02"

const (
	CategoryAadhaar  = "Aadhaar"
	CategoryPAN      = "PAN"
	CategoryElection = "Election"
	CategoryGeneral  = "General"
)

var categories = map[string]struct{}{
	CategoryAadhaar:  {},
	CategoryPAN:      {},
	CategoryElection: {},
	CategoryGeneral:  {},
}

// ValidCategory reports whether c is one of the known post categories.
func ValidCategory(c string) bool {
	_, ok := categories[c]
	return ok
}

// Update is a news post shown on the public site and managed from the admin area.
type Update struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	CenterName       string    `json:"center_name"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	PublishDate      string    `json:"publish_date"`
	IsPublished      bool      `json:"is_published"`
	IsSliderFeatured bool      `json:"is_slider_featured"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// OnSlider reports whether the post belongs in the homepage carousel.
func (u *Update) OnSlider() bool {
	return u.IsPublished && u.IsSliderFeatured
}
