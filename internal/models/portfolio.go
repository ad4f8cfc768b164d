package models

import "time"

// DefaultProfileImage is shown until an image is uploaded.
const DefaultProfileImage = "/static/profile.svg"

// Profile is the owner's public identity.
type Profile struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	About        string `json:"about"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// ContactInfo is how visitors reach the owner.
type ContactInfo struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Website   string `json:"website"`
	ResumeURL string `json:"resumeUrl"`
}

// PortfolioData is the singleton under portfolioData. Profile and contact
// saves are shallow-merged into the same document.
type PortfolioData struct {
	Profile
	ContactInfo
	LastUpdated time.Time `json:"lastUpdated"`
}
