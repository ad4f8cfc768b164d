package services

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/models"
	"github.com/Zachkp/portfolio/internal/notify"
	"github.com/Zachkp/portfolio/internal/repositories"
)

// MaxImageSize bounds an uploaded profile image.
const MaxImageSize = 5 << 20

type ProfileInput struct {
	Name     string `form:"name" json:"name" validate:"required"`
	Title    string `form:"title" json:"title" validate:"required"`
	Location string `form:"location" json:"location" validate:"required"`
	About    string `form:"about" json:"about" validate:"required"`
}

type ContactInput struct {
	Email     string `form:"email" json:"email" validate:"required"`
	Phone     string `form:"phone" json:"phone" validate:"required"`
	Address   string `form:"address" json:"address"`
	LinkedIn  string `form:"linkedin" json:"linkedin"`
	GitHub    string `form:"github" json:"github"`
	Twitter   string `form:"twitter" json:"twitter"`
	Instagram string `form:"instagram" json:"instagram"`
	Website   string `form:"website" json:"website"`
	ResumeURL string `form:"resume" json:"resumeUrl"`
}

// ProfileService edits the profile and contact halves of portfolioData.
type ProfileService struct {
	repo      repositories.PortfolioRepository
	analytics *AnalyticsService
	now       func() time.Time
}

func NewProfileService(repo repositories.PortfolioRepository, analytics *AnalyticsService) *ProfileService {
	return &ProfileService{repo: repo, analytics: analytics, now: time.Now}
}

// Get returns the stored data and whether anything was ever saved.
func (s *ProfileService) Get(ctx context.Context) (*models.PortfolioData, bool, error) {
	return s.repo.Get(ctx)
}

func (s *ProfileService) SaveProfile(ctx context.Context, in ProfileInput) (notify.Notification, error) {
	trim(&in.Name, &in.Title, &in.Location, &in.About)
	if err := validate.Struct(in); err != nil {
		return validationNotice(err, "Please fill in all required fields"), nil
	}
	if err := s.repo.Merge(ctx, in, s.now()); err != nil {
		return notify.Notification{}, err
	}
	s.analytics.Track(ctx, "profile_updated", CategoryAdmin, "")
	return notify.New(notify.Success, "Profile updated successfully!"), nil
}

func (s *ProfileService) SaveContact(ctx context.Context, in ContactInput) (notify.Notification, error) {
	trim(&in.Email, &in.Phone, &in.Address, &in.LinkedIn, &in.GitHub,
		&in.Twitter, &in.Instagram, &in.Website, &in.ResumeURL)
	if err := validate.Struct(in); err != nil {
		return validationNotice(err, "Please fill in email and phone fields"), nil
	}
	if !IsValidEmail(in.Email) {
		return notify.New(notify.Error, "Please enter a valid email address"), nil
	}
	if err := s.repo.Merge(ctx, in, s.now()); err != nil {
		return notify.Notification{}, err
	}
	s.analytics.Track(ctx, "contact_updated", CategoryAdmin, "")
	return notify.New(notify.Success, "Contact information updated successfully!"), nil
}

// UploadImage stores an image as a data URI in profileImage.
func (s *ProfileService) UploadImage(ctx context.Context, contentType string, data []byte) (notify.Notification, error) {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.TrimSpace(mediaType)
	if !strings.HasPrefix(mediaType, "image/") {
		return notify.New(notify.Error, "Please select a valid image file"), nil
	}
	if len(data) > MaxImageSize {
		return notify.New(notify.Error, "Image size should be less than 5MB"), nil
	}

	uri := "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
	if err := s.setImage(ctx, uri); err != nil {
		return notify.Notification{}, err
	}
	s.analytics.Track(ctx, "profile_image_uploaded", CategoryAdmin, mediaType)
	return notify.New(notify.Success, "Image uploaded successfully!"), nil
}

func (s *ProfileService) ResetImage(ctx context.Context) (notify.Notification, error) {
	if err := s.setImage(ctx, models.DefaultProfileImage); err != nil {
		return notify.Notification{}, err
	}
	return notify.New(notify.Success, "Profile image reset to default"), nil
}

func (s *ProfileService) setImage(ctx context.Context, uri string) error {
	patch := struct {
		ProfileImage string `json:"profileImage"`
	}{uri}
	return s.repo.Merge(ctx, patch, s.now())
}

// ProfileForm pre-fills the profile form from stored data.
func ProfileForm(data *models.PortfolioData) ProfileInput {
	return ProfileInput{
		Name:     data.Name,
		Title:    data.Title,
		Location: data.Location,
		About:    data.About,
	}
}

// ContactForm pre-fills the contact form from stored data.
func ContactForm(data *models.PortfolioData) ContactInput {
	return ContactInput{
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		LinkedIn:  data.LinkedIn,
		GitHub:    data.GitHub,
		Twitter:   data.Twitter,
		Instagram: data.Instagram,
		Website:   data.Website,
		ResumeURL: data.ResumeURL,
	}
}
