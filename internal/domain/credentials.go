package domain

import "time"

const MaxSocialLinks = 8

type SocialPlatform string

const (
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformInstagram SocialPlatform = "instagram"
	PlatformLinkedIn  SocialPlatform = "linkedin"
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformTikTok    SocialPlatform = "tiktok"
	PlatformWhatsApp  SocialPlatform = "whatsapp"
	PlatformWebsite   SocialPlatform = "website"
	PlatformYouTube   SocialPlatform = "youtube"
)

func (p SocialPlatform) IsValid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram, PlatformLinkedIn, PlatformTwitter,
		PlatformTikTok, PlatformWhatsApp, PlatformWebsite, PlatformYouTube:
		return true
	}
	return false
}

// Certification — диплом или сертификат профессионала. Документ
// хранится в объектном хранилище, в базе лежит только его URL.
type Certification struct {
	ID             int64      `json:"id"`
	ProfessionalID int64      `json:"professional_id"`
	Name           string     `json:"name"`
	Institution    string     `json:"institution"`
	IssuedOn       time.Time  `json:"issued_on"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
	DocumentURL    *string    `json:"document_url,omitempty"`
	Description    string     `json:"description"`
	SortOrder      int        `json:"sort_order"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type CreateCertificationDTO struct {
	Name        string  `json:"name" binding:"required"`
	Institution string  `json:"institution" binding:"required"`
	IssuedOn    string  `json:"issued_on" binding:"required"`
	ValidUntil  *string `json:"valid_until"`
	Description string  `json:"description"`
}

type UpdateCertificationDTO struct {
	Name        *string `json:"name"`
	Institution *string `json:"institution"`
	IssuedOn    *string `json:"issued_on"`
	ValidUntil  *string `json:"valid_until"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
}

// SocialLink — ссылка на внешний профиль профессионала. Список ссылок
// заменяется целиком при каждом сохранении, флаг verified выставляется
// только администратором и сбрасывается при замене списка.
type SocialLink struct {
	ID             int64          `json:"id"`
	ProfessionalID int64          `json:"professional_id"`
	Platform       SocialPlatform `json:"platform"`
	URL            string         `json:"url"`
	IsVerified     bool           `json:"is_verified"`
	CreatedAt      time.Time      `json:"created_at"`
}

type SocialLinkDTO struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required"`
}
