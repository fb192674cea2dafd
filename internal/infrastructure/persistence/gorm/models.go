package gorm

import (
	"time"

	"github.com/streamvault/catalog/internal/domain/castmember"
	"github.com/streamvault/catalog/internal/domain/category"
	"github.com/streamvault/catalog/internal/domain/genre"
	"github.com/streamvault/catalog/internal/domain/video"
)

// CategoryModel represents a category row
type CategoryModel struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:varchar(4000)"`
	Active      bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

func (CategoryModel) TableName() string { return "categories" }

// ToDomain converts a CategoryModel to a domain Category
func (m *CategoryModel) ToDomain() *category.Category {
	return category.With(
		category.IDFrom(m.ID),
		m.Name,
		m.Description,
		m.Active,
		m.CreatedAt,
		m.UpdatedAt,
		m.DeletedAt,
	)
}

// FromDomain fills the model from a domain Category
func (m *CategoryModel) FromDomain(c *category.Category) {
	m.ID = c.ID.String()
	m.Name = c.Name
	m.Description = c.Description
	m.Active = c.Active
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
	m.DeletedAt = c.DeletedAt
}

// GenreModel represents a genre row
type GenreModel struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time

	Categories []GenreCategoryModel `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE"`
}

func (GenreModel) TableName() string { return "genres" }

// GenreCategoryModel keeps a genre's category references with their
// insertion order; duplicates are legal.
type GenreCategoryModel struct {
	GenreID    string `gorm:"type:varchar(36);primaryKey"`
	Position   int    `gorm:"primaryKey;autoIncrement:false"`
	CategoryID string `gorm:"type:varchar(36);not null;index"`
}

func (GenreCategoryModel) TableName() string { return "genres_categories" }

// ToDomain converts a GenreModel to a domain Genre
func (m *GenreModel) ToDomain() *genre.Genre {
	categories := make([]category.ID, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, category.IDFrom(c.CategoryID))
	}
	return genre.With(
		genre.IDFrom(m.ID),
		m.Name,
		m.Active,
		categories,
		m.CreatedAt,
		m.UpdatedAt,
		m.DeletedAt,
	)
}

// FromDomain fills the model from a domain Genre
func (m *GenreModel) FromDomain(g *genre.Genre) {
	m.ID = g.ID.String()
	m.Name = g.Name
	m.Active = g.Active
	m.CreatedAt = g.CreatedAt
	m.UpdatedAt = g.UpdatedAt
	m.DeletedAt = g.DeletedAt
	m.Categories = make([]GenreCategoryModel, 0, len(g.Categories))
	for i, c := range g.Categories {
		m.Categories = append(m.Categories, GenreCategoryModel{
			GenreID:    g.ID.String(),
			Position:   i,
			CategoryID: c.String(),
		})
	}
}

// CastMemberModel represents a cast member row
type CastMemberModel struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Type      string `gorm:"type:varchar(16);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CastMemberModel) TableName() string { return "cast_members" }

// ToDomain converts a CastMemberModel to a domain CastMember
func (m *CastMemberModel) ToDomain() *castmember.CastMember {
	return castmember.With(
		castmember.IDFrom(m.ID),
		m.Name,
		castmember.Type(m.Type),
		m.CreatedAt,
		m.UpdatedAt,
	)
}

// FromDomain fills the model from a domain CastMember
func (m *CastMemberModel) FromDomain(member *castmember.CastMember) {
	m.ID = member.ID.String()
	m.Name = member.Name
	m.Type = string(member.Type)
	m.CreatedAt = member.CreatedAt
	m.UpdatedAt = member.UpdatedAt
}

// AudioVideoMediaColumns embeds an audio/video media value into the
// video row. An empty ID means the slot is empty.
type AudioVideoMediaColumns struct {
	ID              string `gorm:"type:varchar(36)"`
	Checksum        string `gorm:"type:varchar(255)"`
	Name            string `gorm:"type:varchar(255)"`
	RawLocation     string `gorm:"type:varchar(512)"`
	EncodedLocation string `gorm:"type:varchar(512)"`
	Status          string `gorm:"type:varchar(16)"`
}

func (c AudioVideoMediaColumns) toDomain() *video.AudioVideoMedia {
	if c.ID == "" {
		return nil
	}
	media := video.AudioVideoMediaWith(c.ID, c.Checksum, c.Name, c.RawLocation, c.EncodedLocation, video.MediaStatus(c.Status))
	return &media
}

func audioVideoColumns(media *video.AudioVideoMedia) AudioVideoMediaColumns {
	if media == nil {
		return AudioVideoMediaColumns{}
	}
	return AudioVideoMediaColumns{
		ID:              media.ID,
		Checksum:        media.Checksum,
		Name:            media.Name,
		RawLocation:     media.RawLocation,
		EncodedLocation: media.EncodedLocation,
		Status:          string(media.Status),
	}
}

// ImageMediaColumns embeds an image media value into the video row. An
// empty ID means the slot is empty.
type ImageMediaColumns struct {
	ID       string `gorm:"type:varchar(36)"`
	Checksum string `gorm:"type:varchar(255)"`
	Name     string `gorm:"type:varchar(255)"`
	Location string `gorm:"type:varchar(512)"`
}

func (c ImageMediaColumns) toDomain() *video.ImageMedia {
	if c.ID == "" {
		return nil
	}
	media := video.ImageMediaWith(c.ID, c.Checksum, c.Name, c.Location)
	return &media
}

func imageColumns(media *video.ImageMedia) ImageMediaColumns {
	if media == nil {
		return ImageMediaColumns{}
	}
	return ImageMediaColumns{
		ID:       media.ID,
		Checksum: media.Checksum,
		Name:     media.Name,
		Location: media.Location,
	}
}

// VideoModel represents a video row with its media slots inline and the
// reference sets in join tables.
type VideoModel struct {
	ID          string  `gorm:"type:varchar(36);primaryKey"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:varchar(4000)"`
	LaunchedAt  int     `gorm:"not null"`
	Duration    float64 `gorm:"not null;default:0"`
	Rating      string  `gorm:"type:varchar(8)"`
	Opened      bool    `gorm:"not null;default:false"`
	Published   bool    `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	VideoMedia   AudioVideoMediaColumns `gorm:"embedded;embeddedPrefix:video_"`
	TrailerMedia AudioVideoMediaColumns `gorm:"embedded;embeddedPrefix:trailer_"`
	Banner       ImageMediaColumns      `gorm:"embedded;embeddedPrefix:banner_"`
	Thumbnail    ImageMediaColumns      `gorm:"embedded;embeddedPrefix:thumbnail_"`
	ThumbHalf    ImageMediaColumns      `gorm:"embedded;embeddedPrefix:thumbnail_half_"`

	Categories  []VideoCategoryModel   `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	Genres      []VideoGenreModel      `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	CastMembers []VideoCastMemberModel `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}

func (VideoModel) TableName() string { return "videos" }

// VideoCategoryModel links a video to a category
type VideoCategoryModel struct {
	VideoID    string `gorm:"type:varchar(36);primaryKey"`
	CategoryID string `gorm:"type:varchar(36);primaryKey"`
}

func (VideoCategoryModel) TableName() string { return "videos_categories" }

// VideoGenreModel links a video to a genre
type VideoGenreModel struct {
	VideoID string `gorm:"type:varchar(36);primaryKey"`
	GenreID string `gorm:"type:varchar(36);primaryKey"`
}

func (VideoGenreModel) TableName() string { return "videos_genres" }

// VideoCastMemberModel links a video to a cast member
type VideoCastMemberModel struct {
	VideoID      string `gorm:"type:varchar(36);primaryKey"`
	CastMemberID string `gorm:"type:varchar(36);primaryKey"`
}

func (VideoCastMemberModel) TableName() string { return "videos_cast_members" }

// ToDomain converts a VideoModel to a domain Video
func (m *VideoModel) ToDomain() *video.Video {
	categories := make([]category.ID, 0, len(m.Categories))
	for _, c := range m.Categories {
		categories = append(categories, category.IDFrom(c.CategoryID))
	}
	genres := make([]genre.ID, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, genre.IDFrom(g.GenreID))
	}
	members := make([]castmember.ID, 0, len(m.CastMembers))
	for _, c := range m.CastMembers {
		members = append(members, castmember.IDFrom(c.CastMemberID))
	}
	return video.With(
		video.IDFrom(m.ID),
		m.Title,
		m.Description,
		m.LaunchedAt,
		m.Duration,
		video.Rating(m.Rating),
		m.Opened,
		m.Published,
		m.CreatedAt,
		m.UpdatedAt,
		m.Banner.toDomain(),
		m.Thumbnail.toDomain(),
		m.ThumbHalf.toDomain(),
		m.TrailerMedia.toDomain(),
		m.VideoMedia.toDomain(),
		categories,
		genres,
		members,
	)
}

// FromDomain fills the model from a domain Video
func (m *VideoModel) FromDomain(v *video.Video) {
	m.ID = v.ID.String()
	m.Title = v.Title
	m.Description = v.Description
	m.LaunchedAt = v.LaunchedAt
	m.Duration = v.Duration
	m.Rating = string(v.Rating)
	m.Opened = v.Opened
	m.Published = v.Published
	m.CreatedAt = v.CreatedAt
	m.UpdatedAt = v.UpdatedAt
	m.VideoMedia = audioVideoColumns(v.Video)
	m.TrailerMedia = audioVideoColumns(v.Trailer)
	m.Banner = imageColumns(v.Banner)
	m.Thumbnail = imageColumns(v.Thumbnail)
	m.ThumbHalf = imageColumns(v.ThumbnailHalf)

	m.Categories = make([]VideoCategoryModel, 0, len(v.Categories))
	for _, c := range v.Categories {
		m.Categories = append(m.Categories, VideoCategoryModel{VideoID: m.ID, CategoryID: c.String()})
	}
	m.Genres = make([]VideoGenreModel, 0, len(v.Genres))
	for _, g := range v.Genres {
		m.Genres = append(m.Genres, VideoGenreModel{VideoID: m.ID, GenreID: g.String()})
	}
	m.CastMembers = make([]VideoCastMemberModel, 0, len(v.CastMembers))
	for _, c := range v.CastMembers {
		m.CastMembers = append(m.CastMembers, VideoCastMemberModel{VideoID: m.ID, CastMemberID: c.String()})
	}
}
