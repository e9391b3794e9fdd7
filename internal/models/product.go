package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender is the audience a product is made for.
type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderKids   Gender = "kids"
	GenderUnisex Gender = "unisex"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	switch g {
	case GenderMen, GenderWomen, GenderKids, GenderUnisex:
		return true
	}
	return false
}

// Product represents a product in the catalog.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string         `json:"title" gorm:"type:text;not null;uniqueIndex"`
	Price       float64        `json:"price" gorm:"not null;default:0"`
	Description string         `json:"description" gorm:"type:text"`
	Slug        string         `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Stock       int            `json:"stock" gorm:"not null;default:0"`
	Sizes       []string       `json:"sizes" gorm:"type:text;serializer:json"`
	Gender      Gender         `json:"gender" gorm:"type:varchar(10);not null"`
	Tags        []string       `json:"tags" gorm:"type:text;serializer:json"`
	Images      []ProductImage `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}

// BeforeCreate assigns a UUID when the caller did not supply one.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// ImageURLs returns the product's image URLs in stored order.
func (p Product) ImageURLs() []string {
	urls := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

// ProductImage is a single image URL owned by a product.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	URL       string `json:"url" gorm:"type:text;not null"`
	ProductID string `json:"-" gorm:"type:varchar(36);not null;index"`
}

// NewImages converts URLs into image rows, keeping their order.
func NewImages(urls []string) []ProductImage {
	images := make([]ProductImage, 0, len(urls))
	for _, url := range urls {
		images = append(images, ProductImage{URL: url})
	}
	return images
}

// Slugify lowercases s and replaces spaces and apostrophes with hyphens.
func Slugify(s string) string {
	return strings.NewReplacer(" ", "-", "'", "-").Replace(strings.ToLower(s))
}
