package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Dashboard Models (GORM, hosted Postgres)
// ═══════════════════════════════════════════════════════════
//
// The dashboard is the authenticated surface where a supplier edits
// its own listing and products. These rows are the authoritative
// source behind the database catalog loader.

type Supplier struct {
	ID                    uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email                 string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash          string    `json:"-" gorm:"not null"`
	Name                  string    `json:"name" gorm:"not null;index"`
	Country               string    `json:"country"`
	Focus                 string    `json:"focus"`
	MainCategory          string    `json:"main_category" gorm:"column:main_product_category"`
	SecondaryCategory     string    `json:"secondary_category" gorm:"column:secondary_product_category"`
	StandNumber           string    `json:"stand_number"`
	ContactEmail          string    `json:"contact_email"`
	CompanyCertifications string    `json:"company_certifications"`
	IsActive              bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt             time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt             time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Supplier) TableName() string {
	return "suppliers"
}

type SupplierProduct struct {
	ID                        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SupplierID                uuid.UUID `json:"supplier_id" gorm:"type:uuid;not null;index:idx_products_supplier"`
	ReferenceName             string    `json:"reference_name"`
	Type                      string    `json:"type"`
	Material                  string    `json:"material"`
	MaterialSecondary         string    `json:"material_secondary"`
	Specifications            string    `json:"specifications"`
	Finishing                 string    `json:"finishing"`
	ProductionVolumes         string    `json:"production_volumes"`
	MadeIn                    string    `json:"made_in"`
	RecycledOrganic           string    `json:"recycled_organic"`
	RawMaterialCertifications string    `json:"raw_material_certifications"`
	OtherCertifications       string    `json:"other_certifications" gorm:"column:other_raw_material_certifications"`
	Handmade                  string    `json:"handmade"`
	WhiteLabel                string    `json:"white_label" gorm:"column:private_label_white_label"`
	LimitedEdition            string    `json:"limited_edition"`
	Deadstock                 string    `json:"deadstock"`
	ImageURL                  string    `json:"image_url"`
	CreatedAt                 time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt                 time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *SupplierProduct) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (SupplierProduct) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type SupplierLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"atelier@example.com"`
	Password string `json:"password" binding:"required,min=8"`
}

type UpdateSupplierRequest struct {
	Name                  *string `json:"name"`
	Country               *string `json:"country"`
	Focus                 *string `json:"focus"`
	MainCategory          *string `json:"main_category"`
	SecondaryCategory     *string `json:"secondary_category"`
	StandNumber           *string `json:"stand_number"`
	ContactEmail          *string `json:"contact_email" binding:"omitempty,email"`
	CompanyCertifications *string `json:"company_certifications"`
}

type SupplierProductRequest struct {
	ReferenceName             string `json:"reference_name" binding:"required" example:"Recycled cotton tote"`
	Type                      string `json:"type" binding:"required" example:"Bags"`
	Material                  string `json:"material"`
	MaterialSecondary         string `json:"material_secondary"`
	Specifications            string `json:"specifications"`
	Finishing                 string `json:"finishing"`
	ProductionVolumes         string `json:"production_volumes"`
	MadeIn                    string `json:"made_in"`
	RecycledOrganic           string `json:"recycled_organic"`
	RawMaterialCertifications string `json:"raw_material_certifications"`
	OtherCertifications       string `json:"other_certifications"`
	Handmade                  string `json:"handmade" binding:"omitempty,oneof=Yes No"`
	WhiteLabel                string `json:"white_label" binding:"omitempty,oneof=Yes No"`
	LimitedEdition            string `json:"limited_edition" binding:"omitempty,oneof=Yes No"`
	Deadstock                 string `json:"deadstock" binding:"omitempty,oneof=Yes No"`
}

type UpdateSupplierProductRequest struct {
	ReferenceName             *string `json:"reference_name"`
	Type                      *string `json:"type"`
	Material                  *string `json:"material"`
	MaterialSecondary         *string `json:"material_secondary"`
	Specifications            *string `json:"specifications"`
	Finishing                 *string `json:"finishing"`
	ProductionVolumes         *string `json:"production_volumes"`
	MadeIn                    *string `json:"made_in"`
	RecycledOrganic           *string `json:"recycled_organic"`
	RawMaterialCertifications *string `json:"raw_material_certifications"`
	OtherCertifications       *string `json:"other_certifications"`
	Handmade                  *string `json:"handmade" binding:"omitempty,oneof=Yes No"`
	WhiteLabel                *string `json:"white_label" binding:"omitempty,oneof=Yes No"`
	LimitedEdition            *string `json:"limited_edition" binding:"omitempty,oneof=Yes No"`
	Deadstock                 *string `json:"deadstock" binding:"omitempty,oneof=Yes No"`
}
