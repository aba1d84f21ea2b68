package dto

import "github.com/noah-isme/school-admin-api/internal/models"

// IDCardResponse is an ID card with its holder resolved.
type IDCardResponse struct {
	models.IDCard
	HolderName string `json:"holder_name"`
	Detail     string `json:"detail"`
}
