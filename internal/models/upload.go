package models

// UploadResult is what the image host returns for a stored image.
// swagger:model UploadResult
type UploadResult struct {
	// Public HTTPS URL
	URL string `json:"url"`
	// Provider identifier
	PublicID string `json:"publicId"`
}
