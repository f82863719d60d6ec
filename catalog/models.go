// Package catalog, as part of the asset catalog module.
// This file, `models.go`, defines the entity for a purchasable creative
// asset as it is persisted and passed around the application.
package catalog

// Asset represents one uploadable/purchasable creative asset.
// An asset is immutable after creation: there are no edit or delete flows,
// so every field is settled at upload time.
type Asset struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	// Price is non-negative; zero means a free asset.
	Price float64  `json:"price"`
	Tags  []string `json:"tags"`
	// ImageURL may hold either a remote URL or an inlined data-encoded
	// payload for direct image uploads; the store does not distinguish.
	ImageURL   string `json:"imageUrl"`
	UploaderID string `json:"uploaderId"`
	// UploaderName is denormalized for display; optional.
	UploaderName string `json:"uploaderName,omitempty"`
	// UploadDate is an ISO-8601 timestamp string.
	UploadDate string `json:"uploadDate"`
	Category   string `json:"category,omitempty"`
	// FileType stores the MIME type of a directly uploaded file; FileName
	// its original name. Both optional.
	FileType string `json:"fileType,omitempty"`
	FileName string `json:"fileName,omitempty"`
}

// Categories is the fixed set of asset categories offered at upload and
// filter time. "All" is the filter wildcard, not a real category.
var Categories = []string{
	"All",
	"2D Characters",
	"3D Models",
	"Environments",
	"UI Kits",
	"Icons",
	"Textures & Materials",
	"Sprite Sheets",
	"Cultural Art",
	"Folk Illustrations",
	"Nature & Wildlife",
	"Event Graphics",
	"Abstract",
	"Other",
}
