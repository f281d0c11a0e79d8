package domain

// Resource is a named inventory category shown with an image.
type Resource struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Section   string `db:"section" json:"section"`
	ImagePath string `db:"image_path" json:"image_path"`
}
