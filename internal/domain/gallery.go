package domain

// GalleryCategory groups gallery items.
type GalleryCategory struct {
	Model
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description" db:"description"`
}

type CreateGalleryCategory struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

func (c CreateGalleryCategory) Build() *GalleryCategory {
	return &GalleryCategory{Name: c.Name, Description: c.Description}
}

type UpdateGalleryCategory struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

func (u UpdateGalleryCategory) Apply(c *GalleryCategory) {
	setIf(&c.Name, u.Name)
	setOptional(&c.Description, u.Description)
}

// GalleryItem is a single picture in the gallery. CategoryID is not enforced
// by a foreign key, so deleting a category leaves its items in place.
type GalleryItem struct {
	Model
	Title       string  `json:"title" db:"title"`
	Description *string `json:"description" db:"description"`
	Image       string  `json:"image" db:"image"`
	CategoryID  int64   `json:"categoryId" db:"category_id"`
}

type CreateGalleryItem struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Image       string  `json:"image" validate:"required,max=500"`
	CategoryID  *int64  `json:"categoryId" validate:"required,gte=1"`
}

func (c CreateGalleryItem) Build() *GalleryItem {
	return &GalleryItem{
		Title:       c.Title,
		Description: c.Description,
		Image:       c.Image,
		CategoryID:  *c.CategoryID,
	}
}

type UpdateGalleryItem struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Image       *string `json:"image" validate:"omitempty,min=1,max=500"`
	CategoryID  *int64  `json:"categoryId" validate:"omitempty,gte=1"`
}

func (u UpdateGalleryItem) Apply(i *GalleryItem) {
	setIf(&i.Title, u.Title)
	setOptional(&i.Description, u.Description)
	setIf(&i.Image, u.Image)
	setIf(&i.CategoryID, u.CategoryID)
}
