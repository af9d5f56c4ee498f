package domain

// Comment is a customer testimonial.
type Comment struct {
	Model
	Content     string  `json:"content" db:"content"`
	Rating      int     `json:"rating" db:"rating"`
	AuthorName  string  `json:"authorName" db:"author_name"`
	AuthorJob   *string `json:"authorJob" db:"author_job"`
	AuthorImage *string `json:"authorImage" db:"author_image"`
}

type CreateComment struct {
	Content     string  `json:"content" validate:"required"`
	Rating      *int    `json:"rating" validate:"required,gte=0,lte=5"`
	AuthorName  string  `json:"authorName" validate:"required"`
	AuthorJob   *string `json:"authorJob"`
	AuthorImage *string `json:"authorImage"`
}

func (c CreateComment) Build() *Comment {
	return &Comment{
		Content:     c.Content,
		Rating:      *c.Rating,
		AuthorName:  c.AuthorName,
		AuthorJob:   c.AuthorJob,
		AuthorImage: c.AuthorImage,
	}
}

type UpdateComment struct {
	Content     *string `json:"content" validate:"omitempty,min=1"`
	Rating      *int    `json:"rating" validate:"omitempty,gte=0,lte=5"`
	AuthorName  *string `json:"authorName" validate:"omitempty,min=1"`
	AuthorJob   *string `json:"authorJob"`
	AuthorImage *string `json:"authorImage"`
}

func (u UpdateComment) Apply(c *Comment) {
	setIf(&c.Content, u.Content)
	setIf(&c.Rating, u.Rating)
	setIf(&c.AuthorName, u.AuthorName)
	setOptional(&c.AuthorJob, u.AuthorJob)
	setOptional(&c.AuthorImage, u.AuthorImage)
}
