package domain

// Category описывает категорию товара
type Category struct {
	ID          int64
	Name        string
	ParentID    *int64
	Description string
}

func NewCategory(name string, parentID *int64, description string) *Category {
	return &Category{
		Name:        name,
		ParentID:    parentID,
		Description: description,
	}
}

// Brand описывает бренд товара
type Brand struct {
	ID          int64
	Name        string
	Description string
}

func NewBrand(name, description string) *Brand {
	return &Brand{
		Name:        name,
		Description: description,
	}
}
