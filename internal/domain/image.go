package domain

// ProductImage описывает изображение товара, объект хранится в S3
type ProductImage struct {
	ID        int64
	ProductID int64
	ImageURL  string
	AltText   string
	SortOrder int32
}

func NewProductImage(productID int64, imageURL, altText string, sortOrder int32) *ProductImage {
	return &ProductImage{
		ProductID: productID,
		ImageURL:  imageURL,
		AltText:   altText,
		SortOrder: sortOrder,
	}
}

// Image описывает загружаемый в S3 объект
type Image struct {
	Bucket      string
	ObjectKey   string
	Bytes       []byte
	Size        *int64 // Передайте -1, если размер потока неизвестен
	ContentType *string
}

func NewImage(bucket, objectKey string, data []byte, size *int64, contentType *string) *Image {
	return &Image{
		Bucket:      bucket,
		ObjectKey:   objectKey,
		Bytes:       data,
		Size:        size,
		ContentType: contentType,
	}
}
