package models

// Image is a catalog entry together with the place it was taken
type Image struct {
	// ID is the unique identifier for the image
	ID string `json:"id" yaml:"id"`

	// URL is where the image can be fetched from
	URL string `json:"url" yaml:"url"`

	// Name is a human readable label for the location
	Name string `json:"name" yaml:"name"`

	// Latitude is the true latitude of the image
	Latitude float64 `json:"latitude" yaml:"latitude"`

	// Longitude is the true longitude of the image
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// AnonymousImage is the only form of an image shown before a guess is confirmed
type AnonymousImage struct {
	// ID is the unique identifier for the image
	ID string `json:"id"`

	// URL is where the image can be fetched from
	URL string `json:"url"`
}

// Anonymous strips the name and coordinates from the image
func (i *Image) Anonymous() *AnonymousImage {
	return &AnonymousImage{
		ID:  i.ID,
		URL: i.URL,
	}
}
