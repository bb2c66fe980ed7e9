package structs

import "time"

const (
	BackgroundColor    = "color"
	BackgroundGradient = "gradient"
	BackgroundImage    = "image"
)

type Reseller struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// ShopSettings is the singleton shop display configuration. OrderLink keeps
// a {message} placeholder that checkout substitutes with the formatted cart.
type ShopSettings struct {
	ShopName        string     `json:"shop_name"`
	BannerText      string     `json:"banner_text"`
	BannerSubtext   string     `json:"banner_subtext"`
	BannerImage     string     `json:"banner_image"`
	BackgroundMode  string     `json:"background_mode"`
	BackgroundColor string     `json:"background_color"`
	GradientFrom    string     `json:"gradient_from"`
	GradientTo      string     `json:"gradient_to"`
	BackgroundImg   string     `json:"background_image"`
	OrderLink       string     `json:"order_link"`
	Resellers       []Reseller `json:"resellers"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// PatchSettings is a shallow merge: only non-nil fields overwrite the stored
// singleton, so forms that do not round-trip every field cannot clobber it.
type PatchSettings struct {
	ShopName        *string     `json:"shop_name"`
	BannerText      *string     `json:"banner_text"`
	BannerSubtext   *string     `json:"banner_subtext"`
	BannerImage     *string     `json:"banner_image"`
	BackgroundMode  *string     `json:"background_mode"`
	BackgroundColor *string     `json:"background_color"`
	GradientFrom    *string     `json:"gradient_from"`
	GradientTo      *string     `json:"gradient_to"`
	BackgroundImg   *string     `json:"background_image"`
	OrderLink       *string     `json:"order_link"`
	Resellers       *[]Reseller `json:"resellers"`
}
