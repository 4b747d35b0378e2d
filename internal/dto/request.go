package dto

type AddCartItemRequest struct {
	PackageID int `json:"package_id"`
}

type UpdateQuantityRequest struct {
	Delta int `json:"delta"`
}

type LoginRequest struct {
	Mode            string `json:"mode"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
}

type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Favorites []int   `json:"favorites"`
}

type CustomerDetailsRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type PaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type UpdateBookingRequest struct {
	Travelers       *int    `json:"travelers"`
	CustomerName    *string `json:"customer_name"`
	CustomerEmail   *string `json:"customer_email"`
	CustomerPhone   *string `json:"customer_phone"`
	CustomerAddress *string `json:"customer_address"`
}

// PreferencesRequest leaves dark mode untouched when the field is absent.
type PreferencesRequest struct {
	DarkMode *bool `json:"dark_mode"`
}
