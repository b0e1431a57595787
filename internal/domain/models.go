package domain

// Telegram login widget field names.
const (
	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldUsername  = "username"
	FieldPhotoURL  = "photo_url"
	FieldAuthDate  = "auth_date"
	FieldHash      = "hash"
)

// TelegramUser is the identity exposed after a login payload has been verified.
// Values are copied verbatim from the signed payload; absent fields are empty.
type TelegramUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	AuthDate  string `json:"auth_date"`
}
