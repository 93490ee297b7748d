package domain

// Party roles.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

// Party represents a marketplace participant, either a buyer or a seller.
// Party records are owned by the user service; this service only reads them.
type Party struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}
