package validation

// CheckoutItem is one cart line in the checkout payload.
type CheckoutItem struct {
	Name     string  `json:"name" validate:"required"`
	Image    string  `json:"image"`                              // file name, resolved against the caller's origin
	Price    float64 `json:"price" validate:"required,gt=0"`     // dollars; converted to minor units server-side
	Quantity int     `json:"quantity" validate:"required,min=1"` // must be >= 1
	ID       string  `json:"id,omitempty"`
	Size     string  `json:"size,omitempty"`
}

// CreateCheckoutSessionRequest is the payload for POST /checkout-session.
type CreateCheckoutSessionRequest struct {
	CartItems []CheckoutItem `json:"cartItems" validate:"required,min=1,dive"` // at least one item
}

// AddCartItemRequest is the payload for POST /cart/:cartID/items. Unlike the
// checkout payload, the product id is required: it is half the line identity.
type AddCartItemRequest struct {
	ID       string  `json:"id" validate:"required"`
	Size     string  `json:"size,omitempty"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	Image    string  `json:"image"`
}

// CartLineRef identifies one cart line by its (id, size) identity.
type CartLineRef struct {
	ID   string `json:"id" validate:"required"`
	Size string `json:"size,omitempty"`
}
