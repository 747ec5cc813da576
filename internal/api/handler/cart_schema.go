package handler

// cartColumns is the number of columns in the cart table: product, price,
// quantity, line total. The empty-state row spans all of them.
const cartColumns = 4

type cartRowResponse struct {
	Image     string  `json:"image"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal string  `json:"line_total"`
}

type cartEmptyState struct {
	Message string `json:"message"`
	Colspan int    `json:"colspan"`
}

type cartViewResponse struct {
	Rows         []cartRowResponse `json:"rows"`
	EmptyState   *cartEmptyState   `json:"empty_state,omitempty"`
	Total        string            `json:"total"`
	DeliverTo    string            `json:"deliver_to,omitempty"`
	ShowCheckout bool              `json:"show_checkout"`
	CheckoutPath string            `json:"checkout_path,omitempty"`
}

// loadingResponse is the placeholder rendered while the user has not been
// loaded yet.
type loadingResponse struct {
	Loading bool `json:"loading"`
}
