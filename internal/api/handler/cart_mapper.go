package handler

import "github.com/cccc-2705/Mercado/internal/core/domain"

// newCartView builds the cart page from the loaded user. Line totals and the
// running total come from the server untouched; only the unit price column
// applies the discounted-price selection.
func newCartView(user *domain.User) cartViewResponse {
	view := cartViewResponse{
		Total: user.Cart.Total,
	}

	if addr := user.Address; addr != nil {
		view.DeliverTo = addr.Format()
	}

	if len(user.Cart.Items) == 0 {
		view.EmptyState = &cartEmptyState{
			Message: "Your shopping bag is empty.",
			Colspan: cartColumns,
		}
		return view
	}

	view.Rows = make([]cartRowResponse, 0, len(user.Cart.Items))
	for _, item := range user.Cart.Items {
		view.Rows = append(view.Rows, cartRowResponse{
			Image:     item.Product.Image,
			Name:      item.Product.Name,
			Slug:      item.Product.Slug,
			UnitPrice: item.Product.DisplayPrice(),
			Quantity:  item.Quantity,
			LineTotal: item.Total,
		})
	}
	view.ShowCheckout = true
	view.CheckoutPath = "/checkout"
	return view
}
